package cache

import (
	"fmt"
	"strings"
)

// NormalizeAddress lowercases, trims, and abbreviates common street terms so
// equivalent spellings of the same address share one cache entry.
func NormalizeAddress(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacements := map[string]string{
		"drive":     "dr",
		"street":    "st",
		"avenue":    "ave",
		"road":      "rd",
		"boulevard": "blvd",
		"lane":      "ln",
		"circle":    "cir",
		"court":     "ct",
		"terrace":   "ter",
		"place":     "pl",
		"highway":   "hwy",
	}
	for full, abbr := range replacements {
		s = strings.ReplaceAll(s, " "+full, " "+abbr)
	}
	return strings.Join(strings.Fields(s), " ")
}

// LookupKey is the cache key for a single address lookup result.
func LookupKey(address string) string {
	return fmt.Sprintf("lookup:address:%s", NormalizeAddress(address))
}

// UserKey is the cache key for a user record, keyed by email.
func UserKey(email string) string {
	return fmt.Sprintf("user:%s", strings.ToLower(strings.TrimSpace(email)))
}
