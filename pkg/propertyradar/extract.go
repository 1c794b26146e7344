package propertyradar

import (
	"regexp"
	"strings"
)

// Indicator tables for the recursive contact extraction. Key matching is
// substring-based on the lowercased key, so "LandLine1" and "PhoneLinkText"
// both qualify. Kept as package tables so tests can cover them directly.
var (
	phoneKeyIndicators = []string{"phone", "tel", "mobile", "landline", "number", "linktext"}
	emailKeyIndicators = []string{"email", "mail", "linktext"}
)

var phoneRunPattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)

// FindPhones walks an arbitrarily shaped decoded JSON value and returns the
// formatted phone numbers found under phone-indicating keys. Raw matches are
// deduplicated before formatting. This is a heuristic, not a schema parse:
// the only guard against false positives is the digit-presence check.
func FindPhones(data interface{}) []string {
	var raw []string
	walkKeyed(data, phoneKeyIndicators, func(value string) {
		if !containsDigit(value) {
			return
		}
		if match := phoneRunPattern.FindString(value); match != "" {
			raw = append(raw, match)
		}
	})
	return formatPhones(dedupe(raw))
}

// FindEmails walks a decoded JSON value and returns the email addresses found
// under email-indicating keys, deduplicated and filtered for plausibility.
func FindEmails(data interface{}) []string {
	var raw []string
	walkKeyed(data, emailKeyIndicators, func(value string) {
		if strings.Contains(value, "@") && strings.Contains(value, ".") {
			raw = append(raw, value)
		}
	})
	var cleaned []string
	for _, email := range dedupe(raw) {
		email = strings.TrimSpace(email)
		if strings.Contains(email, "@") && strings.Contains(email, ".") && len(email) > 5 {
			cleaned = append(cleaned, email)
		}
	}
	return cleaned
}

// walkKeyed recurses through objects and arrays. String values under keys
// matching one of the indicators are handed to collect; nested values are
// always recursed into, matching key or not, so contacts buried under
// unrelated keys are still found.
func walkKeyed(obj interface{}, indicators []string, collect func(value string)) {
	switch v := obj.(type) {
	case map[string]interface{}:
		for key, value := range v {
			if keyMatches(key, indicators) {
				switch inner := value.(type) {
				case string:
					collect(inner)
				case map[string]interface{}, []interface{}:
					walkKeyed(inner, indicators, collect)
				}
				continue
			}
			switch value.(type) {
			case map[string]interface{}, []interface{}:
				walkKeyed(value, indicators, collect)
			}
		}
	case []interface{}:
		for _, item := range v {
			walkKeyed(item, indicators, collect)
		}
	}
}

func keyMatches(key string, indicators []string) bool {
	lower := strings.ToLower(key)
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// formatPhones normalizes raw matches: 10 digits become (AAA) BBB-CCCC, a
// leading country-code 1 on 11 digits is dropped, anything else of 10+ digits
// passes through unformatted, and shorter strings are discarded.
func formatPhones(raw []string) []string {
	var out []string
	for _, phone := range raw {
		digits := digitsOnly(phone)
		switch {
		case len(digits) == 10:
			out = append(out, formatTenDigits(digits))
		case len(digits) == 11 && digits[0] == '1':
			out = append(out, formatTenDigits(digits[1:]))
		case len(digits) >= 10:
			out = append(out, phone)
		}
	}
	return out
}

func formatTenDigits(digits string) string {
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
