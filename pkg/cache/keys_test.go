package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and trims", "  400 Main STREET, Irving, TX 75039 ", "400 main st, irving, tx 75039"},
		{"abbreviates street terms", "12 Ocean Boulevard, Miami, FL 33101", "12 ocean blvd, miami, fl 33101"},
		{"collapses inner whitespace", "12  Ocean   Dr, Miami, FL 33101", "12 ocean dr, miami, fl 33101"},
		{"already normalized", "12 ocean dr, miami, fl 33101", "12 ocean dr, miami, fl 33101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.input))
		})
	}
}

func TestUserKeyNormalizesEmail(t *testing.T) {
	assert.Equal(t, "user:john@example.com", UserKey("  John@Example.COM "))
	assert.Equal(t, UserKey("john@example.com"), UserKey("JOHN@EXAMPLE.COM"))
}

func TestLookupKeyEquivalentSpellings(t *testing.T) {
	a := LookupKey("400 Main Street, Irving, TX 75039")
	b := LookupKey("  400 MAIN ST, Irving, TX 75039")
	assert.Equal(t, a, b)
}
