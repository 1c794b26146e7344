package propertyradar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPhones(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		expected []string
	}{
		{
			name: "flat record",
			data: map[string]interface{}{
				"Phone": "555-123-4567",
			},
			expected: []string{"(555) 123-4567"},
		},
		{
			name: "nested under results",
			data: map[string]interface{}{
				"results": []interface{}{
					map[string]interface{}{
						"LandLine1": "5551234567",
					},
				},
			},
			expected: []string{"(555) 123-4567"},
		},
		{
			name: "phone buried under non-matching key",
			data: map[string]interface{}{
				"owner": map[string]interface{}{
					"contact": map[string]interface{}{
						"MobileNumber": "555.987.6543",
					},
				},
			},
			expected: []string{"(555) 987-6543"},
		},
		{
			name: "linktext key qualifies",
			data: map[string]interface{}{
				"LinkText": "555-222-3333",
			},
			expected: []string{"(555) 222-3333"},
		},
		{
			name: "duplicate raw values collapse",
			data: map[string]interface{}{
				"results": []interface{}{
					map[string]interface{}{"Phone": "555-123-4567"},
					map[string]interface{}{"Phone": "555-123-4567"},
				},
			},
			expected: []string{"(555) 123-4567"},
		},
		{
			name: "value without digits is skipped",
			data: map[string]interface{}{
				"Phone": "call the office",
			},
			expected: nil,
		},
		{
			name: "non-matching keys yield nothing",
			data: map[string]interface{}{
				"Name":    "JOHN SMITH",
				"Address": "400 MAIN ST",
			},
			expected: nil,
		},
		{
			name: "too few digits is skipped",
			data: map[string]interface{}{
				"Phone": "555-1234",
			},
			expected: nil,
		},
		{
			name:     "non-object input",
			data:     "555-123-4567",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPhones(tt.data)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.expected, got)
		})
	}
}

func TestFormatPhones(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "ten digits",
			raw:      []string{"5551234567"},
			expected: []string{"(555) 123-4567"},
		},
		{
			name:     "ten digits with separators",
			raw:      []string{"555-123-4567"},
			expected: []string{"(555) 123-4567"},
		},
		{
			name:     "eleven digits with leading one",
			raw:      []string{"15551234567"},
			expected: []string{"(555) 123-4567"},
		},
		{
			name:     "twelve digits pass through raw",
			raw:      []string{"555123456789"},
			expected: []string{"555123456789"},
		},
		{
			name:     "nine digits dropped",
			raw:      []string{"555123456"},
			expected: nil,
		},
		{
			name:     "empty input",
			raw:      nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatPhones(tt.raw)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindEmails(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		expected []string
	}{
		{
			name: "flat record",
			data: map[string]interface{}{
				"Email": "john@example.com",
			},
			expected: []string{"john@example.com"},
		},
		{
			name: "nested and deduplicated",
			data: map[string]interface{}{
				"results": []interface{}{
					map[string]interface{}{"EmailAddress": "jane@example.com"},
					map[string]interface{}{"EmailAddress": "jane@example.com"},
				},
			},
			expected: []string{"jane@example.com"},
		},
		{
			name: "missing at sign is skipped",
			data: map[string]interface{}{
				"Email": "not-an-email",
			},
			expected: nil,
		},
		{
			name: "too short is skipped",
			data: map[string]interface{}{
				"Email": "a@b.c",
			},
			expected: nil,
		},
		{
			name: "phone key does not qualify",
			data: map[string]interface{}{
				"Phone": "john@example.com",
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindEmails(tt.data)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.expected, got)
		})
	}
}

func TestKeyMatches(t *testing.T) {
	assert.True(t, keyMatches("LandLine1", phoneKeyIndicators))
	assert.True(t, keyMatches("PhoneLinkText", phoneKeyIndicators))
	assert.True(t, keyMatches("MobileNumber", phoneKeyIndicators))
	assert.False(t, keyMatches("Address", phoneKeyIndicators))
	assert.True(t, keyMatches("EmailAddress", emailKeyIndicators))
	assert.False(t, keyMatches("Phone", emailKeyIndicators))
}
