package transformers

import (
	"testing"

	"radarcontacts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	transformer := NewAddressTransformer()

	tests := []struct {
		name     string
		address  string
		expected *models.AddressComponents
	}{
		{
			name:    "standard form",
			address: "400 LAS COLINAS BLVD E, IRVING, TX 75039",
			expected: &models.AddressComponents{
				Street: "400 LAS COLINAS BLVD E",
				City:   "IRVING",
				State:  "TX",
				Zip:    "75039",
			},
		},
		{
			name:    "lowercase state is uppercased",
			address: "123 Main St, Jackson, ms 39201",
			expected: &models.AddressComponents{
				Street: "123 Main St",
				City:   "Jackson",
				State:  "MS",
				Zip:    "39201",
			},
		},
		{
			name:    "trailing parts after zip are ignored",
			address: "123 Main St, Jackson, MS 39201, USA",
			expected: &models.AddressComponents{
				Street: "123 Main St",
				City:   "Jackson",
				State:  "MS",
				Zip:    "39201",
			},
		},
		{
			name:    "zip plus four keeps five digits",
			address: "123 Main St, Jackson, MS 39201-1234",
			expected: &models.AddressComponents{
				Street: "123 Main St",
				City:   "Jackson",
				State:  "MS",
				Zip:    "39201",
			},
		},
		{
			name:    "surrounding whitespace is trimmed",
			address: "  123 Main St ,  Jackson ,  MS 39201 ",
			expected: &models.AddressComponents{
				Street: "123 Main St",
				City:   "Jackson",
				State:  "MS",
				Zip:    "39201",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transformer.ParseAddress(tt.address)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAddressFailures(t *testing.T) {
	transformer := NewAddressTransformer()

	tests := []struct {
		name    string
		address string
	}{
		{"empty string", ""},
		{"no commas", "400 LAS COLINAS BLVD E IRVING TX 75039"},
		{"two parts only", "123 Main St, Jackson"},
		{"state without zip", "123 Main St, Jackson, MS"},
		{"zip before state", "123 Main St, Jackson, 39201 MS"},
		{"long state name", "123 Main St, Jackson, Mississippi 39201"},
		{"four digit zip", "123 Main St, Jackson, MS 3920"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transformer.ParseAddress(tt.address)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}
