package monday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name     string
		item     BoardItem
		expected string
	}{
		{
			name:     "item name looks like an address",
			item:     BoardItem{Name: "400 LAS COLINAS BLVD E, IRVING, TX 75039"},
			expected: "400 LAS COLINAS BLVD E, IRVING, TX 75039",
		},
		{
			name: "address pulled from a column",
			item: BoardItem{
				Name: "Smith deal",
				ColumnValues: []ColumnValue{
					{ID: "status", Text: "In progress"},
					{ID: "location", Text: "123 Main St, Jackson, MS 39201"},
				},
			},
			expected: "123 Main St, Jackson, MS 39201",
		},
		{
			name:     "placeholder row yields nothing",
			item:     BoardItem{Name: "New address"},
			expected: "",
		},
		{
			name:     "name used as last resort",
			item:     BoardItem{Name: "Some row", ColumnValues: []ColumnValue{{ID: "n", Text: "123"}}},
			expected: "Some row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractAddress(tt.item))
		})
	}
}
