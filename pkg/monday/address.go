package monday

import (
	"strings"
)

// Street-suffix fragments that mark a text value as a plausible address.
var addressIndicators = []string{"st", "rd", "ave", "blvd", "ln", "dr", "way", "ct", "pl"}

// ExtractAddress pulls a candidate address from a board item: the item name
// if it looks like an address, otherwise the first column value that does.
// "New address" placeholder rows yield nothing.
func ExtractAddress(item BoardItem) string {
	if item.Name == "New address" {
		return ""
	}

	if looksLikeAddress(item.Name) {
		return item.Name
	}

	for _, column := range item.ColumnValues {
		if column.Text != "" && looksLikeAddress(column.Text) {
			return column.Text
		}
	}

	return item.Name
}

func looksLikeAddress(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range addressIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
