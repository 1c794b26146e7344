package transformers

import (
	"fmt"
	"regexp"
	"strings"

	"radarcontacts/internal/models"
)

// stateZipPattern matches the trailing "TX 75039" pair, tolerating mixed-case
// states like "Tx" or "Ms".
var stateZipPattern = regexp.MustCompile(`^([A-Za-z]{2})\s+(\d{5})`)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// ParseAddress splits a free-text address of the form
// "400 LAS COLINAS BLVD E, IRVING, TX 75039" into its components. Callers
// must supply well-formed input: fewer than three comma-separated parts, or a
// third part that does not open with a state and five-digit zip, is a parse
// failure. Unit numbers and PO boxes are not handled.
func (t *addressTransformer) ParseAddress(address string) (*models.AddressComponents, error) {
	parts := strings.Split(address, ",")
	if len(parts) < 3 {
		return nil, fmt.Errorf("address %q must have street, city, and state/zip parts", address)
	}

	street := strings.TrimSpace(parts[0])
	city := strings.TrimSpace(parts[1])
	stateZip := strings.TrimSpace(parts[2])

	matches := stateZipPattern.FindStringSubmatch(stateZip)
	if matches == nil {
		return nil, fmt.Errorf("address %q has no recognizable state and zip in %q", address, stateZip)
	}

	return &models.AddressComponents{
		Street: street,
		City:   city,
		State:  strings.ToUpper(matches[1]),
		Zip:    matches[2],
	}, nil
}
