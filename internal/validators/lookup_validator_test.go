package validators

import (
	"testing"

	"radarcontacts/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateLookup(t *testing.T) {
	v := NewLookupValidator()

	assert.NoError(t, v.ValidateLookup(&models.LookupRequest{
		Addresses: []string{"400 LAS COLINAS BLVD E, IRVING, TX 75039"},
	}))

	assert.Error(t, v.ValidateLookup(nil))
	assert.Error(t, v.ValidateLookup(&models.LookupRequest{}))
	assert.Error(t, v.ValidateLookup(&models.LookupRequest{Addresses: []string{"  "}}))

	big := make([]string, 51)
	for i := range big {
		big[i] = "123 Main St, Jackson, MS 39201"
	}
	assert.Error(t, v.ValidateLookup(&models.LookupRequest{Addresses: big}))
}

func TestValidateBoardImport(t *testing.T) {
	v := NewLookupValidator()

	assert.NoError(t, v.ValidateBoardImport(&models.BoardImportRequest{BoardID: "123", Limit: 10}))
	assert.NoError(t, v.ValidateBoardImport(&models.BoardImportRequest{}))

	assert.Error(t, v.ValidateBoardImport(nil))
	assert.Error(t, v.ValidateBoardImport(&models.BoardImportRequest{Limit: -1}))
	assert.Error(t, v.ValidateBoardImport(&models.BoardImportRequest{Limit: 51}))
}
