package validators

import (
	"errors"
	"strings"

	"radarcontacts/internal/models"
)

// maxBatchSize caps a single request; every address costs upstream calls and
// at least one pacing delay.
const maxBatchSize = 50

type lookupValidator struct{}

func NewLookupValidator() LookupValidator {
	return &lookupValidator{}
}

func (v *lookupValidator) ValidateLookup(req *models.LookupRequest) error {
	if req == nil || len(req.Addresses) == 0 {
		return errors.New("at least one address is required")
	}
	if len(req.Addresses) > maxBatchSize {
		return errors.New("too many addresses in one batch")
	}
	for _, address := range req.Addresses {
		if strings.TrimSpace(address) == "" {
			return errors.New("addresses must not be blank")
		}
	}
	return nil
}

func (v *lookupValidator) ValidateBoardImport(req *models.BoardImportRequest) error {
	if req == nil {
		return errors.New("request body is required")
	}
	if req.Limit < 0 || req.Limit > maxBatchSize {
		return errors.New("limit must be between 0 and 50")
	}
	return nil
}
