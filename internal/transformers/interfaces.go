package transformers

import (
	"radarcontacts/internal/models"
)

type AddressTransformer interface {
	ParseAddress(address string) (*models.AddressComponents, error)
}
