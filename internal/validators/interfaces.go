package validators

import (
	"radarcontacts/internal/models"
)

type LookupValidator interface {
	ValidateLookup(req *models.LookupRequest) error
	ValidateBoardImport(req *models.BoardImportRequest) error
}

type UserValidator interface {
	ValidateRegister(user *models.User) error
	ValidateLogin(email, password string) error
}
