package services

import (
	"context"

	"radarcontacts/internal/auth"
	"radarcontacts/internal/models"
	"radarcontacts/pkg/monday"
)

// RadarClient is the slice of the PropertyRadar client the lookup flow uses.
type RadarClient interface {
	SearchProperties(ctx context.Context, comp models.AddressComponents) ([]models.PropertyResult, error)
	GetOwners(ctx context.Context, radarID string) ([]models.OwnerInfo, error)
	GetOwnerPhones(ctx context.Context, personKey string) models.PhoneResult
	GetOwnerEmails(ctx context.Context, personKey string) models.EmailResult
}

// BoardClient is the slice of the Monday.com client the board import uses.
type BoardClient interface {
	GetBoardItems(ctx context.Context, boardID string, limit int) ([]monday.BoardItem, error)
}

// LookupService runs phone lookups for batches of addresses.
type LookupService interface {
	LookupAddresses(ctx context.Context, addresses []string, requestedBy string) (*models.LookupBatch, error)
	History(ctx context.Context, limit int) ([]models.LookupBatch, error)
}

// BoardService pulls addresses off a Monday.com board and runs them
// through the lookup flow.
type BoardService interface {
	ImportBoard(ctx context.Context, req *models.BoardImportRequest, requestedBy string) (*models.LookupBatch, error)
}

// UserService defines the interface for user business logic.
type UserService interface {
	Register(ctx context.Context, user *models.User) (*auth.TokenDetails, error)
	Login(ctx context.Context, email, password string) (*auth.TokenDetails, error)
}
