package repositories

import (
	"context"
	"time"

	"radarcontacts/internal/models"
)

// LookupRepository persists completed lookup batches.
type LookupRepository interface {
	SaveBatch(ctx context.Context, batch *models.LookupBatch) error
	FindRecent(ctx context.Context, limit int) ([]models.LookupBatch, error)
}

// LookupCache caches per-address results so a repeat lookup does not
// re-incur upstream purchase cost.
type LookupCache interface {
	GetResult(ctx context.Context, address string) (*models.LookupResult, error)
	SetResult(ctx context.Context, address string, result *models.LookupResult, expiration time.Duration) error
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
