package repositories

import (
	"context"
	"time"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/cache"
)

type lookupCache struct{}

func NewLookupCache() LookupCache {
	return &lookupCache{}
}

func (c *lookupCache) GetResult(ctx context.Context, address string) (*models.LookupResult, error) {
	var result models.LookupResult
	if err := cache.Get(ctx, cache.LookupKey(address), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *lookupCache) SetResult(ctx context.Context, address string, result *models.LookupResult, expiration time.Duration) error {
	return cache.Set(ctx, cache.LookupKey(address), result, expiration)
}
