package services

import (
	"context"
	"fmt"
	"time"

	"radarcontacts/internal/models"
	"radarcontacts/internal/repositories"
	"radarcontacts/internal/transformers"
	"radarcontacts/pkg/logger"
	"radarcontacts/pkg/metrics"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"
)

// Per-address statuses surfaced to the caller.
const (
	StatusInvalidAddress   = "Invalid address"
	StatusLookupFailed     = "Lookup failed"
	StatusNoProperty       = "No property found"
	StatusNoOwners         = "No owners found"
	StatusAlreadyPurchased = "Already purchased - no phones available"
	StatusNoPhones         = "No phone numbers available"
)

// cacheTTL keeps paid results around long enough that a re-run of the same
// board does not buy the same phone numbers twice.
const cacheTTL = 30 * 24 * time.Hour

type lookupService struct {
	radar       RadarClient
	transformer transformers.AddressTransformer
	repo        repositories.LookupRepository
	cache       repositories.LookupCache
	limiter     *rate.Limiter
}

// NewLookupService wires the lookup flow. lookupDelay paces consecutive
// address lookups to stay under the upstream rate limit.
func NewLookupService(
	radar RadarClient,
	transformer transformers.AddressTransformer,
	repo repositories.LookupRepository,
	cache repositories.LookupCache,
	lookupDelay time.Duration,
) LookupService {
	if lookupDelay <= 0 {
		lookupDelay = 2 * time.Second
	}
	return &lookupService{
		radar:       radar,
		transformer: transformer,
		repo:        repo,
		cache:       cache,
		limiter:     rate.NewLimiter(rate.Every(lookupDelay), 1),
	}
}

// LookupAddresses processes the addresses in order. A failure on one address
// is recorded on its result and never aborts the rest of the batch.
func (s *lookupService) LookupAddresses(ctx context.Context, addresses []string, requestedBy string) (*models.LookupBatch, error) {
	batch := &models.LookupBatch{
		ID:          primitive.NewObjectID(),
		BatchID:     uuid.NewString(),
		RequestedBy: requestedBy,
		Results:     make([]models.LookupResult, 0, len(addresses)),
		CreatedAt:   time.Now().UTC(),
	}

	for i, address := range addresses {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		logger.GlobalLogger.Printf("Looking up address %d/%d: %s", i+1, len(addresses), address)
		result := s.lookupOne(ctx, address)
		metrics.LookupsTotal.WithLabelValues(result.Status).Inc()
		batch.Results = append(batch.Results, result)
		batch.TotalCost += result.TotalCost
	}

	if s.repo != nil {
		if err := s.repo.SaveBatch(ctx, batch); err != nil {
			// Results already cost money to produce; losing the history
			// record is not worth failing the request over.
			logger.GlobalLogger.Errorf("Failed to persist lookup batch %s: %v", batch.BatchID, err)
		}
	}
	return batch, nil
}

func (s *lookupService) History(ctx context.Context, limit int) ([]models.LookupBatch, error) {
	return s.repo.FindRecent(ctx, limit)
}

// lookupOne resolves a single address to owners and their phone numbers.
func (s *lookupService) lookupOne(ctx context.Context, address string) models.LookupResult {
	result := models.LookupResult{
		Address: address,
		Owners:  []models.OwnerInfo{},
		Phones:  []string{},
	}

	if s.cache != nil {
		if cached, err := s.cache.GetResult(ctx, address); err == nil {
			metrics.CacheHitsTotal.Inc()
			logger.GlobalLogger.Debugf("Cache hit for address: %s", address)
			return *cached
		}
		metrics.CacheMissesTotal.Inc()
	}

	comp, err := s.transformer.ParseAddress(address)
	if err != nil {
		result.Status = StatusInvalidAddress
		result.Error = err.Error()
		return result
	}

	properties, err := s.radar.SearchProperties(ctx, *comp)
	if err != nil {
		result.Status = StatusLookupFailed
		result.Error = err.Error()
		return result
	}
	if len(properties) == 0 {
		result.Status = StatusNoProperty
		s.store(ctx, address, &result)
		return result
	}

	// A street address can match more than one property record; owners from
	// every match belong to the result.
	var owners []models.OwnerInfo
	for _, property := range properties {
		radarID := property.RadarID()
		if radarID == "" {
			continue
		}
		propertyOwners, err := s.radar.GetOwners(ctx, radarID)
		if err != nil {
			result.Status = StatusLookupFailed
			result.Error = err.Error()
			return result
		}
		owners = append(owners, propertyOwners...)
	}
	if len(owners) == 0 {
		result.Status = StatusNoOwners
		s.store(ctx, address, &result)
		return result
	}

	var phoneCost float64
	for i := range owners {
		owner := &owners[i]
		if owner.PersonKey == "" {
			owner.Phones = []string{}
			continue
		}

		phones := s.radar.GetOwnerPhones(ctx, owner.PersonKey)
		owner.Phones = phones.Phones
		owner.PhoneCost = phones.Cost
		phoneCost += phones.Cost
		result.Phones = appendUnique(result.Phones, phones.Phones)

		emails := s.radar.GetOwnerEmails(ctx, owner.PersonKey)
		owner.Emails = emails.Emails
		owner.EmailCost = emails.Cost
		result.Emails = appendUnique(result.Emails, emails.Emails)
		result.TotalCost += emails.Cost
	}
	result.Owners = owners
	result.TotalCost += phoneCost

	switch {
	case len(result.Phones) > 0:
		result.Status = fmt.Sprintf("Found %d phone number(s)", len(result.Phones))
	case phoneCost == 0:
		// Every owner came back empty without charging anything, which is
		// what a previously purchased but phoneless record looks like.
		result.Status = StatusAlreadyPurchased
	default:
		result.Status = StatusNoPhones
	}

	s.store(ctx, address, &result)
	return result
}

// store caches a finished result, best effort.
func (s *lookupService) store(ctx context.Context, address string, result *models.LookupResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetResult(ctx, address, result, cacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Failed to cache result for %s: %v", address, err)
	}
}

func appendUnique(dst []string, src []string) []string {
	for _, v := range src {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
