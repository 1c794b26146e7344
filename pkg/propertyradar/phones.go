package propertyradar

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/logger"
	"radarcontacts/pkg/metrics"
)

// The upstream rejects re-purchasing data an account already owns. These body
// markers on a 400 distinguish that condition from a real request failure.
var alreadyPurchasedMarkers = []string{
	"already purchased",
	"not available for purchase",
}

// Alternative resource paths probed after the purchase and cached reads fail,
// relative to /v1/persons/{key}. Probed in this order, each with Purchase=0
// then Purchase=1.
var altEndpointSuffixes = []string{"", "/contact", "/contacts"}

// stepOutcome tags the result of one fallback state.
type stepOutcome int

const (
	stepFound    stepOutcome = iota // contacts retrieved, stop here
	stepContinue                    // nothing retrieved, next state may recover
	stepFail                        // terminal, give up with empty result
)

type phoneStep struct {
	outcome stepOutcome
	phones  []string
	cost    float64
}

// GetOwnerPhones runs the purchase/cached/alternative-endpoint fallback for
// one owner. It never returns an error: every failure mode degrades to an
// empty result with zero cost. A successful purchase that extracts nothing is
// still terminal, so an empty result with zero cost is ambiguous between
// "already purchased but inaccessible" and "genuinely no phone data".
func (c *Client) GetOwnerPhones(ctx context.Context, personKey string) models.PhoneResult {
	empty := models.PhoneResult{Phones: []string{}}
	if personKey == "" {
		logger.GlobalLogger.Debug("No person key for owner, skipping phone lookup")
		return empty
	}

	path := fmt.Sprintf("/persons/%s/Phone", personKey)

	step := c.purchasePhones(ctx, path)
	if step.outcome == stepFound {
		return phoneResult(step)
	}
	if step.outcome == stepFail {
		return empty
	}

	step = c.cachedPhones(ctx, path)
	if step.outcome == stepFound {
		return phoneResult(step)
	}

	step = c.alternativeEndpointContacts(ctx, personKey, FindPhones)
	if step.outcome == stepFound {
		return phoneResult(step)
	}
	return empty
}

// purchasePhones is state 1: POST with Purchase=1. A 2xx response is terminal
// whether or not extraction finds anything; a 400 carrying an
// already-purchased marker hands off to the cached read; anything else fails.
func (c *Client) purchasePhones(ctx context.Context, path string) phoneStep {
	status, body, err := c.do(ctx, http.MethodPost, path, "phone", 1, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Phone purchase request failed: %v", err)
		return phoneStep{outcome: stepFail}
	}

	if status == http.StatusOK {
		phones, cost := extractPhonesWithCost(body)
		if cost > 0 {
			metrics.PurchaseCostTotal.Add(cost)
		}
		return phoneStep{outcome: stepFound, phones: phones, cost: cost}
	}

	if status == http.StatusBadRequest && isAlreadyPurchased(string(body)) {
		logger.GlobalLogger.Debugf("Phone data already purchased, falling back to cached read: path=%s", path)
		return phoneStep{outcome: stepContinue}
	}

	logger.GlobalLogger.Errorf("Phone purchase failed: path=%s, status=%d, response=%s", path, status, string(body))
	return phoneStep{outcome: stepFail}
}

// cachedPhones is state 2: POST with Purchase=0. Only a 2xx response that
// actually yields phones is terminal; the cost of an empty cached response is
// discarded, not accumulated.
func (c *Client) cachedPhones(ctx context.Context, path string) phoneStep {
	status, body, err := c.do(ctx, http.MethodPost, path, "phone", 0, nil)
	if err != nil || status != http.StatusOK {
		return phoneStep{outcome: stepContinue}
	}

	phones, cost := extractPhonesWithCost(body)
	if len(phones) > 0 {
		return phoneStep{outcome: stepFound, phones: phones, cost: cost}
	}
	return phoneStep{outcome: stepContinue}
}

// alternativeEndpointContacts is state 3: probe the alternate person resources
// in fixed order, free mode before paid. The first combination yielding at
// least one contact short-circuits with cost 0; these endpoints only ever
// expose already-owned data.
func (c *Client) alternativeEndpointContacts(ctx context.Context, personKey string, extract func(interface{}) []string) phoneStep {
	for _, suffix := range altEndpointSuffixes {
		path := fmt.Sprintf("/persons/%s%s", personKey, suffix)
		for _, purchase := range []int{0, 1} {
			status, body, err := c.do(ctx, http.MethodGet, path, "persons_alt", purchase, nil)
			if err != nil || status != http.StatusOK {
				continue
			}
			data, err := decodeBody(body)
			if err != nil {
				continue
			}
			if contacts := extract(data); len(contacts) > 0 {
				logger.GlobalLogger.Debugf("Contacts found via alternate endpoint: path=%s, purchase=%d", path, purchase)
				return phoneStep{outcome: stepFound, phones: contacts}
			}
		}
	}
	return phoneStep{outcome: stepContinue}
}

func extractPhonesWithCost(body []byte) ([]string, float64) {
	data, err := decodeBody(body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to decode phone response: %v", err)
		return nil, 0
	}
	return FindPhones(data), costField(data)
}

// costField pulls the reported totalCost off a decoded response, tolerating
// quoted numbers.
func costField(data interface{}) float64 {
	record, ok := data.(map[string]interface{})
	if !ok {
		return 0
	}
	switch v := record["totalCost"].(type) {
	case float64:
		return v
	case string:
		var f flexFloat
		if err := f.UnmarshalJSON([]byte(`"` + v + `"`)); err == nil {
			return float64(f)
		}
	}
	return 0
}

func isAlreadyPurchased(body string) bool {
	lower := strings.ToLower(body)
	for _, marker := range alreadyPurchasedMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func phoneResult(step phoneStep) models.PhoneResult {
	if step.phones == nil {
		step.phones = []string{}
	}
	return models.PhoneResult{Phones: step.phones, Cost: step.cost}
}
