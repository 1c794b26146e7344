package propertyradar

import (
	"context"
	"fmt"
	"net/http"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/logger"
	"radarcontacts/pkg/metrics"
)

// GetOwnerEmails runs the same purchase/cached/alternative fallback as the
// phone retrieval against the Email sub-resource. Soft-failure semantics are
// identical: no error is ever surfaced.
func (c *Client) GetOwnerEmails(ctx context.Context, personKey string) models.EmailResult {
	empty := models.EmailResult{Emails: []string{}}
	if personKey == "" {
		return empty
	}

	path := fmt.Sprintf("/persons/%s/Email", personKey)

	step := c.purchaseEmails(ctx, path)
	if step.outcome == stepFound {
		return emailResult(step)
	}
	if step.outcome == stepFail {
		return empty
	}

	step = c.cachedEmails(ctx, path)
	if step.outcome == stepFound {
		return emailResult(step)
	}

	step = c.alternativeEndpointContacts(ctx, personKey, FindEmails)
	if step.outcome == stepFound {
		return emailResult(step)
	}
	return empty
}

func (c *Client) purchaseEmails(ctx context.Context, path string) phoneStep {
	status, body, err := c.do(ctx, http.MethodPost, path, "email", 1, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Email purchase request failed: %v", err)
		return phoneStep{outcome: stepFail}
	}

	if status == http.StatusOK {
		emails, cost := extractEmailsWithCost(body)
		if cost > 0 {
			metrics.PurchaseCostTotal.Add(cost)
		}
		return phoneStep{outcome: stepFound, phones: emails, cost: cost}
	}

	if status == http.StatusBadRequest && isAlreadyPurchased(string(body)) {
		logger.GlobalLogger.Debugf("Email data already purchased, falling back to cached read: path=%s", path)
		return phoneStep{outcome: stepContinue}
	}

	logger.GlobalLogger.Errorf("Email purchase failed: path=%s, status=%d, response=%s", path, status, string(body))
	return phoneStep{outcome: stepFail}
}

func (c *Client) cachedEmails(ctx context.Context, path string) phoneStep {
	status, body, err := c.do(ctx, http.MethodPost, path, "email", 0, nil)
	if err != nil || status != http.StatusOK {
		return phoneStep{outcome: stepContinue}
	}

	emails, cost := extractEmailsWithCost(body)
	if len(emails) > 0 {
		return phoneStep{outcome: stepFound, phones: emails, cost: cost}
	}
	return phoneStep{outcome: stepContinue}
}

func extractEmailsWithCost(body []byte) ([]string, float64) {
	data, err := decodeBody(body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to decode email response: %v", err)
		return nil, 0
	}
	return FindEmails(data), costField(data)
}

func emailResult(step phoneStep) models.EmailResult {
	if step.phones == nil {
		step.phones = []string{}
	}
	return models.EmailResult{Emails: step.phones, Cost: step.cost}
}
