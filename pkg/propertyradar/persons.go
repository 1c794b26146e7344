package propertyradar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/logger"
)

type personsResponse struct {
	Results     []map[string]interface{} `json:"results"`
	TotalCost   flexFloat                `json:"totalCost"`
	ResultCount int                      `json:"resultCount"`
}

// GetOwners fetches the persons associated with a property. Raw records are
// mapped defensively: missing names become "Unknown Owner", missing role and
// type become "Unknown". An empty list is a valid outcome.
func (c *Client) GetOwners(ctx context.Context, radarID string) ([]models.OwnerInfo, error) {
	path := fmt.Sprintf("/properties/%s/persons", radarID)
	status, body, err := c.do(ctx, http.MethodGet, path, "persons", 1, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		logger.GlobalLogger.Errorf("Owners lookup failed: radar_id=%s, status=%d, response=%s", radarID, status, string(body))
		return nil, fmt.Errorf("owners lookup failed for %s: status %d: %s", radarID, status, string(body))
	}

	var resp personsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode owners response: %v", err)
	}

	owners := make([]models.OwnerInfo, 0, len(resp.Results))
	for _, record := range resp.Results {
		owner := models.OwnerInfo{
			PersonKey:     stringField(record, "PersonKey"),
			Name:          stringField(record, "EntityName"),
			OwnershipRole: stringField(record, "OwnershipRole"),
			PersonType:    stringField(record, "PersonType"),
		}
		if owner.Name == "" {
			owner.Name = stringField(record, "Name")
		}
		if owner.Name == "" {
			owner.Name = "Unknown Owner"
		}
		if owner.OwnershipRole == "" {
			owner.OwnershipRole = "Unknown"
		}
		if owner.PersonType == "" {
			owner.PersonType = "Unknown"
		}
		owners = append(owners, owner)
	}

	logger.GlobalLogger.Debugf("Owners lookup: radar_id=%s, owners=%d", radarID, len(owners))
	return owners, nil
}

// stringField reads a string value from a raw record, tolerating numeric keys
// the upstream occasionally sends for identifiers.
func stringField(record map[string]interface{}, key string) string {
	switch v := record[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
