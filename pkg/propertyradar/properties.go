package propertyradar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/logger"
	"radarcontacts/pkg/metrics"
)

// criterion is one entry of the search criteria array. The upstream requires
// lowercase field names here.
type criterion struct {
	Name  string   `json:"name"`
	Value []string `json:"value"`
}

type searchRequest struct {
	Criteria []criterion `json:"Criteria"`
}

type searchResponse struct {
	Results     []models.PropertyResult `json:"results"`
	TotalCost   flexFloat               `json:"totalCost"`
	ResultCount int                     `json:"resultCount"`
}

// SearchProperties posts the parsed address components as separate criteria
// with purchasing enabled and returns the matching property records. An empty
// result list is a valid outcome; a non-2xx status is an error.
func (c *Client) SearchProperties(ctx context.Context, comp models.AddressComponents) ([]models.PropertyResult, error) {
	payload := searchRequest{
		Criteria: []criterion{
			{Name: "Address", Value: []string{comp.Street}},
			{Name: "City", Value: []string{comp.City}},
			{Name: "State", Value: []string{comp.State}},
			{Name: "ZipFive", Value: []string{comp.Zip}},
		},
	}

	status, body, err := c.do(ctx, http.MethodPost, "/properties", "properties", 1, payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		logger.GlobalLogger.Errorf("Property search failed: street=%s, city=%s, status=%d, response=%s",
			comp.Street, comp.City, status, string(body))
		return nil, fmt.Errorf("property search failed: status %d: %s", status, string(body))
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode property search response: %v", err)
	}

	if cost := float64(resp.TotalCost); cost > 0 {
		metrics.PurchaseCostTotal.Add(cost)
	}
	logger.GlobalLogger.Debugf("Property search: street=%s, results=%d, cost=%.2f",
		comp.Street, len(resp.Results), float64(resp.TotalCost))
	return resp.Results, nil
}
