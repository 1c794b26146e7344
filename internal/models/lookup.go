package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddressComponents holds a free-text address split into the pieces the
// PropertyRadar criteria format expects. Derived, never persisted on its own.
type AddressComponents struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// PropertyResult is an opaque property record returned by the upstream search.
// Fields other than RadarID pass through unmodified.
type PropertyResult map[string]interface{}

// RadarID returns the upstream property identifier, or "" when absent.
func (p PropertyResult) RadarID() string {
	if id, ok := p["RadarID"].(string); ok {
		return id
	}
	return ""
}

// OwnerInfo is an owner record mapped defensively from the persons endpoint.
type OwnerInfo struct {
	PersonKey     string   `json:"person_key" bson:"person_key"`
	Name          string   `json:"name" bson:"name"`
	OwnershipRole string   `json:"ownership_role" bson:"ownership_role"`
	PersonType    string   `json:"person_type" bson:"person_type"`
	Phones        []string `json:"phones" bson:"phones"`
	Emails        []string `json:"emails,omitempty" bson:"emails,omitempty"`
	PhoneCost     float64  `json:"phone_cost" bson:"phone_cost"`
	EmailCost     float64  `json:"email_cost,omitempty" bson:"email_cost,omitempty"`
}

// PhoneResult is the outcome of the phone retrieval fallback for one owner.
type PhoneResult struct {
	Phones []string `json:"phones"`
	Cost   float64  `json:"cost"`
}

// EmailResult is the outcome of the email retrieval fallback for one owner.
type EmailResult struct {
	Emails []string `json:"emails"`
	Cost   float64  `json:"cost"`
}

// LookupResult is the per-address outcome returned to the caller.
type LookupResult struct {
	Address   string      `json:"address" bson:"address"`
	Status    string      `json:"status" bson:"status"`
	Owners    []OwnerInfo `json:"owners" bson:"owners"`
	Phones    []string    `json:"phones" bson:"phones"`
	Emails    []string    `json:"emails,omitempty" bson:"emails,omitempty"`
	TotalCost float64     `json:"total_cost" bson:"total_cost"`
	Error     string      `json:"error,omitempty" bson:"error,omitempty"`
}

// LookupBatch is a persisted batch of lookup results.
type LookupBatch struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	BatchID     string             `json:"batch_id" bson:"batch_id"`
	RequestedBy string             `json:"requested_by" bson:"requested_by"`
	Results     []LookupResult     `json:"results" bson:"results"`
	TotalCost   float64            `json:"total_cost" bson:"total_cost"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// LookupRequest is the inbound request payload for a batch lookup.
type LookupRequest struct {
	Addresses []string `json:"addresses" binding:"required"`
}

// BoardImportRequest selects a board to pull addresses from. Empty fields fall
// back to the configured board.
type BoardImportRequest struct {
	BoardID string `json:"board_id"`
	Limit   int    `json:"limit"`
}
