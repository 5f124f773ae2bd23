package model

import "time"

// PlanRecord is a saved investment plan as stored in the database. The profile
// is encrypted at rest and only populated after decryption in the service layer;
// List operations leave it zero-valued.
type PlanRecord struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	CreatedAt        time.Time          `json:"created_at"`
	EquityStrategy   string             `json:"equity_strategy"`
	DebtStrategy     string             `json:"debt_strategy"`
	Method           AllocationMethod   `json:"allocation_method"`
	EquityPercentage float64            `json:"equity_percentage"`
	DebtPercentage   float64            `json:"debt_percentage"`
	Allocations      map[string]float64 `json:"allocations"`
	SIPBreakdown     map[string]float64 `json:"sip_breakdown"`
	LumpsumBreakdown map[string]float64 `json:"lumpsum_breakdown"`
	Profile          UserProfile        `json:"profile,omitzero"`
}
