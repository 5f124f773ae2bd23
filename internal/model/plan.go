package model

import "time"

// TriggerBand is the allocation range outside which a fund category should be
// rebalanced. Bounds are percentage points of the total portfolio.
type TriggerBand struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// InvestmentPlan is the output of the allocation engine: the equity/debt split,
// per-category percentages of the total portfolio, and the monetary breakdowns
// derived from the profile's SIP and lumpsum amounts. It is an immutable value
// object; downstream consumers (UI, export) read it as-is.
//
// Invariants: EquityPercentage + DebtPercentage == 100; Allocations sums to 100
// within 0.01; SIPBreakdown sums exactly to the profile's monthly investment and
// LumpsumBreakdown to its lumpsum amount.
type InvestmentPlan struct {
	EquityStrategy   string                 `json:"equity_strategy"`
	DebtStrategy     string                 `json:"debt_strategy"`
	EquityPercentage float64                `json:"equity_percentage"`
	DebtPercentage   float64                `json:"debt_percentage"`
	Allocations      map[string]float64     `json:"allocations"`
	SIPBreakdown     map[string]float64     `json:"sip_breakdown"`
	LumpsumBreakdown map[string]float64     `json:"lumpsum_breakdown"`
	TriggerBands     map[string]TriggerBand `json:"trigger_bands"`
	Warnings         []string               `json:"warnings"`
	Recommendations  []string               `json:"recommendations"`
	CreatedAt        time.Time              `json:"created_at"`
}

// TotalFundsCount returns the number of fund categories with a non-zero
// allocation.
func (p InvestmentPlan) TotalFundsCount() int {
	count := 0
	for _, pct := range p.Allocations {
		if pct > 0 {
			count++
		}
	}
	return count
}

// ExportMap flattens the plan into a single mapping suitable for serialization
// by an external CSV/JSON writer. The core defines only the shape, not the file
// format.
func (p InvestmentPlan) ExportMap() map[string]any {
	return map[string]any{
		"equity_strategy":   p.EquityStrategy,
		"debt_strategy":     p.DebtStrategy,
		"equity_percentage": p.EquityPercentage,
		"debt_percentage":   p.DebtPercentage,
		"allocations":       p.Allocations,
		"sip_breakdown":     p.SIPBreakdown,
		"lumpsum_breakdown": p.LumpsumBreakdown,
		"trigger_bands":     p.TriggerBands,
		"total_funds":       p.TotalFundsCount(),
		"warnings":          p.Warnings,
		"recommendations":   p.Recommendations,
		"created_at":        p.CreatedAt.Format(time.RFC3339),
	}
}
