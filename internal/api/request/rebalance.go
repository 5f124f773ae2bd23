package request

// CurrentAllocationRequest represents the request body for converting current
// holding values into allocation percentages.
type CurrentAllocationRequest struct {
	CurrentValues map[string]float64 `json:"current_values"`
}

// DriftCheckRequest represents the request body for a drift check. Either
// current values or pre-computed current percentages may be supplied; values
// take precedence. DriftThreshold falls back to the configured default when
// omitted.
type DriftCheckRequest struct {
	CurrentValues      map[string]float64 `json:"current_values,omitempty"`
	CurrentPercentages map[string]float64 `json:"current_percentages,omitempty"`
	TargetAllocations  map[string]float64 `json:"target_allocations"`
	DriftThreshold     *float64           `json:"drift_threshold,omitempty"`
}

// TradesRequest represents the request body for computing rebalancing trades.
type TradesRequest struct {
	CurrentValues     map[string]float64 `json:"current_values"`
	TargetAllocations map[string]float64 `json:"target_allocations"`
}

// SnapshotRequest represents the request body for recording current holding
// values against a saved plan.
type SnapshotRequest struct {
	Values map[string]float64 `json:"values"`
}
