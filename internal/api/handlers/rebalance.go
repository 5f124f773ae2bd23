package handlers

import (
	"net/http"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/request"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
)

// RebalanceHandler handles stateless rebalancing HTTP requests
type RebalanceHandler struct {
	rebalanceService *service.RebalanceService
}

// NewRebalanceHandler creates a new RebalanceHandler
func NewRebalanceHandler(rebalanceService *service.RebalanceService) *RebalanceHandler {
	return &RebalanceHandler{
		rebalanceService: rebalanceService,
	}
}

// Allocation converts current monetary values into allocation percentages.
//
// Endpoint: POST /api/rebalance/allocation
func (h *RebalanceHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	var body request.CurrentAllocationRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	percentages, err := h.rebalanceService.CurrentAllocation(body.CurrentValues)
	if err != nil {
		respondServiceError(w, "failed to compute current allocation", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"current_percentages": percentages,
	})
}

// DriftCheckResponse carries the drift verdict and the threshold applied.
type DriftCheckResponse struct {
	NeedsRebalance bool     `json:"needs_rebalance"`
	DriftedFunds   []string `json:"drifted_funds"`
	Threshold      float64  `json:"threshold"`
}

// Check runs a drift check of current holdings against a target allocation.
// Current state may be given as monetary values or as percentages; values take
// precedence. The threshold defaults to the configured value when omitted.
//
// Endpoint: POST /api/rebalance/check
func (h *RebalanceHandler) Check(w http.ResponseWriter, r *http.Request) {
	var body request.DriftCheckRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	currentPct := body.CurrentPercentages
	if len(body.CurrentValues) > 0 {
		var err error
		currentPct, err = h.rebalanceService.CurrentAllocation(body.CurrentValues)
		if err != nil {
			respondServiceError(w, "failed to compute current allocation", err)
			return
		}
	}

	threshold := h.rebalanceService.DefaultThreshold()
	if body.DriftThreshold != nil {
		threshold = *body.DriftThreshold
	}

	check, err := h.rebalanceService.CheckDrift(currentPct, body.TargetAllocations, threshold)
	if err != nil {
		respondServiceError(w, "failed to check drift", err)
		return
	}

	response := DriftCheckResponse{
		NeedsRebalance: check.NeedsRebalance,
		DriftedFunds:   check.DriftedFunds,
		Threshold:      threshold,
	}
	respondJSON(w, http.StatusOK, response)
}

// Trades computes the buy/sell amounts that move current holdings to the target
// allocation.
//
// Endpoint: POST /api/rebalance/trades
func (h *RebalanceHandler) Trades(w http.ResponseWriter, r *http.Request) {
	var body request.TradesRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	trades, err := h.rebalanceService.Trades(body.CurrentValues, body.TargetAllocations)
	if err != nil {
		respondServiceError(w, "failed to compute trades", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"trades": trades,
	})
}
