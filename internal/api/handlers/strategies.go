package handlers

import (
	"net/http"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/strategy"
)

// StrategyHandler handles strategy catalog HTTP requests
type StrategyHandler struct {
	catalog *strategy.Catalog
}

// NewStrategyHandler creates a new StrategyHandler
func NewStrategyHandler(catalog *strategy.Catalog) *StrategyHandler {
	return &StrategyHandler{
		catalog: catalog,
	}
}

// StrategiesResponse lists the registered strategies by asset class.
type StrategiesResponse struct {
	Equity []strategy.Definition `json:"equity"`
	Debt   []strategy.Definition `json:"debt"`
}

// Strategies returns all registered equity and debt strategies with their
// category weights and descriptions.
func (h *StrategyHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	response := StrategiesResponse{
		Equity: h.catalog.EquityStrategies(),
		Debt:   h.catalog.DebtStrategies(),
	}
	respondJSON(w, http.StatusOK, response)
}
