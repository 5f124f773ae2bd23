package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/request"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
)

// DriftHandler handles snapshot and drift HTTP requests for saved plans
type DriftHandler struct {
	driftScanService *service.DriftScanService
}

// NewDriftHandler creates a new DriftHandler
func NewDriftHandler(driftScanService *service.DriftScanService) *DriftHandler {
	return &DriftHandler{
		driftScanService: driftScanService,
	}
}

// Snapshot records the current holding values for a plan.
//
// Endpoint: POST /api/plan/{planId}/snapshot
func (h *DriftHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	var body request.SnapshotRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	snapshot, err := h.driftScanService.RecordSnapshot(planID, body.Values)
	if err != nil {
		respondServiceError(w, "failed to record snapshot", err)
		return
	}

	respondJSON(w, http.StatusCreated, snapshot)
}

// Drift checks the latest snapshot of a plan against its target allocation and
// stores the outcome.
//
// Endpoint: GET /api/plan/{planId}/drift
func (h *DriftHandler) Drift(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	event, err := h.driftScanService.CheckPlan(planID)
	if err != nil {
		respondServiceError(w, "failed to check drift", err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// DriftHistory lists the stored drift events for a plan, newest first.
//
// Endpoint: GET /api/plan/{planId}/drift/history
func (h *DriftHandler) DriftHistory(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	events, err := h.driftScanService.History(planID)
	if err != nil {
		respondServiceError(w, "failed to retrieve drift history", err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}
