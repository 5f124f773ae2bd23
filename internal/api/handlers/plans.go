package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/request"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
)

// PlanHandler handles plan computation and persistence HTTP requests
type PlanHandler struct {
	allocationService *service.AllocationService
	planService       *service.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(allocationService *service.AllocationService, planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		allocationService: allocationService,
		planService:       planService,
	}
}

// planRequestFrom translates the HTTP payload into a service request, filling
// age-derived defaults for fields the caller left empty.
func planRequestFrom(body request.CreatePlanRequest) (service.PlanRequest, error) {
	profile := model.UserProfile{
		Age:                  body.Profile.Age,
		MonthlyIncome:        body.Profile.MonthlyIncome,
		MonthlyInvestment:    body.Profile.MonthlyInvestment,
		LumpSumInvestment:    body.Profile.LumpSumInvestment,
		HasEmergencyFund:     body.Profile.HasEmergencyFund,
		HasAdequateInsurance: body.Profile.HasAdequateInsurance,
	}

	method := model.AllocationMethod(body.Method)
	if body.Method == "" {
		method = model.MethodRiskProfile
	}

	riskProfile := model.RiskProfile(body.RiskProfile)
	if body.RiskProfile == "" {
		riskProfile = service.RiskProfileForAge(profile.Age)
	}

	equityStrategy := body.EquityStrategy
	if equityStrategy == "" {
		equityStrategy = service.RecommendedEquityStrategy(profile.Age)
	}

	debtStrategy := body.DebtStrategy
	if debtStrategy == "" {
		debtStrategy = "long_term"
	}

	req := service.PlanRequest{
		Profile:          profile,
		EquityStrategy:   equityStrategy,
		DebtStrategy:     debtStrategy,
		Method:           method,
		RiskProfile:      riskProfile,
		AddInternational: body.AddInternational,
	}

	if method == model.MethodCustom {
		if body.CustomEquityPercentage == nil {
			return service.PlanRequest{}, apperrors.ErrInvalidAllocationInput
		}
		req.CustomEquityPercentage = *body.CustomEquityPercentage
	}

	return req, nil
}

// Preview computes a plan without saving it.
//
// Endpoint: POST /api/plan/preview
func (h *PlanHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var body request.CreatePlanRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	req, err := planRequestFrom(body)
	if err != nil {
		respondServiceError(w, "custom method requires custom_equity_percentage", err)
		return
	}

	plan, err := h.allocationService.CreatePlan(req)
	if err != nil {
		respondServiceError(w, "failed to compute plan", err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// CreatePlanResponse wraps a computed plan with its stored identity.
type CreatePlanResponse struct {
	ID   string               `json:"id"`
	Name string               `json:"name"`
	Plan model.InvestmentPlan `json:"plan"`
}

// CreatePlan computes a plan and saves it under the given name.
//
// Endpoint: POST /api/plan/
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var body request.CreatePlanRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	req, err := planRequestFrom(body)
	if err != nil {
		respondServiceError(w, "custom method requires custom_equity_percentage", err)
		return
	}

	plan, err := h.allocationService.CreatePlan(req)
	if err != nil {
		respondServiceError(w, "failed to compute plan", err)
		return
	}

	rec, err := h.planService.Save(body.Name, req.Profile, req.Method, plan)
	if err != nil {
		respondServiceError(w, "failed to save plan", err)
		return
	}

	response := CreatePlanResponse{
		ID:   rec.ID,
		Name: rec.Name,
		Plan: plan,
	}
	respondJSON(w, http.StatusCreated, response)
}

// Plans lists all saved plans, newest first, without profile data.
//
// Endpoint: GET /api/plan/
func (h *PlanHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.List()
	if err != nil {
		respondServiceError(w, "failed to retrieve plans", err)
		return
	}

	respondJSON(w, http.StatusOK, plans)
}

// Plan fetches a saved plan by ID with its profile decrypted.
//
// Endpoint: GET /api/plan/{planId}
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	rec, err := h.planService.Get(planID)
	if err != nil {
		respondServiceError(w, "failed to retrieve plan", err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// DeletePlan removes a saved plan and its snapshots and drift events.
//
// Endpoint: DELETE /api/plan/{planId}
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	if err := h.planService.Delete(planID); err != nil {
		respondServiceError(w, "failed to delete plan", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
