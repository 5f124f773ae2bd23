package service

import (
	"fmt"
	"time"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/strategy"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/validation"
)

// AllocationService is the allocation engine. It derives the equity/debt split
// for an investor, applies the chosen strategies to produce per-category
// percentages of the total portfolio, and converts those percentages into SIP
// and lumpsum monetary breakdowns.
//
// The service holds no mutable state: CreatePlan is a pure computation over its
// inputs and the injected catalog, so concurrent calls need no coordination.
type AllocationService struct {
	catalog            *strategy.Catalog
	internationalShare float64
	driftThreshold     float64
}

// NewAllocationService creates a new AllocationService.
// internationalShare is the percentage of the equity allocation carved into the
// "international" category when requested; driftThreshold feeds the plan's
// rebalancing trigger bands.
func NewAllocationService(catalog *strategy.Catalog, internationalShare, driftThreshold float64) *AllocationService {
	return &AllocationService{
		catalog:            catalog,
		internationalShare: internationalShare,
		driftThreshold:     driftThreshold,
	}
}

// PlanRequest carries the inputs for one plan computation.
type PlanRequest struct {
	Profile        model.UserProfile
	EquityStrategy string
	DebtStrategy   string
	Method         model.AllocationMethod

	// RiskProfile is consulted when Method is MethodRiskProfile.
	RiskProfile model.RiskProfile

	// CustomEquityPercentage is consulted when Method is MethodCustom.
	CustomEquityPercentage float64

	AddInternational bool
}

// CreatePlan computes a complete investment plan for the request.
//
// Returns ErrInvalidProfile when the profile violates its invariants,
// ErrUnknownStrategy when a strategy name is not registered, and
// ErrInvalidAllocationInput for an unrecognized method or a custom equity
// percentage outside [0, 100].
func (s *AllocationService) CreatePlan(req PlanRequest) (model.InvestmentPlan, error) {
	if err := validation.ValidateProfile(req.Profile); err != nil {
		return model.InvestmentPlan{}, err
	}

	equityPct, debtPct, err := s.equityDebtSplit(req)
	if err != nil {
		return model.InvestmentPlan{}, err
	}

	equityWeights, err := s.catalog.Equity(req.EquityStrategy)
	if err != nil {
		return model.InvestmentPlan{}, err
	}
	debtWeights, err := s.catalog.Debt(req.DebtStrategy)
	if err != nil {
		return model.InvestmentPlan{}, err
	}

	raw := make(map[string]float64, len(equityWeights)+len(debtWeights)+1)
	for category, weight := range equityWeights {
		raw[category] = equityPct * weight / 100
	}

	// International exposure is carved out of the largest equity category so
	// the equity total, and therefore the debt percentage, stays unchanged.
	if req.AddInternational && equityPct > 0 && s.internationalShare > 0 {
		carve := equityPct * s.internationalShare / 100
		largest := largestCategory(raw)
		if carve > raw[largest] {
			carve = raw[largest]
		}
		raw[largest] -= carve
		raw[InternationalCategory] += carve
	}

	for category, weight := range debtWeights {
		raw[category] += debtPct * weight / 100
	}

	allocations := roundAllocations(raw)

	plan := model.InvestmentPlan{
		EquityStrategy:   req.EquityStrategy,
		DebtStrategy:     req.DebtStrategy,
		EquityPercentage: round2(equityPct),
		DebtPercentage:   round2(debtPct),
		Allocations:      allocations,
		SIPBreakdown:     moneyBreakdown(allocations, req.Profile.MonthlyInvestment),
		LumpsumBreakdown: moneyBreakdown(allocations, req.Profile.LumpSumInvestment),
		TriggerBands:     triggerBands(allocations, s.driftThreshold),
		Warnings:         planWarnings(req.Profile, equityPct),
		Recommendations:  planRecommendations(req.Profile, equityPct),
		CreatedAt:        time.Now().UTC(),
	}

	return plan, nil
}

// InternationalCategory is the fund category holding the carved-out
// international equity slice.
const InternationalCategory = "international"

// equityDebtSplit derives the equity and debt percentages for the request.
func (s *AllocationService) equityDebtSplit(req PlanRequest) (float64, float64, error) {
	switch req.Method {
	case model.MethodCustom:
		equityPct := req.CustomEquityPercentage
		if equityPct < 0 || equityPct > 100 {
			return 0, 0, fmt.Errorf("%w: equity percentage %.2f outside [0, 100]",
				apperrors.ErrInvalidAllocationInput, equityPct)
		}
		return equityPct, 100 - equityPct, nil

	case model.MethodRiskProfile:
		equityPct, err := EquityForRiskProfile(req.RiskProfile, req.Profile.Age)
		if err != nil {
			return 0, 0, err
		}
		return equityPct, 100 - equityPct, nil

	default:
		return 0, 0, fmt.Errorf("%w: unrecognized allocation method %q",
			apperrors.ErrInvalidAllocationInput, req.Method)
	}
}

// roundAllocations rounds every category to two decimals and assigns the
// residual (100 minus the rounded sum) to the largest category, so the
// sum-to-100 invariant holds exactly. Ties go to the lexicographically
// smallest category name.
func roundAllocations(raw map[string]float64) map[string]float64 {
	allocations := make(map[string]float64, len(raw))
	sum := 0.0
	for category, pct := range raw {
		allocations[category] = round2(pct)
		sum += allocations[category]
	}

	residual := round2(100 - sum)
	if residual != 0 && len(allocations) > 0 {
		largest := largestCategory(allocations)
		allocations[largest] = round2(allocations[largest] + residual)
	}

	return allocations
}

// moneyBreakdown converts allocation percentages into monetary amounts, rounded
// to the smallest currency unit. The rounding residual is assigned to the
// largest-amount category so the breakdown sums exactly to the stated total.
func moneyBreakdown(allocations map[string]float64, total float64) map[string]float64 {
	breakdown := make(map[string]float64, len(allocations))
	sum := 0.0
	for category, pct := range allocations {
		breakdown[category] = round2(total * pct / 100)
		sum += breakdown[category]
	}

	residual := round2(total - sum)
	if residual != 0 && len(breakdown) > 0 {
		largest := largestCategory(breakdown)
		breakdown[largest] = round2(breakdown[largest] + residual)
	}

	return breakdown
}
