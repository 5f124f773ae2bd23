package testutil

import (
	"testing"
	"time"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
)

// PlanBuilder provides a fluent interface for creating saved test plans.
//
// Example usage:
//
//	// Simple creation with defaults
//	rec := testutil.NewPlan().Build(t, planService)
//
//	// Customized plan
//	rec := testutil.NewPlan().
//	    WithName("Custom Plan").
//	    WithAllocations(map[string]float64{"largecap": 70, "fd": 30}).
//	    Build(t, planService)
type PlanBuilder struct {
	Name    string
	Profile model.UserProfile
	Method  model.AllocationMethod
	Plan    model.InvestmentPlan
}

// NewPlan creates a PlanBuilder with sensible defaults: a moderate 70/30 plan
// for the default test profile.
func NewPlan() *PlanBuilder {
	return &PlanBuilder{
		Name:    MakePlanName("Test Plan"),
		Profile: MakeProfile(),
		Method:  model.MethodRiskProfile,
		Plan: model.InvestmentPlan{
			EquityStrategy:   "balanced_growth",
			DebtStrategy:     "long_term",
			EquityPercentage: 70,
			DebtPercentage:   30,
			Allocations:      map[string]float64{"largecap": 31.5, "midcap": 21, "smallcap": 17.5, "fd": 30},
			SIPBreakdown:     map[string]float64{"largecap": 6300, "midcap": 4200, "smallcap": 3500, "fd": 6000},
			LumpsumBreakdown: map[string]float64{"largecap": 31500, "midcap": 21000, "smallcap": 17500, "fd": 30000},
			CreatedAt:        time.Now().UTC(),
		},
	}
}

// WithName sets a custom name.
func (b *PlanBuilder) WithName(name string) *PlanBuilder {
	b.Name = name
	return b
}

// WithProfile sets a custom investor profile.
func (b *PlanBuilder) WithProfile(profile model.UserProfile) *PlanBuilder {
	b.Profile = profile
	return b
}

// WithMethod sets the allocation method.
func (b *PlanBuilder) WithMethod(method model.AllocationMethod) *PlanBuilder {
	b.Method = method
	return b
}

// WithAllocations sets the target allocation percentages.
func (b *PlanBuilder) WithAllocations(allocations map[string]float64) *PlanBuilder {
	b.Plan.Allocations = allocations
	return b
}

// Build saves the plan through the given service and returns the stored record.
func (b *PlanBuilder) Build(t *testing.T, planService *service.PlanService) model.PlanRecord {
	t.Helper()

	rec, err := planService.Save(b.Name, b.Profile, b.Method, b.Plan)
	if err != nil {
		t.Fatalf("Failed to save test plan: %v", err)
	}
	return rec
}
