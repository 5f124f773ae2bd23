package service_test

import (
	"errors"
	"testing"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
)

// TestEquityForRiskProfile tests the age-to-equity curves.
//
// WHY: The curves decide the single most consequential number of a plan. Each
// tier has its own floor and cap; the clamping at both ends must hold.
func TestEquityForRiskProfile(t *testing.T) {
	tests := []struct {
		name        string
		riskProfile model.RiskProfile
		age         int
		want        float64
	}{
		{"moderate at 30", model.RiskModerate, 30, 70},
		{"moderate young hits cap", model.RiskModerate, 20, 75},
		{"moderate old hits floor", model.RiskModerate, 80, 30},
		{"aggressive at 30", model.RiskAggressive, 30, 80},
		{"aggressive young hits cap", model.RiskAggressive, 20, 85},
		{"aggressive old hits floor", model.RiskAggressive, 80, 40},
		{"conservative at 30", model.RiskConservative, 30, 60},
		{"conservative young hits cap", model.RiskConservative, 25, 60},
		{"conservative old hits floor", model.RiskConservative, 80, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.EquityForRiskProfile(tt.riskProfile, tt.age)
			if err != nil {
				t.Fatalf("EquityForRiskProfile() returned unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EquityForRiskProfile(%s, %d) = %v, want %v", tt.riskProfile, tt.age, got, tt.want)
			}
		})
	}

	t.Run("unknown risk profile is rejected", func(t *testing.T) {
		_, err := service.EquityForRiskProfile(model.RiskProfile("reckless"), 30)
		if !errors.Is(err, apperrors.ErrInvalidAllocationInput) {
			t.Errorf("Expected ErrInvalidAllocationInput, got %v", err)
		}
	})
}

// TestRiskProfileForAge tests the age-based default risk profile.
func TestRiskProfileForAge(t *testing.T) {
	tests := []struct {
		age  int
		want model.RiskProfile
	}{
		{25, model.RiskAggressive},
		{34, model.RiskAggressive},
		{35, model.RiskModerate},
		{54, model.RiskModerate},
		{55, model.RiskConservative},
		{70, model.RiskConservative},
	}

	for _, tt := range tests {
		if got := service.RiskProfileForAge(tt.age); got != tt.want {
			t.Errorf("RiskProfileForAge(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

// TestRecommendedEquityStrategy tests the age-based strategy default.
func TestRecommendedEquityStrategy(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{25, "aggressive_growth"},
		{34, "aggressive_growth"},
		{35, "balanced_growth"},
		{49, "balanced_growth"},
		{50, "market_weighted"},
		{65, "market_weighted"},
	}

	for _, tt := range tests {
		if got := service.RecommendedEquityStrategy(tt.age); got != tt.want {
			t.Errorf("RecommendedEquityStrategy(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

// TestEstimateRetirementCorpus tests the SIP future-value estimate.
//
// WHY: The estimate feeds retirement guidance; the zero-return branch and the
// degenerate no-horizon case must stay exact while the compounding case only
// needs to dominate simple accumulation.
func TestEstimateRetirementCorpus(t *testing.T) {
	t.Run("zero return accumulates linearly", func(t *testing.T) {
		got := service.EstimateRetirementCorpus(10000, 30, 60, 0)
		want := 10000.0 * 360
		if got != want {
			t.Errorf("EstimateRetirementCorpus() = %v, want %v", got, want)
		}
	})

	t.Run("no horizon returns zero", func(t *testing.T) {
		if got := service.EstimateRetirementCorpus(10000, 60, 60, 12); got != 0 {
			t.Errorf("Expected 0 for zero horizon, got %v", got)
		}
		if got := service.EstimateRetirementCorpus(10000, 65, 60, 12); got != 0 {
			t.Errorf("Expected 0 for negative horizon, got %v", got)
		}
	})

	t.Run("positive return beats linear accumulation", func(t *testing.T) {
		linear := 10000.0 * 360
		got := service.EstimateRetirementCorpus(10000, 30, 60, 12)
		if got <= linear {
			t.Errorf("Compounded corpus %v should exceed linear %v", got, linear)
		}
	})
}
