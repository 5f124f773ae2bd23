package service

import (
	"fmt"
	"math"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// EquityForRiskProfile derives the equity percentage from the investor's age
// and risk profile. Each tier follows a linearly decreasing age curve with its
// own floor and cap:
//
//	aggressive:   clamp(110 - age, 40, 85)
//	moderate:     clamp(100 - age, 30, 75)
//	conservative: clamp(90 - age, 20, 60)
//
// A moderate 30-year-old therefore gets 70% equity.
func EquityForRiskProfile(riskProfile model.RiskProfile, age int) (float64, error) {
	switch riskProfile {
	case model.RiskAggressive:
		return clamp(float64(110-age), 40, 85), nil
	case model.RiskModerate:
		return clamp(float64(100-age), 30, 75), nil
	case model.RiskConservative:
		return clamp(float64(90-age), 20, 60), nil
	default:
		return 0, fmt.Errorf("%w: unrecognized risk profile %q",
			apperrors.ErrInvalidAllocationInput, riskProfile)
	}
}

// RiskProfileForAge suggests a risk profile from age alone: aggressive below
// 35, moderate below 55, conservative otherwise.
func RiskProfileForAge(age int) model.RiskProfile {
	switch {
	case age < 35:
		return model.RiskAggressive
	case age < 55:
		return model.RiskModerate
	default:
		return model.RiskConservative
	}
}

// RecommendedEquityStrategy suggests an equity strategy from age: wealth
// building below 35, growth with stability below 50, preservation after.
func RecommendedEquityStrategy(age int) string {
	switch {
	case age < 35:
		return "aggressive_growth"
	case age < 50:
		return "balanced_growth"
	default:
		return "market_weighted"
	}
}

// EstimateRetirementCorpus estimates the corpus accumulated by retirement
// through monthly SIP investments, using the future value of an annuity due
// with monthly compounding at the expected annual return percentage.
func EstimateRetirementCorpus(monthlySIP float64, currentAge, retirementAge int, annualReturnPct float64) float64 {
	months := (retirementAge - currentAge) * 12
	if months <= 0 {
		return 0
	}

	monthlyReturn := annualReturnPct / 12 / 100
	if monthlyReturn == 0 {
		return round2(monthlySIP * float64(months))
	}

	fv := monthlySIP *
		((math.Pow(1+monthlyReturn, float64(months)) - 1) / monthlyReturn) *
		(1 + monthlyReturn)
	return round2(fv)
}

func clamp(v, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, v))
}
