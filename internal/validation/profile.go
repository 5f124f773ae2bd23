package validation

import (
	"fmt"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// MaxAge is the upper bound accepted for an investor's age.
const MaxAge = 120

// ValidateProfile checks the UserProfile invariants: positive realistic age and
// non-negative monetary amounts. Returns an error wrapping
// apperrors.ErrInvalidProfile listing every violated field.
func ValidateProfile(p model.UserProfile) error {
	fields := make(map[string]string)

	if p.Age <= 0 {
		fields["age"] = "age must be positive"
	} else if p.Age > MaxAge {
		fields["age"] = fmt.Sprintf("age must be %d or less", MaxAge)
	}

	if p.MonthlyIncome < 0 {
		fields["monthly_income"] = "monthly income cannot be negative"
	}

	if p.MonthlyInvestment < 0 {
		fields["monthly_investment"] = "monthly investment cannot be negative"
	} else if p.MonthlyIncome > 0 && p.MonthlyInvestment > p.MonthlyIncome {
		fields["monthly_investment"] = "monthly investment cannot exceed monthly income"
	}

	if p.LumpSumInvestment < 0 {
		fields["lump_sum_investment"] = "lumpsum investment cannot be negative"
	}

	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidProfile, (&Error{Fields: fields}).Error())
	}
	return nil
}

// ValidateHoldingValues checks that a category-to-value mapping contains no
// negative amounts. An empty or all-zero mapping is legal here; the rebalancer
// rejects it separately with ErrEmptyPortfolio where division is involved.
func ValidateHoldingValues(values map[string]float64) error {
	fields := make(map[string]string)
	for category, value := range values {
		if value < 0 {
			fields[category] = "current value cannot be negative"
		}
	}
	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidAllocationInput, (&Error{Fields: fields}).Error())
	}
	return nil
}
