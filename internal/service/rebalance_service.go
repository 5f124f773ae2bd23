package service

import (
	"fmt"
	"math"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/validation"
)

// RebalanceService computes current allocations, detects drift against a
// target, and proposes the trades that restore target weights. It is
// independent of the allocation engine at runtime and only consumes its output
// shape (category -> target percentage). All operations are pure.
type RebalanceService struct {
	defaultThreshold float64
}

// NewRebalanceService creates a new RebalanceService with the given default
// drift threshold in percentage points.
func NewRebalanceService(defaultThreshold float64) *RebalanceService {
	return &RebalanceService{defaultThreshold: defaultThreshold}
}

// DefaultThreshold returns the configured default drift threshold.
func (s *RebalanceService) DefaultThreshold() float64 {
	return s.defaultThreshold
}

// CurrentAllocation converts current monetary values into percentages of the
// portfolio total, rounded to two decimals. This is a read-only diagnostic: no
// residual adjustment is applied, so the result need not sum exactly to 100.
//
// Returns ErrEmptyPortfolio when the total value is zero and
// ErrInvalidAllocationInput when any value is negative.
func (s *RebalanceService) CurrentAllocation(currentValues map[string]float64) (map[string]float64, error) {
	if err := validation.ValidateHoldingValues(currentValues); err != nil {
		return nil, err
	}

	total := 0.0
	for _, value := range currentValues {
		total += value
	}
	if total <= 0 {
		return nil, apperrors.ErrEmptyPortfolio
	}

	percentages := make(map[string]float64, len(currentValues))
	for category, value := range currentValues {
		percentages[category] = round2(value / total * 100)
	}

	return percentages, nil
}

// CheckDrift compares current percentages against target percentages over the
// union of their categories, treating missing entries as zero. A category is
// drifted when its absolute deviation strictly exceeds the threshold; one
// sitting exactly at the threshold is not drifted.
//
// Returns ErrInvalidThreshold when threshold is not positive.
func (s *RebalanceService) CheckDrift(currentPct, targetPct map[string]float64, threshold float64) (model.DriftCheck, error) {
	if threshold <= 0 {
		return model.DriftCheck{}, fmt.Errorf("%w: %.2f", apperrors.ErrInvalidThreshold, threshold)
	}

	drifted := []string{}
	for _, category := range unionCategories(currentPct, targetPct) {
		deviation := math.Abs(currentPct[category] - targetPct[category])
		if deviation > threshold {
			drifted = append(drifted, category)
		}
	}

	return model.DriftCheck{
		NeedsRebalance: len(drifted) > 0,
		DriftedFunds:   drifted,
	}, nil
}

// Trades computes the signed amount to buy (positive) or sell (negative) per
// category so the portfolio matches the target allocation of its own current
// total. Trades only redistribute existing capital, so they sum to zero within
// rounding tolerance.
//
// Categories present in the target but absent from the holdings are bought from
// zero. Categories held but absent from the target are sold in full; callers
// that want to leave a holding alone must include it in the target.
//
// Returns ErrEmptyPortfolio when the total value is zero and
// ErrInvalidAllocationInput when values are negative or the target percentages
// do not sum to 100.
func (s *RebalanceService) Trades(currentValues, targetPct map[string]float64) (map[string]float64, error) {
	if err := validation.ValidateHoldingValues(currentValues); err != nil {
		return nil, err
	}
	if err := validateTargetAllocations(targetPct); err != nil {
		return nil, err
	}

	total := 0.0
	for _, value := range currentValues {
		total += value
	}
	if total <= 0 {
		return nil, apperrors.ErrEmptyPortfolio
	}

	trades := make(map[string]float64)
	for _, category := range unionCategories(currentValues, targetPct) {
		targetValue := total * targetPct[category] / 100
		trades[category] = round2(targetValue - currentValues[category])
	}

	return trades, nil
}

// TriggerBands returns the rebalancing band per target category.
// Returns ErrInvalidThreshold when threshold is not positive.
func (s *RebalanceService) TriggerBands(targetPct map[string]float64, threshold float64) (map[string]model.TriggerBand, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: %.2f", apperrors.ErrInvalidThreshold, threshold)
	}
	return triggerBands(targetPct, threshold), nil
}

// validateTargetAllocations checks that target percentages are non-negative and
// sum to 100 within rounding tolerance. A short target would silently remove
// capital from the portfolio, breaking trade neutrality.
func validateTargetAllocations(targetPct map[string]float64) error {
	sum := 0.0
	for category, pct := range targetPct {
		if pct < 0 {
			return fmt.Errorf("%w: target percentage for %s is negative",
				apperrors.ErrInvalidAllocationInput, category)
		}
		sum += pct
	}
	if math.Abs(sum-100) > 0.01 {
		return fmt.Errorf("%w: target percentages sum to %.2f, expected 100",
			apperrors.ErrInvalidAllocationInput, sum)
	}
	return nil
}
