package service

import (
	"math"
	"sort"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// RoundingPrecision rounds percentages and monetary amounts to two decimal
// places (the smallest currency unit).
const RoundingPrecision = 100

// round2 rounds half away from zero to two decimals. All planner inputs are
// non-negative, so halves round up.
func round2(v float64) float64 {
	return math.Round(v*RoundingPrecision) / RoundingPrecision
}

// largestCategory returns the category with the greatest value. Ties are broken
// by ascending category name so residual assignment is deterministic.
func largestCategory(m map[string]float64) string {
	categories := make([]string, 0, len(m))
	for category := range m {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	best := categories[0]
	for _, category := range categories[1:] {
		if m[category] > m[best] {
			best = category
		}
	}
	return best
}

// unionCategories returns the sorted union of the categories present in either
// mapping. Categories missing from one side are treated as zero by callers.
func unionCategories(a, b map[string]float64) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for category := range a {
		seen[category] = true
	}
	for category := range b {
		seen[category] = true
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// triggerBands computes the rebalancing band per category:
// [max(0, target-threshold), min(100, target+threshold)].
func triggerBands(target map[string]float64, threshold float64) map[string]model.TriggerBand {
	bands := make(map[string]model.TriggerBand, len(target))
	for category, pct := range target {
		bands[category] = model.TriggerBand{
			Lower: round2(math.Max(0, pct-threshold)),
			Upper: round2(math.Min(100, pct+threshold)),
		}
	}
	return bands
}
