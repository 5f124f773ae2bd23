package model_test

import (
	"testing"
	"time"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// TestInvestmentPlan_TotalFundsCount tests the funded-category count.
//
// WHY: A 100% equity plan still carries debt categories at zero; the count
// must reflect only categories that actually receive money.
func TestInvestmentPlan_TotalFundsCount(t *testing.T) {
	plan := model.InvestmentPlan{
		Allocations: map[string]float64{"largecap": 100, "fd": 0},
	}
	if got := plan.TotalFundsCount(); got != 1 {
		t.Errorf("TotalFundsCount() = %d, want 1", got)
	}

	plan.Allocations = map[string]float64{"largecap": 31.5, "midcap": 21, "smallcap": 17.5, "fd": 30}
	if got := plan.TotalFundsCount(); got != 4 {
		t.Errorf("TotalFundsCount() = %d, want 4", got)
	}
}

// TestInvestmentPlan_ExportMap tests the export flattening.
func TestInvestmentPlan_ExportMap(t *testing.T) {
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	plan := model.InvestmentPlan{
		EquityStrategy:   "balanced_growth",
		DebtStrategy:     "long_term",
		EquityPercentage: 70,
		DebtPercentage:   30,
		Allocations:      map[string]float64{"largecap": 70, "fd": 30},
		CreatedAt:        created,
	}

	export := plan.ExportMap()

	if export["equity_strategy"] != "balanced_growth" {
		t.Errorf("Unexpected equity_strategy: %v", export["equity_strategy"])
	}
	if export["total_funds"] != 2 {
		t.Errorf("Unexpected total_funds: %v", export["total_funds"])
	}
	if export["created_at"] != "2026-08-30T12:00:00Z" {
		t.Errorf("Unexpected created_at: %v", export["created_at"])
	}
}

// TestUserProfile_InvestmentSummary tests the yearly aggregation.
func TestUserProfile_InvestmentSummary(t *testing.T) {
	profile := model.UserProfile{
		MonthlyInvestment: 20000,
		LumpSumInvestment: 100000,
	}

	summary := profile.InvestmentSummary()

	if summary.MonthlySIP != 20000 {
		t.Errorf("MonthlySIP = %v, want 20000", summary.MonthlySIP)
	}
	if summary.AnnualSIP != 240000 {
		t.Errorf("AnnualSIP = %v, want 240000", summary.AnnualSIP)
	}
	if summary.LumpSum != 100000 {
		t.Errorf("LumpSum = %v, want 100000", summary.LumpSum)
	}
	if summary.FirstYearTotal != 340000 {
		t.Errorf("FirstYearTotal = %v, want 340000", summary.FirstYearTotal)
	}
}
