package service_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/testutil"
)

// TestAllocationService_CreatePlan tests the core plan computation.
//
// WHY: The allocation numbers drive real money movements. Percentages must sum
// to exactly 100 and the monetary breakdowns must sum exactly to the stated
// SIP and lumpsum amounts, with documented reference cases held fixed.
func TestAllocationService_CreatePlan(t *testing.T) {
	t.Run("moderate 30-year-old with balanced growth", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		profile := testutil.MakeProfile()
		profile.MonthlyInvestment = 30000

		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:        profile,
			EquityStrategy: "balanced_growth",
			DebtStrategy:   "long_term",
			Method:         model.MethodRiskProfile,
			RiskProfile:    model.RiskModerate,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		if plan.EquityPercentage != 70 {
			t.Errorf("Expected equity percentage 70, got %v", plan.EquityPercentage)
		}
		if plan.DebtPercentage != 30 {
			t.Errorf("Expected debt percentage 30, got %v", plan.DebtPercentage)
		}

		wantAllocations := map[string]float64{
			"largecap": 31.5,
			"midcap":   21.0,
			"smallcap": 17.5,
			"fd":       30.0,
		}
		if !reflect.DeepEqual(plan.Allocations, wantAllocations) {
			t.Errorf("Allocations = %v, want %v", plan.Allocations, wantAllocations)
		}

		wantSIP := map[string]float64{
			"largecap": 9450,
			"midcap":   6300,
			"smallcap": 5250,
			"fd":       9000,
		}
		if !reflect.DeepEqual(plan.SIPBreakdown, wantSIP) {
			t.Errorf("SIPBreakdown = %v, want %v", plan.SIPBreakdown, wantSIP)
		}
	})

	t.Run("custom 100 percent equity with index core", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:                testutil.MakeProfile(),
			EquityStrategy:         "index_core",
			DebtStrategy:           "long_term",
			Method:                 model.MethodCustom,
			CustomEquityPercentage: 100,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		wantAllocations := map[string]float64{"largecap": 100, "fd": 0}
		if !reflect.DeepEqual(plan.Allocations, wantAllocations) {
			t.Errorf("Allocations = %v, want %v", plan.Allocations, wantAllocations)
		}
		if plan.TotalFundsCount() != 1 {
			t.Errorf("Expected 1 funded category, got %d", plan.TotalFundsCount())
		}
	})

	t.Run("allocations sum to 100 across strategies and splits", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		strategies := []string{"index_core", "market_weighted", "balanced_growth", "aggressive_growth"}
		splits := []float64{0, 33.33, 50, 66.67, 100}

		for _, strategyName := range strategies {
			for _, split := range splits {
				plan, err := svc.CreatePlan(service.PlanRequest{
					Profile:                testutil.MakeProfile(),
					EquityStrategy:         strategyName,
					DebtStrategy:           "long_term",
					Method:                 model.MethodCustom,
					CustomEquityPercentage: split,
				})
				if err != nil {
					t.Fatalf("CreatePlan(%s, %v) returned unexpected error: %v", strategyName, split, err)
				}

				sum := 0.0
				for _, pct := range plan.Allocations {
					sum += pct
				}
				if math.Abs(sum-100) > 0.01 {
					t.Errorf("Allocations for %s at %v%% equity sum to %v, want 100", strategyName, split, sum)
				}
			}
		}
	})

	t.Run("monetary breakdowns sum exactly to the invested amounts", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		profile := testutil.MakeProfile()
		profile.MonthlyInvestment = 10001
		profile.LumpSumInvestment = 99999

		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:                profile,
			EquityStrategy:         "balanced_growth",
			DebtStrategy:           "long_term",
			Method:                 model.MethodCustom,
			CustomEquityPercentage: 66.67,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		sipSum := 0.0
		for _, amount := range plan.SIPBreakdown {
			sipSum += amount
		}
		if math.Abs(sipSum-10001) > 1e-9 {
			t.Errorf("SIP breakdown sums to %v, want exactly 10001", sipSum)
		}

		lumpsumSum := 0.0
		for _, amount := range plan.LumpsumBreakdown {
			lumpsumSum += amount
		}
		if math.Abs(lumpsumSum-99999) > 1e-9 {
			t.Errorf("Lumpsum breakdown sums to %v, want exactly 99999", lumpsumSum)
		}
	})

	t.Run("international slice is carved from the largest equity category", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:          testutil.MakeProfile(),
			EquityStrategy:   "balanced_growth",
			DebtStrategy:     "long_term",
			Method:           model.MethodRiskProfile,
			RiskProfile:      model.RiskModerate,
			AddInternational: true,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		// 10% of the 70% equity slice is 7 points, taken from largecap (31.5).
		wantAllocations := map[string]float64{
			"largecap":      24.5,
			"midcap":        21.0,
			"smallcap":      17.5,
			"international": 7.0,
			"fd":            30.0,
		}
		if !reflect.DeepEqual(plan.Allocations, wantAllocations) {
			t.Errorf("Allocations = %v, want %v", plan.Allocations, wantAllocations)
		}

		if plan.DebtPercentage != 30 {
			t.Errorf("International carve changed debt percentage: got %v, want 30", plan.DebtPercentage)
		}
	})

	t.Run("identical requests produce identical allocations", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		req := service.PlanRequest{
			Profile:        testutil.MakeProfile(),
			EquityStrategy: "aggressive_growth",
			DebtStrategy:   "long_term",
			Method:         model.MethodRiskProfile,
			RiskProfile:    model.RiskAggressive,
		}

		first, err := svc.CreatePlan(req)
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}
		second, err := svc.CreatePlan(req)
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		if !reflect.DeepEqual(first.Allocations, second.Allocations) {
			t.Errorf("Repeated computation differs: %v vs %v", first.Allocations, second.Allocations)
		}
	})

	t.Run("plan includes trigger bands for every category", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:        testutil.MakeProfile(),
			EquityStrategy: "balanced_growth",
			DebtStrategy:   "long_term",
			Method:         model.MethodRiskProfile,
			RiskProfile:    model.RiskModerate,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		if len(plan.TriggerBands) != len(plan.Allocations) {
			t.Fatalf("Expected %d trigger bands, got %d", len(plan.Allocations), len(plan.TriggerBands))
		}

		band, ok := plan.TriggerBands["largecap"]
		if !ok {
			t.Fatal("Missing trigger band for largecap")
		}
		if band.Lower != 26.5 || band.Upper != 36.5 {
			t.Errorf("largecap band = [%v, %v], want [26.5, 36.5]", band.Lower, band.Upper)
		}
	})
}

// TestAllocationService_CreatePlan_Errors tests input rejection.
//
// WHY: Bad profiles and unknown strategies must fail loudly with the matching
// sentinel so the API layer can map them to 400s instead of producing a plan
// from garbage input.
func TestAllocationService_CreatePlan_Errors(t *testing.T) {
	svc := testutil.NewTestAllocationService(t)

	validProfile := testutil.MakeProfile()

	tests := []struct {
		name    string
		req     service.PlanRequest
		wantErr error
	}{
		{
			name: "zero age is rejected",
			req: service.PlanRequest{
				Profile:        model.UserProfile{Age: 0, MonthlyInvestment: 1000},
				EquityStrategy: "index_core",
				DebtStrategy:   "long_term",
				Method:         model.MethodRiskProfile,
				RiskProfile:    model.RiskModerate,
			},
			wantErr: apperrors.ErrInvalidProfile,
		},
		{
			name: "negative investment is rejected",
			req: service.PlanRequest{
				Profile:        model.UserProfile{Age: 30, MonthlyInvestment: -1},
				EquityStrategy: "index_core",
				DebtStrategy:   "long_term",
				Method:         model.MethodRiskProfile,
				RiskProfile:    model.RiskModerate,
			},
			wantErr: apperrors.ErrInvalidProfile,
		},
		{
			name: "unknown equity strategy is rejected",
			req: service.PlanRequest{
				Profile:        validProfile,
				EquityStrategy: "moonshot",
				DebtStrategy:   "long_term",
				Method:         model.MethodRiskProfile,
				RiskProfile:    model.RiskModerate,
			},
			wantErr: apperrors.ErrUnknownStrategy,
		},
		{
			name: "unknown debt strategy is rejected",
			req: service.PlanRequest{
				Profile:        validProfile,
				EquityStrategy: "index_core",
				DebtStrategy:   "junk_bonds",
				Method:         model.MethodRiskProfile,
				RiskProfile:    model.RiskModerate,
			},
			wantErr: apperrors.ErrUnknownStrategy,
		},
		{
			name: "custom equity percentage above 100 is rejected",
			req: service.PlanRequest{
				Profile:                validProfile,
				EquityStrategy:         "index_core",
				DebtStrategy:           "long_term",
				Method:                 model.MethodCustom,
				CustomEquityPercentage: 101,
			},
			wantErr: apperrors.ErrInvalidAllocationInput,
		},
		{
			name: "negative custom equity percentage is rejected",
			req: service.PlanRequest{
				Profile:                validProfile,
				EquityStrategy:         "index_core",
				DebtStrategy:           "long_term",
				Method:                 model.MethodCustom,
				CustomEquityPercentage: -5,
			},
			wantErr: apperrors.ErrInvalidAllocationInput,
		},
		{
			name: "unrecognized method is rejected",
			req: service.PlanRequest{
				Profile:        validProfile,
				EquityStrategy: "index_core",
				DebtStrategy:   "long_term",
				Method:         model.AllocationMethod("astrology"),
			},
			wantErr: apperrors.ErrInvalidAllocationInput,
		},
		{
			name: "unrecognized risk profile is rejected",
			req: service.PlanRequest{
				Profile:        validProfile,
				EquityStrategy: "index_core",
				DebtStrategy:   "long_term",
				Method:         model.MethodRiskProfile,
				RiskProfile:    model.RiskProfile("reckless"),
			},
			wantErr: apperrors.ErrInvalidAllocationInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePlan(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreatePlan() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAllocationService_Warnings tests advisory output.
//
// WHY: Warnings are the planner's guardrails; a missing emergency-fund warning
// on a heavy equity plan would leave an investor exposed without notice.
func TestAllocationService_Warnings(t *testing.T) {
	svc := testutil.NewTestAllocationService(t)

	t.Run("missing emergency fund with heavy equity warns", func(t *testing.T) {
		profile := testutil.MakeProfile()
		profile.HasEmergencyFund = false

		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:        profile,
			EquityStrategy: "balanced_growth",
			DebtStrategy:   "long_term",
			Method:         model.MethodRiskProfile,
			RiskProfile:    model.RiskModerate,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		if len(plan.Warnings) == 0 {
			t.Error("Expected emergency fund warning, got none")
		}
	})

	t.Run("well prepared profile with moderate equity has no warnings", func(t *testing.T) {
		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:                testutil.MakeProfile(),
			EquityStrategy:         "balanced_growth",
			DebtStrategy:           "long_term",
			Method:                 model.MethodCustom,
			CustomEquityPercentage: 40,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		if len(plan.Warnings) != 0 {
			t.Errorf("Expected no warnings, got %v", plan.Warnings)
		}
	})

	t.Run("recommendations are always present", func(t *testing.T) {
		plan, err := svc.CreatePlan(service.PlanRequest{
			Profile:        testutil.MakeProfile(),
			EquityStrategy: "balanced_growth",
			DebtStrategy:   "long_term",
			Method:         model.MethodRiskProfile,
			RiskProfile:    model.RiskModerate,
		})
		if err != nil {
			t.Fatalf("CreatePlan() returned unexpected error: %v", err)
		}

		if len(plan.Recommendations) < 3 {
			t.Errorf("Expected at least the base recommendations, got %v", plan.Recommendations)
		}
	})
}
