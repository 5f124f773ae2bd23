package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/repository"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/secrets"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/strategy"
)

// Planner defaults used across tests: 10% international slice, 5.0 drift
// threshold.
const (
	TestInternationalShare = 10.0
	TestDriftThreshold     = 5.0
)

func NewTestAllocationService(t *testing.T) *service.AllocationService {
	t.Helper()

	return service.NewAllocationService(
		strategy.DefaultCatalog(),
		TestInternationalShare,
		TestDriftThreshold,
	)
}

func NewTestRebalanceService(t *testing.T) *service.RebalanceService {
	t.Helper()

	return service.NewRebalanceService(TestDriftThreshold)
}

func NewTestPlanService(t *testing.T, db *sql.DB) *service.PlanService {
	t.Helper()

	planRepo := repository.NewPlanRepository(db)

	return service.NewPlanService(
		planRepo,
		NewTestCipher(t),
	)
}

func NewTestDriftScanService(t *testing.T, db *sql.DB) *service.DriftScanService {
	t.Helper()

	planRepo := repository.NewPlanRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	driftRepo := repository.NewDriftRepository(db)

	return service.NewDriftScanService(
		planRepo,
		snapshotRepo,
		driftRepo,
		service.NewRebalanceService(TestDriftThreshold),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestCipher creates a Cipher with a fresh key for profile encryption in tests.
func NewTestCipher(t *testing.T) *secrets.Cipher {
	t.Helper()

	key, err := secrets.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	cipher, err := secrets.NewCipher(key)
	if err != nil {
		t.Fatalf("Failed to create test cipher: %v", err)
	}
	return cipher
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakePlanName generates a unique plan name for testing.
//
// Example usage:
//
//	name := testutil.MakePlanName("Retirement")
//	// Returns: "Retirement ABC123"
func MakePlanName(base string) string {
	if base == "" {
		base = "Plan"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeProfile returns a valid investor profile with sensible defaults: age 30,
// monthly income 100000, SIP 20000, lumpsum 100000, emergency fund and
// insurance in place.
func MakeProfile() model.UserProfile {
	return model.UserProfile{
		Age:                  30,
		MonthlyIncome:        100000,
		MonthlyInvestment:    20000,
		LumpSumInvestment:    100000,
		HasEmergencyFund:     true,
		HasAdequateInsurance: true,
	}
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
