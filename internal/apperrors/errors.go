package apperrors

import "errors"

// Core computation errors represent invalid input to the allocation engine or
// rebalancer. These errors surface synchronously to the caller; the engine never
// clamps or coerces bad input.
var (
	// ErrInvalidProfile indicates that an investor profile violates its invariants
	// (non-positive or unrealistic age, negative monetary amounts).
	ErrInvalidProfile = errors.New("invalid investor profile")

	// ErrUnknownStrategy indicates that a requested strategy name is not registered
	// in the strategy catalog.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidAllocationInput indicates an unrecognized allocation method or a
	// percentage outside the [0, 100] range.
	ErrInvalidAllocationInput = errors.New("invalid allocation input")

	// ErrEmptyPortfolio indicates that the rebalancer was asked to compute
	// percentages over a portfolio with zero total value.
	ErrEmptyPortfolio = errors.New("portfolio has no value")

	// ErrInvalidThreshold indicates a non-positive drift threshold.
	ErrInvalidThreshold = errors.New("drift threshold must be positive")
)

// Strategy catalog errors represent violations of the append-only registry contract.
var (
	// ErrStrategyExists indicates an attempt to re-register an existing strategy name.
	ErrStrategyExists = errors.New("strategy already registered")

	// ErrInvalidStrategyWeights indicates that a strategy's category weights are
	// negative or do not sum to exactly 100.
	ErrInvalidStrategyWeights = errors.New("strategy weights must be non-negative and sum to 100")
)

// Domain entity errors represent missing entities in the system.
var (
	// ErrPlanNotFound indicates that a saved plan with the given ID does not exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrSnapshotNotFound indicates that no holding snapshot has been recorded for a plan.
	ErrSnapshotNotFound = errors.New("holding snapshot not found")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Operation failure errors represent system-level failures when storing or
// retrieving data, as opposed to missing entities or validation issues.
var (
	ErrFailedToSavePlan       = errors.New("failed to save plan")
	ErrFailedToRetrievePlans  = errors.New("failed to retrieve plans")
	ErrFailedToSaveSnapshot   = errors.New("failed to save holding snapshot")
	ErrFailedToRecordDrift    = errors.New("failed to record drift event")
	ErrFailedToDecryptProfile = errors.New("failed to decrypt stored profile")
)
