package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/repository"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/validation"
)

// DriftScanService records holding snapshots for saved plans and checks them
// against the plan's target allocation, storing the outcome as drift events.
// The scheduled scan runs it across every saved plan.
type DriftScanService struct {
	planRepo         *repository.PlanRepository
	snapshotRepo     *repository.SnapshotRepository
	driftRepo        *repository.DriftRepository
	rebalanceService *RebalanceService
}

// NewDriftScanService creates a new DriftScanService.
func NewDriftScanService(
	planRepo *repository.PlanRepository,
	snapshotRepo *repository.SnapshotRepository,
	driftRepo *repository.DriftRepository,
	rebalanceService *RebalanceService,
) *DriftScanService {
	return &DriftScanService{
		planRepo:         planRepo,
		snapshotRepo:     snapshotRepo,
		driftRepo:        driftRepo,
		rebalanceService: rebalanceService,
	}
}

// RecordSnapshot stores the current holding values for a plan.
// Returns ErrPlanNotFound when the plan does not exist and
// ErrInvalidAllocationInput when any value is negative.
func (s *DriftScanService) RecordSnapshot(planID string, values map[string]float64) (model.HoldingSnapshot, error) {
	if err := validation.ValidateHoldingValues(values); err != nil {
		return model.HoldingSnapshot{}, err
	}
	if _, _, err := s.planRepo.GetOnID(planID); err != nil {
		return model.HoldingSnapshot{}, err
	}

	held := make(map[string]float64, len(values))
	for category, value := range values {
		held[category] = value
	}

	snapshot := model.HoldingSnapshot{
		ID:      uuid.New().String(),
		PlanID:  planID,
		TakenAt: time.Now().UTC(),
		Values:  held,
	}

	if err := s.snapshotRepo.Insert(snapshot); err != nil {
		return model.HoldingSnapshot{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToSaveSnapshot, err)
	}

	return snapshot, nil
}

// CheckPlan evaluates the latest snapshot of a plan against the plan's target
// allocation using the default drift threshold, stores the outcome and returns
// it.
//
// Returns ErrPlanNotFound or ErrSnapshotNotFound when inputs are missing, and
// ErrEmptyPortfolio when the snapshot holds no value.
func (s *DriftScanService) CheckPlan(planID string) (model.DriftEvent, error) {
	rec, _, err := s.planRepo.GetOnID(planID)
	if err != nil {
		return model.DriftEvent{}, err
	}

	snapshot, err := s.snapshotRepo.LatestOnPlanID(planID)
	if err != nil {
		return model.DriftEvent{}, err
	}

	currentPct, err := s.rebalanceService.CurrentAllocation(snapshot.Values)
	if err != nil {
		return model.DriftEvent{}, err
	}

	threshold := s.rebalanceService.DefaultThreshold()
	check, err := s.rebalanceService.CheckDrift(currentPct, rec.Allocations, threshold)
	if err != nil {
		return model.DriftEvent{}, err
	}

	trades, err := s.rebalanceService.Trades(snapshot.Values, rec.Allocations)
	if err != nil {
		return model.DriftEvent{}, err
	}

	event := model.DriftEvent{
		ID:             uuid.New().String(),
		PlanID:         planID,
		SnapshotID:     snapshot.ID,
		CheckedAt:      time.Now().UTC(),
		Threshold:      threshold,
		NeedsRebalance: check.NeedsRebalance,
		DriftedFunds:   check.DriftedFunds,
		Trades:         trades,
	}

	if err := s.driftRepo.Insert(event); err != nil {
		return model.DriftEvent{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRecordDrift, err)
	}

	return event, nil
}

// History returns the stored drift events for a plan, newest first.
func (s *DriftScanService) History(planID string) ([]model.DriftEvent, error) {
	if _, _, err := s.planRepo.GetOnID(planID); err != nil {
		return nil, err
	}
	return s.driftRepo.ListOnPlanID(planID)
}

// ScanAll checks every saved plan that has a recorded snapshot. Plans without
// snapshots, or whose latest snapshot holds no value, are skipped. Checks run
// concurrently with a small limit to keep SQLite write contention down.
func (s *DriftScanService) ScanAll(ctx context.Context) error {
	plans, err := s.planRepo.List()
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePlans, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, rec := range plans {
		rec := rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, err := s.CheckPlan(rec.ID)
			if errors.Is(err, apperrors.ErrSnapshotNotFound) || errors.Is(err, apperrors.ErrEmptyPortfolio) {
				return nil
			}
			return err
		})
	}

	return g.Wait()
}
