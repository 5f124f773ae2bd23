package repository

import (
	"database/sql"
	"fmt"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// DriftRepository provides data access methods for the drift_event table.
type DriftRepository struct {
	db *sql.DB
}

// NewDriftRepository creates a new DriftRepository with the provided database connection.
func NewDriftRepository(db *sql.DB) *DriftRepository {
	return &DriftRepository{db: db}
}

// Insert stores the outcome of a drift check.
func (r *DriftRepository) Insert(event model.DriftEvent) error {
	drifted, err := marshalList(event.DriftedFunds)
	if err != nil {
		return err
	}
	trades, err := marshalMap(event.Trades)
	if err != nil {
		return err
	}

	query := `
          INSERT INTO drift_event (
              id, plan_id, snapshot_id, checked_at, threshold,
              needs_rebalance, drifted_funds, trades
          ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err = r.db.Exec(query,
		event.ID,
		event.PlanID,
		event.SnapshotID,
		event.CheckedAt,
		event.Threshold,
		event.NeedsRebalance,
		drifted,
		trades,
	)
	if err != nil {
		return fmt.Errorf("failed to insert drift event: %w", err)
	}

	return nil
}

// ListOnPlanID retrieves all drift events for a plan, newest first.
func (r *DriftRepository) ListOnPlanID(planID string) ([]model.DriftEvent, error) {
	query := `
          SELECT id, plan_id, snapshot_id, checked_at, threshold,
                 needs_rebalance, drifted_funds, trades
          FROM drift_event
          WHERE plan_id = ?
          ORDER BY checked_at DESC, id DESC
      `

	rows, err := r.db.Query(query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drift_event table: %w", err)
	}
	defer rows.Close()

	events := []model.DriftEvent{}

	for rows.Next() {
		var event model.DriftEvent
		var drifted, trades string

		err := rows.Scan(
			&event.ID,
			&event.PlanID,
			&event.SnapshotID,
			&event.CheckedAt,
			&event.Threshold,
			&event.NeedsRebalance,
			&drifted,
			&trades,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drift_event table results: %w", err)
		}

		if event.DriftedFunds, err = unmarshalList(drifted); err != nil {
			return nil, err
		}
		if event.Trades, err = unmarshalMap(trades); err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drift_event table: %w", err)
	}

	return events, nil
}
