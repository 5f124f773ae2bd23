package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the holding_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Insert stores a holding snapshot for a plan.
func (r *SnapshotRepository) Insert(snapshot model.HoldingSnapshot) error {
	values, err := marshalMap(snapshot.Values)
	if err != nil {
		return err
	}

	query := `
          INSERT INTO holding_snapshot (id, plan_id, taken_at, holding_values)
          VALUES (?, ?, ?, ?)
      `

	_, err = r.db.Exec(query, snapshot.ID, snapshot.PlanID, snapshot.TakenAt, values)
	if err != nil {
		return fmt.Errorf("failed to insert holding snapshot: %w", err)
	}

	return nil
}

// LatestOnPlanID retrieves the most recent holding snapshot for a plan.
func (r *SnapshotRepository) LatestOnPlanID(planID string) (model.HoldingSnapshot, error) {
	query := `
          SELECT id, plan_id, taken_at, holding_values
          FROM holding_snapshot
          WHERE plan_id = ?
          ORDER BY taken_at DESC, id DESC
          LIMIT 1
      `

	var snapshot model.HoldingSnapshot
	var values string

	err := r.db.QueryRow(query, planID).Scan(
		&snapshot.ID,
		&snapshot.PlanID,
		&snapshot.TakenAt,
		&values,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HoldingSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.HoldingSnapshot{}, fmt.Errorf("failed to query holding snapshot: %w", err)
	}

	if snapshot.Values, err = unmarshalMap(values); err != nil {
		return model.HoldingSnapshot{}, err
	}

	return snapshot, nil
}

// ListOnPlanID retrieves all snapshots for a plan, newest first.
func (r *SnapshotRepository) ListOnPlanID(planID string) ([]model.HoldingSnapshot, error) {
	query := `
          SELECT id, plan_id, taken_at, holding_values
          FROM holding_snapshot
          WHERE plan_id = ?
          ORDER BY taken_at DESC, id DESC
      `

	rows, err := r.db.Query(query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.HoldingSnapshot{}

	for rows.Next() {
		var snapshot model.HoldingSnapshot
		var values string

		if err := rows.Scan(&snapshot.ID, &snapshot.PlanID, &snapshot.TakenAt, &values); err != nil {
			return nil, fmt.Errorf("failed to scan holding_snapshot table results: %w", err)
		}
		if snapshot.Values, err = unmarshalMap(values); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding_snapshot table: %w", err)
	}

	return snapshots, nil
}
