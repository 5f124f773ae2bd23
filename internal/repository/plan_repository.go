package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
)

// PlanRepository provides data access methods for the plan table. The investor
// profile travels as an opaque fernet token; encryption and decryption live in
// the service layer.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository with the provided database connection.
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Insert stores a plan record together with its encrypted profile token.
func (r *PlanRepository) Insert(rec model.PlanRecord, profileToken string) error {
	allocations, err := marshalMap(rec.Allocations)
	if err != nil {
		return err
	}
	sip, err := marshalMap(rec.SIPBreakdown)
	if err != nil {
		return err
	}
	lumpsum, err := marshalMap(rec.LumpsumBreakdown)
	if err != nil {
		return err
	}

	query := `
          INSERT INTO plan (
              id, name, created_at, equity_strategy, debt_strategy, allocation_method,
              equity_percentage, debt_percentage, allocations, sip_breakdown,
              lumpsum_breakdown, profile_token
          ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err = r.db.Exec(query,
		rec.ID,
		rec.Name,
		rec.CreatedAt,
		rec.EquityStrategy,
		rec.DebtStrategy,
		string(rec.Method),
		rec.EquityPercentage,
		rec.DebtPercentage,
		allocations,
		sip,
		lumpsum,
		profileToken,
	)
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	return nil
}

// GetOnID retrieves a single plan by its ID along with the encrypted profile token.
func (r *PlanRepository) GetOnID(planID string) (model.PlanRecord, string, error) {
	query := `
          SELECT id, name, created_at, equity_strategy, debt_strategy, allocation_method,
                 equity_percentage, debt_percentage, allocations, sip_breakdown,
                 lumpsum_breakdown, profile_token
          FROM plan
          WHERE id = ?
      `

	var rec model.PlanRecord
	var method, allocations, sip, lumpsum, token string

	err := r.db.QueryRow(query, planID).Scan(
		&rec.ID,
		&rec.Name,
		&rec.CreatedAt,
		&rec.EquityStrategy,
		&rec.DebtStrategy,
		&method,
		&rec.EquityPercentage,
		&rec.DebtPercentage,
		&allocations,
		&sip,
		&lumpsum,
		&token,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PlanRecord{}, "", apperrors.ErrPlanNotFound
	}
	if err != nil {
		return model.PlanRecord{}, "", fmt.Errorf("failed to query plan: %w", err)
	}

	rec.Method = model.AllocationMethod(method)
	if rec.Allocations, err = unmarshalMap(allocations); err != nil {
		return model.PlanRecord{}, "", err
	}
	if rec.SIPBreakdown, err = unmarshalMap(sip); err != nil {
		return model.PlanRecord{}, "", err
	}
	if rec.LumpsumBreakdown, err = unmarshalMap(lumpsum); err != nil {
		return model.PlanRecord{}, "", err
	}

	return rec, token, nil
}

// List retrieves all saved plans ordered by creation time, newest first.
// Profile tokens are not loaded; listed records carry no profile data.
func (r *PlanRepository) List() ([]model.PlanRecord, error) {
	query := `
          SELECT id, name, created_at, equity_strategy, debt_strategy, allocation_method,
                 equity_percentage, debt_percentage, allocations, sip_breakdown,
                 lumpsum_breakdown
          FROM plan
          ORDER BY created_at DESC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan table: %w", err)
	}
	defer rows.Close()

	plans := []model.PlanRecord{}

	for rows.Next() {
		var rec model.PlanRecord
		var method, allocations, sip, lumpsum string

		err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.CreatedAt,
			&rec.EquityStrategy,
			&rec.DebtStrategy,
			&method,
			&rec.EquityPercentage,
			&rec.DebtPercentage,
			&allocations,
			&sip,
			&lumpsum,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan table results: %w", err)
		}

		rec.Method = model.AllocationMethod(method)
		if rec.Allocations, err = unmarshalMap(allocations); err != nil {
			return nil, err
		}
		if rec.SIPBreakdown, err = unmarshalMap(sip); err != nil {
			return nil, err
		}
		if rec.LumpsumBreakdown, err = unmarshalMap(lumpsum); err != nil {
			return nil, err
		}

		plans = append(plans, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan table: %w", err)
	}

	return plans, nil
}

// Delete removes a plan and, via foreign keys, its snapshots and drift events.
func (r *PlanRepository) Delete(planID string) error {
	result, err := r.db.Exec("DELETE FROM plan WHERE id = ?", planID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}
