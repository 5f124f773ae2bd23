package model

import "time"

// DriftCheck is the result of comparing a portfolio's current percentages
// against a target allocation.
type DriftCheck struct {
	NeedsRebalance bool     `json:"needs_rebalance"`
	DriftedFunds   []string `json:"drifted_funds"`
}

// HoldingSnapshot records the current monetary value held per fund category for
// a saved plan at a point in time.
type HoldingSnapshot struct {
	ID      string             `json:"id"`
	PlanID  string             `json:"plan_id"`
	TakenAt time.Time          `json:"taken_at"`
	Values  map[string]float64 `json:"values"`
}

// DriftEvent is the stored outcome of checking a snapshot against its plan's
// target allocation: drift flags plus the signed trade amounts (positive = buy,
// negative = sell) that would restore the target weights.
type DriftEvent struct {
	ID             string             `json:"id"`
	PlanID         string             `json:"plan_id"`
	SnapshotID     string             `json:"snapshot_id"`
	CheckedAt      time.Time          `json:"checked_at"`
	Threshold      float64            `json:"threshold"`
	NeedsRebalance bool               `json:"needs_rebalance"`
	DriftedFunds   []string           `json:"drifted_funds"`
	Trades         map[string]float64 `json:"trades"`
}
