package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/repository"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/secrets"
)

// PlanService persists computed plans. The investor profile contains income
// figures, so it is encrypted before storage and decrypted on single-plan
// reads; listings carry no profile data at all.
type PlanService struct {
	planRepo *repository.PlanRepository
	cipher   *secrets.Cipher
}

// NewPlanService creates a new PlanService.
func NewPlanService(planRepo *repository.PlanRepository, cipher *secrets.Cipher) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		cipher:   cipher,
	}
}

// Save stores a computed plan under the given name and returns the stored record.
func (s *PlanService) Save(name string, profile model.UserProfile, method model.AllocationMethod, plan model.InvestmentPlan) (model.PlanRecord, error) {
	rec := model.PlanRecord{
		ID:               uuid.New().String(),
		Name:             name,
		CreatedAt:        plan.CreatedAt,
		EquityStrategy:   plan.EquityStrategy,
		DebtStrategy:     plan.DebtStrategy,
		Method:           method,
		EquityPercentage: plan.EquityPercentage,
		DebtPercentage:   plan.DebtPercentage,
		Allocations:      plan.Allocations,
		SIPBreakdown:     plan.SIPBreakdown,
		LumpsumBreakdown: plan.LumpsumBreakdown,
		Profile:          profile,
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return model.PlanRecord{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePlan, err)
	}
	token, err := s.cipher.Encrypt(payload)
	if err != nil {
		return model.PlanRecord{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePlan, err)
	}

	if err := s.planRepo.Insert(rec, token); err != nil {
		return model.PlanRecord{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePlan, err)
	}

	return rec, nil
}

// Get retrieves a saved plan by ID with its profile decrypted.
func (s *PlanService) Get(planID string) (model.PlanRecord, error) {
	rec, token, err := s.planRepo.GetOnID(planID)
	if err != nil {
		return model.PlanRecord{}, err
	}

	payload, err := s.cipher.Decrypt(token)
	if err != nil {
		return model.PlanRecord{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToDecryptProfile, err)
	}
	if err := json.Unmarshal(payload, &rec.Profile); err != nil {
		return model.PlanRecord{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToDecryptProfile, err)
	}

	return rec, nil
}

// List retrieves all saved plans, newest first, without profile data.
func (s *PlanService) List() ([]model.PlanRecord, error) {
	plans, err := s.planRepo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePlans, err)
	}
	return plans, nil
}

// Delete removes a saved plan along with its snapshots and drift events.
func (s *PlanService) Delete(planID string) error {
	return s.planRepo.Delete(planID)
}
