package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/validators"
)

type ReformService struct {
	reformRepo *repositories.ReformRepository
	poaRepo    *repositories.POARepository
	store      validators.Store
}

func NewReformService(reformRepo *repositories.ReformRepository, poaRepo *repositories.POARepository, store validators.Store) *ReformService {
	return &ReformService{
		reformRepo: reformRepo,
		poaRepo:    poaRepo,
		store:      store,
	}
}

// CreateReform opens a pending budget amendment against a POA. The previous
// amount is captured from the POA at request time.
func (s *ReformService) CreateReform(poaID string, requestedAmount float64, justification string, requestedBy uuid.UUID) (*models.Reform, error) {
	poaUUID, err := parseID(poaID, "POA")
	if err != nil {
		return nil, err
	}

	poa, err := s.store.GetPOA(poaUUID)
	if err != nil {
		return nil, err
	}
	if poa == nil {
		return nil, apperrors.NewNotFound("POA not found")
	}

	if err := validators.ValidateBudgetRange(&requestedAmount, nil); err != nil {
		return nil, err
	}

	if justification == "" {
		return nil, apperrors.NewFormatInvalid("reform justification is required")
	}

	reform := &models.Reform{
		ID:              uuid.New(),
		POAID:           poaUUID,
		RequestedAt:     time.Now(),
		Status:          models.ReformPending,
		PreviousAmount:  poa.AssignedBudget,
		RequestedAmount: requestedAmount,
		Justification:   justification,
		RequestedByID:   requestedBy,
	}

	if err := s.reformRepo.Create(reform); err != nil {
		return nil, err
	}

	return reform, nil
}

// ApproveReform approves a pending reform and moves the requested amount
// onto the POA's assigned budget.
func (s *ReformService) ApproveReform(id string, approvedBy uuid.UUID) (*models.Reform, error) {
	reform, err := s.GetReformByID(id)
	if err != nil {
		return nil, err
	}

	if reform.Status != models.ReformPending {
		return nil, apperrors.NewConflict("the reform has already been resolved")
	}

	now := time.Now()
	reform.ApprovedAt = &now
	reform.Status = models.ReformApproved
	reform.ApprovedByID = &approvedBy

	if err := s.reformRepo.Update(reform); err != nil {
		return nil, err
	}

	if err := s.poaRepo.UpdateAssignedBudget(reform.POAID.String(), reform.RequestedAmount); err != nil {
		return nil, err
	}

	return reform, nil
}

// GetReformByID retrieves a reform by ID
func (s *ReformService) GetReformByID(id string) (*models.Reform, error) {
	if _, err := parseID(id, "reform"); err != nil {
		return nil, err
	}

	reform, err := s.reformRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("reform not found")
		}
		return nil, err
	}

	return reform, nil
}

// GetReformsByPOAID retrieves all reforms of a POA
func (s *ReformService) GetReformsByPOAID(poaID string) ([]*models.Reform, error) {
	if _, err := parseID(poaID, "POA"); err != nil {
		return nil, err
	}

	return s.reformRepo.GetByPOAID(poaID)
}
