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

type POAService struct {
	poaRepo *repositories.POARepository
	store   validators.Store
}

func NewPOAService(poaRepo *repositories.POARepository, store validators.Store) *POAService {
	return &POAService{
		poaRepo: poaRepo,
		store:   store,
	}
}

// CreatePOA validates and creates a new POA
func (s *POAService) CreatePOA(poa *models.POA) error {
	if err := s.validate(poa, uuid.Nil); err != nil {
		return err
	}

	poa.ID = uuid.New()
	poa.CreatedAt = time.Now()

	return s.poaRepo.Create(poa)
}

// UpdatePOA validates and updates an existing POA
func (s *POAService) UpdatePOA(poa *models.POA) error {
	if poa.ID == uuid.Nil {
		return apperrors.NewFormatInvalid("POA ID is required")
	}

	existing, err := s.GetPOAByID(poa.ID.String())
	if err != nil {
		return err
	}
	poa.CreatedAt = existing.CreatedAt

	if err := s.validate(poa, poa.ID); err != nil {
		return err
	}

	return s.poaRepo.Update(poa)
}

func (s *POAService) validate(poa *models.POA, excludeID uuid.UUID) error {
	code, err := validators.ValidateCodeFormat(poa.Code, minCodeLength, maxCodeLength)
	if err != nil {
		return err
	}
	poa.Code = code

	year, err := validators.ValidateYearFormat(poa.ExecutionYear)
	if err != nil {
		return err
	}
	poa.ExecutionYear = year

	return validators.ValidatePOARules(s.store, poa, excludeID)
}

// GetPOAByID retrieves a POA by ID
func (s *POAService) GetPOAByID(id string) (*models.POA, error) {
	if _, err := parseID(id, "POA"); err != nil {
		return nil, err
	}

	poa, err := s.poaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("POA not found")
		}
		return nil, err
	}

	return poa, nil
}

// GetPOAs retrieves all POAs
func (s *POAService) GetPOAs() ([]*models.POA, error) {
	return s.poaRepo.GetAll()
}

// GetPOAsByProjectID retrieves all POAs belonging to a project
func (s *POAService) GetPOAsByProjectID(projectID string) ([]*models.POA, error) {
	if _, err := parseID(projectID, "project"); err != nil {
		return nil, err
	}

	return s.poaRepo.GetByProjectID(projectID)
}
