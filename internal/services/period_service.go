package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/validators"
)

type PeriodService struct {
	periodRepo *repositories.PeriodRepository
	store      validators.Store
}

func NewPeriodService(periodRepo *repositories.PeriodRepository, store validators.Store) *PeriodService {
	return &PeriodService{
		periodRepo: periodRepo,
		store:      store,
	}
}

// CreatePeriod validates and creates a new period
func (s *PeriodService) CreatePeriod(period *models.Period) error {
	if err := s.validate(period, uuid.Nil); err != nil {
		return err
	}

	period.ID = uuid.New()

	return s.periodRepo.Create(period)
}

// UpdatePeriod validates and updates an existing period
func (s *PeriodService) UpdatePeriod(period *models.Period) error {
	if period.ID == uuid.Nil {
		return apperrors.NewFormatInvalid("period ID is required")
	}

	if _, err := s.GetPeriodByID(period.ID.String()); err != nil {
		return err
	}

	if err := s.validate(period, period.ID); err != nil {
		return err
	}

	return s.periodRepo.Update(period)
}

func (s *PeriodService) validate(period *models.Period, excludeID uuid.UUID) error {
	code, err := validators.ValidateCodeFormat(period.Code, minCodeLength, maxCodeLength)
	if err != nil {
		return err
	}
	period.Code = code

	// Period ranges are strict: equal start and end dates are rejected.
	if err := validators.ValidatePeriodDates(period.StartDate, period.EndDate); err != nil {
		return err
	}

	if period.Year != "" {
		year, err := validators.ValidateYearFormat(period.Year)
		if err != nil {
			return err
		}
		period.Year = year
	}

	return validators.ValidatePeriodRules(s.store, period, excludeID)
}

// GetPeriodByID retrieves a period by ID
func (s *PeriodService) GetPeriodByID(id string) (*models.Period, error) {
	if _, err := parseID(id, "period"); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("period not found")
		}
		return nil, err
	}

	return period, nil
}

// GetPeriods retrieves all periods
func (s *PeriodService) GetPeriods() ([]*models.Period, error) {
	return s.periodRepo.GetAll()
}
