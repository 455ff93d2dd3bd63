package services

import (
	"database/sql"
	"errors"
	"regexp"

	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/validators"
)

// Months are stored as "01-2026".
var monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-\d{4}$`)

type MonthlyScheduleService struct {
	scheduleRepo *repositories.MonthlyScheduleRepository
	store        validators.Store
}

func NewMonthlyScheduleService(scheduleRepo *repositories.MonthlyScheduleRepository, store validators.Store) *MonthlyScheduleService {
	return &MonthlyScheduleService{
		scheduleRepo: scheduleRepo,
		store:        store,
	}
}

// CreateSchedule validates and creates a monthly schedule entry
func (s *MonthlyScheduleService) CreateSchedule(schedule *models.MonthlySchedule) error {
	if err := s.validateFormat(schedule); err != nil {
		return err
	}

	if err := validators.ValidateMonthlyScheduleRules(s.store, schedule); err != nil {
		return err
	}

	inUse, err := s.scheduleRepo.MonthInUse(schedule.TaskID.String(), schedule.Month, uuid.Nil.String())
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict("the task already has a schedule entry for this month")
	}

	schedule.ID = uuid.New()

	return s.scheduleRepo.Create(schedule)
}

// UpdateSchedule validates and updates a monthly schedule entry
func (s *MonthlyScheduleService) UpdateSchedule(schedule *models.MonthlySchedule) error {
	existing, err := s.GetScheduleByID(schedule.ID.String())
	if err != nil {
		return err
	}
	schedule.TaskID = existing.TaskID

	if err := s.validateFormat(schedule); err != nil {
		return err
	}

	inUse, err := s.scheduleRepo.MonthInUse(schedule.TaskID.String(), schedule.Month, schedule.ID.String())
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict("the task already has a schedule entry for this month")
	}

	return s.scheduleRepo.Update(schedule)
}

func (s *MonthlyScheduleService) validateFormat(schedule *models.MonthlySchedule) error {
	if !monthPattern.MatchString(schedule.Month) {
		return apperrors.NewFormatInvalid("month must use the MM-YYYY format")
	}

	if schedule.Amount < 0 {
		return apperrors.NewFormatInvalid("scheduled amount must not be negative")
	}

	return nil
}

// GetScheduleByID retrieves a schedule entry by ID
func (s *MonthlyScheduleService) GetScheduleByID(id string) (*models.MonthlySchedule, error) {
	if _, err := parseID(id, "schedule"); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("monthly schedule not found")
		}
		return nil, err
	}

	return schedule, nil
}

// GetSchedulesByTaskID retrieves all schedule entries of a task
func (s *MonthlyScheduleService) GetSchedulesByTaskID(taskID string) ([]*models.MonthlySchedule, error) {
	if _, err := parseID(taskID, "task"); err != nil {
		return nil, err
	}

	return s.scheduleRepo.GetByTaskID(taskID)
}

// DeleteSchedulesByTaskID removes all schedule entries of a task
func (s *MonthlyScheduleService) DeleteSchedulesByTaskID(taskID string) error {
	if _, err := parseID(taskID, "task"); err != nil {
		return err
	}

	return s.scheduleRepo.DeleteByTaskID(taskID)
}
