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

type TaskService struct {
	taskRepo     *repositories.TaskRepository
	activityRepo *repositories.ActivityRepository
	scheduleRepo *repositories.MonthlyScheduleRepository
	store        validators.Store
}

func NewTaskService(taskRepo *repositories.TaskRepository, activityRepo *repositories.ActivityRepository,
	scheduleRepo *repositories.MonthlyScheduleRepository, store validators.Store) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
		scheduleRepo: scheduleRepo,
		store:        store,
	}
}

// CreateTask validates and creates a task, keeping the activity totals consistent
func (s *TaskService) CreateTask(task *models.Task) error {
	if task.Quantity < 0 || task.UnitPrice < 0 {
		return apperrors.NewFormatInvalid("task quantity and unit price must not be negative")
	}

	if err := validators.ValidateTaskRules(s.store, task); err != nil {
		return err
	}

	task.ID = uuid.New()
	task.RecalculateTotal()

	if err := s.taskRepo.Create(task); err != nil {
		return err
	}

	return s.applyActivityDelta(task.ActivityID.String(), task.Total)
}

// UpdateTask validates and updates a task, keeping the activity totals consistent
func (s *TaskService) UpdateTask(task *models.Task) error {
	if task.Quantity < 0 || task.UnitPrice < 0 {
		return apperrors.NewFormatInvalid("task quantity and unit price must not be negative")
	}

	existing, err := s.GetTaskByID(task.ID.String())
	if err != nil {
		return err
	}
	task.ActivityID = existing.ActivityID

	if err := validators.ValidateTaskRules(s.store, task); err != nil {
		return err
	}

	task.RecalculateTotal()

	if err := s.taskRepo.Update(task); err != nil {
		return err
	}

	return s.applyActivityDelta(task.ActivityID.String(), task.Total-existing.Total)
}

// DeleteTask removes a task, its monthly schedule, and restores the activity balance
func (s *TaskService) DeleteTask(id string) error {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteByTaskID(id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return err
	}

	return s.applyActivityDelta(task.ActivityID.String(), -task.Total)
}

// applyActivityDelta shifts an activity's total and balance by delta.
func (s *TaskService) applyActivityDelta(activityID string, delta float64) error {
	activity, err := s.activityRepo.GetByID(activityID)
	if err != nil {
		return err
	}

	activity.Total += delta
	activity.Balance += delta

	return s.activityRepo.Update(activity)
}

// GetTaskByID retrieves a task by ID
func (s *TaskService) GetTaskByID(id string) (*models.Task, error) {
	if _, err := parseID(id, "task"); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("task not found")
		}
		return nil, err
	}

	return task, nil
}

// GetTasksByActivityID retrieves all tasks of an activity
func (s *TaskService) GetTasksByActivityID(activityID string) ([]*models.Task, error) {
	if _, err := parseID(activityID, "activity"); err != nil {
		return nil, err
	}

	return s.taskRepo.GetByActivityID(activityID)
}
