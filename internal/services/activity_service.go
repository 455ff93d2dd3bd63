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

type ActivityService struct {
	activityRepo *repositories.ActivityRepository
	store        validators.Store
}

func NewActivityService(activityRepo *repositories.ActivityRepository, store validators.Store) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		store:        store,
	}
}

// CreateActivities creates a batch of activities under a POA
func (s *ActivityService) CreateActivities(poaID string, descriptions []string) ([]*models.Activity, error) {
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

	// The whole batch is validated before anything is written so a bad
	// entry cannot leave earlier activities behind.
	for _, description := range descriptions {
		if description == "" {
			return nil, apperrors.NewFormatInvalid("activity description is required")
		}
	}

	var activities []*models.Activity
	for _, description := range descriptions {
		activity := &models.Activity{
			ID:          uuid.New(),
			POAID:       poaUUID,
			Description: description,
		}

		if err := s.activityRepo.Create(activity); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

// GetActivitiesByPOAID retrieves all activities of a POA
func (s *ActivityService) GetActivitiesByPOAID(poaID string) ([]*models.Activity, error) {
	if _, err := parseID(poaID, "POA"); err != nil {
		return nil, err
	}

	return s.activityRepo.GetByPOAID(poaID)
}

// UpdateActivity updates an activity's description
func (s *ActivityService) UpdateActivity(id, description string) (*models.Activity, error) {
	activity, err := s.GetActivityByID(id)
	if err != nil {
		return nil, err
	}

	if description == "" {
		return nil, apperrors.NewFormatInvalid("activity description is required")
	}
	activity.Description = description

	if err := s.activityRepo.Update(activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// DeleteActivity removes an activity
func (s *ActivityService) DeleteActivity(id string) error {
	if _, err := s.GetActivityByID(id); err != nil {
		return err
	}

	return s.activityRepo.Delete(id)
}

// GetActivityByID retrieves an activity by ID
func (s *ActivityService) GetActivityByID(id string) (*models.Activity, error) {
	if _, err := parseID(id, "activity"); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("activity not found")
		}
		return nil, err
	}

	return activity, nil
}
