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

const (
	minCodeLength = 3
	maxCodeLength = 50
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	store       validators.Store
}

func NewProjectService(projectRepo *repositories.ProjectRepository, store validators.Store) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		store:       store,
	}
}

// CreateProject validates and creates a new project
func (s *ProjectService) CreateProject(project *models.Project) error {
	if err := s.validate(project, uuid.Nil); err != nil {
		return err
	}

	project.ID = uuid.New()
	project.CreatedAt = time.Now()

	return s.projectRepo.Create(project)
}

// UpdateProject validates and updates an existing project
func (s *ProjectService) UpdateProject(project *models.Project) error {
	if project.ID == uuid.Nil {
		return apperrors.NewFormatInvalid("project ID is required")
	}

	existing, err := s.GetProjectByID(project.ID.String())
	if err != nil {
		return err
	}
	project.CreatedAt = existing.CreatedAt

	if err := s.validate(project, project.ID); err != nil {
		return err
	}

	return s.projectRepo.Update(project)
}

// validate runs format checks first, then the store-backed business rules.
func (s *ProjectService) validate(project *models.Project, excludeID uuid.UUID) error {
	code, err := validators.ValidateCodeFormat(project.Code, minCodeLength, maxCodeLength)
	if err != nil {
		return err
	}
	project.Code = code

	director, err := validators.ValidateDirectorName(project.DirectorName)
	if err != nil {
		return err
	}
	project.DirectorName = director

	if err := validators.ValidateDateRange(project.StartDate, project.EndDate,
		project.ExtensionStart, project.ExtensionEnd); err != nil {
		return err
	}

	return validators.ValidateProjectRules(s.store, project, excludeID)
}

// GetProjectByID retrieves a project by ID
func (s *ProjectService) GetProjectByID(id string) (*models.Project, error) {
	if _, err := parseID(id, "project"); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("project not found")
		}
		return nil, err
	}

	return project, nil
}

// GetProjects retrieves all projects
func (s *ProjectService) GetProjects() ([]*models.Project, error) {
	return s.projectRepo.GetAll()
}
