package repositories

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/models"
)

// SQLStore implements validators.Store on top of the per-entity
// repositories. Repository getters report a missing row as sql.ErrNoRows;
// the Store contract wants (nil, nil), so the translation happens here.
type SQLStore struct {
	projectTypeRepo   *ProjectTypeRepository
	projectStatusRepo *ProjectStatusRepository
	projectRepo       *ProjectRepository
	periodRepo        *PeriodRepository
	poaTypeRepo       *POATypeRepository
	poaRepo           *POARepository
	roleRepo          *RoleRepository
	userRepo          *UserRepository
	activityRepo      *ActivityRepository
	taskDetailRepo    *TaskDetailRepository
	taskRepo          *TaskRepository
}

func NewSQLStore(
	projectTypeRepo *ProjectTypeRepository,
	projectStatusRepo *ProjectStatusRepository,
	projectRepo *ProjectRepository,
	periodRepo *PeriodRepository,
	poaTypeRepo *POATypeRepository,
	poaRepo *POARepository,
	roleRepo *RoleRepository,
	userRepo *UserRepository,
	activityRepo *ActivityRepository,
	taskDetailRepo *TaskDetailRepository,
	taskRepo *TaskRepository,
) *SQLStore {
	return &SQLStore{
		projectTypeRepo:   projectTypeRepo,
		projectStatusRepo: projectStatusRepo,
		projectRepo:       projectRepo,
		periodRepo:        periodRepo,
		poaTypeRepo:       poaTypeRepo,
		poaRepo:           poaRepo,
		roleRepo:          roleRepo,
		userRepo:          userRepo,
		activityRepo:      activityRepo,
		taskDetailRepo:    taskDetailRepo,
		taskRepo:          taskRepo,
	}
}

// absent maps sql.ErrNoRows to the Store "not there" convention.
func absent(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

func (s *SQLStore) GetProjectType(id uuid.UUID) (*models.ProjectType, error) {
	projectType, err := s.projectTypeRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return projectType, nil
}

func (s *SQLStore) GetProjectStatus(id uuid.UUID) (*models.ProjectStatus, error) {
	status, err := s.projectStatusRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return status, nil
}

func (s *SQLStore) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return project, nil
}

func (s *SQLStore) GetPeriod(id uuid.UUID) (*models.Period, error) {
	period, err := s.periodRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return period, nil
}

func (s *SQLStore) GetPOAType(id uuid.UUID) (*models.POAType, error) {
	poaType, err := s.poaTypeRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return poaType, nil
}

func (s *SQLStore) GetPOA(id uuid.UUID) (*models.POA, error) {
	poa, err := s.poaRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return poa, nil
}

func (s *SQLStore) GetRole(id uuid.UUID) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return role, nil
}

func (s *SQLStore) GetActivity(id uuid.UUID) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return activity, nil
}

func (s *SQLStore) GetTaskDetail(id uuid.UUID) (*models.TaskDetail, error) {
	detail, err := s.taskDetailRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return detail, nil
}

func (s *SQLStore) GetTask(id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id.String())
	if err != nil {
		return nil, absent(err)
	}
	return task, nil
}

func (s *SQLStore) ProjectCodeInUse(code string, excludeID uuid.UUID) (bool, error) {
	return s.projectRepo.CodeInUse(code, excludeID.String())
}

func (s *SQLStore) POACodeInUse(code string, excludeID uuid.UUID) (bool, error) {
	return s.poaRepo.CodeInUse(code, excludeID.String())
}

func (s *SQLStore) PeriodCodeInUse(code string, excludeID uuid.UUID) (bool, error) {
	return s.periodRepo.CodeInUse(code, excludeID.String())
}

func (s *SQLStore) POAExistsForPeriod(projectID, periodID, excludeID uuid.UUID) (bool, error) {
	return s.poaRepo.ExistsForPeriod(projectID.String(), periodID.String(), excludeID.String())
}

func (s *SQLStore) UserEmailInUse(email string) (bool, error) {
	return s.userRepo.EmailInUse(email)
}

func (s *SQLStore) ProjectPOABudgets(projectID, excludeID uuid.UUID) ([]float64, error) {
	return s.poaRepo.BudgetsByProject(projectID.String(), excludeID.String())
}
