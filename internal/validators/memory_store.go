package validators

import (
	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/models"
)

// MemoryStore is an in-memory Store used to exercise business validators
// without a database.
type MemoryStore struct {
	ProjectTypes    map[uuid.UUID]*models.ProjectType
	ProjectStatuses map[uuid.UUID]*models.ProjectStatus
	Projects        map[uuid.UUID]*models.Project
	Periods         map[uuid.UUID]*models.Period
	POATypes        map[uuid.UUID]*models.POAType
	POAs            map[uuid.UUID]*models.POA
	Roles           map[uuid.UUID]*models.Role
	Users           map[uuid.UUID]*models.User
	Activities      map[uuid.UUID]*models.Activity
	TaskDetails     map[uuid.UUID]*models.TaskDetail
	Tasks           map[uuid.UUID]*models.Task
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ProjectTypes:    make(map[uuid.UUID]*models.ProjectType),
		ProjectStatuses: make(map[uuid.UUID]*models.ProjectStatus),
		Projects:        make(map[uuid.UUID]*models.Project),
		Periods:         make(map[uuid.UUID]*models.Period),
		POATypes:        make(map[uuid.UUID]*models.POAType),
		POAs:            make(map[uuid.UUID]*models.POA),
		Roles:           make(map[uuid.UUID]*models.Role),
		Users:           make(map[uuid.UUID]*models.User),
		Activities:      make(map[uuid.UUID]*models.Activity),
		TaskDetails:     make(map[uuid.UUID]*models.TaskDetail),
		Tasks:           make(map[uuid.UUID]*models.Task),
	}
}

func (s *MemoryStore) GetProjectType(id uuid.UUID) (*models.ProjectType, error) {
	return s.ProjectTypes[id], nil
}

func (s *MemoryStore) GetProjectStatus(id uuid.UUID) (*models.ProjectStatus, error) {
	return s.ProjectStatuses[id], nil
}

func (s *MemoryStore) GetProject(id uuid.UUID) (*models.Project, error) {
	return s.Projects[id], nil
}

func (s *MemoryStore) GetPeriod(id uuid.UUID) (*models.Period, error) {
	return s.Periods[id], nil
}

func (s *MemoryStore) GetPOAType(id uuid.UUID) (*models.POAType, error) {
	return s.POATypes[id], nil
}

func (s *MemoryStore) GetPOA(id uuid.UUID) (*models.POA, error) {
	return s.POAs[id], nil
}

func (s *MemoryStore) GetRole(id uuid.UUID) (*models.Role, error) {
	return s.Roles[id], nil
}

func (s *MemoryStore) GetActivity(id uuid.UUID) (*models.Activity, error) {
	return s.Activities[id], nil
}

func (s *MemoryStore) GetTaskDetail(id uuid.UUID) (*models.TaskDetail, error) {
	return s.TaskDetails[id], nil
}

func (s *MemoryStore) GetTask(id uuid.UUID) (*models.Task, error) {
	return s.Tasks[id], nil
}

func (s *MemoryStore) ProjectCodeInUse(code string, excludeID uuid.UUID) (bool, error) {
	for id, p := range s.Projects {
		if id != excludeID && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) POACodeInUse(code string, excludeID uuid.UUID) (bool, error) {
	for id, p := range s.POAs {
		if id != excludeID && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) PeriodCodeInUse(code string, excludeID uuid.UUID) (bool, error) {
	for id, p := range s.Periods {
		if id != excludeID && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) POAExistsForPeriod(projectID, periodID, excludeID uuid.UUID) (bool, error) {
	for id, p := range s.POAs {
		if id != excludeID && p.ProjectID == projectID && p.PeriodID == periodID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) UserEmailInUse(email string) (bool, error) {
	for _, u := range s.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ProjectPOABudgets(projectID, excludeID uuid.UUID) ([]float64, error) {
	var budgets []float64
	for id, p := range s.POAs {
		if id != excludeID && p.ProjectID == projectID {
			budgets = append(budgets, p.AssignedBudget)
		}
	}
	return budgets, nil
}
