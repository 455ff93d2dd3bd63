package validators

import (
	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/models"
)

// Store is the read-only entity-lookup capability business validators run
// against. Getters return (nil, nil) when the entity is absent; predicates
// report existence without loading rows. The SQL-backed implementation lives
// in internal/repositories; tests use the in-memory double in this package.
//
// Every check made through Store is check-then-act: two concurrent creations
// with the same candidate code can both pass before either commits. The
// schema's UNIQUE constraints are the backstop.
type Store interface {
	GetProjectType(id uuid.UUID) (*models.ProjectType, error)
	GetProjectStatus(id uuid.UUID) (*models.ProjectStatus, error)
	GetProject(id uuid.UUID) (*models.Project, error)
	GetPeriod(id uuid.UUID) (*models.Period, error)
	GetPOAType(id uuid.UUID) (*models.POAType, error)
	GetPOA(id uuid.UUID) (*models.POA, error)
	GetRole(id uuid.UUID) (*models.Role, error)
	GetActivity(id uuid.UUID) (*models.Activity, error)
	GetTaskDetail(id uuid.UUID) (*models.TaskDetail, error)
	GetTask(id uuid.UUID) (*models.Task, error)

	// Code predicates ignore the row identified by excludeID so an edit
	// can keep its own code; pass uuid.Nil on creation.
	ProjectCodeInUse(code string, excludeID uuid.UUID) (bool, error)
	POACodeInUse(code string, excludeID uuid.UUID) (bool, error)
	PeriodCodeInUse(code string, excludeID uuid.UUID) (bool, error)

	// POAExistsForPeriod reports whether the (project, period) pair already
	// has a POA other than excludeID.
	POAExistsForPeriod(projectID, periodID, excludeID uuid.UUID) (bool, error)

	// UserEmailInUse expects an already-lowercased email.
	UserEmailInUse(email string) (bool, error)

	// ProjectPOABudgets returns the assigned budgets of the project's POAs,
	// ignoring excludeID.
	ProjectPOABudgets(projectID, excludeID uuid.UUID) ([]float64, error)
}
