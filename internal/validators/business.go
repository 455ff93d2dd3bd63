package validators

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
)

// ValidateProjectRules runs the business checks for creating or editing a
// project: type and status must exist, the code must be unique, and budget
// and duration must fit the project type's ceilings. excludeID is the
// project's own ID on edit, uuid.Nil on creation. Checks run cheapest first
// and stop at the first failure.
func ValidateProjectRules(store Store, project *models.Project, excludeID uuid.UUID) error {
	projectType, err := store.GetProjectType(project.TypeID)
	if err != nil {
		return err
	}
	if projectType == nil {
		return apperrors.NewNotFound("project type not found")
	}

	status, err := store.GetProjectStatus(project.StatusID)
	if err != nil {
		return err
	}
	if status == nil {
		return apperrors.NewNotFound("project status not found")
	}

	inUse, err := store.ProjectCodeInUse(project.Code, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict(fmt.Sprintf("a project with code '%s' already exists", project.Code))
	}

	// A type without a budget ceiling does not cap the approved budget.
	if project.ApprovedBudget != nil {
		if err := ValidateBudgetRange(project.ApprovedBudget, projectType.MaxBudget); err != nil {
			return err
		}
	}

	return ValidateProjectDuration(project.StartDate, project.EndDate, projectType.DurationMonths)
}

// ValidatePOARules runs the business checks for creating or editing a POA:
// project, period and POA type must exist, the code must be unique, the
// (project, period) pair must not already have a POA, and the budget and the
// period's duration must fit the POA type's ceilings. The sum of the
// project's POA budgets, including the candidate, must stay within the
// project's approved budget when one is set.
func ValidatePOARules(store Store, poa *models.POA, excludeID uuid.UUID) error {
	project, err := store.GetProject(poa.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return apperrors.NewNotFound("project not found")
	}

	period, err := store.GetPeriod(poa.PeriodID)
	if err != nil {
		return err
	}
	if period == nil {
		return apperrors.NewNotFound("period not found")
	}

	poaType, err := store.GetPOAType(poa.TypeID)
	if err != nil {
		return err
	}
	if poaType == nil {
		return apperrors.NewNotFound("POA type not found")
	}

	inUse, err := store.POACodeInUse(poa.Code, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict(fmt.Sprintf("a POA with code '%s' already exists", poa.Code))
	}

	duplicate, err := store.POAExistsForPeriod(poa.ProjectID, poa.PeriodID, excludeID)
	if err != nil {
		return err
	}
	if duplicate {
		return apperrors.NewConflict("a POA already exists for this project in the selected period")
	}

	budget := poa.AssignedBudget
	if err := ValidateBudgetRange(&budget, poaType.MaxBudget); err != nil {
		return err
	}

	periodMonths := MonthSpan(period.StartDate, period.EndDate)
	if periodMonths > poaType.DurationMonths {
		return apperrors.NewLimitExceeded(fmt.Sprintf(
			"period duration (%d months) exceeds the maximum duration (%d months) allowed for this POA type",
			periodMonths, poaType.DurationMonths))
	}

	return validatePOABudgetAgainstProject(store, project, poa.AssignedBudget, excludeID)
}

// validatePOABudgetAgainstProject checks that the sum of the project's POA
// budgets, with the candidate included, stays within the project's approved
// budget. Projects without an approved budget are not constrained.
func validatePOABudgetAgainstProject(store Store, project *models.Project, candidateBudget float64, excludeID uuid.UUID) error {
	if project.ApprovedBudget == nil {
		return nil
	}

	budgets, err := store.ProjectPOABudgets(project.ID, excludeID)
	if err != nil {
		return err
	}

	var existing float64
	for _, b := range budgets {
		existing += b
	}

	total := existing + candidateBudget
	approved := *project.ApprovedBudget
	if total > approved {
		return apperrors.NewLimitExceeded(fmt.Sprintf(
			"the sum of POA budgets (%.2f) would exceed the project's approved budget (%.2f); available: %.2f",
			total, approved, approved-existing))
	}

	return nil
}

// ValidatePeriodRules runs the business checks for creating or editing a
// period: the code must be unique.
func ValidatePeriodRules(store Store, period *models.Period, excludeID uuid.UUID) error {
	inUse, err := store.PeriodCodeInUse(period.Code, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict(fmt.Sprintf("a period with code '%s' already exists", period.Code))
	}
	return nil
}

// ValidateTaskRules runs the business checks for creating or editing a task:
// the activity must exist, and the task detail must exist when referenced.
func ValidateTaskRules(store Store, task *models.Task) error {
	activity, err := store.GetActivity(task.ActivityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return apperrors.NewNotFound("activity not found")
	}

	if task.TaskDetailID != nil {
		detail, err := store.GetTaskDetail(*task.TaskDetailID)
		if err != nil {
			return err
		}
		if detail == nil {
			return apperrors.NewNotFound("task detail not found")
		}
	}

	return nil
}

// ValidateUserRules runs the business checks for registering a user: the
// email must be unique (case-insensitive; the caller passes it lowercased)
// and the role must exist.
func ValidateUserRules(store Store, user *models.User) error {
	inUse, err := store.UserEmailInUse(user.Email)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict("a user with this email address already exists")
	}

	role, err := store.GetRole(user.RoleID)
	if err != nil {
		return err
	}
	if role == nil {
		return apperrors.NewNotFound("role not found")
	}

	return nil
}

// ValidateMonthlyScheduleRules runs the business checks for a monthly
// schedule entry: the task must exist.
func ValidateMonthlyScheduleRules(store Store, schedule *models.MonthlySchedule) error {
	task, err := store.GetTask(schedule.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.NewNotFound("task not found")
	}
	return nil
}
