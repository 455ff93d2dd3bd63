package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type ProjectTypeRepository struct {
	db *sql.DB
}

func NewProjectTypeRepository(db *sql.DB) *ProjectTypeRepository {
	return &ProjectTypeRepository{
		db: db,
	}
}

// GetByID retrieves a project type by ID
func (r *ProjectTypeRepository) GetByID(id string) (*models.ProjectType, error) {
	query := `
		SELECT id, code, name, description, duration_months, period_count, max_budget
		FROM project_types
		WHERE id = $1
	`

	projectType := &models.ProjectType{}
	err := r.db.QueryRow(query, id).Scan(
		&projectType.ID,
		&projectType.Code,
		&projectType.Name,
		&projectType.Description,
		&projectType.DurationMonths,
		&projectType.PeriodCount,
		&projectType.MaxBudget,
	)

	if err != nil {
		return nil, err
	}

	return projectType, nil
}

// GetAll retrieves all project types
func (r *ProjectTypeRepository) GetAll() ([]*models.ProjectType, error) {
	query := `
		SELECT id, code, name, description, duration_months, period_count, max_budget
		FROM project_types
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.ProjectType
	for rows.Next() {
		projectType := &models.ProjectType{}
		err := rows.Scan(
			&projectType.ID,
			&projectType.Code,
			&projectType.Name,
			&projectType.Description,
			&projectType.DurationMonths,
			&projectType.PeriodCount,
			&projectType.MaxBudget,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, projectType)
	}

	return types, nil
}
