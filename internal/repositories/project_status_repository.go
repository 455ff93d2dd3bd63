package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type ProjectStatusRepository struct {
	db *sql.DB
}

func NewProjectStatusRepository(db *sql.DB) *ProjectStatusRepository {
	return &ProjectStatusRepository{
		db: db,
	}
}

// GetByID retrieves a project status by ID
func (r *ProjectStatusRepository) GetByID(id string) (*models.ProjectStatus, error) {
	query := `
		SELECT id, name, description, allows_edit
		FROM project_statuses
		WHERE id = $1
	`

	status := &models.ProjectStatus{}
	err := r.db.QueryRow(query, id).Scan(
		&status.ID,
		&status.Name,
		&status.Description,
		&status.AllowsEdit,
	)

	if err != nil {
		return nil, err
	}

	return status, nil
}

// GetAll retrieves all project statuses
func (r *ProjectStatusRepository) GetAll() ([]*models.ProjectStatus, error) {
	query := `
		SELECT id, name, description, allows_edit
		FROM project_statuses
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.ProjectStatus
	for rows.Next() {
		status := &models.ProjectStatus{}
		if err := rows.Scan(&status.ID, &status.Name, &status.Description, &status.AllowsEdit); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
