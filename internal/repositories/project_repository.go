package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (id, code, title, type_id, status_id, director_name,
			approved_budget, created_at, start_date, end_date, extension_start, extension_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(query,
		project.ID,
		project.Code,
		project.Title,
		project.TypeID,
		project.StatusID,
		project.DirectorName,
		project.ApprovedBudget,
		project.CreatedAt,
		project.StartDate,
		project.EndDate,
		project.ExtensionStart,
		project.ExtensionEnd,
	)

	return err
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	query := `
		SELECT id, code, title, type_id, status_id, director_name,
			approved_budget, created_at, start_date, end_date, extension_start, extension_end
		FROM projects
		WHERE id = $1
	`

	project := &models.Project{}
	err := r.db.QueryRow(query, id).Scan(
		&project.ID,
		&project.Code,
		&project.Title,
		&project.TypeID,
		&project.StatusID,
		&project.DirectorName,
		&project.ApprovedBudget,
		&project.CreatedAt,
		&project.StartDate,
		&project.EndDate,
		&project.ExtensionStart,
		&project.ExtensionEnd,
	)

	if err != nil {
		return nil, err
	}

	return project, nil
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll() ([]*models.Project, error) {
	query := `
		SELECT id, code, title, type_id, status_id, director_name,
			approved_budget, created_at, start_date, end_date, extension_start, extension_end
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		err := rows.Scan(
			&project.ID,
			&project.Code,
			&project.Title,
			&project.TypeID,
			&project.StatusID,
			&project.DirectorName,
			&project.ApprovedBudget,
			&project.CreatedAt,
			&project.StartDate,
			&project.EndDate,
			&project.ExtensionStart,
			&project.ExtensionEnd,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	query := `
		UPDATE projects
		SET code = $1, title = $2, type_id = $3, status_id = $4, director_name = $5,
			approved_budget = $6, start_date = $7, end_date = $8, extension_start = $9, extension_end = $10
		WHERE id = $11
	`

	result, err := r.db.Exec(query,
		project.Code,
		project.Title,
		project.TypeID,
		project.StatusID,
		project.DirectorName,
		project.ApprovedBudget,
		project.StartDate,
		project.EndDate,
		project.ExtensionStart,
		project.ExtensionEnd,
		project.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CodeInUse reports whether another project already uses this code
func (r *ProjectRepository) CodeInUse(code, excludeID string) (bool, error) {
	query := `SELECT COUNT(1) FROM projects WHERE code = $1 AND id != $2`

	var count int
	if err := r.db.QueryRow(query, code, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
