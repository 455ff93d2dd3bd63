package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type POARepository struct {
	db *sql.DB
}

func NewPOARepository(db *sql.DB) *POARepository {
	return &POARepository{
		db: db,
	}
}

// Create creates a new POA
func (r *POARepository) Create(poa *models.POA) error {
	query := `
		INSERT INTO poas (id, project_id, period_id, code, created_at, status_id, type_id,
			execution_year, assigned_budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		poa.ID,
		poa.ProjectID,
		poa.PeriodID,
		poa.Code,
		poa.CreatedAt,
		poa.StatusID,
		poa.TypeID,
		poa.ExecutionYear,
		poa.AssignedBudget,
	)

	return err
}

// GetByID retrieves a POA by ID
func (r *POARepository) GetByID(id string) (*models.POA, error) {
	query := `
		SELECT id, project_id, period_id, code, created_at, status_id, type_id,
			execution_year, assigned_budget
		FROM poas
		WHERE id = $1
	`

	poa := &models.POA{}
	err := r.db.QueryRow(query, id).Scan(
		&poa.ID,
		&poa.ProjectID,
		&poa.PeriodID,
		&poa.Code,
		&poa.CreatedAt,
		&poa.StatusID,
		&poa.TypeID,
		&poa.ExecutionYear,
		&poa.AssignedBudget,
	)

	if err != nil {
		return nil, err
	}

	return poa, nil
}

// GetAll retrieves all POAs, newest first
func (r *POARepository) GetAll() ([]*models.POA, error) {
	query := `
		SELECT id, project_id, period_id, code, created_at, status_id, type_id,
			execution_year, assigned_budget
		FROM poas
		ORDER BY created_at DESC
	`

	return r.queryPOAs(query)
}

// GetByProjectID retrieves all POAs belonging to a project
func (r *POARepository) GetByProjectID(projectID string) ([]*models.POA, error) {
	query := `
		SELECT id, project_id, period_id, code, created_at, status_id, type_id,
			execution_year, assigned_budget
		FROM poas
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	return r.queryPOAs(query, projectID)
}

func (r *POARepository) queryPOAs(query string, args ...interface{}) ([]*models.POA, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var poas []*models.POA
	for rows.Next() {
		poa := &models.POA{}
		err := rows.Scan(
			&poa.ID,
			&poa.ProjectID,
			&poa.PeriodID,
			&poa.Code,
			&poa.CreatedAt,
			&poa.StatusID,
			&poa.TypeID,
			&poa.ExecutionYear,
			&poa.AssignedBudget,
		)
		if err != nil {
			return nil, err
		}
		poas = append(poas, poa)
	}

	return poas, nil
}

// Update updates a POA
func (r *POARepository) Update(poa *models.POA) error {
	query := `
		UPDATE poas
		SET project_id = $1, period_id = $2, code = $3, status_id = $4, type_id = $5,
			execution_year = $6, assigned_budget = $7
		WHERE id = $8
	`

	result, err := r.db.Exec(query,
		poa.ProjectID,
		poa.PeriodID,
		poa.Code,
		poa.StatusID,
		poa.TypeID,
		poa.ExecutionYear,
		poa.AssignedBudget,
		poa.ID,
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

// UpdateAssignedBudget sets the assigned budget of a POA (used when a reform is approved)
func (r *POARepository) UpdateAssignedBudget(id string, budget float64) error {
	query := `UPDATE poas SET assigned_budget = $1 WHERE id = $2`

	result, err := r.db.Exec(query, budget, id)
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

// CodeInUse reports whether another POA already uses this code
func (r *POARepository) CodeInUse(code, excludeID string) (bool, error) {
	query := `SELECT COUNT(1) FROM poas WHERE code = $1 AND id != $2`

	var count int
	if err := r.db.QueryRow(query, code, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsForPeriod reports whether the project already has a POA in the period
func (r *POARepository) ExistsForPeriod(projectID, periodID, excludeID string) (bool, error) {
	query := `SELECT COUNT(1) FROM poas WHERE project_id = $1 AND period_id = $2 AND id != $3`

	var count int
	if err := r.db.QueryRow(query, projectID, periodID, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// BudgetsByProject returns the assigned budgets of a project's POAs, ignoring excludeID
func (r *POARepository) BudgetsByProject(projectID, excludeID string) ([]float64, error) {
	query := `SELECT assigned_budget FROM poas WHERE project_id = $1 AND id != $2`

	rows, err := r.db.Query(query, projectID, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []float64
	for rows.Next() {
		var budget float64
		if err := rows.Scan(&budget); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	return budgets, nil
}
