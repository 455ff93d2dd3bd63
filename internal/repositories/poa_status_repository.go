package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type POAStatusRepository struct {
	db *sql.DB
}

func NewPOAStatusRepository(db *sql.DB) *POAStatusRepository {
	return &POAStatusRepository{
		db: db,
	}
}

// GetByID retrieves a POA status by ID
func (r *POAStatusRepository) GetByID(id string) (*models.POAStatus, error) {
	query := `
		SELECT id, name, description
		FROM poa_statuses
		WHERE id = $1
	`

	status := &models.POAStatus{}
	err := r.db.QueryRow(query, id).Scan(
		&status.ID,
		&status.Name,
		&status.Description,
	)

	if err != nil {
		return nil, err
	}

	return status, nil
}

// GetAll retrieves all POA statuses
func (r *POAStatusRepository) GetAll() ([]*models.POAStatus, error) {
	query := `
		SELECT id, name, description
		FROM poa_statuses
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.POAStatus
	for rows.Next() {
		status := &models.POAStatus{}
		if err := rows.Scan(&status.ID, &status.Name, &status.Description); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
