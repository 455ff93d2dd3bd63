package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	query := `
		INSERT INTO activities (id, poa_id, description, total, balance)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(query,
		activity.ID,
		activity.POAID,
		activity.Description,
		activity.Total,
		activity.Balance,
	)

	return err
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(id string) (*models.Activity, error) {
	query := `
		SELECT id, poa_id, description, total, balance
		FROM activities
		WHERE id = $1
	`

	activity := &models.Activity{}
	err := r.db.QueryRow(query, id).Scan(
		&activity.ID,
		&activity.POAID,
		&activity.Description,
		&activity.Total,
		&activity.Balance,
	)

	if err != nil {
		return nil, err
	}

	return activity, nil
}

// GetByPOAID retrieves all activities of a POA
func (r *ActivityRepository) GetByPOAID(poaID string) ([]*models.Activity, error) {
	query := `
		SELECT id, poa_id, description, total, balance
		FROM activities
		WHERE poa_id = $1
	`

	rows, err := r.db.Query(query, poaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity := &models.Activity{}
		err := rows.Scan(
			&activity.ID,
			&activity.POAID,
			&activity.Description,
			&activity.Total,
			&activity.Balance,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

// Update updates an activity
func (r *ActivityRepository) Update(activity *models.Activity) error {
	query := `
		UPDATE activities
		SET description = $1, total = $2, balance = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query,
		activity.Description,
		activity.Total,
		activity.Balance,
		activity.ID,
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

// Delete removes an activity
func (r *ActivityRepository) Delete(id string) error {
	query := `DELETE FROM activities WHERE id = $1`

	result, err := r.db.Exec(query, id)
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
