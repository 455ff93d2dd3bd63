package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type PeriodRepository struct {
	db *sql.DB
}

func NewPeriodRepository(db *sql.DB) *PeriodRepository {
	return &PeriodRepository{
		db: db,
	}
}

// Create creates a new period
func (r *PeriodRepository) Create(period *models.Period) error {
	query := `
		INSERT INTO periods (id, code, name, start_date, end_date, year, month)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		period.ID,
		period.Code,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.Year,
		period.Month,
	)

	return err
}

// GetByID retrieves a period by ID
func (r *PeriodRepository) GetByID(id string) (*models.Period, error) {
	query := `
		SELECT id, code, name, start_date, end_date, year, month
		FROM periods
		WHERE id = $1
	`

	period := &models.Period{}
	err := r.db.QueryRow(query, id).Scan(
		&period.ID,
		&period.Code,
		&period.Name,
		&period.StartDate,
		&period.EndDate,
		&period.Year,
		&period.Month,
	)

	if err != nil {
		return nil, err
	}

	return period, nil
}

// GetAll retrieves all periods ordered by start date
func (r *PeriodRepository) GetAll() ([]*models.Period, error) {
	query := `
		SELECT id, code, name, start_date, end_date, year, month
		FROM periods
		ORDER BY start_date
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*models.Period
	for rows.Next() {
		period := &models.Period{}
		err := rows.Scan(
			&period.ID,
			&period.Code,
			&period.Name,
			&period.StartDate,
			&period.EndDate,
			&period.Year,
			&period.Month,
		)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	return periods, nil
}

// Update updates a period
func (r *PeriodRepository) Update(period *models.Period) error {
	query := `
		UPDATE periods
		SET code = $1, name = $2, start_date = $3, end_date = $4, year = $5, month = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(query,
		period.Code,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.Year,
		period.Month,
		period.ID,
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

// CodeInUse reports whether another period already uses this code
func (r *PeriodRepository) CodeInUse(code, excludeID string) (bool, error) {
	query := `SELECT COUNT(1) FROM periods WHERE code = $1 AND id != $2`

	var count int
	if err := r.db.QueryRow(query, code, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
