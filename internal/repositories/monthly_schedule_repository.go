package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type MonthlyScheduleRepository struct {
	db *sql.DB
}

func NewMonthlyScheduleRepository(db *sql.DB) *MonthlyScheduleRepository {
	return &MonthlyScheduleRepository{
		db: db,
	}
}

// Create creates a new monthly schedule entry
func (r *MonthlyScheduleRepository) Create(schedule *models.MonthlySchedule) error {
	query := `
		INSERT INTO monthly_schedules (id, task_id, month, amount)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(query,
		schedule.ID,
		schedule.TaskID,
		schedule.Month,
		schedule.Amount,
	)

	return err
}

// GetByID retrieves a monthly schedule entry by ID
func (r *MonthlyScheduleRepository) GetByID(id string) (*models.MonthlySchedule, error) {
	query := `
		SELECT id, task_id, month, amount
		FROM monthly_schedules
		WHERE id = $1
	`

	schedule := &models.MonthlySchedule{}
	err := r.db.QueryRow(query, id).Scan(
		&schedule.ID,
		&schedule.TaskID,
		&schedule.Month,
		&schedule.Amount,
	)

	if err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetByTaskID retrieves all schedule entries of a task, ordered by month
func (r *MonthlyScheduleRepository) GetByTaskID(taskID string) ([]*models.MonthlySchedule, error) {
	query := `
		SELECT id, task_id, month, amount
		FROM monthly_schedules
		WHERE task_id = $1
		ORDER BY month
	`

	rows, err := r.db.Query(query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.MonthlySchedule
	for rows.Next() {
		schedule := &models.MonthlySchedule{}
		err := rows.Scan(
			&schedule.ID,
			&schedule.TaskID,
			&schedule.Month,
			&schedule.Amount,
		)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// Update updates a monthly schedule entry
func (r *MonthlyScheduleRepository) Update(schedule *models.MonthlySchedule) error {
	query := `
		UPDATE monthly_schedules
		SET month = $1, amount = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(query,
		schedule.Month,
		schedule.Amount,
		schedule.ID,
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

// DeleteByTaskID removes all schedule entries of a task
func (r *MonthlyScheduleRepository) DeleteByTaskID(taskID string) error {
	query := `DELETE FROM monthly_schedules WHERE task_id = $1`

	_, err := r.db.Exec(query, taskID)
	return err
}

// MonthInUse reports whether the task already has an entry for this month
func (r *MonthlyScheduleRepository) MonthInUse(taskID, month, excludeID string) (bool, error) {
	query := `SELECT COUNT(1) FROM monthly_schedules WHERE task_id = $1 AND month = $2 AND id != $3`

	var count int
	if err := r.db.QueryRow(query, taskID, month, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
