package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	query := `
		INSERT INTO tasks (id, activity_id, task_detail_id, name, description,
			quantity, unit_price, total, available_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		task.ID,
		task.ActivityID,
		task.TaskDetailID,
		task.Name,
		task.Description,
		task.Quantity,
		task.UnitPrice,
		task.Total,
		task.AvailableBalance,
	)

	return err
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id string) (*models.Task, error) {
	query := `
		SELECT id, activity_id, task_detail_id, name, description,
			quantity, unit_price, total, available_balance
		FROM tasks
		WHERE id = $1
	`

	task := &models.Task{}
	err := r.db.QueryRow(query, id).Scan(
		&task.ID,
		&task.ActivityID,
		&task.TaskDetailID,
		&task.Name,
		&task.Description,
		&task.Quantity,
		&task.UnitPrice,
		&task.Total,
		&task.AvailableBalance,
	)

	if err != nil {
		return nil, err
	}

	return task, nil
}

// GetByActivityID retrieves all tasks of an activity
func (r *TaskRepository) GetByActivityID(activityID string) ([]*models.Task, error) {
	query := `
		SELECT id, activity_id, task_detail_id, name, description,
			quantity, unit_price, total, available_balance
		FROM tasks
		WHERE activity_id = $1
	`

	rows, err := r.db.Query(query, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(
			&task.ID,
			&task.ActivityID,
			&task.TaskDetailID,
			&task.Name,
			&task.Description,
			&task.Quantity,
			&task.UnitPrice,
			&task.Total,
			&task.AvailableBalance,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	query := `
		UPDATE tasks
		SET task_detail_id = $1, name = $2, description = $3,
			quantity = $4, unit_price = $5, total = $6, available_balance = $7
		WHERE id = $8
	`

	result, err := r.db.Exec(query,
		task.TaskDetailID,
		task.Name,
		task.Description,
		task.Quantity,
		task.UnitPrice,
		task.Total,
		task.AvailableBalance,
		task.ID,
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

// Delete removes a task
func (r *TaskRepository) Delete(id string) error {
	query := `DELETE FROM tasks WHERE id = $1`

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
