package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type TaskDetailRepository struct {
	db *sql.DB
}

func NewTaskDetailRepository(db *sql.DB) *TaskDetailRepository {
	return &TaskDetailRepository{
		db: db,
	}
}

// GetByID retrieves a task detail by ID
func (r *TaskDetailRepository) GetByID(id string) (*models.TaskDetail, error) {
	query := `
		SELECT id, budget_item_id, name, description, characteristics
		FROM task_details
		WHERE id = $1
	`

	detail := &models.TaskDetail{}
	err := r.db.QueryRow(query, id).Scan(
		&detail.ID,
		&detail.BudgetItemID,
		&detail.Name,
		&detail.Description,
		&detail.Characteristics,
	)

	if err != nil {
		return nil, err
	}

	return detail, nil
}

// GetAll retrieves all task details
func (r *TaskDetailRepository) GetAll() ([]*models.TaskDetail, error) {
	query := `
		SELECT id, budget_item_id, name, description, characteristics
		FROM task_details
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*models.TaskDetail
	for rows.Next() {
		detail := &models.TaskDetail{}
		err := rows.Scan(
			&detail.ID,
			&detail.BudgetItemID,
			&detail.Name,
			&detail.Description,
			&detail.Characteristics,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}
