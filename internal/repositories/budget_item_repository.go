package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type BudgetItemRepository struct {
	db *sql.DB
}

func NewBudgetItemRepository(db *sql.DB) *BudgetItemRepository {
	return &BudgetItemRepository{
		db: db,
	}
}

// GetByID retrieves a budget item by ID
func (r *BudgetItemRepository) GetByID(id string) (*models.BudgetItem, error) {
	query := `
		SELECT id, code, name, description
		FROM budget_items
		WHERE id = $1
	`

	item := &models.BudgetItem{}
	err := r.db.QueryRow(query, id).Scan(
		&item.ID,
		&item.Code,
		&item.Name,
		&item.Description,
	)

	if err != nil {
		return nil, err
	}

	return item, nil
}

// GetByTaskID retrieves the budget item behind a task's detail
func (r *BudgetItemRepository) GetByTaskID(taskID string) (*models.BudgetItem, error) {
	query := `
		SELECT bi.id, bi.code, bi.name, bi.description
		FROM budget_items bi
		JOIN task_details td ON td.budget_item_id = bi.id
		JOIN tasks t ON t.task_detail_id = td.id
		WHERE t.id = $1
	`

	item := &models.BudgetItem{}
	err := r.db.QueryRow(query, taskID).Scan(
		&item.ID,
		&item.Code,
		&item.Name,
		&item.Description,
	)

	if err != nil {
		return nil, err
	}

	return item, nil
}
