package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type POATypeRepository struct {
	db *sql.DB
}

func NewPOATypeRepository(db *sql.DB) *POATypeRepository {
	return &POATypeRepository{
		db: db,
	}
}

// GetByID retrieves a POA type by ID
func (r *POATypeRepository) GetByID(id string) (*models.POAType, error) {
	query := `
		SELECT id, code, name, description, duration_months, period_count, max_budget
		FROM poa_types
		WHERE id = $1
	`

	poaType := &models.POAType{}
	err := r.db.QueryRow(query, id).Scan(
		&poaType.ID,
		&poaType.Code,
		&poaType.Name,
		&poaType.Description,
		&poaType.DurationMonths,
		&poaType.PeriodCount,
		&poaType.MaxBudget,
	)

	if err != nil {
		return nil, err
	}

	return poaType, nil
}

// GetAll retrieves all POA types
func (r *POATypeRepository) GetAll() ([]*models.POAType, error) {
	query := `
		SELECT id, code, name, description, duration_months, period_count, max_budget
		FROM poa_types
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.POAType
	for rows.Next() {
		poaType := &models.POAType{}
		err := rows.Scan(
			&poaType.ID,
			&poaType.Code,
			&poaType.Name,
			&poaType.Description,
			&poaType.DurationMonths,
			&poaType.PeriodCount,
			&poaType.MaxBudget,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, poaType)
	}

	return types, nil
}
