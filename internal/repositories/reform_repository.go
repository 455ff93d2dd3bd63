package repositories

import (
	"database/sql"

	"github.com/majoduan/poa-backend/internal/models"
)

type ReformRepository struct {
	db *sql.DB
}

func NewReformRepository(db *sql.DB) *ReformRepository {
	return &ReformRepository{
		db: db,
	}
}

// Create creates a new reform
func (r *ReformRepository) Create(reform *models.Reform) error {
	query := `
		INSERT INTO reforms (id, poa_id, requested_at, approved_at, status,
			previous_amount, requested_amount, justification, requested_by, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(query,
		reform.ID,
		reform.POAID,
		reform.RequestedAt,
		reform.ApprovedAt,
		reform.Status,
		reform.PreviousAmount,
		reform.RequestedAmount,
		reform.Justification,
		reform.RequestedByID,
		reform.ApprovedByID,
	)

	return err
}

// GetByID retrieves a reform by ID
func (r *ReformRepository) GetByID(id string) (*models.Reform, error) {
	query := `
		SELECT id, poa_id, requested_at, approved_at, status,
			previous_amount, requested_amount, justification, requested_by, approved_by
		FROM reforms
		WHERE id = $1
	`

	reform := &models.Reform{}
	err := r.db.QueryRow(query, id).Scan(
		&reform.ID,
		&reform.POAID,
		&reform.RequestedAt,
		&reform.ApprovedAt,
		&reform.Status,
		&reform.PreviousAmount,
		&reform.RequestedAmount,
		&reform.Justification,
		&reform.RequestedByID,
		&reform.ApprovedByID,
	)

	if err != nil {
		return nil, err
	}

	return reform, nil
}

// GetByPOAID retrieves all reforms of a POA, newest first
func (r *ReformRepository) GetByPOAID(poaID string) ([]*models.Reform, error) {
	query := `
		SELECT id, poa_id, requested_at, approved_at, status,
			previous_amount, requested_amount, justification, requested_by, approved_by
		FROM reforms
		WHERE poa_id = $1
		ORDER BY requested_at DESC
	`

	rows, err := r.db.Query(query, poaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reforms []*models.Reform
	for rows.Next() {
		reform := &models.Reform{}
		err := rows.Scan(
			&reform.ID,
			&reform.POAID,
			&reform.RequestedAt,
			&reform.ApprovedAt,
			&reform.Status,
			&reform.PreviousAmount,
			&reform.RequestedAmount,
			&reform.Justification,
			&reform.RequestedByID,
			&reform.ApprovedByID,
		)
		if err != nil {
			return nil, err
		}
		reforms = append(reforms, reform)
	}

	return reforms, nil
}

// Update updates a reform's approval fields
func (r *ReformRepository) Update(reform *models.Reform) error {
	query := `
		UPDATE reforms
		SET approved_at = $1, status = $2, approved_by = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query,
		reform.ApprovedAt,
		reform.Status,
		reform.ApprovedByID,
		reform.ID,
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
