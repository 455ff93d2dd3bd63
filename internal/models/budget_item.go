package models

import "github.com/google/uuid"

type BudgetItem struct {
	ID          uuid.UUID `json:"id_item_presupuestario"`
	Code        string    `json:"codigo"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
}
