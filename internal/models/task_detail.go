package models

import "github.com/google/uuid"

// TaskDetail is a catalog entry describing a kind of task, linked to a budget item.
type TaskDetail struct {
	ID              uuid.UUID `json:"id_detalle_tarea"`
	BudgetItemID    uuid.UUID `json:"id_item_presupuestario"`
	Name            string    `json:"nombre"`
	Description     string    `json:"descripcion,omitempty"`
	Characteristics string    `json:"caracteristicas,omitempty"`
}
