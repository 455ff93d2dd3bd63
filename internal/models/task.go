package models

import "github.com/google/uuid"

type Task struct {
	ID               uuid.UUID  `json:"id_tarea"`
	ActivityID       uuid.UUID  `json:"id_actividad"`
	TaskDetailID     *uuid.UUID `json:"id_detalle_tarea,omitempty"`
	Name             string     `json:"nombre"`
	Description      string     `json:"detalle_descripcion,omitempty"`
	Quantity         float64    `json:"cantidad"`
	UnitPrice        float64    `json:"precio_unitario"`
	Total            float64    `json:"total"`
	AvailableBalance float64    `json:"saldo_disponible"`
}

// RecalculateTotal keeps total and balance consistent with quantity and unit price.
func (t *Task) RecalculateTotal() {
	t.Total = t.Quantity * t.UnitPrice
	t.AvailableBalance = t.Total
}
