package models

import "github.com/google/uuid"

// MonthlySchedule assigns part of a task's budget to a month ("01-2026" format).
// A task can have at most one entry per month.
type MonthlySchedule struct {
	ID     uuid.UUID `json:"id_programacion"`
	TaskID uuid.UUID `json:"id_tarea"`
	Month  string    `json:"mes"`
	Amount float64   `json:"valor"`
}
