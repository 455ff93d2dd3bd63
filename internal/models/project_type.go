package models

import "github.com/google/uuid"

// ProjectType caps the budget and duration of the projects created under it.
// A nil MaxBudget means the type carries no budget ceiling.
type ProjectType struct {
	ID             uuid.UUID `json:"id_tipo_proyecto"`
	Code           string    `json:"codigo_tipo"`
	Name           string    `json:"nombre"`
	Description    string    `json:"descripcion,omitempty"`
	DurationMonths int       `json:"duracion_meses"`
	PeriodCount    int       `json:"cantidad_periodos"`
	MaxBudget      *float64  `json:"presupuesto_maximo,omitempty"`
}
