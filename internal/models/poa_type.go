package models

import "github.com/google/uuid"

// POAType caps the budget and period duration of the POAs created under it.
// A nil MaxBudget means the type carries no budget ceiling.
type POAType struct {
	ID             uuid.UUID `json:"id_tipo_poa"`
	Code           string    `json:"codigo_tipo"`
	Name           string    `json:"nombre"`
	Description    string    `json:"descripcion,omitempty"`
	DurationMonths int       `json:"duracion_meses"`
	PeriodCount    int       `json:"cantidad_periodos"`
	MaxBudget      *float64  `json:"presupuesto_maximo,omitempty"`
}
