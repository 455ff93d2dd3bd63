package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID  `json:"id_proyecto"`
	Code           string     `json:"codigo_proyecto"`
	Title          string     `json:"titulo"`
	TypeID         uuid.UUID  `json:"id_tipo_proyecto"`
	StatusID       uuid.UUID  `json:"id_estado_proyecto"`
	DirectorName   string     `json:"id_director_proyecto,omitempty"`
	ApprovedBudget *float64   `json:"presupuesto_aprobado,omitempty"`
	CreatedAt      time.Time  `json:"fecha_creacion"`
	StartDate      *time.Time `json:"fecha_inicio,omitempty"`
	EndDate        *time.Time `json:"fecha_fin,omitempty"`
	ExtensionStart *time.Time `json:"fecha_prorroga_inicio,omitempty"`
	ExtensionEnd   *time.Time `json:"fecha_prorroga_fin,omitempty"`
}
