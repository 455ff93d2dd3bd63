package models

import (
	"time"

	"github.com/google/uuid"
)

// POA is an annual operating plan, tied to exactly one project and one period.
type POA struct {
	ID             uuid.UUID `json:"id_poa"`
	ProjectID      uuid.UUID `json:"id_proyecto"`
	PeriodID       uuid.UUID `json:"id_periodo"`
	Code           string    `json:"codigo_poa"`
	CreatedAt      time.Time `json:"fecha_creacion"`
	StatusID       uuid.UUID `json:"id_estado_poa"`
	TypeID         uuid.UUID `json:"id_tipo_poa"`
	ExecutionYear  string    `json:"anio_ejecucion"`
	AssignedBudget float64   `json:"presupuesto_asignado"`
}
