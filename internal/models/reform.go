package models

import (
	"time"

	"github.com/google/uuid"
)

// Reform statuses
const (
	ReformPending  = "Pendiente"
	ReformApproved = "Aprobada"
)

// Reform is a budget amendment to an existing POA.
type Reform struct {
	ID              uuid.UUID  `json:"id_reforma"`
	POAID           uuid.UUID  `json:"id_poa"`
	RequestedAt     time.Time  `json:"fecha_solicitud"`
	ApprovedAt      *time.Time `json:"fecha_aprobacion,omitempty"`
	Status          string     `json:"estado_reforma"`
	PreviousAmount  float64    `json:"monto_anterior"`
	RequestedAmount float64    `json:"monto_solicitado"`
	Justification   string     `json:"justificacion"`
	RequestedByID   uuid.UUID  `json:"id_usuario_solicita"`
	ApprovedByID    *uuid.UUID `json:"id_usuario_aprueba,omitempty"`
}
