package models

import (
	"time"

	"github.com/google/uuid"
)

type Period struct {
	ID        uuid.UUID `json:"id_periodo"`
	Code      string    `json:"codigo_periodo"`
	Name      string    `json:"nombre_periodo"`
	StartDate time.Time `json:"fecha_inicio"`
	EndDate   time.Time `json:"fecha_fin"`
	Year      string    `json:"anio,omitempty"`
	Month     string    `json:"mes,omitempty"`
}
