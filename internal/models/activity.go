package models

import "github.com/google/uuid"

type Activity struct {
	ID          uuid.UUID `json:"id_actividad"`
	POAID       uuid.UUID `json:"id_poa"`
	Description string    `json:"descripcion_actividad"`
	Total       float64   `json:"total_por_actividad"`
	Balance     float64   `json:"saldo_actividad"`
}
