package models

import "github.com/google/uuid"

type POAStatus struct {
	ID          uuid.UUID `json:"id_estado_poa"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
}
