package models

import "github.com/google/uuid"

type Role struct {
	ID          uuid.UUID `json:"id_rol"`
	Name        string    `json:"nombre_rol"`
	Description string    `json:"descripcion,omitempty"`
}
