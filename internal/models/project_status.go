package models

import "github.com/google/uuid"

type ProjectStatus struct {
	ID          uuid.UUID `json:"id_estado_proyecto"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
	AllowsEdit  bool      `json:"permite_edicion"`
}
