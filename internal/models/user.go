package models

import "github.com/google/uuid"

type User struct {
	ID           uuid.UUID `json:"id_usuario"`
	Name         string    `json:"nombre_usuario"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       uuid.UUID `json:"id_rol"`
	Active       bool      `json:"activo"`
}

// NewUser creates an active user with a fresh ID.
func NewUser(name, email, passwordHash string, roleID uuid.UUID) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		Active:       true,
	}
}
