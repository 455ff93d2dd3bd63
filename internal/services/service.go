package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/apperrors"
)

// parseID validates a UUID path or payload parameter.
func parseID(id, entity string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, apperrors.NewFormatInvalid(fmt.Sprintf("%s ID is required", entity))
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.NewFormatInvalid(fmt.Sprintf("invalid %s ID format", entity))
	}

	return parsed, nil
}
