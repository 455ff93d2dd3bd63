package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

const dateLayout = "2006-01-02"

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// parseDate parses an optional "2006-01-02" date string.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("date must be in YYYY-MM-DD format")
	}

	return &t, nil
}

// requireDate parses a mandatory "2006-01-02" date string.
func requireDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewFormatInvalid(field + " is required")
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewFormatInvalid(field + " must be in YYYY-MM-DD format")
	}

	return t, nil
}
