package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/services"
)

func performError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"format invalid", apperrors.NewFormatInvalid("bad input"), http.StatusBadRequest},
		{"limit exceeded", apperrors.NewLimitExceeded("too big"), http.StatusBadRequest},
		{"not found", apperrors.NewNotFound("missing"), http.StatusNotFound},
		{"conflict", apperrors.NewConflict("duplicate"), http.StatusConflict},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no rows", sql.ErrNoRows, http.StatusNotFound},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performError(tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	w := performError(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-05-01")
	assert.NoError(t, err)
	assert.NotNil(t, d)
	assert.Equal(t, 2024, d.Year())

	d, err = parseDate("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = parseDate("05/01/2024")
	assert.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.FormatInvalid, kind)
}

func TestRequireDate(t *testing.T) {
	d, err := requireDate("2024-05-01", "start date")
	assert.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = requireDate("", "start date")
	assert.Error(t, err)

	_, err = requireDate("not-a-date", "start date")
	assert.Error(t, err)
}
