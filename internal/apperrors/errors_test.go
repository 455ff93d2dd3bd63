package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NewConflict("code already in use")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, Conflict, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("saving project: %w", NewNotFound("project not found"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, NotFound, kind)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewFormatInvalid("bad")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewLimitExceeded("too big")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFound("missing")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(NewConflict("duplicate")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorMessage(t *testing.T) {
	err := NewFormatInvalid("year must be four digits")
	assert.Equal(t, "year must be four digits", err.Error())
}
