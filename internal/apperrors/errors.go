package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a validation rejection.
type Kind int

const (
	// FormatInvalid means a field value is malformed or out of range.
	FormatInvalid Kind = iota
	// NotFound means a referenced entity does not exist.
	NotFound
	// Conflict means a uniqueness rule was violated.
	Conflict
	// LimitExceeded means a cross-entity numeric or temporal ceiling was violated.
	LimitExceeded
)

// Error is a classified rejection raised by a validator.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewFormatInvalid creates a FormatInvalid error
func NewFormatInvalid(message string) *Error {
	return &Error{Kind: FormatInvalid, Message: message}
}

// NewNotFound creates a NotFound error
func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewConflict creates a Conflict error
func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// NewLimitExceeded creates a LimitExceeded error
func NewLimitExceeded(message string) *Error {
	return &Error{Kind: LimitExceeded, Message: message}
}

// KindOf returns the kind of a classified error and whether err is one.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

// HTTPStatus maps a classified error to an HTTP status code.
// Unclassified errors map to 500.
func HTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case FormatInvalid, LimitExceeded:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
