// Package apperr defines the application error taxonomy. Every failure a
// client can observe is one of four kinds, each bound to a fixed HTTP status;
// anything outside the taxonomy is treated as unexpected.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// GenericMessage is returned for failures whose detail must not leak to the
// client.
const GenericMessage = "Something went wrong"

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified application error carrying the HTTP status it maps to.
type Error struct {
	StatusCode int
	Message    string
	Violations []Violation // populated for schema validation failures
	cause      error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any, for logging.
func (e *Error) Unwrap() error { return e.cause }

// Validation builds a 400 error for a business-rule conflict.
func Validation(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

// SchemaViolations builds a 400 error whose message concatenates every field
// violation, preserving their order.
func SchemaViolations(violations []Violation) *Error {
	messages := make([]string, len(violations))
	for i, v := range violations {
		messages[i] = v.Message
	}
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    strings.Join(messages, "; "),
		Violations: violations,
	}
}

// NotFound builds a 404 error for a lookup miss.
func NotFound(message string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: message}
}

// Unauthorized builds a 401 error for a credential failure.
func Unauthorized(message string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: message}
}

// Internal builds a 500 error around a persistence or infrastructure failure.
// The cause is kept for logging but never shown to the client.
func Internal(cause error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: GenericMessage, cause: cause}
}

// Classify reports whether err belongs to the taxonomy.
func Classify(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
