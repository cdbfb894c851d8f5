// Package apperrors provides the typed error taxonomy the services return
// and its mapping onto HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an error for status mapping and logging.
type ErrorType string

const (
	// TypeValidation indicates invalid input (HTTP 400)
	TypeValidation ErrorType = "validation"
	// TypeUnauthorized indicates missing or bad credentials (HTTP 401)
	TypeUnauthorized ErrorType = "unauthorized"
	// TypeNotFound indicates resource not found (HTTP 404)
	TypeNotFound ErrorType = "not_found"
	// TypeConflict indicates resource conflict (HTTP 409)
	TypeConflict ErrorType = "conflict"
	// TypeInternal indicates server-side error (HTTP 500)
	TypeInternal ErrorType = "internal"
)

// Error carries a type, a client-safe message, and an optional cause.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeUnauthorized:
		return http.StatusUnauthorized
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates a new validation error (HTTP 400).
func Validation(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

// Unauthorized creates a new unauthorized error (HTTP 401).
func Unauthorized(message string) *Error {
	return &Error{Type: TypeUnauthorized, Message: message}
}

// NotFound creates a new not-found error (HTTP 404).
func NotFound(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message}
}

// Conflict creates a new conflict error (HTTP 409).
func Conflict(message string) *Error {
	return &Error{Type: TypeConflict, Message: message}
}

// Internal creates a new internal error (HTTP 500). The message shown to
// the client stays generic; the cause is for logs only.
func Internal(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// AsError normalizes any error into an *Error; unknown errors become
// internal ones so nothing leaks to the client by accident.
func AsError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
