// Package apperror carries the request-level error taxonomy. Every failure a
// handler can return maps to one of these, and the HTTP boundary converts them
// into the uniform response envelope.
package apperror

import (
	"errors"
	"net/http"
)

type AppError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(statusCode int, message string, fieldErrors ...string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Errors: fieldErrors}
}

func BadRequest(message string, fieldErrors ...string) *AppError {
	return New(http.StatusBadRequest, message, fieldErrors...)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

func Internal(message string) *AppError {
	if message == "" {
		message = "something went wrong"
	}
	return New(http.StatusInternalServerError, message)
}

// From normalizes any error into an AppError. Unanticipated errors surface as
// a generic 500 so store internals never leak to the client.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("something went wrong")
}
