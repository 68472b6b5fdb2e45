package apperror

import (
	"errors"
	"net/http"
)

// Error is the single failure type that crosses the service boundary.
// Every error a service or handler raises is one of the five variants
// below, or gets wrapped into Internal before it reaches the client.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	if message == "" {
		message = "Bad request"
	}
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized request"
	}
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Not found"
	}
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return New(http.StatusInternalServerError, message)
}

// From narrows err to *Error, wrapping anything unknown into Internal so
// that driver-level failures never leak their status-less shape upward.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("")
}
