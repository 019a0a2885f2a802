// Package apperror defines the error categories the API distinguishes and
// how they map to HTTP status codes. Handlers translate every failure into
// one of these before responding, so the envelope stays uniform.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrForbidden      = errors.New("insufficient privileges")
	ErrNotFound       = errors.New("not found")
	ErrStore          = errors.New("store failure")
)

type AppError struct {
	Err     error  // category sentinel
	Message string // user-facing message
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func Authentication(message string) *AppError {
	return &AppError{Err: ErrAuthentication, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func Store(message string) *AppError {
	return &AppError{Err: ErrStore, Message: message}
}

// Status maps an error category to its HTTP status. Only a role failure is
// 401; everything else, including a missing id, answers 400.
func Status(err error) int {
	if errors.Is(err, ErrForbidden) {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}
