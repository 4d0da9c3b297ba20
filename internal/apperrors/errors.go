package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may not act on the requested tenant data.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in a collaborator.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap allows errors.Is / errors.As to see the cause.
func (e *AppError) Unwrap() error {
	return e.Err
}
