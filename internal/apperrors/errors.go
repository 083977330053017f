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

// ErrConflict indicates the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates the user lacks the role required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when an unexpected failure must not leak details to the caller.
var ErrInternal = errors.New("internal error")

// ErrAlreadyReversed is returned when a journal that already has a reversing journal is reversed again.
var ErrAlreadyReversed = fmt.Errorf("%w: journal already reversed", ErrConflict)

// ErrCannotReverseReversal is returned when the journal to reverse is itself a reversal.
var ErrCannotReverseReversal = fmt.Errorf("%w: journal is a reversal and cannot be reversed", ErrConflict)

// ErrConcurrencyConflict is returned when a concurrent writer changed the row between read and write.
var ErrConcurrencyConflict = fmt.Errorf("%w: concurrent modification", ErrConflict)

// AppError carries an HTTP-ish code and the underlying cause.
// Repositories use it to wrap driver errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
