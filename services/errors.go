package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every service. Handlers map these onto HTTP
// statuses: ErrValidation and ErrInvalidTransition → 400, ErrNotFound → 404,
// ErrStorage (and anything unknown) → 500.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid state transition")
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrValidation)
	ErrStorage             = errors.New("storage failure")
)

// validationf wraps ErrValidation with a human-readable message.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// notFoundf wraps ErrNotFound naming the missing entity.
func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// transitionf wraps ErrInvalidTransition with the offending transition.
func transitionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidTransition}, args...)...)
}

// storageErr wraps an unexpected repository error. With the current backend
// this mostly surfaces driver failures, but it keeps the 500 class distinct
// for when a managed database is plugged in.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
