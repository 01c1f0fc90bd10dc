package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when a mutating operation runs with no
	// signed-in identity.
	ErrNotAuthenticated = errors.New("sign in required")

	// ErrCycleNotFound is returned when an operation targets an unknown cycle.
	ErrCycleNotFound = errors.New("cycle not found")
)

// ValidationError rejects bad input synchronously with no mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a store failure. The attempted mutation was never
// committed locally, so in-memory state is unchanged.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "failed to save cycles: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
