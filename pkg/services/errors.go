// Package services implements the persistence layer: one service per
// entity, all backed by Ent and safe for concurrent use.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a compare-and-set update
	// matched zero rows because another writer got there first
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrInvalidTransition is returned when a state transition is not legal
	// from the entity's current state
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrAlreadyDecided is returned when deciding an approval gate that is
	// no longer pending
	ErrAlreadyDecided = errors.New("approval gate already decided")

	// ErrBudgetExceeded is returned when charging a budget past its limit
	ErrBudgetExceeded = errors.New("budget exceeded")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
