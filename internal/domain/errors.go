package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrExternalService marks a failure of the generation service that
	// survived all internal retries.
	ErrExternalService = errors.New("external service error")
	// ErrRateLimited marks an upstream quota rejection. It is never retried
	// internally so callers can back off for longer.
	ErrRateLimited = errors.New("rate limited")
	// ErrContentUnavailable is what callers of the generation cache see when
	// no valid payload could be produced. Nothing is cached in that case.
	ErrContentUnavailable = errors.New("content unavailable, retry")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConflictError reports an invalid state transition or a concurrent update
// collision on a single entity.
type ConflictError struct {
	Entity string
	ID     string
	From   string
	To     string
}

func (e *ConflictError) Error() string {
	if e.From == "" && e.To == "" {
		return fmt.Sprintf("conflict: %s %s", e.Entity, e.ID)
	}
	return fmt.Sprintf("conflict: %s %s cannot move from %s to %s", e.Entity, e.ID, e.From, e.To)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewTransitionError creates a ConflictError for a rejected state transition.
func NewTransitionError(entity, id, from, to string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, From: from, To: to}
}
