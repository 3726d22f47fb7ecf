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
	ErrInvalidState  = errors.New("invalid state")
	ErrStore         = errors.New("store error")
	ErrExternalSink  = errors.New("catalog sink error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
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

// StateError reports a workflow transition attempted from a status that
// does not permit it.
type StateError struct {
	Op       string
	RecordID string
	From     RecordStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s record %s: not allowed from status %s", e.Op, e.RecordID, e.From)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// NewStateError creates a StateError.
func NewStateError(op, recordID string, from RecordStatus) *StateError {
	return &StateError{Op: op, RecordID: recordID, From: from}
}

// StoreError wraps an underlying persistence failure.
// errors.Is matches both ErrStore and the wrapped cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error { return []error{ErrStore, e.Err} }

// SinkError reports that the catalog sink refused a publish.
type SinkError struct {
	RecordID string
	Err      error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("catalog sink rejected record %s: %v", e.RecordID, e.Err)
}

func (e *SinkError) Unwrap() []error { return []error{ErrExternalSink, e.Err} }
