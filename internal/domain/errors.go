// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no stored entity matched the query.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness rule would be violated.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	// Entity is the plural name of what was searched for, e.g. "quotes".
	Entity string

	// Criteria describes the filter that matched nothing. Empty for unfiltered queries.
	Criteria string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Criteria != "" {
		return fmt.Sprintf("no %s found for %s", e.Entity, e.Criteria)
	}

	return fmt.Sprintf("no %s found", e.Entity)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error for an unfiltered query.
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewNotFoundErrorFor creates a not found error naming the filter that matched nothing.
func NewNotFoundErrorFor(entity, criteria string) error {
	return &NotFoundError{Entity: entity, Criteria: criteria}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string

	// Value is the offending value, when known.
	Value string
}

// Error implements the error interface. The reason is client-facing, so it is
// returned as-is when present.
func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}

	return e.Entity + " conflict"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewDuplicateQuoteError reports that a quote with the given text is already stored.
func NewDuplicateQuoteError(text string) error {
	return &ConflictError{
		Entity: "quote",
		Reason: fmt.Sprintf("Quote '%s' already exists", text),
		Value:  text,
	}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
