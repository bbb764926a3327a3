package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		entity      string
		criteria    string
		expectedMsg string
	}{
		{
			name:        "unfiltered",
			err:         NewNotFoundError("quotes"),
			entity:      "quotes",
			expectedMsg: "no quotes found",
		},
		{
			name:        "with criteria",
			err:         NewNotFoundErrorFor("quotes", `character "Frank Costanza"`),
			entity:      "quotes",
			criteria:    `character "Frank Costanza"`,
			expectedMsg: `no quotes found for character "Frank Costanza"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, tt.err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.criteria, notFound.Criteria)
		})
	}
}

func TestConflictError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
		value       string
	}{
		{
			name:        "reason is the message",
			err:         NewConflictError("quote", "Quote already exists"),
			expectedMsg: "Quote already exists",
		},
		{
			name:        "empty reason falls back to entity",
			err:         NewConflictError("quote", ""),
			expectedMsg: "quote conflict",
		},
		{
			name:        "duplicate quote names the text",
			err:         NewDuplicateQuoteError("Serenity now!"),
			expectedMsg: "Quote 'Serenity now!' already exists",
			value:       "Serenity now!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrConflict)

			var conflict *ConflictError
			require.ErrorAs(t, tt.err, &conflict)
			assert.Equal(t, "quote", conflict.Entity)
			assert.Equal(t, tt.value, conflict.Value)
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "season",
			message:     "must not be negative",
			expectedMsg: "validation failed for season: must not be negative",
		},
		{
			name:        "without field",
			field:       "",
			message:     "general validation error",
			expectedMsg: "validation failed: general validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestUnavailableError(t *testing.T) {
	tests := []struct {
		name        string
		service     string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with reason",
			service:     "database",
			reason:      "connection refused",
			expectedMsg: `service "database" unavailable: connection refused`,
		},
		{
			name:        "without reason",
			service:     "database",
			reason:      "",
			expectedMsg: `service "database" unavailable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnavailableError(tt.service, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrUnavailable)

			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.service, unavailable.Service)
			assert.Equal(t, tt.reason, unavailable.Reason)
		})
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("quotes"), IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrConflict, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsConflict with duplicate", NewDuplicateQuoteError("x"), IsConflict, true},
		{"IsConflict with wrapped", fmt.Errorf("wrapped: %w", ErrConflict), IsConflict, true},
		{"IsConflict with other error", ErrNotFound, IsConflict, false},
		{"IsConflict with nil", nil, IsConflict, false},

		{"IsValidation with ValidationError", NewValidationError("quote", "empty"), IsValidation, true},
		{"IsValidation with other error", ErrNotFound, IsValidation, false},

		{"IsUnavailable with UnavailableError", NewUnavailableError("database", "down"), IsUnavailable, true},
		{"IsUnavailable with other error", ErrNotFound, IsUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	original := NewDuplicateQuoteError("These pretzels are making me thirsty!")
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", original))

	assert.True(t, IsConflict(wrapped))

	var conflict *ConflictError
	require.ErrorAs(t, wrapped, &conflict)
	assert.Equal(t, "These pretzels are making me thirsty!", conflict.Value)
}
