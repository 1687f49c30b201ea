package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      NewAppError(ErrTypeNotFound, "order history missing", nil),
			expected: "[NOT_FOUND] order history missing",
		},
		{
			name:     "error with cause",
			err:      NewAppError(ErrTypeSchema, "bad column", errors.New("strconv failure")),
			expected: "[SCHEMA] bad column: strconv failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewWriteError("encode failed", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeWrite, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewSchemaError("missing column", nil).
		WithContext("column", "ops_per_sec").
		WithContext("file", "results.csv")

	assert.Equal(t, "ops_per_sec", err.Context["column"])
	assert.Equal(t, "results.csv", err.Context["file"])
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{
			name:     "direct app error",
			err:      NewNotFoundError("results.csv"),
			expected: ErrTypeNotFound,
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("report failed: %w", NewComputationError("empty group")),
			expected: ErrTypeComputation,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeOf(tt.err))
		})
	}
}

func TestIsType(t *testing.T) {
	err := NewNotFoundError("price_data_instrument_0.csv")

	assert.True(t, IsType(err, ErrTypeNotFound))
	assert.False(t, IsType(err, ErrTypeWrite))
	assert.False(t, IsType(errors.New("plain"), ErrTypeNotFound))
}
