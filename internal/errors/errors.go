package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a report failure. Every failure is local to a single
// report; none is fatal to the process.
type ErrorType string

const (
	ErrTypeNotFound    ErrorType = "NOT_FOUND"
	ErrTypeSchema      ErrorType = "SCHEMA"
	ErrTypeComputation ErrorType = "COMPUTATION"
	ErrTypeWrite       ErrorType = "WRITE"
	ErrTypeConfig      ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates an error for a missing input file
func NewNotFoundError(path string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("input file not found: %s", path), nil).
		WithContext("path", path)
}

// NewSchemaError creates an error for a malformed input file
func NewSchemaError(message string, cause error) *AppError {
	return NewAppError(ErrTypeSchema, message, cause)
}

// NewComputationError creates an error for an aggregate that cannot be computed
func NewComputationError(message string) *AppError {
	return NewAppError(ErrTypeComputation, message, nil)
}

// NewWriteError creates an error for a failed artifact write
func NewWriteError(message string, cause error) *AppError {
	return NewAppError(ErrTypeWrite, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// TypeOf returns the ErrorType of err if it is (or wraps) an AppError,
// and an empty type otherwise.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}
