package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeMalformedRecord indicates a source record missing required identity fields
	ErrorTypeMalformedRecord ErrorType = "MALFORMED_RECORD"

	// ErrorTypeInvalidWeights indicates a scoring weight vector that does not sum to 1.0
	ErrorTypeInvalidWeights ErrorType = "INVALID_WEIGHTS"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates an error from an external service
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewMalformedRecordError creates a new malformed record error
func NewMalformedRecordError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedRecord,
		Message: message,
	}
}

// NewInvalidWeightsError creates a new invalid weights error
func NewInvalidWeightsError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidWeights,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsMalformedRecord reports whether err is a malformed record error
func IsMalformedRecord(err error) bool {
	return IsType(err, ErrorTypeMalformedRecord)
}

// IsInvalidWeights reports whether err is an invalid weights error
func IsInvalidWeights(err error) bool {
	return IsType(err, ErrorTypeInvalidWeights)
}
