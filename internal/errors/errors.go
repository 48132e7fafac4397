// Package errors defines the typed error taxonomy shared by the tidy
// dataset pipeline. Every failure in the core is one of these types and
// propagates unmodified to the CLI, which surfaces it and exits non-zero.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParse            ErrorType = "PARSE"
	ErrTypeSchemaMismatch   ErrorType = "SCHEMA_MISMATCH"
	ErrTypeRowCountMismatch ErrorType = "ROW_COUNT_MISMATCH"
	ErrTypeUnknownActivity  ErrorType = "UNKNOWN_ACTIVITY_CODE"
	ErrTypeStorage          ErrorType = "STORAGE"
	ErrTypeConfig           ErrorType = "CONFIG"
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

// Helper functions for the pipeline error types

// NewParseError reports a malformed line in an input file.
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParse, message, cause)
}

// NewSchemaMismatchError reports a column-count or column-name disagreement,
// either between the feature catalog and a data row or between partitions.
func NewSchemaMismatchError(message string) *AppError {
	return NewAppError(ErrTypeSchemaMismatch, message, nil)
}

// NewRowCountMismatchError reports that the three files of one partition
// disagree on row count.
func NewRowCountMismatchError(message string) *AppError {
	return NewAppError(ErrTypeRowCountMismatch, message, nil)
}

// NewUnknownActivityError reports an activity code outside the fixed 1-6 map.
func NewUnknownActivityError(code int) *AppError {
	return NewAppError(ErrTypeUnknownActivity, fmt.Sprintf("activity code %d has no label", code), nil).
		WithContext("code", code)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// IsParseError reports whether err is a PARSE error.
func IsParseError(err error) bool { return IsType(err, ErrTypeParse) }

// IsSchemaMismatch reports whether err is a SCHEMA_MISMATCH error.
func IsSchemaMismatch(err error) bool { return IsType(err, ErrTypeSchemaMismatch) }

// IsRowCountMismatch reports whether err is a ROW_COUNT_MISMATCH error.
func IsRowCountMismatch(err error) bool { return IsType(err, ErrTypeRowCountMismatch) }

// IsUnknownActivity reports whether err is an UNKNOWN_ACTIVITY_CODE error.
func IsUnknownActivity(err error) bool { return IsType(err, ErrTypeUnknownActivity) }
