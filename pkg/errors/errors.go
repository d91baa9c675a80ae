package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrSchemaViolation     ErrorCode = "SCHEMA_VIOLATION"
	ErrVersionIncompatible ErrorCode = "VERSION_INCOMPATIBLE"
	ErrInvalidEntry        ErrorCode = "INVALID_ENTRY"

	// Directory errors
	ErrUnavailableDirectory ErrorCode = "UNAVAILABLE_DIRECTORY"
	ErrExternalResolution   ErrorCode = "EXTERNAL_RESOLUTION"
	ErrInsecureRuntimeDir   ErrorCode = "INSECURE_RUNTIME_DIR"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// PlacerError represents a structured error with code and details
type PlacerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PlacerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PlacerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PlacerError) Is(target error) bool {
	var targetErr *PlacerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PlacerError with the given code and message
func New(code ErrorCode, message string) *PlacerError {
	return &PlacerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PlacerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PlacerError {
	return &PlacerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PlacerError
func Wrap(err error, code ErrorCode, message string) *PlacerError {
	if err == nil {
		return nil
	}
	return &PlacerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PlacerError {
	if err == nil {
		return nil
	}
	return &PlacerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PlacerError) WithDetail(key string, value interface{}) *PlacerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PlacerError) WithDetails(details map[string]interface{}) *PlacerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code.
// Wrapped PlacerErrors are inspected too, so an outer context error
// still reports the code of the failure that caused it.
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var placerErr *PlacerError
		if !errors.As(err, &placerErr) {
			return false
		}
		if placerErr.Code == code {
			return true
		}
		err = placerErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PlacerError
func GetErrorCode(err error) ErrorCode {
	var placerErr *PlacerError
	if errors.As(err, &placerErr) {
		return placerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PlacerError
func GetErrorDetails(err error) map[string]interface{} {
	var placerErr *PlacerError
	if errors.As(err, &placerErr) {
		return placerErr.Details
	}
	return nil
}
