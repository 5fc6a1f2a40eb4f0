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

	// Target errors: each maps to one way a removal attempt can end
	// short of success. NotPresent is expected and never fatal.
	ErrNotPresent   ErrorCode = "NOT_PRESENT"
	ErrAccessDenied ErrorCode = "ACCESS_DENIED"
	ErrResourceBusy ErrorCode = "RESOURCE_BUSY"

	// Hive errors
	ErrHiveAttach ErrorCode = "HIVE_ATTACH"
	ErrHiveDetach ErrorCode = "HIVE_DETACH"

	// Package errors
	ErrInvocation ErrorCode = "INVOCATION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Structural errors: the only kind allowed to abort a run
	ErrProfilesRoot ErrorCode = "PROFILES_ROOT"
	ErrUnsupported  ErrorCode = "UNSUPPORTED"
)

// ScourError represents a structured error with code and details
type ScourError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScourError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScourError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScourError) Is(target error) bool {
	var targetErr *ScourError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScourError with the given code and message
func New(code ErrorCode, message string) *ScourError {
	return &ScourError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScourError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScourError {
	return &ScourError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScourError
func Wrap(err error, code ErrorCode, message string) *ScourError {
	if err == nil {
		return nil
	}
	return &ScourError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScourError {
	if err == nil {
		return nil
	}
	return &ScourError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScourError) WithDetail(key string, value interface{}) *ScourError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scourErr *ScourError
	if errors.As(err, &scourErr) {
		return scourErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScourError
func GetErrorCode(err error) ErrorCode {
	var scourErr *ScourError
	if errors.As(err, &scourErr) {
		return scourErr.Code
	}
	return ErrUnknown
}
