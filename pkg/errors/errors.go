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

	// Structural scan errors. These are recovered locally by the scanner.
	ErrUnbalancedDelimiter ErrorCode = "UNBALANCED_DELIMITER"
	ErrMissingClosingToken ErrorCode = "MISSING_CLOSING_TOKEN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrDirNotFound  ErrorCode = "DIR_NOT_FOUND"
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrWatch        ErrorCode = "WATCH"
)

// HublfixError represents a structured error with code and details
type HublfixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HublfixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HublfixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HublfixError) Is(target error) bool {
	var targetErr *HublfixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HublfixError with the given code and message
func New(code ErrorCode, message string) *HublfixError {
	return &HublfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HublfixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HublfixError {
	return &HublfixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HublfixError
func Wrap(err error, code ErrorCode, message string) *HublfixError {
	if err == nil {
		return nil
	}
	return &HublfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HublfixError {
	if err == nil {
		return nil
	}
	return &HublfixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HublfixError) WithDetail(key string, value interface{}) *HublfixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HublfixError) WithDetails(details map[string]interface{}) *HublfixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hErr *HublfixError
	if errors.As(err, &hErr) {
		return hErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HublfixError
func GetErrorCode(err error) ErrorCode {
	var hErr *HublfixError
	if errors.As(err, &hErr) {
		return hErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HublfixError
func GetErrorDetails(err error) map[string]interface{} {
	var hErr *HublfixError
	if errors.As(err, &hErr) {
		return hErr.Details
	}
	return nil
}

// Offset returns the "offset" detail of a structured error, or -1 when the
// error carries none.
func Offset(err error) int {
	details := GetErrorDetails(err)
	if details == nil {
		return -1
	}
	if v, ok := details["offset"].(int); ok {
		return v
	}
	return -1
}
