package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrSource = "SOURCE" // a metric source could not be opened or parsed
	ErrDriver = "DRIVER" // a display bus operation failed
	ErrGPIO   = "GPIO"   // a line group could not be acquired
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// SourceUnavailable reports that the named metric source could not be read.
func SourceUnavailable(source string, cause error) *Error {
	return &Error{
		Code:       ErrSource,
		Message:    fmt.Sprintf("Can't read %s", source),
		Suggestion: "Check that procfs is mounted and readable",
		Cause:      cause,
	}
}

// DriverFault reports a failed display bus operation.
func DriverFault(op string, cause error) *Error {
	return &Error{
		Code:    ErrDriver,
		Message: fmt.Sprintf("LCD %s failed", op),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}
