// Package param declares and validates startup configuration parameters.
package param

import (
	"errors"
	"fmt"
)

// ParameterError reports a required parameter that was not supplied.
type ParameterError struct {
	Key string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("Required parameter \"%s\" not found.", e.Key)
}

// ValidationError reports a supplied value that violates a rule.
// Message is the user-facing diagnostic and is returned verbatim by Error.
type ValidationError struct {
	Key     string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a ValidationError for key with a formatted message.
func NewValidationError(key, format string, args ...any) *ValidationError {
	return &ValidationError{
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	return &ValidationError{
		Key:     e.Key,
		Message: e.Message,
		Cause:   cause,
	}
}

// IsParameterError reports whether err is, or wraps, a ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorKey extracts the parameter key from err if it carries one.
func ErrorKey(err error) string {
	var pe *ParameterError
	if errors.As(err, &pe) {
		return pe.Key
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Key
	}
	return ""
}
