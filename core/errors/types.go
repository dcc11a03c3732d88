// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a request validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ConfigurationError represents a missing or invalid deployment configuration
type ConfigurationError struct {
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError represents a failure of a mandatory external dependency.
// Detail carries the raw upstream response body for diagnostics.
type UpstreamError struct {
	Stage      string
	StatusCode int
	Detail     string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed with status %d", e.Stage, e.StatusCode)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
