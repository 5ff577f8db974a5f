// Package errors provides a lightweight structured error type (BenchError)
// for category-based classification of algorithm, harness and CLI failures.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a BenchError for classification
type ErrorCategory string

const (
	// Precondition failures raised by the algorithms (null, empty, oversized input)
	CategoryInvalidArgument ErrorCategory = "invalid_argument"
	// Malformed user-supplied text (menu choices, integers, ranges)
	CategoryInput ErrorCategory = "input"

	CategoryConfig     ErrorCategory = "config"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryStore      ErrorCategory = "store"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// BenchError is a structured error with category, severity and context
type BenchError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for BenchError
type ContextFields map[string]any

// Error implements the error interface
func (e *BenchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *BenchError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *BenchError) WithContext(key string, value any) *BenchError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BenchError
func New(category ErrorCategory, severity ErrorSeverity, message string) *BenchError {
	return &BenchError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new BenchError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *BenchError {
	return &BenchError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the first BenchError in err's chain.
func As(err error) (*BenchError, bool) {
	var be *BenchError
	if stdErrors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if be, ok := As(err); ok {
		return be.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a BenchError
func GetCategory(err error) ErrorCategory {
	if be, ok := As(err); ok {
		return be.Category
	}
	return CategoryInternal
}

// Message returns the bare message of a BenchError without category or cause
// decoration. Other errors are returned as err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	if be, ok := As(err); ok {
		return be.Message
	}
	return err.Error()
}
