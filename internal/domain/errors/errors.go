// Package errors defines the application error taxonomy: business errors
// that carry an HTTP status code, a stable error code and a user-facing
// message.
package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"vde/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"Application not found",
		"",
	)

	ErrApplicationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"APPLICATION_CREATION_FAILED",
		"Failed to create application. Please try again.",
		"",
	)

	ErrRegistrationNumberConflict = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_NUMBER_CONFLICT",
		"A company with this registration number is already registered",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_REFERENCE",
		"A referenced record does not exist",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unknown application status",
		"",
	)

	ErrInvalidSystemType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SYSTEM_TYPE",
		"Unknown system type",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ValidationError rejects a submission before anything is persisted. It
// carries one message per offending field path, e.g.
// "subscriber.address.street".
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from a field-path → message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewFieldValidationError creates a validation error for a single field path.
func NewFieldValidationError(path, message string) *ValidationError {
	return &ValidationError{fields: map[string]string{path: message}}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.fields))
	for path := range e.fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns the offending field paths.
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns the field-path → message map.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}
