// Package errors defines the application's typed failure taxonomy. Every
// service-layer failure is classified into exactly one of the errors declared
// here before it crosses the delivery boundary.
package errors

import (
	"net/http"

	"cardmatch/internal/errors"
)

// Category separates failures the caller may see from failures that indicate
// a defect in the system.
type Category string

const (
	// CategoryOperational marks expected failures (bad input, missing
	// resources, invalid credentials) whose message is safe to surface.
	CategoryOperational Category = "operational"

	// CategoryProgramming marks unexpected failures (driver faults, bugs).
	// Their detail is logged internally and never shown to the caller.
	CategoryProgramming Category = "programming"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int       // HTTP status code
	ErrorCode() string   // Business error code
	Message() string     // User-friendly error message
	Category() Category  // Operational or programming failure
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	category  Category
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string, category Category) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		category:  category,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithMessage returns a copy carrying a different user-facing message while
// keeping the code, status and category. The copy still matches the original
// via errors.Is.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		category:  e.category,
	}
}

// Is lets a re-messaged copy match its template, so callers can compare
// against the predefined errors regardless of message overrides.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Category returns whether the failure is operational or a programming defect.
func (e *BaseError) Category() Category {
	return e.category
}

// Predefined error types
var (
	// Input and validation errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid or missing input fields.",
		CategoryOperational,
	)

	ErrInvalidCreditScore = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDIT_SCORE",
		"Credit score must be between 300 and 850.",
		CategoryOperational,
	)

	// Credential lifecycle errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"User already exists with this email.",
		CategoryOperational,
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials.",
		CategoryOperational,
	)

	// Token errors; all surface as 401 at the boundary.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Not authorized.",
		CategoryOperational,
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Session token has expired.",
		CategoryOperational,
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Session token is malformed.",
		CategoryOperational,
	)

	ErrTokenSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_SIGNATURE_INVALID",
		"Session token signature is invalid.",
		CategoryOperational,
	)

	// Resource errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		CategoryOperational,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		CategoryOperational,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		CategoryProgramming,
	)
)

// DatabaseExecuteError represents a database execution error. It is always a
// programming-category failure: the underlying driver error is kept for
// logging but the caller only ever sees the generic message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

// Unwrap exposes the driver error for internal logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error."
}

// Category marks database faults as programming failures.
func (e *DatabaseExecuteError) Category() Category {
	return CategoryProgramming
}
