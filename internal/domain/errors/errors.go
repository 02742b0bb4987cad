// Package errors defines the application error model surfaced to operators.
package errors

import (
	"net/http"

	"github.com/tkndbj/nar24admin-sub002/internal/errors"
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
	// Review workflow errors
	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"Submission not found; it may already have been processed",
		"",
	)

	ErrAlreadyProcessed = NewBaseError(
		http.StatusConflict,
		"ALREADY_PROCESSED",
		"This submission has already been reviewed",
		"",
	)

	ErrUnknownQueue = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_QUEUE",
		"No such review queue",
		"",
	)

	// Document store write errors, classified by the store's error code
	ErrStorePermissionDenied = NewBaseError(
		http.StatusForbidden,
		"STORE_PERMISSION_DENIED",
		"The document store rejected the write; check admin permissions",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"The document store is unreachable; try again",
		"",
	)

	ErrWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"WRITE_FAILED",
		"Writing the decision failed; nothing was changed",
		"",
	)

	// Broadcast errors
	ErrInvalidBroadcast = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BROADCAST",
		"A broadcast may reference a product or a shop, not both",
		"",
	)

	// Listing errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	// Support ticket errors
	ErrTicketNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"Support ticket not found",
		"",
	)

	// Account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrAccountDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"ACCOUNT_DELETE_FAILED",
		"Deleting the account failed",
		"",
	)

	// Upload errors
	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Uploading the asset failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Admin access required",
		"",
	)
)
