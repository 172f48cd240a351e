// Package errors provides custom error types for the cost manager API.
// All service and store errors should use AppError so handlers can map
// them onto consistent HTTP responses.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation errors. Caller-correctable input problems.
var (
	ErrValidation    = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid request", StatusCode: http.StatusBadRequest}
	ErrMissingFields = &AppError{Code: "VALIDATION_ERROR", Message: "Missing required fields", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrUserNotFound  = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUser = &AppError{Code: "DUPLICATE_USER", Message: "A user with this id already exists", StatusCode: http.StatusConflict}
)

// Persistence and fallback errors. Opaque to callers; the message is
// forwarded for diagnostics only, never for control flow.
var (
	ErrStore          = &AppError{Code: "STORE_ERROR", Message: "Server error", StatusCode: http.StatusInternalServerError}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Server error", StatusCode: http.StatusInternalServerError}
)
