package errors

import (
	"fmt"
	"net/http"

	"bazaar/internal/errors"
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
	// ErrNotFound indicates the entity is absent at the owning backend.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// ErrBackendUnavailable covers transport failures, timeouts and
	// unexpected statuses from a backend service.
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"backend service unavailable",
		"",
	)

	// ErrUnauthorized covers missing, invalid, expired or malformed tokens.
	// The message is identical for every cause so the client cannot tell
	// an expired token from a forged one.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid or expired token",
		"",
	)

	// ErrForbidden indicates a valid token with insufficient role or ownership.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	// ErrConflict covers ownership mismatches and self-purchase attempts.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	// ErrValidationFailed indicates malformed client input.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request input",
		"",
	)

	// ErrWalletProvisioningFailed indicates the wallet get-or-create race
	// recovery was exhausted; the backend is in an inconsistent state.
	ErrWalletProvisioningFailed = NewBaseError(
		http.StatusInternalServerError,
		"WALLET_PROVISIONING_FAILED",
		"wallet provisioning failed",
		"",
	)

	// ErrInternalError is the catch-all for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// BackendError represents a failed call to a backend service, implementing
// the AppError interface. It keeps the upstream status and body so operators
// can see what the backend actually said.
type BackendError struct {
	service  string
	upstream int
	body     string
	err      error
}

// NewBackendError creates a backend call error. upstream is zero when the
// request never produced a response (connection failure, timeout).
func NewBackendError(service string, upstream int, body string, err error) *BackendError {
	return &BackendError{
		service:  service,
		upstream: upstream,
		body:     body,
		err:      err,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s service call failed: %v", e.service, e.err)
	}

	return fmt.Sprintf("%s service returned status %d", e.service, e.upstream)
}

// Unwrap exposes the transport error, if any.
func (e *BackendError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return fmt.Sprintf("%s service unavailable", e.service)
}

// Details returns the upstream status and body for debuggability.
func (e *BackendError) Details() string {
	if e.upstream == 0 {
		return e.Error()
	}

	return fmt.Sprintf("upstream status %d: %s", e.upstream, e.body)
}

// UpstreamStatus returns the status code the backend answered with, or zero.
func (e *BackendError) UpstreamStatus() int {
	return e.upstream
}
