package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application-wide error type. Every error that crosses a
// service boundary is either an *AppError or gets wrapped into one at the
// handler level.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a fresh AppError.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// As re-exports errors.As so callers don't need both imports.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Is re-exports errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// ============================================================
// Generic factories
// ============================================================

// InternalError wraps an unexpected failure (500).
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// DatabaseError wraps a persistence failure (500).
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
}

// NewUnauthorizedError - no/invalid session (401).
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

// NewForbiddenError - authenticated but not allowed (403).
func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}

// NewNotFoundError - entity id does not resolve (404).
func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, "resource", message, http.StatusNotFound)
}

// NewBadRequestError - malformed input or business-rule violation (400).
func NewBadRequestError(message string) *AppError {
	return New(CodeInvalidOperation, "request", message, http.StatusBadRequest)
}

// NewConflictError - state conflict (409).
func NewConflictError(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ValidationError carries per-field messages (400).
func ValidationError(details interface{}) *AppError {
	e := New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest)
	return e.WithDetails(details)
}
