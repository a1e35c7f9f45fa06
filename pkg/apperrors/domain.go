package apperrors

import (
	"net/http"
)

// Predefined errors and factories for the portal's business rules.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidStatusTransition rejects a lifecycle move the state machine
// does not permit.
func ErrInvalidStatusTransition(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Authorization ---

// ErrInsufficientPermissions - the caller's role lacks the required permission.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Forbidden: insufficient permissions",
	http.StatusForbidden,
)

// ErrOtherManufacturer - a customer referenced a manufacturer other than
// their own. Tenant isolation, always 403.
var ErrOtherManufacturer = New(
	CodeForbidden,
	"tenant",
	"Forbidden: cannot access data of another manufacturer",
	http.StatusForbidden,
)

// ErrNoManufacturer - a customer account has no manufacturer association.
// A data problem on the caller's account rather than a permission problem,
// hence 400.
var ErrNoManufacturer = New(
	CodeInvalidOperation,
	"tenant",
	"Customer has no associated manufacturer",
	http.StatusBadRequest,
)

// --- Uploads & files ---

// ErrFileTooLarge - upload exceeds the configured maximum (413).
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME type is not on the allow-list (415).
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Lifecycle ---

// ErrProductArchived - the product is discontinued; archival is one-way.
var ErrProductArchived = New(
	CodeInvalidStatus,
	"product",
	"Product is discontinued and can no longer be modified",
	http.StatusBadRequest,
)

// ErrArchiveViaUpdate - discontinued is only reachable through the archive
// operation, never through a generic update.
var ErrArchiveViaUpdate = New(
	CodeInvalidStatus,
	"product",
	"Status 'discontinued' can only be set via the archive operation",
	http.StatusBadRequest,
)

// ErrSubmissionRegistered - the submission already carries a registration.
var ErrSubmissionRegistered = New(
	CodeInvalidStatus,
	"submission",
	"Submission is already registered",
	http.StatusBadRequest,
)
