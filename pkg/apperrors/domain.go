package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the domain layer. Repositories and
// services return these; handlers convert them into HTTP responses.

// ErrNotFound converts a store-level "missing document" error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness conflict into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrStoreUnavailable wraps a document store transport failure. The caller
// sees a generic notice and may manually re-trigger the operation.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap(err, CodeStoreUnavailable, "store", "Storage backend unavailable", http.StatusServiceUnavailable)
}

// ErrAssetStore wraps a blob store failure during upload or delete.
func ErrAssetStore(err error) *AppError {
	return Wrap(err, CodeAssetStoreError, "assets", "Asset storage unavailable", http.StatusServiceUnavailable)
}

// ErrOrphanedAsset reports that a document was removed but one or more of its
// referenced assets could not be reclaimed. The inconsistency is accepted and
// logged, never rolled back: the store offers no cross-resource transaction.
func ErrOrphanedAsset(err error) *AppError {
	return Wrap(err, CodeOrphanedAsset, "assets", "Record removed but some assets were not reclaimed", http.StatusOK)
}

// ErrInvalidStatus reports an enum value rejected at the repository boundary.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or malformed token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Session expired, please sign in again",
	http.StatusUnauthorized,
)
