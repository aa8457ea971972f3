package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System failures
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	CodeAssetStoreError  ErrorCode = "ASSET_STORE_UNAVAILABLE"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeOrphanedAsset    ErrorCode = "ORPHANED_ASSET"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)
