package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Invoice errors
	ErrInvoiceNotFound = errors.New("invoice not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
