package domain

import "errors"

// Sentinel errors recognized by the HTTP error handler. Services return
// these (possibly wrapped); handlers never build status codes themselves.
var (
	// ErrInvalidCredentials is deliberately generic: the login path must not
	// reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("service request not found")
	ErrMessageNotFound = errors.New("contact message not found")
	ErrSessionNotFound = errors.New("session not found")

	ErrAuthRequired = errors.New("authentication required")
	ErrAdminOnly    = errors.New("admin access required")
)

// ValidationError carries a per-field error map alongside the summary
// message. It renders as HTTP 400 with {"message": ..., "errors": {...}}.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given summary.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}
