package domain

import "errors"

// Authentication and authorization errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrExpiredCode        = errors.New("verification code expired")
	ErrOffline            = errors.New("network unavailable")
	ErrAccountLocked      = errors.New("account locked")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidSession  = errors.New("invalid session")

	// Authorization errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInsufficientRole = errors.New("insufficient role")

	// Resolution errors
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrOrganizationNotFound = errors.New("organization not found")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	// Rate limiting errors
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// General errors
	ErrInternal = errors.New("internal error")
)

// ErrorKind classifies failures from the remote backend so callers can
// assert on kind rather than on caught errors. Authorization denial is a
// normal false outcome, never surfaced as an error.
type ErrorKind string

const (
	ErrorKindTransport ErrorKind = "transport"
	ErrorKindDenied    ErrorKind = "denied"
	ErrorKindUnknown   ErrorKind = "unknown"
)

// BackendError wraps a remote-call failure with its classification
type BackendError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// NewBackendError creates a classified backend error
func NewBackendError(kind ErrorKind, message string, cause error) *BackendError {
	return &BackendError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// KindOf extracts the classification from an error chain.
// Unwrapped errors are Unknown.
func KindOf(err error) ErrorKind {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Kind
	}
	return ErrorKindUnknown
}
