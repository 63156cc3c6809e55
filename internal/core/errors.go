package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the services. The api layer maps them to HTTP statuses.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbiddenAccess = errors.New("user does not own this save")
	ErrUserNotFound    = errors.New("user not found")
	ErrSaveNotFound    = errors.New("save not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrPostNotFound    = errors.New("post not found")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// UpstreamError is a service-level failure caused by an external provider.
// Message is safe to show to the client. StatusCode is the status to answer
// with, or 0 for a plain internal error.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.Err }

// ProviderError is returned by generative-model adapters when the provider
// rejects a call. StatusCode is 0 when no HTTP response was received.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("provider status %d: %s", e.StatusCode, e.Message)
}

// providerDetails extracts the status and message of a provider failure.
func providerDetails(err error) (int, string) {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode, perr.Message
	}
	return 0, err.Error()
}

// NewUpstreamError wraps a provider failure as "{prefix}: {provider message}",
// keeping the provider's status.
func NewUpstreamError(prefix string, err error) *UpstreamError {
	status, msg := providerDetails(err)
	return &UpstreamError{StatusCode: status, Message: prefix + ": " + msg, Err: err}
}

// ProviderStatus returns the HTTP status carried by a provider failure, or 0.
func ProviderStatus(err error) int {
	status, _ := providerDetails(err)
	return status
}
