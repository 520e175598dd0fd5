package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sourcing domain.
var (
	// ErrInvalidRequest indicates the search parameters or a quote request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSearchFailed indicates the search collaborator call or its parsing failed.
	ErrSearchFailed = errors.New("search failed")

	// ErrProviderTimeout indicates the collaborator did not answer in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates the collaborator could not be reached or is not configured.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMalformedResponse indicates the collaborator reply could not be parsed.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrOfferNotFound indicates the referenced offer is not in the current results.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrNotAFlight indicates a flight-only operation was given another category.
	ErrNotAFlight = errors.New("offer is not a flight")
)

// ProviderError wraps an error returned by a search provider.
type ProviderError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError for the given provider.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewProviderTimeoutError creates a ProviderError wrapping ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a ProviderError wrapping ErrProviderUnavailable.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewProviderError(provider, ErrProviderUnavailable)
}

// NewMalformedResponseError creates a ProviderError wrapping ErrMalformedResponse with a cause.
func NewMalformedResponseError(provider string, cause error) *ProviderError {
	return NewProviderError(provider, fmt.Errorf("%w: %v", ErrMalformedResponse, cause))
}

// ValidationError is a single field-level validation failure.
// It matches ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsOfferNotFound reports whether err is an unknown-offer failure.
func IsOfferNotFound(err error) bool {
	return errors.Is(err, ErrOfferNotFound)
}
