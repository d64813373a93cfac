package pincode

import (
	"fmt"
	"net/http"
)

// ============================================================================
// PIN LOOKUP ERROR CODES
// ============================================================================
// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.

const (
	codeInvalid     = "invalid"
	codeInternal    = "internal"
	codeNotFound    = "not_found"
	codeUnavailable = "unavailable"
)

// LookupError represents a PIN-lookup error with a code and message.
// It implements the domain.Error interface pattern for consistent HTTP
// status mapping.
type LookupError struct {
	Code    string
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *LookupError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the user-facing message.
func (e *LookupError) ErrorMessage() string {
	return e.Message
}

// newLookupError creates a new lookup error.
func newLookupError(code, message string) *LookupError {
	return &LookupError{Code: code, Message: message}
}

// ============================================================================
// PIN LOOKUP DOMAIN ERRORS
// ============================================================================

var (
	// ErrAllProvidersUnavailable is returned when every provider in the
	// chain failed or returned an unrecognized response.
	ErrAllProvidersUnavailable = newLookupError(codeUnavailable, "All PIN code APIs are unavailable")

	// ErrMissingBaseURL is returned when a provider is constructed without a URL.
	ErrMissingBaseURL = newLookupError(codeInternal, "PIN code provider base URL is required")

	// ErrNoProviders is returned when a chain is constructed with no providers.
	ErrNoProviders = newLookupError(codeInternal, "At least one PIN code provider is required")

	// ErrInvalidPin is returned when a lookup is attempted with a malformed PIN.
	ErrInvalidPin = newLookupError(codeInvalid, "PIN code must be exactly 6 digits")
)

// ErrUnexpectedStatus creates an error for a non-OK provider response.
// A 404 is distinguished from outage-shaped statuses so callers can tell
// "this provider has no record" apart from "this provider is down".
func ErrUnexpectedStatus(provider string, status int) error {
	code := codeUnavailable
	if status == http.StatusNotFound {
		code = codeNotFound
	}
	return &LookupError{
		Code:    code,
		Message: fmt.Sprintf("Provider %s returned HTTP %d", provider, status),
	}
}
