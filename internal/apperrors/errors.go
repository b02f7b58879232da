package apperrors

import (
	"errors"
	"fmt"
)

// ConfigError indicates missing or invalid startup configuration.
// It is the only fatal error in the system: the server must not start.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// APIError indicates a non-2xx response or an unreachable external service.
// Recoverable: shown inline, the user may retry.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s API returned status %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API unreachable: %s", e.Service, e.Message)
}

// AuthError indicates rejected credentials (401/403) from an external service.
type AuthError struct {
	Service    string
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s API rejected credentials (status %d)", e.Service, e.StatusCode)
}

// TimeoutError indicates the underlying HTTP client timed out.
type TimeoutError struct {
	Service string
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s API request timed out: %v", e.Service, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ParseError indicates a response payload with an unexpected shape.
// Policy: surface it rather than substitute defaults; silently showing
// wrong astronomical data is worse than an explicit failure.
type ParseError struct {
	Source string
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to parse %s response: missing or invalid field %q", e.Source, e.Field)
	}
	return fmt.Sprintf("failed to parse %s response: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoResultsError indicates an empty candidate list from the autocomplete
// or geocoding API. The caller should prompt the user to refine input.
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no locations found for %q", e.Query)
}

// IsRecoverable reports whether an error should be shown inline and the
// interaction allowed to continue. Everything but ConfigError is recoverable.
func IsRecoverable(err error) bool {
	var ce *ConfigError
	return !errors.As(err, &ce)
}
