package completion

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates the provider credential is missing. Detected
// before any network call is attempted.
var ErrNotConfigured = errors.New("completion provider not configured")

// ServiceError wraps a provider failure (network, auth, rate limit,
// malformed response) with a diagnostic string. The engine catches it at the
// pipeline boundary and converts it to a user-visible payload; it never
// propagates further and is never written to session memory.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
