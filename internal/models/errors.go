package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is the only failure callers of the product usecase observe:
// genuine absence and recoverable upstream failures are both normalized to
// it, with the underlying cause logged at the point of conversion.
var ErrNotFound = errors.New("product not found")

// ConfigError reports every missing commerce platform setting at once so a
// misconfigured deployment fails with the full list on first use.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing required commercetools configuration: " + strings.Join(e.Missing, ", ")
}

// AuthError indicates the client-credentials grant was rejected or the auth
// endpoint was unreachable.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("commercetools token request failed: %v", e.Err)
	}
	return fmt.Sprintf("commercetools token request failed with status %d", e.Status)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
