package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrNoProviderConfigured is returned when the fallback chain is empty
var ErrNoProviderConfigured = errors.New("no AI provider configured")

// ProviderError wraps a failure from one provider's SDK with the HTTP status
// the provider reported, so classification is uniform across providers.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// CredentialError reports an invalid credential for a specific provider. It
// aborts the whole fallback chain: a bad key is a misconfiguration the caller
// must fix, not something another provider can route around.
type CredentialError struct {
	Provider string
	Err      error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("invalid credential for provider %s: %v", e.Provider, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// AttemptRecord captures one failed provider attempt for diagnostics
type AttemptRecord struct {
	Provider   string `json:"provider"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
}

// AllProvidersFailedError is returned when every configured provider has been
// tried without success. Attempts are in priority order.
type AllProvidersFailedError struct {
	Attempts []AttemptRecord
}

func (e *AllProvidersFailedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %s", a.Provider, a.Message))
	}
	return "all AI providers failed: " + strings.Join(parts, "; ")
}

// isCredentialFailure reports whether an error indicates an invalid credential
func isCredentialFailure(err error) bool {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode == 401 || perr.StatusCode == 403
	}
	return false
}

// isRetryable reports whether an error suggests another provider might
// succeed: rate limiting, server-side unavailability, or network failure.
func isRetryable(err error) bool {
	var perr *ProviderError
	if errors.As(err, &perr) {
		if perr.StatusCode == 429 || perr.StatusCode == 408 || perr.StatusCode >= 500 {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host")
}
