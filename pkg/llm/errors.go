package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureKind says why a generation call failed. Callers treat every kind the
// same way; the kind exists so logs and tests can tell them apart.
type FailureKind string

const (
	FailureAuth    FailureKind = "auth"
	FailureQuota   FailureKind = "quota"
	FailureNetwork FailureKind = "network"
	FailureUnknown FailureKind = "unknown"
)

// ProviderError wraps a backend error with its classification.
type ProviderError struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failure (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// KindForStatus maps an HTTP status code onto a failure kind.
func KindForStatus(code int) FailureKind {
	switch {
	case code == 401 || code == 403:
		return FailureAuth
	case code == 429:
		return FailureQuota
	case code >= 500:
		return FailureNetwork
	default:
		return FailureUnknown
	}
}

// Classify returns the failure kind of err. Errors that are not a
// ProviderError are classified by their shape.
func Classify(err error) FailureKind {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureNetwork
	}
	return FailureUnknown
}
