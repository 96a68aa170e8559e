package llm

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrBudgetExceeded means the cost governor reported the user's daily
	// budget is exhausted. No vendor request was issued.
	ErrBudgetExceeded = errors.New("llm: daily token budget exceeded")

	// ErrCircuitOpen means the circuit breaker is open. No vendor request
	// was issued.
	ErrCircuitOpen = errors.New("llm: circuit breaker open")

	// ErrTransient wraps vendor timeouts, 5xx responses, and rate limits.
	// Surfaced only after retries are exhausted.
	ErrTransient = errors.New("llm: transient vendor error")
)

// transientError tags a vendor error as retryable.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return ErrTransient.Error() + ": " + e.err.Error() }
func (e *transientError) Unwrap() error { return ErrTransient }

// markTransient wraps err so IsTransient reports true.
func markTransient(err error) error {
	return &transientError{err: err}
}

// IsTransient reports whether the error is retryable under the gateway's
// retry policy: explicit transient marks, timeouts, and temporary network
// failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
