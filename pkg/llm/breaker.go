package llm

import (
	"log/slog"
	"sync"
	"time"
)

// breakerState is the circuit breaker state machine position.
type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case breakerClosed:
		return "closed"
	case breakerOpen:
		return "open"
	case breakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Breaker trips after consecutive vendor failures and rejects calls until a
// cooldown elapses. After the cooldown a limited number of probe calls are
// admitted; consecutive probe successes close the circuit again.
type Breaker struct {
	mu sync.Mutex

	failureThreshold int
	successThreshold int
	cooldown         time.Duration

	state     breakerState
	failures  int
	successes int
	openedAt  time.Time

	logger *slog.Logger
}

// NewBreaker creates a circuit breaker. Zero thresholds fall back to
// sensible defaults.
func NewBreaker(failureThreshold, successThreshold int, cooldown time.Duration, logger *slog.Logger) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if successThreshold <= 0 {
		successThreshold = 2
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Breaker{
		failureThreshold: failureThreshold,
		successThreshold: successThreshold,
		cooldown:         cooldown,
		state:            breakerClosed,
		logger:           logger,
	}
}

// Allow reports whether a call may proceed right now.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerClosed:
		return true
	case breakerOpen:
		if time.Since(b.openedAt) >= b.cooldown {
			b.transition(breakerHalfOpen)
			return true
		}
		return false
	case breakerHalfOpen:
		return true
	default:
		return false
	}
}

// MarkSuccess records a successful vendor call.
func (b *Breaker) MarkSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerClosed:
		b.failures = 0
	case breakerHalfOpen:
		b.successes++
		if b.successes >= b.successThreshold {
			b.transition(breakerClosed)
		}
	}
}

// MarkFailure records a failed vendor call.
func (b *Breaker) MarkFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerClosed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.transition(breakerOpen)
		}
	case breakerHalfOpen:
		// Any failure during probing reopens immediately.
		b.transition(breakerOpen)
	}
}

// State returns the current state name for health reporting.
func (b *Breaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.String()
}

// transition moves the state machine. Caller holds the lock.
func (b *Breaker) transition(to breakerState) {
	from := b.state
	b.state = to
	b.failures = 0
	b.successes = 0
	if to == breakerOpen {
		b.openedAt = time.Now()
	}
	b.logger.Warn("LLM circuit breaker state change",
		slog.String("from", from.String()),
		slog.String("to", to.String()))
}
