package llm

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(failures, successes int, cooldown time.Duration) *Breaker {
	return NewBreaker(failures, successes, cooldown, slog.Default())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := newTestBreaker(3, 1, time.Minute)

	assert.True(t, b.Allow())
	b.MarkFailure()
	b.MarkFailure()
	assert.True(t, b.Allow(), "below threshold should stay closed")

	b.MarkFailure()
	assert.False(t, b.Allow(), "threshold reached should open")
	assert.Equal(t, "open", b.State())
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := newTestBreaker(3, 1, time.Minute)

	b.MarkFailure()
	b.MarkFailure()
	b.MarkSuccess()
	b.MarkFailure()
	b.MarkFailure()

	assert.True(t, b.Allow(), "non-consecutive failures should not open")
	assert.Equal(t, "closed", b.State())
}

func TestBreaker_HalfOpenAfterCooldown(t *testing.T) {
	b := newTestBreaker(1, 2, 10*time.Millisecond)

	b.MarkFailure()
	assert.False(t, b.Allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow(), "cooldown elapsed should admit a probe")
	assert.Equal(t, "half_open", b.State())

	// One success is not enough with successThreshold=2.
	b.MarkSuccess()
	assert.Equal(t, "half_open", b.State())
	b.MarkSuccess()
	assert.Equal(t, "closed", b.State())
}

func TestBreaker_FailureDuringProbeReopens(t *testing.T) {
	b := newTestBreaker(1, 2, 10*time.Millisecond)

	b.MarkFailure()
	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow())

	b.MarkFailure()
	assert.Equal(t, "open", b.State())
	assert.False(t, b.Allow())
}
