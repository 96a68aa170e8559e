package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
)

// maxRetryAttempts is the hard ceiling on vendor attempts per call,
// regardless of configuration.
const maxRetryAttempts = 3

// Governor is the cost-governor surface the gateway consults around every
// call. Implemented by budget.Governor.
type Governor interface {
	CheckBudget(ctx context.Context, userID string) (models.BudgetStatus, error)
	ThinkingBudget(status models.BudgetStatus, effort models.Effort) (models.Effort, int)
	RecordUsage(ctx context.Context, userID string, usage models.Usage)
}

// Gateway is the single choke point for LLM calls: budget check first,
// circuit breaker second, then the vendor request with bounded retries.
// Usage is recorded best-effort after every completed call.
type Gateway struct {
	vendor   Vendor
	governor Governor
	breaker  *Breaker
	cfg      *config.GatewayConfig
	logger   *slog.Logger
}

// NewGateway creates a gateway around the vendor.
func NewGateway(vendor Vendor, governor Governor, cfg *config.GatewayConfig, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		vendor:   vendor,
		governor: governor,
		breaker:  NewBreaker(cfg.BreakerFailureThreshold, cfg.BreakerSuccessThreshold, cfg.BreakerCooldown, logger),
		cfg:      cfg,
		logger:   logger,
	}
}

// BreakerState exposes the circuit breaker position for health reporting.
func (g *Gateway) BreakerState() string {
	return g.breaker.State()
}

// Generate performs a plain completion without extended thinking.
func (g *Gateway) Generate(ctx context.Context, call *Call) (*Response, error) {
	if _, err := g.checkBudget(ctx, call.UserID); err != nil {
		return nil, err
	}
	return g.complete(ctx, call, 0, g.cfg.GenerateTimeout)
}

// GenerateWithThinking performs a completion with extended thinking sized
// by effort. The governor may downgrade effort near the soft limit; the
// actual thinking budget can therefore be smaller than requested, or zero.
func (g *Gateway) GenerateWithThinking(ctx context.Context, call *Call, effort models.Effort) (*Response, error) {
	status, err := g.checkBudget(ctx, call.UserID)
	if err != nil {
		return nil, err
	}

	effective, thinkingBudget := effort, effort.ThinkingTokens()
	if call.UserID != "" {
		effective, thinkingBudget = g.governor.ThinkingBudget(status, effort)
	}
	if effective != effort {
		g.logger.Info("effort downgraded near budget limit",
			slog.String("user_id", call.UserID),
			slog.String("requested", string(effort)),
			slog.String("effective", string(effective)))
	}

	if thinkingBudget > 0 {
		// Temperature and extended thinking are mutually exclusive.
		call.Temperature = nil
		return g.complete(ctx, call, thinkingBudget, g.cfg.ThinkingTimeout)
	}
	return g.complete(ctx, call, 0, g.cfg.GenerateTimeout)
}

// Stream performs a streaming completion. Streams are never retried: a
// consumer may have already rendered partial output, so failures surface
// as an error chunk instead.
func (g *Gateway) Stream(ctx context.Context, call *Call) (<-chan StreamChunk, error) {
	if _, err := g.checkBudget(ctx, call.UserID); err != nil {
		return nil, err
	}
	if !g.breaker.Allow() {
		return nil, ErrCircuitOpen
	}

	inner, err := g.vendor.Stream(ctx, call)
	if err != nil {
		g.breaker.MarkFailure()
		return nil, err
	}

	out := make(chan StreamChunk)
	go func() {
		defer close(out)
		failed := false
		for chunk := range inner {
			if chunk.Err != nil {
				failed = true
			}
			if chunk.Usage != nil {
				g.governor.RecordUsage(context.WithoutCancel(ctx), call.UserID, *chunk.Usage)
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if failed {
			g.breaker.MarkFailure()
		} else {
			g.breaker.MarkSuccess()
		}
	}()
	return out, nil
}

// complete runs the retry loop around vendor.Complete. Transient failures
// (timeouts, 5xx, rate limits) are retried with exponential backoff up to
// the attempt cap; other failures return immediately.
func (g *Gateway) complete(ctx context.Context, call *Call, thinkingBudget int, timeout time.Duration) (*Response, error) {
	attempts := g.cfg.MaxAttempts
	if attempts <= 0 || attempts > maxRetryAttempts {
		attempts = maxRetryAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if !g.breaker.Allow() {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, ErrCircuitOpen
		}

		resp, err := g.attemptComplete(ctx, call, thinkingBudget, timeout)
		if err == nil {
			g.breaker.MarkSuccess()
			g.governor.RecordUsage(context.WithoutCancel(ctx), call.UserID, resp.Usage)
			return resp, nil
		}

		g.breaker.MarkFailure()
		lastErr = err
		if !IsTransient(err) || ctx.Err() != nil {
			return nil, err
		}

		if attempt < attempts {
			delay := g.cfg.RetryBaseDelay << (attempt - 1)
			g.logger.Warn("LLM call failed, retrying",
				slog.String("user_id", call.UserID),
				slog.Int("attempt", attempt),
				slog.Duration("backoff", delay),
				slog.String("error", err.Error()))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (g *Gateway) attemptComplete(ctx context.Context, call *Call, thinkingBudget int, timeout time.Duration) (*Response, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return g.vendor.Complete(callCtx, call, thinkingBudget)
}

// checkBudget consults the governor. Calls without a user ID (internal
// system prompts) bypass enforcement.
func (g *Gateway) checkBudget(ctx context.Context, userID string) (models.BudgetStatus, error) {
	if userID == "" || g.governor == nil {
		return models.BudgetStatus{CanProceed: true}, nil
	}
	status, err := g.governor.CheckBudget(ctx, userID)
	if err != nil {
		// The governor itself fails open; an error here is unexpected but
		// still must not block the call.
		g.logger.Warn("budget check errored, allowing call",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return models.BudgetStatus{CanProceed: true}, nil
	}
	if !status.CanProceed {
		return status, ErrBudgetExceeded
	}
	return status, nil
}
