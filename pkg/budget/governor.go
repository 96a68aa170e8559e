// Package budget implements the cost governor: daily token budgets,
// graduated effort degradation, per-goal retry caps, and usage recording.
package budget

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

// UsageStore is the usage-tracking surface the governor reads and writes.
type UsageStore interface {
	GetDay(ctx context.Context, userID, day string) (models.DailyUsage, error)
	Increment(ctx context.Context, userID, day string, usage models.Usage, costCents int) error
}

// UserBudgets resolves per-user budget overrides. Zero values mean "use the
// configured default".
type UserBudgets interface {
	Budgets(ctx context.Context, userID string) (tokens, thinking int, err error)
}

// Governor enforces daily budgets before LLM calls and records usage after
// them. Budget reads that fail do not block calls: enforcement degrades
// open so a storage blip never silences the assistant.
type Governor struct {
	cfg    *config.CostGovernorConfig
	usage  UsageStore
	users  UserBudgets
	logger *slog.Logger

	mu      sync.Mutex
	retries map[string]int
}

// NewGovernor creates a cost governor. users may be nil, in which case the
// configured default budgets apply to everyone.
func NewGovernor(cfg *config.CostGovernorConfig, usage UsageStore, users UserBudgets, logger *slog.Logger) *Governor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Governor{
		cfg:     cfg,
		usage:   usage,
		users:   users,
		logger:  logger,
		retries: make(map[string]int),
	}
}

// CheckBudget evaluates the user's budget position for today.
//
// can_proceed requires used < budget, strictly: a user exactly at the
// budget is cut off. should_reduce_effort trips at utilization >= the soft
// fraction, so a user can exhaust the last stretch of budget only at
// reduced effort.
func (g *Governor) CheckBudget(ctx context.Context, userID string) (models.BudgetStatus, error) {
	if !g.cfg.Enabled {
		return models.BudgetStatus{
			CanProceed:              true,
			TokensRemaining:         g.cfg.DailyTokenBudget,
			ThinkingTokensRemaining: g.cfg.DailyThinkingBudget,
		}, nil
	}

	tokenBudget, thinkingBudget := g.budgetsFor(ctx, userID)

	day, err := g.usage.GetDay(ctx, userID, services.Today())
	if err != nil {
		// Fail open: a usage read failure must not block the call.
		g.logger.Warn("budget check failed, allowing call",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return models.BudgetStatus{
			CanProceed:              true,
			TokensRemaining:         tokenBudget,
			ThinkingTokensRemaining: thinkingBudget,
		}, nil
	}

	used := day.TotalTokens()
	utilization := 0.0
	if tokenBudget > 0 {
		utilization = float64(used) / float64(tokenBudget)
	}

	status := models.BudgetStatus{
		CanProceed:              used < tokenBudget,
		ShouldReduceEffort:      utilization >= g.cfg.SoftLimitFraction,
		TokensRemaining:         max(0, tokenBudget-used),
		ThinkingTokensRemaining: max(0, thinkingBudget-day.ThinkingTokens),
		UtilizationPercent:      utilization * 100,
	}
	return status, nil
}

// ThinkingBudget maps the requested effort to a thinking token budget,
// downgrading one step when the soft limit has tripped. Zero means
// thinking disabled.
func (g *Governor) ThinkingBudget(status models.BudgetStatus, effort models.Effort) (models.Effort, int) {
	if status.ShouldReduceEffort {
		effort = downgrade(effort)
	}
	budget := effort.ThinkingTokens()
	if budget > status.ThinkingTokensRemaining {
		budget = max(0, status.ThinkingTokensRemaining)
	}
	return effort, budget
}

// RecordUsage accumulates one call's token usage into today's counters.
// Errors are logged, never surfaced: recording is best-effort so a tracking
// failure does not fail a call that already succeeded.
func (g *Governor) RecordUsage(ctx context.Context, userID string, usage models.Usage) {
	if !g.cfg.Enabled || userID == "" {
		return
	}
	cost := g.EstimatedCostCents(usage)
	if err := g.usage.Increment(ctx, userID, services.Today(), usage, cost); err != nil {
		g.logger.Error("failed to record LLM usage",
			slog.String("user_id", userID),
			slog.Int("total_tokens", usage.Total()),
			slog.String("error", err.Error()))
	}
}

// EstimatedCostCents prices a usage report with the configured per-million
// rates. Cache reads are billed as input tokens.
func (g *Governor) EstimatedCostCents(usage models.Usage) int {
	inputTokens := usage.InputTokens + usage.CacheReadTokens + usage.CacheCreationTokens
	cents := float64(inputTokens)*float64(g.cfg.InputCostPerMCents)/1_000_000 +
		float64(usage.OutputTokens)*float64(g.cfg.OutputCostPerMCents)/1_000_000 +
		float64(usage.ThinkingTokens)*float64(g.cfg.ThinkingCostPerMCents)/1_000_000
	return int(cents)
}

// CheckRetryBudget reports whether the goal may be retried again.
func (g *Governor) CheckRetryBudget(goalID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.retries[goalID] < g.cfg.MaxRetriesPerGoal
}

// RecordRetry increments the goal's retry counter and returns the new count.
func (g *Governor) RecordRetry(goalID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.retries[goalID]++
	return g.retries[goalID]
}

// ClearRetryCount resets the goal's retry counter, typically on completion.
func (g *Governor) ClearRetryCount(goalID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.retries, goalID)
}

// budgetsFor resolves the user's budgets, preferring nonzero per-user
// overrides over the configured defaults.
func (g *Governor) budgetsFor(ctx context.Context, userID string) (int, int) {
	tokens := g.cfg.DailyTokenBudget
	thinking := g.cfg.DailyThinkingBudget
	if g.users == nil || userID == "" {
		return tokens, thinking
	}

	t, th, err := g.users.Budgets(ctx, userID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			g.logger.Warn("failed to load user budget overrides",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
		}
		return tokens, thinking
	}
	if t > 0 {
		tokens = t
	}
	if th > 0 {
		thinking = th
	}
	return tokens, thinking
}

// downgrade steps effort down one level. Routine is the floor.
func downgrade(effort models.Effort) models.Effort {
	switch effort {
	case models.EffortCritical:
		return models.EffortComplex
	case models.EffortComplex:
		return models.EffortRoutine
	default:
		return models.EffortRoutine
	}
}
