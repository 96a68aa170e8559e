package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
)

// fakeUsageStore serves canned daily usage and records increments.
type fakeUsageStore struct {
	day        models.DailyUsage
	getErr     error
	incErr     error
	increments []models.Usage
	costs      []int
}

func (s *fakeUsageStore) GetDay(ctx context.Context, userID, day string) (models.DailyUsage, error) {
	if s.getErr != nil {
		return models.DailyUsage{}, s.getErr
	}
	return s.day, nil
}

func (s *fakeUsageStore) Increment(ctx context.Context, userID, day string, usage models.Usage, costCents int) error {
	if s.incErr != nil {
		return s.incErr
	}
	s.increments = append(s.increments, usage)
	s.costs = append(s.costs, costCents)
	return nil
}

// fakeUserBudgets returns fixed per-user overrides.
type fakeUserBudgets struct {
	tokens   int
	thinking int
	err      error
}

func (f *fakeUserBudgets) Budgets(ctx context.Context, userID string) (int, int, error) {
	return f.tokens, f.thinking, f.err
}

func testConfig() *config.CostGovernorConfig {
	cfg := config.DefaultCostGovernorConfig()
	cfg.Enabled = true
	cfg.DailyTokenBudget = 1000
	cfg.DailyThinkingBudget = 200
	cfg.SoftLimitFraction = 0.8
	cfg.MaxRetriesPerGoal = 3
	return cfg
}

func TestGovernor_CheckBudget_UnderBudget(t *testing.T) {
	store := &fakeUsageStore{day: models.DailyUsage{InputTokens: 100, OutputTokens: 50}}
	g := NewGovernor(testConfig(), store, nil, nil)

	status, err := g.CheckBudget(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, status.CanProceed)
	assert.False(t, status.ShouldReduceEffort)
	assert.Equal(t, 850, status.TokensRemaining)
	assert.InDelta(t, 15.0, status.UtilizationPercent, 0.01)
}

func TestGovernor_CheckBudget_HardLimitIsStrict(t *testing.T) {
	tests := []struct {
		name       string
		used       int
		canProceed bool
	}{
		{"one below budget", 999, true},
		{"exactly at budget", 1000, false},
		{"over budget", 1001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUsageStore{day: models.DailyUsage{InputTokens: tt.used}}
			g := NewGovernor(testConfig(), store, nil, nil)

			status, err := g.CheckBudget(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.canProceed, status.CanProceed)
		})
	}
}

func TestGovernor_CheckBudget_SoftLimitBoundary(t *testing.T) {
	tests := []struct {
		name   string
		used   int
		reduce bool
	}{
		{"below soft limit", 799, false},
		{"exactly at soft limit", 800, true},
		{"above soft limit", 900, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUsageStore{day: models.DailyUsage{InputTokens: tt.used}}
			g := NewGovernor(testConfig(), store, nil, nil)

			status, err := g.CheckBudget(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.reduce, status.ShouldReduceEffort)
		})
	}
}

func TestGovernor_CheckBudget_FailsOpenOnStoreError(t *testing.T) {
	store := &fakeUsageStore{getErr: errors.New("connection refused")}
	g := NewGovernor(testConfig(), store, nil, nil)

	status, err := g.CheckBudget(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, status.CanProceed, "storage failures must not block calls")
}

func TestGovernor_CheckBudget_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	store := &fakeUsageStore{day: models.DailyUsage{InputTokens: 999_999}}
	g := NewGovernor(cfg, store, nil, nil)

	status, err := g.CheckBudget(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, status.CanProceed)
	assert.False(t, status.ShouldReduceEffort)
}

func TestGovernor_CheckBudget_UserOverrides(t *testing.T) {
	// 1500 used would exceed the 1000 default, but the user override
	// raises the budget to 5000.
	store := &fakeUsageStore{day: models.DailyUsage{InputTokens: 1500}}
	users := &fakeUserBudgets{tokens: 5000, thinking: 1000}
	g := NewGovernor(testConfig(), store, users, nil)

	status, err := g.CheckBudget(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, status.CanProceed)
	assert.Equal(t, 3500, status.TokensRemaining)
}

func TestGovernor_CheckBudget_ZeroOverrideUsesDefault(t *testing.T) {
	store := &fakeUsageStore{day: models.DailyUsage{InputTokens: 500}}
	users := &fakeUserBudgets{tokens: 0, thinking: 0}
	g := NewGovernor(testConfig(), store, users, nil)

	status, err := g.CheckBudget(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 500, status.TokensRemaining)
}

func TestGovernor_ThinkingBudget_Downgrade(t *testing.T) {
	g := NewGovernor(testConfig(), &fakeUsageStore{}, nil, nil)
	plenty := models.BudgetStatus{ThinkingTokensRemaining: 100_000}

	effort, budget := g.ThinkingBudget(plenty, models.EffortCritical)
	assert.Equal(t, models.EffortCritical, effort)
	assert.Equal(t, 32768, budget)

	reduced := models.BudgetStatus{ShouldReduceEffort: true, ThinkingTokensRemaining: 100_000}
	effort, budget = g.ThinkingBudget(reduced, models.EffortCritical)
	assert.Equal(t, models.EffortComplex, effort)
	assert.Equal(t, 16384, budget)

	effort, budget = g.ThinkingBudget(reduced, models.EffortRoutine)
	assert.Equal(t, models.EffortRoutine, effort, "routine is the floor")
	assert.Equal(t, 4096, budget)
}

func TestGovernor_ThinkingBudget_CappedByRemaining(t *testing.T) {
	g := NewGovernor(testConfig(), &fakeUsageStore{}, nil, nil)

	status := models.BudgetStatus{ThinkingTokensRemaining: 1000}
	_, budget := g.ThinkingBudget(status, models.EffortCritical)
	assert.Equal(t, 1000, budget)

	status = models.BudgetStatus{ThinkingTokensRemaining: 0}
	_, budget = g.ThinkingBudget(status, models.EffortRoutine)
	assert.Equal(t, 0, budget, "exhausted thinking budget disables thinking")
}

func TestGovernor_RecordUsage_SwallowsErrors(t *testing.T) {
	store := &fakeUsageStore{incErr: errors.New("deadlock detected")}
	g := NewGovernor(testConfig(), store, nil, nil)

	// Must not panic or propagate.
	g.RecordUsage(context.Background(), "user-1", models.Usage{InputTokens: 10})
	assert.Empty(t, store.increments)
}

func TestGovernor_RecordUsage_PricesCall(t *testing.T) {
	cfg := testConfig()
	cfg.InputCostPerMCents = 300
	cfg.OutputCostPerMCents = 1500
	cfg.ThinkingCostPerMCents = 1500
	store := &fakeUsageStore{}
	g := NewGovernor(cfg, store, nil, nil)

	g.RecordUsage(context.Background(), "user-1", models.Usage{
		InputTokens:    1_000_000,
		OutputTokens:   1_000_000,
		ThinkingTokens: 1_000_000,
	})
	require.Len(t, store.costs, 1)
	assert.Equal(t, 3300, store.costs[0])
}

func TestGovernor_RetryBudget(t *testing.T) {
	g := NewGovernor(testConfig(), &fakeUsageStore{}, nil, nil)

	assert.True(t, g.CheckRetryBudget("goal-1"))
	assert.Equal(t, 1, g.RecordRetry("goal-1"))
	assert.Equal(t, 2, g.RecordRetry("goal-1"))
	assert.True(t, g.CheckRetryBudget("goal-1"))
	assert.Equal(t, 3, g.RecordRetry("goal-1"))
	assert.False(t, g.CheckRetryBudget("goal-1"), "cap reached")

	// Counters are per goal.
	assert.True(t, g.CheckRetryBudget("goal-2"))

	g.ClearRetryCount("goal-1")
	assert.True(t, g.CheckRetryBudget("goal-1"), "cleared on completion")
}
