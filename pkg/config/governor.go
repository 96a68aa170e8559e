package config

// CostGovernorConfig controls per-user daily token accounting and the
// soft-limit effort downgrade policy.
type CostGovernorConfig struct {
	// Enabled is the master switch. When false, budget checks always pass
	// and usage recording is a no-op.
	Enabled bool

	// DailyTokenBudget is the per-user ceiling across all token kinds.
	DailyTokenBudget int

	// DailyThinkingBudget is the per-user ceiling for reasoning tokens.
	DailyThinkingBudget int

	// SoftLimitFraction is the utilization at which thinking effort is
	// downgraded. Inclusive boundary: utilization >= fraction reduces effort.
	SoftLimitFraction float64

	// MaxRetriesPerGoal caps in-process retries per goal identifier.
	MaxRetriesPerGoal int

	// Per-million-token cost rates in cents, for dashboard display.
	InputCostPerMCents    int
	OutputCostPerMCents   int
	ThinkingCostPerMCents int
}

// DefaultCostGovernorConfig returns the built-in governor defaults.
func DefaultCostGovernorConfig() *CostGovernorConfig {
	return &CostGovernorConfig{
		Enabled:               true,
		DailyTokenBudget:      1_000_000,
		DailyThinkingBudget:   200_000,
		SoftLimitFraction:     0.8,
		MaxRetriesPerGoal:     3,
		InputCostPerMCents:    300,
		OutputCostPerMCents:   1500,
		ThinkingCostPerMCents: 1500,
	}
}

// LoadCostGovernorFromEnv reads COST_GOVERNOR_* environment variables,
// falling back to defaults for anything unset.
func LoadCostGovernorFromEnv() *CostGovernorConfig {
	d := DefaultCostGovernorConfig()
	return &CostGovernorConfig{
		Enabled:               envBool("COST_GOVERNOR_ENABLED", d.Enabled),
		DailyTokenBudget:      envInt("COST_GOVERNOR_DAILY_TOKEN_BUDGET", d.DailyTokenBudget),
		DailyThinkingBudget:   envInt("COST_GOVERNOR_DAILY_THINKING_BUDGET", d.DailyThinkingBudget),
		SoftLimitFraction:     envFloat("COST_GOVERNOR_SOFT_LIMIT_PERCENT", d.SoftLimitFraction),
		MaxRetriesPerGoal:     envInt("COST_GOVERNOR_MAX_RETRIES_PER_GOAL", d.MaxRetriesPerGoal),
		InputCostPerMCents:    envInt("COST_GOVERNOR_INPUT_TOKEN_COST_PER_M", d.InputCostPerMCents),
		OutputCostPerMCents:   envInt("COST_GOVERNOR_OUTPUT_TOKEN_COST_PER_M", d.OutputCostPerMCents),
		ThinkingCostPerMCents: envInt("COST_GOVERNOR_THINKING_TOKEN_COST_PER_M", d.ThinkingCostPerMCents),
	}
}
