package models

// Usage carries token counts reported by the LLM vendor for one call.
type Usage struct {
	InputTokens         int
	OutputTokens        int
	ThinkingTokens      int
	CacheReadTokens     int
	CacheCreationTokens int
}

// Total returns the sum of all token kinds that count against the
// daily budget.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens + u.ThinkingTokens
}

// Add returns the element-wise sum of two usage reports.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		InputTokens:         u.InputTokens + other.InputTokens,
		OutputTokens:        u.OutputTokens + other.OutputTokens,
		ThinkingTokens:      u.ThinkingTokens + other.ThinkingTokens,
		CacheReadTokens:     u.CacheReadTokens + other.CacheReadTokens,
		CacheCreationTokens: u.CacheCreationTokens + other.CacheCreationTokens,
	}
}

// BudgetStatus is derived from the day's usage record at check time.
// Lifetime is a single request.
type BudgetStatus struct {
	CanProceed              bool
	ShouldReduceEffort      bool
	TokensRemaining         int
	ThinkingTokensRemaining int
	UtilizationPercent      float64
}

// DailyUsage is the read model of one usage_tracking row.
type DailyUsage struct {
	UserID              string
	Day                 string
	InputTokens         int
	OutputTokens        int
	ThinkingTokens      int
	CacheReadTokens     int
	CacheCreationTokens int
	EstimatedCostCents  int
	RequestCount        int
}

// TotalTokens returns the budget-relevant token total for the day.
func (d DailyUsage) TotalTokens() int {
	return d.InputTokens + d.OutputTokens + d.ThinkingTokens
}
