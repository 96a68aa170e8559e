package config

import "time"

// GatewayConfig controls the LLM gateway: vendor model selection, per-call
// timeouts, retry policy, and circuit breaker thresholds.
type GatewayConfig struct {
	// Model is the vendor model identifier for all calls.
	Model string

	// MaxTokens is the default completion ceiling when a call does not
	// specify one. Must exceed the largest thinking budget.
	MaxTokens int

	// GenerateTimeout bounds plain generation calls.
	GenerateTimeout time.Duration

	// ThinkingTimeout bounds thinking-enabled calls, which run much longer.
	ThinkingTimeout time.Duration

	// MaxAttempts is the total attempt count for transient failures (first
	// try included). Capped at 3 by the retry loop.
	MaxAttempts int

	// RetryBaseDelay is the initial backoff delay; doubles per attempt.
	RetryBaseDelay time.Duration

	// Circuit breaker tuning.
	BreakerFailureThreshold int
	BreakerSuccessThreshold int
	BreakerCooldown         time.Duration
}

// DefaultGatewayConfig returns the built-in gateway defaults.
func DefaultGatewayConfig() *GatewayConfig {
	return &GatewayConfig{
		Model:                   "claude-sonnet-4-20250514",
		MaxTokens:               8192,
		GenerateTimeout:         45 * time.Second,
		ThinkingTimeout:         4 * time.Minute,
		MaxAttempts:             3,
		RetryBaseDelay:          500 * time.Millisecond,
		BreakerFailureThreshold: 5,
		BreakerSuccessThreshold: 2,
		BreakerCooldown:         30 * time.Second,
	}
}

// LoadGatewayFromEnv reads LLM_* environment variables, falling back to
// defaults for anything unset.
func LoadGatewayFromEnv() *GatewayConfig {
	d := DefaultGatewayConfig()
	return &GatewayConfig{
		Model:                   envString("LLM_MODEL", d.Model),
		MaxTokens:               envInt("LLM_MAX_TOKENS", d.MaxTokens),
		GenerateTimeout:         envDuration("LLM_GENERATE_TIMEOUT", d.GenerateTimeout),
		ThinkingTimeout:         envDuration("LLM_THINKING_TIMEOUT", d.ThinkingTimeout),
		MaxAttempts:             envInt("LLM_MAX_ATTEMPTS", d.MaxAttempts),
		RetryBaseDelay:          envDuration("LLM_RETRY_BASE_DELAY", d.RetryBaseDelay),
		BreakerFailureThreshold: envInt("LLM_BREAKER_FAILURE_THRESHOLD", d.BreakerFailureThreshold),
		BreakerSuccessThreshold: envInt("LLM_BREAKER_SUCCESS_THRESHOLD", d.BreakerSuccessThreshold),
		BreakerCooldown:         envDuration("LLM_BREAKER_COOLDOWN", d.BreakerCooldown),
	}
}

// OrchestratorConfig caps agent fan-out within one orchestrator.
type OrchestratorConfig struct {
	// MaxTokens is the aggregate token cap across all agents spawned by one
	// orchestrator instance.
	MaxTokens int

	// MaxConcurrentAgents bounds parallel execution; further tasks wait.
	MaxConcurrentAgents int
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		MaxTokens:           500_000,
		MaxConcurrentAgents: 4,
	}
}

// LoadOrchestratorFromEnv reads ORCHESTRATOR_* environment variables.
func LoadOrchestratorFromEnv() *OrchestratorConfig {
	d := DefaultOrchestratorConfig()
	return &OrchestratorConfig{
		MaxTokens:           envInt("ORCHESTRATOR_MAX_TOKENS", d.MaxTokens),
		MaxConcurrentAgents: envInt("ORCHESTRATOR_MAX_CONCURRENT_AGENTS", d.MaxConcurrentAgents),
	}
}
