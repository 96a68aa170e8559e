// Package models holds the shared domain types passed between the ARIA
// core components: priorities, insight envelopes, budget status, and
// usage counters.
package models

import "fmt"

// Effort selects the extended-thinking budget for an LLM call.
type Effort string

// Effort levels and their vendor thinking-token budgets.
const (
	EffortRoutine  Effort = "routine"
	EffortComplex  Effort = "complex"
	EffortCritical Effort = "critical"
)

// ThinkingTokens returns the vendor thinking budget for the effort level.
func (e Effort) ThinkingTokens() int {
	switch e {
	case EffortCritical:
		return 32768
	case EffortComplex:
		return 16384
	default:
		return 4096
	}
}

// Validate returns an error for unknown effort values.
func (e Effort) Validate() error {
	switch e {
	case EffortRoutine, EffortComplex, EffortCritical:
		return nil
	}
	return fmt.Errorf("invalid effort: %q", string(e))
}

// Priority classifies an insight for delivery routing.
type Priority string

// Insight priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Validate returns an error for unknown priority values.
func (p Priority) Validate() error {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	}
	return fmt.Errorf("invalid priority: %q", string(p))
}

// InsightCategory is the closed set of insight kinds jobs produce.
type InsightCategory string

// Insight categories.
const (
	CategoryMarketSignal          InsightCategory = "market_signal"
	CategoryStaleLead             InsightCategory = "stale_lead"
	CategoryDebriefPrompt         InsightCategory = "debrief_prompt"
	CategoryOverdueCommitment     InsightCategory = "overdue_commitment"
	CategoryUrgentEmail           InsightCategory = "urgent_email"
	CategoryHealthDrop            InsightCategory = "health_drop"
	CategoryBattleCardUpdate      InsightCategory = "battle_card_update"
	CategoryConversionScoreChange InsightCategory = "conversion_score_change"
	CategoryWeeklyDigest          InsightCategory = "weekly_digest"
)

// Validate returns an error for unknown categories.
func (c InsightCategory) Validate() error {
	switch c {
	case CategoryMarketSignal, CategoryStaleLead, CategoryDebriefPrompt,
		CategoryOverdueCommitment, CategoryUrgentEmail, CategoryHealthDrop,
		CategoryBattleCardUpdate, CategoryConversionScoreChange, CategoryWeeklyDigest:
		return nil
	}
	return fmt.Errorf("invalid insight category: %q", string(c))
}

// DeliveryChannel is the outcome of routing an insight.
type DeliveryChannel string

// Delivery channels.
const (
	ChannelWebSocket      DeliveryChannel = "websocket"
	ChannelNotification   DeliveryChannel = "notification"
	ChannelBriefingQueue  DeliveryChannel = "briefing_queue"
	ChannelLoginQueue     DeliveryChannel = "login_queue"
	ChannelSuppressedDupe DeliveryChannel = "suppressed_duplicate"
)
