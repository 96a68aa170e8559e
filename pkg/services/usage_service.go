package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/usagerecord"
	"github.com/ariahq/aria/pkg/models"
)

// DayFormat is the layout for usage_tracking natural keys. Daily rollover
// happens at calendar midnight in the storage timezone (UTC).
const DayFormat = "2006-01-02"

// UsageService manages the per-user per-day usage counters. Increments go
// through the database-side increment_usage_tracking function so concurrent
// recorders never lose updates.
type UsageService struct {
	client *ent.Client
	db     *sql.DB
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client, db *sql.DB) *UsageService {
	return &UsageService{client: client, db: db}
}

// Today returns the current usage day key in UTC.
func Today() string {
	return time.Now().UTC().Format(DayFormat)
}

// Increment applies the usage deltas for one LLM call atomically,
// creating the day's row if absent and bumping request_count by one.
func (s *UsageService) Increment(ctx context.Context, userID, day string, usage models.Usage, costCents int) error {
	if userID == "" {
		return NewValidationError("user_id", "required")
	}
	if day == "" {
		return NewValidationError("day", "required")
	}

	_, err := s.db.ExecContext(ctx,
		`SELECT increment_usage_tracking($1, $2, $3, $4, $5, $6, $7, $8)`,
		userID, day,
		usage.InputTokens, usage.OutputTokens, usage.ThinkingTokens,
		usage.CacheReadTokens, usage.CacheCreationTokens,
		costCents,
	)
	if err != nil {
		return fmt.Errorf("failed to increment usage tracking: %w", err)
	}
	return nil
}

// GetDay reads the usage row for (user, day). A missing row yields zero
// counters, not an error: no call has been made that day.
func (s *UsageService) GetDay(ctx context.Context, userID, day string) (models.DailyUsage, error) {
	rec, err := s.client.UsageRecord.Query().
		Where(
			usagerecord.UserIDEQ(userID),
			usagerecord.DayEQ(day),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.DailyUsage{UserID: userID, Day: day}, nil
		}
		return models.DailyUsage{}, fmt.Errorf("failed to get usage record: %w", err)
	}

	return models.DailyUsage{
		UserID:              rec.UserID,
		Day:                 rec.Day,
		InputTokens:         rec.InputTokens,
		OutputTokens:        rec.OutputTokens,
		ThinkingTokens:      rec.ThinkingTokens,
		CacheReadTokens:     rec.CacheReadTokens,
		CacheCreationTokens: rec.CacheCreationTokens,
		EstimatedCostCents:  rec.EstimatedCostCents,
		RequestCount:        rec.RequestCount,
	}, nil
}
