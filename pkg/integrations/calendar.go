package integrations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ariahq/aria/pkg/jobs"
)

// meetingLookback is how far back the debrief job looks for ended
// meetings. Wide enough to ride out a few missed ticks; the debrief
// marker keeps re-scans idempotent.
const meetingLookback = 2 * time.Hour

// CalendarSource feeds recently ended meetings to the debrief job from
// the user's connected calendar provider.
type CalendarSource struct {
	broker *Broker
	logger *slog.Logger
}

// NewCalendarSource creates a calendar meeting source.
func NewCalendarSource(broker *Broker, logger *slog.Logger) *CalendarSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarSource{broker: broker, logger: logger}
}

// RecentlyEnded lists meetings that ended within the lookback window. A
// user without a calendar connection yields no meetings, not an error.
func (c *CalendarSource) RecentlyEnded(ctx context.Context, userID string, now time.Time) ([]jobs.Meeting, error) {
	out, err := c.broker.ExecuteAction(ctx, userID, "calendar", "list_ended_events", map[string]interface{}{
		"since": now.Add(-meetingLookback).UTC().Format(time.RFC3339),
		"until": now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ended meetings: %w", err)
	}

	raw, ok := out["events"].([]interface{})
	if !ok {
		return nil, nil
	}

	meetings := make([]jobs.Meeting, 0, len(raw))
	for _, item := range raw {
		ev, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		m := jobs.Meeting{}
		m.ID, _ = ev["id"].(string)
		m.Title, _ = ev["title"].(string)
		if endedAt, ok := ev["ended_at"].(string); ok {
			if ts, err := time.Parse(time.RFC3339, endedAt); err == nil {
				m.EndedAt = ts
			}
		}
		if m.ID == "" {
			continue
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}
