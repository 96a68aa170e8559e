package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

// Meeting is a calendar event that recently ended.
type Meeting struct {
	ID      string
	Title   string
	EndedAt time.Time
}

// MeetingSource lists meetings that ended recently for a user. Backed by
// the calendar integration through the broker.
type MeetingSource interface {
	RecentlyEnded(ctx context.Context, userID string, now time.Time) ([]Meeting, error)
}

// DebriefStore is the debrief marker surface. Implemented by
// services.DebriefService.
type DebriefStore interface {
	DebriefExists(ctx context.Context, userID, meetingID string) (bool, error)
	CreateDebrief(ctx context.Context, userID, meetingID, meetingTitle string) (*ent.MeetingDebrief, error)
}

// DebriefPromptJob prompts users to debrief meetings that just ended.
// One prompt per (user, meeting), ever.
type DebriefPromptJob struct {
	users    UserLister
	meetings MeetingSource
	debriefs DebriefStore
	router   InsightRouter
	cfg      *config.JobsConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewDebriefPromptJob creates the debrief prompt job.
func NewDebriefPromptJob(users UserLister, meetings MeetingSource, debriefs DebriefStore, router InsightRouter, cfg *config.JobsConfig, logger *slog.Logger) *DebriefPromptJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &DebriefPromptJob{
		users:    users,
		meetings: meetings,
		debriefs: debriefs,
		router:   router,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (j *DebriefPromptJob) Name() string     { return "debrief_prompt" }
func (j *DebriefPromptJob) CronSpec() string { return j.cfg.DebriefPromptSpec }

func (j *DebriefPromptJob) Run(ctx context.Context) models.RunSummary {
	return runFleet(ctx, j.Name(), j.users, j.logger, j.promptUser)
}

func (j *DebriefPromptJob) promptUser(ctx context.Context, u *ent.User, summary *models.RunSummary) error {
	local := j.now().In(services.Location(u))
	if !withinBusinessHours(local, j.cfg.BusinessHoursStart, j.cfg.BusinessHoursEnd) {
		summary.SkippedOffHours++
		return nil
	}

	meetings, err := j.meetings.RecentlyEnded(ctx, u.ID, j.now())
	if err != nil {
		return err
	}
	if len(meetings) == 0 {
		summary.SkippedNoInputs++
		return nil
	}

	for _, m := range meetings {
		exists, err := j.debriefs.DebriefExists(ctx, u.ID, m.ID)
		if err != nil {
			return err
		}
		if exists {
			summary.SkippedExisting++
			continue
		}

		if _, err := j.debriefs.CreateDebrief(ctx, u.ID, m.ID, m.Title); err != nil {
			if errors.Is(err, services.ErrAlreadyExists) {
				summary.SkippedExisting++
				continue
			}
			return err
		}

		if _, err := j.router.Route(ctx, models.Insight{
			UserID:   u.ID,
			Priority: models.PriorityMedium,
			Category: models.CategoryDebriefPrompt,
			Title:    fmt.Sprintf("How did %q go?", m.Title),
			Message:  "Capture your notes while the meeting is fresh. I can log them to the CRM and draft any follow-ups.",
			Metadata: map[string]interface{}{"meeting_id": m.ID},
		}); err != nil {
			return err
		}
		summary.ItemsProduced++
	}
	return nil
}
