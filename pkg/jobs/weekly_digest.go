package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

// digestWindow is the span of activity one digest covers.
const digestWindow = 7 * 24 * time.Hour

// DigestStore is the digest marker surface. Implemented by
// services.DigestService.
type DigestStore interface {
	DigestExists(ctx context.Context, userID, weekStart string) (bool, error)
	CreateDigest(ctx context.Context, userID, weekStart, content string, itemCount int) (*ent.WeeklyDigest, error)
}

// SignalReader lists the week's stored signals. Implemented by
// services.SignalService.
type SignalReader interface {
	ListSince(ctx context.Context, userID string, since time.Time) ([]*ent.MarketSignal, error)
}

// BriefingDrainer consumes parked LOW insights for the digest window.
// Implemented by services.BriefingService.
type BriefingDrainer interface {
	DrainWindow(ctx context.Context, userID string, from, to time.Time) ([]*ent.BriefingItem, error)
}

// WeeklyDigestJob assembles each user's weekly digest on Monday at the
// digest hour in that user's timezone. The runner ticks it hourly; the
// job decides per user whether their local clock says it is time.
type WeeklyDigestJob struct {
	users     UserLister
	digests   DigestStore
	signals   SignalReader
	briefings BriefingDrainer
	router    InsightRouter
	cfg       *config.JobsConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewWeeklyDigestJob creates the weekly digest job.
func NewWeeklyDigestJob(users UserLister, digests DigestStore, signals SignalReader, briefings BriefingDrainer, router InsightRouter, cfg *config.JobsConfig, logger *slog.Logger) *WeeklyDigestJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeeklyDigestJob{
		users:     users,
		digests:   digests,
		signals:   signals,
		briefings: briefings,
		router:    router,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (j *WeeklyDigestJob) Name() string     { return "weekly_digest" }
func (j *WeeklyDigestJob) CronSpec() string { return j.cfg.WeeklyDigestSpec }

// Run iterates the fleet; only users whose local clock reads Monday at
// the digest hour produce anything.
func (j *WeeklyDigestJob) Run(ctx context.Context) models.RunSummary {
	return runFleet(ctx, j.Name(), j.users, j.logger, j.digestUser)
}

func (j *WeeklyDigestJob) digestUser(ctx context.Context, u *ent.User, summary *models.RunSummary) error {
	local := j.now().In(services.Location(u))
	if local.Weekday() != time.Monday || local.Hour() != j.cfg.DigestHour {
		summary.SkippedOffHours++
		return nil
	}

	weekStart := local.Format(services.DayFormat)
	exists, err := j.digests.DigestExists(ctx, u.ID, weekStart)
	if err != nil {
		return err
	}
	if exists {
		summary.SkippedExisting++
		return nil
	}

	since := j.now().Add(-digestWindow)
	signals, err := j.signals.ListSince(ctx, u.ID, since)
	if err != nil {
		return err
	}
	parked, err := j.briefings.DrainWindow(ctx, u.ID, since, j.now())
	if err != nil {
		return err
	}

	itemCount := len(signals) + len(parked)
	if itemCount == 0 {
		summary.SkippedNoInputs++
		return nil
	}

	content := composeDigest(weekStart, signals, parked)
	if _, err := j.digests.CreateDigest(ctx, u.ID, weekStart, content, itemCount); err != nil {
		if err == services.ErrAlreadyExists {
			summary.SkippedExisting++
			return nil
		}
		return err
	}

	if _, err := j.router.Route(ctx, models.Insight{
		UserID:   u.ID,
		Priority: models.PriorityMedium,
		Category: models.CategoryWeeklyDigest,
		Title:    fmt.Sprintf("Your weekly digest for %s", weekStart),
		Message:  fmt.Sprintf("%d developments from your accounts this week.", itemCount),
		Metadata: map[string]interface{}{"week_start": weekStart, "item_count": itemCount},
	}); err != nil {
		return err
	}
	summary.ItemsProduced++
	return nil
}

// composeDigest renders the digest body from the week's signals and the
// parked briefing items.
func composeDigest(weekStart string, signals []*ent.MarketSignal, parked []*ent.BriefingItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly digest, week of %s\n", weekStart)

	if len(signals) > 0 {
		b.WriteString("\nMarket signals:\n")
		for _, s := range signals {
			fmt.Fprintf(&b, "- %s", s.Headline)
			if s.Summary != "" {
				fmt.Fprintf(&b, ": %s", s.Summary)
			}
			b.WriteString("\n")
		}
	}

	if len(parked) > 0 {
		b.WriteString("\nAlso worth a look:\n")
		for _, item := range parked {
			fmt.Fprintf(&b, "- %s", item.Title)
			if item.Message != "" {
				fmt.Fprintf(&b, ": %s", item.Message)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
