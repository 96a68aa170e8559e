package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

// CommitmentStore is the commitment surface the sweep needs. Implemented
// by services.CommitmentService.
type CommitmentStore interface {
	OverdueUnnudged(ctx context.Context, userID string, now time.Time) ([]*ent.Commitment, error)
	MarkNudged(ctx context.Context, commitmentID string, at time.Time) error
}

// CommitmentSweepJob surfaces overdue commitments once each. The
// nudged_at marker is the idempotency key: a swept commitment is never
// surfaced again.
type CommitmentSweepJob struct {
	users       UserLister
	commitments CommitmentStore
	router      InsightRouter
	cfg         *config.JobsConfig
	logger      *slog.Logger
	now         func() time.Time
}

// NewCommitmentSweepJob creates the commitment sweep job.
func NewCommitmentSweepJob(users UserLister, commitments CommitmentStore, router InsightRouter, cfg *config.JobsConfig, logger *slog.Logger) *CommitmentSweepJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommitmentSweepJob{
		users:       users,
		commitments: commitments,
		router:      router,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (j *CommitmentSweepJob) Name() string     { return "commitment_sweep" }
func (j *CommitmentSweepJob) CronSpec() string { return j.cfg.CommitmentSweepSpec }

func (j *CommitmentSweepJob) Run(ctx context.Context) models.RunSummary {
	return runFleet(ctx, j.Name(), j.users, j.logger, j.sweepUser)
}

func (j *CommitmentSweepJob) sweepUser(ctx context.Context, u *ent.User, summary *models.RunSummary) error {
	now := j.now()
	local := now.In(services.Location(u))
	if !withinBusinessHours(local, j.cfg.BusinessHoursStart, j.cfg.BusinessHoursEnd) {
		summary.SkippedOffHours++
		return nil
	}

	overdue, err := j.commitments.OverdueUnnudged(ctx, u.ID, now)
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		summary.SkippedNoInputs++
		return nil
	}

	for _, c := range overdue {
		message := fmt.Sprintf("You promised: %s. It was due %s.", c.Description, c.DueAt.Format("Jan 2"))
		if c.Contact != nil && *c.Contact != "" {
			message = fmt.Sprintf("You promised %s: %s. It was due %s.", *c.Contact, c.Description, c.DueAt.Format("Jan 2"))
		}

		if _, err := j.router.Route(ctx, models.Insight{
			UserID:   u.ID,
			Priority: models.PriorityHigh,
			Category: models.CategoryOverdueCommitment,
			Title:    fmt.Sprintf("Overdue: %s", c.Description),
			Message:  message,
			Metadata: map[string]interface{}{"commitment_id": c.ID},
		}); err != nil {
			return err
		}

		// Mark after routing so a failed route leaves the commitment
		// eligible for the next sweep.
		if err := j.commitments.MarkNudged(ctx, c.ID, now); err != nil {
			return err
		}
		summary.ItemsProduced++
	}
	return nil
}
