package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/agent"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

// entityLookback bounds how far back previously seen signal subjects feed
// the tracked-entity union.
const entityLookback = 30 * 24 * time.Hour

// SignalStore is the market-signal surface the scan needs. Implemented by
// services.SignalService.
type SignalStore interface {
	HeadlineExists(ctx context.Context, userID, headline string) (bool, error)
	CreateSignal(ctx context.Context, req services.CreateSignalRequest) (*ent.MarketSignal, error)
	RecentEntities(ctx context.Context, userID string, since time.Time) ([]string, error)
}

// SignalScanJob scans each user's tracked entities for market signals
// every scan tick, during the user's business hours.
type SignalScanJob struct {
	users    UserLister
	signals  SignalStore
	executor Executor
	router   InsightRouter
	cfg      *config.JobsConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewSignalScanJob creates the signal scan job.
func NewSignalScanJob(users UserLister, signals SignalStore, executor Executor, router InsightRouter, cfg *config.JobsConfig, logger *slog.Logger) *SignalScanJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignalScanJob{
		users:    users,
		signals:  signals,
		executor: executor,
		router:   router,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (j *SignalScanJob) Name() string     { return "signal_scan" }
func (j *SignalScanJob) CronSpec() string { return j.cfg.SignalScanSpec }

// Run iterates the fleet and scans each in-hours user.
func (j *SignalScanJob) Run(ctx context.Context) models.RunSummary {
	return runFleet(ctx, j.Name(), j.users, j.logger, j.scanUser)
}

func (j *SignalScanJob) scanUser(ctx context.Context, u *ent.User, summary *models.RunSummary) error {
	local := j.now().In(services.Location(u))
	if !withinBusinessHours(local, j.cfg.BusinessHoursStart, j.cfg.BusinessHoursEnd) {
		summary.SkippedOffHours++
		return nil
	}

	entities, err := j.signals.RecentEntities(ctx, u.ID, j.now().Add(-entityLookback))
	if err != nil {
		return err
	}
	watched := entityUnion(u.TrackedCompetitors, entities)
	if len(watched) == 0 {
		summary.SkippedNoInputs++
		return nil
	}

	result := j.executor.SpawnAndExecute(ctx, "scout", agent.ScoutTask{
		UserID:      u.ID,
		Competitors: u.TrackedCompetitors,
		Entities:    entities,
	})
	if !result.Success {
		return errors.New(result.Error)
	}

	found, _ := result.Data["signals"].([]agent.Signal)
	for _, sig := range found {
		if sig.Headline == "" {
			continue
		}

		exists, err := j.signals.HeadlineExists(ctx, u.ID, sig.Headline)
		if err != nil {
			return err
		}
		if exists {
			summary.SkippedExisting++
			continue
		}

		if _, err := j.signals.CreateSignal(ctx, services.CreateSignalRequest{
			UserID:    u.ID,
			Entity:    sig.Entity,
			Headline:  sig.Headline,
			Summary:   sig.Summary,
			Relevance: sig.Relevance,
		}); err != nil {
			// A concurrent scan beat us to this headline.
			if errors.Is(err, services.ErrAlreadyExists) {
				summary.SkippedExisting++
				continue
			}
			return err
		}

		if _, err := j.router.Route(ctx, models.Insight{
			UserID:   u.ID,
			Priority: signalPriority(sig.Relevance),
			Category: models.CategoryMarketSignal,
			Title:    sig.Headline,
			Message:  sig.Summary,
			Link:     sig.Link,
			Metadata: map[string]interface{}{
				"entity":    sig.Entity,
				"relevance": sig.Relevance,
			},
		}); err != nil {
			return err
		}
		summary.ItemsProduced++
	}
	return nil
}

// entityUnion merges tracked competitors and previously seen subjects,
// dropping duplicates while keeping first-seen order.
func entityUnion(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, e := range list {
			if e == "" {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}
