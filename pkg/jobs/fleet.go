package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/agent"
	"github.com/ariahq/aria/pkg/models"
)

// UserLister loads the onboarded-user fleet. Implemented by
// services.UserService.
type UserLister interface {
	ListOnboarded(ctx context.Context) ([]*ent.User, error)
}

// InsightRouter delivers job outputs. Implemented by delivery.Router.
type InsightRouter interface {
	Route(ctx context.Context, insight models.Insight) (models.Decision, error)
}

// Executor runs agent tasks. Implemented by agent.Orchestrator.
type Executor interface {
	SpawnAndExecute(ctx context.Context, name string, task agent.Task) *agent.Result
}

// runFleet is the shared per-user loop: load the fleet, run perUser for
// each, and never let one user's failure (error or panic) abort the rest.
func runFleet(ctx context.Context, jobName string, users UserLister, logger *slog.Logger, perUser func(ctx context.Context, u *ent.User, summary *models.RunSummary) error) models.RunSummary {
	start := time.Now()
	summary := models.RunSummary{Job: jobName}

	fleet, err := users.ListOnboarded(ctx)
	if err != nil {
		logger.Error("failed to load user fleet",
			slog.String("job", jobName),
			slog.String("error", err.Error()))
		summary.Errors++
		summary.Elapsed = time.Since(start)
		return summary
	}

	for _, u := range fleet {
		if ctx.Err() != nil {
			break
		}
		summary.UsersChecked++
		if err := runForUser(ctx, u, &summary, perUser); err != nil {
			summary.Errors++
			logger.Warn("per-user job iteration failed",
				slog.String("job", jobName),
				slog.String("user_id", u.ID),
				slog.String("error", err.Error()))
		}
	}

	summary.Elapsed = time.Since(start)
	return summary
}

// runForUser contains the panic boundary for one user's iteration.
func runForUser(ctx context.Context, u *ent.User, summary *models.RunSummary, perUser func(context.Context, *ent.User, *models.RunSummary) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return perUser(ctx, u, summary)
}

// withinBusinessHours reports whether the local time falls inside the
// [start, end) hour window.
func withinBusinessHours(local time.Time, startHour, endHour int) bool {
	h := local.Hour()
	return h >= startHour && h < endHour
}

// signalPriority maps scan relevance to routing priority.
func signalPriority(relevance float64) models.Priority {
	switch {
	case relevance >= 0.8:
		return models.PriorityHigh
	case relevance >= 0.6:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}
