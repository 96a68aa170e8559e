// Package jobs implements the background job runner: periodic fleet-wide
// work with business-hours, idempotency, and per-user isolation discipline.
package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ariahq/aria/pkg/models"
)

// Job is one periodic background task.
type Job interface {
	Name() string
	// CronSpec is the job's cadence in standard 5-field cron format.
	CronSpec() string
	Run(ctx context.Context) models.RunSummary
}

// Runner schedules jobs on cron cadences. Invocations are non-overlapping
// per job: a tick that arrives while the previous run is still working is
// dropped, which (with sequential per-user loops inside each job) keeps
// per-(job, user) work non-overlapping too.
type Runner struct {
	cron   *cron.Cron
	logger *slog.Logger

	mu       sync.Mutex
	inflight map[string]bool

	baseCtx  context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner creates a job runner.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		cron:     cron.New(),
		logger:   logger,
		inflight: make(map[string]bool),
		baseCtx:  ctx,
		cancel:   cancel,
	}
}

// Register schedules a job at its cron cadence.
func (r *Runner) Register(job Job) error {
	_, err := r.cron.AddFunc(job.CronSpec(), func() {
		r.runGuarded(job)
	})
	if err != nil {
		return err
	}
	r.logger.Info("background job registered",
		slog.String("job", job.Name()),
		slog.String("spec", job.CronSpec()))
	return nil
}

// Start begins scheduling. Returns immediately.
func (r *Runner) Start() {
	r.cron.Start()
	r.logger.Info("background job runner started")
}

// Stop cancels in-flight runs and waits for them to finish.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		ctx := r.cron.Stop()
		<-ctx.Done()
		r.cancel()
		r.wg.Wait()
		r.logger.Info("background job runner stopped")
	})
}

// RunNow executes a job immediately under the overlap guard. Used at
// startup for catch-up runs and by tests.
func (r *Runner) RunNow(job Job) {
	r.runGuarded(job)
}

func (r *Runner) runGuarded(job Job) {
	r.mu.Lock()
	if r.inflight[job.Name()] {
		r.mu.Unlock()
		r.logger.Warn("skipping job tick, previous run still in flight",
			slog.String("job", job.Name()))
		return
	}
	r.inflight[job.Name()] = true
	r.mu.Unlock()

	r.wg.Add(1)
	defer r.wg.Done()
	defer func() {
		r.mu.Lock()
		r.inflight[job.Name()] = false
		r.mu.Unlock()
	}()

	summary := job.Run(r.baseCtx)
	r.logger.Info("background job run complete",
		slog.String("job", summary.Job),
		slog.Int("users_checked", summary.UsersChecked),
		slog.Int("skipped_off_hours", summary.SkippedOffHours),
		slog.Int("skipped_no_inputs", summary.SkippedNoInputs),
		slog.Int("items_produced", summary.ItemsProduced),
		slog.Int("skipped_existing", summary.SkippedExisting),
		slog.Int("errors", summary.Errors),
		slog.Duration("elapsed", summary.Elapsed))
}
