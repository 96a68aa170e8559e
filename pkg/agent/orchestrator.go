package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
)

// Assignment pairs an agent with the task it should run.
type Assignment struct {
	AgentName string
	Task      Task
}

// BatchResult aggregates the outcome of a multi-agent execution.
type BatchResult struct {
	// Results holds one entry per assignment, in assignment order.
	Results      []*Result
	AllSucceeded bool
	TotalUsage   models.Usage
	Elapsed      time.Duration
}

// Orchestrator spawns specialist agents and runs them with bounded
// concurrency and an aggregate token cap. One orchestrator instance scopes
// one logical mission; its token counter is not shared across instances.
type Orchestrator struct {
	registry map[string]Agent
	cfg      *config.OrchestratorConfig
	sem      *semaphore.Weighted
	logger   *slog.Logger

	mu         sync.Mutex
	usedTokens int
}

// NewOrchestrator creates an orchestrator over the given agents.
func NewOrchestrator(cfg *config.OrchestratorConfig, agents []Agent, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	registry := make(map[string]Agent, len(agents))
	for _, a := range agents {
		registry[a.Name()] = a
	}
	maxConcurrent := cfg.MaxConcurrentAgents
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Orchestrator{
		registry: registry,
		cfg:      cfg,
		sem:      semaphore.NewWeighted(int64(maxConcurrent)),
		logger:   logger,
	}
}

// Spawn looks up an agent by name.
func (o *Orchestrator) Spawn(name string) (Agent, error) {
	a, ok := o.registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent: %q", name)
	}
	return a, nil
}

// UsedTokens reports the aggregate tokens consumed by this orchestrator.
func (o *Orchestrator) UsedTokens() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.usedTokens
}

// SpawnAndExecute runs one task on the named agent. Validation failures
// return a failed Result without spending any tokens.
func (o *Orchestrator) SpawnAndExecute(ctx context.Context, name string, task Task) *Result {
	a, err := o.Spawn(name)
	if err != nil {
		return failedResult(name, task.Type(), 0, err)
	}
	if err := a.ValidateInput(task); err != nil {
		return failedResult(name, task.Type(), 0, fmt.Errorf("invalid input: %w", err))
	}
	return o.run(ctx, a, task)
}

// ExecuteParallel runs the assignments concurrently, at most
// MaxConcurrentAgents at a time. Siblings are isolated: one agent's
// failure or panic never cancels the others. An empty batch succeeds.
func (o *Orchestrator) ExecuteParallel(ctx context.Context, assignments []Assignment) *BatchResult {
	start := time.Now()
	results := make([]*Result, len(assignments))

	var wg sync.WaitGroup
	for i, asn := range assignments {
		wg.Add(1)
		go func(i int, asn Assignment) {
			defer wg.Done()
			if err := o.sem.Acquire(ctx, 1); err != nil {
				results[i] = failedResult(asn.AgentName, asn.Task.Type(), 0, err)
				return
			}
			defer o.sem.Release(1)
			results[i] = o.SpawnAndExecute(ctx, asn.AgentName, asn.Task)
		}(i, asn)
	}
	wg.Wait()

	return o.summarize(results, time.Since(start))
}

// ExecuteSequential runs the assignments in order. Failures do not stop
// later assignments; callers needing abort-on-failure use a Workflow.
func (o *Orchestrator) ExecuteSequential(ctx context.Context, assignments []Assignment) *BatchResult {
	start := time.Now()
	results := make([]*Result, 0, len(assignments))
	for _, asn := range assignments {
		results = append(results, o.SpawnAndExecute(ctx, asn.AgentName, asn.Task))
	}
	return o.summarize(results, time.Since(start))
}

// run executes one validated task with panic containment and token-cap
// accounting.
func (o *Orchestrator) run(ctx context.Context, a Agent, task Task) (result *Result) {
	if !o.admitTokens() {
		return failedResult(a.Name(), task.Type(), 0,
			fmt.Errorf("orchestrator token cap %d reached", o.cfg.MaxTokens))
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("agent panicked",
				slog.String("agent", a.Name()),
				slog.String("task_type", task.Type()),
				slog.Any("panic", r))
			result = failedResult(a.Name(), task.Type(), time.Since(start), fmt.Errorf("agent panic: %v", r))
		}
	}()

	res, err := a.Execute(ctx, task)
	if err != nil {
		if res != nil {
			o.chargeTokens(res.Usage.Total())
			return res
		}
		return failedResult(a.Name(), task.Type(), time.Since(start), err)
	}
	o.chargeTokens(res.Usage.Total())
	return res
}

func (o *Orchestrator) admitTokens() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cfg.MaxTokens <= 0 || o.usedTokens < o.cfg.MaxTokens
}

func (o *Orchestrator) chargeTokens(n int) {
	o.mu.Lock()
	o.usedTokens += n
	o.mu.Unlock()
}

func (o *Orchestrator) summarize(results []*Result, elapsed time.Duration) *BatchResult {
	batch := &BatchResult{
		Results:      results,
		AllSucceeded: true,
		Elapsed:      elapsed,
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		if !r.Success {
			batch.AllSucceeded = false
		}
		batch.TotalUsage = batch.TotalUsage.Add(r.Usage)
	}
	return batch
}
