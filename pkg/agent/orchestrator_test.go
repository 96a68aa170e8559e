package agent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
)

type stubTask struct {
	user string
	kind string
}

func (t stubTask) Type() string {
	if t.kind != "" {
		return t.kind
	}
	return "stub"
}
func (t stubTask) User() string { return t.user }

// stubAgent lets tests script validation and execution behavior.
type stubAgent struct {
	name        string
	validateErr error
	execute     func(ctx context.Context, task Task) (*Result, error)
	executions  atomic.Int32
}

func (a *stubAgent) Name() string                  { return a.name }
func (a *stubAgent) Description() string           { return "stub" }
func (a *stubAgent) ValidateInput(task Task) error { return a.validateErr }

func (a *stubAgent) Execute(ctx context.Context, task Task) (*Result, error) {
	a.executions.Add(1)
	if a.execute != nil {
		return a.execute(ctx, task)
	}
	return &Result{AgentName: a.name, TaskType: task.Type(), Success: true, Output: "done"}, nil
}

func testOrchestrator(agents ...Agent) *Orchestrator {
	return NewOrchestrator(config.DefaultOrchestratorConfig(), agents, nil)
}

func TestOrchestrator_SpawnUnknownAgent(t *testing.T) {
	o := testOrchestrator()
	_, err := o.Spawn("nobody")
	assert.Error(t, err)
}

func TestOrchestrator_SpawnAndExecute_ValidatesFirst(t *testing.T) {
	a := &stubAgent{name: "picky", validateErr: errors.New("missing field")}
	o := testOrchestrator(a)

	result := o.SpawnAndExecute(context.Background(), "picky", stubTask{user: "u1"})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid input")
	assert.Equal(t, int32(0), a.executions.Load(), "invalid input must not execute")
}

func TestOrchestrator_ExecuteParallel_SiblingIsolation(t *testing.T) {
	good := &stubAgent{name: "good"}
	bad := &stubAgent{name: "bad", execute: func(ctx context.Context, task Task) (*Result, error) {
		return nil, errors.New("boom")
	}}
	o := testOrchestrator(good, bad)

	batch := o.ExecuteParallel(context.Background(), []Assignment{
		{AgentName: "good", Task: stubTask{user: "u1"}},
		{AgentName: "bad", Task: stubTask{user: "u1"}},
		{AgentName: "good", Task: stubTask{user: "u1"}},
	})

	require.Len(t, batch.Results, 3)
	assert.False(t, batch.AllSucceeded)
	assert.True(t, batch.Results[0].Success)
	assert.False(t, batch.Results[1].Success)
	assert.True(t, batch.Results[2].Success, "sibling failure must not cancel others")
}

func TestOrchestrator_ExecuteParallel_PanicBecomesFailedResult(t *testing.T) {
	panicky := &stubAgent{name: "panicky", execute: func(ctx context.Context, task Task) (*Result, error) {
		panic("wild pointer")
	}}
	o := testOrchestrator(panicky)

	batch := o.ExecuteParallel(context.Background(), []Assignment{
		{AgentName: "panicky", Task: stubTask{user: "u1"}},
	})

	require.Len(t, batch.Results, 1)
	assert.False(t, batch.Results[0].Success)
	assert.Contains(t, batch.Results[0].Error, "panic")
}

func TestOrchestrator_ExecuteParallel_EmptyBatchSucceeds(t *testing.T) {
	o := testOrchestrator()
	batch := o.ExecuteParallel(context.Background(), nil)
	assert.True(t, batch.AllSucceeded)
	assert.Empty(t, batch.Results)
}

func TestOrchestrator_ExecuteParallel_BoundedConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	slow := &stubAgent{name: "slow", execute: func(ctx context.Context, task Task) (*Result, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		return &Result{AgentName: "slow", TaskType: task.Type(), Success: true}, nil
	}}

	cfg := &config.OrchestratorConfig{MaxTokens: 0, MaxConcurrentAgents: 2}
	o := NewOrchestrator(cfg, []Agent{slow}, nil)

	assignments := make([]Assignment, 6)
	for i := range assignments {
		assignments[i] = Assignment{AgentName: "slow", Task: stubTask{user: "u1"}}
	}
	batch := o.ExecuteParallel(context.Background(), assignments)

	assert.True(t, batch.AllSucceeded)
	assert.LessOrEqual(t, peak.Load(), int32(2), "concurrency must stay under the cap")
}

func TestOrchestrator_TokenCapStopsFurtherWork(t *testing.T) {
	hungry := &stubAgent{name: "hungry", execute: func(ctx context.Context, task Task) (*Result, error) {
		return &Result{
			AgentName: "hungry", TaskType: task.Type(), Success: true,
			Usage: models.Usage{InputTokens: 600, OutputTokens: 0},
		}, nil
	}}
	cfg := &config.OrchestratorConfig{MaxTokens: 1000, MaxConcurrentAgents: 1}
	o := NewOrchestrator(cfg, []Agent{hungry}, nil)

	first := o.SpawnAndExecute(context.Background(), "hungry", stubTask{user: "u1"})
	assert.True(t, first.Success)

	second := o.SpawnAndExecute(context.Background(), "hungry", stubTask{user: "u1"})
	assert.True(t, second.Success, "cap not yet reached before second call")

	third := o.SpawnAndExecute(context.Background(), "hungry", stubTask{user: "u1"})
	assert.False(t, third.Success)
	assert.Contains(t, third.Error, "token cap")
	assert.Equal(t, 1200, o.UsedTokens())
}

func TestOrchestrator_ExecuteSequential_Aggregates(t *testing.T) {
	a := &stubAgent{name: "a", execute: func(ctx context.Context, task Task) (*Result, error) {
		return &Result{AgentName: "a", TaskType: task.Type(), Success: true, Usage: models.Usage{InputTokens: 10}}, nil
	}}
	b := &stubAgent{name: "b", execute: func(ctx context.Context, task Task) (*Result, error) {
		return &Result{AgentName: "b", TaskType: task.Type(), Success: true, Usage: models.Usage{OutputTokens: 5}}, nil
	}}
	o := testOrchestrator(a, b)

	batch := o.ExecuteSequential(context.Background(), []Assignment{
		{AgentName: "a", Task: stubTask{user: "u1"}},
		{AgentName: "b", Task: stubTask{user: "u1"}},
	})

	assert.True(t, batch.AllSucceeded)
	assert.Equal(t, 15, batch.TotalUsage.Total())
}
