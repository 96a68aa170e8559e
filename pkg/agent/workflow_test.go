package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStub(user string) func(map[string]interface{}) Task {
	return func(map[string]interface{}) Task { return stubTask{user: user} }
}

func TestRunWorkflow_CompletesAndAccumulatesPayload(t *testing.T) {
	research := &stubAgent{name: "research", execute: func(ctx context.Context, task Task) (*Result, error) {
		return &Result{AgentName: "research", TaskType: task.Type(), Success: true, Output: "the brief"}, nil
	}}
	var sawBrief string
	write := &stubAgent{name: "write"}
	o := testOrchestrator(research, write)

	wf := Workflow{
		Name: "brief-then-write",
		Steps: []Step{
			{Name: "brief", AgentName: "research", BuildTask: buildStub("u1")},
			{Name: "draft", AgentName: "write", BuildTask: func(payload map[string]interface{}) Task {
				sawBrief, _ = payload["brief"].(string)
				return stubTask{user: "u1"}
			}},
		},
	}

	out := o.RunWorkflow(context.Background(), wf, nil, nil)
	assert.True(t, out.Completed)
	assert.Equal(t, -1, out.StoppedAtApproval)
	require.Len(t, out.StepResults, 2)
	assert.Equal(t, "the brief", sawBrief, "later steps see earlier outputs")
}

func TestRunWorkflow_AbortStopsPipeline(t *testing.T) {
	failing := &stubAgent{name: "failing", execute: func(ctx context.Context, task Task) (*Result, error) {
		return nil, errors.New("boom")
	}}
	never := &stubAgent{name: "never"}
	o := testOrchestrator(failing, never)

	wf := Workflow{Steps: []Step{
		{Name: "first", AgentName: "failing", OnFailure: FailureAbort, BuildTask: buildStub("u1")},
		{Name: "second", AgentName: "never", BuildTask: buildStub("u1")},
	}}

	out := o.RunWorkflow(context.Background(), wf, nil, nil)
	assert.False(t, out.Completed)
	assert.Len(t, out.StepResults, 1)
	assert.Equal(t, int32(0), never.executions.Load())
}

func TestRunWorkflow_SkipContinuesPipeline(t *testing.T) {
	failing := &stubAgent{name: "failing", execute: func(ctx context.Context, task Task) (*Result, error) {
		return nil, errors.New("boom")
	}}
	after := &stubAgent{name: "after"}
	o := testOrchestrator(failing, after)

	wf := Workflow{Steps: []Step{
		{Name: "first", AgentName: "failing", OnFailure: FailureSkip, BuildTask: buildStub("u1")},
		{Name: "second", AgentName: "after", BuildTask: buildStub("u1")},
	}}

	out := o.RunWorkflow(context.Background(), wf, nil, nil)
	assert.True(t, out.Completed)
	require.Len(t, out.StepResults, 2)
	assert.False(t, out.StepResults[0].Success)
	assert.True(t, out.StepResults[1].Success)
}

func TestRunWorkflow_ApprovalGate(t *testing.T) {
	acting := &stubAgent{name: "acting"}
	o := testOrchestrator(acting)

	wf := Workflow{Steps: []Step{
		{Name: "send", AgentName: "acting", RequiresApproval: true, BuildTask: buildStub("u1")},
	}}

	// Denied.
	out := o.RunWorkflow(context.Background(), wf, nil,
		func(ctx context.Context, step Step, payload map[string]interface{}) (bool, error) {
			return false, nil
		})
	assert.False(t, out.Completed)
	assert.Equal(t, 0, out.StoppedAtApproval)
	assert.Equal(t, int32(0), acting.executions.Load())

	// No callback wired counts as denied.
	out = o.RunWorkflow(context.Background(), wf, nil, nil)
	assert.Equal(t, 0, out.StoppedAtApproval)

	// Approved.
	out = o.RunWorkflow(context.Background(), wf, nil,
		func(ctx context.Context, step Step, payload map[string]interface{}) (bool, error) {
			return true, nil
		})
	assert.True(t, out.Completed)
	assert.Equal(t, int32(1), acting.executions.Load())
}
