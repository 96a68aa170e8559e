package agent

import (
	"context"
	"log/slog"
)

// FailurePolicy controls what a workflow does when a step fails.
type FailurePolicy string

const (
	// FailureAbort stops the workflow at the failed step.
	FailureAbort FailurePolicy = "abort"
	// FailureSkip records the failure and moves to the next step.
	FailureSkip FailurePolicy = "skip"
)

// Step is one stage of a workflow.
type Step struct {
	Name      string
	AgentName string
	OnFailure FailurePolicy

	// RequiresApproval gates the step behind the approval callback. The
	// workflow stops before an unapproved step.
	RequiresApproval bool

	// BuildTask constructs the step's task from the accumulated payload,
	// letting later steps consume earlier outputs.
	BuildTask func(payload map[string]interface{}) Task
}

// ApprovalFunc decides whether a gated step may run. Called once per gated
// step with the payload accumulated so far.
type ApprovalFunc func(ctx context.Context, step Step, payload map[string]interface{}) (bool, error)

// Workflow is an ordered multi-agent pipeline.
type Workflow struct {
	Name  string
	Steps []Step
}

// WorkflowResult is the outcome of a workflow run.
type WorkflowResult struct {
	// StepResults holds one entry per executed step; skipped-over steps
	// after an abort are absent.
	StepResults []*Result

	// Completed is true when every step ran (failures under skip policy
	// included).
	Completed bool

	// StoppedAtApproval is the index of the step whose approval was
	// denied or unavailable, -1 otherwise.
	StoppedAtApproval int

	// Payload is the accumulated cross-step state at the point the
	// workflow ended.
	Payload map[string]interface{}
}

// RunWorkflow executes the workflow's steps in order. Each successful
// step's output lands in the payload under the step name, so later steps
// can build on it.
func (o *Orchestrator) RunWorkflow(ctx context.Context, wf Workflow, initial map[string]interface{}, approve ApprovalFunc) *WorkflowResult {
	payload := make(map[string]interface{}, len(initial))
	for k, v := range initial {
		payload[k] = v
	}

	out := &WorkflowResult{StoppedAtApproval: -1, Payload: payload}

	for i, step := range wf.Steps {
		if step.RequiresApproval {
			approved := false
			if approve != nil {
				ok, err := approve(ctx, step, payload)
				if err != nil {
					o.logger.Error("workflow approval callback failed",
						slog.String("workflow", wf.Name),
						slog.String("step", step.Name),
						slog.String("error", err.Error()))
				}
				approved = err == nil && ok
			}
			if !approved {
				out.StoppedAtApproval = i
				return out
			}
		}

		result := o.SpawnAndExecute(ctx, step.AgentName, step.BuildTask(payload))
		out.StepResults = append(out.StepResults, result)

		if !result.Success {
			if step.OnFailure == FailureSkip {
				o.logger.Warn("workflow step failed, skipping",
					slog.String("workflow", wf.Name),
					slog.String("step", step.Name),
					slog.String("error", result.Error))
				continue
			}
			o.logger.Warn("workflow aborted at failed step",
				slog.String("workflow", wf.Name),
				slog.String("step", step.Name),
				slog.String("error", result.Error))
			return out
		}

		payload[step.Name] = result.Output
		for k, v := range result.Data {
			payload[k] = v
		}
	}

	out.Completed = true
	return out
}
