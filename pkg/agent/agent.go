package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ariahq/aria/pkg/llm"
	"github.com/ariahq/aria/pkg/models"
)

// Generator is the gateway surface agents call. Implemented by llm.Gateway.
type Generator interface {
	Generate(ctx context.Context, call *llm.Call) (*llm.Response, error)
	GenerateWithThinking(ctx context.Context, call *llm.Call, effort models.Effort) (*llm.Response, error)
}

// Agent is one specialist worker the orchestrator spawns.
type Agent interface {
	Name() string
	Description() string
	// ValidateInput rejects tasks of the wrong type or with missing fields
	// before any tokens are spent.
	ValidateInput(task Task) error
	Execute(ctx context.Context, task Task) (*Result, error)
}

// Result is the outcome of one agent execution. Failed executions still
// produce a Result so parallel batches can aggregate partial success.
type Result struct {
	AgentName string
	TaskType  string
	Success   bool
	Output    string
	// Data carries structured output parsed from the model response.
	Data    map[string]interface{}
	Error   string
	Usage   models.Usage
	Elapsed time.Duration
}

// failedResult builds a Result for an execution that produced no output.
func failedResult(agentName, taskType string, elapsed time.Duration, err error) *Result {
	return &Result{
		AgentName: agentName,
		TaskType:  taskType,
		Elapsed:   elapsed,
		Error:     err.Error(),
	}
}

// base carries the plumbing every concrete agent shares: gateway access,
// persona preamble, effort level, and logging.
type base struct {
	name        string
	description string
	persona     string
	effort      models.Effort
	gateway     Generator
	logger      *slog.Logger
}

// generate runs one persona-framed call through the gateway and wraps the
// response into a Result.
func (b *base) generate(ctx context.Context, task Task, prompt string) (*Result, *llm.Response, error) {
	start := time.Now()
	call := &llm.Call{
		UserID:   task.User(),
		AgentID:  b.name,
		TaskType: task.Type(),
		System:   b.persona,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	}

	resp, err := b.gateway.GenerateWithThinking(ctx, call, b.effort)
	elapsed := time.Since(start)
	if err != nil {
		b.logger.Error("agent execution failed",
			slog.String("agent", b.name),
			slog.String("task_type", task.Type()),
			slog.String("error", err.Error()))
		return failedResult(b.name, task.Type(), elapsed, err), nil, err
	}

	return &Result{
		AgentName: b.name,
		TaskType:  task.Type(),
		Success:   true,
		Output:    resp.Text,
		Usage:     resp.Usage,
		Elapsed:   elapsed,
	}, resp, nil
}

// ensureLogger guards against nil loggers in agent constructors.
func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// wrongTaskError is the uniform ValidateInput failure for a task of the
// wrong concrete type.
func wrongTaskError(agentName string, task Task) error {
	return fmt.Errorf("agent %s cannot handle task type %q", agentName, task.Type())
}

// parseJSONBlock extracts the first JSON object or array from model output,
// tolerating surrounding prose and markdown fences.
func parseJSONBlock(text string, v interface{}) error {
	cleaned := strings.TrimSpace(text)
	if i := strings.Index(cleaned, "```"); i >= 0 {
		cleaned = cleaned[i+3:]
		cleaned = strings.TrimPrefix(cleaned, "json")
		if j := strings.Index(cleaned, "```"); j >= 0 {
			cleaned = cleaned[:j]
		}
	}
	start := strings.IndexAny(cleaned, "[{")
	if start < 0 {
		return fmt.Errorf("no JSON found in model output")
	}
	end := strings.LastIndexAny(cleaned, "]}")
	if end < start {
		return fmt.Errorf("unterminated JSON in model output")
	}
	return json.Unmarshal([]byte(cleaned[start:end+1]), v)
}
