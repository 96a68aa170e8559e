package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ActionBroker executes actions against connected third-party
// integrations. Implemented by integrations.Broker.
type ActionBroker interface {
	ExecuteAction(ctx context.Context, userID, integration, action string, params map[string]interface{}) (map[string]interface{}, error)
}

// Operator executes side-effecting actions on external systems through the
// integrations broker. It spends no tokens itself; its value is uniform
// validation, timing, and result shaping.
type Operator struct {
	name        string
	description string
	broker      ActionBroker
	logger      *slog.Logger
}

// NewOperator creates an operator agent.
func NewOperator(broker ActionBroker, logger *slog.Logger) *Operator {
	return &Operator{
		name:        "operator",
		description: "Executes actions on connected integrations: CRM updates, calendar events, sent messages.",
		broker:      broker,
		logger:      ensureLogger(logger),
	}
}

func (o *Operator) Name() string        { return o.name }
func (o *Operator) Description() string { return o.description }

func (o *Operator) ValidateInput(task Task) error {
	t, ok := task.(OperatorTask)
	if !ok {
		return wrongTaskError(o.name, task)
	}
	if t.UserID == "" {
		return fmt.Errorf("operator task requires a user")
	}
	if t.Integration == "" || t.Action == "" {
		return fmt.Errorf("operator task requires an integration and an action")
	}
	return nil
}

// Execute runs the action through the broker. Broker failures become a
// failed Result, not an error: action outcomes are reportable either way.
func (o *Operator) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := o.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(OperatorTask)

	start := time.Now()
	out, err := o.broker.ExecuteAction(ctx, t.UserID, t.Integration, t.Action, t.Params)
	elapsed := time.Since(start)
	if err != nil {
		o.logger.Error("integration action failed",
			slog.String("user_id", t.UserID),
			slog.String("integration", t.Integration),
			slog.String("action", t.Action),
			slog.String("error", err.Error()))
		return failedResult(o.name, t.Type(), elapsed, err), nil
	}

	return &Result{
		AgentName: o.name,
		TaskType:  t.Type(),
		Success:   true,
		Output:    fmt.Sprintf("%s.%s completed", t.Integration, t.Action),
		Data:      out,
		Elapsed:   elapsed,
	}, nil
}
