package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ariahq/aria/pkg/models"
)

// Analyst produces research briefs on accounts. Complex effort: briefs
// synthesize multiple angles and feed strategist decisions.
type Analyst struct {
	base
}

// NewAnalyst creates an analyst agent.
func NewAnalyst(gateway Generator, logger *slog.Logger) *Analyst {
	return &Analyst{base{
		name:        "analyst",
		description: "Researches an account and produces a structured brief: firmographics, situation, risks, openings.",
		persona: "You are an account research analyst supporting an enterprise seller. " +
			"Your briefs are structured, sourced where possible, and honest about unknowns.",
		effort:  models.EffortComplex,
		gateway: gateway,
		logger:  ensureLogger(logger),
	}}
}

func (a *Analyst) Name() string        { return a.name }
func (a *Analyst) Description() string { return a.description }

func (a *Analyst) ValidateInput(task Task) error {
	t, ok := task.(AnalystTask)
	if !ok {
		return wrongTaskError(a.name, task)
	}
	if t.Account == "" {
		return fmt.Errorf("analyst task requires an account name")
	}
	return nil
}

func (a *Analyst) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := a.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(AnalystTask)

	prompt := fmt.Sprintf("Produce a research brief on the account %q.\n", t.Account)
	if t.Context != "" {
		prompt += fmt.Sprintf("\nKnown context:\n%s\n", t.Context)
	}
	prompt += "\nCover: company overview, current situation, buying signals, risks, and suggested openings. Be concrete."

	result, _, err := a.generate(ctx, task, prompt)
	return result, err
}
