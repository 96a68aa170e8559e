package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ariahq/aria/pkg/models"
)

// Strategist turns research into an engagement plan. Critical effort:
// strategy errors are expensive to walk back.
type Strategist struct {
	base
}

// NewStrategist creates a strategist agent.
func NewStrategist(gateway Generator, logger *slog.Logger) *Strategist {
	return &Strategist{base{
		name:        "strategist",
		description: "Turns an account brief into a sequenced engagement strategy with next actions.",
		persona: "You are a sales strategist. You design engagement plans that are sequenced, " +
			"specific about who to contact and why, and grounded in the research you are given. " +
			"You flag assumptions explicitly.",
		effort:  models.EffortCritical,
		gateway: gateway,
		logger:  ensureLogger(logger),
	}}
}

func (s *Strategist) Name() string        { return s.name }
func (s *Strategist) Description() string { return s.description }

func (s *Strategist) ValidateInput(task Task) error {
	t, ok := task.(StrategistTask)
	if !ok {
		return wrongTaskError(s.name, task)
	}
	if t.Brief == "" {
		return fmt.Errorf("strategist task requires an account brief")
	}
	return nil
}

func (s *Strategist) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := s.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(StrategistTask)

	goal := t.Goal
	if goal == "" {
		goal = "advance the account toward a qualified opportunity"
	}
	prompt := fmt.Sprintf(
		"Given this account brief, design an engagement strategy to %s.\n\nBrief:\n%s\n\n"+
			"Produce: positioning angle, contact sequence with rationale, first three concrete actions, "+
			"and the assumptions the plan depends on.",
		goal, t.Brief)

	result, _, err := s.generate(ctx, task, prompt)
	return result, err
}
