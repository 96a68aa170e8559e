package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ariahq/aria/pkg/models"
)

// Scribe drafts outbound messages in the user's writing style. Routine
// effort: drafts are reviewed by the user before sending.
type Scribe struct {
	base
}

// NewScribe creates a scribe agent.
func NewScribe(gateway Generator, logger *slog.Logger) *Scribe {
	return &Scribe{base{
		name:        "scribe",
		description: "Drafts emails and messages matching the user's writing style fingerprint.",
		persona: "You are a writing assistant that drafts outbound messages for a sales professional. " +
			"You match the user's voice precisely when a style fingerprint is provided, " +
			"and default to concise professional prose otherwise. Drafts only; never claim a message was sent.",
		effort:  models.EffortRoutine,
		gateway: gateway,
		logger:  ensureLogger(logger),
	}}
}

func (s *Scribe) Name() string        { return s.name }
func (s *Scribe) Description() string { return s.description }

func (s *Scribe) ValidateInput(task Task) error {
	t, ok := task.(ScribeTask)
	if !ok {
		return wrongTaskError(s.name, task)
	}
	if t.Purpose == "" {
		return fmt.Errorf("scribe task requires a purpose")
	}
	return nil
}

func (s *Scribe) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := s.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(ScribeTask)

	prompt := fmt.Sprintf("Draft a message.\nPurpose: %s\n", t.Purpose)
	if t.Recipient != "" {
		prompt += fmt.Sprintf("Recipient: %s\n", t.Recipient)
	}
	if t.Material != "" {
		prompt += fmt.Sprintf("\nDraw on this material:\n%s\n", t.Material)
	}
	if len(t.StyleFingerprint) > 0 {
		style, err := json.Marshal(t.StyleFingerprint)
		if err == nil {
			prompt += fmt.Sprintf("\nMatch this writing style fingerprint:\n%s\n", style)
		}
	}
	prompt += "\nReturn only the draft, subject line first if it is an email."

	result, _, err := s.generate(ctx, task, prompt)
	return result, err
}
