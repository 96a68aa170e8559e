package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ariahq/aria/pkg/models"
)

// Signal is one market development the scout surfaced.
type Signal struct {
	Headline  string   `json:"headline"`
	Summary   string   `json:"summary"`
	Entity    string   `json:"entity"`
	Relevance float64  `json:"relevance"`
	Link      string   `json:"link,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}

// Scout scans for market signals about tracked competitors and account
// entities. Routine effort: scans run every 15 minutes across the fleet.
type Scout struct {
	base
}

// NewScout creates a scout agent.
func NewScout(gateway Generator, logger *slog.Logger) *Scout {
	return &Scout{base{
		name:        "scout",
		description: "Scans news and market activity for signals about tracked competitors and accounts.",
		persona: "You are a market intelligence scout for a sales professional. " +
			"You surface concrete, recent developments: funding rounds, leadership changes, " +
			"product launches, layoffs, partnerships. You never speculate and you never " +
			"report stale news as new.",
		effort:  models.EffortRoutine,
		gateway: gateway,
		logger:  ensureLogger(logger),
	}}
}

func (s *Scout) Name() string        { return s.name }
func (s *Scout) Description() string { return s.description }

// ValidateInput requires a ScoutTask with at least one entity to watch.
func (s *Scout) ValidateInput(task Task) error {
	t, ok := task.(ScoutTask)
	if !ok {
		return wrongTaskError(s.name, task)
	}
	if t.UserID == "" {
		return fmt.Errorf("scout task requires a user")
	}
	if len(t.Competitors) == 0 && len(t.Entities) == 0 {
		return fmt.Errorf("scout task requires at least one competitor or entity")
	}
	return nil
}

// Execute scans for signals and returns them under Data["signals"].
func (s *Scout) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := s.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(ScoutTask)

	watched := append(append([]string{}, t.Competitors...), t.Entities...)
	prompt := fmt.Sprintf(
		"Scan for significant recent market developments about these organizations: %s.\n\n"+
			"Return a JSON array of signals. Each signal: "+
			`{"headline": string, "summary": string, "entity": string, "relevance": number 0..1, "link": string}. `+
			"Relevance reflects how actionable the development is for a seller working these accounts. "+
			"Return [] if nothing significant happened.",
		strings.Join(watched, ", "))

	result, resp, err := s.generate(ctx, task, prompt)
	if err != nil {
		return result, err
	}

	var signals []Signal
	if perr := parseJSONBlock(resp.Text, &signals); perr != nil {
		s.logger.Warn("scout output was not parseable, treating as empty scan",
			slog.String("error", perr.Error()))
		signals = nil
	}

	result.Data = map[string]interface{}{"signals": signals}
	return result, nil
}
