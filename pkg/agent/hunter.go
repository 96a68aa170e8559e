package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ariahq/aria/pkg/models"
)

// Lead is one prospect the hunter surfaced.
type Lead struct {
	Company   string  `json:"company"`
	Contact   string  `json:"contact,omitempty"`
	Rationale string  `json:"rationale"`
	Fit       float64 `json:"fit"`
}

// Hunter discovers new leads matching an ideal-customer profile. Complex
// effort: discovery quality depends on real reasoning over the profile.
type Hunter struct {
	base
}

// NewHunter creates a hunter agent.
func NewHunter(gateway Generator, logger *slog.Logger) *Hunter {
	return &Hunter{base{
		name:        "hunter",
		description: "Discovers new prospects matching the user's ideal customer profile.",
		persona: "You are a prospecting specialist. You propose companies that genuinely match " +
			"the profile, each with a concrete rationale. Quality over quantity.",
		effort:  models.EffortComplex,
		gateway: gateway,
		logger:  ensureLogger(logger),
	}}
}

func (h *Hunter) Name() string        { return h.name }
func (h *Hunter) Description() string { return h.description }

func (h *Hunter) ValidateInput(task Task) error {
	t, ok := task.(HunterTask)
	if !ok {
		return wrongTaskError(h.name, task)
	}
	if t.Profile == "" {
		return fmt.Errorf("hunter task requires an ideal customer profile")
	}
	return nil
}

// Execute returns discovered leads under Data["leads"].
func (h *Hunter) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := h.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(HunterTask)

	prompt := fmt.Sprintf("Find prospects matching this ideal customer profile:\n%s\n", t.Profile)
	if t.Territory != "" {
		prompt += fmt.Sprintf("Territory: %s\n", t.Territory)
	}
	prompt += `
Return a JSON array of leads: {"company": string, "contact": string, "rationale": string, "fit": number 0..1}. Return [] when nothing fits well.`

	result, resp, err := h.generate(ctx, task, prompt)
	if err != nil {
		return result, err
	}

	var leads []Lead
	if perr := parseJSONBlock(resp.Text, &leads); perr != nil {
		h.logger.Warn("hunter output was not parseable, treating as empty discovery",
			slog.String("error", perr.Error()))
		leads = nil
	}

	result.Data = map[string]interface{}{"leads": leads}
	return result, nil
}
