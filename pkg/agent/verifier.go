package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ariahq/aria/pkg/models"
)

// Verdict is the verifier's structured judgement on a claim.
type Verdict struct {
	Supported  bool    `json:"supported"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Verifier checks claims against evidence before they reach the user.
// Complex effort: verification is the last line against hallucinated facts.
type Verifier struct {
	base
}

// NewVerifier creates a verifier agent.
func NewVerifier(gateway Generator, logger *slog.Logger) *Verifier {
	return &Verifier{base{
		name:        "verifier",
		description: "Checks whether a claim is supported by the provided evidence.",
		persona: "You are a fact verifier. You judge strictly from the evidence provided, " +
			"never from background knowledge. Unsupported means unsupported, even when plausible.",
		effort:  models.EffortComplex,
		gateway: gateway,
		logger:  ensureLogger(logger),
	}}
}

func (v *Verifier) Name() string        { return v.name }
func (v *Verifier) Description() string { return v.description }

func (v *Verifier) ValidateInput(task Task) error {
	t, ok := task.(VerifierTask)
	if !ok {
		return wrongTaskError(v.name, task)
	}
	if t.Claim == "" {
		return fmt.Errorf("verifier task requires a claim")
	}
	if t.Evidence == "" {
		return fmt.Errorf("verifier task requires evidence")
	}
	return nil
}

// Execute returns the verdict under Data["verdict"]. Unparseable model
// output fails closed: the claim is reported unsupported.
func (v *Verifier) Execute(ctx context.Context, task Task) (*Result, error) {
	if err := v.ValidateInput(task); err != nil {
		return nil, err
	}
	t := task.(VerifierTask)

	prompt := fmt.Sprintf(
		"Claim:\n%s\n\nEvidence:\n%s\n\n"+
			`Judge whether the evidence supports the claim. Return JSON: {"supported": bool, "confidence": number 0..1, "reasoning": string}.`,
		t.Claim, t.Evidence)

	result, resp, err := v.generate(ctx, task, prompt)
	if err != nil {
		return result, err
	}

	var verdict Verdict
	if perr := parseJSONBlock(resp.Text, &verdict); perr != nil {
		v.logger.Warn("verifier output was not parseable, failing closed",
			slog.String("error", perr.Error()))
		verdict = Verdict{Supported: false, Confidence: 0, Reasoning: "verifier output unparseable"}
	}

	result.Data = map[string]interface{}{"verdict": verdict}
	return result, nil
}
