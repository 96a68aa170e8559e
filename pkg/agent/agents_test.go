package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/pkg/llm"
	"github.com/ariahq/aria/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGenerator returns a scripted response and records the calls.
type fakeGenerator struct {
	resp    *llm.Response
	err     error
	calls   []*llm.Call
	efforts []models.Effort
}

func (g *fakeGenerator) Generate(ctx context.Context, call *llm.Call) (*llm.Response, error) {
	g.calls = append(g.calls, call)
	return g.resp, g.err
}

func (g *fakeGenerator) GenerateWithThinking(ctx context.Context, call *llm.Call, effort models.Effort) (*llm.Response, error) {
	g.calls = append(g.calls, call)
	g.efforts = append(g.efforts, effort)
	return g.resp, g.err
}

func TestScout_ParsesSignals(t *testing.T) {
	gen := &fakeGenerator{resp: &llm.Response{
		Text: "Here is what I found:\n```json\n" +
			`[{"headline": "Acme raises Series C", "summary": "120M round", "entity": "Acme", "relevance": 0.85}]` +
			"\n```",
		Usage: models.Usage{InputTokens: 100, OutputTokens: 50},
	}}
	scout := NewScout(gen, testLogger())

	result, err := scout.Execute(context.Background(), ScoutTask{
		UserID:      "u1",
		Competitors: []string{"Acme"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	signals, ok := result.Data["signals"].([]Signal)
	require.True(t, ok)
	require.Len(t, signals, 1)
	assert.Equal(t, "Acme raises Series C", signals[0].Headline)
	assert.InDelta(t, 0.85, signals[0].Relevance, 0.001)

	require.Len(t, gen.efforts, 1)
	assert.Equal(t, models.EffortRoutine, gen.efforts[0], "scans are routine effort")
}

func TestScout_UnparseableOutputIsEmptyScan(t *testing.T) {
	gen := &fakeGenerator{resp: &llm.Response{Text: "I could not find anything notable today."}}
	scout := NewScout(gen, testLogger())

	result, err := scout.Execute(context.Background(), ScoutTask{UserID: "u1", Entities: []string{"Acme"}})
	require.NoError(t, err)
	assert.True(t, result.Success)
	signals, _ := result.Data["signals"].([]Signal)
	assert.Empty(t, signals)
}

func TestScout_ValidatesInput(t *testing.T) {
	scout := NewScout(&fakeGenerator{}, testLogger())

	assert.Error(t, scout.ValidateInput(ScoutTask{UserID: "u1"}), "needs something to watch")
	assert.Error(t, scout.ValidateInput(AnalystTask{Account: "Acme"}), "wrong task type")
	assert.NoError(t, scout.ValidateInput(ScoutTask{UserID: "u1", Competitors: []string{"Acme"}}))
}

func TestVerifier_FailsClosedOnUnparseableOutput(t *testing.T) {
	gen := &fakeGenerator{resp: &llm.Response{Text: "it seems fine to me"}}
	verifier := NewVerifier(gen, testLogger())

	result, err := verifier.Execute(context.Background(), VerifierTask{
		UserID: "u1", Claim: "revenue doubled", Evidence: "quarterly report",
	})
	require.NoError(t, err)

	verdict, ok := result.Data["verdict"].(Verdict)
	require.True(t, ok)
	assert.False(t, verdict.Supported, "unparseable verdicts must fail closed")
}

func TestVerifier_ParsesVerdict(t *testing.T) {
	gen := &fakeGenerator{resp: &llm.Response{
		Text: `{"supported": true, "confidence": 0.9, "reasoning": "stated directly in the report"}`,
	}}
	verifier := NewVerifier(gen, testLogger())

	result, err := verifier.Execute(context.Background(), VerifierTask{
		UserID: "u1", Claim: "revenue doubled", Evidence: "quarterly report",
	})
	require.NoError(t, err)

	verdict := result.Data["verdict"].(Verdict)
	assert.True(t, verdict.Supported)
	assert.InDelta(t, 0.9, verdict.Confidence, 0.001)
}

func TestAgents_GatewayErrorBecomesFailedResult(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("vendor unavailable")}
	analyst := NewAnalyst(gen, testLogger())

	result, err := analyst.Execute(context.Background(), AnalystTask{UserID: "u1", Account: "Acme"})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "vendor unavailable")
}

// fakeBroker scripts integration action outcomes.
type fakeBroker struct {
	out map[string]interface{}
	err error
}

func (b *fakeBroker) ExecuteAction(ctx context.Context, userID, integration, action string, params map[string]interface{}) (map[string]interface{}, error) {
	return b.out, b.err
}

func TestOperator_ExecutesAction(t *testing.T) {
	broker := &fakeBroker{out: map[string]interface{}{"event_id": "ev-1"}}
	op := NewOperator(broker, testLogger())

	result, err := op.Execute(context.Background(), OperatorTask{
		UserID: "u1", Integration: "calendar", Action: "create_event",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "ev-1", result.Data["event_id"])
}

func TestOperator_BrokerFailureIsFailedResult(t *testing.T) {
	broker := &fakeBroker{err: errors.New("token expired")}
	op := NewOperator(broker, testLogger())

	result, err := op.Execute(context.Background(), OperatorTask{
		UserID: "u1", Integration: "crm", Action: "update_deal",
	})
	require.NoError(t, err, "action failures are reportable outcomes, not errors")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "token expired")
}

func TestParseJSONBlock(t *testing.T) {
	var arr []int
	require.NoError(t, parseJSONBlock("prefix [1,2,3] suffix", &arr))
	assert.Equal(t, []int{1, 2, 3}, arr)

	var obj map[string]string
	require.NoError(t, parseJSONBlock("```json\n{\"a\": \"b\"}\n```", &obj))
	assert.Equal(t, "b", obj["a"])

	assert.Error(t, parseJSONBlock("no json here", &obj))
}
