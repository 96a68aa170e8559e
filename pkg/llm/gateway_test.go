package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
)

// fakeVendor scripts Complete responses per attempt and records what the
// gateway asked for.
type fakeVendor struct {
	mu              sync.Mutex
	completeCalls   int
	thinkingBudgets []int
	errs            []error
	resp            *Response

	streamChunks []StreamChunk
	streamErr    error
	streamCalls  int
}

func (v *fakeVendor) Complete(ctx context.Context, call *Call, thinkingBudget int) (*Response, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	idx := v.completeCalls
	v.completeCalls++
	v.thinkingBudgets = append(v.thinkingBudgets, thinkingBudget)
	if idx < len(v.errs) && v.errs[idx] != nil {
		return nil, v.errs[idx]
	}
	if v.resp != nil {
		return v.resp, nil
	}
	return &Response{Text: "ok", Usage: models.Usage{InputTokens: 10, OutputTokens: 20}}, nil
}

func (v *fakeVendor) Stream(ctx context.Context, call *Call) (<-chan StreamChunk, error) {
	v.mu.Lock()
	v.streamCalls++
	err := v.streamErr
	chunks := v.streamChunks
	v.mu.Unlock()
	if err != nil {
		return nil, err
	}
	ch := make(chan StreamChunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

// fakeGovernor scripts budget status and captures recorded usage.
type fakeGovernor struct {
	mu       sync.Mutex
	status   models.BudgetStatus
	recorded []models.Usage
}

func (g *fakeGovernor) CheckBudget(ctx context.Context, userID string) (models.BudgetStatus, error) {
	return g.status, nil
}

func (g *fakeGovernor) ThinkingBudget(status models.BudgetStatus, effort models.Effort) (models.Effort, int) {
	if status.ShouldReduceEffort {
		switch effort {
		case models.EffortCritical:
			effort = models.EffortComplex
		case models.EffortComplex:
			effort = models.EffortRoutine
		}
	}
	return effort, effort.ThinkingTokens()
}

func (g *fakeGovernor) RecordUsage(ctx context.Context, userID string, usage models.Usage) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.recorded = append(g.recorded, usage)
}

func allowAll() *fakeGovernor {
	return &fakeGovernor{status: models.BudgetStatus{CanProceed: true, TokensRemaining: 1_000_000, ThinkingTokensRemaining: 200_000}}
}

func testGatewayConfig() *config.GatewayConfig {
	cfg := config.DefaultGatewayConfig()
	cfg.RetryBaseDelay = time.Millisecond
	cfg.GenerateTimeout = time.Second
	cfg.ThinkingTimeout = time.Second
	return cfg
}

func TestGateway_Generate_RecordsUsage(t *testing.T) {
	vendor := &fakeVendor{}
	gov := allowAll()
	gw := NewGateway(vendor, gov, testGatewayConfig(), nil)

	resp, err := gw.Generate(context.Background(), &Call{UserID: "user-1", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	require.Len(t, gov.recorded, 1)
	assert.Equal(t, 10, gov.recorded[0].InputTokens)
	assert.Equal(t, 1, vendor.completeCalls)
}

func TestGateway_Generate_BudgetExceededFailsFast(t *testing.T) {
	vendor := &fakeVendor{}
	gov := &fakeGovernor{status: models.BudgetStatus{CanProceed: false}}
	gw := NewGateway(vendor, gov, testGatewayConfig(), nil)

	_, err := gw.Generate(context.Background(), &Call{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 0, vendor.completeCalls, "vendor must not be called when over budget")
}

func TestGateway_Generate_EmptyUserSkipsGovernor(t *testing.T) {
	vendor := &fakeVendor{}
	gov := &fakeGovernor{status: models.BudgetStatus{CanProceed: false}}
	gw := NewGateway(vendor, gov, testGatewayConfig(), nil)

	_, err := gw.Generate(context.Background(), &Call{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	assert.NoError(t, err, "system calls without a user bypass enforcement")
}

func TestGateway_Generate_RetriesTransientErrors(t *testing.T) {
	vendor := &fakeVendor{errs: []error{markTransient(errors.New("503")), markTransient(errors.New("503"))}}
	gw := NewGateway(vendor, allowAll(), testGatewayConfig(), nil)

	resp, err := gw.Generate(context.Background(), &Call{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, vendor.completeCalls)
}

func TestGateway_Generate_NoRetryOnNonTransient(t *testing.T) {
	vendor := &fakeVendor{errs: []error{errors.New("400 invalid request")}}
	gw := NewGateway(vendor, allowAll(), testGatewayConfig(), nil)

	_, err := gw.Generate(context.Background(), &Call{UserID: "user-1"})
	require.Error(t, err)
	assert.Equal(t, 1, vendor.completeCalls, "client errors must not be retried")
}

func TestGateway_Generate_RetriesCapped(t *testing.T) {
	transient := markTransient(errors.New("timeout"))
	vendor := &fakeVendor{errs: []error{transient, transient, transient, transient}}
	cfg := testGatewayConfig()
	cfg.MaxAttempts = 10 // config cannot raise the hard cap
	gw := NewGateway(vendor, allowAll(), cfg, nil)

	_, err := gw.Generate(context.Background(), &Call{UserID: "user-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, 3, vendor.completeCalls)
}

func TestGateway_CircuitOpensAndRejects(t *testing.T) {
	transient := markTransient(errors.New("503"))
	vendor := &fakeVendor{errs: []error{transient, transient, transient, transient, transient, transient}}
	cfg := testGatewayConfig()
	cfg.BreakerFailureThreshold = 2
	gw := NewGateway(vendor, allowAll(), cfg, nil)

	_, err := gw.Generate(context.Background(), &Call{UserID: "user-1"})
	require.Error(t, err)

	calls := vendor.completeCalls
	_, err = gw.Generate(context.Background(), &Call{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, calls, vendor.completeCalls, "open breaker must block vendor calls")
}

func TestGateway_GenerateWithThinking_BudgetByEffort(t *testing.T) {
	tests := []struct {
		name           string
		effort         models.Effort
		reduce         bool
		expectedBudget int
	}{
		{"routine", models.EffortRoutine, false, 4096},
		{"complex", models.EffortComplex, false, 16384},
		{"critical", models.EffortCritical, false, 32768},
		{"critical downgraded to complex", models.EffortCritical, true, 16384},
		{"routine stays routine", models.EffortRoutine, true, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor := &fakeVendor{}
			gov := allowAll()
			gov.status.ShouldReduceEffort = tt.reduce
			gw := NewGateway(vendor, gov, testGatewayConfig(), nil)

			_, err := gw.GenerateWithThinking(context.Background(), &Call{UserID: "user-1"}, tt.effort)
			require.NoError(t, err)
			require.Len(t, vendor.thinkingBudgets, 1)
			assert.Equal(t, tt.expectedBudget, vendor.thinkingBudgets[0])
		})
	}
}

func TestGateway_GenerateWithThinking_DropsTemperature(t *testing.T) {
	vendor := &fakeVendor{}
	gw := NewGateway(vendor, allowAll(), testGatewayConfig(), nil)

	temp := 0.7
	call := &Call{UserID: "user-1", Temperature: &temp}
	_, err := gw.GenerateWithThinking(context.Background(), call, models.EffortComplex)
	require.NoError(t, err)
	assert.Nil(t, call.Temperature, "temperature must be cleared when thinking is on")
}

func TestGateway_Stream_NotRetried(t *testing.T) {
	vendor := &fakeVendor{streamErr: markTransient(errors.New("503"))}
	gw := NewGateway(vendor, allowAll(), testGatewayConfig(), nil)

	_, err := gw.Stream(context.Background(), &Call{UserID: "user-1"})
	require.Error(t, err)
	assert.Equal(t, 1, vendor.streamCalls, "streams are never retried")
}

func TestGateway_Stream_RecordsFinalUsage(t *testing.T) {
	vendor := &fakeVendor{streamChunks: []StreamChunk{
		{Content: "hel"},
		{Content: "lo"},
		{Usage: &models.Usage{InputTokens: 5, OutputTokens: 2}},
	}}
	gov := allowAll()
	gw := NewGateway(vendor, gov, testGatewayConfig(), nil)

	ch, err := gw.Stream(context.Background(), &Call{UserID: "user-1"})
	require.NoError(t, err)

	var text string
	for chunk := range ch {
		text += chunk.Content
	}
	assert.Equal(t, "hello", text)
	require.Len(t, gov.recorded, 1)
	assert.Equal(t, 5, gov.recorded[0].InputTokens)
}

func TestGateway_Stream_BudgetExceededFailsFast(t *testing.T) {
	vendor := &fakeVendor{}
	gov := &fakeGovernor{status: models.BudgetStatus{CanProceed: false}}
	gw := NewGateway(vendor, gov, testGatewayConfig(), nil)

	_, err := gw.Stream(context.Background(), &Call{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 0, vendor.streamCalls)
}

func TestEstimateThinkingTokens(t *testing.T) {
	assert.Equal(t, 0, estimateThinkingTokens(0))
	assert.Equal(t, 0, estimateThinkingTokens(3))
	assert.Equal(t, 25, estimateThinkingTokens(100))
}
