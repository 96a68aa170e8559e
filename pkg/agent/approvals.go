package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// PendingAction is a broker action waiting for explicit user approval.
// Proposed by agents, resolved by the user over the live stream.
type PendingAction struct {
	ID          string
	UserID      string
	Integration string
	Action      string
	Params      map[string]interface{}
}

// Approvals holds actions awaiting a user decision. Pending actions live
// in process memory; an unresolved proposal dies with the process and the
// agent proposes it again on the next run.
type Approvals struct {
	broker ActionBroker
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]PendingAction
}

// NewApprovals creates an approvals registry backed by the given broker.
func NewApprovals(broker ActionBroker, logger *slog.Logger) *Approvals {
	return &Approvals{
		broker:  broker,
		logger:  ensureLogger(logger),
		pending: make(map[string]PendingAction),
	}
}

// Propose registers an action for approval and returns its action ID.
func (a *Approvals) Propose(userID, integration, action string, params map[string]interface{}) string {
	pa := PendingAction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Integration: integration,
		Action:      action,
		Params:      params,
	}

	a.mu.Lock()
	a.pending[pa.ID] = pa
	a.mu.Unlock()

	a.logger.Info("action proposed",
		slog.String("action_id", pa.ID),
		slog.String("user_id", userID),
		slog.String("integration", integration),
		slog.String("action", action))
	return pa.ID
}

// Pending lists the user's unresolved actions.
func (a *Approvals) Pending(userID string) []PendingAction {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []PendingAction
	for _, pa := range a.pending {
		if pa.UserID == userID {
			out = append(out, pa)
		}
	}
	return out
}

// Approve executes the pending action through the broker and removes it
// from the registry. The action is consumed even when execution fails;
// retrying requires a fresh proposal.
func (a *Approvals) Approve(ctx context.Context, userID, actionID string) (map[string]interface{}, error) {
	pa, err := a.take(userID, actionID)
	if err != nil {
		return nil, err
	}

	out, err := a.broker.ExecuteAction(ctx, pa.UserID, pa.Integration, pa.Action, pa.Params)
	if err != nil {
		a.logger.Warn("approved action failed",
			slog.String("action_id", actionID),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, err
	}

	a.logger.Info("approved action executed",
		slog.String("action_id", actionID),
		slog.String("user_id", userID))
	return out, nil
}

// Reject discards the pending action without executing it.
func (a *Approvals) Reject(ctx context.Context, userID, actionID string) error {
	if _, err := a.take(userID, actionID); err != nil {
		return err
	}
	a.logger.Info("action rejected",
		slog.String("action_id", actionID),
		slog.String("user_id", userID))
	return nil
}

// take removes and returns the pending action, enforcing ownership.
func (a *Approvals) take(userID, actionID string) (PendingAction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	pa, ok := a.pending[actionID]
	if !ok || pa.UserID != userID {
		return PendingAction{}, fmt.Errorf("no pending action %s for user %s", actionID, userID)
	}
	delete(a.pending, actionID)
	return pa, nil
}
