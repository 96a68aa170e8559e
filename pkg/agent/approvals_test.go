package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovals_ApproveExecutesAndConsumes(t *testing.T) {
	broker := &fakeBroker{out: map[string]interface{}{"sent": true}}
	approvals := NewApprovals(broker, testLogger())

	id := approvals.Propose("u1", "gmail", "send_email", map[string]interface{}{"to": "dana@acme.com"})
	require.Len(t, approvals.Pending("u1"), 1)

	out, err := approvals.Approve(context.Background(), "u1", id)
	require.NoError(t, err)
	assert.Equal(t, true, out["sent"])
	assert.Empty(t, approvals.Pending("u1"))

	// Second approve finds nothing.
	_, err = approvals.Approve(context.Background(), "u1", id)
	assert.Error(t, err)
}

func TestApprovals_RejectSkipsBroker(t *testing.T) {
	broker := &fakeBroker{err: errors.New("must not be called")}
	approvals := NewApprovals(broker, testLogger())

	id := approvals.Propose("u1", "crm", "delete_contact", nil)
	require.NoError(t, approvals.Reject(context.Background(), "u1", id))
	assert.Empty(t, approvals.Pending("u1"))
}

func TestApprovals_OwnershipEnforced(t *testing.T) {
	approvals := NewApprovals(&fakeBroker{}, testLogger())

	id := approvals.Propose("u1", "gmail", "send_email", nil)

	_, err := approvals.Approve(context.Background(), "u2", id)
	assert.Error(t, err)
	assert.Error(t, approvals.Reject(context.Background(), "u2", id))

	// Still pending for its owner.
	assert.Len(t, approvals.Pending("u1"), 1)
}

func TestApprovals_FailedExecutionIsConsumed(t *testing.T) {
	broker := &fakeBroker{err: errors.New("connection revoked")}
	approvals := NewApprovals(broker, testLogger())

	id := approvals.Propose("u1", "crm", "update_deal", nil)
	_, err := approvals.Approve(context.Background(), "u1", id)
	require.Error(t, err)
	assert.Empty(t, approvals.Pending("u1"), "failed actions need a fresh proposal")
}
