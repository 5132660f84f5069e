package services

import (
	"context"
	"testing"

	"github.com/forgeworks/metabuild/ent/approvalgate"
	testdb "github.com/forgeworks/metabuild/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalGateLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runSvc := NewRunService(client.Client)
	svc := NewApprovalService(client.Client)

	r := mustCreateRun(t, runSvc)

	gate, err := svc.CreateGate(ctx, "default", r.ID, "review_required spec", "reviewer")
	require.NoError(t, err)
	assert.Equal(t, approvalgate.DecisionPending, gate.Decision)

	pending, err := svc.PendingForRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, gate.ID, pending.ID)

	decided, err := svc.Decide(ctx, gate.ID, approvalgate.DecisionApproved, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, approvalgate.DecisionApproved, decided.Decision)
	require.NotNil(t, decided.Decider)
	assert.Equal(t, "alex@example.com", *decided.Decider)
	assert.NotNil(t, decided.DecidedAt)

	// First decision wins; the late reject is refused.
	_, err = svc.Decide(ctx, gate.ID, approvalgate.DecisionRejected, "sam@example.com")
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	_, err = svc.PendingForRun(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprovalDecideValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runSvc := NewRunService(client.Client)
	svc := NewApprovalService(client.Client)

	r := mustCreateRun(t, runSvc)
	gate, err := svc.CreateGate(ctx, "default", r.ID, "security finding", "security")
	require.NoError(t, err)

	_, err = svc.Decide(ctx, gate.ID, approvalgate.DecisionPending, "alex@example.com")
	assert.True(t, IsValidationError(err))

	_, err = svc.Decide(ctx, gate.ID, approvalgate.DecisionApproved, "")
	assert.True(t, IsValidationError(err))

	_, err = svc.Decide(ctx, "missing-gate", approvalgate.DecisionApproved, "alex@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
