package queue

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/forgeworks/metabuild/pkg/services"
	"github.com/forgeworks/metabuild/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allQueues = []step.Queue{step.QueueCPU, step.QueueIo, step.QueueLlm, step.QueueHigh, step.QueueLow}

func setupQueue(t *testing.T) (*ent.Client, *Service, string) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client, config.DefaultQueueConfig())

	r, err := services.NewRunService(client).CreateRun(context.Background(), models.CreateRunRequest{
		Tenant:       "default",
		Source:       "Build an inventory tracker",
		CostLimitUSD: 25,
		MaxIters:     3,
	}, run.CanaryGroupControl)
	require.NoError(t, err)
	return client, svc, r.ID
}

func enqueue(t *testing.T, svc *Service, runID string, req EnqueueRequest) *ent.Step {
	t.Helper()
	req.Tenant = "default"
	req.RunID = runID
	if req.Role == "" {
		req.Role = step.AgentRoleCodegenEngineer
	}
	if req.Queue == "" {
		req.Queue = step.QueueLlm
	}
	if req.InputDigest == "" {
		req.InputDigest = "digest-" + req.IdempotencyKey
	}
	if req.InputRef == "" {
		req.InputRef = "blob://in/" + req.IdempotencyKey
	}
	s, err := svc.Enqueue(context.Background(), req)
	require.NoError(t, err)
	return s
}

func TestEnqueueIdempotencyKeyShortCircuits(t *testing.T) {
	_, svc, runID := setupQueue(t)

	first := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "k1", Priority: 5})

	// Same key returns the existing row, even with different attributes.
	again := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "k1", Priority: 99})
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 5, again.Priority)

	other := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "k2"})
	assert.NotEqual(t, first.ID, other.ID)
}

func TestEnqueueBackpressure(t *testing.T) {
	client, _, runID := setupQueue(t)
	cfg := config.DefaultQueueConfig()
	cfg.HighWaterMark = 2
	svc := NewService(client, cfg)

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "bp1"})
	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "bp2"})

	_, err := svc.Enqueue(context.Background(), EnqueueRequest{
		Tenant: "default", RunID: runID,
		Role: step.AgentRoleCodegenEngineer, Queue: step.QueueLlm,
		IdempotencyKey: "bp3", InputDigest: "d", InputRef: "r",
	})
	require.ErrorIs(t, err, ErrQueueFull)

	// Depth is per queue class: another class still accepts.
	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "bp4", Queue: step.QueueCPU, Role: step.AgentRoleQaEvaluator})

	// A duplicate key short-circuits before the depth check.
	dup := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "bp1"})
	assert.Equal(t, "digest-bp1", dup.InputDigest)
}

func TestLeaseOrdering(t *testing.T) {
	_, svc, runID := setupQueue(t)
	ctx := context.Background()

	low1 := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "low1", Priority: 0})
	high := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "high", Priority: 10})
	low2 := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "low2", Priority: 0})

	// A future not_before keeps a step out of the scan entirely.
	notYet := time.Now().Add(time.Hour)
	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "delayed", Priority: 100, NotBefore: &notYet})

	// Priority first, then FIFO within a priority.
	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, high.ID, claimed.ID)
	assert.Equal(t, step.StateLeased, claimed.State)
	assert.Equal(t, 1, claimed.Attempts)

	claimed, err = svc.Lease(ctx, "w2", allQueues, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, low1.ID, claimed.ID)

	claimed, err = svc.Lease(ctx, "w3", allQueues, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, low2.ID, claimed.ID)

	_, err = svc.Lease(ctx, "w4", allQueues, time.Minute)
	require.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestLeaseScopedToQueues(t *testing.T) {
	_, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "llm", Queue: step.QueueLlm})
	cpu := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "cpu", Queue: step.QueueCPU, Role: step.AgentRoleReviewer})

	claimed, err := svc.Lease(ctx, "w1", []step.Queue{step.QueueCPU}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, cpu.ID, claimed.ID)

	_, err = svc.Lease(ctx, "w1", []step.Queue{step.QueueCPU}, time.Minute)
	require.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestLeaseResolvesTombstonedSteps(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	doomed := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "doomed", Priority: 10})
	live := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "live", Priority: 0})

	require.NoError(t, client.Step.UpdateOneID(doomed.ID).
		SetTombstoned(true).
		Exec(ctx))

	// The tombstoned head is resolved to skipped and the scan moves on.
	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, live.ID, claimed.ID)

	resolved := client.Step.GetX(ctx, doomed.ID)
	assert.Equal(t, step.StateSkipped, resolved.State)
	assert.NotNil(t, resolved.CompletedAt)
	assert.Equal(t, 0, resolved.Attempts)
}

func TestHeartbeatExtendsAndReportsLoss(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "hb"})
	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Heartbeat(ctx, "w1", claimed.ID, time.Minute))

	// Another worker never held the lease.
	require.ErrorIs(t, svc.Heartbeat(ctx, "w2", claimed.ID, time.Minute), ErrLeaseLost)

	// An expired lease heartbeats as lost.
	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "hb-exp"})
	expired, err := svc.Lease(ctx, "w3", allQueues, -time.Second)
	require.NoError(t, err)
	require.ErrorIs(t, svc.Heartbeat(ctx, "w3", expired.ID, time.Minute), ErrLeaseLost)

	// Cancellation surfaces at the heartbeat boundary after the extend.
	require.NoError(t, client.Step.UpdateOneID(claimed.ID).
		SetTombstoned(true).
		Exec(ctx))
	require.ErrorIs(t, svc.Heartbeat(ctx, "w1", claimed.ID, time.Minute), ErrTombstoned)
}

func TestCompleteIsExactlyOnce(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "done"})
	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)
	require.NoError(t, svc.MarkRunning(ctx, "w1", claimed.ID))

	result := &ExecutionResult{
		State:     step.StateSucceeded,
		OutputRef: "blob://out/abc",
		TokensIn:  100,
		TokensOut: 50,
		CostUSD:   0.42,
	}
	require.NoError(t, svc.Complete(ctx, "w1", claimed.ID, result))

	final := client.Step.GetX(ctx, claimed.ID)
	assert.Equal(t, step.StateSucceeded, final.State)
	require.NotNil(t, final.OutputRef)
	assert.Equal(t, "blob://out/abc", *final.OutputRef)
	assert.Equal(t, 100, final.TokensIn)
	assert.InDelta(t, 0.42, final.CostUsd, 1e-9)

	// A duplicate with the same output is accepted silently.
	require.NoError(t, svc.Complete(ctx, "w2", claimed.ID, result))

	// A duplicate with a different output is a conflict, and the stored
	// result is untouched.
	conflicting := &ExecutionResult{State: step.StateSucceeded, OutputRef: "blob://out/other"}
	require.ErrorIs(t, svc.Complete(ctx, "w2", claimed.ID, conflicting), ErrConflict)
	assert.Equal(t, "blob://out/abc", *client.Step.GetX(ctx, claimed.ID).OutputRef)

	// The lease is gone.
	exists, err := claimed.QueryLease().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFailAndRequeueWithBackoff(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "flaky"})
	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)
	require.NoError(t, svc.MarkRunning(ctx, "w1", claimed.ID))

	require.NoError(t, svc.Fail(ctx, "w1", claimed.ID, assert.AnError))

	failed := client.Step.GetX(ctx, claimed.ID)
	assert.Equal(t, step.StateFailed, failed.State)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, assert.AnError.Error(), *failed.ErrorMessage)

	// The retry rung requeues the same row with a backoff delay; the
	// next leaser sees the same idempotency key.
	require.NoError(t, svc.Requeue(ctx, claimed.ID, time.Now().Add(-time.Second)))

	requeued := client.Step.GetX(ctx, claimed.ID)
	assert.Equal(t, step.StateQueued, requeued.State)
	assert.Nil(t, requeued.WorkerID)
	assert.Nil(t, requeued.ErrorMessage)
	assert.Equal(t, claimed.IdempotencyKey, requeued.IdempotencyKey)

	reclaimed, err := svc.Lease(ctx, "w2", allQueues, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, claimed.ID, reclaimed.ID)
	assert.Equal(t, 2, reclaimed.Attempts)

	// Requeue only moves failed steps.
	require.Error(t, svc.Requeue(ctx, claimed.ID, time.Now()))
}

func TestReleaseReturnsStepWithoutFailure(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "rel"})
	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Release(ctx, "w1", claimed.ID))

	released := client.Step.GetX(ctx, claimed.ID)
	assert.Equal(t, step.StateQueued, released.State)
	assert.Nil(t, released.WorkerID)
	assert.Nil(t, released.ErrorMessage)
	// The attempt already spent stays counted.
	assert.Equal(t, 1, released.Attempts)
}

func TestMarkRunningRequiresLease(t *testing.T) {
	_, svc, runID := setupQueue(t)
	ctx := context.Background()

	s := enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "mr"})

	// Not leased yet.
	require.ErrorIs(t, svc.MarkRunning(ctx, "w1", s.ID), ErrLeaseLost)

	claimed, err := svc.Lease(ctx, "w1", allQueues, time.Minute)
	require.NoError(t, err)

	// Wrong worker.
	require.ErrorIs(t, svc.MarkRunning(ctx, "w2", claimed.ID), ErrLeaseLost)
	require.NoError(t, svc.MarkRunning(ctx, "w1", claimed.ID))
}
