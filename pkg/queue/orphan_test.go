package queue

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverOrphansRequeuesExpiredLeases(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "orphan"})
	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "healthy"})

	// A worker that died: lease expired without a heartbeat.
	orphaned, err := svc.Lease(ctx, "dead-worker", allQueues, -time.Second)
	require.NoError(t, err)

	// A live worker with a valid lease.
	held, err := svc.Lease(ctx, "live-worker", allQueues, time.Hour)
	require.NoError(t, err)
	require.NoError(t, svc.MarkRunning(ctx, "live-worker", held.ID))

	recovered, err := RecoverOrphans(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	requeued := client.Step.GetX(ctx, orphaned.ID)
	assert.Equal(t, step.StateQueued, requeued.State)
	assert.Nil(t, requeued.WorkerID)
	assert.Nil(t, requeued.LeaseExpiresAt)

	leaseGone, err := client.QueueLease.Query().
		Where(queuelease.StepIDEQ(orphaned.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, leaseGone)

	// The live step is untouched.
	untouched := client.Step.GetX(ctx, held.ID)
	assert.Equal(t, step.StateRunning, untouched.State)

	// The recovered step is claimable again under the same key.
	reclaimed, err := svc.Lease(ctx, "new-worker", allQueues, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, orphaned.ID, reclaimed.ID)
	assert.Equal(t, orphaned.IdempotencyKey, reclaimed.IdempotencyKey)
	assert.Equal(t, 2, reclaimed.Attempts)
}

func TestRecoverOrphansIdleScan(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "queued-only"})

	recovered, err := RecoverOrphans(ctx, client)
	require.NoError(t, err)
	assert.Zero(t, recovered)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, svc, runID := setupQueue(t)
	ctx := context.Background()

	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "mine"})
	enqueue(t, svc, runID, EnqueueRequest{IdempotencyKey: "theirs"})

	// Steps held by this pod's previous incarnation have live leases; the
	// startup sweep reclaims them without waiting for the TTL.
	mine, err := svc.Lease(ctx, "pod-a-worker-0", allQueues, time.Hour)
	require.NoError(t, err)
	theirs, err := svc.Lease(ctx, "pod-b-worker-0", allQueues, time.Hour)
	require.NoError(t, err)

	recovered, err := CleanupStartupOrphans(ctx, client, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	assert.Equal(t, step.StateQueued, client.Step.GetX(ctx, mine.ID).State)
	assert.Equal(t, step.StateLeased, client.Step.GetX(ctx, theirs.ID).State)

	// Idempotent: nothing left for this pod.
	recovered, err = CleanupStartupOrphans(ctx, client, "pod-a")
	require.NoError(t, err)
	assert.Zero(t, recovered)
}
