package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/step"
)

// RecoverOrphans requeues steps whose lease expired without a heartbeat.
// This is the at-least-once safety net: a crashed worker's step becomes
// claimable again instead of staying leased forever. Returns the number
// of steps recovered.
func RecoverOrphans(ctx context.Context, client *ent.Client) (int, error) {
	now := time.Now()

	// Expired lease rows point at the orphaned steps.
	expired, err := client.QueueLease.Query().
		Where(queuelease.ExpiresAtLT(now)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	recovered := 0
	for _, lease := range expired {
		ok, err := requeueOrphan(ctx, client, lease.StepID, lease.WorkerID)
		if err != nil {
			slog.Error("Failed to recover orphaned step",
				"step_id", lease.StepID, "worker_id", lease.WorkerID, "error", err)
			continue
		}
		if ok {
			recovered++
		}
	}

	// Steps left leased or running with an expired (or missing) lease
	// column. Covers the crash window between the step update and the
	// lease row write.
	stranded, err := client.Step.Query().
		Where(
			step.StateIn(step.StateLeased, step.StateRunning),
			step.LeaseExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return recovered, fmt.Errorf("failed to query stranded steps: %w", err)
	}
	for _, s := range stranded {
		workerID := ""
		if s.WorkerID != nil {
			workerID = *s.WorkerID
		}
		ok, err := requeueOrphan(ctx, client, s.ID, workerID)
		if err != nil {
			slog.Error("Failed to recover stranded step", "step_id", s.ID, "error", err)
			continue
		}
		if ok {
			recovered++
		}
	}

	return recovered, nil
}

// requeueOrphan atomically returns one orphaned step to the queue and
// removes its lease. The CAS on state protects against racing a worker
// that heartbeated between the scan and this write; in that case the
// step is left alone. Returns whether the step was actually requeued.
func requeueOrphan(ctx context.Context, client *ent.Client, stepID, workerID string) (bool, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start recovery transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	n, err := tx.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StateIn(step.StateLeased, step.StateRunning),
			step.LeaseExpiresAtLT(now),
		).
		SetState(step.StateQueued).
		ClearWorkerID().
		ClearLeaseExpiresAt().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to requeue orphaned step: %w", err)
	}

	leaseDel := tx.QueueLease.Delete().Where(queuelease.StepIDEQ(stepID))
	if n == 0 {
		// Still held by a live worker; only reap the lease if it expired.
		leaseDel = leaseDel.Where(queuelease.ExpiresAtLT(now))
	}
	if _, err := leaseDel.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to delete orphaned lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit orphan recovery: %w", err)
	}

	if n > 0 {
		slog.Info("Orphaned step requeued", "step_id", stepID, "worker_id", workerID)
	}
	return n > 0, nil
}

// CleanupStartupOrphans requeues steps still leased by this pod's workers
// from a previous incarnation. Called once at startup, before the pool
// starts: after a crash or SIGKILL the old leases would otherwise block
// their steps until the TTL expires.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) (int, error) {
	leases, err := client.QueueLease.Query().
		Where(queuelease.WorkerIDHasPrefix(podID + "-")).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query startup leases: %w", err)
	}
	if len(leases) == 0 {
		return 0, nil
	}

	recovered := 0
	for _, lease := range leases {
		tx, err := client.Tx(ctx)
		if err != nil {
			return recovered, fmt.Errorf("failed to start startup recovery transaction: %w", err)
		}

		n, err := tx.Step.Update().
			Where(
				step.IDEQ(lease.StepID),
				step.StateIn(step.StateLeased, step.StateRunning),
				step.WorkerIDEQ(lease.WorkerID),
			).
			SetState(step.StateQueued).
			ClearWorkerID().
			ClearLeaseExpiresAt().
			ClearStartedAt().
			Save(ctx)
		if err == nil {
			_, err = tx.QueueLease.Delete().
				Where(queuelease.IDEQ(lease.ID)).
				Exec(ctx)
		}
		if err == nil {
			err = tx.Commit()
		}
		if err != nil {
			_ = tx.Rollback()
			slog.Error("Failed to recover startup orphan",
				"step_id", lease.StepID, "error", err)
			continue
		}
		recovered += n
	}

	if recovered > 0 {
		slog.Info("Recovered steps from previous pod incarnation",
			"pod_id", podID, "count", recovered)
	}
	return recovered, nil
}
