package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/metrics"
	"github.com/forgeworks/metabuild/pkg/services"
)

// finishRun terminates the run and writes its aftermath: terminal
// metrics, the canary sample, and on failure the replay bundle.
func (d *Driver) finishRun(ctx context.Context, r *ent.Run, terminal run.State, reason string) error {
	if err := d.runs.Complete(ctx, r.ID, terminal, reason); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return nil // another driver finished it
		}
		return fmt.Errorf("completing run: %w", err)
	}

	// Re-read for the final usage totals the CAS does not return.
	fresh, err := d.runs.GetRun(ctx, r.ID)
	if err != nil {
		fresh = r
	}

	duration := time.Since(fresh.CreatedAt)
	if fresh.StartedAt != nil {
		duration = time.Since(*fresh.StartedAt)
	}

	slog.Info("Run completed",
		"run_id", r.ID, "state", terminal, "reason", reason,
		"iterations", fresh.Iteration, "cost_usd", fresh.CostUsedUsd,
		"duration", duration.Round(time.Millisecond))

	metrics.RecordRunComplete(string(terminal), string(fresh.CanaryGroup), duration)
	d.appendTimeline(ctx, fresh, "run.completed", fmt.Sprintf("%s: %s", terminal, reason), "")
	d.publishRunStatus(ctx, fresh.Tenant, fresh.ID, terminal, fresh.Iteration, reason)

	// Cancelled runs carry no signal about pipeline quality; only
	// succeeded and failed runs feed the canary comparison.
	if terminal == run.StateSucceeded || terminal == run.StateFailed {
		d.recordCanarySample(ctx, fresh, terminal == run.StateSucceeded, duration)
	}

	if terminal == run.StateFailed {
		if err := d.buildReplayBundle(ctx, fresh); err != nil {
			slog.Error("Failed to build replay bundle", "run_id", r.ID, "error", err)
		}
	}
	return nil
}

func (d *Driver) recordCanarySample(ctx context.Context, r *ent.Run, success bool, duration time.Duration) {
	retries, err := d.repairs.CountByPhase(ctx, r.ID, repairPhaseRetry)
	if err != nil {
		slog.Warn("Failed to count retries for canary sample", "run_id", r.ID, "error", err)
	}
	replans, err := d.repairs.CountByPhase(ctx, r.ID, repairPhaseReplan)
	if err != nil {
		slog.Warn("Failed to count replans for canary sample", "run_id", r.ID, "error", err)
	}
	rollbacks, err := d.repairs.CountByPhase(ctx, r.ID, repairPhaseRollback)
	if err != nil {
		slog.Warn("Failed to count rollbacks for canary sample", "run_id", r.ID, "error", err)
	}

	if _, err := d.canaries.RecordSample(ctx, services.RecordSampleRequest{
		Tenant:        r.Tenant,
		RunID:         r.ID,
		Group:         canarysample.Group(r.CanaryGroup),
		Success:       success,
		CostUSD:       r.CostUsedUsd,
		DurationMs:    duration.Milliseconds(),
		RetryCount:    retries,
		ReplanCount:   replans,
		RollbackCount: rollbacks,
	}); err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		slog.Warn("Failed to record canary sample", "run_id", r.ID, "error", err)
	}
}
