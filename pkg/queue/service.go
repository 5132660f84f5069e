package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/metrics"
	"github.com/google/uuid"
)

// Service implements the queue operations over step rows. Steps double as
// tasks: the queued state plus the queue column make a step claimable,
// and a QueueLease row marks a live claim.
type Service struct {
	client *ent.Client
	cfg    *config.QueueConfig
}

// NewService creates a queue Service.
func NewService(client *ent.Client, cfg *config.QueueConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// EnqueueRequest describes a new task.
type EnqueueRequest struct {
	Tenant    string
	RunID     string
	Iteration int
	Role      step.AgentRole
	Queue     step.Queue
	Priority  int

	// IdempotencyKey is hash(run_id, iteration, role, input_digest).
	// Enqueueing the same key again returns the existing step.
	IdempotencyKey string

	InputDigest string
	InputRef    string

	ModelTier  *step.ModelTier
	EstCostUSD float64

	// NotBefore delays claim eligibility (retry backoff as delayed
	// requeue).
	NotBefore *time.Time
}

// Enqueue inserts a claimable step. The idempotency key short-circuits:
// a key seen before returns its existing step without a new row. Depth
// past the high-water mark returns ErrQueueFull.
func (s *Service) Enqueue(ctx context.Context, req EnqueueRequest) (*ent.Step, error) {
	existing, err := s.client.Step.Query().
		Where(step.IdempotencyKeyEQ(req.IdempotencyKey)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	depth, err := s.client.Step.Query().
		Where(
			step.QueueEQ(req.Queue),
			step.StateEQ(step.StateQueued),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check queue depth: %w", err)
	}
	if depth >= s.cfg.HighWaterMark {
		return nil, fmt.Errorf("%w: %s depth %d", ErrQueueFull, req.Queue, depth)
	}

	create := s.client.Step.Create().
		SetID(uuid.NewString()).
		SetTenant(req.Tenant).
		SetRunID(req.RunID).
		SetIteration(req.Iteration).
		SetAgentRole(req.Role).
		SetQueue(req.Queue).
		SetPriority(req.Priority).
		SetIdempotencyKey(req.IdempotencyKey).
		SetInputDigest(req.InputDigest).
		SetInputRef(req.InputRef).
		SetEstCostUsd(req.EstCostUSD)
	if req.ModelTier != nil {
		create = create.SetModelTier(*req.ModelTier)
	}
	if req.NotBefore != nil {
		create = create.SetNotBefore(*req.NotBefore)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost an idempotency race; the winner's row is the task.
			return s.client.Step.Query().
				Where(step.IdempotencyKeyEQ(req.IdempotencyKey)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to enqueue step: %w", err)
	}
	return created, nil
}

// Lease atomically claims the next eligible step in the given queues and
// writes its QueueLease. Tombstoned steps encountered during the scan are
// marked skipped and released without executing.
func (s *Service) Lease(ctx context.Context, workerID string, queues []step.Queue, leaseTTL time.Duration) (*ent.Step, error) {
	// A cancelled step found at the head is resolved and the scan retried
	// rather than returned.
	for attempt := 0; attempt < 5; attempt++ {
		claimed, tombstoned, err := s.leaseOnce(ctx, workerID, queues, leaseTTL)
		if err != nil {
			return nil, err
		}
		if tombstoned {
			continue
		}
		return claimed, nil
	}
	return nil, ErrNoTasksAvailable
}

func (s *Service) leaseOnce(ctx context.Context, workerID string, queues []step.Queue, leaseTTL time.Duration) (*ent.Step, bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	candidate, err := tx.Step.Query().
		Where(
			step.QueueIn(queues...),
			step.StateEQ(step.StateQueued),
			step.Or(
				step.NotBeforeIsNil(),
				step.NotBeforeLTE(now),
			),
		).
		Order(
			ent.Desc(step.FieldPriority),
			ent.Asc(step.FieldCreatedAt),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNoTasksAvailable
		}
		return nil, false, fmt.Errorf("failed to query claimable step: %w", err)
	}

	// Tombstone observed at the lease boundary: resolve to skipped.
	if candidate.Tombstoned {
		if err := tx.Step.UpdateOneID(candidate.ID).
			SetState(step.StateSkipped).
			SetCompletedAt(now).
			Exec(ctx); err != nil {
			return nil, false, fmt.Errorf("failed to skip tombstoned step: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit tombstone skip: %w", err)
		}
		return nil, true, nil
	}

	expiresAt := now.Add(leaseTTL)
	claimed, err := tx.Step.UpdateOneID(candidate.ID).
		SetState(step.StateLeased).
		SetWorkerID(workerID).
		SetLeaseExpiresAt(expiresAt).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to claim step: %w", err)
	}

	if err := tx.QueueLease.Create().
		SetID(uuid.NewString()).
		SetTenant(candidate.Tenant).
		SetWorkerID(workerID).
		SetQueue(queuelease.Queue(candidate.Queue)).
		SetStepID(candidate.ID).
		SetExpiresAt(expiresAt).
		SetLastHeartbeat(now).
		Exec(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to write lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit claim: %w", err)
	}

	metrics.RecordDispatch(string(candidate.Queue), now.Sub(candidate.CreatedAt))
	return claimed, false, nil
}

// MarkRunning moves a leased step to running when execution begins.
func (s *Service) MarkRunning(ctx context.Context, workerID, stepID string) error {
	n, err := s.client.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StateEQ(step.StateLeased),
			step.WorkerIDEQ(workerID),
		).
		SetState(step.StateRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark step running: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Heartbeat extends a live lease. It returns ErrLeaseLost when the lease
// expired and another worker may have taken the step, and ErrTombstoned
// when the run was cancelled; in both cases the worker aborts.
func (s *Service) Heartbeat(ctx context.Context, workerID, stepID string, leaseTTL time.Duration) error {
	now := time.Now()
	n, err := s.client.QueueLease.Update().
		Where(
			queuelease.StepIDEQ(stepID),
			queuelease.WorkerIDEQ(workerID),
			queuelease.ExpiresAtGT(now),
		).
		SetExpiresAt(now.Add(leaseTTL)).
		SetLastHeartbeat(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat lease: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}

	// Keep the step's lease column in step with the lease row.
	if err := s.client.Step.Update().
		Where(step.IDEQ(stepID), step.WorkerIDEQ(workerID)).
		SetLeaseExpiresAt(now.Add(leaseTTL)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to extend step lease: %w", err)
	}

	// Tombstone observed at the heartbeat boundary.
	tombstoned, err := s.client.Step.Query().
		Where(step.IDEQ(stepID), step.TombstonedEQ(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check tombstone: %w", err)
	}
	if tombstoned {
		return ErrTombstoned
	}
	return nil
}

// Complete finishes a step successfully: result write, state transition
// and lease release in one transaction. A duplicate completion with the
// same output is accepted idempotently; a different output is ErrConflict.
func (s *Service) Complete(ctx context.Context, workerID, stepID string, result *ExecutionResult) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start completion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StateIn(step.StateLeased, step.StateRunning),
			step.WorkerIDEQ(workerID),
		).
		SetState(step.StateSucceeded).
		SetOutputRef(result.OutputRef).
		SetTokensIn(result.TokensIn).
		SetTokensOut(result.TokensOut).
		SetCostUsd(result.CostUSD).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete step: %w", err)
	}
	if n == 0 {
		return s.resolveDuplicateCompletion(ctx, stepID, result)
	}

	if _, err := tx.QueueLease.Delete().
		Where(queuelease.StepIDEQ(stepID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to release lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	return nil
}

// Fail finishes a step with a failure. Requeueing (the retry rung) is the
// orchestrator's decision, not the worker's.
func (s *Service) Fail(ctx context.Context, workerID, stepID string, execErr error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start failure transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg := "unknown failure"
	if execErr != nil {
		msg = execErr.Error()
	}

	n, err := tx.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StateIn(step.StateLeased, step.StateRunning),
			step.WorkerIDEQ(workerID),
		).
		SetState(step.StateFailed).
		SetErrorMessage(msg).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail step: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}

	if _, err := tx.QueueLease.Delete().
		Where(queuelease.StepIDEQ(stepID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to release lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit failure: %w", err)
	}
	return nil
}

// Release returns a leased step to the queue without counting a failure,
// used when the worker observed a tombstone or is shutting down.
func (s *Service) Release(ctx context.Context, workerID, stepID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start release transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StateIn(step.StateLeased, step.StateRunning),
			step.WorkerIDEQ(workerID),
		).
		SetState(step.StateQueued).
		ClearWorkerID().
		ClearLeaseExpiresAt().
		ClearStartedAt().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to release step: %w", err)
	}

	if _, err := tx.QueueLease.Delete().
		Where(queuelease.StepIDEQ(stepID), queuelease.WorkerIDEQ(workerID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit release: %w", err)
	}
	return nil
}

// Requeue returns a failed step to the queue for another attempt, with
// the retry backoff realized as a not_before delay.
func (s *Service) Requeue(ctx context.Context, stepID string, notBefore time.Time) error {
	n, err := s.client.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StateEQ(step.StateFailed),
		).
		SetState(step.StateQueued).
		SetNotBefore(notBefore).
		ClearWorkerID().
		ClearLeaseExpiresAt().
		ClearStartedAt().
		ClearCompletedAt().
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue step: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("step %s is not failed, cannot requeue", stepID)
	}
	return nil
}

// resolveDuplicateCompletion decides whether a lost completion CAS was a
// benign duplicate (same result already recorded) or a conflict.
func (s *Service) resolveDuplicateCompletion(ctx context.Context, stepID string, result *ExecutionResult) error {
	current, err := s.client.Step.Get(ctx, stepID)
	if err != nil {
		return fmt.Errorf("failed to load step for duplicate check: %w", err)
	}
	if current.State == step.StateSucceeded &&
		current.OutputRef != nil && *current.OutputRef == result.OutputRef {
		slog.Debug("Duplicate completion accepted", "step_id", stepID)
		return nil
	}
	if current.State == step.StateSucceeded {
		return fmt.Errorf("%w: step %s already completed with a different result", ErrConflict, stepID)
	}
	return ErrLeaseLost
}
