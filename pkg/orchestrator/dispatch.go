package orchestrator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/scheduler"
)

// errBudgetExceeded aborts a dispatch whose run has no budget left. The
// caller terminates the run rather than queueing work it cannot pay for.
var errBudgetExceeded = errors.New("budget exceeded")

// idempotencyKey derives the step identity: the same (run, iteration,
// role, input) always maps to the same key, so redundant dispatches
// collapse onto the existing step row.
func idempotencyKey(runID string, iteration int, role step.AgentRole, inputDigest string) string {
	h := sha256.New()
	h.Write([]byte(runID))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(iteration)))
	h.Write([]byte{'|'})
	h.Write([]byte(role))
	h.Write([]byte{'|'})
	h.Write([]byte(inputDigest))
	return hex.EncodeToString(h.Sum(nil))
}

// dispatch assembles the role's input, routes it, and enqueues the step.
// gateClass, when non-empty, is the failure class this dispatch repairs;
// its circuit breaker is consulted before any work is queued.
//
// Returns scheduler.ErrCircuitOpen or queue.ErrQueueFull untouched so
// the driver can leave the run for the next scan, and errBudgetExceeded
// when the run cannot afford the step.
func (d *Driver) dispatch(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, role step.AgentRole, gateClass config.FailureClass) (*ent.Step, error) {
	if gateClass != "" {
		if err := d.breakers.Allow(ctx, r.Tenant, gateClass); err != nil {
			return nil, err
		}
	}

	a, err := d.catalogue.Get(role)
	if err != nil {
		return nil, err
	}
	isLLM := a.QueueClass() == step.QueueLlm

	repairIters, err := d.repairIterations(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	decision, err := d.sched.Route(ctx, scheduler.RouteRequest{
		Tenant:            r.Tenant,
		SLA:               config.SLAClass(spec.SLAClass),
		DeclaredQueue:     a.QueueClass(),
		LLMRole:           isLLM,
		CostUsed:          r.CostUsedUsd,
		CostLimit:         spec.CostLimitUsd,
		RepairItersAtTier: repairIters,
		RollbackContext:   r.State == run.StateRollingBack,
	})
	if err != nil {
		return nil, fmt.Errorf("routing %s step: %w", role, err)
	}

	costRem, attemptsRem, err := d.budgets.Remaining(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("checking budget: %w", err)
	}
	if attemptsRem <= 0 || (isLLM && costRem < decision.EstCostUSD) {
		return nil, fmt.Errorf("%w: %.4f USD / %d attempts remaining", errBudgetExceeded, costRem, attemptsRem)
	}

	in, err := assembleInput(ctx, d.artifacts, d.failures, r, spec, role, decision.Tier)
	if err != nil {
		return nil, err
	}

	digest := in.Digest()
	key := idempotencyKey(r.ID, r.Iteration, role, digest)

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding step input: %w", err)
	}
	inputRef, err := d.blobs.Put(ctx, r.Tenant, payload)
	if err != nil {
		return nil, fmt.Errorf("storing step input: %w", err)
	}

	req := queue.EnqueueRequest{
		Tenant:         r.Tenant,
		RunID:          r.ID,
		Iteration:      r.Iteration,
		Role:           role,
		Queue:          decision.Queue,
		Priority:       decision.Priority,
		IdempotencyKey: key,
		InputDigest:    digest,
		InputRef:       inputRef,
		EstCostUSD:     decision.EstCostUSD,
	}
	if isLLM {
		tier := step.ModelTier(decision.Tier)
		req.ModelTier = &tier
	}

	s, err := d.queue.Enqueue(ctx, req)
	if err != nil {
		return nil, err
	}

	slog.Info("Dispatched step",
		"run_id", r.ID, "step_id", s.ID, "role", role,
		"queue", decision.Queue, "priority", decision.Priority, "tier", decision.Tier)

	if err := d.events.PublishStepStatus(ctx, r.Tenant, r.ID, events.StepStatusPayload{
		RunID:     r.ID,
		StepID:    s.ID,
		AgentRole: s.AgentRole,
		Queue:     s.Queue,
		State:     s.State,
		Attempts:  s.Attempts,
	}); err != nil {
		slog.Warn("Failed to publish step status", "step_id", s.ID, "error", err)
	}

	return s, nil
}

// repairIterations counts repair rungs already taken on the run, which
// feeds the tier-upgrade rule.
func (d *Driver) repairIterations(ctx context.Context, runID string) (int, error) {
	attempts, err := d.repairs.ListByRun(ctx, runID)
	if err != nil {
		return 0, fmt.Errorf("counting repair attempts: %w", err)
	}
	return len(attempts), nil
}

// retryStep requeues a failed step with backoff. The step keeps its
// idempotency key: a retry is the same work, delayed. The caller has
// already consulted the class breaker.
func (d *Driver) retryStep(ctx context.Context, r *ent.Run, stepID string, class config.FailureClass, backoff time.Duration) error {
	if err := d.queue.Requeue(ctx, stepID, time.Now().Add(backoff)); err != nil {
		return fmt.Errorf("requeueing step %s: %w", stepID, err)
	}
	slog.Info("Requeued step for retry",
		"run_id", r.ID, "step_id", stepID, "class", class, "backoff", backoff)
	return nil
}
