package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/services"
)

// Gate roles identify which kind of human sign-off a gate demands.
// Gates are matched back to their pipeline stage by role, not reason.
const (
	gateRoleSecurity = "security"
	gateRoleReviewer = "reviewer"
	gateRoleOperator = "operator"
)

const reviewGateReason = "human review required before delivery"

// afterSecurityReview inspects the annotated plan the SecurityCompliance
// step produced. A flagged plan opens an approval gate and pauses the
// run; otherwise generation starts.
func (d *Driver) afterSecurityReview(ctx context.Context, r *ent.Run) error {
	art, err := d.artifacts.LatestForIteration(ctx, r.ID, r.Iteration, artifact.KindPlan)
	if err != nil {
		return fmt.Errorf("loading annotated plan: %w", err)
	}
	payload, err := d.artifacts.LoadPayload(ctx, art)
	if err != nil {
		return fmt.Errorf("loading annotated plan payload: %w", err)
	}
	review, err := parseSecurityReview(payload)
	if err != nil {
		return err
	}

	if !review.ApprovalRequired {
		return d.transitionRun(ctx, r, run.StateDesigning, run.StateGenerating)
	}

	gate, err := d.findGate(ctx, r.ID, gateRoleSecurity)
	if err != nil {
		return err
	}
	switch {
	case gate == nil:
		return d.openGate(ctx, r, review.ApprovalReason, gateRoleSecurity, run.StateDesigning, run.StateGenerating)
	case gate.Decision == approvalgate.DecisionApproved:
		return d.transitionRun(ctx, r, run.StateDesigning, run.StateGenerating)
	case gate.Decision == approvalgate.DecisionRejected:
		return d.failRejectedGate(ctx, r, gate)
	default:
		// Gate exists but the pause did not land; retry it.
		return d.pauseRun(ctx, r, run.StateDesigning, run.StateGenerating)
	}
}

// finishOrGateReview ends a green run, via the human review gate when
// the spec demands one.
func (d *Driver) finishOrGateReview(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	if !spec.ReviewRequired {
		return d.finishRun(ctx, r, run.StateSucceeded, "evaluation passed")
	}

	gate, err := d.findGate(ctx, r.ID, gateRoleReviewer)
	if err != nil {
		return err
	}
	switch {
	case gate == nil:
		return d.openGate(ctx, r, reviewGateReason, gateRoleReviewer, run.StateEvaluating, run.StateEvaluating)
	case gate.Decision == approvalgate.DecisionApproved:
		return d.finishRun(ctx, r, run.StateSucceeded, "evaluation passed; review approved")
	case gate.Decision == approvalgate.DecisionRejected:
		return d.failRejectedGate(ctx, r, gate)
	default:
		return d.pauseRun(ctx, r, run.StateEvaluating, run.StateEvaluating)
	}
}

// advanceRollingBack opens the operator gate that every rollback
// requires, then pauses until the decision.
func (d *Driver) advanceRollingBack(ctx context.Context, r *ent.Run) error {
	gate, err := d.findGate(ctx, r.ID, gateRoleOperator)
	if err != nil {
		return err
	}
	switch {
	case gate == nil:
		reason := "rollback to last green iteration"
		if r.LastGreenIteration != nil {
			reason = fmt.Sprintf("rollback to last green iteration %d", *r.LastGreenIteration)
		}
		return d.openGate(ctx, r, reason, gateRoleOperator, run.StateRollingBack, run.StateRollingBack)
	case gate.Decision == approvalgate.DecisionApproved:
		return d.executeRollback(ctx, r)
	case gate.Decision == approvalgate.DecisionRejected:
		return d.failRejectedGate(ctx, r, gate)
	default:
		return d.pauseRun(ctx, r, run.StateRollingBack, run.StateRollingBack)
	}
}

// advancePaused resolves a decided gate: resume for approved security
// and review gates, terminate for rollbacks and rejections. An
// undecided gate leaves the run waiting.
func (d *Driver) advancePaused(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	if _, err := d.approvals.PendingForRun(ctx, r.ID); err == nil {
		return nil // still waiting on a human
	} else if !errors.Is(err, services.ErrNotFound) {
		return err
	}

	gate, err := d.latestDecidedGate(ctx, r.ID)
	if err != nil {
		return err
	}
	if gate == nil {
		// Paused without any gate: recover by resuming.
		slog.Warn("Paused run has no approval gate, resuming", "run_id", r.ID)
		return d.resumeRun(ctx, r)
	}

	if gate.Decision == approvalgate.DecisionRejected {
		return d.failRejectedGate(ctx, r, gate)
	}

	if r.PausedState != nil && *r.PausedState == string(run.StateRollingBack) {
		return d.executeRollback(ctx, r)
	}
	return d.resumeRun(ctx, r)
}

// failRejectedGate terminates a run whose gate was rejected. The
// terminal reason is a stable literal per gate role; the human detail
// goes to the timeline.
func (d *Driver) failRejectedGate(ctx context.Context, r *ent.Run, gate *ent.ApprovalGate) error {
	d.appendTimeline(ctx, r, "approval.rejected",
		fmt.Sprintf("approval rejected (%s): %s", gate.RequiredRole, gate.Reason), "")
	return d.finishRun(ctx, r, run.StateFailed, rejectionReason(gate))
}

func rejectionReason(gate *ent.ApprovalGate) string {
	switch gate.RequiredRole {
	case gateRoleSecurity:
		return "security_rejected"
	case gateRoleReviewer:
		return "review_rejected"
	case gateRoleOperator:
		return "rollback_rejected"
	default:
		return "approval_rejected"
	}
}

// executeRollback terminates the run at its last green iteration. With
// no green iteration there is nothing to fall back to and the run
// fails.
func (d *Driver) executeRollback(ctx context.Context, r *ent.Run) error {
	outcome := repairOutcomeFailed
	terminal := run.StateFailed
	reason := "rollback approved but no green iteration exists"
	if r.LastGreenIteration != nil {
		outcome = repairOutcomeSucceeded
		terminal = run.StateSucceeded
		reason = fmt.Sprintf("rolled back to iteration %d with degraded scope", *r.LastGreenIteration)
	}
	d.completePendingAttempt(ctx, r.ID, repairPhaseRollback, outcome)
	return d.finishRun(ctx, r, terminal, reason)
}

// openGate creates the approval gate and pauses the run toward its
// resume state.
func (d *Driver) openGate(ctx context.Context, r *ent.Run, reason, role string, from, resumeTo run.State) error {
	if _, err := d.approvals.CreateGate(ctx, r.Tenant, r.ID, reason, role); err != nil {
		return fmt.Errorf("creating approval gate: %w", err)
	}
	d.appendTimeline(ctx, r, "approval.requested",
		fmt.Sprintf("approval requested (%s): %s", role, reason), "")
	return d.pauseRun(ctx, r, from, resumeTo)
}

func (d *Driver) pauseRun(ctx context.Context, r *ent.Run, from, resumeTo run.State) error {
	if err := d.runs.Pause(ctx, r.ID, from, resumeTo); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return nil
		}
		return err
	}
	d.publishRunStatus(ctx, r.Tenant, r.ID, run.StatePausedAwaitingApproval, r.Iteration, "")
	return nil
}

func (d *Driver) resumeRun(ctx context.Context, r *ent.Run) error {
	if err := d.runs.Resume(ctx, r.ID); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return nil
		}
		return err
	}
	d.appendTimeline(ctx, r, "approval.resumed", "run resumed after approval", "")
	d.Wake()
	return nil
}

// findGate returns the newest gate with the given required role, nil if
// none exists.
func (d *Driver) findGate(ctx context.Context, runID, role string) (*ent.ApprovalGate, error) {
	gates, err := d.approvals.ListByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("listing approval gates: %w", err)
	}
	var found *ent.ApprovalGate
	for _, g := range gates {
		if g.RequiredRole == role {
			found = g
		}
	}
	return found, nil
}

// latestDecidedGate returns the newest gate that has a decision.
func (d *Driver) latestDecidedGate(ctx context.Context, runID string) (*ent.ApprovalGate, error) {
	gates, err := d.approvals.ListByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("listing approval gates: %w", err)
	}
	var found *ent.ApprovalGate
	for _, g := range gates {
		if g.Decision != approvalgate.DecisionPending {
			found = g
		}
	}
	return found, nil
}
