package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/metrics"
	"github.com/forgeworks/metabuild/pkg/services"
)

// Local aliases keep the handlers readable.
const (
	repairPhaseRetry    = repairattempt.PhaseRetry
	repairPhasePatch    = repairattempt.PhasePatch
	repairPhaseReplan   = repairattempt.PhaseReplan
	repairPhaseRollback = repairattempt.PhaseRollback

	repairOutcomeSucceeded = repairattempt.OutcomeSucceeded
	repairOutcomeFailed    = repairattempt.OutcomeFailed
)

// handleFailedStep reacts to a step in terminal failed state: invalid
// input ends the run immediately, everything else goes to the ladder
// under the step's recorded failure class.
func (d *Driver) handleFailedStep(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, s *ent.Step) error {
	if strings.HasPrefix(stepError(s), string(agent.KindInvalidInput)) {
		return d.finishRun(ctx, r, run.StateFailed, "invalid input: "+stepError(s))
	}

	f, err := d.latestFailureForStep(ctx, r, s)
	if err != nil {
		return err
	}
	return d.engageLadder(ctx, r, spec, s, f, config.FailureClass(f.Class), "", r.PatchStreak)
}

// handleEvalFailure turns a red evaluation into a synthetic failure row
// and a ladder decision. The failing criterion names drive both the
// class and the replan scope.
func (d *Driver) handleEvalFailure(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, qaStep *ent.Step, report *evaluator.Report) error {
	class, excerpt := classifyReport(report)
	scope := failingCriteria(report)

	streak := r.PatchStreak
	if d.lastAttemptWasPatch(ctx, r.ID) {
		// The failed evaluation was re-checking a patch: the patch did not
		// take, which is what the streak counts.
		if bumped, err := d.runs.BumpPatchStreak(ctx, r.ID); err == nil {
			streak = bumped
		} else {
			slog.Warn("Failed to bump patch streak", "run_id", r.ID, "error", err)
		}
	}

	f, err := d.failures.RecordFailure(ctx, services.RecordFailureRequest{
		Tenant:        r.Tenant,
		RunID:         r.ID,
		StepID:        qaStep.ID,
		Class:         failure.Class(class),
		Confidence:    0.8,
		LogExcerpt:    excerpt,
		Retryable:     class.Retryable(),
		RequiresHuman: class.RequiresHuman(),
	})
	if err != nil {
		return fmt.Errorf("recording evaluation failure: %w", err)
	}
	metrics.FailuresTotal.WithLabelValues(string(class)).Inc()

	return d.engageLadder(ctx, r, spec, qaStep, f, class, strings.Join(scope, ","), streak)
}

// engageLadder takes the ladder's decision for a failure and applies it
// to the run.
func (d *Driver) engageLadder(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, s *ent.Step, f *ent.Failure, class config.FailureClass, scope string, streak int) error {
	replansUsed, err := d.repairs.CountByPhase(ctx, r.ID, repairPhaseReplan)
	if err != nil {
		return fmt.Errorf("counting replans: %w", err)
	}
	maxReplans := spec.MaxIters - 1
	if maxReplans < 0 {
		maxReplans = 0
	}

	action := Decide(class, History{
		RetriesUsed: s.Attempts - 1,
		PatchStreak: streak,
		ReplansUsed: replansUsed,
		MaxReplans:  maxReplans,
	}, d.cfg.Scheduler.Retry)

	slog.Info("Repair ladder decision",
		"run_id", r.ID, "step_id", s.ID, "class", class,
		"action", action.Kind, "reason", action.Reason)
	d.appendTimeline(ctx, r, "repair.decision",
		fmt.Sprintf("%s: %s", action.Kind, action.Reason), s.ID)

	switch action.Kind {
	case ActionRetry:
		if err := d.breakers.Allow(ctx, r.Tenant, class); err != nil {
			slog.Warn("Retry deferred on open breaker", "run_id", r.ID, "class", class, "error", err)
			return nil
		}
		if _, err := d.repairs.RecordAttempt(ctx, services.RecordAttemptRequest{
			Tenant:        r.Tenant,
			RunID:         r.ID,
			FailureID:     f.ID,
			Phase:         repairPhaseRetry,
			Strategy:      "backoff",
			BackoffUsedMs: int(action.Backoff.Milliseconds()),
		}); err != nil {
			return fmt.Errorf("recording retry attempt: %w", err)
		}
		if err := d.retryStep(ctx, r, s.ID, class, action.Backoff); err != nil {
			return err
		}
		return d.transitionRun(ctx, r, r.State, run.StateRepairing)

	case ActionPatch:
		if _, err := d.repairs.RecordAttempt(ctx, services.RecordAttemptRequest{
			Tenant:    r.Tenant,
			RunID:     r.ID,
			FailureID: f.ID,
			Phase:     repairPhasePatch,
			Strategy:  "constrained_diff",
		}); err != nil {
			return fmt.Errorf("recording patch attempt: %w", err)
		}
		return d.transitionRun(ctx, r, r.State, run.StateRepairing)

	case ActionReplan:
		att, err := d.repairs.RecordAttempt(ctx, services.RecordAttemptRequest{
			Tenant:    r.Tenant,
			RunID:     r.ID,
			FailureID: f.ID,
			Phase:     repairPhaseReplan,
			Strategy:  "scoped_replan",
		})
		if err != nil {
			return fmt.Errorf("recording replan attempt: %w", err)
		}
		d.completeAttempt(ctx, att.ID, repairPhaseReplan, repairOutcomeSucceeded)
		if err := d.runs.SetReplanScope(ctx, r.ID, scope); err != nil {
			return fmt.Errorf("setting replan scope: %w", err)
		}
		if err := d.runs.AdvanceIteration(ctx, r.ID); err != nil {
			return fmt.Errorf("advancing iteration: %w", err)
		}
		d.appendTimeline(ctx, r, "repair.replan",
			fmt.Sprintf("replanning iteration %d, scope: %s", r.Iteration+1, scopeOrAll(scope)), s.ID)
		return d.transitionRun(ctx, r, r.State, run.StateDesigning)

	case ActionRollback:
		if _, err := d.repairs.RecordAttempt(ctx, services.RecordAttemptRequest{
			Tenant:    r.Tenant,
			RunID:     r.ID,
			FailureID: f.ID,
			Phase:     repairPhaseRollback,
			Strategy:  "last_green",
		}); err != nil {
			return fmt.Errorf("recording rollback attempt: %w", err)
		}
		return d.transitionRun(ctx, r, r.State, run.StateRollingBack)

	default: // ActionFail
		return d.finishRun(ctx, r, run.StateFailed, action.Reason)
	}
}

// advanceRepairing watches the pending repair attempt to its outcome.
func (d *Driver) advanceRepairing(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	att, err := d.pendingAttempt(ctx, r.ID)
	if err != nil {
		return err
	}
	if att == nil {
		// Nothing pending: the attempt settled but the transition was lost.
		return d.transitionRun(ctx, r, run.StateRepairing, run.StateEvaluating)
	}

	f, err := d.failures.GetFailure(ctx, att.FailureID)
	if err != nil {
		return fmt.Errorf("loading repaired failure: %w", err)
	}
	class := config.FailureClass(f.Class)

	switch att.Phase {
	case repairPhaseRetry:
		return d.watchRetry(ctx, r, spec, att, f)
	case repairPhasePatch:
		return d.watchPatch(ctx, r, spec, att, f, class)
	case repairPhaseReplan:
		d.completeAttempt(ctx, att.ID, repairPhaseReplan, repairOutcomeSucceeded)
		return d.transitionRun(ctx, r, run.StateRepairing, run.StateDesigning)
	default: // rollback
		return d.transitionRun(ctx, r, run.StateRepairing, run.StateRollingBack)
	}
}

// watchRetry follows the requeued step back to a terminal state.
func (d *Driver) watchRetry(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, att *ent.RepairAttempt, f *ent.Failure) error {
	s, err := d.steps.GetStep(ctx, f.StepID)
	if err != nil {
		return fmt.Errorf("loading retried step: %w", err)
	}
	switch s.State {
	case step.StateSucceeded:
		d.completeAttempt(ctx, att.ID, repairPhaseRetry, repairOutcomeSucceeded)
		return d.transitionRun(ctx, r, run.StateRepairing, stageFor(s.AgentRole))
	case step.StateFailed:
		d.completeAttempt(ctx, att.ID, repairPhaseRetry, repairOutcomeFailed)
		return d.handleFailedStep(ctx, r, spec, s)
	default:
		return nil
	}
}

// watchPatch dispatches the AutoFixer and validates its diff against the
// patch constraints before re-evaluating.
func (d *Driver) watchPatch(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, att *ent.RepairAttempt, f *ent.Failure, class config.FailureClass) error {
	byRole, err := d.currentSteps(ctx, r)
	if err != nil {
		return err
	}
	fx := byRole[step.AgentRoleAutoFixer]
	if fx == nil {
		_, err := d.dispatch(ctx, r, spec, step.AgentRoleAutoFixer, class)
		return d.absorbDispatchErr(ctx, r, err)
	}

	switch fx.State {
	case step.StateSucceeded:
		ok, violation, err := d.validatePatch(ctx, r)
		if err != nil {
			return err
		}
		if !ok {
			d.completeAttempt(ctx, att.ID, repairPhasePatch, repairOutcomeFailed)
			d.appendTimeline(ctx, r, "repair.patch_rejected", violation, fx.ID)
			streak, err := d.runs.BumpPatchStreak(ctx, r.ID)
			if err != nil {
				return fmt.Errorf("bumping patch streak: %w", err)
			}
			return d.engageLadder(ctx, r, spec, fx, f, class, "", streak)
		}
		// Valid patch: re-evaluate it. The patched diff changes the QA
		// input digest, so this enqueues a fresh step.
		if _, err := d.dispatch(ctx, r, spec, step.AgentRoleQaEvaluator, ""); err != nil {
			return d.absorbDispatchErr(ctx, r, err)
		}
		d.completeAttempt(ctx, att.ID, repairPhasePatch, repairOutcomeSucceeded)
		return d.transitionRun(ctx, r, run.StateRepairing, run.StateEvaluating)

	case step.StateFailed:
		d.completeAttempt(ctx, att.ID, repairPhasePatch, repairOutcomeFailed)
		if _, err := d.runs.BumpPatchStreak(ctx, r.ID); err != nil {
			slog.Warn("Failed to bump patch streak", "run_id", r.ID, "error", err)
		}
		return d.handleFailedStep(ctx, r, spec, fx)

	default:
		return nil
	}
}

// validatePatch enforces the AutoFixer constraints on the newest diff:
// size cap, deny paths, and the allowlist derived from the diff the
// patch repairs.
func (d *Driver) validatePatch(ctx context.Context, r *ent.Run) (bool, string, error) {
	kind := artifact.KindDiff
	diffs, err := d.artifacts.ListByRun(ctx, r.ID, &kind)
	if err != nil {
		return false, "", fmt.Errorf("listing diff artifacts: %w", err)
	}
	if len(diffs) == 0 {
		return false, "patch produced no diff artifact", nil
	}

	patch, err := d.artifacts.LoadPayload(ctx, diffs[len(diffs)-1])
	if err != nil {
		return false, "", fmt.Errorf("loading patch payload: %w", err)
	}

	patchCfg := d.cfg.Scheduler.Patch
	if patchCfg.MaxPatchBytes > 0 && len(patch) > patchCfg.MaxPatchBytes {
		return false, fmt.Sprintf("patch size %d exceeds cap %d", len(patch), patchCfg.MaxPatchBytes), nil
	}
	if agent.HasBinaryHunks(string(patch)) {
		return false, "patch contains binary hunks", nil
	}

	paths := agent.DiffPaths(string(patch))
	for _, p := range paths {
		for _, deny := range patchCfg.DenyPaths {
			if strings.HasPrefix(p, deny) {
				return false, fmt.Sprintf("patch touches denied path %s", p), nil
			}
		}
	}

	if len(diffs) > 1 {
		allowed := map[string]bool{}
		prev, err := d.artifacts.LoadPayload(ctx, diffs[len(diffs)-2])
		if err != nil {
			return false, "", fmt.Errorf("loading prior diff payload: %w", err)
		}
		for _, p := range agent.DiffPaths(string(prev)) {
			allowed[p] = true
		}
		for _, p := range paths {
			if !allowed[p] {
				return false, fmt.Sprintf("patch touches %s outside the allowlist", p), nil
			}
		}
	}

	return true, "", nil
}

// latestFailureForStep returns the step's most confident failure row
// (ties broken by the earliest row), creating an unknown-class one when
// the executor could not record it.
func (d *Driver) latestFailureForStep(ctx context.Context, r *ent.Run, s *ent.Step) (*ent.Failure, error) {
	rows, err := d.failures.ListByStep(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("listing step failures: %w", err)
	}
	if len(rows) > 0 {
		// ListByStep orders by created_at ascending, so a strict
		// greater-than keeps the earliest row on equal confidence.
		best := rows[0]
		for _, f := range rows[1:] {
			if f.Confidence > best.Confidence {
				best = f
			}
		}
		return best, nil
	}
	f, err := d.failures.RecordFailure(ctx, services.RecordFailureRequest{
		Tenant:     r.Tenant,
		RunID:      r.ID,
		StepID:     s.ID,
		Class:      failure.ClassUnknown,
		Confidence: 0.3,
		LogExcerpt: truncateExcerpt(stepError(s)),
		Retryable:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("recording fallback failure: %w", err)
	}
	return f, nil
}

// pendingAttempt returns the run's newest pending repair attempt.
func (d *Driver) pendingAttempt(ctx context.Context, runID string) (*ent.RepairAttempt, error) {
	attempts, err := d.repairs.ListByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("listing repair attempts: %w", err)
	}
	var pending *ent.RepairAttempt
	for _, a := range attempts {
		if a.Outcome == repairattempt.OutcomePending {
			pending = a
		}
	}
	return pending, nil
}

// lastAttemptWasPatch reports whether the newest repair attempt is a
// completed patch, meaning the current evaluation re-checked it.
func (d *Driver) lastAttemptWasPatch(ctx context.Context, runID string) bool {
	attempts, err := d.repairs.ListByRun(ctx, runID)
	if err != nil || len(attempts) == 0 {
		return false
	}
	last := attempts[len(attempts)-1]
	return last.Phase == repairPhasePatch && last.Outcome == repairOutcomeSucceeded
}

// completeAttempt finalizes a repair attempt and counts it.
func (d *Driver) completeAttempt(ctx context.Context, attemptID string, phase repairattempt.Phase, outcome repairattempt.Outcome) {
	if err := d.repairs.CompleteAttempt(ctx, attemptID, outcome); err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Warn("Failed to complete repair attempt", "attempt_id", attemptID, "error", err)
		}
		return
	}
	metrics.RepairsTotal.WithLabelValues(string(phase), string(outcome)).Inc()
}

// completePendingAttempt finalizes the newest pending attempt of the
// given phase, if one exists.
func (d *Driver) completePendingAttempt(ctx context.Context, runID string, phase repairattempt.Phase, outcome repairattempt.Outcome) {
	att, err := d.pendingAttempt(ctx, runID)
	if err != nil || att == nil || att.Phase != phase {
		return
	}
	d.completeAttempt(ctx, att.ID, phase, outcome)
}

// stepError returns the step's error message, empty when unset.
func stepError(s *ent.Step) string {
	if s.ErrorMessage == nil {
		return ""
	}
	return *s.ErrorMessage
}

// stageFor maps a step role back to the run state that waits on it.
func stageFor(role step.AgentRole) run.State {
	switch role {
	case step.AgentRoleProductArchitect:
		return run.StatePlanning
	case step.AgentRoleSystemDesigner, step.AgentRoleSecurityCompliance:
		return run.StateDesigning
	case step.AgentRoleCodegenEngineer:
		return run.StateGenerating
	default:
		return run.StateEvaluating
	}
}

func scopeOrAll(scope string) string {
	if scope == "" {
		return "full module set"
	}
	return scope
}

// failingCriteria lists the names of the criteria a report failed.
func failingCriteria(report *evaluator.Report) []string {
	var out []string
	for _, c := range report.Criteria {
		if !c.Passed {
			out = append(out, c.Name)
		}
	}
	return out
}
