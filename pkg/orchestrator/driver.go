package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/scheduler"
	"github.com/forgeworks/metabuild/pkg/services"
)

// defaultScanInterval is the fallback cadence of the run scan when no
// wake event arrives.
const defaultScanInterval = 2 * time.Second

// activeStates are the run states the driver advances. Terminal and
// draft-deleted runs are never scanned.
var activeStates = []run.State{
	run.StateDraft,
	run.StatePlanning,
	run.StateDesigning,
	run.StateGenerating,
	run.StateEvaluating,
	run.StateRepairing,
	run.StateRollingBack,
	run.StatePausedAwaitingApproval,
}

// Driver is the run state machine. It scans active runs, dispatches the
// next agent step for each, reacts to settled steps, and engages the
// repair ladder on failures. All state lives in the database; any
// number of driver replicas may scan concurrently because every
// transition is a compare-and-set.
type Driver struct {
	client    *ent.Client
	cfg       *config.Config
	blobs     blobstore.Store
	queue     *queue.Service
	sched     *scheduler.Scheduler
	breakers  *scheduler.BreakerService
	catalogue *agent.Catalogue
	events    *events.Publisher

	runs      *services.RunService
	steps     *services.StepService
	artifacts *services.ArtifactService
	failures  *services.FailureService
	repairs   *services.RepairService
	budgets   *services.BudgetService
	approvals *services.ApprovalService
	timeline  *services.TimelineService
	replays   *services.ReplayService
	canaries  *services.CanaryService

	scanInterval time.Duration

	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDriver creates a Driver over the shared clients and services.
func NewDriver(
	client *ent.Client,
	cfg *config.Config,
	blobs blobstore.Store,
	masker *masking.Service,
	qsvc *queue.Service,
	sched *scheduler.Scheduler,
	breakers *scheduler.BreakerService,
	catalogue *agent.Catalogue,
	publisher *events.Publisher,
) *Driver {
	return &Driver{
		client:    client,
		cfg:       cfg,
		blobs:     blobs,
		queue:     qsvc,
		sched:     sched,
		breakers:  breakers,
		catalogue: catalogue,
		events:    publisher,

		runs:      services.NewRunService(client),
		steps:     services.NewStepService(client),
		artifacts: services.NewArtifactService(client, blobs),
		failures:  services.NewFailureService(client, masker),
		repairs:   services.NewRepairService(client),
		budgets:   services.NewBudgetService(client),
		approvals: services.NewApprovalService(client),
		timeline:  services.NewTimelineService(client),
		replays:   services.NewReplayService(client),
		canaries:  services.NewCanaryService(client),

		scanInterval: defaultScanInterval,
		wakeCh:       make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
	}
}

// Start launches the scan loop.
func (d *Driver) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.loop(ctx)
	slog.Info("Orchestrator driver started", "scan_interval", d.scanInterval)
}

// Stop terminates the scan loop and waits for the in-flight scan.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
	slog.Info("Orchestrator driver stopped")
}

// Wake schedules an immediate scan. Non-blocking; a pending wake-up is
// enough, the scan covers all runs.
func (d *Driver) Wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

// HandleNotification is the NOTIFY handler to register on the events
// listener for the orchestrator channel.
func (d *Driver) HandleNotification(channel string, payload []byte) {
	d.Wake()
}

func (d *Driver) loop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-d.wakeCh:
		}
		d.scanOnce(ctx)
	}
}

// scanOnce advances every active run by one observation. Errors on one
// run never block the others.
func (d *Driver) scanOnce(ctx context.Context) {
	runs, err := d.runs.ListByState(ctx, activeStates...)
	if err != nil {
		slog.Error("Run scan failed", "error", err)
		return
	}
	for _, r := range runs {
		if err := d.advance(ctx, r); err != nil {
			slog.Error("Failed to advance run", "run_id", r.ID, "state", r.State, "error", err)
		}
		select {
		case <-d.stopCh:
			return
		default:
		}
	}
}

// advance moves one run forward by at most one transition. Re-entrant:
// the handlers only ever observe persisted step state and CAS the run,
// so a lost race surfaces as ErrConcurrentModification and the next
// scan re-reads.
func (d *Driver) advance(ctx context.Context, r *ent.Run) error {
	spec, err := d.runs.GetSpec(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	if exceeded, reason := d.wallClockExceeded(r, spec); exceeded {
		return d.finishRun(ctx, r, run.StateFailed, reason)
	}

	switch r.State {
	case run.StateDraft:
		return d.advanceDraft(ctx, r)
	case run.StatePlanning:
		return d.advancePlanning(ctx, r, spec)
	case run.StateDesigning:
		return d.advanceDesigning(ctx, r, spec)
	case run.StateGenerating:
		return d.advanceGenerating(ctx, r, spec)
	case run.StateEvaluating:
		return d.advanceEvaluating(ctx, r, spec)
	case run.StateRepairing:
		return d.advanceRepairing(ctx, r, spec)
	case run.StateRollingBack:
		return d.advanceRollingBack(ctx, r)
	case run.StatePausedAwaitingApproval:
		return d.advancePaused(ctx, r, spec)
	default:
		return nil
	}
}

// wallClockExceeded applies the spec's wall-time budget to a started run.
func (d *Driver) wallClockExceeded(r *ent.Run, spec *ent.BuildSpec) (bool, string) {
	if spec.WallTimeS <= 0 || r.StartedAt == nil {
		return false, ""
	}
	limit := time.Duration(spec.WallTimeS) * time.Second
	if elapsed := time.Since(*r.StartedAt); elapsed > limit {
		return true, fmt.Sprintf("wall clock budget exceeded: %s elapsed, %s allowed",
			elapsed.Round(time.Second), limit)
	}
	return false, ""
}

// advanceDraft starts the run: draft → planning with started_at set.
func (d *Driver) advanceDraft(ctx context.Context, r *ent.Run) error {
	if err := d.runs.Start(ctx, r.ID); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return nil
		}
		return err
	}
	d.publishRunStatus(ctx, r.Tenant, r.ID, run.StatePlanning, r.Iteration, "")
	d.appendTimeline(ctx, r, "run.started", "run started", "")
	d.Wake()
	return nil
}

func (d *Driver) advancePlanning(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	byRole, err := d.currentSteps(ctx, r)
	if err != nil {
		return err
	}
	return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleProductArchitect, func() error {
		return d.transitionRun(ctx, r, run.StatePlanning, run.StateDesigning)
	})
}

func (d *Driver) advanceGenerating(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	byRole, err := d.currentSteps(ctx, r)
	if err != nil {
		return err
	}
	return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleCodegenEngineer, func() error {
		return d.transitionRun(ctx, r, run.StateGenerating, run.StateEvaluating)
	})
}

// advanceDesigning covers two pipeline stages: SystemDesigner, then
// SecurityCompliance over the designer's plan. The security outcome may
// demand an approval gate before generation starts.
func (d *Driver) advanceDesigning(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	byRole, err := d.currentSteps(ctx, r)
	if err != nil {
		return err
	}
	return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleSystemDesigner, func() error {
		return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleSecurityCompliance, func() error {
			return d.afterSecurityReview(ctx, r)
		})
	})
}

// advanceEvaluating covers the back half of the pipeline: QAEvaluator,
// then on a green report DevOps and Reviewer, then the optional human
// review gate, then success.
func (d *Driver) advanceEvaluating(ctx context.Context, r *ent.Run, spec *ent.BuildSpec) error {
	byRole, err := d.currentSteps(ctx, r)
	if err != nil {
		return err
	}
	return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleQaEvaluator, func() error {
		report, err := d.latestEvalReport(ctx, r)
		if err != nil {
			return err
		}
		if !report.Passed {
			return d.handleEvalFailure(ctx, r, spec, byRole[step.AgentRoleQaEvaluator], report)
		}

		if r.LastGreenIteration == nil || *r.LastGreenIteration != r.Iteration {
			if err := d.runs.MarkGreen(ctx, r.ID, r.Iteration); err != nil {
				return err
			}
			d.appendTimeline(ctx, r, "run.green",
				fmt.Sprintf("evaluation passed with score %.3f", report.Score), "")
		}

		return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleDevops, func() error {
			return d.ensureStage(ctx, r, spec, byRole, step.AgentRoleReviewer, func() error {
				return d.finishOrGateReview(ctx, r, spec)
			})
		})
	})
}

// ensureStage is the idempotent unit of pipeline progress: dispatch the
// role if it has no step this iteration, wait while it is in flight,
// run the continuation once it has succeeded, engage failure handling
// when it has failed.
func (d *Driver) ensureStage(ctx context.Context, r *ent.Run, spec *ent.BuildSpec, byRole map[step.AgentRole]*ent.Step, role step.AgentRole, onSuccess func() error) error {
	s := byRole[role]
	if s == nil {
		_, err := d.dispatch(ctx, r, spec, role, "")
		return d.absorbDispatchErr(ctx, r, err)
	}

	switch s.State {
	case step.StateSucceeded:
		return onSuccess()
	case step.StateFailed:
		return d.handleFailedStep(ctx, r, spec, s)
	default:
		// queued, leased, running, or skipped: nothing to do yet.
		return nil
	}
}

// absorbDispatchErr maps dispatch outcomes onto run progress: budget
// exhaustion terminates the run, backpressure and open breakers leave
// it for the next scan, anything else propagates.
func (d *Driver) absorbDispatchErr(ctx context.Context, r *ent.Run, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errBudgetExceeded):
		return d.finishRun(ctx, r, run.StateFailed, err.Error())
	case errors.Is(err, queue.ErrQueueFull):
		slog.Warn("Dispatch deferred on backpressure", "run_id", r.ID)
		return nil
	case errors.Is(err, scheduler.ErrCircuitOpen):
		slog.Warn("Dispatch deferred on open breaker", "run_id", r.ID, "error", err)
		return nil
	default:
		return err
	}
}

// currentSteps maps the run's current-iteration steps by role, keeping
// the newest step per role (a requeued retry reuses its row; a patch
// re-evaluation creates a fresh one).
func (d *Driver) currentSteps(ctx context.Context, r *ent.Run) (map[step.AgentRole]*ent.Step, error) {
	steps, err := d.steps.StepsForIteration(ctx, r.ID, r.Iteration)
	if err != nil {
		return nil, fmt.Errorf("loading iteration steps: %w", err)
	}
	byRole := make(map[step.AgentRole]*ent.Step, len(steps))
	for _, s := range steps {
		prev, ok := byRole[s.AgentRole]
		if !ok || s.CreatedAt.After(prev.CreatedAt) {
			byRole[s.AgentRole] = s
		}
	}
	return byRole, nil
}

// latestEvalReport loads and parses the newest eval_report artifact.
func (d *Driver) latestEvalReport(ctx context.Context, r *ent.Run) (*evaluator.Report, error) {
	art, err := d.artifacts.LatestForIteration(ctx, r.ID, r.Iteration, artifact.KindEvalReport)
	if err != nil {
		return nil, fmt.Errorf("loading eval report: %w", err)
	}
	payload, err := d.artifacts.LoadPayload(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("loading eval report payload: %w", err)
	}
	return evaluator.ParseReport(payload)
}

// transitionRun advances the run state, treating a lost CAS as already
// handled by a concurrent driver.
func (d *Driver) transitionRun(ctx context.Context, r *ent.Run, from, to run.State) error {
	if err := d.runs.Transition(ctx, r.ID, from, to); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return nil
		}
		return err
	}
	d.publishRunStatus(ctx, r.Tenant, r.ID, to, r.Iteration, "")
	d.Wake()
	return nil
}

func (d *Driver) publishRunStatus(ctx context.Context, tenant, runID string, state run.State, iteration int, reason string) {
	if err := d.events.PublishRunStatus(ctx, tenant, runID, events.RunStatusPayload{
		RunID:     runID,
		State:     state,
		Iteration: iteration,
		Reason:    reason,
	}); err != nil {
		slog.Warn("Failed to publish run status", "run_id", runID, "state", state, "error", err)
	}
}

func (d *Driver) appendTimeline(ctx context.Context, r *ent.Run, kind, message, stepID string) {
	if _, err := d.timeline.Append(ctx, r.Tenant, r.ID, kind, message, stepID, nil); err != nil {
		slog.Warn("Failed to append timeline event", "run_id", r.ID, "kind", kind, "error", err)
	}
}

// securityReview is the annotation envelope the SecurityCompliance agent
// wraps around the plan.
type securityReview struct {
	ApprovalRequired bool   `json:"approval_required"`
	ApprovalReason   string `json:"approval_reason"`
}

// parseSecurityReview decodes the approval demand from the annotated
// plan artifact.
func parseSecurityReview(payload []byte) (securityReview, error) {
	var review securityReview
	if err := json.Unmarshal(payload, &review); err != nil {
		return review, fmt.Errorf("decoding annotated plan: %w", err)
	}
	return review, nil
}
