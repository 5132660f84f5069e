package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/buildspec"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/google/uuid"
)

// Defaults applied when the submitted spec leaves the envelope open.
const (
	defaultMaxIters     = 5
	defaultTokenBudget  = 1_000_000
	defaultCostLimitUSD = 25.0
	defaultWallTimeS    = 3600

	// attemptsPerIteration sizes the step-attempt envelope: the seven
	// pipeline roles plus repair headroom per iteration.
	attemptsPerIteration = 10
)

// TerminalStates are the run states no transition may leave.
var TerminalStates = []run.State{
	run.StateSucceeded,
	run.StateFailed,
	run.StateCancelled,
}

// RunService manages the run lifecycle: spec freezing, compare-and-set
// state transitions, and usage accounting.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun freezes the submitted spec and creates the run with its budget
// envelope in one transaction. The run starts in draft; the orchestrator
// picks it up from there. The canary group is assigned by the caller and
// sticky for the run's lifetime.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest, group run.CanaryGroup) (*ent.Run, error) {
	if req.Source == "" {
		return nil, NewValidationError("source", "required")
	}
	if req.SourceKind == "" {
		req.SourceKind = string(buildspec.SourceKindText)
	}
	if req.SLAClass == "" {
		req.SLAClass = string(buildspec.SLAClassNormal)
	}
	if req.MaxIters <= 0 {
		req.MaxIters = defaultMaxIters
	}
	if req.TokenBudget <= 0 {
		req.TokenBudget = defaultTokenBudget
	}
	if req.CostLimitUSD <= 0 {
		req.CostLimitUSD = defaultCostLimitUSD
	}
	if req.WallTimeS <= 0 {
		req.WallTimeS = defaultWallTimeS
	}

	// Use background context with timeout for the critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	specBuilder := tx.BuildSpec.Create().
		SetID(uuid.New().String()).
		SetTenant(req.Tenant).
		SetSource(req.Source).
		SetSourceKind(buildspec.SourceKind(req.SourceKind)).
		SetSLAClass(buildspec.SLAClass(req.SLAClass)).
		SetReviewRequired(req.ReviewRequired).
		SetMaxIters(req.MaxIters).
		SetTokenBudget(req.TokenBudget).
		SetCostLimitUsd(req.CostLimitUSD).
		SetWallTimeS(req.WallTimeS)

	if req.Acceptance != nil {
		specBuilder.SetAcceptance(req.Acceptance)
	}
	if req.KPIGuards != nil {
		specBuilder.SetKpiGuards(req.KPIGuards)
	}
	if req.DomainTags != nil {
		specBuilder.SetDomainTags(req.DomainTags)
	}

	spec, err := specBuilder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create build spec: %w", err)
	}

	r, err := tx.Run.Create().
		SetID(uuid.New().String()).
		SetTenant(req.Tenant).
		SetSpecID(spec.ID).
		SetState(run.StateDraft).
		SetCanaryGroup(group).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	_, err = tx.Budget.Create().
		SetID(uuid.New().String()).
		SetTenant(req.Tenant).
		SetRunID(r.ID).
		SetCostLimitUsd(req.CostLimitUSD).
		SetTimeLimitS(req.WallTimeS).
		SetAttemptLimit(req.MaxIters * attemptsPerIteration).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().Where(run.IDEQ(runID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// GetRunDetail retrieves a run with its spec, budget, steps, and failures
func (s *RunService) GetRunDetail(ctx context.Context, runID string) (*models.RunDetailResponse, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		WithSpec().
		WithBudget().
		WithSteps(func(q *ent.StepQuery) {
			q.Order(ent.Asc(step.FieldCreatedAt))
		}).
		WithFailures().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &models.RunDetailResponse{
		Run:      r,
		Spec:     r.Edges.Spec,
		Budget:   r.Edges.Budget,
		Steps:    r.Edges.Steps,
		Failures: r.Edges.Failures,
	}, nil
}

// ListRuns lists runs with filtering and pagination
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.Run.Query()

	if filters.Tenant != "" {
		query = query.Where(run.TenantEQ(filters.Tenant))
	}
	if filters.State != "" {
		query = query.Where(run.StateEQ(run.State(filters.State)))
	}
	if filters.CanaryGroup != "" {
		query = query.Where(run.CanaryGroupEQ(run.CanaryGroup(filters.CanaryGroup)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(run.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(run.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(run.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	runs, err := query.
		Order(ent.Desc(run.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// ListByState returns non-deleted runs in the given states, oldest first.
// The orchestrator driver scans with this.
func (s *RunService) ListByState(ctx context.Context, states ...run.State) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.StateIn(states...), run.DeletedAtIsNil()).
		Order(ent.Asc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs by state: %w", err)
	}
	return runs, nil
}

// Transition moves a run from one state to another with compare-and-set
// semantics. Returns ErrConcurrentModification when the run is no longer
// in the expected state.
func (s *RunService) Transition(ctx context.Context, runID string, from, to run.State) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StateEQ(from)).
		SetState(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition run %s %s->%s: %w", runID, from, to, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// Start moves a draft run into planning and stamps started_at
func (s *RunService) Start(ctx context.Context, runID string) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StateEQ(run.StateDraft)).
		SetState(run.StatePlanning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to start run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// Pause parks a run awaiting approval, remembering the state to resume to
func (s *RunService) Pause(ctx context.Context, runID string, from run.State, resumeTo run.State) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StateEQ(from)).
		SetState(run.StatePausedAwaitingApproval).
		SetPausedState(string(resumeTo)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// Resume moves a paused run back to its remembered state
func (s *RunService) Resume(ctx context.Context, runID string) error {
	r, err := s.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if r.State != run.StatePausedAwaitingApproval || r.PausedState == nil {
		return ErrInvalidTransition
	}

	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StateEQ(run.StatePausedAwaitingApproval)).
		SetState(run.State(*r.PausedState)).
		ClearPausedState().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// Complete moves a run to a terminal state. Idempotent loser: returns
// ErrInvalidTransition when the run is already terminal.
func (s *RunService) Complete(ctx context.Context, runID string, terminal run.State, reason string) error {
	updater := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StateNotIn(TerminalStates...)).
		SetState(terminal).
		SetCompletedAt(time.Now())
	if reason != "" {
		updater.SetTerminalReason(reason)
	}

	n, err := updater.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// Cancel moves a non-terminal run to cancelled
func (s *RunService) Cancel(ctx context.Context, runID string, reason string) error {
	return s.Complete(ctx, runID, run.StateCancelled, reason)
}

// AddUsage accumulates token and cost usage onto the run counters
func (s *RunService) AddUsage(ctx context.Context, runID string, tokens int, costUSD float64) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID)).
		AddTokensUsed(tokens).
		AddCostUsedUsd(costUSD).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to add usage to run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AdvanceIteration bumps the iteration counter for the next
// plan-generate-evaluate cycle
func (s *RunService) AdvanceIteration(ctx context.Context, runID string) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID)).
		AddIteration(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance iteration of run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkGreen records the iteration whose evaluation passed and resets the
// patch streak. The recorded iteration is the rollback target.
func (s *RunService) MarkGreen(ctx context.Context, runID string, iteration int) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID)).
		SetLastGreenIteration(iteration).
		SetPatchStreak(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run %s green: %w", runID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// BumpPatchStreak counts a failed patch attempt toward the replan trigger
func (s *RunService) BumpPatchStreak(ctx context.Context, runID string) (int, error) {
	r, err := s.client.Run.UpdateOneID(runID).
		AddPatchStreak(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to bump patch streak of run %s: %w", runID, err)
	}
	return r.PatchStreak, nil
}

// SetReplanScope records the failing modules for a scoped replan
func (s *RunService) SetReplanScope(ctx context.Context, runID string, scope string) error {
	updater := s.client.Run.Update().Where(run.IDEQ(runID))
	if scope == "" {
		updater.ClearReplanScope()
	} else {
		updater.SetReplanScope(scope)
	}
	n, err := updater.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set replan scope of run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks a run deleted for the retention policy. Data stays
// until the cleanup service hard-deletes it.
func (s *RunService) SoftDelete(ctx context.Context, runID string) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete run %s: %w", runID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteTerminalBefore applies the retention policy: terminal runs
// that completed before the cutoff are marked deleted in one statement.
// Idempotent, safe to run from multiple pods.
func (s *RunService) SoftDeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Run.Update().
		Where(
			run.StateIn(TerminalStates...),
			run.CompletedAtLT(cutoff),
			run.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete runs past retention: %w", err)
	}
	return n, nil
}

// GetSpec loads the frozen spec of a run
func (s *RunService) GetSpec(ctx context.Context, runID string) (*ent.BuildSpec, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		WithSpec().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run spec: %w", err)
	}
	if r.Edges.Spec == nil {
		return nil, ErrNotFound
	}
	return r.Edges.Spec, nil
}

// GetBudget loads the budget row of a run
func (s *RunService) GetBudget(ctx context.Context, runID string) (*ent.Budget, error) {
	b, err := s.client.Budget.Query().
		Where(budget.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return b, nil
}
