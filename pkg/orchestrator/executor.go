package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/chaos"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/forgeworks/metabuild/pkg/metrics"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/scheduler"
	"github.com/forgeworks/metabuild/pkg/services"
)

// maxExcerptLen bounds the log excerpt stored on a failure row.
const maxExcerptLen = 2000

// Executor runs claimed steps through the agent catalogue. It is the
// queue pool's StepExecutor: the worker handles leasing and terminal
// state, the executor handles the agent invocation and its side effects
// (artifact persistence, usage accounting, failure records, breaker
// counts, trace capture).
type Executor struct {
	catalogue *agent.Catalogue
	blobs     blobstore.Store
	injector  *chaos.Injector
	masker    *masking.Service

	runs      *services.RunService
	artifacts *services.ArtifactService
	failures  *services.FailureService
	budgets   *services.BudgetService
	timeline  *services.TimelineService
	breakers  *scheduler.BreakerService
}

// NewExecutor creates an Executor.
func NewExecutor(
	catalogue *agent.Catalogue,
	blobs blobstore.Store,
	injector *chaos.Injector,
	masker *masking.Service,
	runs *services.RunService,
	artifacts *services.ArtifactService,
	failures *services.FailureService,
	budgets *services.BudgetService,
	timeline *services.TimelineService,
	breakers *scheduler.BreakerService,
) *Executor {
	return &Executor{
		catalogue: catalogue,
		blobs:     blobs,
		injector:  injector,
		masker:    masker,
		runs:      runs,
		artifacts: artifacts,
		failures:  failures,
		budgets:   budgets,
		timeline:  timeline,
		breakers:  breakers,
	}
}

// Execute runs one claimed step to a terminal result. Errors that
// escape the agent become failure rows; the returned result carries
// them to the step row via the worker.
func (e *Executor) Execute(ctx context.Context, s *ent.Step) *queue.ExecutionResult {
	in, err := e.loadInput(ctx, s)
	if err != nil {
		return e.failed(ctx, s, agent.WrapError(agent.KindInternal, "failed to load step input", err))
	}

	if err := e.injector.Inject(s.AgentRole); err != nil {
		return e.failed(ctx, s, err)
	}

	a, err := e.catalogue.Get(s.AgentRole)
	if err != nil {
		return e.failed(ctx, s, agent.WrapError(agent.KindInternal, "unknown agent role", err))
	}

	out, err := a.Execute(ctx, in)
	if err != nil {
		return e.failed(ctx, s, err)
	}

	return e.succeeded(ctx, s, out)
}

// loadInput fetches and decodes the input blob the dispatcher stored.
func (e *Executor) loadInput(ctx context.Context, s *ent.Step) (*agent.Input, error) {
	payload, err := e.blobs.Get(ctx, s.InputRef)
	if err != nil {
		return nil, fmt.Errorf("fetching input blob %s: %w", s.InputRef, err)
	}
	var in agent.Input
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("decoding input blob %s: %w", s.InputRef, err)
	}
	in.StepID = s.ID
	return &in, nil
}

func (e *Executor) succeeded(ctx context.Context, s *ent.Step, out *agent.Output) *queue.ExecutionResult {
	payload := e.masker.MaskBytes(out.Payload)

	art, err := e.artifacts.StoreArtifact(ctx, s.Tenant, s.RunID, s.Iteration, out.Kind, payload)
	if err != nil {
		return e.failed(ctx, s, agent.WrapError(agent.KindInternal, "failed to store artifact", err))
	}

	if out.CostUSD > 0 || out.TokensIn+out.TokensOut > 0 {
		if err := e.runs.AddUsage(ctx, s.RunID, out.TokensIn+out.TokensOut, out.CostUSD); err != nil {
			slog.Warn("Failed to record run usage", "run_id", s.RunID, "error", err)
		}
		tier := ""
		if s.ModelTier != nil {
			tier = string(*s.ModelTier)
		}
		metrics.RecordUsage(tier, out.TokensIn, out.TokensOut, out.CostUSD)
	}
	if err := e.budgets.Charge(ctx, s.RunID, out.CostUSD, 1); err != nil {
		slog.Warn("Failed to charge budget", "run_id", s.RunID, "error", err)
	}

	e.recordTrace(ctx, s, out)
	e.closeBreakerAfterRecovery(ctx, s)

	return &queue.ExecutionResult{
		State:     step.StateSucceeded,
		OutputRef: art.StorageRef,
		TokensIn:  out.TokensIn,
		TokensOut: out.TokensOut,
		CostUSD:   out.CostUSD,
	}
}

// failed records the failure under the taxonomy and counts it into the
// class breaker before returning the failed result.
func (e *Executor) failed(ctx context.Context, s *ent.Step, execErr error) *queue.ExecutionResult {
	agentErr := agent.AsError(execErr)
	class, confidence := classifyAgentError(agentErr)
	excerpt := truncateExcerpt(e.masker.MaskString(agentErr.Error()))

	if _, err := e.failures.RecordFailure(ctx, services.RecordFailureRequest{
		Tenant:        s.Tenant,
		RunID:         s.RunID,
		StepID:        s.ID,
		Class:         failure.Class(class),
		Confidence:    confidence,
		LogExcerpt:    excerpt,
		Retryable:     class.Retryable(),
		RequiresHuman: class.RequiresHuman(),
	}); err != nil {
		slog.Error("Failed to record failure", "step_id", s.ID, "class", class, "error", err)
	}

	if err := e.breakers.RecordFailure(ctx, s.Tenant, class); err != nil {
		slog.Warn("Failed to count breaker failure", "tenant", s.Tenant, "class", class, "error", err)
	}
	metrics.FailuresTotal.WithLabelValues(string(class)).Inc()

	slog.Warn("Step execution failed",
		"step_id", s.ID, "run_id", s.RunID, "role", s.AgentRole,
		"class", class, "kind", agentErr.Kind)

	return &queue.ExecutionResult{State: step.StateFailed, Err: agentErr}
}

// recordTrace appends the agent's prompt and tool calls to the timeline
// so the replay bundle can reconstruct the invocation.
func (e *Executor) recordTrace(ctx context.Context, s *ent.Step, out *agent.Output) {
	if out.Trace.Prompt == "" && len(out.Trace.ToolCalls) == 0 {
		return
	}
	details := map[string]interface{}{
		"prompt": e.masker.MaskString(out.Trace.Prompt),
	}
	if len(out.Trace.ToolCalls) > 0 {
		details["tool_calls"] = out.Trace.ToolCalls
	}
	if _, err := e.timeline.Append(ctx, s.Tenant, s.RunID, "step.trace",
		fmt.Sprintf("%s trace", s.AgentRole), s.ID, details); err != nil {
		slog.Warn("Failed to record step trace", "step_id", s.ID, "error", err)
	}
}

// closeBreakerAfterRecovery reports a success for the class of the
// step's prior failure, if it has one. A succeeding retry of a failed
// step is exactly the half-open probe the breaker waits for.
func (e *Executor) closeBreakerAfterRecovery(ctx context.Context, s *ent.Step) {
	if s.Attempts <= 1 {
		return
	}
	rows, err := e.failures.ListByStep(ctx, s.ID)
	if err != nil || len(rows) == 0 {
		return
	}
	class := config.FailureClass(rows[len(rows)-1].Class)
	if err := e.breakers.RecordSuccess(ctx, s.Tenant, class); err != nil {
		slog.Warn("Failed to record breaker success", "tenant", s.Tenant, "class", class, "error", err)
	}
}

func truncateExcerpt(s string) string {
	if len(s) <= maxExcerptLen {
		return s
	}
	return s[:maxExcerptLen]
}

var _ queue.StepExecutor = (*Executor)(nil)
