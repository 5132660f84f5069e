package orchestrator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/chaos"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/scheduler"
	"github.com/forgeworks/metabuild/pkg/services"
	"github.com/forgeworks/metabuild/pkg/tools"
	"github.com/forgeworks/metabuild/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Canned completions for the scripted model. The content stays clear of
// the security markers so runs only pause when a test asks for it.
const (
	cannedStructuredPlan = `{"entities":["item","location"],"workflows":["receive stock","adjust counts"]}`

	cannedScaffoldPlan = `{"modules":[{"name":"inventory","files":["internal/inventory/service.go"]}]}`

	cannedDiff = "--- a/internal/inventory/service.go\n" +
		"+++ b/internal/inventory/service.go\n" +
		"@@ -0,0 +1,4 @@\n" +
		"+package inventory\n" +
		"+\n" +
		"+// Service tracks stock levels per location.\n" +
		"+type Service struct{}\n"

	cannedFixDiff = "--- a/internal/inventory/service.go\n" +
		"+++ b/internal/inventory/service.go\n" +
		"@@ -1,4 +1,6 @@\n" +
		" package inventory\n" +
		"+\n" +
		"+// Adjustments append an audit log entry.\n" +
		" // Service tracks stock levels per location.\n" +
		" type Service struct{}\n"
)

// scriptedLLM answers each role from its system prompt. Deterministic,
// so step digests and artifact content are stable across scans.
type scriptedLLM struct {
	mu           sync.Mutex
	codegenCalls int
	fixerCalls   int
}

func (s *scriptedLLM) Complete(_ context.Context, req agent.CompletionRequest) (*agent.CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var text string
	switch {
	case strings.Contains(req.SystemPrompt, "product architect"):
		text = cannedStructuredPlan
	case strings.Contains(req.SystemPrompt, "system designer"):
		text = cannedScaffoldPlan
	case strings.Contains(req.SystemPrompt, "code generation"):
		s.codegenCalls++
		text = cannedDiff
	case strings.Contains(req.SystemPrompt, "automated fixer"):
		s.fixerCalls++
		text = cannedFixDiff
	default:
		return nil, agent.NewError(agent.KindInternal, "unexpected system prompt")
	}
	return &agent.CompletionResult{Text: text, TokensIn: 200, TokensOut: 120}, nil
}

func (s *scriptedLLM) Close() error { return nil }

type testPipeline struct {
	client    *ent.Client
	runs      *services.RunService
	approvals *services.ApprovalService
	replays   *services.ReplayService
	driver    *Driver
}

// startPipeline wires the full loop: driver, worker pool, and executor
// over one test schema, with fast scan and poll cadences. Options tweak
// the config before anything is built.
func startPipeline(t *testing.T, llm agent.LLMClient, opts ...func(*config.Config)) *testPipeline {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := &config.Config{
		Queue:         fastQueueConfig(),
		Scheduler:     config.DefaultSchedulerConfig(),
		Canary:        config.DefaultCanaryConfig(),
		Chaos:         config.DefaultChaosConfig(),
		Evaluator:     config.DefaultEvaluatorConfig(),
		LLM:           config.DefaultLLMConfig(),
		Retention:     config.DefaultRetentionConfig(),
		DefaultTenant: "default",
	}
	cfg.Scheduler.Retry.BaseDelay = 20 * time.Millisecond
	cfg.Scheduler.Retry.MaxDelay = 100 * time.Millisecond
	for _, opt := range opts {
		opt(cfg)
	}

	blobs := blobstore.NewEntStore(client)
	masker := masking.NewService()
	publisher := events.NewPublisher(db)
	qsvc := queue.NewService(client, cfg.Queue)
	sched := scheduler.NewScheduler(cfg.Scheduler, client)
	breakers := scheduler.NewBreakerService(client, cfg.Scheduler.Breaker)
	harness := evaluator.NewHarness(cfg.Evaluator, nil, tools.Policy{})
	catalogue := agent.NewCatalogue(llm, cfg.LLM, harness, cfg.Evaluator)

	executor := NewExecutor(
		catalogue, blobs, chaos.NewInjector(cfg.Chaos), masker,
		services.NewRunService(client),
		services.NewArtifactService(client, blobs),
		services.NewFailureService(client, masker),
		services.NewBudgetService(client),
		services.NewTimelineService(client),
		breakers,
	)

	pool := queue.NewWorkerPool(client, database.NewClientFromEnt(client, db), cfg.Queue, executor, publisher, "pod-test")
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	d := NewDriver(client, cfg, blobs, masker, qsvc, sched, breakers, catalogue, publisher)
	d.scanInterval = 25 * time.Millisecond
	d.Start(ctx)
	t.Cleanup(d.Stop)

	return &testPipeline{
		client:    client,
		runs:      services.NewRunService(client),
		approvals: services.NewApprovalService(client),
		replays:   services.NewReplayService(client),
		driver:    d,
	}
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.HeartbeatInterval = 20 * time.Millisecond
	cfg.LeaseTTL = 2 * time.Second
	cfg.StepTimeout = 5 * time.Second
	cfg.GracefulShutdownTimeout = 5 * time.Second
	cfg.OrphanDetectionInterval = time.Hour
	return cfg
}

func (p *testPipeline) waitForState(t *testing.T, runID string, want run.State) *ent.Run {
	t.Helper()
	var last *ent.Run
	require.Eventually(t, func() bool {
		r, err := p.runs.GetRun(context.Background(), runID)
		if err != nil {
			return false
		}
		last = r
		return r.State == want
	}, 30*time.Second, 25*time.Millisecond, "run never reached %s (last: %+v)", want, last)
	return last
}

func (p *testPipeline) artifactKinds(t *testing.T, runID string) map[artifact.Kind]int {
	t.Helper()
	arts := p.client.Artifact.Query().
		Where(artifact.RunIDEQ(runID)).
		AllX(context.Background())
	kinds := map[artifact.Kind]int{}
	for _, a := range arts {
		kinds[a.Kind]++
	}
	return kinds
}

func TestPipelineRunsToSuccess(t *testing.T) {
	p := startPipeline(t, &scriptedLLM{})
	ctx := context.Background()

	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:   "default",
		Source:   "Build an inventory tracker with stock adjustments",
		MaxIters: 3,
		Acceptance: []map[string]interface{}{
			{"kind": "contains", "field": agent.ArtifactDiff, "value": "stock"},
		},
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	done := p.waitForState(t, r.ID, run.StateSucceeded)

	require.NotNil(t, done.TerminalReason)
	assert.Equal(t, "evaluation passed", *done.TerminalReason)
	require.NotNil(t, done.LastGreenIteration)
	assert.Equal(t, 1, *done.LastGreenIteration)
	assert.Greater(t, done.CostUsedUsd, 0.0)
	assert.Greater(t, done.TokensUsed, 0)

	// Every pipeline stage left its artifact.
	kinds := p.artifactKinds(t, r.ID)
	assert.GreaterOrEqual(t, kinds[artifact.KindPlan], 2) // structured + annotated
	assert.Equal(t, 1, kinds[artifact.KindDiff])
	assert.Equal(t, 1, kinds[artifact.KindEvalReport])
	assert.Equal(t, 1, kinds[artifact.KindBundleZip])
	assert.Equal(t, 1, kinds[artifact.KindPrBody])

	// Seven roles, one step each, all green.
	steps := p.client.Step.Query().AllX(ctx)
	assert.Len(t, steps, 7)
	for _, s := range steps {
		assert.Equal(t, step.StateSucceeded, s.State, "role %s", s.AgentRole)
	}

	sample := p.client.CanarySample.Query().
		Where(canarysample.RunIDEQ(r.ID)).
		OnlyX(ctx)
	assert.True(t, sample.Success)
	assert.Equal(t, canarysample.GroupControl, sample.Group)
}

func TestEvalFailureRepairsWithPatch(t *testing.T) {
	llm := &scriptedLLM{}
	p := startPipeline(t, llm)
	ctx := context.Background()

	// The generated diff lacks the audit entry; only the fixer's patch
	// carries it, so the first evaluation fails and the ladder patches.
	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:   "default",
		Source:   "Build an inventory tracker that records every adjustment",
		MaxIters: 3,
		Acceptance: []map[string]interface{}{
			{"kind": "contains", "field": agent.ArtifactDiff, "value": "audit log"},
		},
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	p.waitForState(t, r.ID, run.StateSucceeded)

	llm.mu.Lock()
	fixerCalls := llm.fixerCalls
	llm.mu.Unlock()
	assert.Equal(t, 1, fixerCalls)

	attempts := p.client.RepairAttempt.Query().
		Where(repairattempt.RunIDEQ(r.ID)).
		AllX(ctx)
	require.Len(t, attempts, 1)
	assert.Equal(t, repairattempt.PhasePatch, attempts[0].Phase)
	assert.Equal(t, repairattempt.OutcomeSucceeded, attempts[0].Outcome)

	// The patch produced a second diff and a second, passing evaluation.
	kinds := p.artifactKinds(t, r.ID)
	assert.Equal(t, 2, kinds[artifact.KindDiff])
	assert.Equal(t, 2, kinds[artifact.KindEvalReport])

	fresh, err := p.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.LastGreenIteration)
	assert.Equal(t, 1, *fresh.LastGreenIteration)
}

func TestSecurityGatePausesUntilApproved(t *testing.T) {
	p := startPipeline(t, &scriptedLLM{})
	ctx := context.Background()

	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:     "default",
		Source:     "Build an inventory tracker with supplier settlement",
		MaxIters:   3,
		DomainTags: []string{"payment"},
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	p.waitForState(t, r.ID, run.StatePausedAwaitingApproval)

	gate, err := p.approvals.PendingForRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "security", gate.RequiredRole)
	assert.Contains(t, gate.Reason, "PCI review")

	_, err = p.approvals.Decide(ctx, gate.ID, approvalgate.DecisionApproved, "ops@example.com")
	require.NoError(t, err)
	p.driver.Wake()

	p.waitForState(t, r.ID, run.StateSucceeded)
}

func TestSecurityGateRejectionFailsRun(t *testing.T) {
	p := startPipeline(t, &scriptedLLM{})
	ctx := context.Background()

	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:     "default",
		Source:     "Build an inventory tracker with supplier settlement",
		MaxIters:   3,
		DomainTags: []string{"payment"},
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	p.waitForState(t, r.ID, run.StatePausedAwaitingApproval)

	gate, err := p.approvals.PendingForRun(ctx, r.ID)
	require.NoError(t, err)
	_, err = p.approvals.Decide(ctx, gate.ID, approvalgate.DecisionRejected, "ops@example.com")
	require.NoError(t, err)
	p.driver.Wake()

	done := p.waitForState(t, r.ID, run.StateFailed)
	require.NotNil(t, done.TerminalReason)
	assert.Equal(t, "security_rejected", *done.TerminalReason)
}

func TestReviewGateHoldsDelivery(t *testing.T) {
	p := startPipeline(t, &scriptedLLM{})
	ctx := context.Background()

	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:         "default",
		Source:         "Build an inventory tracker with stock adjustments",
		MaxIters:       3,
		ReviewRequired: true,
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	p.waitForState(t, r.ID, run.StatePausedAwaitingApproval)

	// The pipeline is green before the gate opens.
	fresh, err := p.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.LastGreenIteration)

	gate, err := p.approvals.PendingForRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "reviewer", gate.RequiredRole)

	_, err = p.approvals.Decide(ctx, gate.ID, approvalgate.DecisionApproved, "reviewer@example.com")
	require.NoError(t, err)
	p.driver.Wake()

	done := p.waitForState(t, r.ID, run.StateSucceeded)
	require.NotNil(t, done.TerminalReason)
	assert.Contains(t, *done.TerminalReason, "review approved")
}

func TestTransientFaultRetriesWithBackoff(t *testing.T) {
	p := startPipeline(t, &scriptedLLM{}, func(cfg *config.Config) {
		// One injected transient fault on the first codegen invocation.
		cfg.Chaos = &config.ChaosConfig{
			Enabled: true,
			Seed:    7,
			Rules: []config.ChaosRule{{
				Role:          string(step.AgentRoleCodegenEngineer),
				Class:         config.FailureTransient,
				Probability:   1,
				MaxInjections: 1,
			}},
		}
		cfg.Scheduler.Retry.BaseDelay = time.Second
		cfg.Scheduler.Retry.MaxDelay = 2 * time.Second
	})
	ctx := context.Background()

	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:   "default",
		Source:   "Build an inventory tracker with stock adjustments",
		MaxIters: 3,
		Acceptance: []map[string]interface{}{
			{"kind": "contains", "field": agent.ArtifactDiff, "value": "stock"},
		},
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	p.waitForState(t, r.ID, run.StateSucceeded)

	// The fault took the retry rung, waited out the backoff, and the
	// second execution went green.
	attempts := p.client.RepairAttempt.Query().
		Where(repairattempt.RunIDEQ(r.ID)).
		AllX(ctx)
	require.Len(t, attempts, 1)
	assert.Equal(t, repairattempt.PhaseRetry, attempts[0].Phase)
	assert.Equal(t, repairattempt.OutcomeSucceeded, attempts[0].Outcome)
	assert.GreaterOrEqual(t, attempts[0].BackoffUsedMs, 1000)

	codegen := p.client.Step.Query().
		Where(step.RunIDEQ(r.ID), step.AgentRoleEQ(step.AgentRoleCodegenEngineer)).
		OnlyX(ctx)
	assert.Equal(t, 2, codegen.Attempts)
	assert.Equal(t, step.StateSucceeded, codegen.State)
}

// bareDriver wires a driver over a test schema without starting its
// loop, for exercising decision helpers directly.
func bareDriver(t *testing.T) (*Driver, *ent.Client) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	cfg := &config.Config{
		Queue:         fastQueueConfig(),
		Scheduler:     config.DefaultSchedulerConfig(),
		Canary:        config.DefaultCanaryConfig(),
		Chaos:         config.DefaultChaosConfig(),
		Evaluator:     config.DefaultEvaluatorConfig(),
		LLM:           config.DefaultLLMConfig(),
		Retention:     config.DefaultRetentionConfig(),
		DefaultTenant: "default",
	}

	blobs := blobstore.NewEntStore(client)
	masker := masking.NewService()
	harness := evaluator.NewHarness(cfg.Evaluator, nil, tools.Policy{})
	catalogue := agent.NewCatalogue(&scriptedLLM{}, cfg.LLM, harness, cfg.Evaluator)
	d := NewDriver(client, cfg, blobs, masker,
		queue.NewService(client, cfg.Queue),
		scheduler.NewScheduler(cfg.Scheduler, client),
		scheduler.NewBreakerService(client, cfg.Scheduler.Breaker),
		catalogue,
		events.NewPublisher(db))
	return d, client
}

func TestPatchValidationRejectsBinaryHunks(t *testing.T) {
	d, client := bareDriver(t)
	ctx := context.Background()
	blobs := blobstore.NewEntStore(client)

	runs := services.NewRunService(client)
	r, err := runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:   "default",
		Source:   "Build an inventory tracker with stock adjustments",
		MaxIters: 3,
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	arts := services.NewArtifactService(client, blobs)
	_, err = arts.StoreArtifact(ctx, r.Tenant, r.ID, 1, artifact.KindDiff, []byte(cannedDiff))
	require.NoError(t, err)

	// A git binary patch has no +++ headers, so neither the deny list
	// nor the allowlist sees a path in it.
	binaryPatch := "diff --git a/internal/inventory/logo.png b/internal/inventory/logo.png\n" +
		"new file mode 100644\n" +
		"GIT binary patch\n" +
		"literal 48\n" +
		"zcmb<-^>JfjWMqH=Mg}_u1P><4z~BI~0z^nu\n"
	_, err = arts.StoreArtifact(ctx, r.Tenant, r.ID, 1, artifact.KindDiff, []byte(binaryPatch))
	require.NoError(t, err)

	ok, violation, err := d.validatePatch(ctx, r)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, violation, "binary")
}

func TestFailureSelectionPrefersConfidence(t *testing.T) {
	d, client := bareDriver(t)
	ctx := context.Background()

	runs := services.NewRunService(client)
	r, err := runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:   "default",
		Source:   "Build an inventory tracker with stock adjustments",
		MaxIters: 3,
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	fails := services.NewFailureService(client, masking.NewService())
	record := func(class failure.Class, confidence float64) *ent.Failure {
		f, err := fails.RecordFailure(ctx, services.RecordFailureRequest{
			Tenant:     "default",
			RunID:      r.ID,
			StepID:     "step-eval-1",
			Class:      class,
			Confidence: confidence,
			LogExcerpt: "assertion failed",
		})
		require.NoError(t, err)
		return f
	}

	record(failure.ClassLint, 0.4)
	first := record(failure.ClassTestAssert, 0.9)
	record(failure.ClassRuntime, 0.9) // same confidence, later row
	record(failure.ClassUnknown, 0.3)

	got, err := d.latestFailureForStep(ctx, r, &ent.Step{ID: "step-eval-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, failure.ClassTestAssert, got.Class)
}

func TestBudgetExhaustionFailsRun(t *testing.T) {
	p := startPipeline(t, &scriptedLLM{})
	ctx := context.Background()

	// Below the per-step cost estimate: the very first dispatch breaches.
	r, err := p.runs.CreateRun(ctx, models.CreateRunRequest{
		Tenant:       "default",
		Source:       "Build an inventory tracker with stock adjustments",
		MaxIters:     3,
		CostLimitUSD: 0.01,
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	done := p.waitForState(t, r.ID, run.StateFailed)
	require.NotNil(t, done.TerminalReason)
	assert.Contains(t, *done.TerminalReason, "budget exceeded")

	// Failed runs get a replay bundle, even empty ones.
	require.Eventually(t, func() bool {
		_, err := p.replays.GetByRun(ctx, r.ID)
		return err == nil
	}, 10*time.Second, 25*time.Millisecond)

	bundle, err := p.replays.GetByRun(ctx, r.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, bundle.BundleHash)
}
