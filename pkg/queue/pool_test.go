package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/forgeworks/metabuild/pkg/services"
	"github.com/forgeworks/metabuild/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExecutor runs a configurable function per step.
type stubExecutor struct {
	mu   sync.Mutex
	fn   func(ctx context.Context, s *ent.Step) *ExecutionResult
	runs int
}

func (e *stubExecutor) Execute(ctx context.Context, s *ent.Step) *ExecutionResult {
	e.mu.Lock()
	e.runs++
	e.mu.Unlock()
	return e.fn(ctx, s)
}

func (e *stubExecutor) executions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs
}

func fastPoolConfig() *config.QueueConfig {
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

func TestWorkerPoolProcessesSteps(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastPoolConfig()
	svc := NewService(client, cfg)

	runID := setupRunOn(t, client)

	executor := &stubExecutor{fn: func(_ context.Context, s *ent.Step) *ExecutionResult {
		return &ExecutionResult{
			State:     step.StateSucceeded,
			OutputRef: "blob://out/" + s.ID,
			TokensIn:  10,
			TokensOut: 5,
		}
	}}

	pool := NewWorkerPool(client, database.NewClientFromEnt(client, db), cfg, executor, nil, "pod-test")
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	var ids []string
	for _, key := range []string{"p1", "p2", "p3"} {
		s, err := svc.Enqueue(ctx, EnqueueRequest{
			Tenant: "default", RunID: runID,
			Role: step.AgentRoleCodegenEngineer, Queue: step.QueueLlm,
			IdempotencyKey: key, InputDigest: "d-" + key, InputRef: "r-" + key,
		})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	require.Eventually(t, func() bool {
		for _, id := range ids {
			if client.Step.GetX(ctx, id).State != step.StateSucceeded {
				return false
			}
		}
		return true
	}, 10*time.Second, 20*time.Millisecond)

	for _, id := range ids {
		s := client.Step.GetX(ctx, id)
		require.NotNil(t, s.OutputRef)
		assert.Equal(t, "blob://out/"+id, *s.OutputRef)
		assert.NotNil(t, s.StartedAt)
		assert.NotNil(t, s.CompletedAt)
	}
	assert.Equal(t, 3, executor.executions())

	health := pool.Health(ctx)
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
}

func TestWorkerPoolFailurePath(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastPoolConfig()
	svc := NewService(client, cfg)

	runID := setupRunOn(t, client)

	executor := &stubExecutor{fn: func(_ context.Context, _ *ent.Step) *ExecutionResult {
		return &ExecutionResult{State: step.StateFailed, Err: assert.AnError}
	}}

	pool := NewWorkerPool(client, database.NewClientFromEnt(client, db), cfg, executor, nil, "pod-test")
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	s, err := svc.Enqueue(ctx, EnqueueRequest{
		Tenant: "default", RunID: runID,
		Role: step.AgentRoleQaEvaluator, Queue: step.QueueCPU,
		IdempotencyKey: "boom", InputDigest: "d", InputRef: "r",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return client.Step.GetX(ctx, s.ID).State == step.StateFailed
	}, 10*time.Second, 20*time.Millisecond)

	failed := client.Step.GetX(ctx, s.ID)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, assert.AnError.Error(), *failed.ErrorMessage)
	// The worker does not requeue: the repair ladder decides.
	assert.Equal(t, 1, failed.Attempts)
}

func TestWorkerPoolTombstoneAbortsInFlightStep(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := fastPoolConfig()
	svc := NewService(client, cfg)

	runID := setupRunOn(t, client)

	started := make(chan string, 1)
	executor := &stubExecutor{fn: func(stepCtx context.Context, s *ent.Step) *ExecutionResult {
		select {
		case started <- s.ID:
		default:
		}
		// Block until the heartbeat observes the tombstone and cancels.
		<-stepCtx.Done()
		return nil
	}}

	pool := NewWorkerPool(client, database.NewClientFromEnt(client, db), cfg, executor, nil, "pod-test")
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	s, err := svc.Enqueue(ctx, EnqueueRequest{
		Tenant: "default", RunID: runID,
		Role: step.AgentRoleCodegenEngineer, Queue: step.QueueLlm,
		IdempotencyKey: "cancel-me", InputDigest: "d", InputRef: "r",
	})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("step never started")
	}

	require.NoError(t, client.Step.UpdateOneID(s.ID).
		SetTombstoned(true).
		Exec(ctx))

	// The heartbeat aborts the execution, the worker releases the step,
	// and the next lease scan resolves it to skipped.
	require.Eventually(t, func() bool {
		return client.Step.GetX(ctx, s.ID).State == step.StateSkipped
	}, 10*time.Second, 20*time.Millisecond)
}

// setupRunOn creates a run on an existing client, for tests that build
// their own Service/pool wiring.
func setupRunOn(t *testing.T, client *ent.Client) string {
	t.Helper()
	r, err := services.NewRunService(client).CreateRun(context.Background(), models.CreateRunRequest{
		Tenant:       "default",
		Source:       "Build an inventory tracker",
		CostLimitUSD: 25,
		MaxIters:     3,
	}, run.CanaryGroupControl)
	require.NoError(t, err)
	return r.ID
}
