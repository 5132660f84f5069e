package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// StepRegistry is the subset of WorkerPool used by Worker for step
// cancellation registration.
type StepRegistry interface {
	RegisterStep(stepID string, cancel context.CancelFunc)
	UnregisterStep(stepID string)
}

// Worker is a single queue worker: it polls its queue classes, claims one
// step at a time, heartbeats the lease, and writes the terminal state.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	service  *Service
	cfg      *config.QueueConfig
	queues   []step.Queue
	executor StepExecutor
	pool     StepRegistry
	events   *events.Publisher

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentStepID  string
	stepsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a queue worker. publisher may be nil (events disabled).
func NewWorker(id, podID string, client *ent.Client, service *Service, cfg *config.QueueConfig, queues []step.Queue, executor StepExecutor, pool StepRegistry, publisher *events.Publisher) *Worker {
	if len(queues) == 0 {
		queues = []step.Queue{step.QueueCPU, step.QueueIo, step.QueueLlm, step.QueueHigh, step.QueueLow}
	}
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		service:      service,
		cfg:          cfg,
		queues:       queues,
		executor:     executor,
		pool:         pool,
		events:       publisher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// step. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentStepID:  w.currentStepID,
		StepsProcessed: w.stepsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started", "queues", w.queues)

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing step", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a step, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check. Best-effort and racy across workers, but
	// bounded by WorkerCount and mitigated by poll jitter.
	active, err := w.client.Step.Query().
		Where(step.StateIn(step.StateLeased, step.StateRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking leased steps: %w", err)
	}
	if active >= w.cfg.MaxConcurrentSteps {
		return ErrAtCapacity
	}

	claimed, err := w.service.Lease(ctx, w.id, w.queues, w.cfg.LeaseTTL)
	if err != nil {
		return err
	}

	log := slog.With("step_id", claimed.ID, "run_id", claimed.RunID,
		"role", claimed.AgentRole, "worker_id", w.id)
	log.Info("Step claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")
	metrics.ActiveWorkers.Inc()
	defer metrics.ActiveWorkers.Dec()

	// Per-task deadline; the run's tighter budget deadline is applied by
	// the executor.
	stepCtx, cancelStep := context.WithTimeout(ctx, w.cfg.StepTimeout)
	defer cancelStep()

	w.pool.RegisterStep(claimed.ID, cancelStep)
	defer w.pool.UnregisterStep(claimed.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(stepCtx)
	defer cancelHeartbeat()
	tombstoned := make(chan struct{}, 1)
	go w.runHeartbeat(heartbeatCtx, claimed.ID, cancelStep, tombstoned)

	if err := w.service.MarkRunning(ctx, w.id, claimed.ID); err != nil {
		return err
	}
	w.publishStepStatus(ctx, claimed, step.StateRunning, claimed.Attempts)

	started := time.Now()
	result := w.executor.Execute(stepCtx, claimed)
	cancelHeartbeat()

	// The run was cancelled mid-flight: release without a terminal write;
	// the tombstone sweep resolves the step to skipped.
	select {
	case <-tombstoned:
		log.Info("Step released after tombstone")
		return w.service.Release(context.Background(), w.id, claimed.ID)
	default:
	}

	if result == nil {
		result = w.synthesizeResult(stepCtx)
	}

	// Terminal write uses a background context — the step context may
	// already be cancelled.
	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelWrite()

	var writeErr error
	switch result.State {
	case step.StateSucceeded:
		writeErr = w.service.Complete(writeCtx, w.id, claimed.ID, result)
	default:
		writeErr = w.service.Fail(writeCtx, w.id, claimed.ID, result.Err)
	}
	if writeErr != nil {
		if errors.Is(writeErr, ErrLeaseLost) {
			log.Warn("Lease lost before terminal write, discarding result")
			return nil
		}
		return fmt.Errorf("failed to write step result: %w", writeErr)
	}

	metrics.RecordStepComplete(string(claimed.AgentRole), string(result.State), time.Since(started))
	w.publishStepStatus(writeCtx, claimed, result.State, claimed.Attempts)
	w.wakeOrchestrator(writeCtx, claimed.RunID)

	w.mu.Lock()
	w.stepsProcessed++
	w.mu.Unlock()

	log.Info("Step processing complete", "state", result.State)
	return nil
}

// runHeartbeat periodically extends the lease. A lost lease or an
// observed tombstone cancels the step context so the executor aborts.
func (w *Worker) runHeartbeat(ctx context.Context, stepID string, cancelStep context.CancelFunc, tombstoned chan<- struct{}) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.service.Heartbeat(ctx, w.id, stepID, w.cfg.LeaseTTL)
			switch {
			case err == nil:
			case errors.Is(err, ErrTombstoned):
				slog.Info("Tombstone observed at heartbeat, aborting step", "step_id", stepID)
				select {
				case tombstoned <- struct{}{}:
				default:
				}
				cancelStep()
				return
			case errors.Is(err, ErrLeaseLost):
				slog.Warn("Lease lost, aborting step", "step_id", stepID, "worker_id", w.id)
				cancelStep()
				return
			default:
				slog.Warn("Heartbeat failed", "step_id", stepID, "error", err)
			}
		}
	}
}

// synthesizeResult covers a nil executor result: the outcome is derived
// from how the step context ended.
func (w *Worker) synthesizeResult(stepCtx context.Context) *ExecutionResult {
	switch {
	case errors.Is(stepCtx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			State: step.StateFailed,
			Err:   fmt.Errorf("step timed out after %v", w.cfg.StepTimeout),
		}
	case errors.Is(stepCtx.Err(), context.Canceled):
		return &ExecutionResult{
			State: step.StateFailed,
			Err:   context.Canceled,
		}
	default:
		return &ExecutionResult{
			State: step.StateFailed,
			Err:   fmt.Errorf("executor returned nil result"),
		}
	}
}

// publishStepStatus publishes a step.status event. Non-blocking: errors
// are logged.
func (w *Worker) publishStepStatus(ctx context.Context, s *ent.Step, state step.State, attempts int) {
	if w.events == nil {
		return
	}
	if err := w.events.PublishStepStatus(ctx, s.Tenant, s.RunID, events.StepStatusPayload{
		RunID:     s.RunID,
		StepID:    s.ID,
		AgentRole: s.AgentRole,
		Queue:     s.Queue,
		State:     state,
		Attempts:  attempts,
	}); err != nil {
		slog.Warn("Failed to publish step status",
			"step_id", s.ID, "state", state, "error", err)
	}
}

// wakeOrchestrator nudges the driver loop so it re-examines the run now
// instead of on its next poll tick.
func (w *Worker) wakeOrchestrator(ctx context.Context, runID string) {
	if w.events == nil {
		return
	}
	if err := w.events.WakeOrchestrator(ctx, runID); err != nil {
		slog.Warn("Failed to wake orchestrator", "run_id", runID, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, stepID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentStepID = stepID
	w.lastActivity = time.Now()
}
