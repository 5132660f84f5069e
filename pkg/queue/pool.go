package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/metrics"
)

// WorkerPool manages a fleet of queue workers plus the orphan detection
// sweep. It also keeps a cancellation registry so in-flight steps can be
// aborted when their run is cancelled.
type WorkerPool struct {
	client   *ent.Client
	db       *database.Client
	cfg      *config.QueueConfig
	service  *Service
	executor StepExecutor
	events   *events.Publisher
	podID    string

	workers []*Worker

	// activeSteps maps step ID to the cancel func of its execution context.
	mu          sync.RWMutex
	activeSteps map[string]context.CancelFunc

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	orphanMu         sync.RWMutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// NewWorkerPool creates a worker pool. Workers are created on Start.
func NewWorkerPool(client *ent.Client, db *database.Client, cfg *config.QueueConfig, executor StepExecutor, publisher *events.Publisher, podID string) *WorkerPool {
	return &WorkerPool{
		client:      client,
		db:          db,
		cfg:         cfg,
		service:     NewService(client, cfg),
		executor:    executor,
		events:      publisher,
		podID:       podID,
		activeSteps: make(map[string]context.CancelFunc),
		stopCh:      make(chan struct{}),
	}
}

// Service exposes the pool's queue service for callers that enqueue or
// requeue steps directly.
func (p *WorkerPool) Service() *Service {
	return p.service
}

// Start launches the workers and the orphan detection loop.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.cfg.WorkerCount <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", p.cfg.WorkerCount)
	}

	queues := make([]step.Queue, 0, len(p.cfg.Queues))
	for _, q := range p.cfg.Queues {
		queues = append(queues, step.Queue(q))
	}

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		w := NewWorker(workerID, p.podID, p.client, p.service, p.cfg, queues, p.executor, p, p.events)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	p.wg.Add(1)
	go p.runOrphanDetection(ctx)

	slog.Info("Worker pool started",
		"pod_id", p.podID,
		"workers", p.cfg.WorkerCount,
		"queues", queues,
		"max_concurrent", p.cfg.MaxConcurrentSteps)
	return nil
}

// Stop performs a graceful shutdown: workers stop claiming new steps and
// get GracefulShutdownTimeout to finish in-flight ones. Steps still
// running after the deadline are cancelled; the orphan sweep on the next
// healthy pod requeues anything left leased.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		for _, w := range p.workers {
			w.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped cleanly", "pod_id", p.podID)
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout, cancelling in-flight steps",
			"pod_id", p.podID)
		p.mu.RLock()
		for stepID, cancel := range p.activeSteps {
			slog.Info("Cancelling in-flight step", "step_id", stepID)
			cancel()
		}
		p.mu.RUnlock()
		<-done
	}

	p.wg.Wait()
}

// RegisterStep records the cancel func for an in-flight step.
func (p *WorkerPool) RegisterStep(stepID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSteps[stepID] = cancel
}

// UnregisterStep removes a finished step from the registry.
func (p *WorkerPool) UnregisterStep(stepID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSteps, stepID)
}

// CancelStep aborts an in-flight step on this pod. Returns false when the
// step is not executing here; the heartbeat tombstone check covers steps
// held by other pods.
func (p *WorkerPool) CancelStep(stepID string) bool {
	p.mu.RLock()
	cancel, ok := p.activeSteps[stepID]
	p.mu.RUnlock()
	if ok {
		cancel()
	}
	return ok
}

// CancelRunSteps aborts all in-flight steps of a run held by this pod.
// Returns the number of steps cancelled.
func (p *WorkerPool) CancelRunSteps(ctx context.Context, runID string) (int, error) {
	stepIDs, err := p.client.Step.Query().
		Where(
			step.RunIDEQ(runID),
			step.StateIn(step.StateLeased, step.StateRunning),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing in-flight steps for run %s: %w", runID, err)
	}

	cancelled := 0
	for _, id := range stepIDs {
		if p.CancelStep(id) {
			cancelled++
		}
	}
	return cancelled, nil
}

// Health returns a snapshot of pool and worker state.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	health := PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.cfg.MaxConcurrentSteps,
	}

	if err := p.db.DB().PingContext(ctx); err != nil {
		health.DBError = err.Error()
	} else {
		health.DBReachable = true
	}

	leased, err := p.client.Step.Query().
		Where(step.StateIn(step.StateLeased, step.StateRunning)).
		Count(ctx)
	if err == nil {
		health.LeasedSteps = leased
	}

	for _, w := range p.workers {
		wh := w.Health()
		health.WorkerStats = append(health.WorkerStats, wh)
		if wh.Status == string(WorkerStatusWorking) {
			health.ActiveWorkers++
		}
	}

	p.orphanMu.RLock()
	health.LastOrphanScan = p.lastOrphanScan
	health.OrphansRecovered = p.orphansRecovered
	p.orphanMu.RUnlock()

	health.IsHealthy = health.DBReachable
	return health
}

// runOrphanDetection periodically requeues steps whose lease expired
// without a heartbeat (worker crash, network partition).
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			recovered, err := RecoverOrphans(ctx, p.client)
			if err != nil {
				slog.Error("Orphan detection scan failed", "error", err)
				continue
			}
			p.orphanMu.Lock()
			p.lastOrphanScan = time.Now()
			p.orphansRecovered += recovered
			p.orphanMu.Unlock()
			if recovered > 0 {
				metrics.OrphansRecoveredTotal.Add(float64(recovered))
				slog.Info("Recovered orphaned steps", "count", recovered)
			}
		}
	}
}
