// Package queue implements the execution substrate: typed step queues
// with priority, at-least-once worker leases with heartbeats, and
// exactly-once effects via idempotency keys.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/step"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable step is in the polled queues.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent step limit is reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrQueueFull indicates enqueue backpressure: queue depth is past the
	// high-water mark. Callers treat this as a retryable Infra failure.
	ErrQueueFull = errors.New("queue full")

	// ErrLeaseLost indicates another worker took the step after this
	// worker's lease expired.
	ErrLeaseLost = errors.New("lease lost")

	// ErrTombstoned indicates the step was cancelled; the worker releases
	// without executing.
	ErrTombstoned = errors.New("step tombstoned")

	// ErrConflict indicates a duplicate completion with a different result.
	ErrConflict = errors.New("conflicting completion")
)

// ExecutionResult is the terminal outcome of one step execution. The
// worker writes it through Service.Complete or Service.Fail.
type ExecutionResult struct {
	State step.State // succeeded or failed

	// OutputRef is the blob ref of the produced artifact (succeeded).
	OutputRef string

	TokensIn  int
	TokensOut int
	CostUSD   float64

	// Err describes the failure (failed).
	Err error
}

// StepExecutor runs a claimed step. The orchestrator provides the
// implementation; the worker only handles claiming, heartbeat, terminal
// state, and the wake-up event.
type StepExecutor interface {
	Execute(ctx context.Context, s *ent.Step) *ExecutionResult
}

// PoolHealth is the worker pool's health snapshot.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	LeasedSteps      int            `json:"leased_steps"`
	MaxConcurrent    int            `json:"max_concurrent"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth is a single worker's health snapshot.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentStepID  string    `json:"current_step_id,omitempty"`
	StepsProcessed int       `json:"steps_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
