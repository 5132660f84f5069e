package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how steps are polled, leased, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes steps.
	WorkerCount int `yaml:"worker_count"`

	// Queues assigns each worker a set of queue classes to poll.
	// Empty means all classes.
	Queues []QueueClass `yaml:"queues"`

	// MaxConcurrentSteps is the global limit of concurrently leased steps
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentSteps int `yaml:"max_concurrent_steps"`

	// HighWaterMark is the per-queue depth beyond which Enqueue refuses
	// new tasks with ErrQueueFull (backpressure).
	HighWaterMark int `yaml:"high_water_mark"`

	// PollInterval is the base interval for checking queued steps.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseTTL is how long a claim remains valid without a heartbeat.
	LeaseTTL time.Duration `yaml:"lease_ttl"`

	// HeartbeatInterval is how often a working worker extends its lease.
	// Three missed heartbeats mark the worker dead.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// StepTimeout caps a single agent invocation, before the tighter
	// run-budget deadline is applied.
	StepTimeout time.Duration `yaml:"step_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight steps
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for expired leases.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentSteps:      20,
		HighWaterMark:           500,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseTTL:                90 * time.Second,
		HeartbeatInterval:       15 * time.Second,
		StepTimeout:             10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanDetectionInterval: 30 * time.Second,
	}
}
