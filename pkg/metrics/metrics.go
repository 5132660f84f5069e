// Package metrics defines Prometheus metrics for the orchestration core.
//
// All metrics are registered with the default registry and served on the
// API's /metrics endpoint.
//
// Metric naming follows Prometheus conventions:
//   - metabuild_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RunsTotal counts runs reaching a terminal state, by state and canary group.
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_runs_total",
			Help: "Total runs reaching a terminal state.",
		},
		[]string{"state", "canary_group"},
	)

	// RunDurationSeconds is a histogram of run wall time by terminal state.
	RunDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metabuild_run_duration_seconds",
			Help:    "Wall time of runs from start to terminal state.",
			Buckets: []float64{5, 15, 30, 60, 120, 300, 600, 1200, 2400, 3600},
		},
		[]string{"state"},
	)

	// StepsTotal counts step completions by agent role and outcome state.
	StepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_steps_total",
			Help: "Total step completions by agent role and state.",
		},
		[]string{"agent_role", "state"},
	)

	// StepDurationSeconds is a histogram of step execution time by role.
	StepDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metabuild_step_duration_seconds",
			Help:    "Execution time of steps from lease to completion.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"agent_role"},
	)

	// DispatchLatencySeconds is a histogram of time steps spend queued
	// before a worker claims them, by queue class.
	DispatchLatencySeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metabuild_dispatch_latency_seconds",
			Help:    "Time between enqueue and worker claim.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"queue"},
	)

	// QueueDepth is the number of claimable steps per queue class.
	QueueDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "metabuild_queue_depth",
			Help: "Number of queued steps eligible for claim.",
		},
		[]string{"queue"},
	)

	// FailuresTotal counts classified failures by class.
	FailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_failures_total",
			Help: "Total classified step failures.",
		},
		[]string{"class"},
	)

	// RepairsTotal counts repair ladder attempts by phase and outcome.
	RepairsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_repairs_total",
			Help: "Total repair ladder attempts.",
		},
		[]string{"phase", "outcome"},
	)

	// BreakerOpensTotal counts circuit breaker trips by failure class.
	BreakerOpensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_breaker_opens_total",
			Help: "Total circuit breaker open transitions.",
		},
		[]string{"failure_class"},
	)

	// TokensUsedTotal counts LLM tokens by model tier and direction.
	TokensUsedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_tokens_used_total",
			Help: "Total LLM tokens consumed.",
		},
		[]string{"tier", "direction"},
	)

	// CostUSDTotal accumulates LLM spend by model tier.
	CostUSDTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_cost_usd_total",
			Help: "Total LLM cost in USD.",
		},
		[]string{"tier"},
	)

	// CanaryRecommendationsTotal counts canary evaluations by recommendation.
	CanaryRecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_canary_recommendations_total",
			Help: "Total canary evaluations by recommendation.",
		},
		[]string{"recommendation"},
	)

	// ChaosInjectionsTotal counts injected faults by agent role and class.
	ChaosInjectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metabuild_chaos_injections_total",
			Help: "Total chaos faults injected.",
		},
		[]string{"agent_role", "class"},
	)

	// ActiveWorkers is the number of worker goroutines currently executing a step.
	ActiveWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "metabuild_active_workers",
			Help: "Number of workers currently executing a step.",
		},
	)

	// OrphansRecoveredTotal counts expired leases reclaimed by the orphan detector.
	OrphansRecoveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "metabuild_orphans_recovered_total",
			Help: "Total expired step leases recovered.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RunsTotal,
		RunDurationSeconds,
		StepsTotal,
		StepDurationSeconds,
		DispatchLatencySeconds,
		QueueDepth,
		FailuresTotal,
		RepairsTotal,
		BreakerOpensTotal,
		TokensUsedTotal,
		CostUSDTotal,
		CanaryRecommendationsTotal,
		ChaosInjectionsTotal,
		ActiveWorkers,
		OrphansRecoveredTotal,
	)
}

// RecordRunComplete records metrics for a run reaching a terminal state.
func RecordRunComplete(state, canaryGroup string, duration time.Duration) {
	RunsTotal.WithLabelValues(state, canaryGroup).Inc()
	RunDurationSeconds.WithLabelValues(state).Observe(duration.Seconds())
}

// RecordStepComplete records metrics for a finished step.
func RecordStepComplete(agentRole, state string, duration time.Duration) {
	StepsTotal.WithLabelValues(agentRole, state).Inc()
	StepDurationSeconds.WithLabelValues(agentRole).Observe(duration.Seconds())
}

// RecordDispatch records the queue wait of a claimed step.
func RecordDispatch(queue string, wait time.Duration) {
	DispatchLatencySeconds.WithLabelValues(queue).Observe(wait.Seconds())
}

// RecordUsage records LLM token and cost consumption for one call.
func RecordUsage(tier string, tokensIn, tokensOut int, costUSD float64) {
	TokensUsedTotal.WithLabelValues(tier, "in").Add(float64(tokensIn))
	TokensUsedTotal.WithLabelValues(tier, "out").Add(float64(tokensOut))
	CostUSDTotal.WithLabelValues(tier).Add(costUSD)
}
