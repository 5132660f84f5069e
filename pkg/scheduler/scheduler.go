package scheduler

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/metrics"
)

// RouteRequest describes a step about to be dispatched.
type RouteRequest struct {
	Tenant string
	SLA    config.SLAClass

	// DeclaredQueue is the agent's queue class.
	DeclaredQueue step.Queue

	// LLMRole marks roles that consume a model tier and carry a cost
	// estimate.
	LLMRole bool

	// CostUsed/CostLimit are the run's budget position.
	CostUsed  float64
	CostLimit float64

	// RepairItersAtTier counts repair iterations already spent at the
	// tier the SLA maps to.
	RepairItersAtTier int

	// RollbackContext marks steps scoped by a rollback.
	RollbackContext bool
}

// RouteDecision is the dispatch routing outcome.
type RouteDecision struct {
	Queue      step.Queue
	Priority   int
	Tier       config.ModelTier
	EstCostUSD float64
}

// Scheduler makes routing decisions at dispatch time. It is stateless
// apart from reading live queue depth; breaker and budget gating are the
// caller's pre-checks (BreakerService, services.BudgetService).
type Scheduler struct {
	cfg    *config.SchedulerConfig
	client *ent.Client
}

// NewScheduler creates a Scheduler.
func NewScheduler(cfg *config.SchedulerConfig, client *ent.Client) *Scheduler {
	return &Scheduler{cfg: cfg, client: client}
}

// Route resolves queue, priority, and (for LLM roles) the model tier and
// dispatch cost estimate.
func (s *Scheduler) Route(ctx context.Context, req RouteRequest) (*RouteDecision, error) {
	depth, err := s.QueueDepth(ctx, req.DeclaredQueue)
	if err != nil {
		return nil, err
	}

	decision := &RouteDecision{
		Queue:    RouteQueue(s.cfg, req.SLA, req.DeclaredQueue, depth, req.RollbackContext),
		Priority: PriorityFor(req.SLA),
	}
	if req.LLMRole {
		decision.Tier = SelectTier(s.cfg, req.SLA, req.CostUsed, req.CostLimit, req.RepairItersAtTier)
		decision.EstCostUSD = s.cfg.EstimatedStepCostUSD
	}
	return decision, nil
}

// QueueDepth counts claimable steps in a queue and refreshes the depth
// gauge.
func (s *Scheduler) QueueDepth(ctx context.Context, queue step.Queue) (int, error) {
	depth, err := s.client.Step.Query().
		Where(
			step.QueueEQ(queue),
			step.StateEQ(step.StateQueued),
			step.TombstonedEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue depth: %w", err)
	}
	metrics.QueueDepth.WithLabelValues(string(queue)).Set(float64(depth))
	return depth, nil
}
