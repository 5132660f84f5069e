// Package scheduler routes steps: model tier selection by SLA and budget
// pressure, queue routing, budget pre-checks, and the persisted circuit
// breakers gating dispatch per (tenant, failure class).
package scheduler

import (
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
)

// SelectTier applies the dispatch-time tier rule:
//
//  1. cost_used/cost_limit above the pressure ratio downgrades one tier
//     (never below small),
//  2. more repair iterations at the current tier than the upgrade bound
//     upgrades one tier (never above large),
//  3. otherwise the SLA's default tier.
//
// Cost pressure wins over the repair upgrade when both apply.
func SelectTier(cfg *config.SchedulerConfig, sla config.SLAClass, costUsed, costLimit float64, repairItersAtTier int) config.ModelTier {
	tier, ok := cfg.TierBySLA[sla]
	if !ok {
		tier = config.TierMedium
	}

	if costLimit > 0 && costUsed/costLimit > cfg.CostPressureRatio {
		return tier.Downgrade()
	}
	if repairItersAtTier > cfg.UpgradeAfterRepairs {
		return tier.Upgrade()
	}
	return tier
}

// RouteQueue picks the actual queue for a step. The agent's declared
// class is used unless:
//
//   - SLA is fast and the declared queue is deeper than the threshold,
//     which escalates to the high queue, or
//   - SLA is thorough and the step carries rollback context, which
//     demotes to the low queue.
func RouteQueue(cfg *config.SchedulerConfig, sla config.SLAClass, declared step.Queue, declaredDepth int, rollbackContext bool) step.Queue {
	if sla == config.SLAFast && declaredDepth > cfg.FastRouteDepthThreshold {
		return step.QueueHigh
	}
	if sla == config.SLAThorough && rollbackContext {
		return step.QueueLow
	}
	return declared
}

// PriorityFor maps the SLA class onto the within-queue claim priority.
func PriorityFor(sla config.SLAClass) int {
	switch sla {
	case config.SLAFast:
		return 10
	case config.SLAThorough:
		return 0
	default:
		return 5
	}
}
