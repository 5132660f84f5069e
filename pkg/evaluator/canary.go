package evaluator

import (
	"hash/fnv"
	"math"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/config"
)

// Recommendation is the canary evaluator's verdict over a sample window.
type Recommendation string

const (
	RecommendAggressivePromote Recommendation = "aggressive_promote"
	RecommendCautiousPromote   Recommendation = "cautious_promote"
	RecommendHold              Recommendation = "hold"
	RecommendImmediateRollback Recommendation = "immediate_rollback"
	RecommendReducePercent     Recommendation = "reduce_percent"
	RecommendInvestigate       Recommendation = "investigate"
)

// GroupWindow aggregates one group's rolling sample window.
type GroupWindow struct {
	Samples        int     `json:"samples"`
	SuccessRate    float64 `json:"success_rate"`
	MeanCostUSD    float64 `json:"mean_cost_usd"`
	MeanDurationMs float64 `json:"mean_duration_ms"`
	MeanRetries    float64 `json:"mean_retries"`
	MeanReplans    float64 `json:"mean_replans"`
	MeanRollbacks  float64 `json:"mean_rollbacks"`
}

// Summarize aggregates canary samples into a group window.
func Summarize(samples []*ent.CanarySample) GroupWindow {
	w := GroupWindow{Samples: len(samples)}
	if len(samples) == 0 {
		return w
	}

	var succ int
	for _, s := range samples {
		if s.Success {
			succ++
		}
		w.MeanCostUSD += s.CostUsd
		w.MeanDurationMs += float64(s.DurationMs)
		w.MeanRetries += float64(s.RetryCount)
		w.MeanReplans += float64(s.ReplanCount)
		w.MeanRollbacks += float64(s.RollbackCount)
	}

	n := float64(len(samples))
	w.SuccessRate = float64(succ) / n
	w.MeanCostUSD /= n
	w.MeanDurationMs /= n
	w.MeanRetries /= n
	w.MeanReplans /= n
	w.MeanRollbacks /= n
	return w
}

// Verdict is the outcome of comparing the experimental window against
// control.
type Verdict struct {
	SuccessRatio  float64 `json:"success_ratio"`
	CostRatio     float64 `json:"cost_ratio"`
	DurationRatio float64 `json:"duration_ratio"`

	SuccessPass  bool `json:"success_pass"`
	CostPass     bool `json:"cost_pass"`
	DurationPass bool `json:"duration_pass"`

	Recommendation Recommendation `json:"recommendation"`
	Reason         string         `json:"reason"`
}

// Compare computes the three ratios and applies the fixed recommendation
// table, in order:
//
//	all pass, success>1.1, cost<0.9  → aggressive_promote
//	all pass, success>1.05           → cautious_promote
//	all pass                         → hold
//	success<0.8                      → immediate_rollback
//	cost>1.5                         → reduce_percent
//	otherwise                        → investigate
func Compare(ctrl, exp GroupWindow, cfg *config.CanaryConfig) *Verdict {
	v := &Verdict{
		SuccessRatio:  ratio(exp.SuccessRate, ctrl.SuccessRate),
		CostRatio:     ratio(exp.MeanCostUSD, ctrl.MeanCostUSD),
		DurationRatio: ratio(exp.MeanDurationMs, ctrl.MeanDurationMs),
	}
	v.SuccessPass = v.SuccessRatio >= cfg.SuccessThreshold
	v.CostPass = v.CostRatio <= cfg.CostThreshold
	v.DurationPass = v.DurationRatio <= cfg.DurationThreshold

	allPass := v.SuccessPass && v.CostPass && v.DurationPass
	switch {
	case allPass && v.SuccessRatio > 1.1 && v.CostRatio < 0.9:
		v.Recommendation = RecommendAggressivePromote
		v.Reason = "experimental clearly outperforms on success and cost"
	case allPass && v.SuccessRatio > 1.05:
		v.Recommendation = RecommendCautiousPromote
		v.Reason = "experimental outperforms on success within cost bounds"
	case allPass:
		v.Recommendation = RecommendHold
		v.Reason = "all thresholds met, no clear win"
	case v.SuccessRatio < 0.8:
		v.Recommendation = RecommendImmediateRollback
		v.Reason = "experimental success rate degraded beyond tolerance"
	case v.CostRatio > 1.5:
		v.Recommendation = RecommendReducePercent
		v.Reason = "experimental cost inflated beyond tolerance"
	default:
		v.Recommendation = RecommendInvestigate
		v.Reason = "mixed signals across thresholds"
	}
	return v
}

// ratio divides exp by ctrl, treating a zero control as neutral when the
// experimental side is also zero and as +Inf otherwise.
func ratio(exp, ctrl float64) float64 {
	if ctrl == 0 {
		if exp == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return exp / ctrl
}

// Assign returns the sticky canary group of a run. Assignment hashes the
// run id against the experimental fraction, so repeated calls for the same
// run agree without persisting a coin flip.
func Assign(runID string, fraction float64) run.CanaryGroup {
	if fraction <= 0 {
		return run.CanaryGroupControl
	}
	if fraction >= 1 {
		return run.CanaryGroupExperimental
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(runID))
	// Map the hash onto [0,1).
	p := float64(h.Sum64()>>11) / float64(1<<53)
	if p < fraction {
		return run.CanaryGroupExperimental
	}
	return run.CanaryGroupControl
}
