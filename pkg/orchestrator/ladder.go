// Package orchestrator drives the run state machine: dispatching agent
// steps through the queue substrate, engaging the repair ladder on
// failure, gating on approvals, and terminating runs with their replay
// bundles and canary samples.
package orchestrator

import (
	"fmt"
	"math"
	"time"

	"github.com/forgeworks/metabuild/pkg/config"
)

// ActionKind is one rung of the repair ladder, or the terminal give-up.
type ActionKind string

const (
	ActionRetry    ActionKind = "retry"
	ActionPatch    ActionKind = "patch"
	ActionReplan   ActionKind = "replan"
	ActionRollback ActionKind = "rollback"
	ActionFail     ActionKind = "fail"
)

// Action is the ladder's decision for one failure.
type Action struct {
	Kind ActionKind

	// Backoff delays the requeue (retry only).
	Backoff time.Duration

	// Reason explains the decision; stored on the repair attempt and, for
	// terminal actions, the run.
	Reason string
}

// History is the repair context the ladder decides against. All counts
// come from persisted rows; the ladder holds no state of its own.
type History struct {
	// RetriesUsed counts prior attempts of the failed step beyond the
	// first (step.attempts - 1).
	RetriesUsed int

	// PatchStreak counts consecutive failed patch attempts on the run.
	PatchStreak int

	// ReplansUsed counts replan rungs already taken on the run.
	ReplansUsed int

	// MaxReplans caps replanning before rollback.
	MaxReplans int
}

// Fallback backoff bounds when the retry config is zero-valued.
const (
	defaultBaseDelay = time.Second
	defaultMaxDelay  = 60 * time.Second
)

// maxPatchStreak is the consecutive-failed-patch count that escalates
// the patch rung to a replan.
const maxPatchStreak = 2

// retryBudgets is the per-class retry allowance. Classes absent here
// never enter the retry rung.
var retryBudgets = map[config.FailureClass]int{
	config.FailureTransient: 3,
	config.FailureRateLimit: 3,
	config.FailureInfra:     2,
	config.FailureRuntime:   1,
	config.FailureUnknown:   2,
}

// backoffMultipliers seed the per-class exponential backoff.
var backoffMultipliers = map[config.FailureClass]float64{
	config.FailureTransient: 2.0,
	config.FailureRateLimit: 2.0,
	config.FailureInfra:     1.5,
	config.FailureRuntime:   1.0,
	config.FailureUnknown:   1.5,
}

// RetryBudget returns the retry allowance for a class; zero for classes
// the retry rung never applies to.
func RetryBudget(class config.FailureClass) int {
	return retryBudgets[class]
}

// Backoff computes the delay before the nth retry (0-indexed):
// min(base · mult^attempt, max).
func Backoff(class config.FailureClass, attempt int, cfg config.RetryConfig) time.Duration {
	base := cfg.BaseDelay
	if base <= 0 {
		base = defaultBaseDelay
	}
	maxDelay := cfg.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}
	mult, ok := backoffMultipliers[class]
	if !ok {
		mult = 1.0
	}
	d := time.Duration(float64(base) * math.Pow(mult, float64(attempt)))
	if d > maxDelay || d < 0 {
		return maxDelay
	}
	return d
}

// Decide is the repair ladder: a pure function from (failure class,
// history) to the next action. Phases are tried in ladder order —
// retry, patch, replan, rollback — and the first applicable one wins.
func Decide(class config.FailureClass, h History, cfg config.RetryConfig) Action {
	// Security and policy failures are never auto-recovered.
	if class.RequiresHuman() {
		return Action{
			Kind:   ActionRollback,
			Reason: fmt.Sprintf("%s failure requires human review", class),
		}
	}

	if class.Retryable() {
		if budget := retryBudgets[class]; h.RetriesUsed < budget {
			return Action{
				Kind:    ActionRetry,
				Backoff: Backoff(class, h.RetriesUsed, cfg),
				Reason:  fmt.Sprintf("retry %d/%d for %s", h.RetriesUsed+1, budget, class),
			}
		}
		// Runtime and unknown failures that survive their retries point
		// at architectural breakage: replan territory.
		if class == config.FailureRuntime || class == config.FailureUnknown {
			return decideReplan(h, fmt.Sprintf("retries exhausted for %s", class))
		}
		return Action{
			Kind:   ActionFail,
			Reason: fmt.Sprintf("retry budget exhausted for %s", class),
		}
	}

	if class.Patchable() {
		if h.PatchStreak >= maxPatchStreak {
			return decideReplan(h, fmt.Sprintf("%d consecutive patches failed", h.PatchStreak))
		}
		return Action{
			Kind:   ActionPatch,
			Reason: fmt.Sprintf("constrained patch for %s", class),
		}
	}

	return Action{
		Kind:   ActionFail,
		Reason: fmt.Sprintf("no repair rung applies to %s", class),
	}
}

// decideReplan escalates to replan while the replan budget lasts, then
// to rollback.
func decideReplan(h History, reason string) Action {
	if h.ReplansUsed >= h.MaxReplans {
		return Action{
			Kind:   ActionRollback,
			Reason: "replan failed: " + reason,
		}
	}
	return Action{
		Kind:   ActionReplan,
		Reason: reason,
	}
}
