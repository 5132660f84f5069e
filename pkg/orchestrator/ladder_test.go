package orchestrator

import (
	"testing"
	"time"

	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/stretchr/testify/assert"
)

var testRetry = config.RetryConfig{
	BaseDelay: time.Second,
	MaxDelay:  60 * time.Second,
}

func TestDecideRetryBudgets(t *testing.T) {
	tests := []struct {
		class  config.FailureClass
		budget int
	}{
		{config.FailureTransient, 3},
		{config.FailureRateLimit, 3},
		{config.FailureInfra, 2},
		{config.FailureRuntime, 1},
		{config.FailureUnknown, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.class), func(t *testing.T) {
			for used := 0; used < tc.budget; used++ {
				a := Decide(tc.class, History{RetriesUsed: used, MaxReplans: 1}, testRetry)
				assert.Equal(t, ActionRetry, a.Kind, "retry %d within budget", used)
				assert.Positive(t, a.Backoff)
			}

			exhausted := Decide(tc.class, History{RetriesUsed: tc.budget, MaxReplans: 1}, testRetry)
			assert.NotEqual(t, ActionRetry, exhausted.Kind)
		})
	}
}

func TestDecideExhaustedRetryEscalation(t *testing.T) {
	// Runtime and unknown escalate to replan: sustained failure there is
	// architectural, not environmental.
	a := Decide(config.FailureRuntime, History{RetriesUsed: 1, MaxReplans: 1}, testRetry)
	assert.Equal(t, ActionReplan, a.Kind)

	a = Decide(config.FailureUnknown, History{RetriesUsed: 2, MaxReplans: 1}, testRetry)
	assert.Equal(t, ActionReplan, a.Kind)

	// Environmental classes give up.
	a = Decide(config.FailureTransient, History{RetriesUsed: 3, MaxReplans: 1}, testRetry)
	assert.Equal(t, ActionFail, a.Kind)

	a = Decide(config.FailureInfra, History{RetriesUsed: 2, MaxReplans: 1}, testRetry)
	assert.Equal(t, ActionFail, a.Kind)
}

func TestDecideBackoffCurve(t *testing.T) {
	// Transient doubles: 1s, 2s, 4s.
	assert.Equal(t, time.Second, Backoff(config.FailureTransient, 0, testRetry))
	assert.Equal(t, 2*time.Second, Backoff(config.FailureTransient, 1, testRetry))
	assert.Equal(t, 4*time.Second, Backoff(config.FailureTransient, 2, testRetry))

	// Runtime stays flat.
	assert.Equal(t, time.Second, Backoff(config.FailureRuntime, 0, testRetry))
	assert.Equal(t, time.Second, Backoff(config.FailureRuntime, 3, testRetry))

	// Capped at max.
	assert.Equal(t, 60*time.Second, Backoff(config.FailureTransient, 10, testRetry))

	// Zero config falls back to 1s/60s.
	assert.Equal(t, time.Second, Backoff(config.FailureTransient, 0, config.RetryConfig{}))
}

func TestDecidePatchableClasses(t *testing.T) {
	for _, class := range []config.FailureClass{
		config.FailureLint,
		config.FailureTypeCheck,
		config.FailureTestAssert,
		config.FailureSchemaMigration,
	} {
		a := Decide(class, History{MaxReplans: 1}, testRetry)
		assert.Equal(t, ActionPatch, a.Kind, class)

		// One failed patch: try again.
		a = Decide(class, History{PatchStreak: 1, MaxReplans: 1}, testRetry)
		assert.Equal(t, ActionPatch, a.Kind, class)

		// Two in a row: escalate to replan.
		a = Decide(class, History{PatchStreak: 2, MaxReplans: 1}, testRetry)
		assert.Equal(t, ActionReplan, a.Kind, class)
	}
}

func TestDecideReplanBudgetEscalatesToRollback(t *testing.T) {
	a := Decide(config.FailureLint, History{PatchStreak: 2, ReplansUsed: 1, MaxReplans: 1}, testRetry)
	assert.Equal(t, ActionRollback, a.Kind)

	a = Decide(config.FailureRuntime, History{RetriesUsed: 1, ReplansUsed: 1, MaxReplans: 1}, testRetry)
	assert.Equal(t, ActionRollback, a.Kind)
}

func TestDecideHumanClassesRollBackImmediately(t *testing.T) {
	for _, class := range []config.FailureClass{config.FailureSecurity, config.FailurePolicy} {
		a := Decide(class, History{MaxReplans: 1}, testRetry)
		assert.Equal(t, ActionRollback, a.Kind, class)
	}
}
