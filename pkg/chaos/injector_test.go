package chaos

import (
	"errors"
	"testing"

	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectorDisabledByDefault(t *testing.T) {
	inj := NewInjector(config.DefaultChaosConfig())
	for i := 0; i < 100; i++ {
		assert.NoError(t, inj.Inject(step.AgentRoleCodegenEngineer))
	}
	assert.Zero(t, inj.Injections())
}

func TestInjectorMatchesRoleAndClass(t *testing.T) {
	inj := NewInjector(&config.ChaosConfig{
		Enabled: true,
		Seed:    42,
		Rules: []config.ChaosRule{
			{Role: "codegen_engineer", Class: config.FailureInfra, Probability: 1.0},
		},
	})

	// Other roles are untouched.
	require.NoError(t, inj.Inject(step.AgentRoleReviewer))

	err := inj.Inject(step.AgentRoleCodegenEngineer)
	require.Error(t, err)

	var agentErr *agent.Error
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, agent.KindInternal, agentErr.Kind)
	assert.Equal(t, config.FailureInfra, agentErr.FailureClass())
}

func TestInjectorMaxInjectionsCap(t *testing.T) {
	inj := NewInjector(&config.ChaosConfig{
		Enabled: true,
		Seed:    42,
		Rules: []config.ChaosRule{
			{Class: config.FailureTransient, Probability: 1.0, MaxInjections: 2},
		},
	})

	require.Error(t, inj.Inject(step.AgentRoleCodegenEngineer))
	require.Error(t, inj.Inject(step.AgentRoleQaEvaluator))
	// Budget spent: the rule goes quiet.
	require.NoError(t, inj.Inject(step.AgentRoleCodegenEngineer))
	assert.Equal(t, 2, inj.Injections())
}

func TestInjectorFirstMatchWins(t *testing.T) {
	inj := NewInjector(&config.ChaosConfig{
		Enabled: true,
		Seed:    42,
		Rules: []config.ChaosRule{
			{Class: config.FailureRateLimit, Probability: 1.0, MaxInjections: 1},
			{Class: config.FailureInfra, Probability: 1.0},
		},
	})

	first := agent.AsError(inj.Inject(step.AgentRoleAutoFixer))
	assert.Equal(t, config.FailureRateLimit, first.FailureClass())

	// The exhausted rule is skipped; the next one fires.
	second := agent.AsError(inj.Inject(step.AgentRoleAutoFixer))
	assert.Equal(t, config.FailureInfra, second.FailureClass())
}

func TestInjectorSeedIsDeterministic(t *testing.T) {
	build := func() *Injector {
		return NewInjector(&config.ChaosConfig{
			Enabled: true,
			Seed:    7,
			Rules: []config.ChaosRule{
				{Class: config.FailureUnknown, Probability: 0.5},
			},
		})
	}

	a, b := build(), build()
	for i := 0; i < 200; i++ {
		assert.Equal(t,
			a.Inject(step.AgentRoleCodegenEngineer) != nil,
			b.Inject(step.AgentRoleCodegenEngineer) != nil,
			"diverged at invocation %d", i)
	}
	assert.Equal(t, a.Injections(), b.Injections())
	// Probability 0.5 over 200 rolls lands somewhere in the middle.
	assert.Greater(t, a.Injections(), 50)
	assert.Less(t, a.Injections(), 150)
}
