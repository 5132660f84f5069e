package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelTierUpgradeDowngrade(t *testing.T) {
	assert.Equal(t, TierMedium, TierSmall.Upgrade())
	assert.Equal(t, TierLarge, TierMedium.Upgrade())
	assert.Equal(t, TierLarge, TierLarge.Upgrade()) // capped

	assert.Equal(t, TierMedium, TierLarge.Downgrade())
	assert.Equal(t, TierSmall, TierMedium.Downgrade())
	assert.Equal(t, TierSmall, TierSmall.Downgrade()) // floored
}

func TestFailureClassLadderBuckets(t *testing.T) {
	assert.True(t, FailureTransient.Retryable())
	assert.True(t, FailureRateLimit.Retryable())
	assert.True(t, FailureInfra.Retryable())
	assert.False(t, FailureLint.Retryable())
	assert.False(t, FailureSecurity.Retryable())

	assert.True(t, FailureLint.Patchable())
	assert.True(t, FailureTypeCheck.Patchable())
	assert.True(t, FailureTestAssert.Patchable())
	assert.True(t, FailureSchemaMigration.Patchable())
	assert.False(t, FailureTransient.Patchable())

	assert.True(t, FailureSecurity.RequiresHuman())
	assert.True(t, FailurePolicy.RequiresHuman())
	assert.False(t, FailureRuntime.RequiresHuman())
}

func TestEnumValidity(t *testing.T) {
	for _, c := range AllFailureClasses() {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, FailureClass("meltdown").IsValid())

	for _, q := range AllQueueClasses() {
		assert.True(t, q.IsValid(), string(q))
	}
	assert.False(t, QueueClass("gpu").IsValid())

	assert.True(t, SLAFast.IsValid())
	assert.False(t, SLAClass("instant").IsValid())
	assert.True(t, PhaseRollback.IsValid())
	assert.False(t, RepairPhase("pray").IsValid())
}
