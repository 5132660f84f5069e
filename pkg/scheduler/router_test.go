package scheduler

import (
	"testing"

	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestSelectTier(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()

	// SLA mapping with no pressure.
	assert.Equal(t, config.TierSmall, SelectTier(cfg, config.SLAFast, 0, 25, 0))
	assert.Equal(t, config.TierMedium, SelectTier(cfg, config.SLANormal, 0, 25, 0))
	assert.Equal(t, config.TierLarge, SelectTier(cfg, config.SLAThorough, 0, 25, 0))

	// Cost pressure downgrades one tier.
	assert.Equal(t, config.TierMedium, SelectTier(cfg, config.SLAThorough, 20, 25, 0))
	assert.Equal(t, config.TierSmall, SelectTier(cfg, config.SLANormal, 20, 25, 0))
	// Never below small.
	assert.Equal(t, config.TierSmall, SelectTier(cfg, config.SLAFast, 20, 25, 0))

	// Repeated repairs at the tier upgrade one tier.
	assert.Equal(t, config.TierLarge, SelectTier(cfg, config.SLANormal, 0, 25, 3))
	// Never above large.
	assert.Equal(t, config.TierLarge, SelectTier(cfg, config.SLAThorough, 0, 25, 3))
	// Exactly at the bound does not upgrade yet.
	assert.Equal(t, config.TierMedium, SelectTier(cfg, config.SLANormal, 0, 25, 2))

	// Cost pressure wins over the repair upgrade.
	assert.Equal(t, config.TierSmall, SelectTier(cfg, config.SLANormal, 20, 25, 3))

	// Unlimited budget never triggers pressure.
	assert.Equal(t, config.TierMedium, SelectTier(cfg, config.SLANormal, 1000, 0, 0))
}

func TestRouteQueue(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()

	// Declared class by default.
	assert.Equal(t, step.QueueLlm, RouteQueue(cfg, config.SLANormal, step.QueueLlm, 100, false))
	assert.Equal(t, step.QueueCPU, RouteQueue(cfg, config.SLAFast, step.QueueCPU, 25, false))

	// Fast SLA escalates out of a deep queue.
	assert.Equal(t, step.QueueHigh, RouteQueue(cfg, config.SLAFast, step.QueueLlm, 26, false))

	// Thorough SLA with rollback context demotes to low.
	assert.Equal(t, step.QueueLow, RouteQueue(cfg, config.SLAThorough, step.QueueLlm, 0, true))

	// Rollback context without thorough SLA keeps the declared class.
	assert.Equal(t, step.QueueLlm, RouteQueue(cfg, config.SLANormal, step.QueueLlm, 0, true))
}

func TestPriorityFor(t *testing.T) {
	assert.Greater(t, PriorityFor(config.SLAFast), PriorityFor(config.SLANormal))
	assert.Greater(t, PriorityFor(config.SLANormal), PriorityFor(config.SLAThorough))
}
