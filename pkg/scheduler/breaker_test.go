package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakerRow(t *testing.T, client *ent.Client, tenant string, class config.FailureClass) *ent.CircuitBreaker {
	t.Helper()
	cb, err := client.CircuitBreaker.Query().
		Where(
			circuitbreaker.TenantEQ(tenant),
			circuitbreaker.FailureClassEQ(circuitbreaker.FailureClass(class)),
		).
		Only(context.Background())
	require.NoError(t, err)
	return cb
}

func TestBreakerTripsAtThreshold(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewBreakerService(client, config.BreakerConfig{
		Threshold:   3,
		Window:      time.Hour,
		Cooldown:    time.Hour,
		CooldownCap: 2 * time.Hour,
	})

	// No row yet reads as closed.
	require.NoError(t, svc.Allow(ctx, "acme", config.FailureInfra))

	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureInfra))
	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureInfra))
	require.NoError(t, svc.Allow(ctx, "acme", config.FailureInfra))

	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureInfra))

	err := svc.Allow(ctx, "acme", config.FailureInfra)
	require.ErrorIs(t, err, ErrCircuitOpen)

	cb := breakerRow(t, client, "acme", config.FailureInfra)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State)
	assert.Equal(t, 3, cb.FailCount)
	require.NotNil(t, cb.CooldownUntil)

	// Breakers are scoped per (tenant, class).
	require.NoError(t, svc.Allow(ctx, "acme", config.FailureTransient))
	require.NoError(t, svc.Allow(ctx, "other", config.FailureInfra))
}

func TestBreakerHalfOpenProbeCycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	// Zero cooldown: the probe is admitted immediately after a trip.
	svc := NewBreakerService(client, config.BreakerConfig{
		Threshold:   1,
		Window:      time.Hour,
		Cooldown:    0,
		CooldownCap: time.Hour,
	})

	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureRateLimit))
	cb := breakerRow(t, client, "acme", config.FailureRateLimit)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State)

	// First caller wins the probe, the second fails fast.
	require.NoError(t, svc.Allow(ctx, "acme", config.FailureRateLimit))
	require.ErrorIs(t, svc.Allow(ctx, "acme", config.FailureRateLimit), ErrCircuitOpen)

	// A successful probe closes the breaker and resets state.
	require.NoError(t, svc.RecordSuccess(ctx, "acme", config.FailureRateLimit))
	require.NoError(t, svc.Allow(ctx, "acme", config.FailureRateLimit))

	cb = breakerRow(t, client, "acme", config.FailureRateLimit)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State)
	assert.Equal(t, 0, cb.FailCount)
	assert.Nil(t, cb.CooldownUntil)
}

func TestBreakerFailedProbeDoublesCooldownCapped(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewBreakerService(client, config.BreakerConfig{
		Threshold:   1,
		Window:      time.Hour,
		Cooldown:    time.Minute,
		CooldownCap: 90 * time.Second,
	})

	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureUnknown))

	// Skip the wait: mark the cooldown as elapsed.
	cb := breakerRow(t, client, "acme", config.FailureUnknown)
	require.NoError(t, cb.Update().
		SetCooldownUntil(time.Now().Add(-time.Second)).
		Exec(ctx))

	require.NoError(t, svc.Allow(ctx, "acme", config.FailureUnknown))

	// The probe fails: reopened with the cooldown doubled, capped.
	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureUnknown))

	cb = breakerRow(t, client, "acme", config.FailureUnknown)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State)
	assert.Equal(t, 90, cb.CooldownS)
	require.ErrorIs(t, svc.Allow(ctx, "acme", config.FailureUnknown), ErrCircuitOpen)
}

func TestBreakerSlidingWindowReset(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewBreakerService(client, config.BreakerConfig{
		Threshold:   3,
		Window:      time.Hour,
		Cooldown:    time.Hour,
		CooldownCap: 2 * time.Hour,
	})

	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureTransient))
	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureTransient))

	// Age the window: the next failure starts a fresh count.
	cb := breakerRow(t, client, "acme", config.FailureTransient)
	require.NoError(t, cb.Update().
		SetWindowStart(time.Now().Add(-2 * time.Hour)).
		Exec(ctx))

	require.NoError(t, svc.RecordFailure(ctx, "acme", config.FailureTransient))

	cb = breakerRow(t, client, "acme", config.FailureTransient)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State)
	assert.Equal(t, 1, cb.FailCount)
}
