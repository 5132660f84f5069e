package services

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/models"
	testdb "github.com/forgeworks/metabuild/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetChargeWithinLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runSvc := NewRunService(client.Client)
	svc := NewBudgetService(client.Client)

	r := createRunWithBudget(t, runSvc, 1.00, 3)

	require.NoError(t, svc.Charge(ctx, r.ID, 0.40, 1))
	require.NoError(t, svc.Charge(ctx, r.ID, 0.40, 1))

	costLeft, attemptsLeft, err := svc.Remaining(ctx, r.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.20, costLeft, 1e-9)
	assert.Equal(t, 1, attemptsLeft)

	ratio, err := svc.UsedRatio(ctx, r.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.80, ratio, 1e-9)
}

func TestBudgetChargeRecordsOverage(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runSvc := NewRunService(client.Client)
	svc := NewBudgetService(client.Client)

	r := createRunWithBudget(t, runSvc, 1.00, 3)

	// The charge that breaches the limit is still persisted.
	err := svc.Charge(ctx, r.ID, 1.50, 1)
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	b, err := runSvc.GetBudget(ctx, r.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.50, b.CostUsedUsd, 1e-9)
	assert.NotNil(t, b.ExceededAt)

	costLeft, _, err := svc.Remaining(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, costLeft)
}

func TestBudgetAttemptLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runSvc := NewRunService(client.Client)
	svc := NewBudgetService(client.Client)

	r := createRunWithBudget(t, runSvc, 100, 2)

	require.NoError(t, svc.Charge(ctx, r.ID, 0, 1))
	require.NoError(t, svc.Charge(ctx, r.ID, 0, 1))
	assert.ErrorIs(t, svc.Charge(ctx, r.ID, 0, 1), ErrBudgetExceeded)
}

func TestBudgetChargeTime(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runSvc := NewRunService(client.Client)
	svc := NewBudgetService(client.Client)

	r, err := runSvc.CreateRun(ctx, models.CreateRunRequest{
		Tenant:    "default",
		Source:    "Build a helpdesk",
		WallTimeS: 60,
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	require.NoError(t, svc.ChargeTime(ctx, r.ID, 45*time.Second))
	assert.ErrorIs(t, svc.ChargeTime(ctx, r.ID, 90*time.Second), ErrBudgetExceeded)

	b, err := runSvc.GetBudget(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, b.TimeUsedS)
	assert.NotNil(t, b.ExceededAt)
}

func createRunWithBudget(t *testing.T, runSvc *RunService, costLimit float64, attempts int) *ent.Run {
	t.Helper()
	r, err := runSvc.CreateRun(context.Background(), models.CreateRunRequest{
		Tenant:       "default",
		Source:       "Build an inventory tracker",
		CostLimitUSD: costLimit,
		MaxIters:     attempts,
	}, run.CanaryGroupControl)
	require.NoError(t, err)
	return r
}
