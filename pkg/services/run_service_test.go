package services

import (
	"context"
	"testing"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/models"
	testdb "github.com/forgeworks/metabuild/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRunFreezesSpecAndBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewRunService(client.Client)

	r, err := svc.CreateRun(ctx, models.CreateRunRequest{
		Tenant:       "default",
		Source:       "Build an order management service with auth and invoicing",
		SLAClass:     "thorough",
		MaxIters:     3,
		CostLimitUSD: 5,
		WallTimeS:    600,
	}, run.CanaryGroupControl)
	require.NoError(t, err)

	assert.Equal(t, run.StateDraft, r.State)
	assert.Equal(t, 1, r.Iteration)
	assert.Equal(t, run.CanaryGroupControl, r.CanaryGroup)

	spec, err := svc.GetSpec(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "thorough", string(spec.SLAClass))
	assert.Equal(t, 3, spec.MaxIters)
	// Unset envelope fields got defaults.
	assert.Equal(t, defaultTokenBudget, spec.TokenBudget)

	b, err := svc.GetBudget(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, b.CostLimitUsd)
	assert.Equal(t, 600, b.TimeLimitS)
	assert.Equal(t, 3*attemptsPerIteration, b.AttemptLimit)
	assert.Equal(t, 0.0, b.CostUsedUsd)
}

func TestCreateRunRequiresSource(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)

	_, err := svc.CreateRun(context.Background(), models.CreateRunRequest{Tenant: "default"}, run.CanaryGroupControl)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRunTransitionCAS(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewRunService(client.Client)

	r := mustCreateRun(t, svc)

	require.NoError(t, svc.Start(ctx, r.ID))

	// Second Start loses the CAS: the run already left draft.
	err := svc.Start(ctx, r.ID)
	assert.ErrorIs(t, err, ErrConcurrentModification)

	require.NoError(t, svc.Transition(ctx, r.ID, run.StatePlanning, run.StateDesigning))

	// Transition from a stale expected state fails.
	err = svc.Transition(ctx, r.ID, run.StatePlanning, run.StateGenerating)
	assert.ErrorIs(t, err, ErrConcurrentModification)

	got, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StateDesigning, got.State)
	assert.NotNil(t, got.StartedAt)
}

func TestRunCompleteIsTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewRunService(client.Client)

	r := mustCreateRun(t, svc)
	require.NoError(t, svc.Start(ctx, r.ID))

	require.NoError(t, svc.Complete(ctx, r.ID, run.StateFailed, "budget_exceeded"))

	// Terminal states are absorbing: cancel after failure is rejected.
	err := svc.Cancel(ctx, r.ID, "user request")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StateFailed, got.State)
	require.NotNil(t, got.TerminalReason)
	assert.Equal(t, "budget_exceeded", *got.TerminalReason)
	assert.NotNil(t, got.CompletedAt)
}

func TestRunPauseResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewRunService(client.Client)

	r := mustCreateRun(t, svc)
	require.NoError(t, svc.Start(ctx, r.ID))
	require.NoError(t, svc.Transition(ctx, r.ID, run.StatePlanning, run.StateEvaluating))

	require.NoError(t, svc.Pause(ctx, r.ID, run.StateEvaluating, run.StateEvaluating))

	got, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatePausedAwaitingApproval, got.State)

	require.NoError(t, svc.Resume(ctx, r.ID))

	got, err = svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StateEvaluating, got.State)
	assert.Nil(t, got.PausedState)

	// Resuming a run that is not paused is rejected.
	assert.ErrorIs(t, svc.Resume(ctx, r.ID), ErrInvalidTransition)
}

func TestRunUsageAndPatchStreak(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewRunService(client.Client)

	r := mustCreateRun(t, svc)

	require.NoError(t, svc.AddUsage(ctx, r.ID, 1500, 0.12))
	require.NoError(t, svc.AddUsage(ctx, r.ID, 500, 0.03))

	streak, err := svc.BumpPatchStreak(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
	streak, err = svc.BumpPatchStreak(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	// Going green resets the streak and records the rollback target.
	require.NoError(t, svc.MarkGreen(ctx, r.ID, 2))

	got, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000, got.TokensUsed)
	assert.InDelta(t, 0.15, got.CostUsedUsd, 1e-9)
	assert.Equal(t, 0, got.PatchStreak)
	require.NotNil(t, got.LastGreenIteration)
	assert.Equal(t, 2, *got.LastGreenIteration)
}

func TestListRunsFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewRunService(client.Client)

	r1 := mustCreateRun(t, svc)
	r2 := mustCreateRun(t, svc)
	require.NoError(t, svc.Start(ctx, r2.ID))
	require.NoError(t, svc.SoftDelete(ctx, r1.ID))

	resp, err := svc.ListRuns(ctx, models.RunFilters{Tenant: "default"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)

	resp, err = svc.ListRuns(ctx, models.RunFilters{Tenant: "default", IncludeDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)

	resp, err = svc.ListRuns(ctx, models.RunFilters{State: string(run.StatePlanning)})
	require.NoError(t, err)
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, r2.ID, resp.Runs[0].ID)
}

func mustCreateRun(t *testing.T, svc *RunService) *ent.Run {
	t.Helper()
	r, err := svc.CreateRun(context.Background(), models.CreateRunRequest{
		Tenant: "default",
		Source: "Build a CRM with contacts and deals",
	}, run.CanaryGroupControl)
	require.NoError(t, err)
	return r
}
