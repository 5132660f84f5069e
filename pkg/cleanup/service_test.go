package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/event"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/forgeworks/metabuild/pkg/services"
	testdb "github.com/forgeworks/metabuild/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		Enabled:               true,
		RunRetentionDays:      90,
		EventRetentionMinutes: 10,
		IntervalHours:         6,
	}
}

func createRun(t *testing.T, client *ent.Client) *ent.Run {
	t.Helper()
	r, err := services.NewRunService(client).CreateRun(context.Background(), models.CreateRunRequest{
		Tenant: "default",
		Source: "Build a ledger service",
	}, run.CanaryGroupControl)
	require.NoError(t, err)
	return r
}

func insertEvent(t *testing.T, client *ent.Client, runID string, age time.Duration) {
	t.Helper()
	err := client.Event.Create().
		SetTenant("default").
		SetRunID(runID).
		SetChannel("run_status").
		SetPayload(map[string]interface{}{"state": "x"}).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestSoftDeletesOldTerminalRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)

	old := createRun(t, client.Client)
	require.NoError(t, runs.Start(ctx, old.ID))
	require.NoError(t, runs.Complete(ctx, old.ID, run.StateSucceeded, "done"))
	// Backdate completion past the retention window.
	require.NoError(t, client.Run.UpdateOneID(old.ID).
		SetCompletedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx))

	recent := createRun(t, client.Client)
	require.NoError(t, runs.Start(ctx, recent.ID))
	require.NoError(t, runs.Complete(ctx, recent.ID, run.StateSucceeded, "done"))

	live := createRun(t, client.Client)

	svc := NewService(retentionConfig(), client.Client)
	svc.RunAll(ctx)

	got, err := runs.GetRun(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.DeletedAt)

	got, err = runs.GetRun(ctx, recent.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)

	got, err = runs.GetRun(ctx, live.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}

func TestPrunesEventsOfTerminalRunsOnly(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)

	done := createRun(t, client.Client)
	require.NoError(t, runs.Start(ctx, done.ID))
	require.NoError(t, runs.Complete(ctx, done.ID, run.StateFailed, "budget exceeded"))
	insertEvent(t, client.Client, done.ID, 30*time.Minute)
	insertEvent(t, client.Client, done.ID, 20*time.Minute)

	// A live run's events are kept regardless of age.
	live := createRun(t, client.Client)
	insertEvent(t, client.Client, live.ID, 30*time.Minute)

	// Fresh events of a terminal run are inside the TTL and stay until a
	// sibling crosses it; catch-up is pointless after the run ends.
	insertEvent(t, client.Client, done.ID, time.Minute)

	svc := NewService(retentionConfig(), client.Client)
	svc.RunAll(ctx)

	n, err := client.Event.Query().Where(event.RunIDEQ(done.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = client.Event.Query().Where(event.RunIDEQ(live.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStartStopIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
	// Stop after stop is a no-op.
	svc.Stop()
}
