package services

import (
	"context"
	"testing"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/forgeworks/metabuild/pkg/models"
	testdb "github.com/forgeworks/metabuild/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceIntegration exercises multiple services across one run's life:
// spec freeze, step bookkeeping, failure recording, repair attempts,
// artifacts, timeline, and the terminal canary sample.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	blobs := blobstore.NewEntStore(client.Client)
	runService := NewRunService(client.Client)
	_ = NewStepService(client.Client)
	failureService := NewFailureService(client.Client, masking.NewService())
	repairService := NewRepairService(client.Client)
	artifactService := NewArtifactService(client.Client, blobs)
	timelineService := NewTimelineService(client.Client)
	canaryService := NewCanaryService(client.Client)
	replayService := NewReplayService(client.Client)

	// 1. Create and start the run.
	r, err := runService.CreateRun(ctx, models.CreateRunRequest{
		Tenant:   "default",
		Source:   "Build a ticketing system with SLA reports",
		SLAClass: "normal",
	}, run.CanaryGroupExperimental)
	require.NoError(t, err)
	require.NoError(t, runService.Start(ctx, r.ID))

	// 2. Enqueue a codegen step directly (the queue package owns this in
	// production; here we only need the row).
	st, err := client.Step.Create().
		SetID(uuid.New().String()).
		SetTenant("default").
		SetRunID(r.ID).
		SetIteration(1).
		SetAgentRole(step.AgentRoleCodegenEngineer).
		SetQueue(step.QueueLlm).
		SetIdempotencyKey(uuid.New().String()).
		SetInputDigest("d1").
		SetInputRef("ref1").
		Save(ctx)
	require.NoError(t, err)

	// 3. The step fails; the excerpt carries a secret that must not land
	// in the database.
	f, err := failureService.RecordFailure(ctx, RecordFailureRequest{
		Tenant:     "default",
		RunID:      r.ID,
		StepID:     st.ID,
		Class:      failure.ClassTestAssert,
		Confidence: 0.9,
		LogExcerpt: "assert failed; dial postgres://app:topsecretpw@db/app",
		Retryable:  false,
	})
	require.NoError(t, err)
	assert.NotContains(t, f.LogExcerpt, "topsecretpw")

	// 4. The ladder takes a patch rung.
	attempt, err := repairService.RecordAttempt(ctx, RecordAttemptRequest{
		Tenant:    "default",
		RunID:     r.ID,
		FailureID: f.ID,
		Phase:     repairattempt.PhasePatch,
		Strategy:  "constrained_diff",
	})
	require.NoError(t, err)
	require.NoError(t, repairService.CompleteAttempt(ctx, attempt.ID, repairattempt.OutcomeSucceeded))

	patches, err := repairService.CountByPhase(ctx, r.ID, repairattempt.PhasePatch)
	require.NoError(t, err)
	assert.Equal(t, 1, patches)

	// 5. Store the eval report artifact and read it back.
	report := []byte(`{"score":0.97,"passed":true}`)
	a, err := artifactService.StoreArtifact(ctx, "default", r.ID, 1, artifact.KindEvalReport, report)
	require.NoError(t, err)
	payload, err := artifactService.LoadPayload(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, report, payload)

	latest, err := artifactService.Latest(ctx, r.ID, artifact.KindEvalReport)
	require.NoError(t, err)
	assert.Equal(t, a.ID, latest.ID)

	// 6. Timeline records the journey.
	_, err = timelineService.Append(ctx, "default", r.ID, TimelineStepFailed, "codegen step failed", st.ID, nil)
	require.NoError(t, err)
	_, err = timelineService.Append(ctx, "default", r.ID, TimelineRepair, "patch applied", "", nil)
	require.NoError(t, err)

	timeline, err := timelineService.GetTimeline(ctx, r.ID)
	require.NoError(t, err)
	assert.Len(t, timeline.Events, 2)
	assert.Equal(t, TimelineStepFailed, timeline.Events[0].Kind)

	// 7. Terminal bookkeeping: success, canary sample, no replay bundle.
	require.NoError(t, runService.Complete(ctx, r.ID, run.StateSucceeded, ""))

	_, err = canaryService.RecordSample(ctx, RecordSampleRequest{
		Tenant:     "default",
		RunID:      r.ID,
		Group:      canarysample.GroupExperimental,
		Success:    true,
		CostUSD:    0.42,
		DurationMs: 90_000,
	})
	require.NoError(t, err)

	// One sample per run.
	_, err = canaryService.RecordSample(ctx, RecordSampleRequest{
		Tenant: "default",
		RunID:  r.ID,
		Group:  canarysample.GroupExperimental,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	window, err := canaryService.Window(ctx, "default", canarysample.GroupExperimental, 100)
	require.NoError(t, err)
	assert.Len(t, window, 1)

	// Replay bundles exist only for failed runs.
	_, err = replayService.GetByRun(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTombstoneRunMarksLiveSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	runService := NewRunService(client.Client)
	stepService := NewStepService(client.Client)

	r := mustCreateRun(t, runService)

	mkStep := func(state step.State) *ent.Step {
		st, err := client.Step.Create().
			SetID(uuid.New().String()).
			SetTenant("default").
			SetRunID(r.ID).
			SetIteration(1).
			SetAgentRole(step.AgentRoleQaEvaluator).
			SetQueue(step.QueueCPU).
			SetState(state).
			SetIdempotencyKey(uuid.New().String()).
			SetInputDigest("d").
			SetInputRef("ref").
			Save(ctx)
		require.NoError(t, err)
		return st
	}

	queued := mkStep(step.StateQueued)
	running := mkStep(step.StateRunning)
	done := mkStep(step.StateSucceeded)

	n, err := stepService.TombstoneRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for id, want := range map[string]bool{queued.ID: true, running.ID: true, done.ID: false} {
		st, err := stepService.GetStep(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, st.Tombstoned)
	}
}
