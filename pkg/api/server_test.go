package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/forgeworks/metabuild/pkg/services"
	testdb "github.com/forgeworks/metabuild/test/database"
)

type recordingWaker struct {
	wakes int
}

func (w *recordingWaker) Wake() { w.wakes++ }

type testServer struct {
	srv   *Server
	db    *database.Client
	waker *recordingWaker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testdb.NewTestClient(t)

	cfg := &config.Config{
		Queue:         config.DefaultQueueConfig(),
		Scheduler:     config.DefaultSchedulerConfig(),
		Canary:        config.DefaultCanaryConfig(),
		Chaos:         config.DefaultChaosConfig(),
		Evaluator:     config.DefaultEvaluatorConfig(),
		LLM:           config.DefaultLLMConfig(),
		Retention:     config.DefaultRetentionConfig(),
		DefaultTenant: "default",
	}

	waker := &recordingWaker{}
	srv := NewServer(cfg, db, blobstore.NewEntStore(db.Client), nil, waker)
	return &testServer{srv: srv, db: db, waker: waker}
}

func (ts *testServer) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.srv.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestCreateRunAndGetDetail(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/runs", models.CreateRunRequest{
		Source:       "Build an order management service",
		SLAClass:     "fast",
		MaxIters:     3,
		CostLimitUSD: 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeJSON[*ent.Run](t, rec)
	assert.Equal(t, run.StateDraft, created.State)
	assert.Equal(t, "default", created.Tenant)
	assert.Equal(t, 1, ts.waker.wakes)

	rec = ts.request(t, http.MethodGet, "/api/v1/runs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decodeJSON[models.RunDetailResponse](t, rec)
	require.NotNil(t, detail.Spec)
	assert.Equal(t, 3, detail.Spec.MaxIters)
	require.NotNil(t, detail.Budget)
	assert.Equal(t, 2.0, detail.Budget.CostLimitUsd)
}

func TestCreateRunRejectsMissingSource(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/runs", models.CreateRunRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRunNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/runs/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRunsFiltersByState(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	runs := services.NewRunService(ts.db.Client)

	r1 := mustSubmitRun(t, ts)
	r2 := mustSubmitRun(t, ts)
	require.NoError(t, runs.Start(ctx, r2.ID))

	rec := ts.request(t, http.MethodGet, "/api/v1/runs?state="+string(run.StatePlanning), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.RunListResponse](t, rec)
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, r2.ID, resp.Runs[0].ID)

	rec = ts.request(t, http.MethodGet, "/api/v1/runs?tenant=default", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeJSON[models.RunListResponse](t, rec)
	assert.Equal(t, 2, resp.TotalCount)
	_ = r1

	rec = ts.request(t, http.MethodGet, "/api/v1/runs?state=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelRun(t *testing.T) {
	ts := newTestServer(t)

	r := mustSubmitRun(t, ts)

	rec := ts.request(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel",
		models.CancelRunRequest{Reason: "changed my mind"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeJSON[models.CancelRunResponse](t, rec)
	assert.Equal(t, r.ID, resp.RunID)
	assert.Equal(t, "changed my mind", resp.Reason)

	got, err := services.NewRunService(ts.db.Client).GetRun(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StateCancelled, got.State)

	// Cancelled is terminal: a second cancel conflicts.
	rec = ts.request(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApprovalDecisionFlow(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	r := mustSubmitRun(t, ts)
	gate, err := services.NewApprovalService(ts.db.Client).CreateGate(ctx, r.Tenant, r.ID, "PCI review required", "security")
	require.NoError(t, err)

	rec := ts.request(t, http.MethodPost, "/api/v1/approvals/"+gate.ID+"/approve",
		models.ApprovalDecisionRequest{Decider: "alex@example.com", Comment: "scope reviewed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	decided := decodeJSON[*ent.ApprovalGate](t, rec)
	assert.Equal(t, approvalgate.DecisionApproved, decided.Decision)
	assert.Equal(t, "alex@example.com", decided.Decider)
	assert.True(t, ts.waker.wakes >= 2)

	// The gate is single-shot: a conflicting rejection loses.
	rec = ts.request(t, http.MethodPost, "/api/v1/approvals/"+gate.ID+"/reject", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The decision landed on the run's audit trail.
	rec = ts.request(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/timeline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	timeline := decodeJSON[models.TimelineResponse](t, rec)
	found := false
	for _, ev := range timeline.Events {
		if ev.Kind == "approval.decided" {
			found = true
			assert.Equal(t, "scope reviewed", ev.Details["comment"])
		}
	}
	assert.True(t, found, "expected approval.decided timeline event")
}

func TestApprovalFallsBackToProxyIdentity(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	r := mustSubmitRun(t, ts)
	gate, err := services.NewApprovalService(ts.db.Client).CreateGate(ctx, r.Tenant, r.ID, "review before delivery", "reviewer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/approvals/"+gate.ID+"/approve", nil)
	req.Header.Set("X-Forwarded-User", "sam")
	rec := httptest.NewRecorder()
	ts.srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	decided := decodeJSON[*ent.ApprovalGate](t, rec)
	assert.Equal(t, "sam", decided.Decider)
}

func TestReplayEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	r := mustSubmitRun(t, ts)

	// No bundle until the run fails terminally.
	rec := ts.request(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/replay", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	bundle := &evaluator.Bundle{RunID: r.ID, Tenant: r.Tenant}
	payload, err := bundle.Marshal()
	require.NoError(t, err)
	hash, err := bundle.Hash()
	require.NoError(t, err)

	blobs := blobstore.NewEntStore(ts.db.Client)
	ref, err := blobs.Put(ctx, r.Tenant, payload)
	require.NoError(t, err)
	_, err = services.NewReplayService(ts.db.Client).Create(ctx, r.Tenant, r.ID, hash, ref)
	require.NoError(t, err)

	rec = ts.request(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/replay", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.ReplayBundleResponse](t, rec)
	assert.Equal(t, hash, resp.BundleHash)
	assert.Nil(t, resp.ReplayedOK)

	rec = ts.request(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/replay?payload=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestArtifactListAndPayload(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	r := mustSubmitRun(t, ts)
	blobs := blobstore.NewEntStore(ts.db.Client)
	artifacts := services.NewArtifactService(ts.db.Client, blobs)

	diff := []byte("--- a/main.go\n+++ b/main.go\n@@ -1 +1,2 @@\n+// changed\n")
	stored, err := artifacts.StoreArtifact(ctx, r.Tenant, r.ID, 1, artifact.KindDiff, diff)
	require.NoError(t, err)

	rec := ts.request(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/artifacts?kind=diff", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Artifacts []*ent.Artifact `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Artifacts, 1)

	rec = ts.request(t, http.MethodGet, "/api/v1/artifacts/"+stored.ID+"/payload", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, diff, rec.Body.Bytes())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	rec = ts.request(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/artifacts?kind=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCanaryReportEmptyWindows(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/canary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	report := decodeJSON[models.CanaryReport](t, rec)
	assert.Equal(t, "default", report.Tenant)
	assert.Equal(t, 0, report.Control.Samples)
	// Empty windows compare as neutral ratios: hold.
	assert.Equal(t, "hold", report.Recommendation)
}

func TestHealthzReportsHealthy(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	require.NotNil(t, health.Database)
	assert.Nil(t, health.WorkerPool)
}

func TestSecurityHeadersApplied(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/runs", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func mustSubmitRun(t *testing.T, ts *testServer) *ent.Run {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/v1/runs", models.CreateRunRequest{
		Source: fmt.Sprintf("Build a CRM (submission %d)", ts.waker.wakes),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[*ent.Run](t, rec)
}
