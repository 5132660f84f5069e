// Package e2e exercises the whole service through its HTTP surface: a
// submission enters over the API, the driver and worker pool carry it
// through the pipeline, and the API reports the outcome.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/api"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/chaos"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/forgeworks/metabuild/pkg/orchestrator"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/scheduler"
	"github.com/forgeworks/metabuild/pkg/services"
	"github.com/forgeworks/metabuild/pkg/tools"
	"github.com/forgeworks/metabuild/test/util"
)

const (
	plannedSpec  = `{"entities":["order","customer"],"workflows":["place order","refund"]}`
	scaffoldPlan = `{"modules":[{"name":"orders","files":["internal/orders/service.go"]}]}`

	generatedDiff = "--- a/internal/orders/service.go\n" +
		"+++ b/internal/orders/service.go\n" +
		"@@ -0,0 +1,4 @@\n" +
		"+package orders\n" +
		"+\n" +
		"+// Service places and refunds orders.\n" +
		"+type Service struct{}\n"
)

// cannedLLM returns a fixed completion per role.
type cannedLLM struct{}

func (cannedLLM) Complete(_ context.Context, req agent.CompletionRequest) (*agent.CompletionResult, error) {
	var text string
	switch {
	case strings.Contains(req.SystemPrompt, "product architect"):
		text = plannedSpec
	case strings.Contains(req.SystemPrompt, "system designer"):
		text = scaffoldPlan
	case strings.Contains(req.SystemPrompt, "code generation"):
		text = generatedDiff
	case strings.Contains(req.SystemPrompt, "automated fixer"):
		text = generatedDiff
	default:
		return nil, agent.NewError(agent.KindInternal, "unexpected system prompt")
	}
	return &agent.CompletionResult{Text: text, TokensIn: 150, TokensOut: 80}, nil
}

func (cannedLLM) Close() error { return nil }

// startService boots the full stack on one test schema and returns an
// http test server in front of the API.
func startService(t *testing.T) *httptest.Server {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

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
	cfg.Queue.WorkerCount = 2
	cfg.Queue.PollInterval = 10 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 5 * time.Millisecond
	cfg.Queue.HeartbeatInterval = 20 * time.Millisecond
	cfg.Queue.OrphanDetectionInterval = time.Hour
	cfg.Scheduler.Retry.BaseDelay = 20 * time.Millisecond
	cfg.Scheduler.Retry.MaxDelay = 100 * time.Millisecond

	dbClient := database.NewClientFromEnt(client, db)
	blobs := blobstore.NewEntStore(client)
	masker := masking.NewService()
	publisher := events.NewPublisher(db)
	qsvc := queue.NewService(client, cfg.Queue)
	sched := scheduler.NewScheduler(cfg.Scheduler, client)
	breakers := scheduler.NewBreakerService(client, cfg.Scheduler.Breaker)
	harness := evaluator.NewHarness(cfg.Evaluator, tools.NewLocalKernel(masker), tools.Policy{})
	catalogue := agent.NewCatalogue(cannedLLM{}, cfg.LLM, harness, cfg.Evaluator)

	executor := orchestrator.NewExecutor(
		catalogue, blobs, chaos.NewInjector(cfg.Chaos), masker,
		services.NewRunService(client),
		services.NewArtifactService(client, blobs),
		services.NewFailureService(client, masker),
		services.NewBudgetService(client),
		services.NewTimelineService(client),
		breakers,
	)

	pool := queue.NewWorkerPool(client, dbClient, cfg.Queue, executor, publisher, "pod-e2e")
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	driver := orchestrator.NewDriver(client, cfg, blobs, masker, qsvc, sched, breakers, catalogue, publisher)
	driver.Start(ctx)
	t.Cleanup(driver.Stop)

	srv := httptest.NewServer(api.NewServer(cfg, dbClient, blobs, pool, driver))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func getRun(t *testing.T, base, runID string) *ent.Run {
	t.Helper()
	resp, err := http.Get(base + "/api/v1/runs/" + runID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail models.RunDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	require.NotNil(t, detail.Run)
	return detail.Run
}

func waitForState(t *testing.T, base, runID, want string) *ent.Run {
	t.Helper()
	var last *ent.Run
	require.Eventually(t, func() bool {
		last = getRun(t, base, runID)
		return string(last.State) == want
	}, 60*time.Second, 50*time.Millisecond, "run never reached %s", want)
	return last
}

func TestSubmissionRunsToSuccessOverAPI(t *testing.T) {
	srv := startService(t)

	resp := postJSON(t, srv.URL+"/api/v1/runs", models.CreateRunRequest{
		Source:   "Build an order service with refunds",
		MaxIters: 3,
		Acceptance: []map[string]interface{}{
			{"kind": "contains", "field": agent.ArtifactDiff, "value": "refund"},
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ent.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	done := waitForState(t, srv.URL, created.ID, "succeeded")
	assert.Greater(t, done.CostUsedUsd, 0.0)

	// Timeline recorded the lifecycle.
	tlResp, err := http.Get(srv.URL + "/api/v1/runs/" + created.ID + "/timeline")
	require.NoError(t, err)
	defer tlResp.Body.Close()
	require.Equal(t, http.StatusOK, tlResp.StatusCode)
	var timeline models.TimelineResponse
	require.NoError(t, json.NewDecoder(tlResp.Body).Decode(&timeline))
	assert.NotEmpty(t, timeline.Events)

	// Delivery artifacts are listable.
	aResp, err := http.Get(srv.URL + "/api/v1/runs/" + created.ID + "/artifacts?kind=pr_body")
	require.NoError(t, err)
	defer aResp.Body.Close()
	require.Equal(t, http.StatusOK, aResp.StatusCode)
	var listing struct {
		Artifacts []*ent.Artifact `json:"artifacts"`
	}
	require.NoError(t, json.NewDecoder(aResp.Body).Decode(&listing))
	assert.Len(t, listing.Artifacts, 1)

	// No replay bundle for a healthy run.
	rResp, err := http.Get(srv.URL + "/api/v1/runs/" + created.ID + "/replay")
	require.NoError(t, err)
	rResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, rResp.StatusCode)
}

func TestSecurityGateApprovalOverAPI(t *testing.T) {
	srv := startService(t)

	resp := postJSON(t, srv.URL+"/api/v1/runs", models.CreateRunRequest{
		Source:     "Build an order service with card settlement",
		MaxIters:   3,
		DomainTags: []string{"payment"},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ent.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	waitForState(t, srv.URL, created.ID, "paused_awaiting_approval")

	gResp, err := http.Get(srv.URL + "/api/v1/runs/" + created.ID + "/approvals")
	require.NoError(t, err)
	defer gResp.Body.Close()
	var gates struct {
		Approvals []*ent.ApprovalGate `json:"approvals"`
	}
	require.NoError(t, json.NewDecoder(gResp.Body).Decode(&gates))
	require.Len(t, gates.Approvals, 1)

	dResp := postJSON(t, srv.URL+"/api/v1/approvals/"+gates.Approvals[0].ID+"/approve",
		models.ApprovalDecisionRequest{Decider: "sec-team@example.com"})
	defer dResp.Body.Close()
	require.Equal(t, http.StatusOK, dResp.StatusCode)

	waitForState(t, srv.URL, created.ID, "succeeded")
}

func TestCancelOverAPI(t *testing.T) {
	srv := startService(t)

	resp := postJSON(t, srv.URL+"/api/v1/runs", models.CreateRunRequest{
		Source:   "Build an order service with refunds",
		MaxIters: 3,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ent.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	// Cancel races the pipeline; whichever state the run is in, the
	// outcome is terminal and the API reports it.
	cResp := postJSON(t, srv.URL+"/api/v1/runs/"+created.ID+"/cancel",
		models.CancelRunRequest{Reason: "operator abort"})
	defer cResp.Body.Close()

	if cResp.StatusCode == http.StatusOK {
		waitForState(t, srv.URL, created.ID, "cancelled")
	} else {
		// The run finished before the cancel landed.
		require.Equal(t, http.StatusConflict, cResp.StatusCode)
	}
}
