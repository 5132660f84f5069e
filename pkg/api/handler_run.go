package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/models"
)

// createRun freezes the submitted spec into a draft run. The canary group
// is drawn here so the A/B split covers every submission path.
func (s *Server) createRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Tenant == "" {
		req.Tenant = s.cfg.DefaultTenant
	}

	group := evaluator.Assign(uuid.New().String(), s.cfg.Canary.ExperimentalFraction)

	r, err := s.runs.CreateRun(c.Request.Context(), req, group)
	if err != nil {
		respondError(c, err)
		return
	}

	s.wake()
	c.JSON(http.StatusCreated, r)
}

func (s *Server) getRun(c *gin.Context) {
	detail, err := s.runs.GetRunDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) listRuns(c *gin.Context) {
	filters := models.RunFilters{
		Tenant:      c.Query("tenant"),
		CanaryGroup: c.Query("canary_group"),
	}

	if state := c.Query("state"); state != "" {
		if err := run.StateValidator(run.State(state)); err != nil {
			respondBadRequest(c, "invalid state filter: "+state)
			return
		}
		filters.State = state
	}
	if v := c.Query("created_after"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondBadRequest(c, "created_after must be RFC3339")
			return
		}
		filters.CreatedAfter = &ts
	}
	if v := c.Query("created_before"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondBadRequest(c, "created_before must be RFC3339")
			return
		}
		filters.CreatedBefore = &ts
	}
	filters.Limit = intQuery(c, "limit", 0)
	filters.Offset = intQuery(c, "offset", 0)
	filters.IncludeDeleted = c.Query("include_deleted") == "true"

	resp, err := s.runs.ListRuns(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// cancelRun moves the run to cancelled, tombstones its queued steps, and
// interrupts any step currently executing on this pod's workers.
func (s *Server) cancelRun(c *gin.Context) {
	runID := c.Param("id")

	var req models.CancelRunRequest
	// Body is optional; an empty body means no reason given.
	_ = c.ShouldBindJSON(&req)
	reason := req.Reason
	if reason == "" {
		reason = "cancelled by " + extractAuthor(c)
	}

	ctx := c.Request.Context()
	if err := s.runs.Cancel(ctx, runID, reason); err != nil {
		respondError(c, err)
		return
	}

	tombstoned, err := s.steps.TombstoneRun(ctx, runID)
	if err != nil {
		respondError(c, err)
		return
	}

	interrupted := 0
	if s.pool != nil {
		interrupted, _ = s.pool.CancelRunSteps(ctx, runID)
	}

	s.wake()
	c.JSON(http.StatusOK, models.CancelRunResponse{
		RunID:            runID,
		Reason:           reason,
		TombstonedSteps:  tombstoned,
		InterruptedSteps: interrupted,
	})
}

func (s *Server) listSteps(c *gin.Context) {
	filters := models.StepFilters{
		RunID:     c.Param("id"),
		AgentRole: c.Query("agent_role"),
		Queue:     c.Query("queue"),
		State:     c.Query("state"),
		Iteration: intQuery(c, "iteration", 0),
		Limit:     intQuery(c, "limit", 0),
		Offset:    intQuery(c, "offset", 0),
	}

	resp, err := s.steps.ListSteps(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getTimeline(c *gin.Context) {
	resp, err := s.timeline.GetTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// intQuery parses an integer query parameter, falling back on absence or
// garbage.
func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
