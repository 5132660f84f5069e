package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/models"
)

// canaryReport compares the experimental group's rolling window against
// control and returns the promote/hold/abort recommendation.
func (s *Server) canaryReport(c *gin.Context) {
	tenant := c.Query("tenant")
	if tenant == "" {
		tenant = s.cfg.DefaultTenant
	}
	window := intQuery(c, "window", s.cfg.Canary.WindowSize)

	ctx := c.Request.Context()
	ctrlSamples, err := s.canaries.Window(ctx, tenant, canarysample.GroupControl, window)
	if err != nil {
		respondError(c, err)
		return
	}
	expSamples, err := s.canaries.Window(ctx, tenant, canarysample.GroupExperimental, window)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl := evaluator.Summarize(ctrlSamples)
	exp := evaluator.Summarize(expSamples)
	verdict := evaluator.Compare(ctrl, exp, s.cfg.Canary)

	c.JSON(http.StatusOK, models.CanaryReport{
		Tenant:         tenant,
		WindowSize:     window,
		Control:        groupStats(ctrl),
		Experimental:   groupStats(exp),
		Recommendation: string(verdict.Recommendation),
		Reason:         verdict.Reason,
	})
}

func groupStats(w evaluator.GroupWindow) models.CanaryGroupStats {
	return models.CanaryGroupStats{
		Samples:       w.Samples,
		SuccessRate:   w.SuccessRate,
		AvgCostUSD:    w.MeanCostUSD,
		AvgDurationMs: w.MeanDurationMs,
		AvgRetries:    w.MeanRetries,
		AvgReplans:    w.MeanReplans,
		AvgRollbacks:  w.MeanRollbacks,
	}
}
