package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/version"
)

// HealthResponse reports overall service health plus its components.
// Status is healthy, degraded (serving but the worker pool is impaired),
// or unhealthy (database unreachable).
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Version: version.Full()}

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	if s.pool != nil {
		ph := s.pool.Health(ctx)
		resp.WorkerPool = &ph
		if !ph.IsHealthy {
			resp.Status = "degraded"
		}
	}

	c.JSON(http.StatusOK, resp)
}
