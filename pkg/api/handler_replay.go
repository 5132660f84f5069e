package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/metabuild/pkg/models"
)

// getReplay returns the run's replay bundle reference. Bundles exist only
// for runs that failed terminally, so the common case for a healthy run
// is 404. With ?payload=true the serialized bundle itself is returned.
func (s *Server) getReplay(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("id")

	bundle, err := s.replays.GetByRun(ctx, runID)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("payload") == "true" {
		payload, err := s.blobs.Get(ctx, bundle.StorageRef)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	c.JSON(http.StatusOK, models.ReplayBundleResponse{
		RunID:      bundle.RunID,
		BundleHash: bundle.BundleHash,
		StorageRef: bundle.StorageRef,
		ReplayedOK: bundle.ReplayedOk,
		CreatedAt:  bundle.CreatedAt,
	})
}
