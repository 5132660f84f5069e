package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/metabuild/ent/artifact"
)

func (s *Server) listArtifacts(c *gin.Context) {
	var kind *artifact.Kind
	if v := c.Query("kind"); v != "" {
		k := artifact.Kind(v)
		if err := artifact.KindValidator(k); err != nil {
			respondBadRequest(c, "invalid artifact kind: "+v)
			return
		}
		kind = &k
	}

	artifacts, err := s.artifacts.ListByRun(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

// artifactPayload streams the artifact's blob. Structured artifacts are
// JSON; diffs and PR bodies are plain text.
func (s *Server) artifactPayload(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := s.artifacts.GetArtifact(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	payload, err := s.artifacts.LoadPayload(ctx, a)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := "application/json"
	switch a.Kind {
	case artifact.KindDiff, artifact.KindPrBody:
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, payload)
}
