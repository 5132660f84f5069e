// Package api implements the HTTP control surface: run submission and
// inspection, cancellation, approval decisions, replay bundle lookup,
// canary reporting, and operational endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/database"
	"github.com/forgeworks/metabuild/pkg/queue"
	"github.com/forgeworks/metabuild/pkg/services"
)

// Waker is pinged after a mutating request so the orchestrator rescans
// immediately instead of waiting for its next poll tick.
type Waker interface {
	Wake()
}

// Server wires the HTTP routes onto the service layer.
type Server struct {
	cfg   *config.Config
	db    *database.Client
	pool  *queue.WorkerPool
	waker Waker
	blobs blobstore.Store

	runs      *services.RunService
	steps     *services.StepService
	artifacts *services.ArtifactService
	approvals *services.ApprovalService
	timeline  *services.TimelineService
	replays   *services.ReplayService
	canaries  *services.CanaryService

	engine  *gin.Engine
	httpSrv *http.Server
}

// NewServer builds the server and registers all routes. pool and waker
// may be nil when the API runs without an embedded orchestrator (the
// affected endpoints degrade gracefully).
func NewServer(cfg *config.Config, db *database.Client, blobs blobstore.Store, pool *queue.WorkerPool, waker Waker) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:   cfg,
		db:    db,
		pool:  pool,
		waker: waker,
		blobs: blobs,

		runs:      services.NewRunService(db.Client),
		steps:     services.NewStepService(db.Client),
		artifacts: services.NewArtifactService(db.Client, blobs),
		approvals: services.NewApprovalService(db.Client),
		timeline:  services.NewTimelineService(db.Client),
		replays:   services.NewReplayService(db.Client),
		canaries:  services.NewCanaryService(db.Client),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())
	s.engine = engine
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/runs", s.createRun)
		v1.GET("/runs", s.listRuns)
		v1.GET("/runs/:id", s.getRun)
		v1.POST("/runs/:id/cancel", s.cancelRun)
		v1.GET("/runs/:id/steps", s.listSteps)
		v1.GET("/runs/:id/timeline", s.getTimeline)
		v1.GET("/runs/:id/artifacts", s.listArtifacts)
		v1.GET("/runs/:id/replay", s.getReplay)
		v1.GET("/runs/:id/approvals", s.listApprovals)

		v1.GET("/artifacts/:id/payload", s.artifactPayload)

		v1.POST("/approvals/:id/approve", s.approveGate)
		v1.POST("/approvals/:id/reject", s.rejectGate)

		v1.GET("/canary", s.canaryReport)
	}
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// ServeHTTP exposes the router for in-process tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// wake pings the orchestrator if one is attached.
func (s *Server) wake() {
	if s.waker != nil {
		s.waker.Wake()
	}
}
