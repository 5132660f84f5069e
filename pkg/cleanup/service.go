// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/event"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/events"
	"github.com/forgeworks/metabuild/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal runs past the retention window
//   - Prunes the transient catch-up events of terminal runs
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config  *config.RetentionConfig
	client  *ent.Client
	runs    *services.RunService
	catchup *events.Catchup

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config:  cfg,
		client:  client,
		runs:    services.NewRunService(client),
		catchup: events.NewCatchup(client),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"event_retention_minutes", s.config.EventRetentionMinutes,
		"interval_hours", s.config.IntervalHours)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(time.Duration(s.config.IntervalHours) * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one cleanup pass. Exported so operators can trigger a
// pass out of band.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteOldRuns(ctx)
	s.pruneTerminalRunEvents(ctx)
}

func (s *Service) softDeleteOldRuns(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RunRetentionDays)
	count, err := s.runs.SoftDeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: soft-delete runs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old runs", "count", count)
	}
}

// pruneTerminalRunEvents removes catch-up event rows once their run is
// terminal and the rows are past the event TTL. Events of live runs are
// never touched, whatever their age.
func (s *Service) pruneTerminalRunEvents(ctx context.Context) {
	cutoff := time.Now().Add(-time.Duration(s.config.EventRetentionMinutes) * time.Minute)

	runIDs, err := s.client.Event.Query().
		Where(event.CreatedAtLT(cutoff)).
		Unique(true).
		Select(event.FieldRunID).
		Strings(ctx)
	if err != nil {
		slog.Error("Retention: listing stale events failed", "error", err)
		return
	}
	if len(runIDs) == 0 {
		return
	}

	terminal, err := s.client.Run.Query().
		Where(run.IDIn(runIDs...), run.StateIn(services.TerminalStates...)).
		IDs(ctx)
	if err != nil {
		slog.Error("Retention: resolving terminal runs failed", "error", err)
		return
	}

	pruned := 0
	for _, runID := range terminal {
		n, err := s.catchup.PruneRun(ctx, runID)
		if err != nil {
			slog.Error("Retention: event prune failed", "run_id", runID, "error", err)
			continue
		}
		pruned += n
	}
	if pruned > 0 {
		slog.Info("Retention: pruned catch-up events", "count", pruned, "runs", len(terminal))
	}
}
