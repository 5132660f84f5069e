package services

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/timelineevent"
	"github.com/forgeworks/metabuild/pkg/models"
	"github.com/google/uuid"
)

// Timeline event kinds
const (
	TimelineStateChange   = "state_change"
	TimelineStepQueued    = "step_queued"
	TimelineStepSucceeded = "step_succeeded"
	TimelineStepFailed    = "step_failed"
	TimelineFailure       = "failure"
	TimelineRepair        = "repair"
	TimelineApproval      = "approval"
	TimelineCanary        = "canary"
)

// TimelineService appends to and serves the ordered event history of a run
type TimelineService struct {
	client *ent.Client
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(client *ent.Client) *TimelineService {
	return &TimelineService{client: client}
}

// Append records one timeline event. Timeline writes are best-effort
// observability: callers log failures instead of aborting the operation
// that produced the event.
func (s *TimelineService) Append(ctx context.Context, tenant, runID, kind, message string, stepID string, details map[string]interface{}) (*ent.TimelineEvent, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	builder := s.client.TimelineEvent.Create().
		SetID(uuid.New().String()).
		SetTenant(tenant).
		SetRunID(runID).
		SetKind(kind).
		SetMessage(message)

	if stepID != "" {
		builder.SetStepID(stepID)
	}
	if details != nil {
		builder.SetDetails(details)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append timeline event: %w", err)
	}
	return event, nil
}

// GetTimeline returns the full event history of a run, oldest first
func (s *TimelineService) GetTimeline(ctx context.Context, runID string) (*models.TimelineResponse, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.RunIDEQ(runID)).
		Order(ent.Asc(timelineevent.FieldCreatedAt), ent.Asc(timelineevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	return &models.TimelineResponse{
		RunID:  runID,
		Events: events,
	}, nil
}
