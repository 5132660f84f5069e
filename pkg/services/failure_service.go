package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/google/uuid"
)

// FailureService persists classified step failures. Log excerpts are
// secret-masked before they touch the database.
type FailureService struct {
	client *ent.Client
	masker *masking.Service
}

// NewFailureService creates a new FailureService
func NewFailureService(client *ent.Client, masker *masking.Service) *FailureService {
	return &FailureService{client: client, masker: masker}
}

// RecordFailureRequest carries one classified failure
type RecordFailureRequest struct {
	Tenant         string
	RunID          string
	StepID         string
	Class          failure.Class
	Confidence     float64
	LogExcerpt     string
	Retryable      bool
	RequiresReplan bool
	RequiresHuman  bool
}

// RecordFailure persists one classified failure of a step
func (s *FailureService) RecordFailure(ctx context.Context, req RecordFailureRequest) (*ent.Failure, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.StepID == "" {
		return nil, NewValidationError("step_id", "required")
	}

	excerpt := req.LogExcerpt
	if s.masker != nil {
		excerpt = s.masker.MaskString(excerpt)
	}

	f, err := s.client.Failure.Create().
		SetID(uuid.New().String()).
		SetTenant(req.Tenant).
		SetRunID(req.RunID).
		SetStepID(req.StepID).
		SetClass(req.Class).
		SetConfidence(req.Confidence).
		SetLogExcerpt(excerpt).
		SetRetryable(req.Retryable).
		SetRequiresReplan(req.RequiresReplan).
		SetRequiresHuman(req.RequiresHuman).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record failure: %w", err)
	}
	return f, nil
}

// GetFailure retrieves a failure by ID
func (s *FailureService) GetFailure(ctx context.Context, failureID string) (*ent.Failure, error) {
	f, err := s.client.Failure.Query().Where(failure.IDEQ(failureID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get failure: %w", err)
	}
	return f, nil
}

// ListByRun returns all failures of a run, oldest first
func (s *FailureService) ListByRun(ctx context.Context, runID string) ([]*ent.Failure, error) {
	failures, err := s.client.Failure.Query().
		Where(failure.RunIDEQ(runID)).
		Order(ent.Asc(failure.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list failures: %w", err)
	}
	return failures, nil
}

// ListByStep returns all failures recorded against one step
func (s *FailureService) ListByStep(ctx context.Context, stepID string) ([]*ent.Failure, error) {
	failures, err := s.client.Failure.Query().
		Where(failure.StepIDEQ(stepID)).
		Order(ent.Asc(failure.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step failures: %w", err)
	}
	return failures, nil
}

// CountRecent counts failures of a class within the sliding window. The
// circuit breaker trips on this count.
func (s *FailureService) CountRecent(ctx context.Context, tenant string, class failure.Class, window time.Duration) (int, error) {
	n, err := s.client.Failure.Query().
		Where(
			failure.TenantEQ(tenant),
			failure.ClassEQ(class),
			failure.CreatedAtGTE(time.Now().Add(-window)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent failures: %w", err)
	}
	return n, nil
}
