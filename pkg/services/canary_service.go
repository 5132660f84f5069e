package services

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/google/uuid"
)

// CanaryService persists terminal run metrics per A/B group and serves
// the rolling window the canary evaluator compares.
type CanaryService struct {
	client *ent.Client
}

// NewCanaryService creates a new CanaryService
func NewCanaryService(client *ent.Client) *CanaryService {
	return &CanaryService{client: client}
}

// RecordSampleRequest carries one terminal run's metrics
type RecordSampleRequest struct {
	Tenant        string
	RunID         string
	Group         canarysample.Group
	Success       bool
	CostUSD       float64
	DurationMs    int64
	RetryCount    int
	ReplanCount   int
	RollbackCount int
}

// RecordSample writes the terminal metrics of a run. One sample per run;
// a duplicate write returns ErrAlreadyExists.
func (s *CanaryService) RecordSample(ctx context.Context, req RecordSampleRequest) (*ent.CanarySample, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	sample, err := s.client.CanarySample.Create().
		SetID(uuid.New().String()).
		SetTenant(req.Tenant).
		SetRunID(req.RunID).
		SetGroup(req.Group).
		SetSuccess(req.Success).
		SetCostUsd(req.CostUSD).
		SetDurationMs(req.DurationMs).
		SetRetryCount(req.RetryCount).
		SetReplanCount(req.ReplanCount).
		SetRollbackCount(req.RollbackCount).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record canary sample: %w", err)
	}
	return sample, nil
}

// Window returns the newest samples of one group, newest first, capped at
// windowSize
func (s *CanaryService) Window(ctx context.Context, tenant string, group canarysample.Group, windowSize int) ([]*ent.CanarySample, error) {
	samples, err := s.client.CanarySample.Query().
		Where(
			canarysample.TenantEQ(tenant),
			canarysample.GroupEQ(group),
		).
		Order(ent.Desc(canarysample.FieldRecordedAt)).
		Limit(windowSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load canary window: %w", err)
	}
	return samples, nil
}
