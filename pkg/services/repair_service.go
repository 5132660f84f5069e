package services

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/google/uuid"
)

// RepairService records repair ladder attempts and their outcomes
type RepairService struct {
	client *ent.Client
}

// NewRepairService creates a new RepairService
func NewRepairService(client *ent.Client) *RepairService {
	return &RepairService{client: client}
}

// RecordAttemptRequest carries one repair ladder rung being taken
type RecordAttemptRequest struct {
	Tenant        string
	RunID         string
	FailureID     string
	Phase         repairattempt.Phase
	Strategy      string
	BackoffUsedMs int
	DiffRef       string
}

// RecordAttempt persists a repair attempt in pending outcome
func (s *RepairService) RecordAttempt(ctx context.Context, req RecordAttemptRequest) (*ent.RepairAttempt, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.FailureID == "" {
		return nil, NewValidationError("failure_id", "required")
	}

	builder := s.client.RepairAttempt.Create().
		SetID(uuid.New().String()).
		SetTenant(req.Tenant).
		SetRunID(req.RunID).
		SetFailureID(req.FailureID).
		SetPhase(req.Phase).
		SetStrategy(req.Strategy).
		SetOutcome(repairattempt.OutcomePending).
		SetBackoffUsedMs(req.BackoffUsedMs)

	if req.DiffRef != "" {
		builder.SetDiffRef(req.DiffRef)
	}

	attempt, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record repair attempt: %w", err)
	}
	return attempt, nil
}

// CompleteAttempt settles a pending attempt's outcome with compare-and-set
func (s *RepairService) CompleteAttempt(ctx context.Context, attemptID string, outcome repairattempt.Outcome) error {
	if outcome != repairattempt.OutcomeSucceeded && outcome != repairattempt.OutcomeFailed {
		return NewValidationError("outcome", "must be succeeded or failed")
	}

	n, err := s.client.RepairAttempt.Update().
		Where(
			repairattempt.IDEQ(attemptID),
			repairattempt.OutcomeEQ(repairattempt.OutcomePending),
		).
		SetOutcome(outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete repair attempt %s: %w", attemptID, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// ListByRun returns all repair attempts of a run, oldest first
func (s *RepairService) ListByRun(ctx context.Context, runID string) ([]*ent.RepairAttempt, error) {
	attempts, err := s.client.RepairAttempt.Query().
		Where(repairattempt.RunIDEQ(runID)).
		Order(ent.Asc(repairattempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list repair attempts: %w", err)
	}
	return attempts, nil
}

// CountByPhase counts attempts of one phase within a run. Feeds the canary
// sample counters at terminal time.
func (s *RepairService) CountByPhase(ctx context.Context, runID string, phase repairattempt.Phase) (int, error) {
	n, err := s.client.RepairAttempt.Query().
		Where(repairattempt.RunIDEQ(runID), repairattempt.PhaseEQ(phase)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count repair attempts: %w", err)
	}
	return n, nil
}

// CountForFailure counts attempts taken for one failure. The ladder uses
// this to decide whether the retry allowance is spent.
func (s *RepairService) CountForFailure(ctx context.Context, failureID string, phase repairattempt.Phase) (int, error) {
	n, err := s.client.RepairAttempt.Query().
		Where(repairattempt.FailureIDEQ(failureID), repairattempt.PhaseEQ(phase)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count failure attempts: %w", err)
	}
	return n, nil
}
