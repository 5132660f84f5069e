package services

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/models"
)

// StepService provides read and bookkeeping access to steps. Queue
// operations (enqueue, claim, lease, complete) live in pkg/queue.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// GetStep retrieves a step by ID
func (s *StepService) GetStep(ctx context.Context, stepID string) (*ent.Step, error) {
	st, err := s.client.Step.Query().Where(step.IDEQ(stepID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return st, nil
}

// GetByIdempotencyKey finds the step already enqueued for a key, if any
func (s *StepService) GetByIdempotencyKey(ctx context.Context, key string) (*ent.Step, error) {
	st, err := s.client.Step.Query().Where(step.IdempotencyKeyEQ(key)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step by idempotency key: %w", err)
	}
	return st, nil
}

// ListSteps lists steps with filtering and pagination
func (s *StepService) ListSteps(ctx context.Context, filters models.StepFilters) (*models.StepListResponse, error) {
	query := s.client.Step.Query()

	if filters.RunID != "" {
		query = query.Where(step.RunIDEQ(filters.RunID))
	}
	if filters.Iteration > 0 {
		query = query.Where(step.IterationEQ(filters.Iteration))
	}
	if filters.AgentRole != "" {
		query = query.Where(step.AgentRoleEQ(step.AgentRole(filters.AgentRole)))
	}
	if filters.Queue != "" {
		query = query.Where(step.QueueEQ(step.Queue(filters.Queue)))
	}
	if filters.State != "" {
		query = query.Where(step.StateEQ(step.State(filters.State)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count steps: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	steps, err := query.
		Order(ent.Asc(step.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}

	return &models.StepListResponse{
		Steps:      steps,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// StepsForIteration returns all steps of one run iteration, oldest first
func (s *StepService) StepsForIteration(ctx context.Context, runID string, iteration int) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(step.RunIDEQ(runID), step.IterationEQ(iteration)).
		Order(ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list iteration steps: %w", err)
	}
	return steps, nil
}

// TombstoneRun marks every non-terminal step of a run for cancellation.
// Workers observe the tombstone at lease and heartbeat boundaries and
// abandon the work; already-terminal steps are untouched.
func (s *StepService) TombstoneRun(ctx context.Context, runID string) (int, error) {
	n, err := s.client.Step.Update().
		Where(
			step.RunIDEQ(runID),
			step.StateIn(step.StateQueued, step.StateLeased, step.StateRunning),
		).
		SetTombstoned(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to tombstone steps of run %s: %w", runID, err)
	}
	return n, nil
}

// MarkSkipped short-circuits a queued step without running it. Used when
// an idempotent replay finds the work already done.
func (s *StepService) MarkSkipped(ctx context.Context, stepID string) error {
	n, err := s.client.Step.Update().
		Where(step.IDEQ(stepID), step.StateEQ(step.StateQueued)).
		SetState(step.StateSkipped).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to skip step %s: %w", stepID, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}
