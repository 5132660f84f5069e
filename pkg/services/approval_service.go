package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/google/uuid"
)

// ApprovalService manages human approval gates. Gates never auto-expire:
// a run stays paused until a decision lands or the run is cancelled.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// CreateGate opens a pending gate for a run
func (s *ApprovalService) CreateGate(ctx context.Context, tenant, runID, reason, requiredRole string) (*ent.ApprovalGate, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if reason == "" {
		return nil, NewValidationError("reason", "required")
	}

	gate, err := s.client.ApprovalGate.Create().
		SetID(uuid.New().String()).
		SetTenant(tenant).
		SetRunID(runID).
		SetReason(reason).
		SetRequiredRole(requiredRole).
		SetDecision(approvalgate.DecisionPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create approval gate: %w", err)
	}
	return gate, nil
}

// GetGate retrieves a gate by ID
func (s *ApprovalService) GetGate(ctx context.Context, gateID string) (*ent.ApprovalGate, error) {
	gate, err := s.client.ApprovalGate.Query().
		Where(approvalgate.IDEQ(gateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval gate: %w", err)
	}
	return gate, nil
}

// Decide settles a pending gate. Compare-and-set on the pending decision
// makes concurrent approve/reject calls first-writer-wins; the loser gets
// ErrAlreadyDecided.
func (s *ApprovalService) Decide(ctx context.Context, gateID string, decision approvalgate.Decision, decider string) (*ent.ApprovalGate, error) {
	if decision != approvalgate.DecisionApproved && decision != approvalgate.DecisionRejected {
		return nil, NewValidationError("decision", "must be approved or rejected")
	}
	if decider == "" {
		return nil, NewValidationError("decider", "required")
	}

	n, err := s.client.ApprovalGate.Update().
		Where(
			approvalgate.IDEQ(gateID),
			approvalgate.DecisionEQ(approvalgate.DecisionPending),
		).
		SetDecision(decision).
		SetDecider(decider).
		SetDecidedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decide approval gate %s: %w", gateID, err)
	}
	if n == 0 {
		// Distinguish missing gate from already-decided gate.
		if _, getErr := s.GetGate(ctx, gateID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyDecided
	}

	return s.GetGate(ctx, gateID)
}

// PendingForRun returns the oldest undecided gate of a run, or ErrNotFound
func (s *ApprovalService) PendingForRun(ctx context.Context, runID string) (*ent.ApprovalGate, error) {
	gate, err := s.client.ApprovalGate.Query().
		Where(
			approvalgate.RunIDEQ(runID),
			approvalgate.DecisionEQ(approvalgate.DecisionPending),
		).
		Order(ent.Asc(approvalgate.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending gate: %w", err)
	}
	return gate, nil
}

// ListByRun returns all gates of a run, oldest first
func (s *ApprovalService) ListByRun(ctx context.Context, runID string) ([]*ent.ApprovalGate, error) {
	gates, err := s.client.ApprovalGate.Query().
		Where(approvalgate.RunIDEQ(runID)).
		Order(ent.Asc(approvalgate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval gates: %w", err)
	}
	return gates, nil
}
