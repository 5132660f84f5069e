package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/budget"
)

// BudgetService enforces the per-run cost, time, and attempt envelope.
// Charges are recorded even past the limit — the overage that triggered
// the breach must be visible in accounting.
type BudgetService struct {
	client *ent.Client
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(client *ent.Client) *BudgetService {
	return &BudgetService{client: client}
}

// Charge adds cost and attempt usage to a run's budget. Returns
// ErrBudgetExceeded when the charge crossed any limit; the usage is
// persisted either way.
func (s *BudgetService) Charge(ctx context.Context, runID string, costUSD float64, attempts int) error {
	b, err := s.client.Budget.Query().
		Where(budget.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load budget: %w", err)
	}

	updater := b.Update().
		AddCostUsedUsd(costUSD).
		AddAttemptUsed(attempts)

	newCost := b.CostUsedUsd + costUSD
	newAttempts := b.AttemptUsed + attempts
	exceeded := newCost > b.CostLimitUsd || newAttempts > b.AttemptLimit

	if exceeded && b.ExceededAt == nil {
		updater.SetExceededAt(time.Now())
	}

	if _, err := updater.Save(ctx); err != nil {
		return fmt.Errorf("failed to charge budget: %w", err)
	}

	if exceeded {
		return ErrBudgetExceeded
	}
	return nil
}

// ChargeTime updates elapsed wall time and checks the time limit
func (s *BudgetService) ChargeTime(ctx context.Context, runID string, elapsed time.Duration) error {
	b, err := s.client.Budget.Query().
		Where(budget.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load budget: %w", err)
	}

	usedS := int(elapsed.Seconds())
	exceeded := usedS > b.TimeLimitS

	updater := b.Update().SetTimeUsedS(usedS)
	if exceeded && b.ExceededAt == nil {
		updater.SetExceededAt(time.Now())
	}

	if _, err := updater.Save(ctx); err != nil {
		return fmt.Errorf("failed to charge budget time: %w", err)
	}

	if exceeded {
		return ErrBudgetExceeded
	}
	return nil
}

// Remaining reports headroom left in the budget. Used by the scheduler's
// cost-pressure tier downgrade.
func (s *BudgetService) Remaining(ctx context.Context, runID string) (costUSD float64, attempts int, err error) {
	b, err := s.client.Budget.Query().
		Where(budget.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, 0, ErrNotFound
		}
		return 0, 0, fmt.Errorf("failed to load budget: %w", err)
	}

	costUSD = b.CostLimitUsd - b.CostUsedUsd
	if costUSD < 0 {
		costUSD = 0
	}
	attempts = b.AttemptLimit - b.AttemptUsed
	if attempts < 0 {
		attempts = 0
	}
	return costUSD, attempts, nil
}

// UsedRatio reports the fraction of the cost limit already spent
func (s *BudgetService) UsedRatio(ctx context.Context, runID string) (float64, error) {
	b, err := s.client.Budget.Query().
		Where(budget.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to load budget: %w", err)
	}
	if b.CostLimitUsd <= 0 {
		return 1, nil
	}
	return b.CostUsedUsd / b.CostLimitUsd, nil
}
