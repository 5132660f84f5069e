package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/metrics"
	"github.com/google/uuid"
)

// ErrCircuitOpen indicates dispatch for the (tenant, failure class) is
// gated: the breaker is open, or half-open with its probe outstanding.
var ErrCircuitOpen = errors.New("circuit open")

// BreakerService maintains the persisted circuit breakers. Breaker rows
// are the source of truth across pods; every transition is a CAS on the
// state column, so concurrent workers agree on who runs the half-open
// probe.
type BreakerService struct {
	client *ent.Client
	cfg    config.BreakerConfig
}

// NewBreakerService creates a BreakerService.
func NewBreakerService(client *ent.Client, cfg config.BreakerConfig) *BreakerService {
	return &BreakerService{client: client, cfg: cfg}
}

// Allow checks whether a dispatch for the class may proceed. In the open
// state it fails fast until the cooldown elapses, then admits exactly one
// probe by winning the open→half_open CAS; in half_open everyone but the
// probe is rejected.
func (s *BreakerService) Allow(ctx context.Context, tenant string, class config.FailureClass) error {
	cb, err := s.get(ctx, tenant, class)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil // no row yet means closed
		}
		return err
	}

	switch cb.State {
	case circuitbreaker.StateClosed:
		return nil

	case circuitbreaker.StateOpen:
		if cb.CooldownUntil == nil || time.Now().Before(*cb.CooldownUntil) {
			return fmt.Errorf("%w: %s/%s until %v", ErrCircuitOpen, tenant, class, cb.CooldownUntil)
		}
		// Cooldown elapsed: the CAS winner becomes the single probe.
		n, err := s.client.CircuitBreaker.Update().
			Where(
				circuitbreaker.IDEQ(cb.ID),
				circuitbreaker.StateEQ(circuitbreaker.StateOpen),
			).
			SetState(circuitbreaker.StateHalfOpen).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to half-open breaker: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s/%s probe already admitted", ErrCircuitOpen, tenant, class)
		}
		slog.Info("Circuit breaker half-open, admitting probe", "tenant", tenant, "class", class)
		return nil

	default: // half_open
		return fmt.Errorf("%w: %s/%s probe outstanding", ErrCircuitOpen, tenant, class)
	}
}

// RecordFailure counts a failure into the sliding window, tripping the
// breaker at the threshold. A failed half-open probe reopens with a
// doubled cooldown, capped.
func (s *BreakerService) RecordFailure(ctx context.Context, tenant string, class config.FailureClass) error {
	now := time.Now()

	cb, err := s.get(ctx, tenant, class)
	if err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		var created bool
		cb, created, err = s.create(ctx, tenant, class, now)
		if err != nil {
			return err
		}
		if created {
			return nil // fresh row already counted this failure
		}
	}

	switch cb.State {
	case circuitbreaker.StateHalfOpen:
		cooldown := time.Duration(cb.CooldownS) * time.Second * 2
		if cooldown > s.cfg.CooldownCap {
			cooldown = s.cfg.CooldownCap
		}
		n, err := s.client.CircuitBreaker.Update().
			Where(
				circuitbreaker.IDEQ(cb.ID),
				circuitbreaker.StateEQ(circuitbreaker.StateHalfOpen),
			).
			SetState(circuitbreaker.StateOpen).
			SetFailCount(0).
			SetOpenedAt(now).
			SetCooldownUntil(now.Add(cooldown)).
			SetCooldownS(int(cooldown.Seconds())).
			ClearWindowStart().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to reopen breaker: %w", err)
		}
		if n > 0 {
			metrics.BreakerOpensTotal.WithLabelValues(string(class)).Inc()
			slog.Warn("Circuit breaker reopened after failed probe",
				"tenant", tenant, "class", class, "cooldown", cooldown)
		}
		return nil

	case circuitbreaker.StateClosed:
		failCount := cb.FailCount + 1
		windowStart := cb.WindowStart
		if windowStart == nil || now.Sub(*windowStart) > s.cfg.Window {
			failCount = 1
			windowStart = &now
		}

		update := s.client.CircuitBreaker.Update().
			Where(
				circuitbreaker.IDEQ(cb.ID),
				circuitbreaker.StateEQ(circuitbreaker.StateClosed),
			).
			SetFailCount(failCount).
			SetWindowStart(*windowStart)

		tripped := failCount >= cb.Threshold
		if tripped {
			update = update.
				SetState(circuitbreaker.StateOpen).
				SetOpenedAt(now).
				SetCooldownUntil(now.Add(time.Duration(cb.CooldownS) * time.Second))
		}

		n, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to count breaker failure: %w", err)
		}
		if n > 0 && tripped {
			metrics.BreakerOpensTotal.WithLabelValues(string(class)).Inc()
			slog.Warn("Circuit breaker opened",
				"tenant", tenant, "class", class, "fail_count", failCount)
		}
		return nil

	default: // open — failures while open change nothing
		return nil
	}
}

// RecordSuccess closes the breaker after a successful half-open probe and
// resets the cooldown to its base value.
func (s *BreakerService) RecordSuccess(ctx context.Context, tenant string, class config.FailureClass) error {
	cb, err := s.get(ctx, tenant, class)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return err
	}

	if cb.State != circuitbreaker.StateHalfOpen {
		return nil
	}

	_, err = s.client.CircuitBreaker.Update().
		Where(
			circuitbreaker.IDEQ(cb.ID),
			circuitbreaker.StateEQ(circuitbreaker.StateHalfOpen),
		).
		SetState(circuitbreaker.StateClosed).
		SetFailCount(0).
		SetCooldownS(int(s.cfg.Cooldown.Seconds())).
		ClearWindowStart().
		ClearOpenedAt().
		ClearCooldownUntil().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to close breaker: %w", err)
	}
	slog.Info("Circuit breaker closed after successful probe", "tenant", tenant, "class", class)
	return nil
}

// State returns the breaker state for observability; missing rows read as
// closed.
func (s *BreakerService) State(ctx context.Context, tenant string, class config.FailureClass) (circuitbreaker.State, error) {
	cb, err := s.get(ctx, tenant, class)
	if err != nil {
		if ent.IsNotFound(err) {
			return circuitbreaker.StateClosed, nil
		}
		return "", err
	}
	return cb.State, nil
}

func (s *BreakerService) get(ctx context.Context, tenant string, class config.FailureClass) (*ent.CircuitBreaker, error) {
	cb, err := s.client.CircuitBreaker.Query().
		Where(
			circuitbreaker.TenantEQ(tenant),
			circuitbreaker.FailureClassEQ(circuitbreaker.FailureClass(class)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load circuit breaker: %w", err)
	}
	return cb, nil
}

// create inserts the breaker row with this failure already counted. A
// concurrent creator wins the unique (tenant, class) index; in that case
// the existing row is returned with its stored count.
func (s *BreakerService) create(ctx context.Context, tenant string, class config.FailureClass, now time.Time) (*ent.CircuitBreaker, bool, error) {
	cb, err := s.client.CircuitBreaker.Create().
		SetID(uuid.NewString()).
		SetTenant(tenant).
		SetFailureClass(circuitbreaker.FailureClass(class)).
		SetThreshold(s.cfg.Threshold).
		SetFailCount(1).
		SetWindowStart(now).
		SetCooldownS(int(s.cfg.Cooldown.Seconds())).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, getErr := s.get(ctx, tenant, class)
			return existing, false, getErr
		}
		return nil, false, fmt.Errorf("failed to create circuit breaker: %w", err)
	}
	return cb, true, nil
}
