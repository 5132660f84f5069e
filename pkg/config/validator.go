package config

import (
	"errors"
	"fmt"
)

// Validator checks a resolved Config for internally consistent values.
type Validator struct {
	cfg  *Config
	errs []error
}

// NewValidator creates a validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section and returns the
// accumulated errors joined, or nil.
func (v *Validator) ValidateAll() error {
	v.validateQueue()
	v.validateScheduler()
	v.validateCanary()
	v.validateChaos()
	v.validateEvaluator()
	v.validateLLM()

	if len(v.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(v.errs...))
	}
	return nil
}

func (v *Validator) addError(component, field string, err error) {
	v.errs = append(v.errs, NewValidationError(component, field, err))
}

func (v *Validator) validateQueue() {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		v.addError("queue", "worker_count", fmt.Errorf("%w: must be ≥ 1", ErrInvalidValue))
	}
	if q.MaxConcurrentSteps < 1 {
		v.addError("queue", "max_concurrent_steps", fmt.Errorf("%w: must be ≥ 1", ErrInvalidValue))
	}
	if q.LeaseTTL <= 0 {
		v.addError("queue", "lease_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.HeartbeatInterval <= 0 || q.HeartbeatInterval*3 > q.LeaseTTL {
		v.addError("queue", "heartbeat_interval",
			fmt.Errorf("%w: three heartbeats must fit inside lease_ttl", ErrInvalidValue))
	}
	for _, qc := range q.Queues {
		if !qc.IsValid() {
			v.addError("queue", "queues", fmt.Errorf("%w: unknown queue class %q", ErrInvalidValue, qc))
		}
	}
}

func (v *Validator) validateScheduler() {
	s := v.cfg.Scheduler
	if s.CostPressureRatio <= 0 || s.CostPressureRatio > 1 {
		v.addError("scheduler", "cost_pressure_ratio", fmt.Errorf("%w: must be in (0,1]", ErrInvalidValue))
	}
	for sla, tier := range s.TierBySLA {
		if !sla.IsValid() {
			v.addError("scheduler", "tier_by_sla", fmt.Errorf("%w: unknown SLA class %q", ErrInvalidValue, sla))
		}
		if !tier.IsValid() {
			v.addError("scheduler", "tier_by_sla", fmt.Errorf("%w: unknown tier %q", ErrInvalidValue, tier))
		}
	}
	if s.Breaker.Threshold < 1 {
		v.addError("scheduler", "breaker.threshold", fmt.Errorf("%w: must be ≥ 1", ErrInvalidValue))
	}
	if s.Breaker.Cooldown <= 0 || s.Breaker.CooldownCap < s.Breaker.Cooldown {
		v.addError("scheduler", "breaker.cooldown", fmt.Errorf("%w: cap must be ≥ cooldown > 0", ErrInvalidValue))
	}
	if s.Retry.BaseDelay <= 0 || s.Retry.MaxDelay < s.Retry.BaseDelay {
		v.addError("scheduler", "retry.base_delay", fmt.Errorf("%w: max_delay must be ≥ base_delay > 0", ErrInvalidValue))
	}
	if s.Patch.MaxPatchBytes < 1 {
		v.addError("scheduler", "patch.max_patch_bytes", fmt.Errorf("%w: must be ≥ 1", ErrInvalidValue))
	}
}

func (v *Validator) validateCanary() {
	c := v.cfg.Canary
	if c.ExperimentalFraction < 0 || c.ExperimentalFraction > 1 {
		v.addError("canary", "experimental_fraction", fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	if c.WindowSize < 1 {
		v.addError("canary", "window_size", fmt.Errorf("%w: must be ≥ 1", ErrInvalidValue))
	}
	if c.SuccessThreshold <= 0 {
		v.addError("canary", "success_threshold", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
}

func (v *Validator) validateChaos() {
	c := v.cfg.Chaos
	for i, r := range c.Rules {
		if !r.Class.IsValid() {
			v.addError("chaos", fmt.Sprintf("rules[%d].class", i),
				fmt.Errorf("%w: unknown failure class %q", ErrInvalidValue, r.Class))
		}
		if r.Probability < 0 || r.Probability > 1 {
			v.addError("chaos", fmt.Sprintf("rules[%d].probability", i),
				fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
		}
	}
}

func (v *Validator) validateEvaluator() {
	e := v.cfg.Evaluator
	if e.PassThreshold < 0 || e.PassThreshold > 1 {
		v.addError("evaluator", "pass_threshold", fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	for tag, criteria := range e.Suites {
		for i, c := range criteria {
			if !validCriterionKind(c.Kind) {
				v.addError("evaluator", fmt.Sprintf("suites.%s[%d].kind", tag, i),
					fmt.Errorf("%w: unknown criterion kind %q", ErrInvalidValue, c.Kind))
			}
			if c.Weight < 0 {
				v.addError("evaluator", fmt.Sprintf("suites.%s[%d].weight", tag, i),
					fmt.Errorf("%w: must be ≥ 0", ErrInvalidValue))
			}
		}
	}
}

func (v *Validator) validateLLM() {
	l := v.cfg.LLM
	if l.Addr == "" {
		v.addError("llm", "addr", fmt.Errorf("%w: required", ErrInvalidValue))
	}
	for _, tier := range []ModelTier{TierSmall, TierMedium, TierLarge} {
		tc, ok := l.Tiers[tier]
		if !ok {
			v.addError("llm", "tiers", fmt.Errorf("%w: tier %q missing", ErrInvalidValue, tier))
			continue
		}
		if tc.Model == "" {
			v.addError("llm", fmt.Sprintf("tiers.%s.model", tier), fmt.Errorf("%w: required", ErrInvalidValue))
		}
	}
}

func validCriterionKind(kind string) bool {
	switch kind {
	case "contains", "not_contains", "equals", "regex", "file_exists",
		"not_empty", "greater_than", "less_than", "http_status",
		"db_invariant", "ui_smoke", "migration_state":
		return true
	default:
		return false
	}
}
