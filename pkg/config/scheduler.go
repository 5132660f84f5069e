package config

import "time"

// SchedulerConfig controls model routing, budget pressure handling, and
// circuit breakers.
type SchedulerConfig struct {
	// TierBySLA maps each SLA class to its default model tier.
	TierBySLA map[SLAClass]ModelTier `yaml:"tier_by_sla"`

	// CostPressureRatio is the cost_used/cost_limit ratio above which the
	// tier is downgraded one notch (never below small).
	CostPressureRatio float64 `yaml:"cost_pressure_ratio"`

	// UpgradeAfterRepairs is the repair-iteration count at the current
	// tier after which the tier is upgraded one notch (never above large).
	UpgradeAfterRepairs int `yaml:"upgrade_after_repairs"`

	// FastRouteDepthThreshold: fast-SLA tasks whose target queue is deeper
	// than this are routed to the high queue instead.
	FastRouteDepthThreshold int `yaml:"fast_route_depth_threshold"`

	// EstimatedStepCostUSD is the dispatch-time cost estimate used by the
	// budget pre-check for LLM-class steps.
	EstimatedStepCostUSD float64 `yaml:"estimated_step_cost_usd"`

	// Breaker holds circuit breaker tuning.
	Breaker BreakerConfig `yaml:"breaker"`

	// Retry holds the per-class retry ladder tuning.
	Retry RetryConfig `yaml:"retry"`

	// Patch holds AutoFixer constraint tuning.
	Patch PatchConfig `yaml:"patch"`
}

// BreakerConfig tunes the per-(tenant, failure class) circuit breakers.
type BreakerConfig struct {
	// Threshold is the fail count within Window that trips the breaker.
	Threshold int `yaml:"threshold"`

	// Window is the sliding window over which failures are counted.
	Window time.Duration `yaml:"window"`

	// Cooldown is the initial open-state duration before half_open.
	Cooldown time.Duration `yaml:"cooldown"`

	// CooldownCap bounds the doubling cooldown.
	CooldownCap time.Duration `yaml:"cooldown_cap"`
}

// RetryConfig tunes the retry rung of the repair ladder.
// Retry counts and multipliers for the remaining classes are fixed by the
// ladder itself (see orchestrator.RetryBudget).
type RetryConfig struct {
	// BaseDelay seeds the exponential backoff.
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps the backoff.
	MaxDelay time.Duration `yaml:"max_delay"`
}

// PatchConfig constrains AutoFixer diffs.
type PatchConfig struct {
	// MaxPatchBytes caps the size of a repair diff.
	MaxPatchBytes int `yaml:"max_patch_bytes"`

	// DenyPaths are path prefixes a patch may never touch
	// (secrets, CI tokens, deploy manifests).
	DenyPaths []string `yaml:"deny_paths"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TierBySLA: map[SLAClass]ModelTier{
			SLAFast:     TierSmall,
			SLANormal:   TierMedium,
			SLAThorough: TierLarge,
		},
		CostPressureRatio:       0.7,
		UpgradeAfterRepairs:     2,
		FastRouteDepthThreshold: 25,
		EstimatedStepCostUSD:    0.05,
		Breaker: BreakerConfig{
			Threshold:   5,
			Window:      5 * time.Minute,
			Cooldown:    30 * time.Second,
			CooldownCap: 10 * time.Minute,
		},
		Retry: RetryConfig{
			BaseDelay: 1 * time.Second,
			MaxDelay:  60 * time.Second,
		},
		Patch: PatchConfig{
			MaxPatchBytes: 256 * 1024,
			DenyPaths: []string{
				".github/workflows/",
				"deploy/",
				"secrets/",
				".env",
			},
		},
	}
}
