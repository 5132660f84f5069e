package config

// CanaryConfig controls A/B assignment of runs and the recommendation
// thresholds of the canary evaluator. Thresholds are caller-overridable;
// the defaults below are the reference numbers.
type CanaryConfig struct {
	// ExperimentalFraction in [0,1]: probability a new run is assigned to
	// the experimental group. 0 disables canary entirely, 1 sends all runs.
	ExperimentalFraction float64 `yaml:"experimental_fraction"`

	// WindowSize is the rolling sample count per group used for ratios.
	WindowSize int `yaml:"window_size"`

	// SuccessThreshold: success_rate(exp)/success_rate(ctrl) must be ≥ this.
	SuccessThreshold float64 `yaml:"success_threshold"`

	// CostThreshold: mean_cost(exp)/mean_cost(ctrl) must be ≤ this.
	CostThreshold float64 `yaml:"cost_threshold"`

	// DurationThreshold: mean_dur(exp)/mean_dur(ctrl) must be ≤ this.
	DurationThreshold float64 `yaml:"duration_threshold"`
}

// DefaultCanaryConfig returns the built-in canary defaults.
func DefaultCanaryConfig() *CanaryConfig {
	return &CanaryConfig{
		ExperimentalFraction: 0,
		WindowSize:           100,
		SuccessThreshold:     0.95,
		CostThreshold:        1.2,
		DurationThreshold:    1.2,
	}
}
