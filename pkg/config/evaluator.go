package config

// EvaluatorConfig holds the declarative golden suites and scoring
// thresholds. Suites are keyed by domain tag; a run's suite is the union
// of the suites for its spec's tags plus the spec's own acceptance
// criteria.
type EvaluatorConfig struct {
	// PassThreshold is the default overall score a run must reach when the
	// spec carries no KPI guards.
	PassThreshold float64 `yaml:"pass_threshold"`

	// Suites maps domain tag → golden criteria.
	Suites map[string][]CriterionConfig `yaml:"suites"`
}

// CriterionConfig is one declarative golden-suite assertion.
type CriterionConfig struct {
	// Kind: contains | not_contains | equals | regex | file_exists |
	// not_empty | greater_than | less_than | http_status | db_invariant |
	// ui_smoke | migration_state.
	Kind string `yaml:"kind"`

	// Field is the named output field the assertion reads.
	Field string `yaml:"field,omitempty"`

	// Value is the expected text/pattern/path (kind-dependent).
	Value string `yaml:"value,omitempty"`

	// Number is the numeric operand for greater_than/less_than/http_status.
	Number float64 `yaml:"number,omitempty"`

	// Weight in the weighted mean; 0 means 1.
	Weight float64 `yaml:"weight,omitempty"`

	// Args carries kind-specific extras (http shape, db query, ui steps,
	// migration versions).
	Args map[string]string `yaml:"args,omitempty"`
}

// DefaultEvaluatorConfig returns the built-in evaluator defaults.
func DefaultEvaluatorConfig() *EvaluatorConfig {
	return &EvaluatorConfig{
		PassThreshold: 0.95,
		Suites:        map[string][]CriterionConfig{},
	}
}
