package config

// ChaosConfig controls fault injection. Disabled by default; when enabled,
// each rule fires independently with its own probability at agent
// invocation time.
type ChaosConfig struct {
	Enabled bool `yaml:"enabled"`

	// Seed makes injection deterministic for tests. 0 means a random seed.
	Seed int64 `yaml:"seed"`

	// Rules are consulted in order; the first match that fires wins.
	Rules []ChaosRule `yaml:"rules"`
}

// ChaosRule injects one failure class into one agent role.
type ChaosRule struct {
	// Role is the target agent role; empty matches every role.
	Role string `yaml:"role"`

	// Class is the failure class to inject.
	Class FailureClass `yaml:"class"`

	// Probability in [0,1] of firing per invocation.
	Probability float64 `yaml:"probability"`

	// MaxInjections bounds total injections for the rule; 0 is unbounded.
	MaxInjections int `yaml:"max_injections"`
}

// DefaultChaosConfig returns the built-in chaos defaults (disabled).
func DefaultChaosConfig() *ChaosConfig {
	return &ChaosConfig{Enabled: false}
}
