// Package config loads and validates the metabuild service configuration:
// a metabuild.yaml file with environment expansion, merged over built-in
// defaults.
package config

// Config is the fully resolved service configuration.
type Config struct {
	configDir string

	Queue     *QueueConfig
	Scheduler *SchedulerConfig
	Canary    *CanaryConfig
	Chaos     *ChaosConfig
	Evaluator *EvaluatorConfig
	LLM       *LLMConfig
	Retention *RetentionConfig

	// DefaultTenant is used when a submission carries no tenant.
	DefaultTenant string
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// TierFor returns the default model tier for an SLA class.
func (c *Config) TierFor(sla SLAClass) ModelTier {
	if t, ok := c.Scheduler.TierBySLA[sla]; ok {
		return t
	}
	return TierMedium
}

// SuiteFor returns the golden criteria for a set of domain tags.
func (c *Config) SuiteFor(tags []string) []CriterionConfig {
	var out []CriterionConfig
	for _, tag := range tags {
		out = append(out, c.Evaluator.Suites[tag]...)
	}
	return out
}
