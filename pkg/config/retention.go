package config

// RetentionConfig controls the cleanup service.
type RetentionConfig struct {
	// Enabled turns the background cleanup loop on.
	Enabled bool `yaml:"enabled"`

	// RunRetentionDays: terminal runs older than this are soft-deleted.
	RunRetentionDays int `yaml:"run_retention_days"`

	// EventRetentionMinutes: transient events for terminal runs older than
	// this are pruned.
	EventRetentionMinutes int `yaml:"event_retention_minutes"`

	// IntervalHours between cleanup passes.
	IntervalHours int `yaml:"interval_hours"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:               true,
		RunRetentionDays:      90,
		EventRetentionMinutes: 10,
		IntervalHours:         6,
	}
}
