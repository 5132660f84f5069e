package models

// CanaryGroupStats aggregates terminal run metrics for one A/B group
// over the rolling comparison window.
type CanaryGroupStats struct {
	Samples       int     `json:"samples"`
	SuccessRate   float64 `json:"success_rate"`
	AvgCostUSD    float64 `json:"avg_cost_usd"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
	AvgRetries    float64 `json:"avg_retries"`
	AvgReplans    float64 `json:"avg_replans"`
	AvgRollbacks  float64 `json:"avg_rollbacks"`
}

// CanaryReport compares the experimental group against control and carries
// the promote/hold/abort recommendation.
type CanaryReport struct {
	Tenant         string           `json:"tenant"`
	WindowSize     int              `json:"window_size"`
	Control        CanaryGroupStats `json:"control"`
	Experimental   CanaryGroupStats `json:"experimental"`
	Recommendation string           `json:"recommendation"`
	Reason         string           `json:"reason"`
}
