package models

import (
	"github.com/forgeworks/metabuild/ent"
)

// StepFilters contains filtering options for listing steps
type StepFilters struct {
	RunID     string `json:"run_id,omitempty"`
	Iteration int    `json:"iteration,omitempty"`
	AgentRole string `json:"agent_role,omitempty"`
	Queue     string `json:"queue,omitempty"`
	State     string `json:"state,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// StepListResponse contains a paginated step list
type StepListResponse struct {
	Steps      []*ent.Step `json:"steps"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// StepResult carries a worker's completion report for a leased step
type StepResult struct {
	OutputRef string  `json:"output_ref,omitempty"`
	TokensIn  int     `json:"tokens_in,omitempty"`
	TokensOut int     `json:"tokens_out,omitempty"`
	CostUSD   float64 `json:"cost_usd,omitempty"`
}
