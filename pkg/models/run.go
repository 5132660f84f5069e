// Package models defines request, filter, and response types shared by the
// services and the HTTP API.
package models

import (
	"time"

	"github.com/forgeworks/metabuild/ent"
)

// CreateRunRequest contains the spec submitted to start a new build run.
// The spec is frozen at creation; later edits require a new run.
type CreateRunRequest struct {
	Tenant         string                   `json:"tenant,omitempty"`
	Source         string                   `json:"source"`
	SourceKind     string                   `json:"source_kind,omitempty"`
	SLAClass       string                   `json:"sla_class,omitempty"`
	ReviewRequired bool                     `json:"review_required,omitempty"`
	MaxIters       int                      `json:"max_iters,omitempty"`
	TokenBudget    int                      `json:"token_budget,omitempty"`
	CostLimitUSD   float64                  `json:"cost_limit_usd,omitempty"`
	WallTimeS      int                      `json:"wall_time_s,omitempty"`
	Acceptance     []map[string]interface{} `json:"acceptance,omitempty"`
	KPIGuards      map[string]interface{}   `json:"kpi_guards,omitempty"`
	DomainTags     []string                 `json:"domain_tags,omitempty"`
}

// RunFilters contains filtering options for listing runs
type RunFilters struct {
	Tenant         string     `json:"tenant,omitempty"`
	State          string     `json:"state,omitempty"`
	CanaryGroup    string     `json:"canary_group,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// RunListResponse contains a paginated run list
type RunListResponse struct {
	Runs       []*ent.Run `json:"runs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// CancelRunRequest optionally carries the operator's reason for aborting
type CancelRunRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelRunResponse reports how much in-flight work the cancel touched
type CancelRunResponse struct {
	RunID            string `json:"run_id"`
	Reason           string `json:"reason"`
	TombstonedSteps  int    `json:"tombstoned_steps"`
	InterruptedSteps int    `json:"interrupted_steps"`
}

// RunDetailResponse wraps a Run with its spec, budget, and latest activity
type RunDetailResponse struct {
	Run      *ent.Run       `json:"run"`
	Spec     *ent.BuildSpec `json:"spec,omitempty"`
	Budget   *ent.Budget    `json:"budget,omitempty"`
	Steps    []*ent.Step    `json:"steps,omitempty"`
	Failures []*ent.Failure `json:"failures,omitempty"`
}
