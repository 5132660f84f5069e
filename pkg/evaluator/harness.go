// Package evaluator runs the declarative golden suite against generated
// output, scores runs for canary comparison, and builds deterministic
// replay bundles.
package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/tools"
)

// Target is the evaluated view of a run's output: named fields plus a
// workspace file view.
type Target struct {
	// Fields are named output values (e.g. "diff", "plan", "pr_body").
	Fields map[string]string

	// Files is the workspace view after applying the diff: path → content.
	Files map[string][]byte
}

// CriterionResult is the outcome of one assertion.
type CriterionResult struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Passed bool    `json:"passed"`
	Weight float64 `json:"weight"`
	Detail string  `json:"detail,omitempty"`
}

// Report is the full evaluation outcome. Score is the weighted mean of
// binary per-criterion results; a suite with zero criteria scores 1.0.
type Report struct {
	Criteria  []CriterionResult `json:"criteria"`
	Score     float64           `json:"score"`
	Threshold float64           `json:"threshold"`
	Passed    bool              `json:"passed"`
}

// Marshal renders the report as its eval_report artifact payload.
func (r *Report) Marshal() ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal eval report: %w", err)
	}
	return payload, nil
}

// ParseReport decodes an eval_report artifact payload.
func ParseReport(payload []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("failed to parse eval report: %w", err)
	}
	return &r, nil
}

// Harness executes golden-suite criteria. Side-effecting criterion kinds
// (http_status, db_invariant, ui_smoke, migration_state) go through the
// tool kernel under the given policy; everything else is pure over the
// Target.
type Harness struct {
	cfg    *config.EvaluatorConfig
	kernel tools.Kernel
	policy tools.Policy
}

// NewHarness creates a harness. kernel may be nil, in which case
// tool-backed criteria fail with a detail instead of erroring.
func NewHarness(cfg *config.EvaluatorConfig, kernel tools.Kernel, policy tools.Policy) *Harness {
	return &Harness{cfg: cfg, kernel: kernel, policy: policy}
}

// Run evaluates every criterion and scores the result. The pass threshold
// is the spec's pass_rate KPI guard when present, else the configured
// default.
func (h *Harness) Run(ctx context.Context, criteria []config.CriterionConfig, target *Target, guards map[string]any) (*Report, error) {
	report := &Report{Threshold: h.passThreshold(guards)}

	if len(criteria) == 0 {
		report.Score = 1.0
		report.Passed = true
		return report, nil
	}

	var weightSum, passSum float64
	for i, c := range criteria {
		weight := c.Weight
		if weight <= 0 {
			weight = 1
		}

		passed, detail := h.check(ctx, c, target)
		name := c.Field
		if name == "" {
			name = fmt.Sprintf("criterion_%d", i)
		}

		report.Criteria = append(report.Criteria, CriterionResult{
			Name:   name,
			Kind:   c.Kind,
			Passed: passed,
			Weight: weight,
			Detail: detail,
		})

		weightSum += weight
		if passed {
			passSum += weight
		}
	}

	report.Score = passSum / weightSum
	report.Passed = report.Score >= report.Threshold
	return report, nil
}

func (h *Harness) passThreshold(guards map[string]any) float64 {
	if guards != nil {
		if v, ok := guards["pass_rate"]; ok {
			switch n := v.(type) {
			case float64:
				return n
			case int:
				return float64(n)
			case string:
				if f, err := strconv.ParseFloat(n, 64); err == nil {
					return f
				}
			}
		}
	}
	return h.cfg.PassThreshold
}

// check evaluates a single criterion. Failures of the tool kernel are
// criterion failures, never harness errors: a broken probe means the
// assertion did not hold.
func (h *Harness) check(ctx context.Context, c config.CriterionConfig, target *Target) (bool, string) {
	switch c.Kind {
	case "contains":
		return strings.Contains(target.Fields[c.Field], c.Value), ""

	case "not_contains":
		if strings.Contains(target.Fields[c.Field], c.Value) {
			return false, fmt.Sprintf("field %s contains %q", c.Field, c.Value)
		}
		return true, ""

	case "equals":
		return target.Fields[c.Field] == c.Value, ""

	case "regex":
		re, err := regexp.Compile(c.Value)
		if err != nil {
			return false, fmt.Sprintf("invalid pattern: %s", err)
		}
		return re.MatchString(target.Fields[c.Field]), ""

	case "file_exists":
		_, ok := target.Files[c.Value]
		if !ok {
			return false, fmt.Sprintf("file %s missing", c.Value)
		}
		return true, ""

	case "not_empty":
		return strings.TrimSpace(target.Fields[c.Field]) != "", ""

	case "greater_than":
		n, err := strconv.ParseFloat(strings.TrimSpace(target.Fields[c.Field]), 64)
		if err != nil {
			return false, fmt.Sprintf("field %s is not numeric", c.Field)
		}
		return n > c.Number, ""

	case "less_than":
		n, err := strconv.ParseFloat(strings.TrimSpace(target.Fields[c.Field]), 64)
		if err != nil {
			return false, fmt.Sprintf("field %s is not numeric", c.Field)
		}
		return n < c.Number, ""

	case "http_status":
		return h.invokeBool(ctx, "http_probe@v1", map[string]any{
			"url":    c.Args["url"],
			"shape":  c.Args["shape"],
			"expect": int(c.Number),
		})

	case "db_invariant":
		result, detail, ok := h.invoke(ctx, "db_query@v1", map[string]any{
			"query": c.Args["query"],
		})
		if !ok {
			return false, detail
		}
		if strings.TrimSpace(string(result.Output)) != c.Value {
			return false, fmt.Sprintf("query returned %q, want %q", result.Output, c.Value)
		}
		return true, ""

	case "ui_smoke":
		return h.invokeBool(ctx, "ui_smoke@v1", map[string]any{
			"steps": c.Args["steps"],
		})

	case "migration_state":
		result, detail, ok := h.invoke(ctx, "migration_state@v1", map[string]any{
			"from_version": c.Args["from_version"],
			"to_version":   c.Args["to_version"],
		})
		if !ok {
			return false, detail
		}
		if strings.TrimSpace(string(result.Output)) != c.Args["to_version"] {
			return false, fmt.Sprintf("migration at %q, want %q", result.Output, c.Args["to_version"])
		}
		return true, ""

	default:
		return false, fmt.Sprintf("unknown criterion kind %q", c.Kind)
	}
}

// invoke runs a kernel tool; returns ok=false with a detail on any
// kernel-level failure.
func (h *Harness) invoke(ctx context.Context, tool string, args map[string]any) (*tools.Result, string, bool) {
	if h.kernel == nil {
		return nil, "no tool kernel configured", false
	}
	result, err := h.kernel.Invoke(ctx, tools.Invocation{Tool: tool, Args: args}, h.policy)
	if err != nil {
		slog.Debug("Criterion tool failed", "tool", tool, "error", err)
		return nil, err.Error(), false
	}
	if result.IsError {
		return nil, string(result.Output), false
	}
	return result, "", true
}

func (h *Harness) invokeBool(ctx context.Context, tool string, args map[string]any) (bool, string) {
	_, detail, ok := h.invoke(ctx, tool, args)
	return ok, detail
}
