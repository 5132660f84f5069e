package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/evaluator"
)

// The cpu roles are deterministic functions over their input artifacts:
// same input digest, same output bytes. That property is what makes
// replay bundles verifiable without a model in the loop.

// ────────────────────────────────────────────────────────────
// SecurityCompliance
// ────────────────────────────────────────────────────────────

// sensitiveMarkers map plan/tag content to policy annotations. Matching
// is case-insensitive substring.
var sensitiveMarkers = []struct {
	marker     string
	annotation string
	approval   bool
}{
	{"payment", "handles payment flows: PCI review required", true},
	{"billing", "touches billing: finance sign-off advised", true},
	{"pii", "processes personal data: retention policy applies", true},
	{"credential", "manages credentials: secret storage review", false},
	{"secret", "references secrets: verify no plaintext persistence", false},
	{"auth", "changes authentication surface: review session handling", false},
	{"migration", "includes schema migration: verify reversibility", false},
}

type securityAnnotations struct {
	Plan             json.RawMessage `json:"plan"`
	Annotations      []string        `json:"annotations"`
	ApprovalRequired bool            `json:"approval_required"`
	ApprovalReason   string          `json:"approval_reason,omitempty"`
}

type securityCompliance struct{}

// NewSecurityCompliance annotates the scaffold plan with policy findings
// and raises an approval demand for high-risk domains.
func NewSecurityCompliance() Agent { return &securityCompliance{} }

func (a *securityCompliance) Role() step.AgentRole   { return step.AgentRoleSecurityCompliance }
func (a *securityCompliance) QueueClass() step.Queue { return step.QueueCPU }

func (a *securityCompliance) Execute(_ context.Context, in *Input) (*Output, error) {
	plan := in.Artifacts[ArtifactPlan]
	if len(plan) == 0 {
		return nil, NewError(KindInvalidInput, "plan artifact missing")
	}

	haystack := strings.ToLower(string(plan) + " " + strings.Join(in.DomainTags, " "))

	result := securityAnnotations{Plan: normalizeRawJSON(plan)}
	for _, m := range sensitiveMarkers {
		if strings.Contains(haystack, m.marker) {
			result.Annotations = append(result.Annotations, m.annotation)
			if m.approval && !result.ApprovalRequired {
				result.ApprovalRequired = true
				result.ApprovalReason = m.annotation
			}
		}
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, WrapError(KindInternal, "failed to encode policy annotations", err)
	}

	return &Output{
		Kind:           artifact.KindPlan,
		Payload:        payload,
		ApprovalDemand: result.ApprovalReason,
	}, nil
}

// normalizeRawJSON embeds the plan verbatim when it is valid JSON and as
// a JSON string otherwise, so the output is always well-formed.
func normalizeRawJSON(payload []byte) json.RawMessage {
	if json.Valid(payload) {
		return json.RawMessage(payload)
	}
	quoted, _ := json.Marshal(string(payload))
	return json.RawMessage(quoted)
}

// ────────────────────────────────────────────────────────────
// QAEvaluator
// ────────────────────────────────────────────────────────────

type qaEvaluator struct {
	harness *evaluator.Harness
	evalCfg *config.EvaluatorConfig
}

// NewQAEvaluator runs the golden suite for the spec's domain tags plus
// the run's acceptance criteria against the generated diff.
func NewQAEvaluator(harness *evaluator.Harness, evalCfg *config.EvaluatorConfig) Agent {
	return &qaEvaluator{harness: harness, evalCfg: evalCfg}
}

func (a *qaEvaluator) Role() step.AgentRole   { return step.AgentRoleQaEvaluator }
func (a *qaEvaluator) QueueClass() step.Queue { return step.QueueCPU }

func (a *qaEvaluator) Execute(ctx context.Context, in *Input) (*Output, error) {
	diff := in.Artifacts[ArtifactDiff]
	if len(diff) == 0 {
		return nil, NewError(KindInvalidInput, "diff artifact missing")
	}

	criteria := a.suiteFor(in.DomainTags)
	acceptance, err := acceptanceCriteria(in.Acceptance)
	if err != nil {
		return nil, err
	}
	criteria = append(criteria, acceptance...)

	target := BuildTarget(in)
	report, err := a.harness.Run(ctx, criteria, &target, in.KPIGuards)
	if err != nil {
		return nil, WrapError(KindInternal, "evaluation harness failed", err)
	}

	payload, err := report.Marshal()
	if err != nil {
		return nil, WrapError(KindInternal, "failed to encode eval report", err)
	}

	return &Output{Kind: artifact.KindEvalReport, Payload: payload}, nil
}

func (a *qaEvaluator) suiteFor(tags []string) []config.CriterionConfig {
	var out []config.CriterionConfig
	for _, tag := range tags {
		out = append(out, a.evalCfg.Suites[tag]...)
	}
	return out
}

// acceptanceCriteria converts the spec's acceptance entries into harness
// criteria. Malformed entries are invalid input, not evaluation failures.
func acceptanceCriteria(acceptance []map[string]interface{}) ([]config.CriterionConfig, error) {
	if len(acceptance) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(acceptance)
	if err != nil {
		return nil, WrapError(KindInvalidInput, "acceptance criteria are not encodable", err)
	}
	var criteria []config.CriterionConfig
	if err := json.Unmarshal(encoded, &criteria); err != nil {
		return nil, WrapError(KindInvalidInput, "acceptance criteria are malformed", err)
	}
	for _, c := range criteria {
		if c.Kind == "" {
			return nil, NewError(KindInvalidInput, "acceptance criterion without a kind")
		}
	}
	return criteria, nil
}

// BuildTarget builds the evaluated view of a run from the agent input:
// the prior artifacts become named fields and the diff's touched paths
// become the workspace file view.
func BuildTarget(in *Input) evaluator.Target {
	fields := make(map[string]string, len(in.Artifacts))
	for name, payload := range in.Artifacts {
		fields[name] = string(payload)
	}

	files := make(map[string][]byte)
	for _, path := range DiffPaths(string(in.Artifacts[ArtifactDiff])) {
		files[path] = []byte{}
	}

	return evaluator.Target{Fields: fields, Files: files}
}

// ────────────────────────────────────────────────────────────
// DevOps
// ────────────────────────────────────────────────────────────

var envVarPattern = regexp.MustCompile(`(?:os\.Getenv\("([A-Z][A-Z0-9_]*)"\)|\$\{([A-Z][A-Z0-9_]*)\})`)

type devopsBundle struct {
	MigrationPlan []string `json:"migration_plan"`
	EnvTemplate   string   `json:"env_template"`
	CIBlock       string   `json:"ci_block"`
}

type devops struct{}

// NewDevOps derives the delivery bundle (migration plan, env template, CI
// block) from the final diff.
func NewDevOps() Agent { return &devops{} }

func (a *devops) Role() step.AgentRole   { return step.AgentRoleDevops }
func (a *devops) QueueClass() step.Queue { return step.QueueCPU }

func (a *devops) Execute(_ context.Context, in *Input) (*Output, error) {
	diff := string(in.Artifacts[ArtifactDiff])
	if diff == "" {
		return nil, NewError(KindInvalidInput, "diff artifact missing")
	}

	bundle := devopsBundle{MigrationPlan: []string{}}
	for _, path := range DiffPaths(diff) {
		if strings.HasSuffix(path, ".sql") || strings.Contains(path, "migrations/") {
			bundle.MigrationPlan = append(bundle.MigrationPlan, fmt.Sprintf("apply %s", path))
		}
	}

	envVars := map[string]bool{}
	for _, m := range envVarPattern.FindAllStringSubmatch(diff, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		envVars[name] = true
	}
	names := make([]string, 0, len(envVars))
	for name := range envVars {
		names = append(names, name)
	}
	sort.Strings(names)
	var env strings.Builder
	for _, name := range names {
		fmt.Fprintf(&env, "%s=\n", name)
	}
	bundle.EnvTemplate = env.String()

	bundle.CIBlock = "steps:\n  - run: go build ./...\n  - run: go vet ./...\n  - run: go test ./...\n"

	payload, err := json.Marshal(bundle)
	if err != nil {
		return nil, WrapError(KindInternal, "failed to encode devops bundle", err)
	}
	return &Output{Kind: artifact.KindBundleZip, Payload: payload}, nil
}

// ────────────────────────────────────────────────────────────
// Reviewer
// ────────────────────────────────────────────────────────────

type reviewer struct{}

// NewReviewer assembles the PR-body artifact and risk summary from the
// preceding artifacts.
func NewReviewer() Agent { return &reviewer{} }

func (a *reviewer) Role() step.AgentRole   { return step.AgentRoleReviewer }
func (a *reviewer) QueueClass() step.Queue { return step.QueueCPU }

func (a *reviewer) Execute(_ context.Context, in *Input) (*Output, error) {
	diff := string(in.Artifacts[ArtifactDiff])
	if diff == "" {
		return nil, NewError(KindInvalidInput, "diff artifact missing")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Summary\n\nAutomated build for run %s (iteration %d).\n", in.RunID, in.Iteration)

	paths := DiffPaths(diff)
	fmt.Fprintf(&b, "\n## Files changed (%d)\n\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}

	if reportPayload, ok := in.Artifacts[ArtifactEvalReport]; ok {
		if report, err := evaluator.ParseReport(reportPayload); err == nil {
			fmt.Fprintf(&b, "\n## Evaluation\n\nScore %.3f (threshold %.3f), passed: %v.\n",
				report.Score, report.Threshold, report.Passed)
		}
	}

	if planPayload, ok := in.Artifacts[ArtifactPlan]; ok {
		var annotated securityAnnotations
		if err := json.Unmarshal(planPayload, &annotated); err == nil && len(annotated.Annotations) > 0 {
			b.WriteString("\n## Risks\n\n")
			for _, ann := range annotated.Annotations {
				fmt.Fprintf(&b, "- %s\n", ann)
			}
		}
	}

	return &Output{Kind: artifact.KindPrBody, Payload: []byte(b.String())}, nil
}
