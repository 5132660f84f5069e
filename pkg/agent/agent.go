// Package agent implements the fixed agent catalogue: eight roles, each a
// pure function of (inputs, model params). Agents never touch storage;
// they return artifacts the orchestrator persists, and record their side
// effects (prompts, tool calls) in a trace for replay.
package agent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
)

// Logical artifact names used as Input.Artifacts keys. The orchestrator
// fills them from the prior steps' outputs.
const (
	ArtifactSpec       = "spec"
	ArtifactPlan       = "plan"
	ArtifactDiff       = "diff"
	ArtifactEvalReport = "eval_report"
	ArtifactBundle     = "bundle"
	ArtifactPRBody     = "pr_body"
)

// Input is everything an agent invocation may read. The digest over its
// deterministic parts uniquely determines the output reference.
type Input struct {
	Tenant    string
	RunID     string
	StepID    string
	Iteration int

	// Tier/Model/MaxTokens/Temperature are the resolved model params for
	// LLM roles; zero-valued for cpu roles.
	Tier        config.ModelTier
	Model       string
	MaxTokens   int
	Temperature float64

	// Source is the raw spec text (ProductArchitect input).
	Source     string
	SourceKind string

	DomainTags []string
	Acceptance []map[string]interface{}
	KPIGuards  map[string]interface{}

	// Artifacts are prior step outputs keyed by logical name.
	Artifacts map[string][]byte

	// ReplanScope restricts CodegenEngineer edits after a replan; empty
	// means the full module set.
	ReplanScope []string

	// WriteAllowlist constrains AutoFixer patches.
	WriteAllowlist []string

	// FailureClass/FailureExcerpt describe the failure AutoFixer repairs.
	FailureClass   config.FailureClass
	FailureExcerpt string

	// WorkspaceDigest identifies the workspace snapshot Codegen edits.
	WorkspaceDigest string
}

// Digest hashes the deterministic parts of the input. Identifiers and
// timestamps are excluded so a retried step hashes identically.
func (in *Input) Digest() string {
	artifactHashes := make(map[string]string, len(in.Artifacts))
	for name, payload := range in.Artifacts {
		sum := sha256.Sum256(payload)
		artifactHashes[name] = hex.EncodeToString(sum[:])
	}

	scope := append([]string(nil), in.ReplanScope...)
	sort.Strings(scope)
	allow := append([]string(nil), in.WriteAllowlist...)
	sort.Strings(allow)
	tags := append([]string(nil), in.DomainTags...)
	sort.Strings(tags)

	// map keys marshal in sorted order, making the encoding canonical.
	canonical := map[string]interface{}{
		"tier":             in.Tier,
		"model":            in.Model,
		"max_tokens":       in.MaxTokens,
		"temperature":      in.Temperature,
		"source":           in.Source,
		"source_kind":      in.SourceKind,
		"domain_tags":      tags,
		"acceptance":       in.Acceptance,
		"kpi_guards":       in.KPIGuards,
		"artifacts":        artifactHashes,
		"replan_scope":     scope,
		"write_allowlist":  allow,
		"failure_class":    in.FailureClass,
		"failure_excerpt":  in.FailureExcerpt,
		"workspace_digest": in.WorkspaceDigest,
	}

	encoded, _ := json.Marshal(canonical)
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}

// ToolTrace records one tool invocation for the replay bundle.
type ToolTrace struct {
	Tool   string `json:"tool"`
	Args   string `json:"args"`
	Output string `json:"output"`
}

// Trace records an invocation's side effects for replay.
type Trace struct {
	Prompt    string      `json:"prompt,omitempty"`
	ToolCalls []ToolTrace `json:"tool_calls,omitempty"`
}

// Output is what an agent returns. The orchestrator persists Payload to
// the blob store under the artifact kind and accounts the usage.
type Output struct {
	Kind    artifact.Kind
	Payload []byte

	TokensIn  int
	TokensOut int
	CostUSD   float64

	// ApprovalDemand, when non-empty, makes the orchestrator open an
	// approval gate before the run may proceed (SecurityCompliance).
	ApprovalDemand string

	Trace Trace
}

// Agent is one catalogue role.
type Agent interface {
	// Role identifies the agent in the closed catalogue.
	Role() step.AgentRole

	// QueueClass is the agent's declared queue; the scheduler may still
	// reroute by SLA.
	QueueClass() step.Queue

	// Execute runs the agent as a pure function of the input. Failures
	// are typed *Error values.
	Execute(ctx context.Context, in *Input) (*Output, error)
}
