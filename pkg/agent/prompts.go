package agent

import (
	"fmt"
	"strings"
)

// Prompt builders for the LLM-backed roles. Stateless — all state comes
// from the Input. The prompts double as the deterministic replay record,
// so they must be pure functions of the input.

const architectSystemPrompt = `You are a product architect. Turn the raw product
specification into a structured build specification.

Respond with a single JSON object:
{"entities": [...], "workflows": [...], "acceptance": [...]}

Each acceptance entry is {"kind": "...", "field": "...", "value": "..."}.
Do not include any text outside the JSON object.`

const designerSystemPrompt = `You are a system designer. Turn the structured
specification into a scaffold plan.

Respond with a single JSON object:
{"modules": [{"name": "...", "purpose": "...", "files": [...]}],
 "dependencies": [...], "risks": [...]}

Do not include any text outside the JSON object.`

const codegenSystemPrompt = `You are a code generation engineer. Produce a
unified diff implementing the plan against the current workspace.

Rules:
- Output only the unified diff, no prose.
- Use a/ and b/ path prefixes.
- Touch only files that belong to the plan's modules.`

const autofixerSystemPrompt = `You are an automated fixer. Produce a minimal
unified diff repairing the reported failure.

Rules:
- Output only the unified diff, no prose.
- Touch only files inside the write allowlist.
- Never touch CI workflows, deploy manifests, or secret files.
- Keep the patch as small as possible.`

func architectPrompt(in *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Specification (%s):\n%s\n", in.SourceKind, in.Source)
	if len(in.DomainTags) > 0 {
		fmt.Fprintf(&b, "\nDomain tags: %s\n", strings.Join(in.DomainTags, ", "))
	}
	return b.String()
}

func designerPrompt(in *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Structured specification:\n%s\n", in.Artifacts[ArtifactSpec])
	if len(in.ReplanScope) > 0 {
		fmt.Fprintf(&b, "\nThis is a replan. Restrict the plan to the failing modules: %s.\n",
			strings.Join(in.ReplanScope, ", "))
		fmt.Fprintf(&b, "Previous evaluation:\n%s\n", in.Artifacts[ArtifactEvalReport])
	}
	return b.String()
}

func codegenPrompt(in *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan:\n%s\n", in.Artifacts[ArtifactPlan])
	fmt.Fprintf(&b, "\nWorkspace digest: %s\n", in.WorkspaceDigest)
	if len(in.ReplanScope) > 0 {
		fmt.Fprintf(&b, "\nEdit only these modules: %s\n", strings.Join(in.ReplanScope, ", "))
	}
	if diff, ok := in.Artifacts[ArtifactDiff]; ok {
		fmt.Fprintf(&b, "\nCurrent diff to build upon:\n%s\n", diff)
	}
	return b.String()
}

func autofixerPrompt(in *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Failure class: %s\n", in.FailureClass)
	fmt.Fprintf(&b, "Failure log:\n%s\n", in.FailureExcerpt)
	fmt.Fprintf(&b, "\nEvaluation report:\n%s\n", in.Artifacts[ArtifactEvalReport])
	fmt.Fprintf(&b, "\nCurrent diff:\n%s\n", in.Artifacts[ArtifactDiff])
	fmt.Fprintf(&b, "\nWrite allowlist: %s\n", strings.Join(in.WriteAllowlist, ", "))
	return b.String()
}
