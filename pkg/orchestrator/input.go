package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/services"
)

// assembleInput builds the agent input for one role from the run's
// current artifact state. The input's digest feeds the idempotency key,
// so only what the role actually consumes goes in: extra artifacts
// would change the digest without changing the work.
func assembleInput(ctx context.Context, arts *services.ArtifactService, fails *services.FailureService, r *ent.Run, spec *ent.BuildSpec, role step.AgentRole, tier config.ModelTier) (*agent.Input, error) {
	in := &agent.Input{
		Tenant:     r.Tenant,
		RunID:      r.ID,
		Iteration:  r.Iteration,
		Source:     spec.Source,
		SourceKind: string(spec.SourceKind),
		DomainTags: spec.DomainTags,
		Acceptance: spec.Acceptance,
		KPIGuards:  spec.KpiGuards,
		Artifacts:  map[string][]byte{},
	}
	if r.ReplanScope != nil && *r.ReplanScope != "" {
		in.ReplanScope = strings.Split(*r.ReplanScope, ",")
	}

	load := func(kind artifact.Kind, name string) error {
		a, err := arts.Latest(ctx, r.ID, kind)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("loading %s artifact: %w", name, err)
		}
		payload, err := arts.LoadPayload(ctx, a)
		if err != nil {
			return fmt.Errorf("loading %s payload: %w", name, err)
		}
		in.Artifacts[name] = payload
		return nil
	}

	switch role {
	case step.AgentRoleProductArchitect:
		// Source only; the architect starts the pipeline.

	case step.AgentRoleSystemDesigner:
		in.Artifacts[agent.ArtifactSpec] = []byte(spec.Source)
		// A replanning designer sees what went wrong.
		if err := load(artifact.KindEvalReport, agent.ArtifactEvalReport); err != nil {
			return nil, err
		}

	case step.AgentRoleSecurityCompliance:
		if err := load(artifact.KindPlan, agent.ArtifactPlan); err != nil {
			return nil, err
		}

	case step.AgentRoleCodegenEngineer:
		if err := load(artifact.KindPlan, agent.ArtifactPlan); err != nil {
			return nil, err
		}
		if err := load(artifact.KindDiff, agent.ArtifactDiff); err != nil {
			return nil, err
		}
		if diff, ok := in.Artifacts[agent.ArtifactDiff]; ok {
			in.WorkspaceDigest = blobstore.Ref(diff)
		}

	case step.AgentRoleQaEvaluator:
		if err := load(artifact.KindDiff, agent.ArtifactDiff); err != nil {
			return nil, err
		}
		if err := load(artifact.KindPlan, agent.ArtifactPlan); err != nil {
			return nil, err
		}

	case step.AgentRoleAutoFixer:
		if err := load(artifact.KindDiff, agent.ArtifactDiff); err != nil {
			return nil, err
		}
		if err := load(artifact.KindEvalReport, agent.ArtifactEvalReport); err != nil {
			return nil, err
		}
		// Patches may only touch files the current diff already owns.
		if diff, ok := in.Artifacts[agent.ArtifactDiff]; ok {
			in.WriteAllowlist = agent.DiffPaths(string(diff))
		}
		if err := fillFailureContext(ctx, fails, r.ID, in); err != nil {
			return nil, err
		}

	case step.AgentRoleDevops, step.AgentRoleReviewer:
		if err := load(artifact.KindDiff, agent.ArtifactDiff); err != nil {
			return nil, err
		}
		if err := load(artifact.KindPlan, agent.ArtifactPlan); err != nil {
			return nil, err
		}
		if err := load(artifact.KindEvalReport, agent.ArtifactEvalReport); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown agent role %q", role)
	}

	if tier != "" {
		in.Tier = tier
	}
	return in, nil
}

// fillFailureContext attaches the newest failure of the run to the
// input, for the AutoFixer's repair prompt.
func fillFailureContext(ctx context.Context, fails *services.FailureService, runID string, in *agent.Input) error {
	failures, err := fails.ListByRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("loading failures: %w", err)
	}
	if len(failures) == 0 {
		return nil
	}
	latest := failures[len(failures)-1]
	in.FailureClass = config.FailureClass(latest.Class)
	in.FailureExcerpt = latest.LogExcerpt
	return nil
}
