package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/ent/timelineevent"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/services"
)

// buildReplayBundle freezes the failed run into a deterministic bundle:
// one record per step with its input digest, prompt, tool calls, output
// hash, and failure trace. The bundle blob plus its hash go to the
// replay registry.
func (d *Driver) buildReplayBundle(ctx context.Context, r *ent.Run) error {
	steps, err := d.client.Step.Query().
		Where(step.RunIDEQ(r.ID)).
		Order(ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("loading run steps: %w", err)
	}

	traces, err := d.stepTraces(ctx, r.ID)
	if err != nil {
		return err
	}

	bundle := &evaluator.Bundle{
		RunID:     r.ID,
		Tenant:    r.Tenant,
		CreatedAt: time.Now().UTC(),
	}
	for _, s := range steps {
		rec := evaluator.StepRecord{
			StepID:      s.ID,
			Role:        string(s.AgentRole),
			Iteration:   s.Iteration,
			InputDigest: s.InputDigest,
		}
		if s.OutputRef != nil {
			rec.OutputSHA256 = *s.OutputRef
		}
		if s.ErrorMessage != nil {
			rec.FailureTrace = *s.ErrorMessage
		}
		if trace, ok := traces[s.ID]; ok {
			rec.Prompt = trace.prompt
			rec.ToolCalls = trace.toolCalls
		}
		if s.AgentRole == step.AgentRoleQaEvaluator && s.State == step.StateSucceeded {
			rec.EvalOutput = d.evalOutputFor(ctx, s)
		}
		bundle.Steps = append(bundle.Steps, rec)
	}

	hash, err := bundle.Hash()
	if err != nil {
		return err
	}
	payload, err := bundle.Marshal()
	if err != nil {
		return err
	}
	ref, err := d.blobs.Put(ctx, r.Tenant, payload)
	if err != nil {
		return fmt.Errorf("storing replay bundle: %w", err)
	}

	if _, err := d.replays.Create(ctx, r.Tenant, r.ID, hash, ref); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("registering replay bundle: %w", err)
	}
	return nil
}

type stepTrace struct {
	prompt    string
	toolCalls []evaluator.ToolRecord
}

// stepTraces collects the step.trace timeline events the executor wrote,
// keyed by step. A later trace for the same step (a retry) wins.
func (d *Driver) stepTraces(ctx context.Context, runID string) (map[string]stepTrace, error) {
	events, err := d.client.TimelineEvent.Query().
		Where(
			timelineevent.RunIDEQ(runID),
			timelineevent.KindEQ("step.trace"),
		).
		Order(ent.Asc(timelineevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading step traces: %w", err)
	}

	traces := make(map[string]stepTrace, len(events))
	for _, ev := range events {
		if ev.StepID == nil || *ev.StepID == "" {
			continue
		}
		var trace stepTrace
		if prompt, ok := ev.Details["prompt"].(string); ok {
			trace.prompt = prompt
		}
		if raw, ok := ev.Details["tool_calls"]; ok {
			// Details round-tripped through JSON; decode back into records.
			encoded, err := json.Marshal(raw)
			if err == nil {
				_ = json.Unmarshal(encoded, &trace.toolCalls)
			}
		}
		traces[*ev.StepID] = trace
	}
	return traces, nil
}

// evalOutputFor loads the report payload of a QA step, best-effort.
func (d *Driver) evalOutputFor(ctx context.Context, s *ent.Step) string {
	if s.OutputRef == nil || *s.OutputRef == "" {
		return ""
	}
	payload, err := d.blobs.Get(ctx, *s.OutputRef)
	if err != nil {
		return ""
	}
	return string(payload)
}
