package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
)

// llmAgent is the shared shape of the four LLM-backed roles. Each role is
// a system prompt, a prompt builder, and an output artifact kind; the
// model exchange and cost accounting are identical.
type llmAgent struct {
	role         step.AgentRole
	kind         artifact.Kind
	systemPrompt string
	buildPrompt  func(*Input) string
	validate     func(*Input) error

	llm    LLMClient
	llmCfg *config.LLMConfig
}

func (a *llmAgent) Role() step.AgentRole   { return a.role }
func (a *llmAgent) QueueClass() step.Queue { return step.QueueLlm }

func (a *llmAgent) Execute(ctx context.Context, in *Input) (*Output, error) {
	if err := a.validate(in); err != nil {
		return nil, err
	}

	tier, ok := a.llmCfg.Tiers[in.Tier]
	if !ok {
		return nil, NewError(KindInternal, fmt.Sprintf("no model configured for tier %q", in.Tier))
	}

	model := in.Model
	if model == "" {
		model = tier.Model
	}
	maxTokens := in.MaxTokens
	if maxTokens == 0 {
		maxTokens = tier.MaxTokens
	}

	prompt := a.buildPrompt(in)
	result, err := a.llm.Complete(ctx, CompletionRequest{
		RunID:        in.RunID,
		StepID:       in.StepID,
		Model:        model,
		SystemPrompt: a.systemPrompt,
		Prompt:       prompt,
		MaxTokens:    maxTokens,
		Temperature:  tier.Temperature,
	})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return nil, NewError(KindInternal, "model returned an empty completion")
	}

	return &Output{
		Kind:      a.kind,
		Payload:   []byte(text),
		TokensIn:  result.TokensIn,
		TokensOut: result.TokensOut,
		CostUSD:   tier.Cost(result.TokensIn, result.TokensOut),
		Trace:     Trace{Prompt: prompt},
	}, nil
}

// NewProductArchitect structures a raw spec into entities, workflows and
// acceptance criteria.
func NewProductArchitect(llm LLMClient, llmCfg *config.LLMConfig) Agent {
	return &llmAgent{
		role:         step.AgentRoleProductArchitect,
		kind:         artifact.KindPlan,
		systemPrompt: architectSystemPrompt,
		buildPrompt:  architectPrompt,
		llm:          llm,
		llmCfg:       llmCfg,
		validate: func(in *Input) error {
			if strings.TrimSpace(in.Source) == "" {
				return NewError(KindInvalidInput, "spec source is empty")
			}
			return nil
		},
	}
}

// NewSystemDesigner turns the structured spec into a scaffold plan. On
// replan it narrows the plan to the failing modules.
func NewSystemDesigner(llm LLMClient, llmCfg *config.LLMConfig) Agent {
	return &llmAgent{
		role:         step.AgentRoleSystemDesigner,
		kind:         artifact.KindPlan,
		systemPrompt: designerSystemPrompt,
		buildPrompt:  designerPrompt,
		llm:          llm,
		llmCfg:       llmCfg,
		validate: func(in *Input) error {
			if len(in.Artifacts[ArtifactSpec]) == 0 {
				return NewError(KindInvalidInput, "structured spec artifact missing")
			}
			return nil
		},
	}
}

// NewCodegenEngineer emits a unified diff implementing the plan.
func NewCodegenEngineer(llm LLMClient, llmCfg *config.LLMConfig) Agent {
	return &llmAgent{
		role:         step.AgentRoleCodegenEngineer,
		kind:         artifact.KindDiff,
		systemPrompt: codegenSystemPrompt,
		buildPrompt:  codegenPrompt,
		llm:          llm,
		llmCfg:       llmCfg,
		validate: func(in *Input) error {
			if len(in.Artifacts[ArtifactPlan]) == 0 {
				return NewError(KindInvalidInput, "plan artifact missing")
			}
			return nil
		},
	}
}

// NewAutoFixer emits a constrained repair diff for a classified failure.
// The constraint enforcement (allowlist, size, deny paths) happens in the
// orchestrator's patch rung; the agent only shapes the prompt to them.
func NewAutoFixer(llm LLMClient, llmCfg *config.LLMConfig) Agent {
	return &llmAgent{
		role:         step.AgentRoleAutoFixer,
		kind:         artifact.KindDiff,
		systemPrompt: autofixerSystemPrompt,
		buildPrompt:  autofixerPrompt,
		llm:          llm,
		llmCfg:       llmCfg,
		validate: func(in *Input) error {
			if len(in.Artifacts[ArtifactDiff]) == 0 {
				return NewError(KindInvalidInput, "diff artifact missing")
			}
			if len(in.WriteAllowlist) == 0 {
				return NewError(KindInvalidInput, "write allowlist is empty")
			}
			return nil
		},
	}
}
