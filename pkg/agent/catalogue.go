package agent

import (
	"fmt"

	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/evaluator"
)

// Catalogue holds the eight fixed roles. There is no registration API:
// the catalogue is closed.
type Catalogue struct {
	agents map[step.AgentRole]Agent
}

// NewCatalogue wires the full catalogue.
func NewCatalogue(llm LLMClient, llmCfg *config.LLMConfig, harness *evaluator.Harness, evalCfg *config.EvaluatorConfig) *Catalogue {
	agents := map[step.AgentRole]Agent{}
	for _, a := range []Agent{
		NewProductArchitect(llm, llmCfg),
		NewSystemDesigner(llm, llmCfg),
		NewSecurityCompliance(),
		NewCodegenEngineer(llm, llmCfg),
		NewQAEvaluator(harness, evalCfg),
		NewAutoFixer(llm, llmCfg),
		NewDevOps(),
		NewReviewer(),
	} {
		agents[a.Role()] = a
	}
	return &Catalogue{agents: agents}
}

// Get returns the agent for a role.
func (c *Catalogue) Get(role step.AgentRole) (Agent, error) {
	a, ok := c.agents[role]
	if !ok {
		return nil, fmt.Errorf("no agent for role %q", role)
	}
	return a, nil
}

// Roles returns the catalogue roles in pipeline order.
func (c *Catalogue) Roles() []step.AgentRole {
	return []step.AgentRole{
		step.AgentRoleProductArchitect,
		step.AgentRoleSystemDesigner,
		step.AgentRoleSecurityCompliance,
		step.AgentRoleCodegenEngineer,
		step.AgentRoleQaEvaluator,
		step.AgentRoleAutoFixer,
		step.AgentRoleDevops,
		step.AgentRoleReviewer,
	}
}
