package orchestrator

import (
	"fmt"
	"strings"

	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/evaluator"
)

// classifyAgentError maps a typed agent error onto the failure taxonomy
// with a confidence reflecting how direct the mapping is.
func classifyAgentError(agentErr *agent.Error) (config.FailureClass, float64) {
	class := agentErr.FailureClass()
	confidence := 0.9
	if agentErr.Kind == agent.KindInternal && agentErr.Class == "" {
		// Untyped internal failures classify as unknown with low trust.
		confidence = 0.5
	}
	return class, confidence
}

// reportClassPrecedence orders the classes an eval report may indicate,
// most specific first. The first matching failing criterion wins.
var reportClassPrecedence = []struct {
	marker string
	class  config.FailureClass
}{
	{"security", config.FailureSecurity},
	{"policy", config.FailurePolicy},
	{"migration", config.FailureSchemaMigration},
	{"type", config.FailureTypeCheck},
	{"lint", config.FailureLint},
}

// classifyReport derives the failure class and log excerpt of a
// non-passing evaluation. Criterion names carry the signal: a failing
// "lint_clean" criterion is a lint failure, not a generic test failure.
func classifyReport(report *evaluator.Report) (config.FailureClass, string) {
	var failing []string
	class := config.FailureTestAssert

	for _, m := range reportClassPrecedence {
		for _, c := range report.Criteria {
			if c.Passed {
				continue
			}
			name := strings.ToLower(c.Name)
			if strings.Contains(name, m.marker) && class == config.FailureTestAssert {
				class = m.class
			}
		}
	}
	for _, c := range report.Criteria {
		if !c.Passed {
			failing = append(failing, fmt.Sprintf("%s (%s): %s", c.Name, c.Kind, c.Detail))
		}
	}

	excerpt := fmt.Sprintf("evaluation score %.3f below threshold %.3f; failing: %s",
		report.Score, report.Threshold, strings.Join(failing, "; "))
	return class, excerpt
}

