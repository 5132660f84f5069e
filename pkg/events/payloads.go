package events

import (
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
)

// RunStatusPayload is the payload for run.status events.
// Published when a run transitions between lifecycle states.
type RunStatusPayload struct {
	Type      string    `json:"type"`   // always EventTypeRunStatus
	RunID     string    `json:"run_id"` // run UUID
	State     run.State `json:"state"`
	Iteration int       `json:"iteration"`
	Reason    string    `json:"reason,omitempty"` // terminal reason, when terminal
	Timestamp string    `json:"timestamp"`        // RFC3339Nano
}

// StepStatusPayload is the payload for step.status events.
// Published when a step moves through the queue state machine.
type StepStatusPayload struct {
	Type      string         `json:"type"`    // always EventTypeStepStatus
	RunID     string         `json:"run_id"`  // owning run UUID
	StepID    string         `json:"step_id"` // step UUID
	AgentRole step.AgentRole `json:"agent_role"`
	Queue     step.Queue     `json:"queue"`
	State     step.State     `json:"state"`
	Attempts  int            `json:"attempts"`
	Timestamp string         `json:"timestamp"` // RFC3339Nano
}

// WakePayload is the payload for orchestrator.wake transient events
type WakePayload struct {
	Type      string `json:"type"`   // always EventTypeWake
	RunID     string `json:"run_id"` // run whose step settled
	Timestamp string `json:"timestamp"`
}
