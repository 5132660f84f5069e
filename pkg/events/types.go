// Package events provides real-time event delivery over PostgreSQL
// NOTIFY/LISTEN. Run and step status changes are persisted to the events
// table then broadcast, so consumers can catch up after a disconnect;
// orchestrator wake-ups are transient broadcasts only.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Run lifecycle — state transitions of the orchestrator state machine
	EventTypeRunStatus = "run.status"

	// Step lifecycle — queue transitions of individual agent steps
	EventTypeStepStatus = "step.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Orchestrator wake-up — fired when a step reaches a terminal state so
	// the driver loop re-examines the run without waiting out its poll tick.
	EventTypeWake = "orchestrator.wake"
)

// GlobalRunsChannel is the channel for run-level status events. The run
// list view subscribes to this for live updates.
const GlobalRunsChannel = "runs"

// OrchestratorChannel carries transient wake-up events for the driver loop.
const OrchestratorChannel = "orchestrator"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}
