package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher publishes run and step events. Persistent events are stored in
// the events table then broadcast via NOTIFY in one transaction (pg_notify
// is transactional, the notification fires at COMMIT). Transient events
// are broadcast only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishRunStatus persists a run status event to the run channel and
// broadcasts a transient copy to the global runs channel. Both publishes
// are best-effort: if the persistent one fails, the transient one is still
// attempted. Returns the first error encountered (if any).
func (p *Publisher) PublishRunStatus(ctx context.Context, tenant, runID string, payload RunStatusPayload) error {
	payload.Type = EventTypeRunStatus
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, tenant, runID, RunChannel(runID), payloadJSON); err != nil {
		slog.Warn("Failed to publish run status to run channel",
			"run_id", runID, "state", payload.State, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalRunsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish run status to global channel",
			"run_id", runID, "state", payload.State, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishStepStatus persists and broadcasts a step.status event
func (p *Publisher) PublishStepStatus(ctx context.Context, tenant, runID string, payload StepStatusPayload) error {
	payload.Type = EventTypeStepStatus
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StepStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, tenant, runID, RunChannel(runID), payloadJSON)
}

// WakeOrchestrator broadcasts a transient wake-up so the driver loop
// re-examines a run immediately instead of on its next poll tick
func (p *Publisher) WakeOrchestrator(ctx context.Context, runID string) error {
	payload := WakePayload{
		Type:      EventTypeWake,
		RunID:     runID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WakePayload: %w", err)
	}
	return p.notifyOnly(ctx, OrchestratorChannel, payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, tenant, runID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (tenant, run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tenant, runID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the consumer needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		RunID     string `json:"run_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
