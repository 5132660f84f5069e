package events

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/event"
)

// CatchupLimit caps a single catchup read. A consumer further behind than
// this re-requests with the last id it saw.
const CatchupLimit = 500

// Catchup reads persisted events a consumer missed while disconnected.
type Catchup struct {
	client *ent.Client
}

// NewCatchup creates a Catchup reader
func NewCatchup(client *ent.Client) *Catchup {
	return &Catchup{client: client}
}

// Since returns persisted events for a run with id greater than afterID,
// in delivery order
func (c *Catchup) Since(ctx context.Context, runID string, afterID int64) ([]*ent.Event, error) {
	evs, err := c.client.Event.Query().
		Where(event.RunIDEQ(runID), event.IDGT(afterID)).
		Order(ent.Asc(event.FieldID)).
		Limit(CatchupLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catchup events: %w", err)
	}
	return evs, nil
}

// PruneRun deletes the persisted events of a run. Called by the cleanup
// service after the run is terminal and past retention.
func (c *Catchup) PruneRun(ctx context.Context, runID string) (int, error) {
	n, err := c.client.Event.Delete().
		Where(event.RunIDEQ(runID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	return n, nil
}
