package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	mu       sync.Mutex
	received []received
}

type received struct {
	channel string
	payload []byte
}

func (c *capture) handler(channel string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.received = append(c.received, received{channel, payload})
}

func (c *capture) wait(t *testing.T, n int) []received {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		if len(c.received) >= n {
			out := append([]received(nil), c.received...)
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d notifications", n)
	return nil
}

// TestPublishAndListen exercises the full NOTIFY path: a persisted run
// status event is delivered to a subscribed listener and is readable via
// catchup afterwards.
func TestPublishAndListen(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	// NOTIFY channels are database-global, so the listener's dedicated
	// connection does not need the test schema's search_path.
	cap := &capture{}
	listener := NewNotifyListener(util.GetBaseConnectionString(t), cap.handler)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	runID := "run-listen-test"
	require.NoError(t, listener.Subscribe(ctx, RunChannel(runID)))
	require.NoError(t, listener.Subscribe(ctx, OrchestratorChannel))

	publisher := NewPublisher(db)

	err := publisher.PublishRunStatus(ctx, "default", runID, RunStatusPayload{
		RunID:     runID,
		State:     run.StatePlanning,
		Iteration: 1,
	})
	require.NoError(t, err)

	require.NoError(t, publisher.WakeOrchestrator(ctx, runID))

	got := cap.wait(t, 2)

	var statusSeen, wakeSeen bool
	for _, r := range got {
		var m map[string]any
		require.NoError(t, json.Unmarshal(r.payload, &m))
		switch m["type"] {
		case EventTypeRunStatus:
			statusSeen = true
			assert.Equal(t, RunChannel(runID), r.channel)
			assert.Equal(t, string(run.StatePlanning), m["state"])
			// Persisted events carry their db id for catchup.
			assert.Contains(t, m, "db_event_id")
		case EventTypeWake:
			wakeSeen = true
			assert.Equal(t, OrchestratorChannel, r.channel)
		}
	}
	assert.True(t, statusSeen, "run.status not delivered")
	assert.True(t, wakeSeen, "orchestrator.wake not delivered")

	// Catchup sees the persisted event but not the transient wake.
	catchup := NewCatchup(entClient)
	evs, err := catchup.Since(ctx, runID, 0)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, RunChannel(runID), evs[0].Channel)

	// Prune removes catchup storage.
	n, err := catchup.PruneRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTruncateIfNeeded(t *testing.T) {
	small := `{"type":"run.status","run_id":"r1"}`
	out, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	big := map[string]any{
		"type":   EventTypeRunStatus,
		"run_id": "r1",
		"blob":   string(make([]byte, 9000)),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err = truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.Less(t, len(out), 8000)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "r1", m["run_id"])
}
