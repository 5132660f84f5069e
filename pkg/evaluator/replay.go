package evaluator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// ToolRecord captures one tool invocation inside a step, for replay.
type ToolRecord struct {
	Tool   string `json:"tool"`
	Args   string `json:"args"`
	Output string `json:"output"`
}

// StepRecord captures the deterministic inputs and outputs of one step.
// Timestamp-like fields are deliberately absent: the bundle hash must be
// stable across re-runs.
type StepRecord struct {
	StepID       string       `json:"step_id"`
	Role         string       `json:"role"`
	Iteration    int          `json:"iteration"`
	InputDigest  string       `json:"input_digest"`
	Prompt       string       `json:"prompt,omitempty"`
	ToolCalls    []ToolRecord `json:"tool_calls,omitempty"`
	OutputSHA256 string       `json:"output_sha256,omitempty"`
	EvalOutput   string       `json:"eval_output,omitempty"`
	FailureTrace string       `json:"failure_trace,omitempty"`
}

// Bundle is a deterministic record of a run, written on terminal failure.
// Re-running it in deterministic mode must reproduce the same per-step
// output hashes; CreatedAt is excluded from the hash (the documented
// timestamp tolerance).
type Bundle struct {
	RunID     string       `json:"run_id"`
	Tenant    string       `json:"tenant"`
	Steps     []StepRecord `json:"steps"`
	CreatedAt time.Time    `json:"created_at"`
}

// Hash returns the sha256 over the canonical concatenation of step
// records, ordered by (iteration, step_id).
func (b *Bundle) Hash() (string, error) {
	steps := append([]StepRecord(nil), b.Steps...)
	sort.Slice(steps, func(i, j int) bool {
		if steps[i].Iteration != steps[j].Iteration {
			return steps[i].Iteration < steps[j].Iteration
		}
		return steps[i].StepID < steps[j].StepID
	})

	h := sha256.New()
	for _, s := range steps {
		encoded, err := json.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("failed to encode step record: %w", err)
		}
		h.Write(encoded)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Marshal renders the bundle as its replay_bundle artifact payload.
func (b *Bundle) Marshal() ([]byte, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal replay bundle: %w", err)
	}
	return payload, nil
}

// ParseBundle decodes a replay_bundle artifact payload.
func ParseBundle(payload []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(payload, &b); err != nil {
		return nil, fmt.Errorf("failed to parse replay bundle: %w", err)
	}
	return &b, nil
}

// StepDivergence reports one step whose replayed output differed.
type StepDivergence struct {
	StepID   string `json:"step_id"`
	Original string `json:"original"`
	Replayed string `json:"replayed"`
}

// Verify compares a replayed bundle against the original. Replay is OK
// when every original step reproduced the same output hash and evaluator
// output.
func Verify(original, replayed *Bundle) ([]StepDivergence, bool) {
	replayedByID := make(map[string]StepRecord, len(replayed.Steps))
	for _, s := range replayed.Steps {
		replayedByID[s.StepID] = s
	}

	var divergences []StepDivergence
	for _, orig := range original.Steps {
		got, ok := replayedByID[orig.StepID]
		if !ok {
			divergences = append(divergences, StepDivergence{
				StepID:   orig.StepID,
				Original: orig.OutputSHA256,
				Replayed: "missing",
			})
			continue
		}
		if got.OutputSHA256 != orig.OutputSHA256 || got.EvalOutput != orig.EvalOutput {
			divergences = append(divergences, StepDivergence{
				StepID:   orig.StepID,
				Original: orig.OutputSHA256,
				Replayed: got.OutputSHA256,
			})
		}
	}
	return divergences, len(divergences) == 0
}
