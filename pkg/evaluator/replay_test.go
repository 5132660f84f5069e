package evaluator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBundle() *Bundle {
	return &Bundle{
		RunID:  "run-1",
		Tenant: "default",
		Steps: []StepRecord{
			{
				StepID:       "step-2",
				Role:         "codegen_engineer",
				Iteration:    1,
				InputDigest:  "d2",
				Prompt:       "generate the diff",
				OutputSHA256: "abc",
			},
			{
				StepID:       "step-1",
				Role:         "product_architect",
				Iteration:    1,
				InputDigest:  "d1",
				Prompt:       "structure the spec",
				OutputSHA256: "def",
				ToolCalls:    []ToolRecord{{Tool: "db_query@v1", Args: `{"query":"..."}`, Output: "0"}},
			},
		},
		CreatedAt: time.Now(),
	}
}

func TestBundleHashIgnoresTimestampAndOrder(t *testing.T) {
	b := sampleBundle()
	h1, err := b.Hash()
	require.NoError(t, err)

	// CreatedAt is outside the hash.
	b.CreatedAt = b.CreatedAt.Add(time.Hour)
	h2, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	// Step order is canonicalized.
	b.Steps[0], b.Steps[1] = b.Steps[1], b.Steps[0]
	h3, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h3)

	// Output changes change the hash.
	b.Steps[0].OutputSHA256 = "changed"
	h4, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h4)
}

func TestBundleRoundTrip(t *testing.T) {
	b := sampleBundle()
	payload, err := b.Marshal()
	require.NoError(t, err)

	parsed, err := ParseBundle(payload)
	require.NoError(t, err)
	assert.Equal(t, b.RunID, parsed.RunID)
	assert.Len(t, parsed.Steps, 2)
}

func TestVerify(t *testing.T) {
	orig := sampleBundle()
	replayed := sampleBundle()

	divergences, ok := Verify(orig, replayed)
	assert.True(t, ok)
	assert.Empty(t, divergences)

	replayed.Steps[0].OutputSHA256 = "drifted"
	divergences, ok = Verify(orig, replayed)
	assert.False(t, ok)
	require.Len(t, divergences, 1)
	assert.Equal(t, "step-2", divergences[0].StepID)

	// A missing step is a divergence too.
	replayed = &Bundle{RunID: "run-1", Steps: orig.Steps[:1]}
	_, ok = Verify(orig, replayed)
	assert.False(t, ok)
}
