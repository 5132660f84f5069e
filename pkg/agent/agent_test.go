package agent

import (
	"context"
	"testing"

	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLLM scripts Complete for tests.
type stubLLM struct {
	fn    func(req CompletionRequest) (*CompletionResult, error)
	calls []CompletionRequest
}

func (s *stubLLM) Complete(_ context.Context, req CompletionRequest) (*CompletionResult, error) {
	s.calls = append(s.calls, req)
	return s.fn(req)
}

func (s *stubLLM) Close() error { return nil }

func textResult(text string) func(CompletionRequest) (*CompletionResult, error) {
	return func(CompletionRequest) (*CompletionResult, error) {
		return &CompletionResult{Text: text, TokensIn: 100, TokensOut: 50}, nil
	}
}

func baseInput() *Input {
	return &Input{
		Tenant:    "default",
		RunID:     "run-1",
		StepID:    "step-1",
		Iteration: 1,
		Tier:      config.TierMedium,
		Source:    "Build a URL shortener with an HTTP API.",
		SourceKind: "text",
		Artifacts: map[string][]byte{},
	}
}

func TestInputDigestStability(t *testing.T) {
	in := baseInput()
	in.Artifacts[ArtifactPlan] = []byte(`{"modules":[]}`)

	d1 := in.Digest()
	assert.Len(t, d1, 64)
	assert.Equal(t, d1, in.Digest())

	// Identifiers are excluded: a retry under a new step id hashes the same.
	in.StepID = "step-2"
	in.RunID = "run-2"
	assert.Equal(t, d1, in.Digest())

	// Content changes the digest.
	in.Artifacts[ArtifactPlan] = []byte(`{"modules":["api"]}`)
	assert.NotEqual(t, d1, in.Digest())

	// Model params change the digest.
	in.Artifacts[ArtifactPlan] = []byte(`{"modules":[]}`)
	in.Tier = config.TierLarge
	assert.NotEqual(t, d1, in.Digest())
}

func TestProductArchitect(t *testing.T) {
	llm := &stubLLM{fn: textResult(`{"entities":["url"],"workflows":["shorten"],"acceptance":[]}`)}
	architect := NewProductArchitect(llm, config.DefaultLLMConfig())

	out, err := architect.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	assert.Contains(t, string(out.Payload), "entities")
	assert.Equal(t, 100, out.TokensIn)
	assert.Equal(t, 50, out.TokensOut)
	assert.Greater(t, out.CostUSD, 0.0)
	assert.NotEmpty(t, out.Trace.Prompt)

	// Tier config resolves the model.
	require.Len(t, llm.calls, 1)
	assert.Equal(t, "medium-latest", llm.calls[0].Model)
}

func TestProductArchitectRejectsEmptySource(t *testing.T) {
	llm := &stubLLM{fn: textResult("unused")}
	architect := NewProductArchitect(llm, config.DefaultLLMConfig())

	in := baseInput()
	in.Source = "   "
	_, err := architect.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Empty(t, llm.calls)
}

func TestCodegenRequiresPlan(t *testing.T) {
	llm := &stubLLM{fn: textResult("diff")}
	codegen := NewCodegenEngineer(llm, config.DefaultLLMConfig())

	_, err := codegen.Execute(context.Background(), baseInput())
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestAutoFixerRequiresAllowlist(t *testing.T) {
	llm := &stubLLM{fn: textResult("diff")}
	fixer := NewAutoFixer(llm, config.DefaultLLMConfig())

	in := baseInput()
	in.Artifacts[ArtifactDiff] = []byte(sampleDiff)
	_, err := fixer.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	in.WriteAllowlist = []string{"internal/"}
	in.FailureClass = config.FailureTestAssert
	in.FailureExcerpt = "want 200, got 500"
	out, err := fixer.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, out.Trace.Prompt, "internal/")
	assert.Contains(t, out.Trace.Prompt, "want 200, got 500")
}

func TestAgentErrorClassification(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want config.FailureClass
	}{
		{KindModelUnavailable, config.FailureInfra},
		{KindTimeout, config.FailureTransient},
		{KindContextOverflow, config.FailureRuntime},
		{KindToolDenied, config.FailurePolicy},
		{KindInvalidInput, config.FailurePolicy},
		{KindInternal, config.FailureUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewError(tt.kind, "x").FailureClass(), string(tt.kind))
	}

	// A provider-specific class override wins.
	err := NewError(KindModelUnavailable, "429")
	err.Class = config.FailureRateLimit
	assert.Equal(t, config.FailureRateLimit, err.FailureClass())

	// Untyped errors wrap as Internal.
	wrapped := AsError(assert.AnError)
	assert.Equal(t, KindInternal, wrapped.Kind)
	assert.ErrorIs(t, wrapped, assert.AnError)
}
