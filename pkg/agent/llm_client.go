package agent

import (
	"context"
)

// LLMClient is the narrow contract to the external model service. One
// Complete call is one agent invocation's model exchange; streaming is an
// implementation detail of the transport.
type LLMClient interface {
	// Complete runs the prompt against the named model and returns the
	// aggregated result. Provider failures surface as typed *Error values
	// (ModelUnavailable, ContextOverflow, Timeout, ...).
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)

	// Close releases the transport.
	Close() error
}

// CompletionRequest is one model exchange.
type CompletionRequest struct {
	RunID  string
	StepID string

	// Model is the concrete model name resolved from the tier.
	Model string

	SystemPrompt string
	Prompt       string

	MaxTokens   int
	Temperature float64
}

// CompletionResult is the aggregated model output.
type CompletionResult struct {
	Text      string
	TokensIn  int
	TokensOut int

	// CostUSD is filled in by the caller from tier pricing; the transport
	// reports tokens only.
	CostUSD float64
}
