package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/forgeworks/metabuild/pkg/config"
	llmv1 "github.com/forgeworks/metabuild/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCLLMClient implements LLMClient against the external LLM service.
// The wire protocol streams; Complete aggregates the stream into one
// result.
type GRPCLLMClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCLLMClient creates a new gRPC LLM client.
func NewGRPCLLMClient(addr string) (*GRPCLLMClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCLLMClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete implements LLMClient.
func (c *GRPCLLMClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	stream, err := c.client.Generate(ctx, &llmv1.GenerateRequest{
		RunId:        req.RunID,
		StepId:       req.StepID,
		Model:        req.Model,
		SystemPrompt: req.SystemPrompt,
		Prompt:       req.Prompt,
		MaxTokens:    int32(req.MaxTokens),
		Temperature:  req.Temperature,
	})
	if err != nil {
		return nil, WrapError(KindModelUnavailable, "gRPC Generate call failed", err)
	}

	var text strings.Builder
	result := &CompletionResult{}

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, WrapError(KindTimeout, "LLM stream deadline exceeded", err)
			}
			return nil, WrapError(KindModelUnavailable, "LLM stream broken", err)
		}

		switch content := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			text.WriteString(content.Text.Content)
		case *llmv1.GenerateResponse_Usage:
			result.TokensIn = int(content.Usage.InputTokens)
			result.TokensOut = int(content.Usage.OutputTokens)
		case *llmv1.GenerateResponse_Error:
			return nil, providerError(content.Error)
		}
	}

	result.Text = text.String()
	return result, nil
}

// Close releases the gRPC connection.
func (c *GRPCLLMClient) Close() error {
	return c.conn.Close()
}

// providerError maps a typed provider error from the stream onto the
// agent error taxonomy.
func providerError(e *llmv1.Error) *Error {
	agentErr := NewError(KindInternal, e.Message)
	switch e.Code {
	case "invalid_input":
		agentErr.Kind = KindInvalidInput
	case "model_unavailable":
		agentErr.Kind = KindModelUnavailable
	case "rate_limit":
		agentErr.Kind = KindModelUnavailable
		agentErr.Class = config.FailureRateLimit
	case "context_overflow":
		agentErr.Kind = KindContextOverflow
	case "timeout":
		agentErr.Kind = KindTimeout
	}
	return agentErr
}
