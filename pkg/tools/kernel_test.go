package tools

import (
	"context"
	"testing"

	"github.com/forgeworks/metabuild/pkg/masking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalKernelInvoke(t *testing.T) {
	kernel := NewLocalKernel(nil)
	kernel.Register("echo@v1", func(_ context.Context, args map[string]any, _ Policy) (*Result, error) {
		return &Result{Output: []byte(args["text"].(string))}, nil
	})

	policy := Policy{AllowedTools: []string{"echo@v1"}}

	result, err := kernel.Invoke(context.Background(), Invocation{
		Tool: "echo@v1",
		Args: map[string]any{"text": "hello"},
	}, policy)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(result.Output))
	assert.False(t, result.IsError)
}

func TestLocalKernelDeniesUnlistedTool(t *testing.T) {
	kernel := NewLocalKernel(nil)
	kernel.Register("echo@v1", func(_ context.Context, _ map[string]any, _ Policy) (*Result, error) {
		return &Result{}, nil
	})

	_, err := kernel.Invoke(context.Background(), Invocation{Tool: "echo@v1"}, Policy{})
	require.ErrorIs(t, err, ErrDenied)

	// A policy listing other tools still denies.
	_, err = kernel.Invoke(context.Background(), Invocation{Tool: "echo@v1"},
		Policy{AllowedTools: []string{"http_probe@v1"}})
	require.ErrorIs(t, err, ErrDenied)
}

func TestLocalKernelUnknownTool(t *testing.T) {
	kernel := NewLocalKernel(nil)
	_, err := kernel.Invoke(context.Background(), Invocation{Tool: "missing@v1"},
		Policy{AllowedTools: []string{"missing@v1"}})
	require.ErrorIs(t, err, ErrUnknownTool)
}

func TestLocalKernelMasksOutput(t *testing.T) {
	kernel := NewLocalKernel(masking.NewService())
	kernel.Register("dump@v1", func(_ context.Context, _ map[string]any, _ Policy) (*Result, error) {
		return &Result{Output: []byte(`api_key: "sk-1234567890abcdef1234"`)}, nil
	})

	result, err := kernel.Invoke(context.Background(), Invocation{Tool: "dump@v1"},
		Policy{AllowedTools: []string{"dump@v1"}})
	require.NoError(t, err)
	assert.NotContains(t, string(result.Output), "sk-1234567890abcdef1234")
}

func TestPolicyDomainAndPath(t *testing.T) {
	policy := Policy{
		AllowedDomains: []string{"example.com"},
		AllowedPaths:   []string{"internal/", "pkg/"},
	}

	assert.True(t, policy.PermitsDomain("example.com"))
	assert.True(t, policy.PermitsDomain("api.example.com"))
	assert.False(t, policy.PermitsDomain("evil-example.com"))

	assert.True(t, policy.PermitsPath("pkg/server/server.go"))
	assert.False(t, policy.PermitsPath("secrets/prod.env"))
}
