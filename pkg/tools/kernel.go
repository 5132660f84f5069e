// Package tools provides the narrow tool kernel the evaluator and agents
// use for side-effecting probes (HTTP checks, DB invariants, UI smoke).
// Every invocation passes through an allowlist policy; a denied call is a
// typed error the caller maps to a ToolDenied failure.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/forgeworks/metabuild/pkg/masking"
)

// Sentinel errors for kernel operations.
var (
	// ErrDenied indicates the policy refused the invocation.
	ErrDenied = errors.New("tool invocation denied by policy")

	// ErrUnknownTool indicates no tool is registered under the name.
	ErrUnknownTool = errors.New("unknown tool")
)

// Policy carries the allowlists enforced on every invocation.
type Policy struct {
	// AllowedTools are the tool names this caller may invoke.
	// Empty denies everything.
	AllowedTools []string

	// AllowedDomains restricts HTTP-class tools to these host suffixes.
	AllowedDomains []string

	// AllowedPaths restricts file-class tools to these path prefixes.
	AllowedPaths []string
}

// PermitsTool reports whether the policy allows invoking the named tool.
func (p Policy) PermitsTool(name string) bool {
	for _, t := range p.AllowedTools {
		if t == name {
			return true
		}
	}
	return false
}

// PermitsDomain reports whether the policy allows the HTTP host.
func (p Policy) PermitsDomain(host string) bool {
	for _, d := range p.AllowedDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// PermitsPath reports whether the policy allows the file path.
func (p Policy) PermitsPath(path string) bool {
	for _, prefix := range p.AllowedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Invocation is one tool call.
type Invocation struct {
	// Tool is the versioned tool name, e.g. "http_probe@v1".
	Tool string

	// Args are the tool-specific arguments.
	Args map[string]any
}

// Result is the output of one tool call.
type Result struct {
	// Output is the tool's raw output.
	Output []byte

	// IsError marks tool-level failure (the tool ran and reported failure,
	// as opposed to a kernel error).
	IsError bool
}

// Kernel is the narrow contract agents and the evaluator depend on.
type Kernel interface {
	// Invoke runs a tool under the policy. Returns ErrDenied when the
	// policy refuses the call and ErrUnknownTool for unregistered names.
	Invoke(ctx context.Context, inv Invocation, policy Policy) (*Result, error)
}

// ToolFunc is a registered tool implementation. The policy is passed
// through so tools with domain/path reach can enforce their own checks.
type ToolFunc func(ctx context.Context, args map[string]any, policy Policy) (*Result, error)

// LocalKernel dispatches invocations to in-process tool functions.
// Tool outputs are secret-masked before they reach the caller.
type LocalKernel struct {
	mu     sync.RWMutex
	tools  map[string]ToolFunc
	masker *masking.Service
}

// NewLocalKernel creates an empty kernel. masker may be nil (masking disabled).
func NewLocalKernel(masker *masking.Service) *LocalKernel {
	return &LocalKernel{
		tools:  make(map[string]ToolFunc),
		masker: masker,
	}
}

// Register adds a tool under a versioned name, replacing any previous
// registration.
func (k *LocalKernel) Register(name string, fn ToolFunc) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.tools[name] = fn
}

// Invoke implements Kernel.
func (k *LocalKernel) Invoke(ctx context.Context, inv Invocation, policy Policy) (*Result, error) {
	if !policy.PermitsTool(inv.Tool) {
		slog.Warn("Tool invocation denied", "tool", inv.Tool)
		return nil, fmt.Errorf("%w: %s", ErrDenied, inv.Tool)
	}

	k.mu.RLock()
	fn, ok := k.tools[inv.Tool]
	k.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, inv.Tool)
	}

	result, err := fn(ctx, inv.Args, policy)
	if err != nil {
		return nil, fmt.Errorf("tool %s failed: %w", inv.Tool, err)
	}

	if k.masker != nil && result != nil {
		result.Output = k.masker.MaskBytes(result.Output)
	}
	return result, nil
}
