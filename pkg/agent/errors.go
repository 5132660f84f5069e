package agent

import (
	"errors"
	"fmt"

	"github.com/forgeworks/metabuild/pkg/config"
)

// ErrorKind is the closed set of failure conditions an agent may signal.
type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "invalid_input"
	KindModelUnavailable ErrorKind = "model_unavailable"
	KindContextOverflow  ErrorKind = "context_overflow"
	KindToolDenied       ErrorKind = "tool_denied"
	KindTimeout          ErrorKind = "timeout"
	KindInternal         ErrorKind = "internal"
)

// Error is a typed agent failure. The orchestrator classifies it into a
// Failure row via FailureClass.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error

	// Class overrides the default kind→class mapping when the underlying
	// provider reported something more specific (e.g. rate limiting).
	Class config.FailureClass
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError creates a typed agent error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a typed agent error around a cause.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// FailureClass maps the agent error kind onto the failure taxonomy:
//
//	ModelUnavailable → infra        (retryable, bounded)
//	Timeout          → transient    (retryable with backoff)
//	ContextOverflow  → runtime      (architectural; replan territory)
//	ToolDenied       → policy       (never auto-recovered)
//	InvalidInput     → policy       (fails the run immediately)
//	Internal         → unknown
func (e *Error) FailureClass() config.FailureClass {
	if e.Class != "" {
		return e.Class
	}
	switch e.Kind {
	case KindModelUnavailable:
		return config.FailureInfra
	case KindTimeout:
		return config.FailureTransient
	case KindContextOverflow:
		return config.FailureRuntime
	case KindToolDenied, KindInvalidInput:
		return config.FailurePolicy
	default:
		return config.FailureUnknown
	}
}

// AsError extracts a typed agent error, wrapping untyped ones as Internal.
func AsError(err error) *Error {
	var agentErr *Error
	if errors.As(err, &agentErr) {
		return agentErr
	}
	return WrapError(KindInternal, "untyped agent failure", err)
}

// IsInvalidInput reports whether the error signals unusable input, which
// fails the run without entering the repair ladder.
func IsInvalidInput(err error) bool {
	var agentErr *Error
	return errors.As(err, &agentErr) && agentErr.Kind == KindInvalidInput
}
