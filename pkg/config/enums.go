package config

// SLAClass is the caller-declared latency/quality bucket driving scheduling
type SLAClass string

const (
	// SLAFast favors latency: small default tier, high-queue escalation
	SLAFast SLAClass = "fast"
	// SLANormal is the balanced default
	SLANormal SLAClass = "normal"
	// SLAThorough favors quality: large default tier, low-queue rollback work
	SLAThorough SLAClass = "thorough"
)

// IsValid checks if the SLA class is valid
func (s SLAClass) IsValid() bool {
	return s == SLAFast || s == SLANormal || s == SLAThorough
}

// ModelTier identifies a cost/quality bucket of LLM models
type ModelTier string

const (
	// TierSmall is cheap and fast
	TierSmall ModelTier = "small"
	// TierMedium is the balanced tier
	TierMedium ModelTier = "medium"
	// TierLarge is expensive, highest quality
	TierLarge ModelTier = "large"
)

// IsValid checks if the model tier is valid
func (t ModelTier) IsValid() bool {
	return t == TierSmall || t == TierMedium || t == TierLarge
}

// Upgrade returns the next tier up, capped at large.
func (t ModelTier) Upgrade() ModelTier {
	switch t {
	case TierSmall:
		return TierMedium
	case TierMedium:
		return TierLarge
	default:
		return TierLarge
	}
}

// Downgrade returns the next tier down, floored at small.
func (t ModelTier) Downgrade() ModelTier {
	switch t {
	case TierLarge:
		return TierMedium
	case TierMedium:
		return TierSmall
	default:
		return TierSmall
	}
}

// QueueClass identifies one of the independently scaled work queues
type QueueClass string

const (
	QueueCPU  QueueClass = "cpu"
	QueueIO   QueueClass = "io"
	QueueLLM  QueueClass = "llm"
	QueueHigh QueueClass = "high"
	QueueLow  QueueClass = "low"
)

// IsValid checks if the queue class is valid
func (q QueueClass) IsValid() bool {
	switch q {
	case QueueCPU, QueueIO, QueueLLM, QueueHigh, QueueLow:
		return true
	default:
		return false
	}
}

// AllQueueClasses returns every queue class in a stable order.
func AllQueueClasses() []QueueClass {
	return []QueueClass{QueueCPU, QueueIO, QueueLLM, QueueHigh, QueueLow}
}

// FailureClass is the closed taxonomy of step failure kinds
type FailureClass string

const (
	FailureTransient       FailureClass = "transient"
	FailureInfra           FailureClass = "infra"
	FailureTestAssert      FailureClass = "test_assert"
	FailureLint            FailureClass = "lint"
	FailureTypeCheck       FailureClass = "type_check"
	FailureSecurity        FailureClass = "security"
	FailurePolicy          FailureClass = "policy"
	FailureRuntime         FailureClass = "runtime"
	FailureSchemaMigration FailureClass = "schema_migration"
	FailureRateLimit       FailureClass = "rate_limit"
	FailureUnknown         FailureClass = "unknown"
)

// IsValid checks if the failure class is valid
func (c FailureClass) IsValid() bool {
	switch c {
	case FailureTransient, FailureInfra, FailureTestAssert, FailureLint,
		FailureTypeCheck, FailureSecurity, FailurePolicy, FailureRuntime,
		FailureSchemaMigration, FailureRateLimit, FailureUnknown:
		return true
	default:
		return false
	}
}

// Retryable reports whether the retry rung of the ladder applies at all.
func (c FailureClass) Retryable() bool {
	switch c {
	case FailureTransient, FailureRateLimit, FailureInfra, FailureRuntime, FailureUnknown:
		return true
	default:
		return false
	}
}

// Patchable reports whether the class can be handled by a constrained
// AutoFixer diff.
func (c FailureClass) Patchable() bool {
	switch c {
	case FailureLint, FailureTypeCheck, FailureTestAssert, FailureSchemaMigration:
		return true
	default:
		return false
	}
}

// RequiresHuman reports whether the class is never auto-recovered.
func (c FailureClass) RequiresHuman() bool {
	return c == FailureSecurity || c == FailurePolicy
}

// AllFailureClasses returns every failure class in a stable order.
func AllFailureClasses() []FailureClass {
	return []FailureClass{
		FailureTransient, FailureInfra, FailureTestAssert, FailureLint,
		FailureTypeCheck, FailureSecurity, FailurePolicy, FailureRuntime,
		FailureSchemaMigration, FailureRateLimit, FailureUnknown,
	}
}

// RepairPhase is one rung of the repair ladder
type RepairPhase string

const (
	PhaseRetry    RepairPhase = "retry"
	PhasePatch    RepairPhase = "patch"
	PhaseReplan   RepairPhase = "replan"
	PhaseRollback RepairPhase = "rollback"
)

// IsValid checks if the repair phase is valid
func (p RepairPhase) IsValid() bool {
	return p == PhaseRetry || p == PhasePatch || p == PhaseReplan || p == PhaseRollback
}

// CanaryGroup is the A/B assignment of a run
type CanaryGroup string

const (
	GroupControl      CanaryGroup = "control"
	GroupExperimental CanaryGroup = "experimental"
)

// IsValid checks if the canary group is valid
func (g CanaryGroup) IsValid() bool {
	return g == GroupControl || g == GroupExperimental
}
