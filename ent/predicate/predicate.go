// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalGate is the predicate function for approvalgate builders.
type ApprovalGate func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Blob is the predicate function for blob builders.
type Blob func(*sql.Selector)

// Budget is the predicate function for budget builders.
type Budget func(*sql.Selector)

// BuildSpec is the predicate function for buildspec builders.
type BuildSpec func(*sql.Selector)

// CanarySample is the predicate function for canarysample builders.
type CanarySample func(*sql.Selector)

// CircuitBreaker is the predicate function for circuitbreaker builders.
type CircuitBreaker func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Failure is the predicate function for failure builders.
type Failure func(*sql.Selector)

// QueueLease is the predicate function for queuelease builders.
type QueueLease func(*sql.Selector)

// RepairAttempt is the predicate function for repairattempt builders.
type RepairAttempt func(*sql.Selector)

// ReplayBundle is the predicate function for replaybundle builders.
type ReplayBundle func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// TimelineEvent is the predicate function for timelineevent builders.
type TimelineEvent func(*sql.Selector)
