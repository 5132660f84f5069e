// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/blob"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/buildspec"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
	"github.com/forgeworks/metabuild/ent/event"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/schema"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/ent/timelineevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalgateFields := schema.ApprovalGate{}.Fields()
	_ = approvalgateFields
	// approvalgateDescCreatedAt is the schema descriptor for created_at field.
	approvalgateDescCreatedAt := approvalgateFields[8].Descriptor()
	// approvalgate.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalgate.DefaultCreatedAt = approvalgateDescCreatedAt.Default.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[8].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	blobFields := schema.Blob{}.Fields()
	_ = blobFields
	// blobDescCreatedAt is the schema descriptor for created_at field.
	blobDescCreatedAt := blobFields[4].Descriptor()
	// blob.DefaultCreatedAt holds the default value on creation for the created_at field.
	blob.DefaultCreatedAt = blobDescCreatedAt.Default.(func() time.Time)
	budgetFields := schema.Budget{}.Fields()
	_ = budgetFields
	// budgetDescCostUsedUsd is the schema descriptor for cost_used_usd field.
	budgetDescCostUsedUsd := budgetFields[4].Descriptor()
	// budget.DefaultCostUsedUsd holds the default value on creation for the cost_used_usd field.
	budget.DefaultCostUsedUsd = budgetDescCostUsedUsd.Default.(float64)
	// budgetDescTimeUsedS is the schema descriptor for time_used_s field.
	budgetDescTimeUsedS := budgetFields[6].Descriptor()
	// budget.DefaultTimeUsedS holds the default value on creation for the time_used_s field.
	budget.DefaultTimeUsedS = budgetDescTimeUsedS.Default.(int)
	// budgetDescAttemptUsed is the schema descriptor for attempt_used field.
	budgetDescAttemptUsed := budgetFields[8].Descriptor()
	// budget.DefaultAttemptUsed holds the default value on creation for the attempt_used field.
	budget.DefaultAttemptUsed = budgetDescAttemptUsed.Default.(int)
	buildspecFields := schema.BuildSpec{}.Fields()
	_ = buildspecFields
	// buildspecDescReviewRequired is the schema descriptor for review_required field.
	buildspecDescReviewRequired := buildspecFields[5].Descriptor()
	// buildspec.DefaultReviewRequired holds the default value on creation for the review_required field.
	buildspec.DefaultReviewRequired = buildspecDescReviewRequired.Default.(bool)
	// buildspecDescCreatedAt is the schema descriptor for created_at field.
	buildspecDescCreatedAt := buildspecFields[13].Descriptor()
	// buildspec.DefaultCreatedAt holds the default value on creation for the created_at field.
	buildspec.DefaultCreatedAt = buildspecDescCreatedAt.Default.(func() time.Time)
	canarysampleFields := schema.CanarySample{}.Fields()
	_ = canarysampleFields
	// canarysampleDescRecordedAt is the schema descriptor for recorded_at field.
	canarysampleDescRecordedAt := canarysampleFields[10].Descriptor()
	// canarysample.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	canarysample.DefaultRecordedAt = canarysampleDescRecordedAt.Default.(func() time.Time)
	circuitbreakerFields := schema.CircuitBreaker{}.Fields()
	_ = circuitbreakerFields
	// circuitbreakerDescFailCount is the schema descriptor for fail_count field.
	circuitbreakerDescFailCount := circuitbreakerFields[4].Descriptor()
	// circuitbreaker.DefaultFailCount holds the default value on creation for the fail_count field.
	circuitbreaker.DefaultFailCount = circuitbreakerDescFailCount.Default.(int)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	failureFields := schema.Failure{}.Fields()
	_ = failureFields
	// failureDescRequiresReplan is the schema descriptor for requires_replan field.
	failureDescRequiresReplan := failureFields[8].Descriptor()
	// failure.DefaultRequiresReplan holds the default value on creation for the requires_replan field.
	failure.DefaultRequiresReplan = failureDescRequiresReplan.Default.(bool)
	// failureDescRequiresHuman is the schema descriptor for requires_human field.
	failureDescRequiresHuman := failureFields[9].Descriptor()
	// failure.DefaultRequiresHuman holds the default value on creation for the requires_human field.
	failure.DefaultRequiresHuman = failureDescRequiresHuman.Default.(bool)
	// failureDescCreatedAt is the schema descriptor for created_at field.
	failureDescCreatedAt := failureFields[10].Descriptor()
	// failure.DefaultCreatedAt holds the default value on creation for the created_at field.
	failure.DefaultCreatedAt = failureDescCreatedAt.Default.(func() time.Time)
	queueleaseFields := schema.QueueLease{}.Fields()
	_ = queueleaseFields
	// queueleaseDescAcquiredAt is the schema descriptor for acquired_at field.
	queueleaseDescAcquiredAt := queueleaseFields[5].Descriptor()
	// queuelease.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	queuelease.DefaultAcquiredAt = queueleaseDescAcquiredAt.Default.(func() time.Time)
	repairattemptFields := schema.RepairAttempt{}.Fields()
	_ = repairattemptFields
	// repairattemptDescBackoffUsedMs is the schema descriptor for backoff_used_ms field.
	repairattemptDescBackoffUsedMs := repairattemptFields[7].Descriptor()
	// repairattempt.DefaultBackoffUsedMs holds the default value on creation for the backoff_used_ms field.
	repairattempt.DefaultBackoffUsedMs = repairattemptDescBackoffUsedMs.Default.(int)
	// repairattemptDescCreatedAt is the schema descriptor for created_at field.
	repairattemptDescCreatedAt := repairattemptFields[9].Descriptor()
	// repairattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	repairattempt.DefaultCreatedAt = repairattemptDescCreatedAt.Default.(func() time.Time)
	replaybundleFields := schema.ReplayBundle{}.Fields()
	_ = replaybundleFields
	// replaybundleDescCreatedAt is the schema descriptor for created_at field.
	replaybundleDescCreatedAt := replaybundleFields[6].Descriptor()
	// replaybundle.DefaultCreatedAt holds the default value on creation for the created_at field.
	replaybundle.DefaultCreatedAt = replaybundleDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescIteration is the schema descriptor for iteration field.
	runDescIteration := runFields[4].Descriptor()
	// run.DefaultIteration holds the default value on creation for the iteration field.
	run.DefaultIteration = runDescIteration.Default.(int)
	// runDescTokensUsed is the schema descriptor for tokens_used field.
	runDescTokensUsed := runFields[5].Descriptor()
	// run.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	run.DefaultTokensUsed = runDescTokensUsed.Default.(int)
	// runDescCostUsedUsd is the schema descriptor for cost_used_usd field.
	runDescCostUsedUsd := runFields[6].Descriptor()
	// run.DefaultCostUsedUsd holds the default value on creation for the cost_used_usd field.
	run.DefaultCostUsedUsd = runDescCostUsedUsd.Default.(float64)
	// runDescPatchStreak is the schema descriptor for patch_streak field.
	runDescPatchStreak := runFields[11].Descriptor()
	// run.DefaultPatchStreak holds the default value on creation for the patch_streak field.
	run.DefaultPatchStreak = runDescPatchStreak.Default.(int)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[13].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescPriority is the schema descriptor for priority field.
	stepDescPriority := stepFields[6].Descriptor()
	// step.DefaultPriority holds the default value on creation for the priority field.
	step.DefaultPriority = stepDescPriority.Default.(int)
	// stepDescAttempts is the schema descriptor for attempts field.
	stepDescAttempts := stepFields[12].Descriptor()
	// step.DefaultAttempts holds the default value on creation for the attempts field.
	step.DefaultAttempts = stepDescAttempts.Default.(int)
	// stepDescEstCostUsd is the schema descriptor for est_cost_usd field.
	stepDescEstCostUsd := stepFields[14].Descriptor()
	// step.DefaultEstCostUsd holds the default value on creation for the est_cost_usd field.
	step.DefaultEstCostUsd = stepDescEstCostUsd.Default.(float64)
	// stepDescTokensIn is the schema descriptor for tokens_in field.
	stepDescTokensIn := stepFields[15].Descriptor()
	// step.DefaultTokensIn holds the default value on creation for the tokens_in field.
	step.DefaultTokensIn = stepDescTokensIn.Default.(int)
	// stepDescTokensOut is the schema descriptor for tokens_out field.
	stepDescTokensOut := stepFields[16].Descriptor()
	// step.DefaultTokensOut holds the default value on creation for the tokens_out field.
	step.DefaultTokensOut = stepDescTokensOut.Default.(int)
	// stepDescCostUsd is the schema descriptor for cost_usd field.
	stepDescCostUsd := stepFields[17].Descriptor()
	// step.DefaultCostUsd holds the default value on creation for the cost_usd field.
	step.DefaultCostUsd = stepDescCostUsd.Default.(float64)
	// stepDescTombstoned is the schema descriptor for tombstoned field.
	stepDescTombstoned := stepFields[21].Descriptor()
	// step.DefaultTombstoned holds the default value on creation for the tombstoned field.
	step.DefaultTombstoned = stepDescTombstoned.Default.(bool)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[23].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	timelineeventFields := schema.TimelineEvent{}.Fields()
	_ = timelineeventFields
	// timelineeventDescCreatedAt is the schema descriptor for created_at field.
	timelineeventDescCreatedAt := timelineeventFields[7].Descriptor()
	// timelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineevent.DefaultCreatedAt = timelineeventDescCreatedAt.Default.(func() time.Time)
}
