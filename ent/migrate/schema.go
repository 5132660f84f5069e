// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalGatesColumns holds the columns for the "approval_gates" table.
	ApprovalGatesColumns = []*schema.Column{
		{Name: "gate_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "required_role", Type: field.TypeString},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "decider", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// ApprovalGatesTable holds the schema information for the "approval_gates" table.
	ApprovalGatesTable = &schema.Table{
		Name:       "approval_gates",
		Columns:    ApprovalGatesColumns,
		PrimaryKey: []*schema.Column{ApprovalGatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_gates_runs_approval_gates",
				Columns:    []*schema.Column{ApprovalGatesColumns[8]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalgate_tenant",
				Unique:  false,
				Columns: []*schema.Column{ApprovalGatesColumns[1]},
			},
			{
				Name:    "approvalgate_run_id_decision",
				Unique:  false,
				Columns: []*schema.Column{ApprovalGatesColumns[8], ApprovalGatesColumns[4]},
			},
			{
				Name:    "approvalgate_decision_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalGatesColumns[4], ApprovalGatesColumns[7]},
			},
		},
	}
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"plan", "diff", "eval_report", "bundle_zip", "pr_body", "replay_bundle"}},
		{Name: "storage_ref", Type: field.TypeString},
		{Name: "sha256", Type: field.TypeString},
		{Name: "bytes", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_runs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[8]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_tenant",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[1]},
			},
			{
				Name:    "artifact_run_id_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[8], ArtifactsColumns[3], ArtifactsColumns[7]},
			},
		},
	}
	// BlobsColumns holds the columns for the "blobs" table.
	BlobsColumns = []*schema.Column{
		{Name: "sha256", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes},
		{Name: "size", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlobsTable holds the schema information for the "blobs" table.
	BlobsTable = &schema.Table{
		Name:       "blobs",
		Columns:    BlobsColumns,
		PrimaryKey: []*schema.Column{BlobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blob_tenant",
				Unique:  false,
				Columns: []*schema.Column{BlobsColumns[1]},
			},
		},
	}
	// BudgetsColumns holds the columns for the "budgets" table.
	BudgetsColumns = []*schema.Column{
		{Name: "budget_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "cost_limit_usd", Type: field.TypeFloat64},
		{Name: "cost_used_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "time_limit_s", Type: field.TypeInt},
		{Name: "time_used_s", Type: field.TypeInt, Default: 0},
		{Name: "attempt_limit", Type: field.TypeInt},
		{Name: "attempt_used", Type: field.TypeInt, Default: 0},
		{Name: "exceeded_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// BudgetsTable holds the schema information for the "budgets" table.
	BudgetsTable = &schema.Table{
		Name:       "budgets",
		Columns:    BudgetsColumns,
		PrimaryKey: []*schema.Column{BudgetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "budgets_runs_budget",
				Columns:    []*schema.Column{BudgetsColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "budget_tenant",
				Unique:  false,
				Columns: []*schema.Column{BudgetsColumns[1]},
			},
		},
	}
	// BuildSpecsColumns holds the columns for the "build_specs" table.
	BuildSpecsColumns = []*schema.Column{
		{Name: "spec_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Size: 2147483647},
		{Name: "source_kind", Type: field.TypeEnum, Enums: []string{"text", "dsl", "erd", "openapi", "csv"}, Default: "text"},
		{Name: "sla_class", Type: field.TypeEnum, Enums: []string{"fast", "normal", "thorough"}, Default: "normal"},
		{Name: "review_required", Type: field.TypeBool, Default: false},
		{Name: "max_iters", Type: field.TypeInt},
		{Name: "token_budget", Type: field.TypeInt},
		{Name: "cost_limit_usd", Type: field.TypeFloat64},
		{Name: "wall_time_s", Type: field.TypeInt},
		{Name: "acceptance", Type: field.TypeJSON, Nullable: true},
		{Name: "kpi_guards", Type: field.TypeJSON, Nullable: true},
		{Name: "domain_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BuildSpecsTable holds the schema information for the "build_specs" table.
	BuildSpecsTable = &schema.Table{
		Name:       "build_specs",
		Columns:    BuildSpecsColumns,
		PrimaryKey: []*schema.Column{BuildSpecsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "buildspec_tenant",
				Unique:  false,
				Columns: []*schema.Column{BuildSpecsColumns[1]},
			},
		},
	}
	// CanarySamplesColumns holds the columns for the "canary_samples" table.
	CanarySamplesColumns = []*schema.Column{
		{Name: "sample_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "group", Type: field.TypeEnum, Enums: []string{"control", "experimental"}},
		{Name: "success", Type: field.TypeBool},
		{Name: "cost_usd", Type: field.TypeFloat64},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "retry_count", Type: field.TypeInt},
		{Name: "replan_count", Type: field.TypeInt},
		{Name: "rollback_count", Type: field.TypeInt},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// CanarySamplesTable holds the schema information for the "canary_samples" table.
	CanarySamplesTable = &schema.Table{
		Name:       "canary_samples",
		Columns:    CanarySamplesColumns,
		PrimaryKey: []*schema.Column{CanarySamplesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "canary_samples_runs_canary_sample",
				Columns:    []*schema.Column{CanarySamplesColumns[10]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "canarysample_tenant",
				Unique:  false,
				Columns: []*schema.Column{CanarySamplesColumns[1]},
			},
			{
				Name:    "canarysample_group_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{CanarySamplesColumns[2], CanarySamplesColumns[9]},
			},
		},
	}
	// CircuitBreakersColumns holds the columns for the "circuit_breakers" table.
	CircuitBreakersColumns = []*schema.Column{
		{Name: "breaker_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "failure_class", Type: field.TypeEnum, Enums: []string{"transient", "infra", "test_assert", "lint", "type_check", "security", "policy", "runtime", "schema_migration", "rate_limit", "unknown"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"closed", "open", "half_open"}, Default: "closed"},
		{Name: "fail_count", Type: field.TypeInt, Default: 0},
		{Name: "threshold", Type: field.TypeInt},
		{Name: "window_start", Type: field.TypeTime, Nullable: true},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "cooldown_s", Type: field.TypeInt},
	}
	// CircuitBreakersTable holds the schema information for the "circuit_breakers" table.
	CircuitBreakersTable = &schema.Table{
		Name:       "circuit_breakers",
		Columns:    CircuitBreakersColumns,
		PrimaryKey: []*schema.Column{CircuitBreakersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "circuitbreaker_tenant_failure_class",
				Unique:  true,
				Columns: []*schema.Column{CircuitBreakersColumns[1], CircuitBreakersColumns[2]},
			},
			{
				Name:    "circuitbreaker_state",
				Unique:  false,
				Columns: []*schema.Column{CircuitBreakersColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_run_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[0]},
			},
		},
	}
	// FailuresColumns holds the columns for the "failures" table.
	FailuresColumns = []*schema.Column{
		{Name: "failure_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "class", Type: field.TypeEnum, Enums: []string{"transient", "infra", "test_assert", "lint", "type_check", "security", "policy", "runtime", "schema_migration", "rate_limit", "unknown"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "log_excerpt", Type: field.TypeString, Size: 2147483647},
		{Name: "retryable", Type: field.TypeBool},
		{Name: "requires_replan", Type: field.TypeBool, Default: false},
		{Name: "requires_human", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
	}
	// FailuresTable holds the schema information for the "failures" table.
	FailuresTable = &schema.Table{
		Name:       "failures",
		Columns:    FailuresColumns,
		PrimaryKey: []*schema.Column{FailuresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "failures_runs_failures",
				Columns:    []*schema.Column{FailuresColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "failures_steps_failures",
				Columns:    []*schema.Column{FailuresColumns[10]},
				RefColumns: []*schema.Column{StepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "failure_tenant_class_created_at",
				Unique:  false,
				Columns: []*schema.Column{FailuresColumns[1], FailuresColumns[2], FailuresColumns[8]},
			},
			{
				Name:    "failure_run_id",
				Unique:  false,
				Columns: []*schema.Column{FailuresColumns[9]},
			},
			{
				Name:    "failure_step_id",
				Unique:  false,
				Columns: []*schema.Column{FailuresColumns[10]},
			},
		},
	}
	// QueueLeasesColumns holds the columns for the "queue_leases" table.
	QueueLeasesColumns = []*schema.Column{
		{Name: "lease_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "worker_id", Type: field.TypeString},
		{Name: "queue", Type: field.TypeEnum, Enums: []string{"cpu", "io", "llm", "high", "low"}},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_heartbeat", Type: field.TypeTime},
		{Name: "step_id", Type: field.TypeString, Unique: true},
	}
	// QueueLeasesTable holds the schema information for the "queue_leases" table.
	QueueLeasesTable = &schema.Table{
		Name:       "queue_leases",
		Columns:    QueueLeasesColumns,
		PrimaryKey: []*schema.Column{QueueLeasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "queue_leases_steps_lease",
				Columns:    []*schema.Column{QueueLeasesColumns[7]},
				RefColumns: []*schema.Column{StepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "queuelease_tenant",
				Unique:  false,
				Columns: []*schema.Column{QueueLeasesColumns[1]},
			},
			{
				Name:    "queuelease_worker_id",
				Unique:  false,
				Columns: []*schema.Column{QueueLeasesColumns[2]},
			},
			{
				Name:    "queuelease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{QueueLeasesColumns[5]},
			},
		},
	}
	// RepairAttemptsColumns holds the columns for the "repair_attempts" table.
	RepairAttemptsColumns = []*schema.Column{
		{Name: "repair_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "failure_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"retry", "patch", "replan", "rollback"}},
		{Name: "strategy", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"pending", "succeeded", "failed"}, Default: "pending"},
		{Name: "backoff_used_ms", Type: field.TypeInt, Default: 0},
		{Name: "diff_ref", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RepairAttemptsTable holds the schema information for the "repair_attempts" table.
	RepairAttemptsTable = &schema.Table{
		Name:       "repair_attempts",
		Columns:    RepairAttemptsColumns,
		PrimaryKey: []*schema.Column{RepairAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "repair_attempts_runs_repair_attempts",
				Columns:    []*schema.Column{RepairAttemptsColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "repairattempt_tenant",
				Unique:  false,
				Columns: []*schema.Column{RepairAttemptsColumns[1]},
			},
			{
				Name:    "repairattempt_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RepairAttemptsColumns[9], RepairAttemptsColumns[8]},
			},
			{
				Name:    "repairattempt_failure_id",
				Unique:  false,
				Columns: []*schema.Column{RepairAttemptsColumns[2]},
			},
		},
	}
	// ReplayBundlesColumns holds the columns for the "replay_bundles" table.
	ReplayBundlesColumns = []*schema.Column{
		{Name: "bundle_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "bundle_hash", Type: field.TypeString},
		{Name: "storage_ref", Type: field.TypeString},
		{Name: "replayed_ok", Type: field.TypeBool, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// ReplayBundlesTable holds the schema information for the "replay_bundles" table.
	ReplayBundlesTable = &schema.Table{
		Name:       "replay_bundles",
		Columns:    ReplayBundlesColumns,
		PrimaryKey: []*schema.Column{ReplayBundlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "replay_bundles_runs_replay_bundle",
				Columns:    []*schema.Column{ReplayBundlesColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "replaybundle_tenant",
				Unique:  false,
				Columns: []*schema.Column{ReplayBundlesColumns[1]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "planning", "designing", "generating", "evaluating", "repairing", "rolling_back", "paused_awaiting_approval", "succeeded", "failed", "cancelled"}, Default: "draft"},
		{Name: "iteration", Type: field.TypeInt, Default: 1},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "cost_used_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "canary_group", Type: field.TypeEnum, Enums: []string{"control", "experimental"}, Default: "control"},
		{Name: "paused_state", Type: field.TypeString, Nullable: true},
		{Name: "last_green_iteration", Type: field.TypeInt, Nullable: true},
		{Name: "terminal_reason", Type: field.TypeString, Nullable: true},
		{Name: "patch_streak", Type: field.TypeInt, Default: 0},
		{Name: "replan_scope", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "spec_id", Type: field.TypeString},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_build_specs_runs",
				Columns:    []*schema.Column{RunsColumns[16]},
				RefColumns: []*schema.Column{BuildSpecsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_tenant",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_state",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[12]},
			},
			{
				Name:    "run_canary_group",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6]},
			},
			{
				Name:    "run_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "agent_role", Type: field.TypeEnum, Enums: []string{"product_architect", "system_designer", "security_compliance", "codegen_engineer", "qa_evaluator", "auto_fixer", "devops", "reviewer"}},
		{Name: "queue", Type: field.TypeEnum, Enums: []string{"cpu", "io", "llm", "high", "low"}},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"queued", "leased", "running", "succeeded", "failed", "skipped"}, Default: "queued"},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "input_digest", Type: field.TypeString},
		{Name: "input_ref", Type: field.TypeString},
		{Name: "output_ref", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "model_tier", Type: field.TypeEnum, Nullable: true, Enums: []string{"small", "medium", "large"}},
		{Name: "est_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "not_before", Type: field.TypeTime, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "tombstoned", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_runs_steps",
				Columns:    []*schema.Column{StepsColumns[25]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_tenant",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[1]},
			},
			{
				Name:    "step_run_id_iteration",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[25], StepsColumns[2]},
			},
			{
				Name:    "step_queue_state_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[4], StepsColumns[6], StepsColumns[5], StepsColumns[22]},
			},
			{
				Name:    "step_state_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[6], StepsColumns[18]},
			},
		},
	}
	// TimelineEventsColumns holds the columns for the "timeline_events" table.
	TimelineEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// TimelineEventsTable holds the schema information for the "timeline_events" table.
	TimelineEventsTable = &schema.Table{
		Name:       "timeline_events",
		Columns:    TimelineEventsColumns,
		PrimaryKey: []*schema.Column{TimelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "timeline_events_runs_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[7]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timelineevent_tenant",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[7], TimelineEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalGatesTable,
		ArtifactsTable,
		BlobsTable,
		BudgetsTable,
		BuildSpecsTable,
		CanarySamplesTable,
		CircuitBreakersTable,
		EventsTable,
		FailuresTable,
		QueueLeasesTable,
		RepairAttemptsTable,
		ReplayBundlesTable,
		RunsTable,
		StepsTable,
		TimelineEventsTable,
	}
)

func init() {
	ApprovalGatesTable.ForeignKeys[0].RefTable = RunsTable
	ArtifactsTable.ForeignKeys[0].RefTable = RunsTable
	BudgetsTable.ForeignKeys[0].RefTable = RunsTable
	CanarySamplesTable.ForeignKeys[0].RefTable = RunsTable
	FailuresTable.ForeignKeys[0].RefTable = RunsTable
	FailuresTable.ForeignKeys[1].RefTable = StepsTable
	QueueLeasesTable.ForeignKeys[0].RefTable = StepsTable
	RepairAttemptsTable.ForeignKeys[0].RefTable = RunsTable
	ReplayBundlesTable.ForeignKeys[0].RefTable = RunsTable
	RunsTable.ForeignKeys[0].RefTable = BuildSpecsTable
	StepsTable.ForeignKeys[0].RefTable = RunsTable
	TimelineEventsTable.ForeignKeys[0].RefTable = RunsTable
}
