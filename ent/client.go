// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/forgeworks/metabuild/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/ent/timelineevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalGate is the client for interacting with the ApprovalGate builders.
	ApprovalGate *ApprovalGateClient
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// Blob is the client for interacting with the Blob builders.
	Blob *BlobClient
	// Budget is the client for interacting with the Budget builders.
	Budget *BudgetClient
	// BuildSpec is the client for interacting with the BuildSpec builders.
	BuildSpec *BuildSpecClient
	// CanarySample is the client for interacting with the CanarySample builders.
	CanarySample *CanarySampleClient
	// CircuitBreaker is the client for interacting with the CircuitBreaker builders.
	CircuitBreaker *CircuitBreakerClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Failure is the client for interacting with the Failure builders.
	Failure *FailureClient
	// QueueLease is the client for interacting with the QueueLease builders.
	QueueLease *QueueLeaseClient
	// RepairAttempt is the client for interacting with the RepairAttempt builders.
	RepairAttempt *RepairAttemptClient
	// ReplayBundle is the client for interacting with the ReplayBundle builders.
	ReplayBundle *ReplayBundleClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// Step is the client for interacting with the Step builders.
	Step *StepClient
	// TimelineEvent is the client for interacting with the TimelineEvent builders.
	TimelineEvent *TimelineEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalGate = NewApprovalGateClient(c.config)
	c.Artifact = NewArtifactClient(c.config)
	c.Blob = NewBlobClient(c.config)
	c.Budget = NewBudgetClient(c.config)
	c.BuildSpec = NewBuildSpecClient(c.config)
	c.CanarySample = NewCanarySampleClient(c.config)
	c.CircuitBreaker = NewCircuitBreakerClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Failure = NewFailureClient(c.config)
	c.QueueLease = NewQueueLeaseClient(c.config)
	c.RepairAttempt = NewRepairAttemptClient(c.config)
	c.ReplayBundle = NewReplayBundleClient(c.config)
	c.Run = NewRunClient(c.config)
	c.Step = NewStepClient(c.config)
	c.TimelineEvent = NewTimelineEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ApprovalGate:   NewApprovalGateClient(cfg),
		Artifact:       NewArtifactClient(cfg),
		Blob:           NewBlobClient(cfg),
		Budget:         NewBudgetClient(cfg),
		BuildSpec:      NewBuildSpecClient(cfg),
		CanarySample:   NewCanarySampleClient(cfg),
		CircuitBreaker: NewCircuitBreakerClient(cfg),
		Event:          NewEventClient(cfg),
		Failure:        NewFailureClient(cfg),
		QueueLease:     NewQueueLeaseClient(cfg),
		RepairAttempt:  NewRepairAttemptClient(cfg),
		ReplayBundle:   NewReplayBundleClient(cfg),
		Run:            NewRunClient(cfg),
		Step:           NewStepClient(cfg),
		TimelineEvent:  NewTimelineEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ApprovalGate:   NewApprovalGateClient(cfg),
		Artifact:       NewArtifactClient(cfg),
		Blob:           NewBlobClient(cfg),
		Budget:         NewBudgetClient(cfg),
		BuildSpec:      NewBuildSpecClient(cfg),
		CanarySample:   NewCanarySampleClient(cfg),
		CircuitBreaker: NewCircuitBreakerClient(cfg),
		Event:          NewEventClient(cfg),
		Failure:        NewFailureClient(cfg),
		QueueLease:     NewQueueLeaseClient(cfg),
		RepairAttempt:  NewRepairAttemptClient(cfg),
		ReplayBundle:   NewReplayBundleClient(cfg),
		Run:            NewRunClient(cfg),
		Step:           NewStepClient(cfg),
		TimelineEvent:  NewTimelineEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalGate.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ApprovalGate, c.Artifact, c.Blob, c.Budget, c.BuildSpec, c.CanarySample,
		c.CircuitBreaker, c.Event, c.Failure, c.QueueLease, c.RepairAttempt,
		c.ReplayBundle, c.Run, c.Step, c.TimelineEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovalGate, c.Artifact, c.Blob, c.Budget, c.BuildSpec, c.CanarySample,
		c.CircuitBreaker, c.Event, c.Failure, c.QueueLease, c.RepairAttempt,
		c.ReplayBundle, c.Run, c.Step, c.TimelineEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalGateMutation:
		return c.ApprovalGate.mutate(ctx, m)
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *BlobMutation:
		return c.Blob.mutate(ctx, m)
	case *BudgetMutation:
		return c.Budget.mutate(ctx, m)
	case *BuildSpecMutation:
		return c.BuildSpec.mutate(ctx, m)
	case *CanarySampleMutation:
		return c.CanarySample.mutate(ctx, m)
	case *CircuitBreakerMutation:
		return c.CircuitBreaker.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *FailureMutation:
		return c.Failure.mutate(ctx, m)
	case *QueueLeaseMutation:
		return c.QueueLease.mutate(ctx, m)
	case *RepairAttemptMutation:
		return c.RepairAttempt.mutate(ctx, m)
	case *ReplayBundleMutation:
		return c.ReplayBundle.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *StepMutation:
		return c.Step.mutate(ctx, m)
	case *TimelineEventMutation:
		return c.TimelineEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalGateClient is a client for the ApprovalGate schema.
type ApprovalGateClient struct {
	config
}

// NewApprovalGateClient returns a client for the ApprovalGate from the given config.
func NewApprovalGateClient(c config) *ApprovalGateClient {
	return &ApprovalGateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalgate.Hooks(f(g(h())))`.
func (c *ApprovalGateClient) Use(hooks ...Hook) {
	c.hooks.ApprovalGate = append(c.hooks.ApprovalGate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalgate.Intercept(f(g(h())))`.
func (c *ApprovalGateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalGate = append(c.inters.ApprovalGate, interceptors...)
}

// Create returns a builder for creating a ApprovalGate entity.
func (c *ApprovalGateClient) Create() *ApprovalGateCreate {
	mutation := newApprovalGateMutation(c.config, OpCreate)
	return &ApprovalGateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalGate entities.
func (c *ApprovalGateClient) CreateBulk(builders ...*ApprovalGateCreate) *ApprovalGateCreateBulk {
	return &ApprovalGateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalGateClient) MapCreateBulk(slice any, setFunc func(*ApprovalGateCreate, int)) *ApprovalGateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalGateCreateBulk{err: fmt.Errorf("calling to ApprovalGateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalGateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalGateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalGate.
func (c *ApprovalGateClient) Update() *ApprovalGateUpdate {
	mutation := newApprovalGateMutation(c.config, OpUpdate)
	return &ApprovalGateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalGateClient) UpdateOne(_m *ApprovalGate) *ApprovalGateUpdateOne {
	mutation := newApprovalGateMutation(c.config, OpUpdateOne, withApprovalGate(_m))
	return &ApprovalGateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalGateClient) UpdateOneID(id string) *ApprovalGateUpdateOne {
	mutation := newApprovalGateMutation(c.config, OpUpdateOne, withApprovalGateID(id))
	return &ApprovalGateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalGate.
func (c *ApprovalGateClient) Delete() *ApprovalGateDelete {
	mutation := newApprovalGateMutation(c.config, OpDelete)
	return &ApprovalGateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalGateClient) DeleteOne(_m *ApprovalGate) *ApprovalGateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalGateClient) DeleteOneID(id string) *ApprovalGateDeleteOne {
	builder := c.Delete().Where(approvalgate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalGateDeleteOne{builder}
}

// Query returns a query builder for ApprovalGate.
func (c *ApprovalGateClient) Query() *ApprovalGateQuery {
	return &ApprovalGateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalGate},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalGate entity by its id.
func (c *ApprovalGateClient) Get(ctx context.Context, id string) (*ApprovalGate, error) {
	return c.Query().Where(approvalgate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalGateClient) GetX(ctx context.Context, id string) *ApprovalGate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ApprovalGate.
func (c *ApprovalGateClient) QueryRun(_m *ApprovalGate) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalgate.Table, approvalgate.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approvalgate.RunTable, approvalgate.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalGateClient) Hooks() []Hook {
	return c.hooks.ApprovalGate
}

// Interceptors returns the client interceptors.
func (c *ApprovalGateClient) Interceptors() []Interceptor {
	return c.inters.ApprovalGate
}

func (c *ApprovalGateClient) mutate(ctx context.Context, m *ApprovalGateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalGateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalGateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalGateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalGateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalGate mutation op: %q", m.Op())
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Artifact.
func (c *ArtifactClient) QueryRun(_m *Artifact) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(artifact.Table, artifact.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, artifact.RunTable, artifact.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// BlobClient is a client for the Blob schema.
type BlobClient struct {
	config
}

// NewBlobClient returns a client for the Blob from the given config.
func NewBlobClient(c config) *BlobClient {
	return &BlobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blob.Hooks(f(g(h())))`.
func (c *BlobClient) Use(hooks ...Hook) {
	c.hooks.Blob = append(c.hooks.Blob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blob.Intercept(f(g(h())))`.
func (c *BlobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Blob = append(c.inters.Blob, interceptors...)
}

// Create returns a builder for creating a Blob entity.
func (c *BlobClient) Create() *BlobCreate {
	mutation := newBlobMutation(c.config, OpCreate)
	return &BlobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Blob entities.
func (c *BlobClient) CreateBulk(builders ...*BlobCreate) *BlobCreateBulk {
	return &BlobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlobClient) MapCreateBulk(slice any, setFunc func(*BlobCreate, int)) *BlobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlobCreateBulk{err: fmt.Errorf("calling to BlobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Blob.
func (c *BlobClient) Update() *BlobUpdate {
	mutation := newBlobMutation(c.config, OpUpdate)
	return &BlobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlobClient) UpdateOne(_m *Blob) *BlobUpdateOne {
	mutation := newBlobMutation(c.config, OpUpdateOne, withBlob(_m))
	return &BlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlobClient) UpdateOneID(id string) *BlobUpdateOne {
	mutation := newBlobMutation(c.config, OpUpdateOne, withBlobID(id))
	return &BlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Blob.
func (c *BlobClient) Delete() *BlobDelete {
	mutation := newBlobMutation(c.config, OpDelete)
	return &BlobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlobClient) DeleteOne(_m *Blob) *BlobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlobClient) DeleteOneID(id string) *BlobDeleteOne {
	builder := c.Delete().Where(blob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlobDeleteOne{builder}
}

// Query returns a query builder for Blob.
func (c *BlobClient) Query() *BlobQuery {
	return &BlobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlob},
		inters: c.Interceptors(),
	}
}

// Get returns a Blob entity by its id.
func (c *BlobClient) Get(ctx context.Context, id string) (*Blob, error) {
	return c.Query().Where(blob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlobClient) GetX(ctx context.Context, id string) *Blob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlobClient) Hooks() []Hook {
	return c.hooks.Blob
}

// Interceptors returns the client interceptors.
func (c *BlobClient) Interceptors() []Interceptor {
	return c.inters.Blob
}

func (c *BlobClient) mutate(ctx context.Context, m *BlobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Blob mutation op: %q", m.Op())
	}
}

// BudgetClient is a client for the Budget schema.
type BudgetClient struct {
	config
}

// NewBudgetClient returns a client for the Budget from the given config.
func NewBudgetClient(c config) *BudgetClient {
	return &BudgetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budget.Hooks(f(g(h())))`.
func (c *BudgetClient) Use(hooks ...Hook) {
	c.hooks.Budget = append(c.hooks.Budget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budget.Intercept(f(g(h())))`.
func (c *BudgetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Budget = append(c.inters.Budget, interceptors...)
}

// Create returns a builder for creating a Budget entity.
func (c *BudgetClient) Create() *BudgetCreate {
	mutation := newBudgetMutation(c.config, OpCreate)
	return &BudgetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Budget entities.
func (c *BudgetClient) CreateBulk(builders ...*BudgetCreate) *BudgetCreateBulk {
	return &BudgetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetClient) MapCreateBulk(slice any, setFunc func(*BudgetCreate, int)) *BudgetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetCreateBulk{err: fmt.Errorf("calling to BudgetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Budget.
func (c *BudgetClient) Update() *BudgetUpdate {
	mutation := newBudgetMutation(c.config, OpUpdate)
	return &BudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetClient) UpdateOne(_m *Budget) *BudgetUpdateOne {
	mutation := newBudgetMutation(c.config, OpUpdateOne, withBudget(_m))
	return &BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetClient) UpdateOneID(id string) *BudgetUpdateOne {
	mutation := newBudgetMutation(c.config, OpUpdateOne, withBudgetID(id))
	return &BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Budget.
func (c *BudgetClient) Delete() *BudgetDelete {
	mutation := newBudgetMutation(c.config, OpDelete)
	return &BudgetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetClient) DeleteOne(_m *Budget) *BudgetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetClient) DeleteOneID(id string) *BudgetDeleteOne {
	builder := c.Delete().Where(budget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetDeleteOne{builder}
}

// Query returns a query builder for Budget.
func (c *BudgetClient) Query() *BudgetQuery {
	return &BudgetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudget},
		inters: c.Interceptors(),
	}
}

// Get returns a Budget entity by its id.
func (c *BudgetClient) Get(ctx context.Context, id string) (*Budget, error) {
	return c.Query().Where(budget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetClient) GetX(ctx context.Context, id string) *Budget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Budget.
func (c *BudgetClient) QueryRun(_m *Budget) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(budget.Table, budget.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, budget.RunTable, budget.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BudgetClient) Hooks() []Hook {
	return c.hooks.Budget
}

// Interceptors returns the client interceptors.
func (c *BudgetClient) Interceptors() []Interceptor {
	return c.inters.Budget
}

func (c *BudgetClient) mutate(ctx context.Context, m *BudgetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Budget mutation op: %q", m.Op())
	}
}

// BuildSpecClient is a client for the BuildSpec schema.
type BuildSpecClient struct {
	config
}

// NewBuildSpecClient returns a client for the BuildSpec from the given config.
func NewBuildSpecClient(c config) *BuildSpecClient {
	return &BuildSpecClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `buildspec.Hooks(f(g(h())))`.
func (c *BuildSpecClient) Use(hooks ...Hook) {
	c.hooks.BuildSpec = append(c.hooks.BuildSpec, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `buildspec.Intercept(f(g(h())))`.
func (c *BuildSpecClient) Intercept(interceptors ...Interceptor) {
	c.inters.BuildSpec = append(c.inters.BuildSpec, interceptors...)
}

// Create returns a builder for creating a BuildSpec entity.
func (c *BuildSpecClient) Create() *BuildSpecCreate {
	mutation := newBuildSpecMutation(c.config, OpCreate)
	return &BuildSpecCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BuildSpec entities.
func (c *BuildSpecClient) CreateBulk(builders ...*BuildSpecCreate) *BuildSpecCreateBulk {
	return &BuildSpecCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuildSpecClient) MapCreateBulk(slice any, setFunc func(*BuildSpecCreate, int)) *BuildSpecCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuildSpecCreateBulk{err: fmt.Errorf("calling to BuildSpecClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuildSpecCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuildSpecCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BuildSpec.
func (c *BuildSpecClient) Update() *BuildSpecUpdate {
	mutation := newBuildSpecMutation(c.config, OpUpdate)
	return &BuildSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuildSpecClient) UpdateOne(_m *BuildSpec) *BuildSpecUpdateOne {
	mutation := newBuildSpecMutation(c.config, OpUpdateOne, withBuildSpec(_m))
	return &BuildSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuildSpecClient) UpdateOneID(id string) *BuildSpecUpdateOne {
	mutation := newBuildSpecMutation(c.config, OpUpdateOne, withBuildSpecID(id))
	return &BuildSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BuildSpec.
func (c *BuildSpecClient) Delete() *BuildSpecDelete {
	mutation := newBuildSpecMutation(c.config, OpDelete)
	return &BuildSpecDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuildSpecClient) DeleteOne(_m *BuildSpec) *BuildSpecDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuildSpecClient) DeleteOneID(id string) *BuildSpecDeleteOne {
	builder := c.Delete().Where(buildspec.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuildSpecDeleteOne{builder}
}

// Query returns a query builder for BuildSpec.
func (c *BuildSpecClient) Query() *BuildSpecQuery {
	return &BuildSpecQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuildSpec},
		inters: c.Interceptors(),
	}
}

// Get returns a BuildSpec entity by its id.
func (c *BuildSpecClient) Get(ctx context.Context, id string) (*BuildSpec, error) {
	return c.Query().Where(buildspec.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuildSpecClient) GetX(ctx context.Context, id string) *BuildSpec {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuns queries the runs edge of a BuildSpec.
func (c *BuildSpecClient) QueryRuns(_m *BuildSpec) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buildspec.Table, buildspec.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, buildspec.RunsTable, buildspec.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BuildSpecClient) Hooks() []Hook {
	return c.hooks.BuildSpec
}

// Interceptors returns the client interceptors.
func (c *BuildSpecClient) Interceptors() []Interceptor {
	return c.inters.BuildSpec
}

func (c *BuildSpecClient) mutate(ctx context.Context, m *BuildSpecMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuildSpecCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuildSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuildSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuildSpecDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BuildSpec mutation op: %q", m.Op())
	}
}

// CanarySampleClient is a client for the CanarySample schema.
type CanarySampleClient struct {
	config
}

// NewCanarySampleClient returns a client for the CanarySample from the given config.
func NewCanarySampleClient(c config) *CanarySampleClient {
	return &CanarySampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `canarysample.Hooks(f(g(h())))`.
func (c *CanarySampleClient) Use(hooks ...Hook) {
	c.hooks.CanarySample = append(c.hooks.CanarySample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `canarysample.Intercept(f(g(h())))`.
func (c *CanarySampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.CanarySample = append(c.inters.CanarySample, interceptors...)
}

// Create returns a builder for creating a CanarySample entity.
func (c *CanarySampleClient) Create() *CanarySampleCreate {
	mutation := newCanarySampleMutation(c.config, OpCreate)
	return &CanarySampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CanarySample entities.
func (c *CanarySampleClient) CreateBulk(builders ...*CanarySampleCreate) *CanarySampleCreateBulk {
	return &CanarySampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CanarySampleClient) MapCreateBulk(slice any, setFunc func(*CanarySampleCreate, int)) *CanarySampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CanarySampleCreateBulk{err: fmt.Errorf("calling to CanarySampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CanarySampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CanarySampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CanarySample.
func (c *CanarySampleClient) Update() *CanarySampleUpdate {
	mutation := newCanarySampleMutation(c.config, OpUpdate)
	return &CanarySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CanarySampleClient) UpdateOne(_m *CanarySample) *CanarySampleUpdateOne {
	mutation := newCanarySampleMutation(c.config, OpUpdateOne, withCanarySample(_m))
	return &CanarySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CanarySampleClient) UpdateOneID(id string) *CanarySampleUpdateOne {
	mutation := newCanarySampleMutation(c.config, OpUpdateOne, withCanarySampleID(id))
	return &CanarySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CanarySample.
func (c *CanarySampleClient) Delete() *CanarySampleDelete {
	mutation := newCanarySampleMutation(c.config, OpDelete)
	return &CanarySampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CanarySampleClient) DeleteOne(_m *CanarySample) *CanarySampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CanarySampleClient) DeleteOneID(id string) *CanarySampleDeleteOne {
	builder := c.Delete().Where(canarysample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CanarySampleDeleteOne{builder}
}

// Query returns a query builder for CanarySample.
func (c *CanarySampleClient) Query() *CanarySampleQuery {
	return &CanarySampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCanarySample},
		inters: c.Interceptors(),
	}
}

// Get returns a CanarySample entity by its id.
func (c *CanarySampleClient) Get(ctx context.Context, id string) (*CanarySample, error) {
	return c.Query().Where(canarysample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CanarySampleClient) GetX(ctx context.Context, id string) *CanarySample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a CanarySample.
func (c *CanarySampleClient) QueryRun(_m *CanarySample) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(canarysample.Table, canarysample.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, canarysample.RunTable, canarysample.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CanarySampleClient) Hooks() []Hook {
	return c.hooks.CanarySample
}

// Interceptors returns the client interceptors.
func (c *CanarySampleClient) Interceptors() []Interceptor {
	return c.inters.CanarySample
}

func (c *CanarySampleClient) mutate(ctx context.Context, m *CanarySampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CanarySampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CanarySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CanarySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CanarySampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CanarySample mutation op: %q", m.Op())
	}
}

// CircuitBreakerClient is a client for the CircuitBreaker schema.
type CircuitBreakerClient struct {
	config
}

// NewCircuitBreakerClient returns a client for the CircuitBreaker from the given config.
func NewCircuitBreakerClient(c config) *CircuitBreakerClient {
	return &CircuitBreakerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `circuitbreaker.Hooks(f(g(h())))`.
func (c *CircuitBreakerClient) Use(hooks ...Hook) {
	c.hooks.CircuitBreaker = append(c.hooks.CircuitBreaker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `circuitbreaker.Intercept(f(g(h())))`.
func (c *CircuitBreakerClient) Intercept(interceptors ...Interceptor) {
	c.inters.CircuitBreaker = append(c.inters.CircuitBreaker, interceptors...)
}

// Create returns a builder for creating a CircuitBreaker entity.
func (c *CircuitBreakerClient) Create() *CircuitBreakerCreate {
	mutation := newCircuitBreakerMutation(c.config, OpCreate)
	return &CircuitBreakerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CircuitBreaker entities.
func (c *CircuitBreakerClient) CreateBulk(builders ...*CircuitBreakerCreate) *CircuitBreakerCreateBulk {
	return &CircuitBreakerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CircuitBreakerClient) MapCreateBulk(slice any, setFunc func(*CircuitBreakerCreate, int)) *CircuitBreakerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CircuitBreakerCreateBulk{err: fmt.Errorf("calling to CircuitBreakerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CircuitBreakerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CircuitBreakerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CircuitBreaker.
func (c *CircuitBreakerClient) Update() *CircuitBreakerUpdate {
	mutation := newCircuitBreakerMutation(c.config, OpUpdate)
	return &CircuitBreakerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CircuitBreakerClient) UpdateOne(_m *CircuitBreaker) *CircuitBreakerUpdateOne {
	mutation := newCircuitBreakerMutation(c.config, OpUpdateOne, withCircuitBreaker(_m))
	return &CircuitBreakerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CircuitBreakerClient) UpdateOneID(id string) *CircuitBreakerUpdateOne {
	mutation := newCircuitBreakerMutation(c.config, OpUpdateOne, withCircuitBreakerID(id))
	return &CircuitBreakerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CircuitBreaker.
func (c *CircuitBreakerClient) Delete() *CircuitBreakerDelete {
	mutation := newCircuitBreakerMutation(c.config, OpDelete)
	return &CircuitBreakerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CircuitBreakerClient) DeleteOne(_m *CircuitBreaker) *CircuitBreakerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CircuitBreakerClient) DeleteOneID(id string) *CircuitBreakerDeleteOne {
	builder := c.Delete().Where(circuitbreaker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CircuitBreakerDeleteOne{builder}
}

// Query returns a query builder for CircuitBreaker.
func (c *CircuitBreakerClient) Query() *CircuitBreakerQuery {
	return &CircuitBreakerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCircuitBreaker},
		inters: c.Interceptors(),
	}
}

// Get returns a CircuitBreaker entity by its id.
func (c *CircuitBreakerClient) Get(ctx context.Context, id string) (*CircuitBreaker, error) {
	return c.Query().Where(circuitbreaker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CircuitBreakerClient) GetX(ctx context.Context, id string) *CircuitBreaker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CircuitBreakerClient) Hooks() []Hook {
	return c.hooks.CircuitBreaker
}

// Interceptors returns the client interceptors.
func (c *CircuitBreakerClient) Interceptors() []Interceptor {
	return c.inters.CircuitBreaker
}

func (c *CircuitBreakerClient) mutate(ctx context.Context, m *CircuitBreakerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CircuitBreakerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CircuitBreakerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CircuitBreakerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CircuitBreakerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CircuitBreaker mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int64) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int64) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int64) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int64) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// FailureClient is a client for the Failure schema.
type FailureClient struct {
	config
}

// NewFailureClient returns a client for the Failure from the given config.
func NewFailureClient(c config) *FailureClient {
	return &FailureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `failure.Hooks(f(g(h())))`.
func (c *FailureClient) Use(hooks ...Hook) {
	c.hooks.Failure = append(c.hooks.Failure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `failure.Intercept(f(g(h())))`.
func (c *FailureClient) Intercept(interceptors ...Interceptor) {
	c.inters.Failure = append(c.inters.Failure, interceptors...)
}

// Create returns a builder for creating a Failure entity.
func (c *FailureClient) Create() *FailureCreate {
	mutation := newFailureMutation(c.config, OpCreate)
	return &FailureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Failure entities.
func (c *FailureClient) CreateBulk(builders ...*FailureCreate) *FailureCreateBulk {
	return &FailureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FailureClient) MapCreateBulk(slice any, setFunc func(*FailureCreate, int)) *FailureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FailureCreateBulk{err: fmt.Errorf("calling to FailureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FailureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FailureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Failure.
func (c *FailureClient) Update() *FailureUpdate {
	mutation := newFailureMutation(c.config, OpUpdate)
	return &FailureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FailureClient) UpdateOne(_m *Failure) *FailureUpdateOne {
	mutation := newFailureMutation(c.config, OpUpdateOne, withFailure(_m))
	return &FailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FailureClient) UpdateOneID(id string) *FailureUpdateOne {
	mutation := newFailureMutation(c.config, OpUpdateOne, withFailureID(id))
	return &FailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Failure.
func (c *FailureClient) Delete() *FailureDelete {
	mutation := newFailureMutation(c.config, OpDelete)
	return &FailureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FailureClient) DeleteOne(_m *Failure) *FailureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FailureClient) DeleteOneID(id string) *FailureDeleteOne {
	builder := c.Delete().Where(failure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FailureDeleteOne{builder}
}

// Query returns a query builder for Failure.
func (c *FailureClient) Query() *FailureQuery {
	return &FailureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFailure},
		inters: c.Interceptors(),
	}
}

// Get returns a Failure entity by its id.
func (c *FailureClient) Get(ctx context.Context, id string) (*Failure, error) {
	return c.Query().Where(failure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FailureClient) GetX(ctx context.Context, id string) *Failure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Failure.
func (c *FailureClient) QueryRun(_m *Failure) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(failure.Table, failure.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, failure.RunTable, failure.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStep queries the step edge of a Failure.
func (c *FailureClient) QueryStep(_m *Failure) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(failure.Table, failure.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, failure.StepTable, failure.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FailureClient) Hooks() []Hook {
	return c.hooks.Failure
}

// Interceptors returns the client interceptors.
func (c *FailureClient) Interceptors() []Interceptor {
	return c.inters.Failure
}

func (c *FailureClient) mutate(ctx context.Context, m *FailureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FailureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FailureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FailureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Failure mutation op: %q", m.Op())
	}
}

// QueueLeaseClient is a client for the QueueLease schema.
type QueueLeaseClient struct {
	config
}

// NewQueueLeaseClient returns a client for the QueueLease from the given config.
func NewQueueLeaseClient(c config) *QueueLeaseClient {
	return &QueueLeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuelease.Hooks(f(g(h())))`.
func (c *QueueLeaseClient) Use(hooks ...Hook) {
	c.hooks.QueueLease = append(c.hooks.QueueLease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuelease.Intercept(f(g(h())))`.
func (c *QueueLeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueLease = append(c.inters.QueueLease, interceptors...)
}

// Create returns a builder for creating a QueueLease entity.
func (c *QueueLeaseClient) Create() *QueueLeaseCreate {
	mutation := newQueueLeaseMutation(c.config, OpCreate)
	return &QueueLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueLease entities.
func (c *QueueLeaseClient) CreateBulk(builders ...*QueueLeaseCreate) *QueueLeaseCreateBulk {
	return &QueueLeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueLeaseClient) MapCreateBulk(slice any, setFunc func(*QueueLeaseCreate, int)) *QueueLeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueLeaseCreateBulk{err: fmt.Errorf("calling to QueueLeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueLeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueLeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueLease.
func (c *QueueLeaseClient) Update() *QueueLeaseUpdate {
	mutation := newQueueLeaseMutation(c.config, OpUpdate)
	return &QueueLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueLeaseClient) UpdateOne(_m *QueueLease) *QueueLeaseUpdateOne {
	mutation := newQueueLeaseMutation(c.config, OpUpdateOne, withQueueLease(_m))
	return &QueueLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueLeaseClient) UpdateOneID(id string) *QueueLeaseUpdateOne {
	mutation := newQueueLeaseMutation(c.config, OpUpdateOne, withQueueLeaseID(id))
	return &QueueLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueLease.
func (c *QueueLeaseClient) Delete() *QueueLeaseDelete {
	mutation := newQueueLeaseMutation(c.config, OpDelete)
	return &QueueLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueLeaseClient) DeleteOne(_m *QueueLease) *QueueLeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueLeaseClient) DeleteOneID(id string) *QueueLeaseDeleteOne {
	builder := c.Delete().Where(queuelease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueLeaseDeleteOne{builder}
}

// Query returns a query builder for QueueLease.
func (c *QueueLeaseClient) Query() *QueueLeaseQuery {
	return &QueueLeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueLease},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueLease entity by its id.
func (c *QueueLeaseClient) Get(ctx context.Context, id string) (*QueueLease, error) {
	return c.Query().Where(queuelease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueLeaseClient) GetX(ctx context.Context, id string) *QueueLease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStep queries the step edge of a QueueLease.
func (c *QueueLeaseClient) QueryStep(_m *QueueLease) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(queuelease.Table, queuelease.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, queuelease.StepTable, queuelease.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QueueLeaseClient) Hooks() []Hook {
	return c.hooks.QueueLease
}

// Interceptors returns the client interceptors.
func (c *QueueLeaseClient) Interceptors() []Interceptor {
	return c.inters.QueueLease
}

func (c *QueueLeaseClient) mutate(ctx context.Context, m *QueueLeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueLease mutation op: %q", m.Op())
	}
}

// RepairAttemptClient is a client for the RepairAttempt schema.
type RepairAttemptClient struct {
	config
}

// NewRepairAttemptClient returns a client for the RepairAttempt from the given config.
func NewRepairAttemptClient(c config) *RepairAttemptClient {
	return &RepairAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `repairattempt.Hooks(f(g(h())))`.
func (c *RepairAttemptClient) Use(hooks ...Hook) {
	c.hooks.RepairAttempt = append(c.hooks.RepairAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `repairattempt.Intercept(f(g(h())))`.
func (c *RepairAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.RepairAttempt = append(c.inters.RepairAttempt, interceptors...)
}

// Create returns a builder for creating a RepairAttempt entity.
func (c *RepairAttemptClient) Create() *RepairAttemptCreate {
	mutation := newRepairAttemptMutation(c.config, OpCreate)
	return &RepairAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RepairAttempt entities.
func (c *RepairAttemptClient) CreateBulk(builders ...*RepairAttemptCreate) *RepairAttemptCreateBulk {
	return &RepairAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RepairAttemptClient) MapCreateBulk(slice any, setFunc func(*RepairAttemptCreate, int)) *RepairAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RepairAttemptCreateBulk{err: fmt.Errorf("calling to RepairAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RepairAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RepairAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RepairAttempt.
func (c *RepairAttemptClient) Update() *RepairAttemptUpdate {
	mutation := newRepairAttemptMutation(c.config, OpUpdate)
	return &RepairAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RepairAttemptClient) UpdateOne(_m *RepairAttempt) *RepairAttemptUpdateOne {
	mutation := newRepairAttemptMutation(c.config, OpUpdateOne, withRepairAttempt(_m))
	return &RepairAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RepairAttemptClient) UpdateOneID(id string) *RepairAttemptUpdateOne {
	mutation := newRepairAttemptMutation(c.config, OpUpdateOne, withRepairAttemptID(id))
	return &RepairAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RepairAttempt.
func (c *RepairAttemptClient) Delete() *RepairAttemptDelete {
	mutation := newRepairAttemptMutation(c.config, OpDelete)
	return &RepairAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RepairAttemptClient) DeleteOne(_m *RepairAttempt) *RepairAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RepairAttemptClient) DeleteOneID(id string) *RepairAttemptDeleteOne {
	builder := c.Delete().Where(repairattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RepairAttemptDeleteOne{builder}
}

// Query returns a query builder for RepairAttempt.
func (c *RepairAttemptClient) Query() *RepairAttemptQuery {
	return &RepairAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRepairAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a RepairAttempt entity by its id.
func (c *RepairAttemptClient) Get(ctx context.Context, id string) (*RepairAttempt, error) {
	return c.Query().Where(repairattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RepairAttemptClient) GetX(ctx context.Context, id string) *RepairAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RepairAttempt.
func (c *RepairAttemptClient) QueryRun(_m *RepairAttempt) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(repairattempt.Table, repairattempt.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, repairattempt.RunTable, repairattempt.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RepairAttemptClient) Hooks() []Hook {
	return c.hooks.RepairAttempt
}

// Interceptors returns the client interceptors.
func (c *RepairAttemptClient) Interceptors() []Interceptor {
	return c.inters.RepairAttempt
}

func (c *RepairAttemptClient) mutate(ctx context.Context, m *RepairAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RepairAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RepairAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RepairAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RepairAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RepairAttempt mutation op: %q", m.Op())
	}
}

// ReplayBundleClient is a client for the ReplayBundle schema.
type ReplayBundleClient struct {
	config
}

// NewReplayBundleClient returns a client for the ReplayBundle from the given config.
func NewReplayBundleClient(c config) *ReplayBundleClient {
	return &ReplayBundleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `replaybundle.Hooks(f(g(h())))`.
func (c *ReplayBundleClient) Use(hooks ...Hook) {
	c.hooks.ReplayBundle = append(c.hooks.ReplayBundle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `replaybundle.Intercept(f(g(h())))`.
func (c *ReplayBundleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReplayBundle = append(c.inters.ReplayBundle, interceptors...)
}

// Create returns a builder for creating a ReplayBundle entity.
func (c *ReplayBundleClient) Create() *ReplayBundleCreate {
	mutation := newReplayBundleMutation(c.config, OpCreate)
	return &ReplayBundleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReplayBundle entities.
func (c *ReplayBundleClient) CreateBulk(builders ...*ReplayBundleCreate) *ReplayBundleCreateBulk {
	return &ReplayBundleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReplayBundleClient) MapCreateBulk(slice any, setFunc func(*ReplayBundleCreate, int)) *ReplayBundleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReplayBundleCreateBulk{err: fmt.Errorf("calling to ReplayBundleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReplayBundleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReplayBundleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReplayBundle.
func (c *ReplayBundleClient) Update() *ReplayBundleUpdate {
	mutation := newReplayBundleMutation(c.config, OpUpdate)
	return &ReplayBundleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReplayBundleClient) UpdateOne(_m *ReplayBundle) *ReplayBundleUpdateOne {
	mutation := newReplayBundleMutation(c.config, OpUpdateOne, withReplayBundle(_m))
	return &ReplayBundleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReplayBundleClient) UpdateOneID(id string) *ReplayBundleUpdateOne {
	mutation := newReplayBundleMutation(c.config, OpUpdateOne, withReplayBundleID(id))
	return &ReplayBundleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReplayBundle.
func (c *ReplayBundleClient) Delete() *ReplayBundleDelete {
	mutation := newReplayBundleMutation(c.config, OpDelete)
	return &ReplayBundleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReplayBundleClient) DeleteOne(_m *ReplayBundle) *ReplayBundleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReplayBundleClient) DeleteOneID(id string) *ReplayBundleDeleteOne {
	builder := c.Delete().Where(replaybundle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReplayBundleDeleteOne{builder}
}

// Query returns a query builder for ReplayBundle.
func (c *ReplayBundleClient) Query() *ReplayBundleQuery {
	return &ReplayBundleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReplayBundle},
		inters: c.Interceptors(),
	}
}

// Get returns a ReplayBundle entity by its id.
func (c *ReplayBundleClient) Get(ctx context.Context, id string) (*ReplayBundle, error) {
	return c.Query().Where(replaybundle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReplayBundleClient) GetX(ctx context.Context, id string) *ReplayBundle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ReplayBundle.
func (c *ReplayBundleClient) QueryRun(_m *ReplayBundle) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(replaybundle.Table, replaybundle.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, replaybundle.RunTable, replaybundle.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReplayBundleClient) Hooks() []Hook {
	return c.hooks.ReplayBundle
}

// Interceptors returns the client interceptors.
func (c *ReplayBundleClient) Interceptors() []Interceptor {
	return c.inters.ReplayBundle
}

func (c *ReplayBundleClient) mutate(ctx context.Context, m *ReplayBundleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReplayBundleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReplayBundleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReplayBundleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReplayBundleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReplayBundle mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpec queries the spec edge of a Run.
func (c *RunClient) QuerySpec(_m *Run) *BuildSpecQuery {
	query := (&BuildSpecClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(buildspec.Table, buildspec.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, run.SpecTable, run.SpecColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Run.
func (c *RunClient) QuerySteps(_m *Run) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.StepsTable, run.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFailures queries the failures edge of a Run.
func (c *RunClient) QueryFailures(_m *Run) *FailureQuery {
	query := (&FailureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(failure.Table, failure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.FailuresTable, run.FailuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRepairAttempts queries the repair_attempts edge of a Run.
func (c *RunClient) QueryRepairAttempts(_m *Run) *RepairAttemptQuery {
	query := (&RepairAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(repairattempt.Table, repairattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.RepairAttemptsTable, run.RepairAttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifacts queries the artifacts edge of a Run.
func (c *RunClient) QueryArtifacts(_m *Run) *ArtifactQuery {
	query := (&ArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ArtifactsTable, run.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApprovalGates queries the approval_gates edge of a Run.
func (c *RunClient) QueryApprovalGates(_m *Run) *ApprovalGateQuery {
	query := (&ApprovalGateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(approvalgate.Table, approvalgate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ApprovalGatesTable, run.ApprovalGatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBudget queries the budget edge of a Run.
func (c *RunClient) QueryBudget(_m *Run) *BudgetQuery {
	query := (&BudgetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(budget.Table, budget.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, run.BudgetTable, run.BudgetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a Run.
func (c *RunClient) QueryTimelineEvents(_m *Run) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.TimelineEventsTable, run.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReplayBundle queries the replay_bundle edge of a Run.
func (c *RunClient) QueryReplayBundle(_m *Run) *ReplayBundleQuery {
	query := (&ReplayBundleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(replaybundle.Table, replaybundle.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, run.ReplayBundleTable, run.ReplayBundleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCanarySample queries the canary_sample edge of a Run.
func (c *RunClient) QueryCanarySample(_m *Run) *CanarySampleQuery {
	query := (&CanarySampleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(canarysample.Table, canarysample.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, run.CanarySampleTable, run.CanarySampleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// StepClient is a client for the Step schema.
type StepClient struct {
	config
}

// NewStepClient returns a client for the Step from the given config.
func NewStepClient(c config) *StepClient {
	return &StepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `step.Hooks(f(g(h())))`.
func (c *StepClient) Use(hooks ...Hook) {
	c.hooks.Step = append(c.hooks.Step, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `step.Intercept(f(g(h())))`.
func (c *StepClient) Intercept(interceptors ...Interceptor) {
	c.inters.Step = append(c.inters.Step, interceptors...)
}

// Create returns a builder for creating a Step entity.
func (c *StepClient) Create() *StepCreate {
	mutation := newStepMutation(c.config, OpCreate)
	return &StepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Step entities.
func (c *StepClient) CreateBulk(builders ...*StepCreate) *StepCreateBulk {
	return &StepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepClient) MapCreateBulk(slice any, setFunc func(*StepCreate, int)) *StepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCreateBulk{err: fmt.Errorf("calling to StepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Step.
func (c *StepClient) Update() *StepUpdate {
	mutation := newStepMutation(c.config, OpUpdate)
	return &StepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepClient) UpdateOne(_m *Step) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStep(_m))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepClient) UpdateOneID(id string) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStepID(id))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Step.
func (c *StepClient) Delete() *StepDelete {
	mutation := newStepMutation(c.config, OpDelete)
	return &StepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepClient) DeleteOne(_m *Step) *StepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepClient) DeleteOneID(id string) *StepDeleteOne {
	builder := c.Delete().Where(step.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepDeleteOne{builder}
}

// Query returns a query builder for Step.
func (c *StepClient) Query() *StepQuery {
	return &StepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStep},
		inters: c.Interceptors(),
	}
}

// Get returns a Step entity by its id.
func (c *StepClient) Get(ctx context.Context, id string) (*Step, error) {
	return c.Query().Where(step.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepClient) GetX(ctx context.Context, id string) *Step {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Step.
func (c *StepClient) QueryRun(_m *Step) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, step.RunTable, step.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFailures queries the failures edge of a Step.
func (c *StepClient) QueryFailures(_m *Step) *FailureQuery {
	query := (&FailureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(failure.Table, failure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, step.FailuresTable, step.FailuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLease queries the lease edge of a Step.
func (c *StepClient) QueryLease(_m *Step) *QueueLeaseQuery {
	query := (&QueueLeaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(queuelease.Table, queuelease.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, step.LeaseTable, step.LeaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepClient) Hooks() []Hook {
	return c.hooks.Step
}

// Interceptors returns the client interceptors.
func (c *StepClient) Interceptors() []Interceptor {
	return c.inters.Step
}

func (c *StepClient) mutate(ctx context.Context, m *StepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Step mutation op: %q", m.Op())
	}
}

// TimelineEventClient is a client for the TimelineEvent schema.
type TimelineEventClient struct {
	config
}

// NewTimelineEventClient returns a client for the TimelineEvent from the given config.
func NewTimelineEventClient(c config) *TimelineEventClient {
	return &TimelineEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timelineevent.Hooks(f(g(h())))`.
func (c *TimelineEventClient) Use(hooks ...Hook) {
	c.hooks.TimelineEvent = append(c.hooks.TimelineEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timelineevent.Intercept(f(g(h())))`.
func (c *TimelineEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimelineEvent = append(c.inters.TimelineEvent, interceptors...)
}

// Create returns a builder for creating a TimelineEvent entity.
func (c *TimelineEventClient) Create() *TimelineEventCreate {
	mutation := newTimelineEventMutation(c.config, OpCreate)
	return &TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimelineEvent entities.
func (c *TimelineEventClient) CreateBulk(builders ...*TimelineEventCreate) *TimelineEventCreateBulk {
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimelineEventClient) MapCreateBulk(slice any, setFunc func(*TimelineEventCreate, int)) *TimelineEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimelineEventCreateBulk{err: fmt.Errorf("calling to TimelineEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimelineEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimelineEvent.
func (c *TimelineEventClient) Update() *TimelineEventUpdate {
	mutation := newTimelineEventMutation(c.config, OpUpdate)
	return &TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimelineEventClient) UpdateOne(_m *TimelineEvent) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEvent(_m))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimelineEventClient) UpdateOneID(id string) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEventID(id))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimelineEvent.
func (c *TimelineEventClient) Delete() *TimelineEventDelete {
	mutation := newTimelineEventMutation(c.config, OpDelete)
	return &TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimelineEventClient) DeleteOne(_m *TimelineEvent) *TimelineEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimelineEventClient) DeleteOneID(id string) *TimelineEventDeleteOne {
	builder := c.Delete().Where(timelineevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimelineEventDeleteOne{builder}
}

// Query returns a query builder for TimelineEvent.
func (c *TimelineEventClient) Query() *TimelineEventQuery {
	return &TimelineEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimelineEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TimelineEvent entity by its id.
func (c *TimelineEventClient) Get(ctx context.Context, id string) (*TimelineEvent, error) {
	return c.Query().Where(timelineevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimelineEventClient) GetX(ctx context.Context, id string) *TimelineEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a TimelineEvent.
func (c *TimelineEventClient) QueryRun(_m *TimelineEvent) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.RunTable, timelineevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TimelineEventClient) Hooks() []Hook {
	return c.hooks.TimelineEvent
}

// Interceptors returns the client interceptors.
func (c *TimelineEventClient) Interceptors() []Interceptor {
	return c.inters.TimelineEvent
}

func (c *TimelineEventClient) mutate(ctx context.Context, m *TimelineEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimelineEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalGate, Artifact, Blob, Budget, BuildSpec, CanarySample, CircuitBreaker,
		Event, Failure, QueueLease, RepairAttempt, ReplayBundle, Run, Step,
		TimelineEvent []ent.Hook
	}
	inters struct {
		ApprovalGate, Artifact, Blob, Budget, BuildSpec, CanarySample, CircuitBreaker,
		Event, Failure, QueueLease, RepairAttempt, ReplayBundle, Run, Step,
		TimelineEvent []ent.Interceptor
	}
)
