// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentmesh/hcs-indexer/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/agent"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/agentmesh/hcs-indexer/ent/synccursor"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentComm is the client for interacting with the AgentComm builders.
	AgentComm *AgentCommClient
	// AgentEvent is the client for interacting with the AgentEvent builders.
	AgentEvent *AgentEventClient
	// HCSMessage is the client for interacting with the HCSMessage builders.
	HCSMessage *HCSMessageClient
	// Rental is the client for interacting with the Rental builders.
	Rental *RentalClient
	// SyncCursor is the client for interacting with the SyncCursor builders.
	SyncCursor *SyncCursorClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentComm = NewAgentCommClient(c.config)
	c.AgentEvent = NewAgentEventClient(c.config)
	c.HCSMessage = NewHCSMessageClient(c.config)
	c.Rental = NewRentalClient(c.config)
	c.SyncCursor = NewSyncCursorClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Agent:      NewAgentClient(cfg),
		AgentComm:  NewAgentCommClient(cfg),
		AgentEvent: NewAgentEventClient(cfg),
		HCSMessage: NewHCSMessageClient(cfg),
		Rental:     NewRentalClient(cfg),
		SyncCursor: NewSyncCursorClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Agent:      NewAgentClient(cfg),
		AgentComm:  NewAgentCommClient(cfg),
		AgentEvent: NewAgentEventClient(cfg),
		HCSMessage: NewHCSMessageClient(cfg),
		Rental:     NewRentalClient(cfg),
		SyncCursor: NewSyncCursorClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AgentComm, c.AgentEvent, c.HCSMessage, c.Rental, c.SyncCursor,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentComm, c.AgentEvent, c.HCSMessage, c.Rental, c.SyncCursor,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentCommMutation:
		return c.AgentComm.mutate(ctx, m)
	case *AgentEventMutation:
		return c.AgentEvent.mutate(ctx, m)
	case *HCSMessageMutation:
		return c.HCSMessage.mutate(ctx, m)
	case *RentalMutation:
		return c.Rental.mutate(ctx, m)
	case *SyncCursorMutation:
		return c.SyncCursor.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentCommClient is a client for the AgentComm schema.
type AgentCommClient struct {
	config
}

// NewAgentCommClient returns a client for the AgentComm from the given config.
func NewAgentCommClient(c config) *AgentCommClient {
	return &AgentCommClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentcomm.Hooks(f(g(h())))`.
func (c *AgentCommClient) Use(hooks ...Hook) {
	c.hooks.AgentComm = append(c.hooks.AgentComm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentcomm.Intercept(f(g(h())))`.
func (c *AgentCommClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentComm = append(c.inters.AgentComm, interceptors...)
}

// Create returns a builder for creating a AgentComm entity.
func (c *AgentCommClient) Create() *AgentCommCreate {
	mutation := newAgentCommMutation(c.config, OpCreate)
	return &AgentCommCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentComm entities.
func (c *AgentCommClient) CreateBulk(builders ...*AgentCommCreate) *AgentCommCreateBulk {
	return &AgentCommCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentCommClient) MapCreateBulk(slice any, setFunc func(*AgentCommCreate, int)) *AgentCommCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCommCreateBulk{err: fmt.Errorf("calling to AgentCommClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCommCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCommCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentComm.
func (c *AgentCommClient) Update() *AgentCommUpdate {
	mutation := newAgentCommMutation(c.config, OpUpdate)
	return &AgentCommUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentCommClient) UpdateOne(_m *AgentComm) *AgentCommUpdateOne {
	mutation := newAgentCommMutation(c.config, OpUpdateOne, withAgentComm(_m))
	return &AgentCommUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentCommClient) UpdateOneID(id int) *AgentCommUpdateOne {
	mutation := newAgentCommMutation(c.config, OpUpdateOne, withAgentCommID(id))
	return &AgentCommUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentComm.
func (c *AgentCommClient) Delete() *AgentCommDelete {
	mutation := newAgentCommMutation(c.config, OpDelete)
	return &AgentCommDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentCommClient) DeleteOne(_m *AgentComm) *AgentCommDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentCommClient) DeleteOneID(id int) *AgentCommDeleteOne {
	builder := c.Delete().Where(agentcomm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentCommDeleteOne{builder}
}

// Query returns a query builder for AgentComm.
func (c *AgentCommClient) Query() *AgentCommQuery {
	return &AgentCommQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentComm},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentComm entity by its id.
func (c *AgentCommClient) Get(ctx context.Context, id int) (*AgentComm, error) {
	return c.Query().Where(agentcomm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentCommClient) GetX(ctx context.Context, id int) *AgentComm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentCommClient) Hooks() []Hook {
	return c.hooks.AgentComm
}

// Interceptors returns the client interceptors.
func (c *AgentCommClient) Interceptors() []Interceptor {
	return c.inters.AgentComm
}

func (c *AgentCommClient) mutate(ctx context.Context, m *AgentCommMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCommCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentCommUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentCommUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentCommDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentComm mutation op: %q", m.Op())
	}
}

// AgentEventClient is a client for the AgentEvent schema.
type AgentEventClient struct {
	config
}

// NewAgentEventClient returns a client for the AgentEvent from the given config.
func NewAgentEventClient(c config) *AgentEventClient {
	return &AgentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentevent.Hooks(f(g(h())))`.
func (c *AgentEventClient) Use(hooks ...Hook) {
	c.hooks.AgentEvent = append(c.hooks.AgentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentevent.Intercept(f(g(h())))`.
func (c *AgentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentEvent = append(c.inters.AgentEvent, interceptors...)
}

// Create returns a builder for creating a AgentEvent entity.
func (c *AgentEventClient) Create() *AgentEventCreate {
	mutation := newAgentEventMutation(c.config, OpCreate)
	return &AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentEvent entities.
func (c *AgentEventClient) CreateBulk(builders ...*AgentEventCreate) *AgentEventCreateBulk {
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentEventClient) MapCreateBulk(slice any, setFunc func(*AgentEventCreate, int)) *AgentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentEventCreateBulk{err: fmt.Errorf("calling to AgentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentEvent.
func (c *AgentEventClient) Update() *AgentEventUpdate {
	mutation := newAgentEventMutation(c.config, OpUpdate)
	return &AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentEventClient) UpdateOne(_m *AgentEvent) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEvent(_m))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentEventClient) UpdateOneID(id int) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEventID(id))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentEvent.
func (c *AgentEventClient) Delete() *AgentEventDelete {
	mutation := newAgentEventMutation(c.config, OpDelete)
	return &AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentEventClient) DeleteOne(_m *AgentEvent) *AgentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentEventClient) DeleteOneID(id int) *AgentEventDeleteOne {
	builder := c.Delete().Where(agentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentEventDeleteOne{builder}
}

// Query returns a query builder for AgentEvent.
func (c *AgentEventClient) Query() *AgentEventQuery {
	return &AgentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentEvent entity by its id.
func (c *AgentEventClient) Get(ctx context.Context, id int) (*AgentEvent, error) {
	return c.Query().Where(agentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentEventClient) GetX(ctx context.Context, id int) *AgentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentEventClient) Hooks() []Hook {
	return c.hooks.AgentEvent
}

// Interceptors returns the client interceptors.
func (c *AgentEventClient) Interceptors() []Interceptor {
	return c.inters.AgentEvent
}

func (c *AgentEventClient) mutate(ctx context.Context, m *AgentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentEvent mutation op: %q", m.Op())
	}
}

// HCSMessageClient is a client for the HCSMessage schema.
type HCSMessageClient struct {
	config
}

// NewHCSMessageClient returns a client for the HCSMessage from the given config.
func NewHCSMessageClient(c config) *HCSMessageClient {
	return &HCSMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hcsmessage.Hooks(f(g(h())))`.
func (c *HCSMessageClient) Use(hooks ...Hook) {
	c.hooks.HCSMessage = append(c.hooks.HCSMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hcsmessage.Intercept(f(g(h())))`.
func (c *HCSMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.HCSMessage = append(c.inters.HCSMessage, interceptors...)
}

// Create returns a builder for creating a HCSMessage entity.
func (c *HCSMessageClient) Create() *HCSMessageCreate {
	mutation := newHCSMessageMutation(c.config, OpCreate)
	return &HCSMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HCSMessage entities.
func (c *HCSMessageClient) CreateBulk(builders ...*HCSMessageCreate) *HCSMessageCreateBulk {
	return &HCSMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HCSMessageClient) MapCreateBulk(slice any, setFunc func(*HCSMessageCreate, int)) *HCSMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HCSMessageCreateBulk{err: fmt.Errorf("calling to HCSMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HCSMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HCSMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HCSMessage.
func (c *HCSMessageClient) Update() *HCSMessageUpdate {
	mutation := newHCSMessageMutation(c.config, OpUpdate)
	return &HCSMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HCSMessageClient) UpdateOne(_m *HCSMessage) *HCSMessageUpdateOne {
	mutation := newHCSMessageMutation(c.config, OpUpdateOne, withHCSMessage(_m))
	return &HCSMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HCSMessageClient) UpdateOneID(id int) *HCSMessageUpdateOne {
	mutation := newHCSMessageMutation(c.config, OpUpdateOne, withHCSMessageID(id))
	return &HCSMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HCSMessage.
func (c *HCSMessageClient) Delete() *HCSMessageDelete {
	mutation := newHCSMessageMutation(c.config, OpDelete)
	return &HCSMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HCSMessageClient) DeleteOne(_m *HCSMessage) *HCSMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HCSMessageClient) DeleteOneID(id int) *HCSMessageDeleteOne {
	builder := c.Delete().Where(hcsmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HCSMessageDeleteOne{builder}
}

// Query returns a query builder for HCSMessage.
func (c *HCSMessageClient) Query() *HCSMessageQuery {
	return &HCSMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHCSMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a HCSMessage entity by its id.
func (c *HCSMessageClient) Get(ctx context.Context, id int) (*HCSMessage, error) {
	return c.Query().Where(hcsmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HCSMessageClient) GetX(ctx context.Context, id int) *HCSMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HCSMessageClient) Hooks() []Hook {
	return c.hooks.HCSMessage
}

// Interceptors returns the client interceptors.
func (c *HCSMessageClient) Interceptors() []Interceptor {
	return c.inters.HCSMessage
}

func (c *HCSMessageClient) mutate(ctx context.Context, m *HCSMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HCSMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HCSMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HCSMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HCSMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HCSMessage mutation op: %q", m.Op())
	}
}

// RentalClient is a client for the Rental schema.
type RentalClient struct {
	config
}

// NewRentalClient returns a client for the Rental from the given config.
func NewRentalClient(c config) *RentalClient {
	return &RentalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rental.Hooks(f(g(h())))`.
func (c *RentalClient) Use(hooks ...Hook) {
	c.hooks.Rental = append(c.hooks.Rental, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rental.Intercept(f(g(h())))`.
func (c *RentalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rental = append(c.inters.Rental, interceptors...)
}

// Create returns a builder for creating a Rental entity.
func (c *RentalClient) Create() *RentalCreate {
	mutation := newRentalMutation(c.config, OpCreate)
	return &RentalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rental entities.
func (c *RentalClient) CreateBulk(builders ...*RentalCreate) *RentalCreateBulk {
	return &RentalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RentalClient) MapCreateBulk(slice any, setFunc func(*RentalCreate, int)) *RentalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RentalCreateBulk{err: fmt.Errorf("calling to RentalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RentalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RentalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rental.
func (c *RentalClient) Update() *RentalUpdate {
	mutation := newRentalMutation(c.config, OpUpdate)
	return &RentalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RentalClient) UpdateOne(_m *Rental) *RentalUpdateOne {
	mutation := newRentalMutation(c.config, OpUpdateOne, withRental(_m))
	return &RentalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RentalClient) UpdateOneID(id string) *RentalUpdateOne {
	mutation := newRentalMutation(c.config, OpUpdateOne, withRentalID(id))
	return &RentalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rental.
func (c *RentalClient) Delete() *RentalDelete {
	mutation := newRentalMutation(c.config, OpDelete)
	return &RentalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RentalClient) DeleteOne(_m *Rental) *RentalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RentalClient) DeleteOneID(id string) *RentalDeleteOne {
	builder := c.Delete().Where(rental.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RentalDeleteOne{builder}
}

// Query returns a query builder for Rental.
func (c *RentalClient) Query() *RentalQuery {
	return &RentalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRental},
		inters: c.Interceptors(),
	}
}

// Get returns a Rental entity by its id.
func (c *RentalClient) Get(ctx context.Context, id string) (*Rental, error) {
	return c.Query().Where(rental.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RentalClient) GetX(ctx context.Context, id string) *Rental {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RentalClient) Hooks() []Hook {
	return c.hooks.Rental
}

// Interceptors returns the client interceptors.
func (c *RentalClient) Interceptors() []Interceptor {
	return c.inters.Rental
}

func (c *RentalClient) mutate(ctx context.Context, m *RentalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RentalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RentalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RentalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RentalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rental mutation op: %q", m.Op())
	}
}

// SyncCursorClient is a client for the SyncCursor schema.
type SyncCursorClient struct {
	config
}

// NewSyncCursorClient returns a client for the SyncCursor from the given config.
func NewSyncCursorClient(c config) *SyncCursorClient {
	return &SyncCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `synccursor.Hooks(f(g(h())))`.
func (c *SyncCursorClient) Use(hooks ...Hook) {
	c.hooks.SyncCursor = append(c.hooks.SyncCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `synccursor.Intercept(f(g(h())))`.
func (c *SyncCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncCursor = append(c.inters.SyncCursor, interceptors...)
}

// Create returns a builder for creating a SyncCursor entity.
func (c *SyncCursorClient) Create() *SyncCursorCreate {
	mutation := newSyncCursorMutation(c.config, OpCreate)
	return &SyncCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncCursor entities.
func (c *SyncCursorClient) CreateBulk(builders ...*SyncCursorCreate) *SyncCursorCreateBulk {
	return &SyncCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncCursorClient) MapCreateBulk(slice any, setFunc func(*SyncCursorCreate, int)) *SyncCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncCursorCreateBulk{err: fmt.Errorf("calling to SyncCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncCursor.
func (c *SyncCursorClient) Update() *SyncCursorUpdate {
	mutation := newSyncCursorMutation(c.config, OpUpdate)
	return &SyncCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncCursorClient) UpdateOne(_m *SyncCursor) *SyncCursorUpdateOne {
	mutation := newSyncCursorMutation(c.config, OpUpdateOne, withSyncCursor(_m))
	return &SyncCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncCursorClient) UpdateOneID(id string) *SyncCursorUpdateOne {
	mutation := newSyncCursorMutation(c.config, OpUpdateOne, withSyncCursorID(id))
	return &SyncCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncCursor.
func (c *SyncCursorClient) Delete() *SyncCursorDelete {
	mutation := newSyncCursorMutation(c.config, OpDelete)
	return &SyncCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncCursorClient) DeleteOne(_m *SyncCursor) *SyncCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncCursorClient) DeleteOneID(id string) *SyncCursorDeleteOne {
	builder := c.Delete().Where(synccursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncCursorDeleteOne{builder}
}

// Query returns a query builder for SyncCursor.
func (c *SyncCursorClient) Query() *SyncCursorQuery {
	return &SyncCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncCursor entity by its id.
func (c *SyncCursorClient) Get(ctx context.Context, id string) (*SyncCursor, error) {
	return c.Query().Where(synccursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncCursorClient) GetX(ctx context.Context, id string) *SyncCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncCursorClient) Hooks() []Hook {
	return c.hooks.SyncCursor
}

// Interceptors returns the client interceptors.
func (c *SyncCursorClient) Interceptors() []Interceptor {
	return c.inters.SyncCursor
}

func (c *SyncCursorClient) mutate(ctx context.Context, m *SyncCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncCursor mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentComm, AgentEvent, HCSMessage, Rental, SyncCursor []ent.Hook
	}
	inters struct {
		Agent, AgentComm, AgentEvent, HCSMessage, Rental, SyncCursor []ent.Interceptor
	}
)
