// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/agent"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/agentmesh/hcs-indexer/ent/synccursor"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent      = "Agent"
	TypeAgentComm  = "AgentComm"
	TypeAgentEvent = "AgentEvent"
	TypeHCSMessage = "HCSMessage"
	TypeRental     = "Rental"
	TypeSyncCursor = "SyncCursor"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_name        *string
	platform          *string
	version           *string
	operating_account *string
	first_seen_at     *time.Time
	last_seen_at      *time.Time
	metadata          *map[string]interface{}
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Agent, error)
	predicates        []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *AgentMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetPlatform sets the "platform" field.
func (m *AgentMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *AgentMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *AgentMutation) ResetPlatform() {
	m.platform = nil
}

// SetVersion sets the "version" field.
func (m *AgentMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *AgentMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[agent.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *AgentMutation) VersionCleared() bool {
	_, ok := m.clearedFields[agent.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, agent.FieldVersion)
}

// SetOperatingAccount sets the "operating_account" field.
func (m *AgentMutation) SetOperatingAccount(s string) {
	m.operating_account = &s
}

// OperatingAccount returns the value of the "operating_account" field in the mutation.
func (m *AgentMutation) OperatingAccount() (r string, exists bool) {
	v := m.operating_account
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatingAccount returns the old "operating_account" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldOperatingAccount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatingAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatingAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatingAccount: %w", err)
	}
	return oldValue.OperatingAccount, nil
}

// ClearOperatingAccount clears the value of the "operating_account" field.
func (m *AgentMutation) ClearOperatingAccount() {
	m.operating_account = nil
	m.clearedFields[agent.FieldOperatingAccount] = struct{}{}
}

// OperatingAccountCleared returns if the "operating_account" field was cleared in this mutation.
func (m *AgentMutation) OperatingAccountCleared() bool {
	_, ok := m.clearedFields[agent.FieldOperatingAccount]
	return ok
}

// ResetOperatingAccount resets all changes to the "operating_account" field.
func (m *AgentMutation) ResetOperatingAccount() {
	m.operating_account = nil
	delete(m.clearedFields, agent.FieldOperatingAccount)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *AgentMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *AgentMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *AgentMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *AgentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *AgentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *AgentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetMetadata sets the "metadata" field.
func (m *AgentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agent.FieldMetadata)
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent_name != nil {
		fields = append(fields, agent.FieldAgentName)
	}
	if m.platform != nil {
		fields = append(fields, agent.FieldPlatform)
	}
	if m.version != nil {
		fields = append(fields, agent.FieldVersion)
	}
	if m.operating_account != nil {
		fields = append(fields, agent.FieldOperatingAccount)
	}
	if m.first_seen_at != nil {
		fields = append(fields, agent.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	if m.metadata != nil {
		fields = append(fields, agent.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentName:
		return m.AgentName()
	case agent.FieldPlatform:
		return m.Platform()
	case agent.FieldVersion:
		return m.Version()
	case agent.FieldOperatingAccount:
		return m.OperatingAccount()
	case agent.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case agent.FieldLastSeenAt:
		return m.LastSeenAt()
	case agent.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentName:
		return m.OldAgentName(ctx)
	case agent.FieldPlatform:
		return m.OldPlatform(ctx)
	case agent.FieldVersion:
		return m.OldVersion(ctx)
	case agent.FieldOperatingAccount:
		return m.OldOperatingAccount(ctx)
	case agent.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case agent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case agent.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agent.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case agent.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agent.FieldOperatingAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatingAccount(v)
		return nil
	case agent.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case agent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case agent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldVersion) {
		fields = append(fields, agent.FieldVersion)
	}
	if m.FieldCleared(agent.FieldOperatingAccount) {
		fields = append(fields, agent.FieldOperatingAccount)
	}
	if m.FieldCleared(agent.FieldMetadata) {
		fields = append(fields, agent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldVersion:
		m.ClearVersion()
		return nil
	case agent.FieldOperatingAccount:
		m.ClearOperatingAccount()
		return nil
	case agent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agent.FieldPlatform:
		m.ResetPlatform()
		return nil
	case agent.FieldVersion:
		m.ResetVersion()
		return nil
	case agent.FieldOperatingAccount:
		m.ResetOperatingAccount()
		return nil
	case agent.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case agent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case agent.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentCommMutation represents an operation that mutates the AgentComm nodes in the graph.
type AgentCommMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	topic_id            *string
	from_agent          *string
	to_agent            *string
	text                *string
	timestamp           *string
	consensus_timestamp *string
	metadata            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AgentComm, error)
	predicates          []predicate.AgentComm
}

var _ ent.Mutation = (*AgentCommMutation)(nil)

// agentcommOption allows management of the mutation configuration using functional options.
type agentcommOption func(*AgentCommMutation)

// newAgentCommMutation creates new mutation for the AgentComm entity.
func newAgentCommMutation(c config, op Op, opts ...agentcommOption) *AgentCommMutation {
	m := &AgentCommMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentComm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentCommID sets the ID field of the mutation.
func withAgentCommID(id int) agentcommOption {
	return func(m *AgentCommMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentComm
		)
		m.oldValue = func(ctx context.Context) (*AgentComm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentComm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentComm sets the old AgentComm of the mutation.
func withAgentComm(node *AgentComm) agentcommOption {
	return func(m *AgentCommMutation) {
		m.oldValue = func(context.Context) (*AgentComm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentCommMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentCommMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentCommMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentCommMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentComm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *AgentCommMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *AgentCommMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *AgentCommMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetFromAgent sets the "from_agent" field.
func (m *AgentCommMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *AgentCommMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *AgentCommMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetToAgent sets the "to_agent" field.
func (m *AgentCommMutation) SetToAgent(s string) {
	m.to_agent = &s
}

// ToAgent returns the value of the "to_agent" field in the mutation.
func (m *AgentCommMutation) ToAgent() (r string, exists bool) {
	v := m.to_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgent returns the old "to_agent" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldToAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgent: %w", err)
	}
	return oldValue.ToAgent, nil
}

// ClearToAgent clears the value of the "to_agent" field.
func (m *AgentCommMutation) ClearToAgent() {
	m.to_agent = nil
	m.clearedFields[agentcomm.FieldToAgent] = struct{}{}
}

// ToAgentCleared returns if the "to_agent" field was cleared in this mutation.
func (m *AgentCommMutation) ToAgentCleared() bool {
	_, ok := m.clearedFields[agentcomm.FieldToAgent]
	return ok
}

// ResetToAgent resets all changes to the "to_agent" field.
func (m *AgentCommMutation) ResetToAgent() {
	m.to_agent = nil
	delete(m.clearedFields, agentcomm.FieldToAgent)
}

// SetText sets the "text" field.
func (m *AgentCommMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *AgentCommMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *AgentCommMutation) ResetText() {
	m.text = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AgentCommMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AgentCommMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AgentCommMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetConsensusTimestamp sets the "consensus_timestamp" field.
func (m *AgentCommMutation) SetConsensusTimestamp(s string) {
	m.consensus_timestamp = &s
}

// ConsensusTimestamp returns the value of the "consensus_timestamp" field in the mutation.
func (m *AgentCommMutation) ConsensusTimestamp() (r string, exists bool) {
	v := m.consensus_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusTimestamp returns the old "consensus_timestamp" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldConsensusTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusTimestamp: %w", err)
	}
	return oldValue.ConsensusTimestamp, nil
}

// ResetConsensusTimestamp resets all changes to the "consensus_timestamp" field.
func (m *AgentCommMutation) ResetConsensusTimestamp() {
	m.consensus_timestamp = nil
}

// SetMetadata sets the "metadata" field.
func (m *AgentCommMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentCommMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentCommMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agentcomm.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentCommMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agentcomm.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentCommMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agentcomm.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentCommMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentCommMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentComm entity.
// If the AgentComm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentCommMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentCommMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentCommMutation builder.
func (m *AgentCommMutation) Where(ps ...predicate.AgentComm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentCommMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentCommMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentComm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentCommMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentCommMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentComm).
func (m *AgentCommMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentCommMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.topic_id != nil {
		fields = append(fields, agentcomm.FieldTopicID)
	}
	if m.from_agent != nil {
		fields = append(fields, agentcomm.FieldFromAgent)
	}
	if m.to_agent != nil {
		fields = append(fields, agentcomm.FieldToAgent)
	}
	if m.text != nil {
		fields = append(fields, agentcomm.FieldText)
	}
	if m.timestamp != nil {
		fields = append(fields, agentcomm.FieldTimestamp)
	}
	if m.consensus_timestamp != nil {
		fields = append(fields, agentcomm.FieldConsensusTimestamp)
	}
	if m.metadata != nil {
		fields = append(fields, agentcomm.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, agentcomm.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentCommMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentcomm.FieldTopicID:
		return m.TopicID()
	case agentcomm.FieldFromAgent:
		return m.FromAgent()
	case agentcomm.FieldToAgent:
		return m.ToAgent()
	case agentcomm.FieldText:
		return m.Text()
	case agentcomm.FieldTimestamp:
		return m.Timestamp()
	case agentcomm.FieldConsensusTimestamp:
		return m.ConsensusTimestamp()
	case agentcomm.FieldMetadata:
		return m.Metadata()
	case agentcomm.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentCommMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentcomm.FieldTopicID:
		return m.OldTopicID(ctx)
	case agentcomm.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case agentcomm.FieldToAgent:
		return m.OldToAgent(ctx)
	case agentcomm.FieldText:
		return m.OldText(ctx)
	case agentcomm.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case agentcomm.FieldConsensusTimestamp:
		return m.OldConsensusTimestamp(ctx)
	case agentcomm.FieldMetadata:
		return m.OldMetadata(ctx)
	case agentcomm.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentComm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentCommMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentcomm.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case agentcomm.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case agentcomm.FieldToAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgent(v)
		return nil
	case agentcomm.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case agentcomm.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case agentcomm.FieldConsensusTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusTimestamp(v)
		return nil
	case agentcomm.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agentcomm.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentComm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentCommMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentCommMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentCommMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentComm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentCommMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentcomm.FieldToAgent) {
		fields = append(fields, agentcomm.FieldToAgent)
	}
	if m.FieldCleared(agentcomm.FieldMetadata) {
		fields = append(fields, agentcomm.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentCommMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentCommMutation) ClearField(name string) error {
	switch name {
	case agentcomm.FieldToAgent:
		m.ClearToAgent()
		return nil
	case agentcomm.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentComm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentCommMutation) ResetField(name string) error {
	switch name {
	case agentcomm.FieldTopicID:
		m.ResetTopicID()
		return nil
	case agentcomm.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case agentcomm.FieldToAgent:
		m.ResetToAgent()
		return nil
	case agentcomm.FieldText:
		m.ResetText()
		return nil
	case agentcomm.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case agentcomm.FieldConsensusTimestamp:
		m.ResetConsensusTimestamp()
		return nil
	case agentcomm.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agentcomm.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentComm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentCommMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentCommMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentCommMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentCommMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentCommMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentCommMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentCommMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentComm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentCommMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentComm edge %s", name)
}

// AgentEventMutation represents an operation that mutates the AgentEvent nodes in the graph.
type AgentEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	agent_id            *string
	event_type          *agentevent.EventType
	session_key         *string
	transaction_id      *string
	transaction_type    *string
	action              *map[string]interface{}
	reasoning           *string
	details             *string
	previous_hash       *string
	timestamp           *int64
	addtimestamp        *int64
	consensus_timestamp *string
	raw_data            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AgentEvent, error)
	predicates          []predicate.AgentEvent
}

var _ ent.Mutation = (*AgentEventMutation)(nil)

// agenteventOption allows management of the mutation configuration using functional options.
type agenteventOption func(*AgentEventMutation)

// newAgentEventMutation creates new mutation for the AgentEvent entity.
func newAgentEventMutation(c config, op Op, opts ...agenteventOption) *AgentEventMutation {
	m := &AgentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentEventID sets the ID field of the mutation.
func withAgentEventID(id int) agenteventOption {
	return func(m *AgentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentEvent
		)
		m.oldValue = func(ctx context.Context) (*AgentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentEvent sets the old AgentEvent of the mutation.
func withAgentEvent(node *AgentEvent) agenteventOption {
	return func(m *AgentEventMutation) {
		m.oldValue = func(context.Context) (*AgentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentEventMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentEventMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentEventMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetEventType sets the "event_type" field.
func (m *AgentEventMutation) SetEventType(at agentevent.EventType) {
	m.event_type = &at
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AgentEventMutation) EventType() (r agentevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldEventType(ctx context.Context) (v agentevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AgentEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSessionKey sets the "session_key" field.
func (m *AgentEventMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *AgentEventMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldSessionKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ClearSessionKey clears the value of the "session_key" field.
func (m *AgentEventMutation) ClearSessionKey() {
	m.session_key = nil
	m.clearedFields[agentevent.FieldSessionKey] = struct{}{}
}

// SessionKeyCleared returns if the "session_key" field was cleared in this mutation.
func (m *AgentEventMutation) SessionKeyCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldSessionKey]
	return ok
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *AgentEventMutation) ResetSessionKey() {
	m.session_key = nil
	delete(m.clearedFields, agentevent.FieldSessionKey)
}

// SetTransactionID sets the "transaction_id" field.
func (m *AgentEventMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *AgentEventMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *AgentEventMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[agentevent.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *AgentEventMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *AgentEventMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, agentevent.FieldTransactionID)
}

// SetTransactionType sets the "transaction_type" field.
func (m *AgentEventMutation) SetTransactionType(s string) {
	m.transaction_type = &s
}

// TransactionType returns the value of the "transaction_type" field in the mutation.
func (m *AgentEventMutation) TransactionType() (r string, exists bool) {
	v := m.transaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionType returns the old "transaction_type" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldTransactionType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionType: %w", err)
	}
	return oldValue.TransactionType, nil
}

// ClearTransactionType clears the value of the "transaction_type" field.
func (m *AgentEventMutation) ClearTransactionType() {
	m.transaction_type = nil
	m.clearedFields[agentevent.FieldTransactionType] = struct{}{}
}

// TransactionTypeCleared returns if the "transaction_type" field was cleared in this mutation.
func (m *AgentEventMutation) TransactionTypeCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldTransactionType]
	return ok
}

// ResetTransactionType resets all changes to the "transaction_type" field.
func (m *AgentEventMutation) ResetTransactionType() {
	m.transaction_type = nil
	delete(m.clearedFields, agentevent.FieldTransactionType)
}

// SetAction sets the "action" field.
func (m *AgentEventMutation) SetAction(value map[string]interface{}) {
	m.action = &value
}

// Action returns the value of the "action" field in the mutation.
func (m *AgentEventMutation) Action() (r map[string]interface{}, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldAction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ClearAction clears the value of the "action" field.
func (m *AgentEventMutation) ClearAction() {
	m.action = nil
	m.clearedFields[agentevent.FieldAction] = struct{}{}
}

// ActionCleared returns if the "action" field was cleared in this mutation.
func (m *AgentEventMutation) ActionCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldAction]
	return ok
}

// ResetAction resets all changes to the "action" field.
func (m *AgentEventMutation) ResetAction() {
	m.action = nil
	delete(m.clearedFields, agentevent.FieldAction)
}

// SetReasoning sets the "reasoning" field.
func (m *AgentEventMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *AgentEventMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *AgentEventMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[agentevent.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *AgentEventMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *AgentEventMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, agentevent.FieldReasoning)
}

// SetDetails sets the "details" field.
func (m *AgentEventMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *AgentEventMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AgentEventMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[agentevent.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AgentEventMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AgentEventMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, agentevent.FieldDetails)
}

// SetPreviousHash sets the "previous_hash" field.
func (m *AgentEventMutation) SetPreviousHash(s string) {
	m.previous_hash = &s
}

// PreviousHash returns the value of the "previous_hash" field in the mutation.
func (m *AgentEventMutation) PreviousHash() (r string, exists bool) {
	v := m.previous_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousHash returns the old "previous_hash" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldPreviousHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousHash: %w", err)
	}
	return oldValue.PreviousHash, nil
}

// ClearPreviousHash clears the value of the "previous_hash" field.
func (m *AgentEventMutation) ClearPreviousHash() {
	m.previous_hash = nil
	m.clearedFields[agentevent.FieldPreviousHash] = struct{}{}
}

// PreviousHashCleared returns if the "previous_hash" field was cleared in this mutation.
func (m *AgentEventMutation) PreviousHashCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldPreviousHash]
	return ok
}

// ResetPreviousHash resets all changes to the "previous_hash" field.
func (m *AgentEventMutation) ResetPreviousHash() {
	m.previous_hash = nil
	delete(m.clearedFields, agentevent.FieldPreviousHash)
}

// SetTimestamp sets the "timestamp" field.
func (m *AgentEventMutation) SetTimestamp(i int64) {
	m.timestamp = &i
	m.addtimestamp = nil
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AgentEventMutation) Timestamp() (r int64, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldTimestamp(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// AddTimestamp adds i to the "timestamp" field.
func (m *AgentEventMutation) AddTimestamp(i int64) {
	if m.addtimestamp != nil {
		*m.addtimestamp += i
	} else {
		m.addtimestamp = &i
	}
}

// AddedTimestamp returns the value that was added to the "timestamp" field in this mutation.
func (m *AgentEventMutation) AddedTimestamp() (r int64, exists bool) {
	v := m.addtimestamp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AgentEventMutation) ResetTimestamp() {
	m.timestamp = nil
	m.addtimestamp = nil
}

// SetConsensusTimestamp sets the "consensus_timestamp" field.
func (m *AgentEventMutation) SetConsensusTimestamp(s string) {
	m.consensus_timestamp = &s
}

// ConsensusTimestamp returns the value of the "consensus_timestamp" field in the mutation.
func (m *AgentEventMutation) ConsensusTimestamp() (r string, exists bool) {
	v := m.consensus_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusTimestamp returns the old "consensus_timestamp" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldConsensusTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusTimestamp: %w", err)
	}
	return oldValue.ConsensusTimestamp, nil
}

// ResetConsensusTimestamp resets all changes to the "consensus_timestamp" field.
func (m *AgentEventMutation) ResetConsensusTimestamp() {
	m.consensus_timestamp = nil
}

// SetRawData sets the "raw_data" field.
func (m *AgentEventMutation) SetRawData(value map[string]interface{}) {
	m.raw_data = &value
}

// RawData returns the value of the "raw_data" field in the mutation.
func (m *AgentEventMutation) RawData() (r map[string]interface{}, exists bool) {
	v := m.raw_data
	if v == nil {
		return
	}
	return *v, true
}

// OldRawData returns the old "raw_data" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldRawData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawData: %w", err)
	}
	return oldValue.RawData, nil
}

// ResetRawData resets all changes to the "raw_data" field.
func (m *AgentEventMutation) ResetRawData() {
	m.raw_data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentEventMutation builder.
func (m *AgentEventMutation) Where(ps ...predicate.AgentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentEvent).
func (m *AgentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_id != nil {
		fields = append(fields, agentevent.FieldAgentID)
	}
	if m.event_type != nil {
		fields = append(fields, agentevent.FieldEventType)
	}
	if m.session_key != nil {
		fields = append(fields, agentevent.FieldSessionKey)
	}
	if m.transaction_id != nil {
		fields = append(fields, agentevent.FieldTransactionID)
	}
	if m.transaction_type != nil {
		fields = append(fields, agentevent.FieldTransactionType)
	}
	if m.action != nil {
		fields = append(fields, agentevent.FieldAction)
	}
	if m.reasoning != nil {
		fields = append(fields, agentevent.FieldReasoning)
	}
	if m.details != nil {
		fields = append(fields, agentevent.FieldDetails)
	}
	if m.previous_hash != nil {
		fields = append(fields, agentevent.FieldPreviousHash)
	}
	if m.timestamp != nil {
		fields = append(fields, agentevent.FieldTimestamp)
	}
	if m.consensus_timestamp != nil {
		fields = append(fields, agentevent.FieldConsensusTimestamp)
	}
	if m.raw_data != nil {
		fields = append(fields, agentevent.FieldRawData)
	}
	if m.created_at != nil {
		fields = append(fields, agentevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentevent.FieldAgentID:
		return m.AgentID()
	case agentevent.FieldEventType:
		return m.EventType()
	case agentevent.FieldSessionKey:
		return m.SessionKey()
	case agentevent.FieldTransactionID:
		return m.TransactionID()
	case agentevent.FieldTransactionType:
		return m.TransactionType()
	case agentevent.FieldAction:
		return m.Action()
	case agentevent.FieldReasoning:
		return m.Reasoning()
	case agentevent.FieldDetails:
		return m.Details()
	case agentevent.FieldPreviousHash:
		return m.PreviousHash()
	case agentevent.FieldTimestamp:
		return m.Timestamp()
	case agentevent.FieldConsensusTimestamp:
		return m.ConsensusTimestamp()
	case agentevent.FieldRawData:
		return m.RawData()
	case agentevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentevent.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentevent.FieldEventType:
		return m.OldEventType(ctx)
	case agentevent.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case agentevent.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case agentevent.FieldTransactionType:
		return m.OldTransactionType(ctx)
	case agentevent.FieldAction:
		return m.OldAction(ctx)
	case agentevent.FieldReasoning:
		return m.OldReasoning(ctx)
	case agentevent.FieldDetails:
		return m.OldDetails(ctx)
	case agentevent.FieldPreviousHash:
		return m.OldPreviousHash(ctx)
	case agentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case agentevent.FieldConsensusTimestamp:
		return m.OldConsensusTimestamp(ctx)
	case agentevent.FieldRawData:
		return m.OldRawData(ctx)
	case agentevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentevent.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentevent.FieldEventType:
		v, ok := value.(agentevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case agentevent.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case agentevent.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case agentevent.FieldTransactionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionType(v)
		return nil
	case agentevent.FieldAction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case agentevent.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case agentevent.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case agentevent.FieldPreviousHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousHash(v)
		return nil
	case agentevent.FieldTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case agentevent.FieldConsensusTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusTimestamp(v)
		return nil
	case agentevent.FieldRawData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawData(v)
		return nil
	case agentevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentEventMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp != nil {
		fields = append(fields, agentevent.FieldTimestamp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentevent.FieldTimestamp:
		return m.AddedTimestamp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentevent.FieldTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AgentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentevent.FieldSessionKey) {
		fields = append(fields, agentevent.FieldSessionKey)
	}
	if m.FieldCleared(agentevent.FieldTransactionID) {
		fields = append(fields, agentevent.FieldTransactionID)
	}
	if m.FieldCleared(agentevent.FieldTransactionType) {
		fields = append(fields, agentevent.FieldTransactionType)
	}
	if m.FieldCleared(agentevent.FieldAction) {
		fields = append(fields, agentevent.FieldAction)
	}
	if m.FieldCleared(agentevent.FieldReasoning) {
		fields = append(fields, agentevent.FieldReasoning)
	}
	if m.FieldCleared(agentevent.FieldDetails) {
		fields = append(fields, agentevent.FieldDetails)
	}
	if m.FieldCleared(agentevent.FieldPreviousHash) {
		fields = append(fields, agentevent.FieldPreviousHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentEventMutation) ClearField(name string) error {
	switch name {
	case agentevent.FieldSessionKey:
		m.ClearSessionKey()
		return nil
	case agentevent.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	case agentevent.FieldTransactionType:
		m.ClearTransactionType()
		return nil
	case agentevent.FieldAction:
		m.ClearAction()
		return nil
	case agentevent.FieldReasoning:
		m.ClearReasoning()
		return nil
	case agentevent.FieldDetails:
		m.ClearDetails()
		return nil
	case agentevent.FieldPreviousHash:
		m.ClearPreviousHash()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentEventMutation) ResetField(name string) error {
	switch name {
	case agentevent.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentevent.FieldEventType:
		m.ResetEventType()
		return nil
	case agentevent.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case agentevent.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case agentevent.FieldTransactionType:
		m.ResetTransactionType()
		return nil
	case agentevent.FieldAction:
		m.ResetAction()
		return nil
	case agentevent.FieldReasoning:
		m.ResetReasoning()
		return nil
	case agentevent.FieldDetails:
		m.ResetDetails()
		return nil
	case agentevent.FieldPreviousHash:
		m.ResetPreviousHash()
		return nil
	case agentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case agentevent.FieldConsensusTimestamp:
		m.ResetConsensusTimestamp()
		return nil
	case agentevent.FieldRawData:
		m.ResetRawData()
		return nil
	case agentevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentEvent edge %s", name)
}

// HCSMessageMutation represents an operation that mutates the HCSMessage nodes in the graph.
type HCSMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	topic_id            *string
	consensus_timestamp *string
	sequence_number     *int64
	addsequence_number  *int64
	payer_account_id    *string
	message_base64      *string
	decoded_json        *map[string]interface{}
	message_type        *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*HCSMessage, error)
	predicates          []predicate.HCSMessage
}

var _ ent.Mutation = (*HCSMessageMutation)(nil)

// hcsmessageOption allows management of the mutation configuration using functional options.
type hcsmessageOption func(*HCSMessageMutation)

// newHCSMessageMutation creates new mutation for the HCSMessage entity.
func newHCSMessageMutation(c config, op Op, opts ...hcsmessageOption) *HCSMessageMutation {
	m := &HCSMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeHCSMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHCSMessageID sets the ID field of the mutation.
func withHCSMessageID(id int) hcsmessageOption {
	return func(m *HCSMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *HCSMessage
		)
		m.oldValue = func(ctx context.Context) (*HCSMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HCSMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHCSMessage sets the old HCSMessage of the mutation.
func withHCSMessage(node *HCSMessage) hcsmessageOption {
	return func(m *HCSMessageMutation) {
		m.oldValue = func(context.Context) (*HCSMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HCSMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HCSMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HCSMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HCSMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HCSMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *HCSMessageMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *HCSMessageMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *HCSMessageMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetConsensusTimestamp sets the "consensus_timestamp" field.
func (m *HCSMessageMutation) SetConsensusTimestamp(s string) {
	m.consensus_timestamp = &s
}

// ConsensusTimestamp returns the value of the "consensus_timestamp" field in the mutation.
func (m *HCSMessageMutation) ConsensusTimestamp() (r string, exists bool) {
	v := m.consensus_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusTimestamp returns the old "consensus_timestamp" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldConsensusTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusTimestamp: %w", err)
	}
	return oldValue.ConsensusTimestamp, nil
}

// ResetConsensusTimestamp resets all changes to the "consensus_timestamp" field.
func (m *HCSMessageMutation) ResetConsensusTimestamp() {
	m.consensus_timestamp = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *HCSMessageMutation) SetSequenceNumber(i int64) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *HCSMessageMutation) SequenceNumber() (r int64, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *HCSMessageMutation) AddSequenceNumber(i int64) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *HCSMessageMutation) AddedSequenceNumber() (r int64, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *HCSMessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetPayerAccountID sets the "payer_account_id" field.
func (m *HCSMessageMutation) SetPayerAccountID(s string) {
	m.payer_account_id = &s
}

// PayerAccountID returns the value of the "payer_account_id" field in the mutation.
func (m *HCSMessageMutation) PayerAccountID() (r string, exists bool) {
	v := m.payer_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPayerAccountID returns the old "payer_account_id" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldPayerAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayerAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayerAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayerAccountID: %w", err)
	}
	return oldValue.PayerAccountID, nil
}

// ClearPayerAccountID clears the value of the "payer_account_id" field.
func (m *HCSMessageMutation) ClearPayerAccountID() {
	m.payer_account_id = nil
	m.clearedFields[hcsmessage.FieldPayerAccountID] = struct{}{}
}

// PayerAccountIDCleared returns if the "payer_account_id" field was cleared in this mutation.
func (m *HCSMessageMutation) PayerAccountIDCleared() bool {
	_, ok := m.clearedFields[hcsmessage.FieldPayerAccountID]
	return ok
}

// ResetPayerAccountID resets all changes to the "payer_account_id" field.
func (m *HCSMessageMutation) ResetPayerAccountID() {
	m.payer_account_id = nil
	delete(m.clearedFields, hcsmessage.FieldPayerAccountID)
}

// SetMessageBase64 sets the "message_base64" field.
func (m *HCSMessageMutation) SetMessageBase64(s string) {
	m.message_base64 = &s
}

// MessageBase64 returns the value of the "message_base64" field in the mutation.
func (m *HCSMessageMutation) MessageBase64() (r string, exists bool) {
	v := m.message_base64
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageBase64 returns the old "message_base64" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldMessageBase64(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageBase64 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageBase64 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageBase64: %w", err)
	}
	return oldValue.MessageBase64, nil
}

// ResetMessageBase64 resets all changes to the "message_base64" field.
func (m *HCSMessageMutation) ResetMessageBase64() {
	m.message_base64 = nil
}

// SetDecodedJSON sets the "decoded_json" field.
func (m *HCSMessageMutation) SetDecodedJSON(value map[string]interface{}) {
	m.decoded_json = &value
}

// DecodedJSON returns the value of the "decoded_json" field in the mutation.
func (m *HCSMessageMutation) DecodedJSON() (r map[string]interface{}, exists bool) {
	v := m.decoded_json
	if v == nil {
		return
	}
	return *v, true
}

// OldDecodedJSON returns the old "decoded_json" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldDecodedJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecodedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecodedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecodedJSON: %w", err)
	}
	return oldValue.DecodedJSON, nil
}

// ClearDecodedJSON clears the value of the "decoded_json" field.
func (m *HCSMessageMutation) ClearDecodedJSON() {
	m.decoded_json = nil
	m.clearedFields[hcsmessage.FieldDecodedJSON] = struct{}{}
}

// DecodedJSONCleared returns if the "decoded_json" field was cleared in this mutation.
func (m *HCSMessageMutation) DecodedJSONCleared() bool {
	_, ok := m.clearedFields[hcsmessage.FieldDecodedJSON]
	return ok
}

// ResetDecodedJSON resets all changes to the "decoded_json" field.
func (m *HCSMessageMutation) ResetDecodedJSON() {
	m.decoded_json = nil
	delete(m.clearedFields, hcsmessage.FieldDecodedJSON)
}

// SetMessageType sets the "message_type" field.
func (m *HCSMessageMutation) SetMessageType(s string) {
	m.message_type = &s
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *HCSMessageMutation) MessageType() (r string, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldMessageType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ClearMessageType clears the value of the "message_type" field.
func (m *HCSMessageMutation) ClearMessageType() {
	m.message_type = nil
	m.clearedFields[hcsmessage.FieldMessageType] = struct{}{}
}

// MessageTypeCleared returns if the "message_type" field was cleared in this mutation.
func (m *HCSMessageMutation) MessageTypeCleared() bool {
	_, ok := m.clearedFields[hcsmessage.FieldMessageType]
	return ok
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *HCSMessageMutation) ResetMessageType() {
	m.message_type = nil
	delete(m.clearedFields, hcsmessage.FieldMessageType)
}

// SetCreatedAt sets the "created_at" field.
func (m *HCSMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HCSMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HCSMessage entity.
// If the HCSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HCSMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HCSMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the HCSMessageMutation builder.
func (m *HCSMessageMutation) Where(ps ...predicate.HCSMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HCSMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HCSMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HCSMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HCSMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HCSMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HCSMessage).
func (m *HCSMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HCSMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.topic_id != nil {
		fields = append(fields, hcsmessage.FieldTopicID)
	}
	if m.consensus_timestamp != nil {
		fields = append(fields, hcsmessage.FieldConsensusTimestamp)
	}
	if m.sequence_number != nil {
		fields = append(fields, hcsmessage.FieldSequenceNumber)
	}
	if m.payer_account_id != nil {
		fields = append(fields, hcsmessage.FieldPayerAccountID)
	}
	if m.message_base64 != nil {
		fields = append(fields, hcsmessage.FieldMessageBase64)
	}
	if m.decoded_json != nil {
		fields = append(fields, hcsmessage.FieldDecodedJSON)
	}
	if m.message_type != nil {
		fields = append(fields, hcsmessage.FieldMessageType)
	}
	if m.created_at != nil {
		fields = append(fields, hcsmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HCSMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hcsmessage.FieldTopicID:
		return m.TopicID()
	case hcsmessage.FieldConsensusTimestamp:
		return m.ConsensusTimestamp()
	case hcsmessage.FieldSequenceNumber:
		return m.SequenceNumber()
	case hcsmessage.FieldPayerAccountID:
		return m.PayerAccountID()
	case hcsmessage.FieldMessageBase64:
		return m.MessageBase64()
	case hcsmessage.FieldDecodedJSON:
		return m.DecodedJSON()
	case hcsmessage.FieldMessageType:
		return m.MessageType()
	case hcsmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HCSMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hcsmessage.FieldTopicID:
		return m.OldTopicID(ctx)
	case hcsmessage.FieldConsensusTimestamp:
		return m.OldConsensusTimestamp(ctx)
	case hcsmessage.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case hcsmessage.FieldPayerAccountID:
		return m.OldPayerAccountID(ctx)
	case hcsmessage.FieldMessageBase64:
		return m.OldMessageBase64(ctx)
	case hcsmessage.FieldDecodedJSON:
		return m.OldDecodedJSON(ctx)
	case hcsmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case hcsmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HCSMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HCSMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hcsmessage.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case hcsmessage.FieldConsensusTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusTimestamp(v)
		return nil
	case hcsmessage.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case hcsmessage.FieldPayerAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayerAccountID(v)
		return nil
	case hcsmessage.FieldMessageBase64:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageBase64(v)
		return nil
	case hcsmessage.FieldDecodedJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecodedJSON(v)
		return nil
	case hcsmessage.FieldMessageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case hcsmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HCSMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HCSMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, hcsmessage.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HCSMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hcsmessage.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HCSMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hcsmessage.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown HCSMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HCSMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hcsmessage.FieldPayerAccountID) {
		fields = append(fields, hcsmessage.FieldPayerAccountID)
	}
	if m.FieldCleared(hcsmessage.FieldDecodedJSON) {
		fields = append(fields, hcsmessage.FieldDecodedJSON)
	}
	if m.FieldCleared(hcsmessage.FieldMessageType) {
		fields = append(fields, hcsmessage.FieldMessageType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HCSMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HCSMessageMutation) ClearField(name string) error {
	switch name {
	case hcsmessage.FieldPayerAccountID:
		m.ClearPayerAccountID()
		return nil
	case hcsmessage.FieldDecodedJSON:
		m.ClearDecodedJSON()
		return nil
	case hcsmessage.FieldMessageType:
		m.ClearMessageType()
		return nil
	}
	return fmt.Errorf("unknown HCSMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HCSMessageMutation) ResetField(name string) error {
	switch name {
	case hcsmessage.FieldTopicID:
		m.ResetTopicID()
		return nil
	case hcsmessage.FieldConsensusTimestamp:
		m.ResetConsensusTimestamp()
		return nil
	case hcsmessage.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case hcsmessage.FieldPayerAccountID:
		m.ResetPayerAccountID()
		return nil
	case hcsmessage.FieldMessageBase64:
		m.ResetMessageBase64()
		return nil
	case hcsmessage.FieldDecodedJSON:
		m.ResetDecodedJSON()
		return nil
	case hcsmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case hcsmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HCSMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HCSMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HCSMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HCSMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HCSMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HCSMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HCSMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HCSMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HCSMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HCSMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HCSMessage edge %s", name)
}

// RentalMutation represents an operation that mutates the Rental nodes in the graph.
type RentalMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_id          *string
	renter            *string
	escrow_account    *string
	stake_usd         *float64
	addstake_usd      *float64
	buffer_usd        *float64
	addbuffer_usd     *float64
	total_cost_usd    *float64
	addtotal_cost_usd *float64
	settlement        *map[string]interface{}
	status            *rental.Status
	initiated_at      *int64
	addinitiated_at   *int64
	completed_at      *int64
	addcompleted_at   *int64
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Rental, error)
	predicates        []predicate.Rental
}

var _ ent.Mutation = (*RentalMutation)(nil)

// rentalOption allows management of the mutation configuration using functional options.
type rentalOption func(*RentalMutation)

// newRentalMutation creates new mutation for the Rental entity.
func newRentalMutation(c config, op Op, opts ...rentalOption) *RentalMutation {
	m := &RentalMutation{
		config:        c,
		op:            op,
		typ:           TypeRental,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRentalID sets the ID field of the mutation.
func withRentalID(id string) rentalOption {
	return func(m *RentalMutation) {
		var (
			err   error
			once  sync.Once
			value *Rental
		)
		m.oldValue = func(ctx context.Context) (*Rental, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rental.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRental sets the old Rental of the mutation.
func withRental(node *Rental) rentalOption {
	return func(m *RentalMutation) {
		m.oldValue = func(context.Context) (*Rental, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RentalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RentalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rental entities.
func (m *RentalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RentalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RentalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rental.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *RentalMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *RentalMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *RentalMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetRenter sets the "renter" field.
func (m *RentalMutation) SetRenter(s string) {
	m.renter = &s
}

// Renter returns the value of the "renter" field in the mutation.
func (m *RentalMutation) Renter() (r string, exists bool) {
	v := m.renter
	if v == nil {
		return
	}
	return *v, true
}

// OldRenter returns the old "renter" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldRenter(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenter: %w", err)
	}
	return oldValue.Renter, nil
}

// ClearRenter clears the value of the "renter" field.
func (m *RentalMutation) ClearRenter() {
	m.renter = nil
	m.clearedFields[rental.FieldRenter] = struct{}{}
}

// RenterCleared returns if the "renter" field was cleared in this mutation.
func (m *RentalMutation) RenterCleared() bool {
	_, ok := m.clearedFields[rental.FieldRenter]
	return ok
}

// ResetRenter resets all changes to the "renter" field.
func (m *RentalMutation) ResetRenter() {
	m.renter = nil
	delete(m.clearedFields, rental.FieldRenter)
}

// SetEscrowAccount sets the "escrow_account" field.
func (m *RentalMutation) SetEscrowAccount(s string) {
	m.escrow_account = &s
}

// EscrowAccount returns the value of the "escrow_account" field in the mutation.
func (m *RentalMutation) EscrowAccount() (r string, exists bool) {
	v := m.escrow_account
	if v == nil {
		return
	}
	return *v, true
}

// OldEscrowAccount returns the old "escrow_account" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldEscrowAccount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscrowAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscrowAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscrowAccount: %w", err)
	}
	return oldValue.EscrowAccount, nil
}

// ClearEscrowAccount clears the value of the "escrow_account" field.
func (m *RentalMutation) ClearEscrowAccount() {
	m.escrow_account = nil
	m.clearedFields[rental.FieldEscrowAccount] = struct{}{}
}

// EscrowAccountCleared returns if the "escrow_account" field was cleared in this mutation.
func (m *RentalMutation) EscrowAccountCleared() bool {
	_, ok := m.clearedFields[rental.FieldEscrowAccount]
	return ok
}

// ResetEscrowAccount resets all changes to the "escrow_account" field.
func (m *RentalMutation) ResetEscrowAccount() {
	m.escrow_account = nil
	delete(m.clearedFields, rental.FieldEscrowAccount)
}

// SetStakeUsd sets the "stake_usd" field.
func (m *RentalMutation) SetStakeUsd(f float64) {
	m.stake_usd = &f
	m.addstake_usd = nil
}

// StakeUsd returns the value of the "stake_usd" field in the mutation.
func (m *RentalMutation) StakeUsd() (r float64, exists bool) {
	v := m.stake_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldStakeUsd returns the old "stake_usd" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldStakeUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStakeUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStakeUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStakeUsd: %w", err)
	}
	return oldValue.StakeUsd, nil
}

// AddStakeUsd adds f to the "stake_usd" field.
func (m *RentalMutation) AddStakeUsd(f float64) {
	if m.addstake_usd != nil {
		*m.addstake_usd += f
	} else {
		m.addstake_usd = &f
	}
}

// AddedStakeUsd returns the value that was added to the "stake_usd" field in this mutation.
func (m *RentalMutation) AddedStakeUsd() (r float64, exists bool) {
	v := m.addstake_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearStakeUsd clears the value of the "stake_usd" field.
func (m *RentalMutation) ClearStakeUsd() {
	m.stake_usd = nil
	m.addstake_usd = nil
	m.clearedFields[rental.FieldStakeUsd] = struct{}{}
}

// StakeUsdCleared returns if the "stake_usd" field was cleared in this mutation.
func (m *RentalMutation) StakeUsdCleared() bool {
	_, ok := m.clearedFields[rental.FieldStakeUsd]
	return ok
}

// ResetStakeUsd resets all changes to the "stake_usd" field.
func (m *RentalMutation) ResetStakeUsd() {
	m.stake_usd = nil
	m.addstake_usd = nil
	delete(m.clearedFields, rental.FieldStakeUsd)
}

// SetBufferUsd sets the "buffer_usd" field.
func (m *RentalMutation) SetBufferUsd(f float64) {
	m.buffer_usd = &f
	m.addbuffer_usd = nil
}

// BufferUsd returns the value of the "buffer_usd" field in the mutation.
func (m *RentalMutation) BufferUsd() (r float64, exists bool) {
	v := m.buffer_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldBufferUsd returns the old "buffer_usd" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldBufferUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBufferUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBufferUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBufferUsd: %w", err)
	}
	return oldValue.BufferUsd, nil
}

// AddBufferUsd adds f to the "buffer_usd" field.
func (m *RentalMutation) AddBufferUsd(f float64) {
	if m.addbuffer_usd != nil {
		*m.addbuffer_usd += f
	} else {
		m.addbuffer_usd = &f
	}
}

// AddedBufferUsd returns the value that was added to the "buffer_usd" field in this mutation.
func (m *RentalMutation) AddedBufferUsd() (r float64, exists bool) {
	v := m.addbuffer_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearBufferUsd clears the value of the "buffer_usd" field.
func (m *RentalMutation) ClearBufferUsd() {
	m.buffer_usd = nil
	m.addbuffer_usd = nil
	m.clearedFields[rental.FieldBufferUsd] = struct{}{}
}

// BufferUsdCleared returns if the "buffer_usd" field was cleared in this mutation.
func (m *RentalMutation) BufferUsdCleared() bool {
	_, ok := m.clearedFields[rental.FieldBufferUsd]
	return ok
}

// ResetBufferUsd resets all changes to the "buffer_usd" field.
func (m *RentalMutation) ResetBufferUsd() {
	m.buffer_usd = nil
	m.addbuffer_usd = nil
	delete(m.clearedFields, rental.FieldBufferUsd)
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (m *RentalMutation) SetTotalCostUsd(f float64) {
	m.total_cost_usd = &f
	m.addtotal_cost_usd = nil
}

// TotalCostUsd returns the value of the "total_cost_usd" field in the mutation.
func (m *RentalMutation) TotalCostUsd() (r float64, exists bool) {
	v := m.total_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCostUsd returns the old "total_cost_usd" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldTotalCostUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCostUsd: %w", err)
	}
	return oldValue.TotalCostUsd, nil
}

// AddTotalCostUsd adds f to the "total_cost_usd" field.
func (m *RentalMutation) AddTotalCostUsd(f float64) {
	if m.addtotal_cost_usd != nil {
		*m.addtotal_cost_usd += f
	} else {
		m.addtotal_cost_usd = &f
	}
}

// AddedTotalCostUsd returns the value that was added to the "total_cost_usd" field in this mutation.
func (m *RentalMutation) AddedTotalCostUsd() (r float64, exists bool) {
	v := m.addtotal_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (m *RentalMutation) ClearTotalCostUsd() {
	m.total_cost_usd = nil
	m.addtotal_cost_usd = nil
	m.clearedFields[rental.FieldTotalCostUsd] = struct{}{}
}

// TotalCostUsdCleared returns if the "total_cost_usd" field was cleared in this mutation.
func (m *RentalMutation) TotalCostUsdCleared() bool {
	_, ok := m.clearedFields[rental.FieldTotalCostUsd]
	return ok
}

// ResetTotalCostUsd resets all changes to the "total_cost_usd" field.
func (m *RentalMutation) ResetTotalCostUsd() {
	m.total_cost_usd = nil
	m.addtotal_cost_usd = nil
	delete(m.clearedFields, rental.FieldTotalCostUsd)
}

// SetSettlement sets the "settlement" field.
func (m *RentalMutation) SetSettlement(value map[string]interface{}) {
	m.settlement = &value
}

// Settlement returns the value of the "settlement" field in the mutation.
func (m *RentalMutation) Settlement() (r map[string]interface{}, exists bool) {
	v := m.settlement
	if v == nil {
		return
	}
	return *v, true
}

// OldSettlement returns the old "settlement" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldSettlement(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettlement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettlement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettlement: %w", err)
	}
	return oldValue.Settlement, nil
}

// ClearSettlement clears the value of the "settlement" field.
func (m *RentalMutation) ClearSettlement() {
	m.settlement = nil
	m.clearedFields[rental.FieldSettlement] = struct{}{}
}

// SettlementCleared returns if the "settlement" field was cleared in this mutation.
func (m *RentalMutation) SettlementCleared() bool {
	_, ok := m.clearedFields[rental.FieldSettlement]
	return ok
}

// ResetSettlement resets all changes to the "settlement" field.
func (m *RentalMutation) ResetSettlement() {
	m.settlement = nil
	delete(m.clearedFields, rental.FieldSettlement)
}

// SetStatus sets the "status" field.
func (m *RentalMutation) SetStatus(r rental.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RentalMutation) Status() (r rental.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldStatus(ctx context.Context) (v rental.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RentalMutation) ResetStatus() {
	m.status = nil
}

// SetInitiatedAt sets the "initiated_at" field.
func (m *RentalMutation) SetInitiatedAt(i int64) {
	m.initiated_at = &i
	m.addinitiated_at = nil
}

// InitiatedAt returns the value of the "initiated_at" field in the mutation.
func (m *RentalMutation) InitiatedAt() (r int64, exists bool) {
	v := m.initiated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiatedAt returns the old "initiated_at" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldInitiatedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiatedAt: %w", err)
	}
	return oldValue.InitiatedAt, nil
}

// AddInitiatedAt adds i to the "initiated_at" field.
func (m *RentalMutation) AddInitiatedAt(i int64) {
	if m.addinitiated_at != nil {
		*m.addinitiated_at += i
	} else {
		m.addinitiated_at = &i
	}
}

// AddedInitiatedAt returns the value that was added to the "initiated_at" field in this mutation.
func (m *RentalMutation) AddedInitiatedAt() (r int64, exists bool) {
	v := m.addinitiated_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearInitiatedAt clears the value of the "initiated_at" field.
func (m *RentalMutation) ClearInitiatedAt() {
	m.initiated_at = nil
	m.addinitiated_at = nil
	m.clearedFields[rental.FieldInitiatedAt] = struct{}{}
}

// InitiatedAtCleared returns if the "initiated_at" field was cleared in this mutation.
func (m *RentalMutation) InitiatedAtCleared() bool {
	_, ok := m.clearedFields[rental.FieldInitiatedAt]
	return ok
}

// ResetInitiatedAt resets all changes to the "initiated_at" field.
func (m *RentalMutation) ResetInitiatedAt() {
	m.initiated_at = nil
	m.addinitiated_at = nil
	delete(m.clearedFields, rental.FieldInitiatedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RentalMutation) SetCompletedAt(i int64) {
	m.completed_at = &i
	m.addcompleted_at = nil
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RentalMutation) CompletedAt() (r int64, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldCompletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// AddCompletedAt adds i to the "completed_at" field.
func (m *RentalMutation) AddCompletedAt(i int64) {
	if m.addcompleted_at != nil {
		*m.addcompleted_at += i
	} else {
		m.addcompleted_at = &i
	}
}

// AddedCompletedAt returns the value that was added to the "completed_at" field in this mutation.
func (m *RentalMutation) AddedCompletedAt() (r int64, exists bool) {
	v := m.addcompleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RentalMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	m.clearedFields[rental.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RentalMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[rental.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RentalMutation) ResetCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	delete(m.clearedFields, rental.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RentalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RentalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RentalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RentalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RentalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Rental entity.
// If the Rental object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RentalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RentalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RentalMutation builder.
func (m *RentalMutation) Where(ps ...predicate.Rental) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RentalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RentalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rental, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RentalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RentalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rental).
func (m *RentalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RentalMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent_id != nil {
		fields = append(fields, rental.FieldAgentID)
	}
	if m.renter != nil {
		fields = append(fields, rental.FieldRenter)
	}
	if m.escrow_account != nil {
		fields = append(fields, rental.FieldEscrowAccount)
	}
	if m.stake_usd != nil {
		fields = append(fields, rental.FieldStakeUsd)
	}
	if m.buffer_usd != nil {
		fields = append(fields, rental.FieldBufferUsd)
	}
	if m.total_cost_usd != nil {
		fields = append(fields, rental.FieldTotalCostUsd)
	}
	if m.settlement != nil {
		fields = append(fields, rental.FieldSettlement)
	}
	if m.status != nil {
		fields = append(fields, rental.FieldStatus)
	}
	if m.initiated_at != nil {
		fields = append(fields, rental.FieldInitiatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, rental.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, rental.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rental.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RentalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rental.FieldAgentID:
		return m.AgentID()
	case rental.FieldRenter:
		return m.Renter()
	case rental.FieldEscrowAccount:
		return m.EscrowAccount()
	case rental.FieldStakeUsd:
		return m.StakeUsd()
	case rental.FieldBufferUsd:
		return m.BufferUsd()
	case rental.FieldTotalCostUsd:
		return m.TotalCostUsd()
	case rental.FieldSettlement:
		return m.Settlement()
	case rental.FieldStatus:
		return m.Status()
	case rental.FieldInitiatedAt:
		return m.InitiatedAt()
	case rental.FieldCompletedAt:
		return m.CompletedAt()
	case rental.FieldCreatedAt:
		return m.CreatedAt()
	case rental.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RentalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rental.FieldAgentID:
		return m.OldAgentID(ctx)
	case rental.FieldRenter:
		return m.OldRenter(ctx)
	case rental.FieldEscrowAccount:
		return m.OldEscrowAccount(ctx)
	case rental.FieldStakeUsd:
		return m.OldStakeUsd(ctx)
	case rental.FieldBufferUsd:
		return m.OldBufferUsd(ctx)
	case rental.FieldTotalCostUsd:
		return m.OldTotalCostUsd(ctx)
	case rental.FieldSettlement:
		return m.OldSettlement(ctx)
	case rental.FieldStatus:
		return m.OldStatus(ctx)
	case rental.FieldInitiatedAt:
		return m.OldInitiatedAt(ctx)
	case rental.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case rental.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rental.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rental field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RentalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rental.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case rental.FieldRenter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenter(v)
		return nil
	case rental.FieldEscrowAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscrowAccount(v)
		return nil
	case rental.FieldStakeUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStakeUsd(v)
		return nil
	case rental.FieldBufferUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBufferUsd(v)
		return nil
	case rental.FieldTotalCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCostUsd(v)
		return nil
	case rental.FieldSettlement:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettlement(v)
		return nil
	case rental.FieldStatus:
		v, ok := value.(rental.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rental.FieldInitiatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiatedAt(v)
		return nil
	case rental.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case rental.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rental.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rental field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RentalMutation) AddedFields() []string {
	var fields []string
	if m.addstake_usd != nil {
		fields = append(fields, rental.FieldStakeUsd)
	}
	if m.addbuffer_usd != nil {
		fields = append(fields, rental.FieldBufferUsd)
	}
	if m.addtotal_cost_usd != nil {
		fields = append(fields, rental.FieldTotalCostUsd)
	}
	if m.addinitiated_at != nil {
		fields = append(fields, rental.FieldInitiatedAt)
	}
	if m.addcompleted_at != nil {
		fields = append(fields, rental.FieldCompletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RentalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rental.FieldStakeUsd:
		return m.AddedStakeUsd()
	case rental.FieldBufferUsd:
		return m.AddedBufferUsd()
	case rental.FieldTotalCostUsd:
		return m.AddedTotalCostUsd()
	case rental.FieldInitiatedAt:
		return m.AddedInitiatedAt()
	case rental.FieldCompletedAt:
		return m.AddedCompletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RentalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rental.FieldStakeUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStakeUsd(v)
		return nil
	case rental.FieldBufferUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBufferUsd(v)
		return nil
	case rental.FieldTotalCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCostUsd(v)
		return nil
	case rental.FieldInitiatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInitiatedAt(v)
		return nil
	case rental.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rental numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RentalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rental.FieldRenter) {
		fields = append(fields, rental.FieldRenter)
	}
	if m.FieldCleared(rental.FieldEscrowAccount) {
		fields = append(fields, rental.FieldEscrowAccount)
	}
	if m.FieldCleared(rental.FieldStakeUsd) {
		fields = append(fields, rental.FieldStakeUsd)
	}
	if m.FieldCleared(rental.FieldBufferUsd) {
		fields = append(fields, rental.FieldBufferUsd)
	}
	if m.FieldCleared(rental.FieldTotalCostUsd) {
		fields = append(fields, rental.FieldTotalCostUsd)
	}
	if m.FieldCleared(rental.FieldSettlement) {
		fields = append(fields, rental.FieldSettlement)
	}
	if m.FieldCleared(rental.FieldInitiatedAt) {
		fields = append(fields, rental.FieldInitiatedAt)
	}
	if m.FieldCleared(rental.FieldCompletedAt) {
		fields = append(fields, rental.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RentalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RentalMutation) ClearField(name string) error {
	switch name {
	case rental.FieldRenter:
		m.ClearRenter()
		return nil
	case rental.FieldEscrowAccount:
		m.ClearEscrowAccount()
		return nil
	case rental.FieldStakeUsd:
		m.ClearStakeUsd()
		return nil
	case rental.FieldBufferUsd:
		m.ClearBufferUsd()
		return nil
	case rental.FieldTotalCostUsd:
		m.ClearTotalCostUsd()
		return nil
	case rental.FieldSettlement:
		m.ClearSettlement()
		return nil
	case rental.FieldInitiatedAt:
		m.ClearInitiatedAt()
		return nil
	case rental.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Rental nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RentalMutation) ResetField(name string) error {
	switch name {
	case rental.FieldAgentID:
		m.ResetAgentID()
		return nil
	case rental.FieldRenter:
		m.ResetRenter()
		return nil
	case rental.FieldEscrowAccount:
		m.ResetEscrowAccount()
		return nil
	case rental.FieldStakeUsd:
		m.ResetStakeUsd()
		return nil
	case rental.FieldBufferUsd:
		m.ResetBufferUsd()
		return nil
	case rental.FieldTotalCostUsd:
		m.ResetTotalCostUsd()
		return nil
	case rental.FieldSettlement:
		m.ResetSettlement()
		return nil
	case rental.FieldStatus:
		m.ResetStatus()
		return nil
	case rental.FieldInitiatedAt:
		m.ResetInitiatedAt()
		return nil
	case rental.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case rental.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rental.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rental field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RentalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RentalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RentalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RentalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RentalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RentalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RentalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Rental unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RentalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Rental edge %s", name)
}

// SyncCursorMutation represents an operation that mutates the SyncCursor nodes in the graph.
type SyncCursorMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	last_timestamp          *string
	last_sequence_number    *int64
	addlast_sequence_number *int64
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SyncCursor, error)
	predicates              []predicate.SyncCursor
}

var _ ent.Mutation = (*SyncCursorMutation)(nil)

// synccursorOption allows management of the mutation configuration using functional options.
type synccursorOption func(*SyncCursorMutation)

// newSyncCursorMutation creates new mutation for the SyncCursor entity.
func newSyncCursorMutation(c config, op Op, opts ...synccursorOption) *SyncCursorMutation {
	m := &SyncCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncCursorID sets the ID field of the mutation.
func withSyncCursorID(id string) synccursorOption {
	return func(m *SyncCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncCursor
		)
		m.oldValue = func(ctx context.Context) (*SyncCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncCursor sets the old SyncCursor of the mutation.
func withSyncCursor(node *SyncCursor) synccursorOption {
	return func(m *SyncCursorMutation) {
		m.oldValue = func(context.Context) (*SyncCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncCursor entities.
func (m *SyncCursorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncCursorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncCursorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLastTimestamp sets the "last_timestamp" field.
func (m *SyncCursorMutation) SetLastTimestamp(s string) {
	m.last_timestamp = &s
}

// LastTimestamp returns the value of the "last_timestamp" field in the mutation.
func (m *SyncCursorMutation) LastTimestamp() (r string, exists bool) {
	v := m.last_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTimestamp returns the old "last_timestamp" field's value of the SyncCursor entity.
// If the SyncCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncCursorMutation) OldLastTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTimestamp: %w", err)
	}
	return oldValue.LastTimestamp, nil
}

// ResetLastTimestamp resets all changes to the "last_timestamp" field.
func (m *SyncCursorMutation) ResetLastTimestamp() {
	m.last_timestamp = nil
}

// SetLastSequenceNumber sets the "last_sequence_number" field.
func (m *SyncCursorMutation) SetLastSequenceNumber(i int64) {
	m.last_sequence_number = &i
	m.addlast_sequence_number = nil
}

// LastSequenceNumber returns the value of the "last_sequence_number" field in the mutation.
func (m *SyncCursorMutation) LastSequenceNumber() (r int64, exists bool) {
	v := m.last_sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSequenceNumber returns the old "last_sequence_number" field's value of the SyncCursor entity.
// If the SyncCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncCursorMutation) OldLastSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSequenceNumber: %w", err)
	}
	return oldValue.LastSequenceNumber, nil
}

// AddLastSequenceNumber adds i to the "last_sequence_number" field.
func (m *SyncCursorMutation) AddLastSequenceNumber(i int64) {
	if m.addlast_sequence_number != nil {
		*m.addlast_sequence_number += i
	} else {
		m.addlast_sequence_number = &i
	}
}

// AddedLastSequenceNumber returns the value that was added to the "last_sequence_number" field in this mutation.
func (m *SyncCursorMutation) AddedLastSequenceNumber() (r int64, exists bool) {
	v := m.addlast_sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSequenceNumber resets all changes to the "last_sequence_number" field.
func (m *SyncCursorMutation) ResetLastSequenceNumber() {
	m.last_sequence_number = nil
	m.addlast_sequence_number = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SyncCursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SyncCursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SyncCursor entity.
// If the SyncCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncCursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SyncCursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SyncCursorMutation builder.
func (m *SyncCursorMutation) Where(ps ...predicate.SyncCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncCursor).
func (m *SyncCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncCursorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.last_timestamp != nil {
		fields = append(fields, synccursor.FieldLastTimestamp)
	}
	if m.last_sequence_number != nil {
		fields = append(fields, synccursor.FieldLastSequenceNumber)
	}
	if m.updated_at != nil {
		fields = append(fields, synccursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case synccursor.FieldLastTimestamp:
		return m.LastTimestamp()
	case synccursor.FieldLastSequenceNumber:
		return m.LastSequenceNumber()
	case synccursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case synccursor.FieldLastTimestamp:
		return m.OldLastTimestamp(ctx)
	case synccursor.FieldLastSequenceNumber:
		return m.OldLastSequenceNumber(ctx)
	case synccursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case synccursor.FieldLastTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTimestamp(v)
		return nil
	case synccursor.FieldLastSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSequenceNumber(v)
		return nil
	case synccursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncCursorMutation) AddedFields() []string {
	var fields []string
	if m.addlast_sequence_number != nil {
		fields = append(fields, synccursor.FieldLastSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case synccursor.FieldLastSequenceNumber:
		return m.AddedLastSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case synccursor.FieldLastSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown SyncCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncCursorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncCursorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SyncCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncCursorMutation) ResetField(name string) error {
	switch name {
	case synccursor.FieldLastTimestamp:
		m.ResetLastTimestamp()
		return nil
	case synccursor.FieldLastSequenceNumber:
		m.ResetLastSequenceNumber()
		return nil
	case synccursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncCursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncCursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncCursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncCursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncCursor edge %s", name)
}
