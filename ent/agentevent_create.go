// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
)

// AgentEventCreate is the builder for creating a AgentEvent entity.
type AgentEventCreate struct {
	config
	mutation *AgentEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentEventCreate) SetAgentID(v string) *AgentEventCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *AgentEventCreate) SetEventType(v agentevent.EventType) *AgentEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSessionKey sets the "session_key" field.
func (_c *AgentEventCreate) SetSessionKey(v string) *AgentEventCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableSessionKey(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetSessionKey(*v)
	}
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *AgentEventCreate) SetTransactionID(v string) *AgentEventCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableTransactionID(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetTransactionType sets the "transaction_type" field.
func (_c *AgentEventCreate) SetTransactionType(v string) *AgentEventCreate {
	_c.mutation.SetTransactionType(v)
	return _c
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableTransactionType(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetTransactionType(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *AgentEventCreate) SetAction(v map[string]interface{}) *AgentEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AgentEventCreate) SetReasoning(v string) *AgentEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableReasoning(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *AgentEventCreate) SetDetails(v string) *AgentEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableDetails(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetPreviousHash sets the "previous_hash" field.
func (_c *AgentEventCreate) SetPreviousHash(v string) *AgentEventCreate {
	_c.mutation.SetPreviousHash(v)
	return _c
}

// SetNillablePreviousHash sets the "previous_hash" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillablePreviousHash(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetPreviousHash(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AgentEventCreate) SetTimestamp(v int64) *AgentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetConsensusTimestamp sets the "consensus_timestamp" field.
func (_c *AgentEventCreate) SetConsensusTimestamp(v string) *AgentEventCreate {
	_c.mutation.SetConsensusTimestamp(v)
	return _c
}

// SetRawData sets the "raw_data" field.
func (_c *AgentEventCreate) SetRawData(v map[string]interface{}) *AgentEventCreate {
	_c.mutation.SetRawData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentEventCreate) SetCreatedAt(v time.Time) *AgentEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableCreatedAt(v *time.Time) *AgentEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentEventMutation object of the builder.
func (_c *AgentEventCreate) Mutation() *AgentEventMutation {
	return _c.mutation
}

// Save creates the AgentEvent in the database.
func (_c *AgentEventCreate) Save(ctx context.Context) (*AgentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentEventCreate) SaveX(ctx context.Context) *AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentEventCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentEvent.agent_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "AgentEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := agentevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AgentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ConsensusTimestamp(); !ok {
		return &ValidationError{Name: "consensus_timestamp", err: errors.New(`ent: missing required field "AgentEvent.consensus_timestamp"`)}
	}
	if _, ok := _c.mutation.RawData(); !ok {
		return &ValidationError{Name: "raw_data", err: errors.New(`ent: missing required field "AgentEvent.raw_data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentEvent.created_at"`)}
	}
	return nil
}

func (_c *AgentEventCreate) sqlSave(ctx context.Context) (*AgentEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentEventCreate) createSpec() (*AgentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentevent.Table, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentevent.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(agentevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(agentevent.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = &value
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(agentevent.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.TransactionType(); ok {
		_spec.SetField(agentevent.FieldTransactionType, field.TypeString, value)
		_node.TransactionType = &value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(agentevent.FieldAction, field.TypeJSON, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(agentevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(agentevent.FieldDetails, field.TypeString, value)
		_node.Details = &value
	}
	if value, ok := _c.mutation.PreviousHash(); ok {
		_spec.SetField(agentevent.FieldPreviousHash, field.TypeString, value)
		_node.PreviousHash = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(agentevent.FieldTimestamp, field.TypeInt64, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConsensusTimestamp(); ok {
		_spec.SetField(agentevent.FieldConsensusTimestamp, field.TypeString, value)
		_node.ConsensusTimestamp = value
	}
	if value, ok := _c.mutation.RawData(); ok {
		_spec.SetField(agentevent.FieldRawData, field.TypeJSON, value)
		_node.RawData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentEvent.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentEventUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentEventCreate) OnConflict(opts ...sql.ConflictOption) *AgentEventUpsertOne {
	_c.conflict = opts
	return &AgentEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentEventCreate) OnConflictColumns(columns ...string) *AgentEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentEventUpsertOne{
		create: _c,
	}
}

type (
	// AgentEventUpsertOne is the builder for "upsert"-ing
	//  one AgentEvent node.
	AgentEventUpsertOne struct {
		create *AgentEventCreate
	}

	// AgentEventUpsert is the "OnConflict" setter.
	AgentEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetAction sets the "action" field.
func (u *AgentEventUpsert) SetAction(v map[string]interface{}) *AgentEventUpsert {
	u.Set(agentevent.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *AgentEventUpsert) UpdateAction() *AgentEventUpsert {
	u.SetExcluded(agentevent.FieldAction)
	return u
}

// ClearAction clears the value of the "action" field.
func (u *AgentEventUpsert) ClearAction() *AgentEventUpsert {
	u.SetNull(agentevent.FieldAction)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentEventUpsertOne) UpdateNewValues() *AgentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(agentevent.FieldAgentID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(agentevent.FieldEventType)
		}
		if _, exists := u.create.mutation.SessionKey(); exists {
			s.SetIgnore(agentevent.FieldSessionKey)
		}
		if _, exists := u.create.mutation.TransactionID(); exists {
			s.SetIgnore(agentevent.FieldTransactionID)
		}
		if _, exists := u.create.mutation.TransactionType(); exists {
			s.SetIgnore(agentevent.FieldTransactionType)
		}
		if _, exists := u.create.mutation.Reasoning(); exists {
			s.SetIgnore(agentevent.FieldReasoning)
		}
		if _, exists := u.create.mutation.Details(); exists {
			s.SetIgnore(agentevent.FieldDetails)
		}
		if _, exists := u.create.mutation.PreviousHash(); exists {
			s.SetIgnore(agentevent.FieldPreviousHash)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(agentevent.FieldTimestamp)
		}
		if _, exists := u.create.mutation.ConsensusTimestamp(); exists {
			s.SetIgnore(agentevent.FieldConsensusTimestamp)
		}
		if _, exists := u.create.mutation.RawData(); exists {
			s.SetIgnore(agentevent.FieldRawData)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentEventUpsertOne) Ignore() *AgentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentEventUpsertOne) DoNothing() *AgentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentEventCreate.OnConflict
// documentation for more info.
func (u *AgentEventUpsertOne) Update(set func(*AgentEventUpsert)) *AgentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAction sets the "action" field.
func (u *AgentEventUpsertOne) SetAction(v map[string]interface{}) *AgentEventUpsertOne {
	return u.Update(func(s *AgentEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *AgentEventUpsertOne) UpdateAction() *AgentEventUpsertOne {
	return u.Update(func(s *AgentEventUpsert) {
		s.UpdateAction()
	})
}

// ClearAction clears the value of the "action" field.
func (u *AgentEventUpsertOne) ClearAction() *AgentEventUpsertOne {
	return u.Update(func(s *AgentEventUpsert) {
		s.ClearAction()
	})
}

// Exec executes the query.
func (u *AgentEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentEventCreateBulk is the builder for creating many AgentEvent entities in bulk.
type AgentEventCreateBulk struct {
	config
	err      error
	builders []*AgentEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentEvent entities in the database.
func (_c *AgentEventCreateBulk) Save(ctx context.Context) ([]*AgentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentEventCreateBulk) SaveX(ctx context.Context) []*AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentEventUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentEventUpsertBulk {
	_c.conflict = opts
	return &AgentEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentEventCreateBulk) OnConflictColumns(columns ...string) *AgentEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentEventUpsertBulk{
		create: _c,
	}
}

// AgentEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentEvent nodes.
type AgentEventUpsertBulk struct {
	create *AgentEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentEventUpsertBulk) UpdateNewValues() *AgentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(agentevent.FieldAgentID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(agentevent.FieldEventType)
			}
			if _, exists := b.mutation.SessionKey(); exists {
				s.SetIgnore(agentevent.FieldSessionKey)
			}
			if _, exists := b.mutation.TransactionID(); exists {
				s.SetIgnore(agentevent.FieldTransactionID)
			}
			if _, exists := b.mutation.TransactionType(); exists {
				s.SetIgnore(agentevent.FieldTransactionType)
			}
			if _, exists := b.mutation.Reasoning(); exists {
				s.SetIgnore(agentevent.FieldReasoning)
			}
			if _, exists := b.mutation.Details(); exists {
				s.SetIgnore(agentevent.FieldDetails)
			}
			if _, exists := b.mutation.PreviousHash(); exists {
				s.SetIgnore(agentevent.FieldPreviousHash)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(agentevent.FieldTimestamp)
			}
			if _, exists := b.mutation.ConsensusTimestamp(); exists {
				s.SetIgnore(agentevent.FieldConsensusTimestamp)
			}
			if _, exists := b.mutation.RawData(); exists {
				s.SetIgnore(agentevent.FieldRawData)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentEventUpsertBulk) Ignore() *AgentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentEventUpsertBulk) DoNothing() *AgentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentEventCreateBulk.OnConflict
// documentation for more info.
func (u *AgentEventUpsertBulk) Update(set func(*AgentEventUpsert)) *AgentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAction sets the "action" field.
func (u *AgentEventUpsertBulk) SetAction(v map[string]interface{}) *AgentEventUpsertBulk {
	return u.Update(func(s *AgentEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *AgentEventUpsertBulk) UpdateAction() *AgentEventUpsertBulk {
	return u.Update(func(s *AgentEventUpsert) {
		s.UpdateAction()
	})
}

// ClearAction clears the value of the "action" field.
func (u *AgentEventUpsertBulk) ClearAction() *AgentEventUpsertBulk {
	return u.Update(func(s *AgentEventUpsert) {
		s.ClearAction()
	})
}

// Exec executes the query.
func (u *AgentEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
