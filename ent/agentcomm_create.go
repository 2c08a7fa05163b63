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
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
)

// AgentCommCreate is the builder for creating a AgentComm entity.
type AgentCommCreate struct {
	config
	mutation *AgentCommMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTopicID sets the "topic_id" field.
func (_c *AgentCommCreate) SetTopicID(v string) *AgentCommCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *AgentCommCreate) SetFromAgent(v string) *AgentCommCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetToAgent sets the "to_agent" field.
func (_c *AgentCommCreate) SetToAgent(v string) *AgentCommCreate {
	_c.mutation.SetToAgent(v)
	return _c
}

// SetNillableToAgent sets the "to_agent" field if the given value is not nil.
func (_c *AgentCommCreate) SetNillableToAgent(v *string) *AgentCommCreate {
	if v != nil {
		_c.SetToAgent(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *AgentCommCreate) SetText(v string) *AgentCommCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AgentCommCreate) SetTimestamp(v string) *AgentCommCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetConsensusTimestamp sets the "consensus_timestamp" field.
func (_c *AgentCommCreate) SetConsensusTimestamp(v string) *AgentCommCreate {
	_c.mutation.SetConsensusTimestamp(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentCommCreate) SetMetadata(v map[string]interface{}) *AgentCommCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCommCreate) SetCreatedAt(v time.Time) *AgentCommCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCommCreate) SetNillableCreatedAt(v *time.Time) *AgentCommCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentCommMutation object of the builder.
func (_c *AgentCommCreate) Mutation() *AgentCommMutation {
	return _c.mutation
}

// Save creates the AgentComm in the database.
func (_c *AgentCommCreate) Save(ctx context.Context) (*AgentComm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCommCreate) SaveX(ctx context.Context) *AgentComm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCommCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCommCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCommCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentcomm.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCommCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "AgentComm.topic_id"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "AgentComm.from_agent"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "AgentComm.text"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AgentComm.timestamp"`)}
	}
	if _, ok := _c.mutation.ConsensusTimestamp(); !ok {
		return &ValidationError{Name: "consensus_timestamp", err: errors.New(`ent: missing required field "AgentComm.consensus_timestamp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentComm.created_at"`)}
	}
	return nil
}

func (_c *AgentCommCreate) sqlSave(ctx context.Context) (*AgentComm, error) {
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

func (_c *AgentCommCreate) createSpec() (*AgentComm, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentComm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcomm.Table, sqlgraph.NewFieldSpec(agentcomm.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(agentcomm.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(agentcomm.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.ToAgent(); ok {
		_spec.SetField(agentcomm.FieldToAgent, field.TypeString, value)
		_node.ToAgent = &value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(agentcomm.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(agentcomm.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConsensusTimestamp(); ok {
		_spec.SetField(agentcomm.FieldConsensusTimestamp, field.TypeString, value)
		_node.ConsensusTimestamp = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentcomm.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentcomm.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentComm.Create().
//		SetTopicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentCommUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCommCreate) OnConflict(opts ...sql.ConflictOption) *AgentCommUpsertOne {
	_c.conflict = opts
	return &AgentCommUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentComm.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCommCreate) OnConflictColumns(columns ...string) *AgentCommUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentCommUpsertOne{
		create: _c,
	}
}

type (
	// AgentCommUpsertOne is the builder for "upsert"-ing
	//  one AgentComm node.
	AgentCommUpsertOne struct {
		create *AgentCommCreate
	}

	// AgentCommUpsert is the "OnConflict" setter.
	AgentCommUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetadata sets the "metadata" field.
func (u *AgentCommUpsert) SetMetadata(v map[string]interface{}) *AgentCommUpsert {
	u.Set(agentcomm.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentCommUpsert) UpdateMetadata() *AgentCommUpsert {
	u.SetExcluded(agentcomm.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentCommUpsert) ClearMetadata() *AgentCommUpsert {
	u.SetNull(agentcomm.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentComm.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentCommUpsertOne) UpdateNewValues() *AgentCommUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TopicID(); exists {
			s.SetIgnore(agentcomm.FieldTopicID)
		}
		if _, exists := u.create.mutation.FromAgent(); exists {
			s.SetIgnore(agentcomm.FieldFromAgent)
		}
		if _, exists := u.create.mutation.ToAgent(); exists {
			s.SetIgnore(agentcomm.FieldToAgent)
		}
		if _, exists := u.create.mutation.Text(); exists {
			s.SetIgnore(agentcomm.FieldText)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(agentcomm.FieldTimestamp)
		}
		if _, exists := u.create.mutation.ConsensusTimestamp(); exists {
			s.SetIgnore(agentcomm.FieldConsensusTimestamp)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentcomm.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentComm.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentCommUpsertOne) Ignore() *AgentCommUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentCommUpsertOne) DoNothing() *AgentCommUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCommCreate.OnConflict
// documentation for more info.
func (u *AgentCommUpsertOne) Update(set func(*AgentCommUpsert)) *AgentCommUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentCommUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AgentCommUpsertOne) SetMetadata(v map[string]interface{}) *AgentCommUpsertOne {
	return u.Update(func(s *AgentCommUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentCommUpsertOne) UpdateMetadata() *AgentCommUpsertOne {
	return u.Update(func(s *AgentCommUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentCommUpsertOne) ClearMetadata() *AgentCommUpsertOne {
	return u.Update(func(s *AgentCommUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *AgentCommUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCommCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentCommUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentCommUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentCommUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCommCreateBulk is the builder for creating many AgentComm entities in bulk.
type AgentCommCreateBulk struct {
	config
	err      error
	builders []*AgentCommCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentComm entities in the database.
func (_c *AgentCommCreateBulk) Save(ctx context.Context) ([]*AgentComm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentComm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentCommMutation)
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
func (_c *AgentCommCreateBulk) SaveX(ctx context.Context) []*AgentComm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCommCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCommCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentComm.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentCommUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCommCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentCommUpsertBulk {
	_c.conflict = opts
	return &AgentCommUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentComm.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCommCreateBulk) OnConflictColumns(columns ...string) *AgentCommUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentCommUpsertBulk{
		create: _c,
	}
}

// AgentCommUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentComm nodes.
type AgentCommUpsertBulk struct {
	create *AgentCommCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentComm.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentCommUpsertBulk) UpdateNewValues() *AgentCommUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TopicID(); exists {
				s.SetIgnore(agentcomm.FieldTopicID)
			}
			if _, exists := b.mutation.FromAgent(); exists {
				s.SetIgnore(agentcomm.FieldFromAgent)
			}
			if _, exists := b.mutation.ToAgent(); exists {
				s.SetIgnore(agentcomm.FieldToAgent)
			}
			if _, exists := b.mutation.Text(); exists {
				s.SetIgnore(agentcomm.FieldText)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(agentcomm.FieldTimestamp)
			}
			if _, exists := b.mutation.ConsensusTimestamp(); exists {
				s.SetIgnore(agentcomm.FieldConsensusTimestamp)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentcomm.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentComm.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentCommUpsertBulk) Ignore() *AgentCommUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentCommUpsertBulk) DoNothing() *AgentCommUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCommCreateBulk.OnConflict
// documentation for more info.
func (u *AgentCommUpsertBulk) Update(set func(*AgentCommUpsert)) *AgentCommUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentCommUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AgentCommUpsertBulk) SetMetadata(v map[string]interface{}) *AgentCommUpsertBulk {
	return u.Update(func(s *AgentCommUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentCommUpsertBulk) UpdateMetadata() *AgentCommUpsertBulk {
	return u.Update(func(s *AgentCommUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentCommUpsertBulk) ClearMetadata() *AgentCommUpsertBulk {
	return u.Update(func(s *AgentCommUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *AgentCommUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCommCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCommCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentCommUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
