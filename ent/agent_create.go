// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmesh/hcs-indexer/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentCreate) SetAgentName(v string) *AgentCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *AgentCreate) SetPlatform(v string) *AgentCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentCreate) SetVersion(v string) *AgentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentCreate) SetNillableVersion(v *string) *AgentCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetOperatingAccount sets the "operating_account" field.
func (_c *AgentCreate) SetOperatingAccount(v string) *AgentCreate {
	_c.mutation.SetOperatingAccount(v)
	return _c
}

// SetNillableOperatingAccount sets the "operating_account" field if the given value is not nil.
func (_c *AgentCreate) SetNillableOperatingAccount(v *string) *AgentCreate {
	if v != nil {
		_c.SetOperatingAccount(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *AgentCreate) SetFirstSeenAt(v time.Time) *AgentCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableFirstSeenAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *AgentCreate) SetLastSeenAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastSeenAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentCreate) SetMetadata(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := agent.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := agent.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Agent.agent_name"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Agent.platform"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Agent.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Agent.last_seen_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agent.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(agent.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agent.FieldVersion, field.TypeString, value)
		_node.Version = &value
	}
	if value, ok := _c.mutation.OperatingAccount(); ok {
		_spec.SetField(agent.FieldOperatingAccount, field.TypeString, value)
		_node.OperatingAccount = &value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(agent.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetAgentName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentName sets the "agent_name" field.
func (u *AgentUpsert) SetAgentName(v string) *AgentUpsert {
	u.Set(agent.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAgentName() *AgentUpsert {
	u.SetExcluded(agent.FieldAgentName)
	return u
}

// SetPlatform sets the "platform" field.
func (u *AgentUpsert) SetPlatform(v string) *AgentUpsert {
	u.Set(agent.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *AgentUpsert) UpdatePlatform() *AgentUpsert {
	u.SetExcluded(agent.FieldPlatform)
	return u
}

// SetVersion sets the "version" field.
func (u *AgentUpsert) SetVersion(v string) *AgentUpsert {
	u.Set(agent.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentUpsert) UpdateVersion() *AgentUpsert {
	u.SetExcluded(agent.FieldVersion)
	return u
}

// ClearVersion clears the value of the "version" field.
func (u *AgentUpsert) ClearVersion() *AgentUpsert {
	u.SetNull(agent.FieldVersion)
	return u
}

// SetOperatingAccount sets the "operating_account" field.
func (u *AgentUpsert) SetOperatingAccount(v string) *AgentUpsert {
	u.Set(agent.FieldOperatingAccount, v)
	return u
}

// UpdateOperatingAccount sets the "operating_account" field to the value that was provided on create.
func (u *AgentUpsert) UpdateOperatingAccount() *AgentUpsert {
	u.SetExcluded(agent.FieldOperatingAccount)
	return u
}

// ClearOperatingAccount clears the value of the "operating_account" field.
func (u *AgentUpsert) ClearOperatingAccount() *AgentUpsert {
	u.SetNull(agent.FieldOperatingAccount)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsert) SetLastSeenAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastSeenAt() *AgentUpsert {
	u.SetExcluded(agent.FieldLastSeenAt)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AgentUpsert) SetMetadata(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentUpsert) UpdateMetadata() *AgentUpsert {
	u.SetExcluded(agent.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentUpsert) ClearMetadata() *AgentUpsert {
	u.SetNull(agent.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(agent.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AgentUpsertOne) SetAgentName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAgentName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAgentName()
	})
}

// SetPlatform sets the "platform" field.
func (u *AgentUpsertOne) SetPlatform(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdatePlatform() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePlatform()
	})
}

// SetVersion sets the "version" field.
func (u *AgentUpsertOne) SetVersion(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateVersion() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *AgentUpsertOne) ClearVersion() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearVersion()
	})
}

// SetOperatingAccount sets the "operating_account" field.
func (u *AgentUpsertOne) SetOperatingAccount(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetOperatingAccount(v)
	})
}

// UpdateOperatingAccount sets the "operating_account" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateOperatingAccount() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateOperatingAccount()
	})
}

// ClearOperatingAccount clears the value of the "operating_account" field.
func (u *AgentUpsertOne) ClearOperatingAccount() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearOperatingAccount()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsertOne) SetLastSeenAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastSeenAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AgentUpsertOne) SetMetadata(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateMetadata() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentUpsertOne) ClearMetadata() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(agent.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AgentUpsertBulk) SetAgentName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAgentName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAgentName()
	})
}

// SetPlatform sets the "platform" field.
func (u *AgentUpsertBulk) SetPlatform(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdatePlatform() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePlatform()
	})
}

// SetVersion sets the "version" field.
func (u *AgentUpsertBulk) SetVersion(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateVersion() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *AgentUpsertBulk) ClearVersion() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearVersion()
	})
}

// SetOperatingAccount sets the "operating_account" field.
func (u *AgentUpsertBulk) SetOperatingAccount(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetOperatingAccount(v)
	})
}

// UpdateOperatingAccount sets the "operating_account" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateOperatingAccount() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateOperatingAccount()
	})
}

// ClearOperatingAccount clears the value of the "operating_account" field.
func (u *AgentUpsertBulk) ClearOperatingAccount() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearOperatingAccount()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsertBulk) SetLastSeenAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastSeenAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AgentUpsertBulk) SetMetadata(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateMetadata() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentUpsertBulk) ClearMetadata() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
