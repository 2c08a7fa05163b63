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
	"github.com/agentmesh/hcs-indexer/ent/synccursor"
)

// SyncCursorCreate is the builder for creating a SyncCursor entity.
type SyncCursorCreate struct {
	config
	mutation *SyncCursorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLastTimestamp sets the "last_timestamp" field.
func (_c *SyncCursorCreate) SetLastTimestamp(v string) *SyncCursorCreate {
	_c.mutation.SetLastTimestamp(v)
	return _c
}

// SetLastSequenceNumber sets the "last_sequence_number" field.
func (_c *SyncCursorCreate) SetLastSequenceNumber(v int64) *SyncCursorCreate {
	_c.mutation.SetLastSequenceNumber(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SyncCursorCreate) SetUpdatedAt(v time.Time) *SyncCursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SyncCursorCreate) SetNillableUpdatedAt(v *time.Time) *SyncCursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SyncCursorCreate) SetID(v string) *SyncCursorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SyncCursorMutation object of the builder.
func (_c *SyncCursorCreate) Mutation() *SyncCursorMutation {
	return _c.mutation
}

// Save creates the SyncCursor in the database.
func (_c *SyncCursorCreate) Save(ctx context.Context) (*SyncCursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncCursorCreate) SaveX(ctx context.Context) *SyncCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncCursorCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := synccursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncCursorCreate) check() error {
	if _, ok := _c.mutation.LastTimestamp(); !ok {
		return &ValidationError{Name: "last_timestamp", err: errors.New(`ent: missing required field "SyncCursor.last_timestamp"`)}
	}
	if _, ok := _c.mutation.LastSequenceNumber(); !ok {
		return &ValidationError{Name: "last_sequence_number", err: errors.New(`ent: missing required field "SyncCursor.last_sequence_number"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SyncCursor.updated_at"`)}
	}
	return nil
}

func (_c *SyncCursorCreate) sqlSave(ctx context.Context) (*SyncCursor, error) {
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
			return nil, fmt.Errorf("unexpected SyncCursor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncCursorCreate) createSpec() (*SyncCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(synccursor.Table, sqlgraph.NewFieldSpec(synccursor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LastTimestamp(); ok {
		_spec.SetField(synccursor.FieldLastTimestamp, field.TypeString, value)
		_node.LastTimestamp = value
	}
	if value, ok := _c.mutation.LastSequenceNumber(); ok {
		_spec.SetField(synccursor.FieldLastSequenceNumber, field.TypeInt64, value)
		_node.LastSequenceNumber = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(synccursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncCursor.Create().
//		SetLastTimestamp(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncCursorUpsert) {
//			SetLastTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncCursorCreate) OnConflict(opts ...sql.ConflictOption) *SyncCursorUpsertOne {
	_c.conflict = opts
	return &SyncCursorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncCursorCreate) OnConflictColumns(columns ...string) *SyncCursorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncCursorUpsertOne{
		create: _c,
	}
}

type (
	// SyncCursorUpsertOne is the builder for "upsert"-ing
	//  one SyncCursor node.
	SyncCursorUpsertOne struct {
		create *SyncCursorCreate
	}

	// SyncCursorUpsert is the "OnConflict" setter.
	SyncCursorUpsert struct {
		*sql.UpdateSet
	}
)

// SetLastTimestamp sets the "last_timestamp" field.
func (u *SyncCursorUpsert) SetLastTimestamp(v string) *SyncCursorUpsert {
	u.Set(synccursor.FieldLastTimestamp, v)
	return u
}

// UpdateLastTimestamp sets the "last_timestamp" field to the value that was provided on create.
func (u *SyncCursorUpsert) UpdateLastTimestamp() *SyncCursorUpsert {
	u.SetExcluded(synccursor.FieldLastTimestamp)
	return u
}

// SetLastSequenceNumber sets the "last_sequence_number" field.
func (u *SyncCursorUpsert) SetLastSequenceNumber(v int64) *SyncCursorUpsert {
	u.Set(synccursor.FieldLastSequenceNumber, v)
	return u
}

// UpdateLastSequenceNumber sets the "last_sequence_number" field to the value that was provided on create.
func (u *SyncCursorUpsert) UpdateLastSequenceNumber() *SyncCursorUpsert {
	u.SetExcluded(synccursor.FieldLastSequenceNumber)
	return u
}

// AddLastSequenceNumber adds v to the "last_sequence_number" field.
func (u *SyncCursorUpsert) AddLastSequenceNumber(v int64) *SyncCursorUpsert {
	u.Add(synccursor.FieldLastSequenceNumber, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SyncCursorUpsert) SetUpdatedAt(v time.Time) *SyncCursorUpsert {
	u.Set(synccursor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SyncCursorUpsert) UpdateUpdatedAt() *SyncCursorUpsert {
	u.SetExcluded(synccursor.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SyncCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(synccursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncCursorUpsertOne) UpdateNewValues() *SyncCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(synccursor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncCursor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SyncCursorUpsertOne) Ignore() *SyncCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncCursorUpsertOne) DoNothing() *SyncCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncCursorCreate.OnConflict
// documentation for more info.
func (u *SyncCursorUpsertOne) Update(set func(*SyncCursorUpsert)) *SyncCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastTimestamp sets the "last_timestamp" field.
func (u *SyncCursorUpsertOne) SetLastTimestamp(v string) *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.SetLastTimestamp(v)
	})
}

// UpdateLastTimestamp sets the "last_timestamp" field to the value that was provided on create.
func (u *SyncCursorUpsertOne) UpdateLastTimestamp() *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.UpdateLastTimestamp()
	})
}

// SetLastSequenceNumber sets the "last_sequence_number" field.
func (u *SyncCursorUpsertOne) SetLastSequenceNumber(v int64) *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.SetLastSequenceNumber(v)
	})
}

// AddLastSequenceNumber adds v to the "last_sequence_number" field.
func (u *SyncCursorUpsertOne) AddLastSequenceNumber(v int64) *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.AddLastSequenceNumber(v)
	})
}

// UpdateLastSequenceNumber sets the "last_sequence_number" field to the value that was provided on create.
func (u *SyncCursorUpsertOne) UpdateLastSequenceNumber() *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.UpdateLastSequenceNumber()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SyncCursorUpsertOne) SetUpdatedAt(v time.Time) *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SyncCursorUpsertOne) UpdateUpdatedAt() *SyncCursorUpsertOne {
	return u.Update(func(s *SyncCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SyncCursorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncCursorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncCursorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SyncCursorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SyncCursorUpsertOne.ID is not supported by MySQL driver. Use SyncCursorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SyncCursorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SyncCursorCreateBulk is the builder for creating many SyncCursor entities in bulk.
type SyncCursorCreateBulk struct {
	config
	err      error
	builders []*SyncCursorCreate
	conflict []sql.ConflictOption
}

// Save creates the SyncCursor entities in the database.
func (_c *SyncCursorCreateBulk) Save(ctx context.Context) ([]*SyncCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncCursorMutation)
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
func (_c *SyncCursorCreateBulk) SaveX(ctx context.Context) []*SyncCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncCursor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncCursorUpsert) {
//			SetLastTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncCursorCreateBulk) OnConflict(opts ...sql.ConflictOption) *SyncCursorUpsertBulk {
	_c.conflict = opts
	return &SyncCursorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncCursorCreateBulk) OnConflictColumns(columns ...string) *SyncCursorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncCursorUpsertBulk{
		create: _c,
	}
}

// SyncCursorUpsertBulk is the builder for "upsert"-ing
// a bulk of SyncCursor nodes.
type SyncCursorUpsertBulk struct {
	create *SyncCursorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SyncCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(synccursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncCursorUpsertBulk) UpdateNewValues() *SyncCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(synccursor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncCursor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SyncCursorUpsertBulk) Ignore() *SyncCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncCursorUpsertBulk) DoNothing() *SyncCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncCursorCreateBulk.OnConflict
// documentation for more info.
func (u *SyncCursorUpsertBulk) Update(set func(*SyncCursorUpsert)) *SyncCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastTimestamp sets the "last_timestamp" field.
func (u *SyncCursorUpsertBulk) SetLastTimestamp(v string) *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.SetLastTimestamp(v)
	})
}

// UpdateLastTimestamp sets the "last_timestamp" field to the value that was provided on create.
func (u *SyncCursorUpsertBulk) UpdateLastTimestamp() *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.UpdateLastTimestamp()
	})
}

// SetLastSequenceNumber sets the "last_sequence_number" field.
func (u *SyncCursorUpsertBulk) SetLastSequenceNumber(v int64) *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.SetLastSequenceNumber(v)
	})
}

// AddLastSequenceNumber adds v to the "last_sequence_number" field.
func (u *SyncCursorUpsertBulk) AddLastSequenceNumber(v int64) *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.AddLastSequenceNumber(v)
	})
}

// UpdateLastSequenceNumber sets the "last_sequence_number" field to the value that was provided on create.
func (u *SyncCursorUpsertBulk) UpdateLastSequenceNumber() *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.UpdateLastSequenceNumber()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SyncCursorUpsertBulk) SetUpdatedAt(v time.Time) *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SyncCursorUpsertBulk) UpdateUpdatedAt() *SyncCursorUpsertBulk {
	return u.Update(func(s *SyncCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SyncCursorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SyncCursorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncCursorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncCursorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
