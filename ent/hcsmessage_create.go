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
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
)

// HCSMessageCreate is the builder for creating a HCSMessage entity.
type HCSMessageCreate struct {
	config
	mutation *HCSMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTopicID sets the "topic_id" field.
func (_c *HCSMessageCreate) SetTopicID(v string) *HCSMessageCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetConsensusTimestamp sets the "consensus_timestamp" field.
func (_c *HCSMessageCreate) SetConsensusTimestamp(v string) *HCSMessageCreate {
	_c.mutation.SetConsensusTimestamp(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *HCSMessageCreate) SetSequenceNumber(v int64) *HCSMessageCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetPayerAccountID sets the "payer_account_id" field.
func (_c *HCSMessageCreate) SetPayerAccountID(v string) *HCSMessageCreate {
	_c.mutation.SetPayerAccountID(v)
	return _c
}

// SetNillablePayerAccountID sets the "payer_account_id" field if the given value is not nil.
func (_c *HCSMessageCreate) SetNillablePayerAccountID(v *string) *HCSMessageCreate {
	if v != nil {
		_c.SetPayerAccountID(*v)
	}
	return _c
}

// SetMessageBase64 sets the "message_base64" field.
func (_c *HCSMessageCreate) SetMessageBase64(v string) *HCSMessageCreate {
	_c.mutation.SetMessageBase64(v)
	return _c
}

// SetDecodedJSON sets the "decoded_json" field.
func (_c *HCSMessageCreate) SetDecodedJSON(v map[string]interface{}) *HCSMessageCreate {
	_c.mutation.SetDecodedJSON(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *HCSMessageCreate) SetMessageType(v string) *HCSMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *HCSMessageCreate) SetNillableMessageType(v *string) *HCSMessageCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HCSMessageCreate) SetCreatedAt(v time.Time) *HCSMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HCSMessageCreate) SetNillableCreatedAt(v *time.Time) *HCSMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the HCSMessageMutation object of the builder.
func (_c *HCSMessageCreate) Mutation() *HCSMessageMutation {
	return _c.mutation
}

// Save creates the HCSMessage in the database.
func (_c *HCSMessageCreate) Save(ctx context.Context) (*HCSMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HCSMessageCreate) SaveX(ctx context.Context) *HCSMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HCSMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HCSMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HCSMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hcsmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HCSMessageCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "HCSMessage.topic_id"`)}
	}
	if _, ok := _c.mutation.ConsensusTimestamp(); !ok {
		return &ValidationError{Name: "consensus_timestamp", err: errors.New(`ent: missing required field "HCSMessage.consensus_timestamp"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "HCSMessage.sequence_number"`)}
	}
	if _, ok := _c.mutation.MessageBase64(); !ok {
		return &ValidationError{Name: "message_base64", err: errors.New(`ent: missing required field "HCSMessage.message_base64"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HCSMessage.created_at"`)}
	}
	return nil
}

func (_c *HCSMessageCreate) sqlSave(ctx context.Context) (*HCSMessage, error) {
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

func (_c *HCSMessageCreate) createSpec() (*HCSMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &HCSMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hcsmessage.Table, sqlgraph.NewFieldSpec(hcsmessage.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(hcsmessage.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.ConsensusTimestamp(); ok {
		_spec.SetField(hcsmessage.FieldConsensusTimestamp, field.TypeString, value)
		_node.ConsensusTimestamp = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(hcsmessage.FieldSequenceNumber, field.TypeInt64, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.PayerAccountID(); ok {
		_spec.SetField(hcsmessage.FieldPayerAccountID, field.TypeString, value)
		_node.PayerAccountID = &value
	}
	if value, ok := _c.mutation.MessageBase64(); ok {
		_spec.SetField(hcsmessage.FieldMessageBase64, field.TypeString, value)
		_node.MessageBase64 = value
	}
	if value, ok := _c.mutation.DecodedJSON(); ok {
		_spec.SetField(hcsmessage.FieldDecodedJSON, field.TypeJSON, value)
		_node.DecodedJSON = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(hcsmessage.FieldMessageType, field.TypeString, value)
		_node.MessageType = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hcsmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HCSMessage.Create().
//		SetTopicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HCSMessageUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *HCSMessageCreate) OnConflict(opts ...sql.ConflictOption) *HCSMessageUpsertOne {
	_c.conflict = opts
	return &HCSMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HCSMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HCSMessageCreate) OnConflictColumns(columns ...string) *HCSMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HCSMessageUpsertOne{
		create: _c,
	}
}

type (
	// HCSMessageUpsertOne is the builder for "upsert"-ing
	//  one HCSMessage node.
	HCSMessageUpsertOne struct {
		create *HCSMessageCreate
	}

	// HCSMessageUpsert is the "OnConflict" setter.
	HCSMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetDecodedJSON sets the "decoded_json" field.
func (u *HCSMessageUpsert) SetDecodedJSON(v map[string]interface{}) *HCSMessageUpsert {
	u.Set(hcsmessage.FieldDecodedJSON, v)
	return u
}

// UpdateDecodedJSON sets the "decoded_json" field to the value that was provided on create.
func (u *HCSMessageUpsert) UpdateDecodedJSON() *HCSMessageUpsert {
	u.SetExcluded(hcsmessage.FieldDecodedJSON)
	return u
}

// ClearDecodedJSON clears the value of the "decoded_json" field.
func (u *HCSMessageUpsert) ClearDecodedJSON() *HCSMessageUpsert {
	u.SetNull(hcsmessage.FieldDecodedJSON)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *HCSMessageUpsert) SetMessageType(v string) *HCSMessageUpsert {
	u.Set(hcsmessage.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *HCSMessageUpsert) UpdateMessageType() *HCSMessageUpsert {
	u.SetExcluded(hcsmessage.FieldMessageType)
	return u
}

// ClearMessageType clears the value of the "message_type" field.
func (u *HCSMessageUpsert) ClearMessageType() *HCSMessageUpsert {
	u.SetNull(hcsmessage.FieldMessageType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HCSMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HCSMessageUpsertOne) UpdateNewValues() *HCSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TopicID(); exists {
			s.SetIgnore(hcsmessage.FieldTopicID)
		}
		if _, exists := u.create.mutation.ConsensusTimestamp(); exists {
			s.SetIgnore(hcsmessage.FieldConsensusTimestamp)
		}
		if _, exists := u.create.mutation.SequenceNumber(); exists {
			s.SetIgnore(hcsmessage.FieldSequenceNumber)
		}
		if _, exists := u.create.mutation.PayerAccountID(); exists {
			s.SetIgnore(hcsmessage.FieldPayerAccountID)
		}
		if _, exists := u.create.mutation.MessageBase64(); exists {
			s.SetIgnore(hcsmessage.FieldMessageBase64)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hcsmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HCSMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HCSMessageUpsertOne) Ignore() *HCSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HCSMessageUpsertOne) DoNothing() *HCSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HCSMessageCreate.OnConflict
// documentation for more info.
func (u *HCSMessageUpsertOne) Update(set func(*HCSMessageUpsert)) *HCSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HCSMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetDecodedJSON sets the "decoded_json" field.
func (u *HCSMessageUpsertOne) SetDecodedJSON(v map[string]interface{}) *HCSMessageUpsertOne {
	return u.Update(func(s *HCSMessageUpsert) {
		s.SetDecodedJSON(v)
	})
}

// UpdateDecodedJSON sets the "decoded_json" field to the value that was provided on create.
func (u *HCSMessageUpsertOne) UpdateDecodedJSON() *HCSMessageUpsertOne {
	return u.Update(func(s *HCSMessageUpsert) {
		s.UpdateDecodedJSON()
	})
}

// ClearDecodedJSON clears the value of the "decoded_json" field.
func (u *HCSMessageUpsertOne) ClearDecodedJSON() *HCSMessageUpsertOne {
	return u.Update(func(s *HCSMessageUpsert) {
		s.ClearDecodedJSON()
	})
}

// SetMessageType sets the "message_type" field.
func (u *HCSMessageUpsertOne) SetMessageType(v string) *HCSMessageUpsertOne {
	return u.Update(func(s *HCSMessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *HCSMessageUpsertOne) UpdateMessageType() *HCSMessageUpsertOne {
	return u.Update(func(s *HCSMessageUpsert) {
		s.UpdateMessageType()
	})
}

// ClearMessageType clears the value of the "message_type" field.
func (u *HCSMessageUpsertOne) ClearMessageType() *HCSMessageUpsertOne {
	return u.Update(func(s *HCSMessageUpsert) {
		s.ClearMessageType()
	})
}

// Exec executes the query.
func (u *HCSMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HCSMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HCSMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HCSMessageUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HCSMessageUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HCSMessageCreateBulk is the builder for creating many HCSMessage entities in bulk.
type HCSMessageCreateBulk struct {
	config
	err      error
	builders []*HCSMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the HCSMessage entities in the database.
func (_c *HCSMessageCreateBulk) Save(ctx context.Context) ([]*HCSMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HCSMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HCSMessageMutation)
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
func (_c *HCSMessageCreateBulk) SaveX(ctx context.Context) []*HCSMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HCSMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HCSMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HCSMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HCSMessageUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *HCSMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *HCSMessageUpsertBulk {
	_c.conflict = opts
	return &HCSMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HCSMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HCSMessageCreateBulk) OnConflictColumns(columns ...string) *HCSMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HCSMessageUpsertBulk{
		create: _c,
	}
}

// HCSMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of HCSMessage nodes.
type HCSMessageUpsertBulk struct {
	create *HCSMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HCSMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HCSMessageUpsertBulk) UpdateNewValues() *HCSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TopicID(); exists {
				s.SetIgnore(hcsmessage.FieldTopicID)
			}
			if _, exists := b.mutation.ConsensusTimestamp(); exists {
				s.SetIgnore(hcsmessage.FieldConsensusTimestamp)
			}
			if _, exists := b.mutation.SequenceNumber(); exists {
				s.SetIgnore(hcsmessage.FieldSequenceNumber)
			}
			if _, exists := b.mutation.PayerAccountID(); exists {
				s.SetIgnore(hcsmessage.FieldPayerAccountID)
			}
			if _, exists := b.mutation.MessageBase64(); exists {
				s.SetIgnore(hcsmessage.FieldMessageBase64)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hcsmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HCSMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HCSMessageUpsertBulk) Ignore() *HCSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HCSMessageUpsertBulk) DoNothing() *HCSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HCSMessageCreateBulk.OnConflict
// documentation for more info.
func (u *HCSMessageUpsertBulk) Update(set func(*HCSMessageUpsert)) *HCSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HCSMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetDecodedJSON sets the "decoded_json" field.
func (u *HCSMessageUpsertBulk) SetDecodedJSON(v map[string]interface{}) *HCSMessageUpsertBulk {
	return u.Update(func(s *HCSMessageUpsert) {
		s.SetDecodedJSON(v)
	})
}

// UpdateDecodedJSON sets the "decoded_json" field to the value that was provided on create.
func (u *HCSMessageUpsertBulk) UpdateDecodedJSON() *HCSMessageUpsertBulk {
	return u.Update(func(s *HCSMessageUpsert) {
		s.UpdateDecodedJSON()
	})
}

// ClearDecodedJSON clears the value of the "decoded_json" field.
func (u *HCSMessageUpsertBulk) ClearDecodedJSON() *HCSMessageUpsertBulk {
	return u.Update(func(s *HCSMessageUpsert) {
		s.ClearDecodedJSON()
	})
}

// SetMessageType sets the "message_type" field.
func (u *HCSMessageUpsertBulk) SetMessageType(v string) *HCSMessageUpsertBulk {
	return u.Update(func(s *HCSMessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *HCSMessageUpsertBulk) UpdateMessageType() *HCSMessageUpsertBulk {
	return u.Update(func(s *HCSMessageUpsert) {
		s.UpdateMessageType()
	})
}

// ClearMessageType clears the value of the "message_type" field.
func (u *HCSMessageUpsertBulk) ClearMessageType() *HCSMessageUpsertBulk {
	return u.Update(func(s *HCSMessageUpsert) {
		s.ClearMessageType()
	})
}

// Exec executes the query.
func (u *HCSMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HCSMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HCSMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HCSMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
