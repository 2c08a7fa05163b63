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
	"github.com/agentmesh/hcs-indexer/ent/rental"
)

// RentalCreate is the builder for creating a Rental entity.
type RentalCreate struct {
	config
	mutation *RentalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *RentalCreate) SetAgentID(v string) *RentalCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRenter sets the "renter" field.
func (_c *RentalCreate) SetRenter(v string) *RentalCreate {
	_c.mutation.SetRenter(v)
	return _c
}

// SetNillableRenter sets the "renter" field if the given value is not nil.
func (_c *RentalCreate) SetNillableRenter(v *string) *RentalCreate {
	if v != nil {
		_c.SetRenter(*v)
	}
	return _c
}

// SetEscrowAccount sets the "escrow_account" field.
func (_c *RentalCreate) SetEscrowAccount(v string) *RentalCreate {
	_c.mutation.SetEscrowAccount(v)
	return _c
}

// SetNillableEscrowAccount sets the "escrow_account" field if the given value is not nil.
func (_c *RentalCreate) SetNillableEscrowAccount(v *string) *RentalCreate {
	if v != nil {
		_c.SetEscrowAccount(*v)
	}
	return _c
}

// SetStakeUsd sets the "stake_usd" field.
func (_c *RentalCreate) SetStakeUsd(v float64) *RentalCreate {
	_c.mutation.SetStakeUsd(v)
	return _c
}

// SetNillableStakeUsd sets the "stake_usd" field if the given value is not nil.
func (_c *RentalCreate) SetNillableStakeUsd(v *float64) *RentalCreate {
	if v != nil {
		_c.SetStakeUsd(*v)
	}
	return _c
}

// SetBufferUsd sets the "buffer_usd" field.
func (_c *RentalCreate) SetBufferUsd(v float64) *RentalCreate {
	_c.mutation.SetBufferUsd(v)
	return _c
}

// SetNillableBufferUsd sets the "buffer_usd" field if the given value is not nil.
func (_c *RentalCreate) SetNillableBufferUsd(v *float64) *RentalCreate {
	if v != nil {
		_c.SetBufferUsd(*v)
	}
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *RentalCreate) SetTotalCostUsd(v float64) *RentalCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *RentalCreate) SetNillableTotalCostUsd(v *float64) *RentalCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetSettlement sets the "settlement" field.
func (_c *RentalCreate) SetSettlement(v map[string]interface{}) *RentalCreate {
	_c.mutation.SetSettlement(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RentalCreate) SetStatus(v rental.Status) *RentalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RentalCreate) SetNillableStatus(v *rental.Status) *RentalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInitiatedAt sets the "initiated_at" field.
func (_c *RentalCreate) SetInitiatedAt(v int64) *RentalCreate {
	_c.mutation.SetInitiatedAt(v)
	return _c
}

// SetNillableInitiatedAt sets the "initiated_at" field if the given value is not nil.
func (_c *RentalCreate) SetNillableInitiatedAt(v *int64) *RentalCreate {
	if v != nil {
		_c.SetInitiatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RentalCreate) SetCompletedAt(v int64) *RentalCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RentalCreate) SetNillableCompletedAt(v *int64) *RentalCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RentalCreate) SetCreatedAt(v time.Time) *RentalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RentalCreate) SetNillableCreatedAt(v *time.Time) *RentalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RentalCreate) SetUpdatedAt(v time.Time) *RentalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RentalCreate) SetNillableUpdatedAt(v *time.Time) *RentalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RentalCreate) SetID(v string) *RentalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RentalMutation object of the builder.
func (_c *RentalCreate) Mutation() *RentalMutation {
	return _c.mutation
}

// Save creates the Rental in the database.
func (_c *RentalCreate) Save(ctx context.Context) (*Rental, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RentalCreate) SaveX(ctx context.Context) *Rental {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RentalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RentalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RentalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rental.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rental.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rental.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RentalCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Rental.agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Rental.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rental.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Rental.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Rental.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Rental.updated_at"`)}
	}
	return nil
}

func (_c *RentalCreate) sqlSave(ctx context.Context) (*Rental, error) {
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
			return nil, fmt.Errorf("unexpected Rental.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RentalCreate) createSpec() (*Rental, *sqlgraph.CreateSpec) {
	var (
		_node = &Rental{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rental.Table, sqlgraph.NewFieldSpec(rental.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(rental.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Renter(); ok {
		_spec.SetField(rental.FieldRenter, field.TypeString, value)
		_node.Renter = &value
	}
	if value, ok := _c.mutation.EscrowAccount(); ok {
		_spec.SetField(rental.FieldEscrowAccount, field.TypeString, value)
		_node.EscrowAccount = &value
	}
	if value, ok := _c.mutation.StakeUsd(); ok {
		_spec.SetField(rental.FieldStakeUsd, field.TypeFloat64, value)
		_node.StakeUsd = &value
	}
	if value, ok := _c.mutation.BufferUsd(); ok {
		_spec.SetField(rental.FieldBufferUsd, field.TypeFloat64, value)
		_node.BufferUsd = &value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(rental.FieldTotalCostUsd, field.TypeFloat64, value)
		_node.TotalCostUsd = &value
	}
	if value, ok := _c.mutation.Settlement(); ok {
		_spec.SetField(rental.FieldSettlement, field.TypeJSON, value)
		_node.Settlement = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rental.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InitiatedAt(); ok {
		_spec.SetField(rental.FieldInitiatedAt, field.TypeInt64, value)
		_node.InitiatedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(rental.FieldCompletedAt, field.TypeInt64, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rental.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rental.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Rental.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RentalUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *RentalCreate) OnConflict(opts ...sql.ConflictOption) *RentalUpsertOne {
	_c.conflict = opts
	return &RentalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Rental.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RentalCreate) OnConflictColumns(columns ...string) *RentalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RentalUpsertOne{
		create: _c,
	}
}

type (
	// RentalUpsertOne is the builder for "upsert"-ing
	//  one Rental node.
	RentalUpsertOne struct {
		create *RentalCreate
	}

	// RentalUpsert is the "OnConflict" setter.
	RentalUpsert struct {
		*sql.UpdateSet
	}
)

// SetRenter sets the "renter" field.
func (u *RentalUpsert) SetRenter(v string) *RentalUpsert {
	u.Set(rental.FieldRenter, v)
	return u
}

// UpdateRenter sets the "renter" field to the value that was provided on create.
func (u *RentalUpsert) UpdateRenter() *RentalUpsert {
	u.SetExcluded(rental.FieldRenter)
	return u
}

// ClearRenter clears the value of the "renter" field.
func (u *RentalUpsert) ClearRenter() *RentalUpsert {
	u.SetNull(rental.FieldRenter)
	return u
}

// SetEscrowAccount sets the "escrow_account" field.
func (u *RentalUpsert) SetEscrowAccount(v string) *RentalUpsert {
	u.Set(rental.FieldEscrowAccount, v)
	return u
}

// UpdateEscrowAccount sets the "escrow_account" field to the value that was provided on create.
func (u *RentalUpsert) UpdateEscrowAccount() *RentalUpsert {
	u.SetExcluded(rental.FieldEscrowAccount)
	return u
}

// ClearEscrowAccount clears the value of the "escrow_account" field.
func (u *RentalUpsert) ClearEscrowAccount() *RentalUpsert {
	u.SetNull(rental.FieldEscrowAccount)
	return u
}

// SetStakeUsd sets the "stake_usd" field.
func (u *RentalUpsert) SetStakeUsd(v float64) *RentalUpsert {
	u.Set(rental.FieldStakeUsd, v)
	return u
}

// UpdateStakeUsd sets the "stake_usd" field to the value that was provided on create.
func (u *RentalUpsert) UpdateStakeUsd() *RentalUpsert {
	u.SetExcluded(rental.FieldStakeUsd)
	return u
}

// AddStakeUsd adds v to the "stake_usd" field.
func (u *RentalUpsert) AddStakeUsd(v float64) *RentalUpsert {
	u.Add(rental.FieldStakeUsd, v)
	return u
}

// ClearStakeUsd clears the value of the "stake_usd" field.
func (u *RentalUpsert) ClearStakeUsd() *RentalUpsert {
	u.SetNull(rental.FieldStakeUsd)
	return u
}

// SetBufferUsd sets the "buffer_usd" field.
func (u *RentalUpsert) SetBufferUsd(v float64) *RentalUpsert {
	u.Set(rental.FieldBufferUsd, v)
	return u
}

// UpdateBufferUsd sets the "buffer_usd" field to the value that was provided on create.
func (u *RentalUpsert) UpdateBufferUsd() *RentalUpsert {
	u.SetExcluded(rental.FieldBufferUsd)
	return u
}

// AddBufferUsd adds v to the "buffer_usd" field.
func (u *RentalUpsert) AddBufferUsd(v float64) *RentalUpsert {
	u.Add(rental.FieldBufferUsd, v)
	return u
}

// ClearBufferUsd clears the value of the "buffer_usd" field.
func (u *RentalUpsert) ClearBufferUsd() *RentalUpsert {
	u.SetNull(rental.FieldBufferUsd)
	return u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (u *RentalUpsert) SetTotalCostUsd(v float64) *RentalUpsert {
	u.Set(rental.FieldTotalCostUsd, v)
	return u
}

// UpdateTotalCostUsd sets the "total_cost_usd" field to the value that was provided on create.
func (u *RentalUpsert) UpdateTotalCostUsd() *RentalUpsert {
	u.SetExcluded(rental.FieldTotalCostUsd)
	return u
}

// AddTotalCostUsd adds v to the "total_cost_usd" field.
func (u *RentalUpsert) AddTotalCostUsd(v float64) *RentalUpsert {
	u.Add(rental.FieldTotalCostUsd, v)
	return u
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (u *RentalUpsert) ClearTotalCostUsd() *RentalUpsert {
	u.SetNull(rental.FieldTotalCostUsd)
	return u
}

// SetSettlement sets the "settlement" field.
func (u *RentalUpsert) SetSettlement(v map[string]interface{}) *RentalUpsert {
	u.Set(rental.FieldSettlement, v)
	return u
}

// UpdateSettlement sets the "settlement" field to the value that was provided on create.
func (u *RentalUpsert) UpdateSettlement() *RentalUpsert {
	u.SetExcluded(rental.FieldSettlement)
	return u
}

// ClearSettlement clears the value of the "settlement" field.
func (u *RentalUpsert) ClearSettlement() *RentalUpsert {
	u.SetNull(rental.FieldSettlement)
	return u
}

// SetStatus sets the "status" field.
func (u *RentalUpsert) SetStatus(v rental.Status) *RentalUpsert {
	u.Set(rental.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RentalUpsert) UpdateStatus() *RentalUpsert {
	u.SetExcluded(rental.FieldStatus)
	return u
}

// SetInitiatedAt sets the "initiated_at" field.
func (u *RentalUpsert) SetInitiatedAt(v int64) *RentalUpsert {
	u.Set(rental.FieldInitiatedAt, v)
	return u
}

// UpdateInitiatedAt sets the "initiated_at" field to the value that was provided on create.
func (u *RentalUpsert) UpdateInitiatedAt() *RentalUpsert {
	u.SetExcluded(rental.FieldInitiatedAt)
	return u
}

// AddInitiatedAt adds v to the "initiated_at" field.
func (u *RentalUpsert) AddInitiatedAt(v int64) *RentalUpsert {
	u.Add(rental.FieldInitiatedAt, v)
	return u
}

// ClearInitiatedAt clears the value of the "initiated_at" field.
func (u *RentalUpsert) ClearInitiatedAt() *RentalUpsert {
	u.SetNull(rental.FieldInitiatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *RentalUpsert) SetCompletedAt(v int64) *RentalUpsert {
	u.Set(rental.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RentalUpsert) UpdateCompletedAt() *RentalUpsert {
	u.SetExcluded(rental.FieldCompletedAt)
	return u
}

// AddCompletedAt adds v to the "completed_at" field.
func (u *RentalUpsert) AddCompletedAt(v int64) *RentalUpsert {
	u.Add(rental.FieldCompletedAt, v)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RentalUpsert) ClearCompletedAt() *RentalUpsert {
	u.SetNull(rental.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RentalUpsert) SetUpdatedAt(v time.Time) *RentalUpsert {
	u.Set(rental.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RentalUpsert) UpdateUpdatedAt() *RentalUpsert {
	u.SetExcluded(rental.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Rental.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rental.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RentalUpsertOne) UpdateNewValues() *RentalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rental.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(rental.FieldAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rental.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Rental.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RentalUpsertOne) Ignore() *RentalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RentalUpsertOne) DoNothing() *RentalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RentalCreate.OnConflict
// documentation for more info.
func (u *RentalUpsertOne) Update(set func(*RentalUpsert)) *RentalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RentalUpsert{UpdateSet: update})
	}))
	return u
}

// SetRenter sets the "renter" field.
func (u *RentalUpsertOne) SetRenter(v string) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetRenter(v)
	})
}

// UpdateRenter sets the "renter" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateRenter() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateRenter()
	})
}

// ClearRenter clears the value of the "renter" field.
func (u *RentalUpsertOne) ClearRenter() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearRenter()
	})
}

// SetEscrowAccount sets the "escrow_account" field.
func (u *RentalUpsertOne) SetEscrowAccount(v string) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetEscrowAccount(v)
	})
}

// UpdateEscrowAccount sets the "escrow_account" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateEscrowAccount() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateEscrowAccount()
	})
}

// ClearEscrowAccount clears the value of the "escrow_account" field.
func (u *RentalUpsertOne) ClearEscrowAccount() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearEscrowAccount()
	})
}

// SetStakeUsd sets the "stake_usd" field.
func (u *RentalUpsertOne) SetStakeUsd(v float64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetStakeUsd(v)
	})
}

// AddStakeUsd adds v to the "stake_usd" field.
func (u *RentalUpsertOne) AddStakeUsd(v float64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.AddStakeUsd(v)
	})
}

// UpdateStakeUsd sets the "stake_usd" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateStakeUsd() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateStakeUsd()
	})
}

// ClearStakeUsd clears the value of the "stake_usd" field.
func (u *RentalUpsertOne) ClearStakeUsd() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearStakeUsd()
	})
}

// SetBufferUsd sets the "buffer_usd" field.
func (u *RentalUpsertOne) SetBufferUsd(v float64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetBufferUsd(v)
	})
}

// AddBufferUsd adds v to the "buffer_usd" field.
func (u *RentalUpsertOne) AddBufferUsd(v float64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.AddBufferUsd(v)
	})
}

// UpdateBufferUsd sets the "buffer_usd" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateBufferUsd() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateBufferUsd()
	})
}

// ClearBufferUsd clears the value of the "buffer_usd" field.
func (u *RentalUpsertOne) ClearBufferUsd() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearBufferUsd()
	})
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (u *RentalUpsertOne) SetTotalCostUsd(v float64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetTotalCostUsd(v)
	})
}

// AddTotalCostUsd adds v to the "total_cost_usd" field.
func (u *RentalUpsertOne) AddTotalCostUsd(v float64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.AddTotalCostUsd(v)
	})
}

// UpdateTotalCostUsd sets the "total_cost_usd" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateTotalCostUsd() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateTotalCostUsd()
	})
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (u *RentalUpsertOne) ClearTotalCostUsd() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearTotalCostUsd()
	})
}

// SetSettlement sets the "settlement" field.
func (u *RentalUpsertOne) SetSettlement(v map[string]interface{}) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetSettlement(v)
	})
}

// UpdateSettlement sets the "settlement" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateSettlement() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateSettlement()
	})
}

// ClearSettlement clears the value of the "settlement" field.
func (u *RentalUpsertOne) ClearSettlement() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearSettlement()
	})
}

// SetStatus sets the "status" field.
func (u *RentalUpsertOne) SetStatus(v rental.Status) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateStatus() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateStatus()
	})
}

// SetInitiatedAt sets the "initiated_at" field.
func (u *RentalUpsertOne) SetInitiatedAt(v int64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetInitiatedAt(v)
	})
}

// AddInitiatedAt adds v to the "initiated_at" field.
func (u *RentalUpsertOne) AddInitiatedAt(v int64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.AddInitiatedAt(v)
	})
}

// UpdateInitiatedAt sets the "initiated_at" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateInitiatedAt() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateInitiatedAt()
	})
}

// ClearInitiatedAt clears the value of the "initiated_at" field.
func (u *RentalUpsertOne) ClearInitiatedAt() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearInitiatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RentalUpsertOne) SetCompletedAt(v int64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetCompletedAt(v)
	})
}

// AddCompletedAt adds v to the "completed_at" field.
func (u *RentalUpsertOne) AddCompletedAt(v int64) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.AddCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateCompletedAt() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RentalUpsertOne) ClearCompletedAt() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RentalUpsertOne) SetUpdatedAt(v time.Time) *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RentalUpsertOne) UpdateUpdatedAt() *RentalUpsertOne {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RentalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RentalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RentalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RentalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RentalUpsertOne.ID is not supported by MySQL driver. Use RentalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RentalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RentalCreateBulk is the builder for creating many Rental entities in bulk.
type RentalCreateBulk struct {
	config
	err      error
	builders []*RentalCreate
	conflict []sql.ConflictOption
}

// Save creates the Rental entities in the database.
func (_c *RentalCreateBulk) Save(ctx context.Context) ([]*Rental, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rental, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RentalMutation)
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
func (_c *RentalCreateBulk) SaveX(ctx context.Context) []*Rental {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RentalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RentalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Rental.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RentalUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *RentalCreateBulk) OnConflict(opts ...sql.ConflictOption) *RentalUpsertBulk {
	_c.conflict = opts
	return &RentalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Rental.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RentalCreateBulk) OnConflictColumns(columns ...string) *RentalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RentalUpsertBulk{
		create: _c,
	}
}

// RentalUpsertBulk is the builder for "upsert"-ing
// a bulk of Rental nodes.
type RentalUpsertBulk struct {
	create *RentalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Rental.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rental.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RentalUpsertBulk) UpdateNewValues() *RentalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rental.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(rental.FieldAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rental.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Rental.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RentalUpsertBulk) Ignore() *RentalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RentalUpsertBulk) DoNothing() *RentalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RentalCreateBulk.OnConflict
// documentation for more info.
func (u *RentalUpsertBulk) Update(set func(*RentalUpsert)) *RentalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RentalUpsert{UpdateSet: update})
	}))
	return u
}

// SetRenter sets the "renter" field.
func (u *RentalUpsertBulk) SetRenter(v string) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetRenter(v)
	})
}

// UpdateRenter sets the "renter" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateRenter() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateRenter()
	})
}

// ClearRenter clears the value of the "renter" field.
func (u *RentalUpsertBulk) ClearRenter() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearRenter()
	})
}

// SetEscrowAccount sets the "escrow_account" field.
func (u *RentalUpsertBulk) SetEscrowAccount(v string) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetEscrowAccount(v)
	})
}

// UpdateEscrowAccount sets the "escrow_account" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateEscrowAccount() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateEscrowAccount()
	})
}

// ClearEscrowAccount clears the value of the "escrow_account" field.
func (u *RentalUpsertBulk) ClearEscrowAccount() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearEscrowAccount()
	})
}

// SetStakeUsd sets the "stake_usd" field.
func (u *RentalUpsertBulk) SetStakeUsd(v float64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetStakeUsd(v)
	})
}

// AddStakeUsd adds v to the "stake_usd" field.
func (u *RentalUpsertBulk) AddStakeUsd(v float64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.AddStakeUsd(v)
	})
}

// UpdateStakeUsd sets the "stake_usd" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateStakeUsd() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateStakeUsd()
	})
}

// ClearStakeUsd clears the value of the "stake_usd" field.
func (u *RentalUpsertBulk) ClearStakeUsd() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearStakeUsd()
	})
}

// SetBufferUsd sets the "buffer_usd" field.
func (u *RentalUpsertBulk) SetBufferUsd(v float64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetBufferUsd(v)
	})
}

// AddBufferUsd adds v to the "buffer_usd" field.
func (u *RentalUpsertBulk) AddBufferUsd(v float64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.AddBufferUsd(v)
	})
}

// UpdateBufferUsd sets the "buffer_usd" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateBufferUsd() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateBufferUsd()
	})
}

// ClearBufferUsd clears the value of the "buffer_usd" field.
func (u *RentalUpsertBulk) ClearBufferUsd() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearBufferUsd()
	})
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (u *RentalUpsertBulk) SetTotalCostUsd(v float64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetTotalCostUsd(v)
	})
}

// AddTotalCostUsd adds v to the "total_cost_usd" field.
func (u *RentalUpsertBulk) AddTotalCostUsd(v float64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.AddTotalCostUsd(v)
	})
}

// UpdateTotalCostUsd sets the "total_cost_usd" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateTotalCostUsd() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateTotalCostUsd()
	})
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (u *RentalUpsertBulk) ClearTotalCostUsd() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearTotalCostUsd()
	})
}

// SetSettlement sets the "settlement" field.
func (u *RentalUpsertBulk) SetSettlement(v map[string]interface{}) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetSettlement(v)
	})
}

// UpdateSettlement sets the "settlement" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateSettlement() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateSettlement()
	})
}

// ClearSettlement clears the value of the "settlement" field.
func (u *RentalUpsertBulk) ClearSettlement() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearSettlement()
	})
}

// SetStatus sets the "status" field.
func (u *RentalUpsertBulk) SetStatus(v rental.Status) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateStatus() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateStatus()
	})
}

// SetInitiatedAt sets the "initiated_at" field.
func (u *RentalUpsertBulk) SetInitiatedAt(v int64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetInitiatedAt(v)
	})
}

// AddInitiatedAt adds v to the "initiated_at" field.
func (u *RentalUpsertBulk) AddInitiatedAt(v int64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.AddInitiatedAt(v)
	})
}

// UpdateInitiatedAt sets the "initiated_at" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateInitiatedAt() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateInitiatedAt()
	})
}

// ClearInitiatedAt clears the value of the "initiated_at" field.
func (u *RentalUpsertBulk) ClearInitiatedAt() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearInitiatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RentalUpsertBulk) SetCompletedAt(v int64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetCompletedAt(v)
	})
}

// AddCompletedAt adds v to the "completed_at" field.
func (u *RentalUpsertBulk) AddCompletedAt(v int64) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.AddCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateCompletedAt() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RentalUpsertBulk) ClearCompletedAt() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RentalUpsertBulk) SetUpdatedAt(v time.Time) *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RentalUpsertBulk) UpdateUpdatedAt() *RentalUpsertBulk {
	return u.Update(func(s *RentalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RentalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RentalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RentalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RentalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
