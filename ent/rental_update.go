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
	"github.com/agentmesh/hcs-indexer/ent/predicate"
	"github.com/agentmesh/hcs-indexer/ent/rental"
)

// RentalUpdate is the builder for updating Rental entities.
type RentalUpdate struct {
	config
	hooks    []Hook
	mutation *RentalMutation
}

// Where appends a list predicates to the RentalUpdate builder.
func (_u *RentalUpdate) Where(ps ...predicate.Rental) *RentalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRenter sets the "renter" field.
func (_u *RentalUpdate) SetRenter(v string) *RentalUpdate {
	_u.mutation.SetRenter(v)
	return _u
}

// SetNillableRenter sets the "renter" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableRenter(v *string) *RentalUpdate {
	if v != nil {
		_u.SetRenter(*v)
	}
	return _u
}

// ClearRenter clears the value of the "renter" field.
func (_u *RentalUpdate) ClearRenter() *RentalUpdate {
	_u.mutation.ClearRenter()
	return _u
}

// SetEscrowAccount sets the "escrow_account" field.
func (_u *RentalUpdate) SetEscrowAccount(v string) *RentalUpdate {
	_u.mutation.SetEscrowAccount(v)
	return _u
}

// SetNillableEscrowAccount sets the "escrow_account" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableEscrowAccount(v *string) *RentalUpdate {
	if v != nil {
		_u.SetEscrowAccount(*v)
	}
	return _u
}

// ClearEscrowAccount clears the value of the "escrow_account" field.
func (_u *RentalUpdate) ClearEscrowAccount() *RentalUpdate {
	_u.mutation.ClearEscrowAccount()
	return _u
}

// SetStakeUsd sets the "stake_usd" field.
func (_u *RentalUpdate) SetStakeUsd(v float64) *RentalUpdate {
	_u.mutation.ResetStakeUsd()
	_u.mutation.SetStakeUsd(v)
	return _u
}

// SetNillableStakeUsd sets the "stake_usd" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableStakeUsd(v *float64) *RentalUpdate {
	if v != nil {
		_u.SetStakeUsd(*v)
	}
	return _u
}

// AddStakeUsd adds value to the "stake_usd" field.
func (_u *RentalUpdate) AddStakeUsd(v float64) *RentalUpdate {
	_u.mutation.AddStakeUsd(v)
	return _u
}

// ClearStakeUsd clears the value of the "stake_usd" field.
func (_u *RentalUpdate) ClearStakeUsd() *RentalUpdate {
	_u.mutation.ClearStakeUsd()
	return _u
}

// SetBufferUsd sets the "buffer_usd" field.
func (_u *RentalUpdate) SetBufferUsd(v float64) *RentalUpdate {
	_u.mutation.ResetBufferUsd()
	_u.mutation.SetBufferUsd(v)
	return _u
}

// SetNillableBufferUsd sets the "buffer_usd" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableBufferUsd(v *float64) *RentalUpdate {
	if v != nil {
		_u.SetBufferUsd(*v)
	}
	return _u
}

// AddBufferUsd adds value to the "buffer_usd" field.
func (_u *RentalUpdate) AddBufferUsd(v float64) *RentalUpdate {
	_u.mutation.AddBufferUsd(v)
	return _u
}

// ClearBufferUsd clears the value of the "buffer_usd" field.
func (_u *RentalUpdate) ClearBufferUsd() *RentalUpdate {
	_u.mutation.ClearBufferUsd()
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *RentalUpdate) SetTotalCostUsd(v float64) *RentalUpdate {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableTotalCostUsd(v *float64) *RentalUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *RentalUpdate) AddTotalCostUsd(v float64) *RentalUpdate {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (_u *RentalUpdate) ClearTotalCostUsd() *RentalUpdate {
	_u.mutation.ClearTotalCostUsd()
	return _u
}

// SetSettlement sets the "settlement" field.
func (_u *RentalUpdate) SetSettlement(v map[string]interface{}) *RentalUpdate {
	_u.mutation.SetSettlement(v)
	return _u
}

// ClearSettlement clears the value of the "settlement" field.
func (_u *RentalUpdate) ClearSettlement() *RentalUpdate {
	_u.mutation.ClearSettlement()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RentalUpdate) SetStatus(v rental.Status) *RentalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableStatus(v *rental.Status) *RentalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInitiatedAt sets the "initiated_at" field.
func (_u *RentalUpdate) SetInitiatedAt(v int64) *RentalUpdate {
	_u.mutation.ResetInitiatedAt()
	_u.mutation.SetInitiatedAt(v)
	return _u
}

// SetNillableInitiatedAt sets the "initiated_at" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableInitiatedAt(v *int64) *RentalUpdate {
	if v != nil {
		_u.SetInitiatedAt(*v)
	}
	return _u
}

// AddInitiatedAt adds value to the "initiated_at" field.
func (_u *RentalUpdate) AddInitiatedAt(v int64) *RentalUpdate {
	_u.mutation.AddInitiatedAt(v)
	return _u
}

// ClearInitiatedAt clears the value of the "initiated_at" field.
func (_u *RentalUpdate) ClearInitiatedAt() *RentalUpdate {
	_u.mutation.ClearInitiatedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RentalUpdate) SetCompletedAt(v int64) *RentalUpdate {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RentalUpdate) SetNillableCompletedAt(v *int64) *RentalUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *RentalUpdate) AddCompletedAt(v int64) *RentalUpdate {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RentalUpdate) ClearCompletedAt() *RentalUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RentalUpdate) SetUpdatedAt(v time.Time) *RentalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RentalMutation object of the builder.
func (_u *RentalUpdate) Mutation() *RentalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RentalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RentalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RentalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RentalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RentalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rental.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RentalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rental.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Rental.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RentalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rental.Table, rental.Columns, sqlgraph.NewFieldSpec(rental.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Renter(); ok {
		_spec.SetField(rental.FieldRenter, field.TypeString, value)
	}
	if _u.mutation.RenterCleared() {
		_spec.ClearField(rental.FieldRenter, field.TypeString)
	}
	if value, ok := _u.mutation.EscrowAccount(); ok {
		_spec.SetField(rental.FieldEscrowAccount, field.TypeString, value)
	}
	if _u.mutation.EscrowAccountCleared() {
		_spec.ClearField(rental.FieldEscrowAccount, field.TypeString)
	}
	if value, ok := _u.mutation.StakeUsd(); ok {
		_spec.SetField(rental.FieldStakeUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStakeUsd(); ok {
		_spec.AddField(rental.FieldStakeUsd, field.TypeFloat64, value)
	}
	if _u.mutation.StakeUsdCleared() {
		_spec.ClearField(rental.FieldStakeUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BufferUsd(); ok {
		_spec.SetField(rental.FieldBufferUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBufferUsd(); ok {
		_spec.AddField(rental.FieldBufferUsd, field.TypeFloat64, value)
	}
	if _u.mutation.BufferUsdCleared() {
		_spec.ClearField(rental.FieldBufferUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(rental.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(rental.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCostUsdCleared() {
		_spec.ClearField(rental.FieldTotalCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Settlement(); ok {
		_spec.SetField(rental.FieldSettlement, field.TypeJSON, value)
	}
	if _u.mutation.SettlementCleared() {
		_spec.ClearField(rental.FieldSettlement, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rental.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InitiatedAt(); ok {
		_spec.SetField(rental.FieldInitiatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInitiatedAt(); ok {
		_spec.AddField(rental.FieldInitiatedAt, field.TypeInt64, value)
	}
	if _u.mutation.InitiatedAtCleared() {
		_spec.ClearField(rental.FieldInitiatedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(rental.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(rental.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(rental.FieldCompletedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rental.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rental.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RentalUpdateOne is the builder for updating a single Rental entity.
type RentalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RentalMutation
}

// SetRenter sets the "renter" field.
func (_u *RentalUpdateOne) SetRenter(v string) *RentalUpdateOne {
	_u.mutation.SetRenter(v)
	return _u
}

// SetNillableRenter sets the "renter" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableRenter(v *string) *RentalUpdateOne {
	if v != nil {
		_u.SetRenter(*v)
	}
	return _u
}

// ClearRenter clears the value of the "renter" field.
func (_u *RentalUpdateOne) ClearRenter() *RentalUpdateOne {
	_u.mutation.ClearRenter()
	return _u
}

// SetEscrowAccount sets the "escrow_account" field.
func (_u *RentalUpdateOne) SetEscrowAccount(v string) *RentalUpdateOne {
	_u.mutation.SetEscrowAccount(v)
	return _u
}

// SetNillableEscrowAccount sets the "escrow_account" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableEscrowAccount(v *string) *RentalUpdateOne {
	if v != nil {
		_u.SetEscrowAccount(*v)
	}
	return _u
}

// ClearEscrowAccount clears the value of the "escrow_account" field.
func (_u *RentalUpdateOne) ClearEscrowAccount() *RentalUpdateOne {
	_u.mutation.ClearEscrowAccount()
	return _u
}

// SetStakeUsd sets the "stake_usd" field.
func (_u *RentalUpdateOne) SetStakeUsd(v float64) *RentalUpdateOne {
	_u.mutation.ResetStakeUsd()
	_u.mutation.SetStakeUsd(v)
	return _u
}

// SetNillableStakeUsd sets the "stake_usd" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableStakeUsd(v *float64) *RentalUpdateOne {
	if v != nil {
		_u.SetStakeUsd(*v)
	}
	return _u
}

// AddStakeUsd adds value to the "stake_usd" field.
func (_u *RentalUpdateOne) AddStakeUsd(v float64) *RentalUpdateOne {
	_u.mutation.AddStakeUsd(v)
	return _u
}

// ClearStakeUsd clears the value of the "stake_usd" field.
func (_u *RentalUpdateOne) ClearStakeUsd() *RentalUpdateOne {
	_u.mutation.ClearStakeUsd()
	return _u
}

// SetBufferUsd sets the "buffer_usd" field.
func (_u *RentalUpdateOne) SetBufferUsd(v float64) *RentalUpdateOne {
	_u.mutation.ResetBufferUsd()
	_u.mutation.SetBufferUsd(v)
	return _u
}

// SetNillableBufferUsd sets the "buffer_usd" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableBufferUsd(v *float64) *RentalUpdateOne {
	if v != nil {
		_u.SetBufferUsd(*v)
	}
	return _u
}

// AddBufferUsd adds value to the "buffer_usd" field.
func (_u *RentalUpdateOne) AddBufferUsd(v float64) *RentalUpdateOne {
	_u.mutation.AddBufferUsd(v)
	return _u
}

// ClearBufferUsd clears the value of the "buffer_usd" field.
func (_u *RentalUpdateOne) ClearBufferUsd() *RentalUpdateOne {
	_u.mutation.ClearBufferUsd()
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *RentalUpdateOne) SetTotalCostUsd(v float64) *RentalUpdateOne {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableTotalCostUsd(v *float64) *RentalUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *RentalUpdateOne) AddTotalCostUsd(v float64) *RentalUpdateOne {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (_u *RentalUpdateOne) ClearTotalCostUsd() *RentalUpdateOne {
	_u.mutation.ClearTotalCostUsd()
	return _u
}

// SetSettlement sets the "settlement" field.
func (_u *RentalUpdateOne) SetSettlement(v map[string]interface{}) *RentalUpdateOne {
	_u.mutation.SetSettlement(v)
	return _u
}

// ClearSettlement clears the value of the "settlement" field.
func (_u *RentalUpdateOne) ClearSettlement() *RentalUpdateOne {
	_u.mutation.ClearSettlement()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RentalUpdateOne) SetStatus(v rental.Status) *RentalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableStatus(v *rental.Status) *RentalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInitiatedAt sets the "initiated_at" field.
func (_u *RentalUpdateOne) SetInitiatedAt(v int64) *RentalUpdateOne {
	_u.mutation.ResetInitiatedAt()
	_u.mutation.SetInitiatedAt(v)
	return _u
}

// SetNillableInitiatedAt sets the "initiated_at" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableInitiatedAt(v *int64) *RentalUpdateOne {
	if v != nil {
		_u.SetInitiatedAt(*v)
	}
	return _u
}

// AddInitiatedAt adds value to the "initiated_at" field.
func (_u *RentalUpdateOne) AddInitiatedAt(v int64) *RentalUpdateOne {
	_u.mutation.AddInitiatedAt(v)
	return _u
}

// ClearInitiatedAt clears the value of the "initiated_at" field.
func (_u *RentalUpdateOne) ClearInitiatedAt() *RentalUpdateOne {
	_u.mutation.ClearInitiatedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RentalUpdateOne) SetCompletedAt(v int64) *RentalUpdateOne {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RentalUpdateOne) SetNillableCompletedAt(v *int64) *RentalUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *RentalUpdateOne) AddCompletedAt(v int64) *RentalUpdateOne {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RentalUpdateOne) ClearCompletedAt() *RentalUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RentalUpdateOne) SetUpdatedAt(v time.Time) *RentalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RentalMutation object of the builder.
func (_u *RentalUpdateOne) Mutation() *RentalMutation {
	return _u.mutation
}

// Where appends a list predicates to the RentalUpdate builder.
func (_u *RentalUpdateOne) Where(ps ...predicate.Rental) *RentalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RentalUpdateOne) Select(field string, fields ...string) *RentalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rental entity.
func (_u *RentalUpdateOne) Save(ctx context.Context) (*Rental, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RentalUpdateOne) SaveX(ctx context.Context) *Rental {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RentalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RentalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RentalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rental.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RentalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rental.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Rental.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RentalUpdateOne) sqlSave(ctx context.Context) (_node *Rental, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rental.Table, rental.Columns, sqlgraph.NewFieldSpec(rental.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rental.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rental.FieldID)
		for _, f := range fields {
			if !rental.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rental.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Renter(); ok {
		_spec.SetField(rental.FieldRenter, field.TypeString, value)
	}
	if _u.mutation.RenterCleared() {
		_spec.ClearField(rental.FieldRenter, field.TypeString)
	}
	if value, ok := _u.mutation.EscrowAccount(); ok {
		_spec.SetField(rental.FieldEscrowAccount, field.TypeString, value)
	}
	if _u.mutation.EscrowAccountCleared() {
		_spec.ClearField(rental.FieldEscrowAccount, field.TypeString)
	}
	if value, ok := _u.mutation.StakeUsd(); ok {
		_spec.SetField(rental.FieldStakeUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStakeUsd(); ok {
		_spec.AddField(rental.FieldStakeUsd, field.TypeFloat64, value)
	}
	if _u.mutation.StakeUsdCleared() {
		_spec.ClearField(rental.FieldStakeUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BufferUsd(); ok {
		_spec.SetField(rental.FieldBufferUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBufferUsd(); ok {
		_spec.AddField(rental.FieldBufferUsd, field.TypeFloat64, value)
	}
	if _u.mutation.BufferUsdCleared() {
		_spec.ClearField(rental.FieldBufferUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(rental.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(rental.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCostUsdCleared() {
		_spec.ClearField(rental.FieldTotalCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Settlement(); ok {
		_spec.SetField(rental.FieldSettlement, field.TypeJSON, value)
	}
	if _u.mutation.SettlementCleared() {
		_spec.ClearField(rental.FieldSettlement, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rental.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InitiatedAt(); ok {
		_spec.SetField(rental.FieldInitiatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInitiatedAt(); ok {
		_spec.AddField(rental.FieldInitiatedAt, field.TypeInt64, value)
	}
	if _u.mutation.InitiatedAtCleared() {
		_spec.ClearField(rental.FieldInitiatedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(rental.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(rental.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(rental.FieldCompletedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rental.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Rental{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rental.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
