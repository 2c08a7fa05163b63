// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// AgentEventUpdate is the builder for updating AgentEvent entities.
type AgentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AgentEventMutation
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (_u *AgentEventUpdate) Where(ps ...predicate.AgentEvent) *AgentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *AgentEventUpdate) SetAction(v map[string]interface{}) *AgentEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *AgentEventUpdate) ClearAction() *AgentEventUpdate {
	_u.mutation.ClearAction()
	return _u
}

// Mutation returns the AgentEventMutation object of the builder.
func (_u *AgentEventUpdate) Mutation() *AgentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(agentevent.FieldSessionKey, field.TypeString)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(agentevent.FieldTransactionID, field.TypeString)
	}
	if _u.mutation.TransactionTypeCleared() {
		_spec.ClearField(agentevent.FieldTransactionType, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(agentevent.FieldAction, field.TypeJSON, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(agentevent.FieldAction, field.TypeJSON)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(agentevent.FieldReasoning, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(agentevent.FieldDetails, field.TypeString)
	}
	if _u.mutation.PreviousHashCleared() {
		_spec.ClearField(agentevent.FieldPreviousHash, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentEventUpdateOne is the builder for updating a single AgentEvent entity.
type AgentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentEventMutation
}

// SetAction sets the "action" field.
func (_u *AgentEventUpdateOne) SetAction(v map[string]interface{}) *AgentEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *AgentEventUpdateOne) ClearAction() *AgentEventUpdateOne {
	_u.mutation.ClearAction()
	return _u
}

// Mutation returns the AgentEventMutation object of the builder.
func (_u *AgentEventUpdateOne) Mutation() *AgentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (_u *AgentEventUpdateOne) Where(ps ...predicate.AgentEvent) *AgentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentEventUpdateOne) Select(field string, fields ...string) *AgentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentEvent entity.
func (_u *AgentEventUpdateOne) Save(ctx context.Context) (*AgentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentEventUpdateOne) SaveX(ctx context.Context) *AgentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentEventUpdateOne) sqlSave(ctx context.Context) (_node *AgentEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentevent.FieldID)
		for _, f := range fields {
			if !agentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentevent.FieldID {
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
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(agentevent.FieldSessionKey, field.TypeString)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(agentevent.FieldTransactionID, field.TypeString)
	}
	if _u.mutation.TransactionTypeCleared() {
		_spec.ClearField(agentevent.FieldTransactionType, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(agentevent.FieldAction, field.TypeJSON, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(agentevent.FieldAction, field.TypeJSON)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(agentevent.FieldReasoning, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(agentevent.FieldDetails, field.TypeString)
	}
	if _u.mutation.PreviousHashCleared() {
		_spec.ClearField(agentevent.FieldPreviousHash, field.TypeString)
	}
	_node = &AgentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
