// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// AgentCommUpdate is the builder for updating AgentComm entities.
type AgentCommUpdate struct {
	config
	hooks    []Hook
	mutation *AgentCommMutation
}

// Where appends a list predicates to the AgentCommUpdate builder.
func (_u *AgentCommUpdate) Where(ps ...predicate.AgentComm) *AgentCommUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentCommUpdate) SetMetadata(v map[string]interface{}) *AgentCommUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentCommUpdate) ClearMetadata() *AgentCommUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AgentCommMutation object of the builder.
func (_u *AgentCommUpdate) Mutation() *AgentCommMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentCommUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentCommUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentCommUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentCommUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentCommUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcomm.Table, agentcomm.Columns, sqlgraph.NewFieldSpec(agentcomm.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ToAgentCleared() {
		_spec.ClearField(agentcomm.FieldToAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentcomm.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentcomm.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcomm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentCommUpdateOne is the builder for updating a single AgentComm entity.
type AgentCommUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentCommMutation
}

// SetMetadata sets the "metadata" field.
func (_u *AgentCommUpdateOne) SetMetadata(v map[string]interface{}) *AgentCommUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentCommUpdateOne) ClearMetadata() *AgentCommUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AgentCommMutation object of the builder.
func (_u *AgentCommUpdateOne) Mutation() *AgentCommMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentCommUpdate builder.
func (_u *AgentCommUpdateOne) Where(ps ...predicate.AgentComm) *AgentCommUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentCommUpdateOne) Select(field string, fields ...string) *AgentCommUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentComm entity.
func (_u *AgentCommUpdateOne) Save(ctx context.Context) (*AgentComm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentCommUpdateOne) SaveX(ctx context.Context) *AgentComm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentCommUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentCommUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentCommUpdateOne) sqlSave(ctx context.Context) (_node *AgentComm, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcomm.Table, agentcomm.Columns, sqlgraph.NewFieldSpec(agentcomm.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentComm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcomm.FieldID)
		for _, f := range fields {
			if !agentcomm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcomm.FieldID {
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
	if _u.mutation.ToAgentCleared() {
		_spec.ClearField(agentcomm.FieldToAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentcomm.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentcomm.FieldMetadata, field.TypeJSON)
	}
	_node = &AgentComm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcomm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
