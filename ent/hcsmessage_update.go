// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// HCSMessageUpdate is the builder for updating HCSMessage entities.
type HCSMessageUpdate struct {
	config
	hooks    []Hook
	mutation *HCSMessageMutation
}

// Where appends a list predicates to the HCSMessageUpdate builder.
func (_u *HCSMessageUpdate) Where(ps ...predicate.HCSMessage) *HCSMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecodedJSON sets the "decoded_json" field.
func (_u *HCSMessageUpdate) SetDecodedJSON(v map[string]interface{}) *HCSMessageUpdate {
	_u.mutation.SetDecodedJSON(v)
	return _u
}

// ClearDecodedJSON clears the value of the "decoded_json" field.
func (_u *HCSMessageUpdate) ClearDecodedJSON() *HCSMessageUpdate {
	_u.mutation.ClearDecodedJSON()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *HCSMessageUpdate) SetMessageType(v string) *HCSMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *HCSMessageUpdate) SetNillableMessageType(v *string) *HCSMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// ClearMessageType clears the value of the "message_type" field.
func (_u *HCSMessageUpdate) ClearMessageType() *HCSMessageUpdate {
	_u.mutation.ClearMessageType()
	return _u
}

// Mutation returns the HCSMessageMutation object of the builder.
func (_u *HCSMessageUpdate) Mutation() *HCSMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HCSMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HCSMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HCSMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HCSMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HCSMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(hcsmessage.Table, hcsmessage.Columns, sqlgraph.NewFieldSpec(hcsmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PayerAccountIDCleared() {
		_spec.ClearField(hcsmessage.FieldPayerAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.DecodedJSON(); ok {
		_spec.SetField(hcsmessage.FieldDecodedJSON, field.TypeJSON, value)
	}
	if _u.mutation.DecodedJSONCleared() {
		_spec.ClearField(hcsmessage.FieldDecodedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(hcsmessage.FieldMessageType, field.TypeString, value)
	}
	if _u.mutation.MessageTypeCleared() {
		_spec.ClearField(hcsmessage.FieldMessageType, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hcsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HCSMessageUpdateOne is the builder for updating a single HCSMessage entity.
type HCSMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HCSMessageMutation
}

// SetDecodedJSON sets the "decoded_json" field.
func (_u *HCSMessageUpdateOne) SetDecodedJSON(v map[string]interface{}) *HCSMessageUpdateOne {
	_u.mutation.SetDecodedJSON(v)
	return _u
}

// ClearDecodedJSON clears the value of the "decoded_json" field.
func (_u *HCSMessageUpdateOne) ClearDecodedJSON() *HCSMessageUpdateOne {
	_u.mutation.ClearDecodedJSON()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *HCSMessageUpdateOne) SetMessageType(v string) *HCSMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *HCSMessageUpdateOne) SetNillableMessageType(v *string) *HCSMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// ClearMessageType clears the value of the "message_type" field.
func (_u *HCSMessageUpdateOne) ClearMessageType() *HCSMessageUpdateOne {
	_u.mutation.ClearMessageType()
	return _u
}

// Mutation returns the HCSMessageMutation object of the builder.
func (_u *HCSMessageUpdateOne) Mutation() *HCSMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the HCSMessageUpdate builder.
func (_u *HCSMessageUpdateOne) Where(ps ...predicate.HCSMessage) *HCSMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HCSMessageUpdateOne) Select(field string, fields ...string) *HCSMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HCSMessage entity.
func (_u *HCSMessageUpdateOne) Save(ctx context.Context) (*HCSMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HCSMessageUpdateOne) SaveX(ctx context.Context) *HCSMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HCSMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HCSMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HCSMessageUpdateOne) sqlSave(ctx context.Context) (_node *HCSMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(hcsmessage.Table, hcsmessage.Columns, sqlgraph.NewFieldSpec(hcsmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HCSMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hcsmessage.FieldID)
		for _, f := range fields {
			if !hcsmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hcsmessage.FieldID {
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
	if _u.mutation.PayerAccountIDCleared() {
		_spec.ClearField(hcsmessage.FieldPayerAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.DecodedJSON(); ok {
		_spec.SetField(hcsmessage.FieldDecodedJSON, field.TypeJSON, value)
	}
	if _u.mutation.DecodedJSONCleared() {
		_spec.ClearField(hcsmessage.FieldDecodedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(hcsmessage.FieldMessageType, field.TypeString, value)
	}
	if _u.mutation.MessageTypeCleared() {
		_spec.ClearField(hcsmessage.FieldMessageType, field.TypeString)
	}
	_node = &HCSMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hcsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
