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
	"github.com/agentmesh/hcs-indexer/ent/agent"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentUpdate) SetAgentName(v string) *AgentUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *AgentUpdate) SetPlatform(v string) *AgentUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePlatform(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentUpdate) SetVersion(v string) *AgentUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableVersion(v *string) *AgentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *AgentUpdate) ClearVersion() *AgentUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// SetOperatingAccount sets the "operating_account" field.
func (_u *AgentUpdate) SetOperatingAccount(v string) *AgentUpdate {
	_u.mutation.SetOperatingAccount(v)
	return _u
}

// SetNillableOperatingAccount sets the "operating_account" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableOperatingAccount(v *string) *AgentUpdate {
	if v != nil {
		_u.SetOperatingAccount(*v)
	}
	return _u
}

// ClearOperatingAccount clears the value of the "operating_account" field.
func (_u *AgentUpdate) ClearOperatingAccount() *AgentUpdate {
	_u.mutation.ClearOperatingAccount()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdate) SetLastSeenAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastSeenAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentUpdate) SetMetadata(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentUpdate) ClearMetadata() *AgentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agent.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(agent.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agent.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(agent.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.OperatingAccount(); ok {
		_spec.SetField(agent.FieldOperatingAccount, field.TypeString, value)
	}
	if _u.mutation.OperatingAccountCleared() {
		_spec.ClearField(agent.FieldOperatingAccount, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentUpdateOne) SetAgentName(v string) *AgentUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *AgentUpdateOne) SetPlatform(v string) *AgentUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePlatform(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentUpdateOne) SetVersion(v string) *AgentUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableVersion(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *AgentUpdateOne) ClearVersion() *AgentUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// SetOperatingAccount sets the "operating_account" field.
func (_u *AgentUpdateOne) SetOperatingAccount(v string) *AgentUpdateOne {
	_u.mutation.SetOperatingAccount(v)
	return _u
}

// SetNillableOperatingAccount sets the "operating_account" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableOperatingAccount(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetOperatingAccount(*v)
	}
	return _u
}

// ClearOperatingAccount clears the value of the "operating_account" field.
func (_u *AgentUpdateOne) ClearOperatingAccount() *AgentUpdateOne {
	_u.mutation.ClearOperatingAccount()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdateOne) SetLastSeenAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastSeenAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentUpdateOne) SetMetadata(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentUpdateOne) ClearMetadata() *AgentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agent.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(agent.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agent.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(agent.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.OperatingAccount(); ok {
		_spec.SetField(agent.FieldOperatingAccount, field.TypeString, value)
	}
	if _u.mutation.OperatingAccountCleared() {
		_spec.ClearField(agent.FieldOperatingAccount, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agent.FieldMetadata, field.TypeJSON)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
