package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentEvent holds the schema definition for the AgentEvent entity — an
// append-only audit log of ACTION and TRANSACTION events per agent.
// Duplicate suppression is the sync cursor's job, not this table's.
type AgentEvent struct {
	ent.Schema
}

// Fields of the AgentEvent.
func (AgentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id").
			Immutable().
			Comment("Not a foreign key: events may reference agents never initialized on this topic"),
		field.Enum("event_type").
			Values("ACTION", "TRANSACTION").
			Immutable(),
		field.String("session_key").
			Optional().
			Nillable().
			Immutable(),
		field.String("transaction_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("transaction_type").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("action", map[string]interface{}{}).
			Optional().
			Comment("ACTION only: {tool, parameters, result}"),
		field.Text("reasoning").
			Optional().
			Nillable().
			Immutable(),
		field.Text("details").
			Optional().
			Nillable().
			Immutable(),
		field.String("previous_hash").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("timestamp").
			Immutable().
			Comment("Event-reported epoch units, preserved as given"),
		field.String("consensus_timestamp").
			Immutable(),
		field.JSON("raw_data", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentEvent.
func (AgentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "timestamp"),
		index.Fields("consensus_timestamp"),
	}
}
