package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentComm holds the schema definition for the AgentComm entity — an
// append-only log of COMMS messages exchanged between agents.
type AgentComm struct {
	ent.Schema
}

// Annotations of the AgentComm.
func (AgentComm) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agent_comms"},
	}
}

// Fields of the AgentComm.
func (AgentComm) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			Immutable(),
		field.String("from_agent").
			Immutable(),
		field.String("to_agent").
			Optional().
			Nillable().
			Immutable(),
		field.Text("text").
			Immutable(),
		field.String("timestamp").
			Immutable().
			Comment("Sender-reported, ISO-8601-ish string preserved as given"),
		field.String("consensus_timestamp").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentComm.
func (AgentComm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "consensus_timestamp"),
		index.Fields("from_agent"),
	}
}
