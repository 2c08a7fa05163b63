package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity. Agents are
// upserted from AGENT_INIT / AGENT_CREATED events; last_seen_at advances
// on every observed activity (actions and transactions included).
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("agent_name"),
		field.String("platform"),
		field.String("version").
			Optional().
			Nillable(),
		field.String("operating_account").
			Optional().
			Nillable(),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_seen_at"),
	}
}
