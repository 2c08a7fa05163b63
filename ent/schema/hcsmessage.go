package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HCSMessage holds the schema definition for the HCSMessage entity — the
// raw audit trail of everything received from the consensus substrate,
// one row per (topic, sequence number).
type HCSMessage struct {
	ent.Schema
}

// Annotations of the HCSMessage.
func (HCSMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hcs_messages"},
	}
}

// Fields of the HCSMessage.
func (HCSMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			Immutable(),
		field.String("consensus_timestamp").
			Immutable().
			Comment("Textual seconds.nanoseconds; lexicographic order equals chronological order"),
		field.Int64("sequence_number").
			Immutable(),
		field.String("payer_account_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("message_base64").
			Immutable().
			Comment("Wire form of the payload, preserved verbatim"),
		field.JSON("decoded_json", map[string]interface{}{}).
			Optional().
			Comment("Present only when the payload decoded as JSON"),
		field.String("message_type").
			Optional().
			Nillable().
			Comment("Classifier output; unrecognized type strings are preserved verbatim"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the HCSMessage.
func (HCSMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Exactly-once materialization per (topic, sequence number)
		index.Fields("topic_id", "sequence_number").Unique(),
		// Chronological reads per topic
		index.Fields("topic_id", "consensus_timestamp"),
	}
}
