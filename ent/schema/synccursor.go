package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SyncCursor holds the schema definition for the SyncCursor entity —
// exactly one row per topic, the single source of truth for ingestion
// progress. It advances only after the corresponding HCSMessage row has
// been written, inside the same transaction.
type SyncCursor struct {
	ent.Schema
}

// Fields of the SyncCursor.
func (SyncCursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("topic_id").
			Unique().
			Immutable(),
		field.String("last_timestamp"),
		field.Int64("last_sequence_number"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
