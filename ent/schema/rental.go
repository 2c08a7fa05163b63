package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// usdColumn maps monetary fields to fixed-point storage; two fractional
// digits must survive the round trip through projection.
var usdColumn = map[string]string{dialect.Postgres: "numeric(10,2)"}

// Rental holds the schema definition for the Rental entity. Two-state
// lifecycle: initiated → completed. Completion is keyed by rental_id and
// idempotent under replay; an orphan completion (no prior initiation) is
// a no-op.
type Rental struct {
	ent.Schema
}

// Fields of the Rental.
func (Rental) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rental_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("renter").
			Optional().
			Nillable(),
		field.String("escrow_account").
			Optional().
			Nillable(),
		field.Float("stake_usd").
			Optional().
			Nillable().
			SchemaType(usdColumn),
		field.Float("buffer_usd").
			Optional().
			Nillable().
			SchemaType(usdColumn),
		field.Float("total_cost_usd").
			Optional().
			Nillable().
			SchemaType(usdColumn),
		field.JSON("settlement", map[string]interface{}{}).
			Optional().
			Comment("RENTAL_COMPLETED split: {owner, creator, network, treasury}"),
		field.Enum("status").
			Values("initiated", "completed").
			Default("initiated"),
		field.Int64("initiated_at").
			Optional().
			Nillable(),
		field.Int64("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Rental.
func (Rental) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("status"),
	}
}
