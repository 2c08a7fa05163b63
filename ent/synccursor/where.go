// Code generated by ent, DO NOT EDIT.

package synccursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldContainsFold(FieldID, id))
}

// LastTimestamp applies equality check predicate on the "last_timestamp" field. It's identical to LastTimestampEQ.
func LastTimestamp(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldLastTimestamp, v))
}

// LastSequenceNumber applies equality check predicate on the "last_sequence_number" field. It's identical to LastSequenceNumberEQ.
func LastSequenceNumber(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldLastSequenceNumber, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastTimestampEQ applies the EQ predicate on the "last_timestamp" field.
func LastTimestampEQ(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldLastTimestamp, v))
}

// LastTimestampNEQ applies the NEQ predicate on the "last_timestamp" field.
func LastTimestampNEQ(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNEQ(FieldLastTimestamp, v))
}

// LastTimestampIn applies the In predicate on the "last_timestamp" field.
func LastTimestampIn(vs ...string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldIn(FieldLastTimestamp, vs...))
}

// LastTimestampNotIn applies the NotIn predicate on the "last_timestamp" field.
func LastTimestampNotIn(vs ...string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNotIn(FieldLastTimestamp, vs...))
}

// LastTimestampGT applies the GT predicate on the "last_timestamp" field.
func LastTimestampGT(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGT(FieldLastTimestamp, v))
}

// LastTimestampGTE applies the GTE predicate on the "last_timestamp" field.
func LastTimestampGTE(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGTE(FieldLastTimestamp, v))
}

// LastTimestampLT applies the LT predicate on the "last_timestamp" field.
func LastTimestampLT(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLT(FieldLastTimestamp, v))
}

// LastTimestampLTE applies the LTE predicate on the "last_timestamp" field.
func LastTimestampLTE(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLTE(FieldLastTimestamp, v))
}

// LastTimestampContains applies the Contains predicate on the "last_timestamp" field.
func LastTimestampContains(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldContains(FieldLastTimestamp, v))
}

// LastTimestampHasPrefix applies the HasPrefix predicate on the "last_timestamp" field.
func LastTimestampHasPrefix(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldHasPrefix(FieldLastTimestamp, v))
}

// LastTimestampHasSuffix applies the HasSuffix predicate on the "last_timestamp" field.
func LastTimestampHasSuffix(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldHasSuffix(FieldLastTimestamp, v))
}

// LastTimestampEqualFold applies the EqualFold predicate on the "last_timestamp" field.
func LastTimestampEqualFold(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEqualFold(FieldLastTimestamp, v))
}

// LastTimestampContainsFold applies the ContainsFold predicate on the "last_timestamp" field.
func LastTimestampContainsFold(v string) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldContainsFold(FieldLastTimestamp, v))
}

// LastSequenceNumberEQ applies the EQ predicate on the "last_sequence_number" field.
func LastSequenceNumberEQ(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldLastSequenceNumber, v))
}

// LastSequenceNumberNEQ applies the NEQ predicate on the "last_sequence_number" field.
func LastSequenceNumberNEQ(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNEQ(FieldLastSequenceNumber, v))
}

// LastSequenceNumberIn applies the In predicate on the "last_sequence_number" field.
func LastSequenceNumberIn(vs ...int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldIn(FieldLastSequenceNumber, vs...))
}

// LastSequenceNumberNotIn applies the NotIn predicate on the "last_sequence_number" field.
func LastSequenceNumberNotIn(vs ...int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNotIn(FieldLastSequenceNumber, vs...))
}

// LastSequenceNumberGT applies the GT predicate on the "last_sequence_number" field.
func LastSequenceNumberGT(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGT(FieldLastSequenceNumber, v))
}

// LastSequenceNumberGTE applies the GTE predicate on the "last_sequence_number" field.
func LastSequenceNumberGTE(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGTE(FieldLastSequenceNumber, v))
}

// LastSequenceNumberLT applies the LT predicate on the "last_sequence_number" field.
func LastSequenceNumberLT(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLT(FieldLastSequenceNumber, v))
}

// LastSequenceNumberLTE applies the LTE predicate on the "last_sequence_number" field.
func LastSequenceNumberLTE(v int64) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLTE(FieldLastSequenceNumber, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SyncCursor {
	return predicate.SyncCursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncCursor) predicate.SyncCursor {
	return predicate.SyncCursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncCursor) predicate.SyncCursor {
	return predicate.SyncCursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncCursor) predicate.SyncCursor {
	return predicate.SyncCursor(sql.NotPredicates(p))
}
