// Code generated by ent, DO NOT EDIT.

package agentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldAgentID, v))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSessionKey, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionType applies equality check predicate on the "transaction_type" field. It's identical to TransactionTypeEQ.
func TransactionType(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTransactionType, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldReasoning, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldDetails, v))
}

// PreviousHash applies equality check predicate on the "previous_hash" field. It's identical to PreviousHashEQ.
func PreviousHash(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldPreviousHash, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ConsensusTimestamp applies equality check predicate on the "consensus_timestamp" field. It's identical to ConsensusTimestampEQ.
func ConsensusTimestamp(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldConsensusTimestamp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldAgentID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyIsNil applies the IsNil predicate on the "session_key" field.
func SessionKeyIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldSessionKey))
}

// SessionKeyNotNil applies the NotNil predicate on the "session_key" field.
func SessionKeyNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldSessionKey))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldSessionKey, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldTransactionID))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldTransactionID, v))
}

// TransactionTypeEQ applies the EQ predicate on the "transaction_type" field.
func TransactionTypeEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTransactionType, v))
}

// TransactionTypeNEQ applies the NEQ predicate on the "transaction_type" field.
func TransactionTypeNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldTransactionType, v))
}

// TransactionTypeIn applies the In predicate on the "transaction_type" field.
func TransactionTypeIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldTransactionType, vs...))
}

// TransactionTypeNotIn applies the NotIn predicate on the "transaction_type" field.
func TransactionTypeNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldTransactionType, vs...))
}

// TransactionTypeGT applies the GT predicate on the "transaction_type" field.
func TransactionTypeGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldTransactionType, v))
}

// TransactionTypeGTE applies the GTE predicate on the "transaction_type" field.
func TransactionTypeGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldTransactionType, v))
}

// TransactionTypeLT applies the LT predicate on the "transaction_type" field.
func TransactionTypeLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldTransactionType, v))
}

// TransactionTypeLTE applies the LTE predicate on the "transaction_type" field.
func TransactionTypeLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldTransactionType, v))
}

// TransactionTypeContains applies the Contains predicate on the "transaction_type" field.
func TransactionTypeContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldTransactionType, v))
}

// TransactionTypeHasPrefix applies the HasPrefix predicate on the "transaction_type" field.
func TransactionTypeHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldTransactionType, v))
}

// TransactionTypeHasSuffix applies the HasSuffix predicate on the "transaction_type" field.
func TransactionTypeHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldTransactionType, v))
}

// TransactionTypeIsNil applies the IsNil predicate on the "transaction_type" field.
func TransactionTypeIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldTransactionType))
}

// TransactionTypeNotNil applies the NotNil predicate on the "transaction_type" field.
func TransactionTypeNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldTransactionType))
}

// TransactionTypeEqualFold applies the EqualFold predicate on the "transaction_type" field.
func TransactionTypeEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldTransactionType, v))
}

// TransactionTypeContainsFold applies the ContainsFold predicate on the "transaction_type" field.
func TransactionTypeContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldTransactionType, v))
}

// ActionIsNil applies the IsNil predicate on the "action" field.
func ActionIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldAction))
}

// ActionNotNil applies the NotNil predicate on the "action" field.
func ActionNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldAction))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldDetails))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldDetails, v))
}

// PreviousHashEQ applies the EQ predicate on the "previous_hash" field.
func PreviousHashEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldPreviousHash, v))
}

// PreviousHashNEQ applies the NEQ predicate on the "previous_hash" field.
func PreviousHashNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldPreviousHash, v))
}

// PreviousHashIn applies the In predicate on the "previous_hash" field.
func PreviousHashIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldPreviousHash, vs...))
}

// PreviousHashNotIn applies the NotIn predicate on the "previous_hash" field.
func PreviousHashNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldPreviousHash, vs...))
}

// PreviousHashGT applies the GT predicate on the "previous_hash" field.
func PreviousHashGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldPreviousHash, v))
}

// PreviousHashGTE applies the GTE predicate on the "previous_hash" field.
func PreviousHashGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldPreviousHash, v))
}

// PreviousHashLT applies the LT predicate on the "previous_hash" field.
func PreviousHashLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldPreviousHash, v))
}

// PreviousHashLTE applies the LTE predicate on the "previous_hash" field.
func PreviousHashLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldPreviousHash, v))
}

// PreviousHashContains applies the Contains predicate on the "previous_hash" field.
func PreviousHashContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldPreviousHash, v))
}

// PreviousHashHasPrefix applies the HasPrefix predicate on the "previous_hash" field.
func PreviousHashHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldPreviousHash, v))
}

// PreviousHashHasSuffix applies the HasSuffix predicate on the "previous_hash" field.
func PreviousHashHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldPreviousHash, v))
}

// PreviousHashIsNil applies the IsNil predicate on the "previous_hash" field.
func PreviousHashIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldPreviousHash))
}

// PreviousHashNotNil applies the NotNil predicate on the "previous_hash" field.
func PreviousHashNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldPreviousHash))
}

// PreviousHashEqualFold applies the EqualFold predicate on the "previous_hash" field.
func PreviousHashEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldPreviousHash, v))
}

// PreviousHashContainsFold applies the ContainsFold predicate on the "previous_hash" field.
func PreviousHashContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldPreviousHash, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v int64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ConsensusTimestampEQ applies the EQ predicate on the "consensus_timestamp" field.
func ConsensusTimestampEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldConsensusTimestamp, v))
}

// ConsensusTimestampNEQ applies the NEQ predicate on the "consensus_timestamp" field.
func ConsensusTimestampNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldConsensusTimestamp, v))
}

// ConsensusTimestampIn applies the In predicate on the "consensus_timestamp" field.
func ConsensusTimestampIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldConsensusTimestamp, vs...))
}

// ConsensusTimestampNotIn applies the NotIn predicate on the "consensus_timestamp" field.
func ConsensusTimestampNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldConsensusTimestamp, vs...))
}

// ConsensusTimestampGT applies the GT predicate on the "consensus_timestamp" field.
func ConsensusTimestampGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldConsensusTimestamp, v))
}

// ConsensusTimestampGTE applies the GTE predicate on the "consensus_timestamp" field.
func ConsensusTimestampGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldConsensusTimestamp, v))
}

// ConsensusTimestampLT applies the LT predicate on the "consensus_timestamp" field.
func ConsensusTimestampLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldConsensusTimestamp, v))
}

// ConsensusTimestampLTE applies the LTE predicate on the "consensus_timestamp" field.
func ConsensusTimestampLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldConsensusTimestamp, v))
}

// ConsensusTimestampContains applies the Contains predicate on the "consensus_timestamp" field.
func ConsensusTimestampContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldConsensusTimestamp, v))
}

// ConsensusTimestampHasPrefix applies the HasPrefix predicate on the "consensus_timestamp" field.
func ConsensusTimestampHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldConsensusTimestamp, v))
}

// ConsensusTimestampHasSuffix applies the HasSuffix predicate on the "consensus_timestamp" field.
func ConsensusTimestampHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldConsensusTimestamp, v))
}

// ConsensusTimestampEqualFold applies the EqualFold predicate on the "consensus_timestamp" field.
func ConsensusTimestampEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldConsensusTimestamp, v))
}

// ConsensusTimestampContainsFold applies the ContainsFold predicate on the "consensus_timestamp" field.
func ConsensusTimestampContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldConsensusTimestamp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.NotPredicates(p))
}
