// Code generated by ent, DO NOT EDIT.

package hcsmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldTopicID, v))
}

// ConsensusTimestamp applies equality check predicate on the "consensus_timestamp" field. It's identical to ConsensusTimestampEQ.
func ConsensusTimestamp(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldConsensusTimestamp, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldSequenceNumber, v))
}

// PayerAccountID applies equality check predicate on the "payer_account_id" field. It's identical to PayerAccountIDEQ.
func PayerAccountID(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldPayerAccountID, v))
}

// MessageBase64 applies equality check predicate on the "message_base64" field. It's identical to MessageBase64EQ.
func MessageBase64(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldMessageBase64, v))
}

// MessageType applies equality check predicate on the "message_type" field. It's identical to MessageTypeEQ.
func MessageType(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldMessageType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContainsFold(FieldTopicID, v))
}

// ConsensusTimestampEQ applies the EQ predicate on the "consensus_timestamp" field.
func ConsensusTimestampEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldConsensusTimestamp, v))
}

// ConsensusTimestampNEQ applies the NEQ predicate on the "consensus_timestamp" field.
func ConsensusTimestampNEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldConsensusTimestamp, v))
}

// ConsensusTimestampIn applies the In predicate on the "consensus_timestamp" field.
func ConsensusTimestampIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldConsensusTimestamp, vs...))
}

// ConsensusTimestampNotIn applies the NotIn predicate on the "consensus_timestamp" field.
func ConsensusTimestampNotIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldConsensusTimestamp, vs...))
}

// ConsensusTimestampGT applies the GT predicate on the "consensus_timestamp" field.
func ConsensusTimestampGT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldConsensusTimestamp, v))
}

// ConsensusTimestampGTE applies the GTE predicate on the "consensus_timestamp" field.
func ConsensusTimestampGTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldConsensusTimestamp, v))
}

// ConsensusTimestampLT applies the LT predicate on the "consensus_timestamp" field.
func ConsensusTimestampLT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldConsensusTimestamp, v))
}

// ConsensusTimestampLTE applies the LTE predicate on the "consensus_timestamp" field.
func ConsensusTimestampLTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldConsensusTimestamp, v))
}

// ConsensusTimestampContains applies the Contains predicate on the "consensus_timestamp" field.
func ConsensusTimestampContains(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContains(FieldConsensusTimestamp, v))
}

// ConsensusTimestampHasPrefix applies the HasPrefix predicate on the "consensus_timestamp" field.
func ConsensusTimestampHasPrefix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasPrefix(FieldConsensusTimestamp, v))
}

// ConsensusTimestampHasSuffix applies the HasSuffix predicate on the "consensus_timestamp" field.
func ConsensusTimestampHasSuffix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasSuffix(FieldConsensusTimestamp, v))
}

// ConsensusTimestampEqualFold applies the EqualFold predicate on the "consensus_timestamp" field.
func ConsensusTimestampEqualFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEqualFold(FieldConsensusTimestamp, v))
}

// ConsensusTimestampContainsFold applies the ContainsFold predicate on the "consensus_timestamp" field.
func ConsensusTimestampContainsFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContainsFold(FieldConsensusTimestamp, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int64) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldSequenceNumber, v))
}

// PayerAccountIDEQ applies the EQ predicate on the "payer_account_id" field.
func PayerAccountIDEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldPayerAccountID, v))
}

// PayerAccountIDNEQ applies the NEQ predicate on the "payer_account_id" field.
func PayerAccountIDNEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldPayerAccountID, v))
}

// PayerAccountIDIn applies the In predicate on the "payer_account_id" field.
func PayerAccountIDIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldPayerAccountID, vs...))
}

// PayerAccountIDNotIn applies the NotIn predicate on the "payer_account_id" field.
func PayerAccountIDNotIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldPayerAccountID, vs...))
}

// PayerAccountIDGT applies the GT predicate on the "payer_account_id" field.
func PayerAccountIDGT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldPayerAccountID, v))
}

// PayerAccountIDGTE applies the GTE predicate on the "payer_account_id" field.
func PayerAccountIDGTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldPayerAccountID, v))
}

// PayerAccountIDLT applies the LT predicate on the "payer_account_id" field.
func PayerAccountIDLT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldPayerAccountID, v))
}

// PayerAccountIDLTE applies the LTE predicate on the "payer_account_id" field.
func PayerAccountIDLTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldPayerAccountID, v))
}

// PayerAccountIDContains applies the Contains predicate on the "payer_account_id" field.
func PayerAccountIDContains(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContains(FieldPayerAccountID, v))
}

// PayerAccountIDHasPrefix applies the HasPrefix predicate on the "payer_account_id" field.
func PayerAccountIDHasPrefix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasPrefix(FieldPayerAccountID, v))
}

// PayerAccountIDHasSuffix applies the HasSuffix predicate on the "payer_account_id" field.
func PayerAccountIDHasSuffix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasSuffix(FieldPayerAccountID, v))
}

// PayerAccountIDIsNil applies the IsNil predicate on the "payer_account_id" field.
func PayerAccountIDIsNil() predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIsNull(FieldPayerAccountID))
}

// PayerAccountIDNotNil applies the NotNil predicate on the "payer_account_id" field.
func PayerAccountIDNotNil() predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotNull(FieldPayerAccountID))
}

// PayerAccountIDEqualFold applies the EqualFold predicate on the "payer_account_id" field.
func PayerAccountIDEqualFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEqualFold(FieldPayerAccountID, v))
}

// PayerAccountIDContainsFold applies the ContainsFold predicate on the "payer_account_id" field.
func PayerAccountIDContainsFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContainsFold(FieldPayerAccountID, v))
}

// MessageBase64EQ applies the EQ predicate on the "message_base64" field.
func MessageBase64EQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldMessageBase64, v))
}

// MessageBase64NEQ applies the NEQ predicate on the "message_base64" field.
func MessageBase64NEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldMessageBase64, v))
}

// MessageBase64In applies the In predicate on the "message_base64" field.
func MessageBase64In(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldMessageBase64, vs...))
}

// MessageBase64NotIn applies the NotIn predicate on the "message_base64" field.
func MessageBase64NotIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldMessageBase64, vs...))
}

// MessageBase64GT applies the GT predicate on the "message_base64" field.
func MessageBase64GT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldMessageBase64, v))
}

// MessageBase64GTE applies the GTE predicate on the "message_base64" field.
func MessageBase64GTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldMessageBase64, v))
}

// MessageBase64LT applies the LT predicate on the "message_base64" field.
func MessageBase64LT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldMessageBase64, v))
}

// MessageBase64LTE applies the LTE predicate on the "message_base64" field.
func MessageBase64LTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldMessageBase64, v))
}

// MessageBase64Contains applies the Contains predicate on the "message_base64" field.
func MessageBase64Contains(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContains(FieldMessageBase64, v))
}

// MessageBase64HasPrefix applies the HasPrefix predicate on the "message_base64" field.
func MessageBase64HasPrefix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasPrefix(FieldMessageBase64, v))
}

// MessageBase64HasSuffix applies the HasSuffix predicate on the "message_base64" field.
func MessageBase64HasSuffix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasSuffix(FieldMessageBase64, v))
}

// MessageBase64EqualFold applies the EqualFold predicate on the "message_base64" field.
func MessageBase64EqualFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEqualFold(FieldMessageBase64, v))
}

// MessageBase64ContainsFold applies the ContainsFold predicate on the "message_base64" field.
func MessageBase64ContainsFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContainsFold(FieldMessageBase64, v))
}

// DecodedJSONIsNil applies the IsNil predicate on the "decoded_json" field.
func DecodedJSONIsNil() predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIsNull(FieldDecodedJSON))
}

// DecodedJSONNotNil applies the NotNil predicate on the "decoded_json" field.
func DecodedJSONNotNil() predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotNull(FieldDecodedJSON))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// MessageTypeGT applies the GT predicate on the "message_type" field.
func MessageTypeGT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldMessageType, v))
}

// MessageTypeGTE applies the GTE predicate on the "message_type" field.
func MessageTypeGTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldMessageType, v))
}

// MessageTypeLT applies the LT predicate on the "message_type" field.
func MessageTypeLT(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldMessageType, v))
}

// MessageTypeLTE applies the LTE predicate on the "message_type" field.
func MessageTypeLTE(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldMessageType, v))
}

// MessageTypeContains applies the Contains predicate on the "message_type" field.
func MessageTypeContains(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContains(FieldMessageType, v))
}

// MessageTypeHasPrefix applies the HasPrefix predicate on the "message_type" field.
func MessageTypeHasPrefix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasPrefix(FieldMessageType, v))
}

// MessageTypeHasSuffix applies the HasSuffix predicate on the "message_type" field.
func MessageTypeHasSuffix(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldHasSuffix(FieldMessageType, v))
}

// MessageTypeIsNil applies the IsNil predicate on the "message_type" field.
func MessageTypeIsNil() predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIsNull(FieldMessageType))
}

// MessageTypeNotNil applies the NotNil predicate on the "message_type" field.
func MessageTypeNotNil() predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotNull(FieldMessageType))
}

// MessageTypeEqualFold applies the EqualFold predicate on the "message_type" field.
func MessageTypeEqualFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEqualFold(FieldMessageType, v))
}

// MessageTypeContainsFold applies the ContainsFold predicate on the "message_type" field.
func MessageTypeContainsFold(v string) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldContainsFold(FieldMessageType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HCSMessage {
	return predicate.HCSMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HCSMessage) predicate.HCSMessage {
	return predicate.HCSMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HCSMessage) predicate.HCSMessage {
	return predicate.HCSMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HCSMessage) predicate.HCSMessage {
	return predicate.HCSMessage(sql.NotPredicates(p))
}
