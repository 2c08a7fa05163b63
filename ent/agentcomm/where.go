// Code generated by ent, DO NOT EDIT.

package agentcomm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldTopicID, v))
}

// FromAgent applies equality check predicate on the "from_agent" field. It's identical to FromAgentEQ.
func FromAgent(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldFromAgent, v))
}

// ToAgent applies equality check predicate on the "to_agent" field. It's identical to ToAgentEQ.
func ToAgent(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldToAgent, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldText, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldTimestamp, v))
}

// ConsensusTimestamp applies equality check predicate on the "consensus_timestamp" field. It's identical to ConsensusTimestampEQ.
func ConsensusTimestamp(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldConsensusTimestamp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContainsFold(FieldTopicID, v))
}

// FromAgentEQ applies the EQ predicate on the "from_agent" field.
func FromAgentEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldFromAgent, v))
}

// FromAgentNEQ applies the NEQ predicate on the "from_agent" field.
func FromAgentNEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldFromAgent, v))
}

// FromAgentIn applies the In predicate on the "from_agent" field.
func FromAgentIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldFromAgent, vs...))
}

// FromAgentNotIn applies the NotIn predicate on the "from_agent" field.
func FromAgentNotIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldFromAgent, vs...))
}

// FromAgentGT applies the GT predicate on the "from_agent" field.
func FromAgentGT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldFromAgent, v))
}

// FromAgentGTE applies the GTE predicate on the "from_agent" field.
func FromAgentGTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldFromAgent, v))
}

// FromAgentLT applies the LT predicate on the "from_agent" field.
func FromAgentLT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldFromAgent, v))
}

// FromAgentLTE applies the LTE predicate on the "from_agent" field.
func FromAgentLTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldFromAgent, v))
}

// FromAgentContains applies the Contains predicate on the "from_agent" field.
func FromAgentContains(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContains(FieldFromAgent, v))
}

// FromAgentHasPrefix applies the HasPrefix predicate on the "from_agent" field.
func FromAgentHasPrefix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasPrefix(FieldFromAgent, v))
}

// FromAgentHasSuffix applies the HasSuffix predicate on the "from_agent" field.
func FromAgentHasSuffix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasSuffix(FieldFromAgent, v))
}

// FromAgentEqualFold applies the EqualFold predicate on the "from_agent" field.
func FromAgentEqualFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEqualFold(FieldFromAgent, v))
}

// FromAgentContainsFold applies the ContainsFold predicate on the "from_agent" field.
func FromAgentContainsFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContainsFold(FieldFromAgent, v))
}

// ToAgentEQ applies the EQ predicate on the "to_agent" field.
func ToAgentEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldToAgent, v))
}

// ToAgentNEQ applies the NEQ predicate on the "to_agent" field.
func ToAgentNEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldToAgent, v))
}

// ToAgentIn applies the In predicate on the "to_agent" field.
func ToAgentIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldToAgent, vs...))
}

// ToAgentNotIn applies the NotIn predicate on the "to_agent" field.
func ToAgentNotIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldToAgent, vs...))
}

// ToAgentGT applies the GT predicate on the "to_agent" field.
func ToAgentGT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldToAgent, v))
}

// ToAgentGTE applies the GTE predicate on the "to_agent" field.
func ToAgentGTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldToAgent, v))
}

// ToAgentLT applies the LT predicate on the "to_agent" field.
func ToAgentLT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldToAgent, v))
}

// ToAgentLTE applies the LTE predicate on the "to_agent" field.
func ToAgentLTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldToAgent, v))
}

// ToAgentContains applies the Contains predicate on the "to_agent" field.
func ToAgentContains(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContains(FieldToAgent, v))
}

// ToAgentHasPrefix applies the HasPrefix predicate on the "to_agent" field.
func ToAgentHasPrefix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasPrefix(FieldToAgent, v))
}

// ToAgentHasSuffix applies the HasSuffix predicate on the "to_agent" field.
func ToAgentHasSuffix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasSuffix(FieldToAgent, v))
}

// ToAgentIsNil applies the IsNil predicate on the "to_agent" field.
func ToAgentIsNil() predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIsNull(FieldToAgent))
}

// ToAgentNotNil applies the NotNil predicate on the "to_agent" field.
func ToAgentNotNil() predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotNull(FieldToAgent))
}

// ToAgentEqualFold applies the EqualFold predicate on the "to_agent" field.
func ToAgentEqualFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEqualFold(FieldToAgent, v))
}

// ToAgentContainsFold applies the ContainsFold predicate on the "to_agent" field.
func ToAgentContainsFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContainsFold(FieldToAgent, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContainsFold(FieldText, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContainsFold(FieldTimestamp, v))
}

// ConsensusTimestampEQ applies the EQ predicate on the "consensus_timestamp" field.
func ConsensusTimestampEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldConsensusTimestamp, v))
}

// ConsensusTimestampNEQ applies the NEQ predicate on the "consensus_timestamp" field.
func ConsensusTimestampNEQ(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldConsensusTimestamp, v))
}

// ConsensusTimestampIn applies the In predicate on the "consensus_timestamp" field.
func ConsensusTimestampIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldConsensusTimestamp, vs...))
}

// ConsensusTimestampNotIn applies the NotIn predicate on the "consensus_timestamp" field.
func ConsensusTimestampNotIn(vs ...string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldConsensusTimestamp, vs...))
}

// ConsensusTimestampGT applies the GT predicate on the "consensus_timestamp" field.
func ConsensusTimestampGT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldConsensusTimestamp, v))
}

// ConsensusTimestampGTE applies the GTE predicate on the "consensus_timestamp" field.
func ConsensusTimestampGTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldConsensusTimestamp, v))
}

// ConsensusTimestampLT applies the LT predicate on the "consensus_timestamp" field.
func ConsensusTimestampLT(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldConsensusTimestamp, v))
}

// ConsensusTimestampLTE applies the LTE predicate on the "consensus_timestamp" field.
func ConsensusTimestampLTE(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldConsensusTimestamp, v))
}

// ConsensusTimestampContains applies the Contains predicate on the "consensus_timestamp" field.
func ConsensusTimestampContains(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContains(FieldConsensusTimestamp, v))
}

// ConsensusTimestampHasPrefix applies the HasPrefix predicate on the "consensus_timestamp" field.
func ConsensusTimestampHasPrefix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasPrefix(FieldConsensusTimestamp, v))
}

// ConsensusTimestampHasSuffix applies the HasSuffix predicate on the "consensus_timestamp" field.
func ConsensusTimestampHasSuffix(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldHasSuffix(FieldConsensusTimestamp, v))
}

// ConsensusTimestampEqualFold applies the EqualFold predicate on the "consensus_timestamp" field.
func ConsensusTimestampEqualFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEqualFold(FieldConsensusTimestamp, v))
}

// ConsensusTimestampContainsFold applies the ContainsFold predicate on the "consensus_timestamp" field.
func ConsensusTimestampContainsFold(v string) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldContainsFold(FieldConsensusTimestamp, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentComm {
	return predicate.AgentComm(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentComm) predicate.AgentComm {
	return predicate.AgentComm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentComm) predicate.AgentComm {
	return predicate.AgentComm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentComm) predicate.AgentComm {
	return predicate.AgentComm(sql.NotPredicates(p))
}
