// Code generated by ent, DO NOT EDIT.

package agentcomm

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentcomm type in the database.
	Label = "agent_comm"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldFromAgent holds the string denoting the from_agent field in the database.
	FieldFromAgent = "from_agent"
	// FieldToAgent holds the string denoting the to_agent field in the database.
	FieldToAgent = "to_agent"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldConsensusTimestamp holds the string denoting the consensus_timestamp field in the database.
	FieldConsensusTimestamp = "consensus_timestamp"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agentcomm in the database.
	Table = "agent_comms"
)

// Columns holds all SQL columns for agentcomm fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldFromAgent,
	FieldToAgent,
	FieldText,
	FieldTimestamp,
	FieldConsensusTimestamp,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentComm queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByFromAgent orders the results by the from_agent field.
func ByFromAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAgent, opts...).ToFunc()
}

// ByToAgent orders the results by the to_agent field.
func ByToAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToAgent, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByConsensusTimestamp orders the results by the consensus_timestamp field.
func ByConsensusTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusTimestamp, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
