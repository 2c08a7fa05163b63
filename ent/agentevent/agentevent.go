// Code generated by ent, DO NOT EDIT.

package agentevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentevent type in the database.
	Label = "agent_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldTransactionType holds the string denoting the transaction_type field in the database.
	FieldTransactionType = "transaction_type"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldPreviousHash holds the string denoting the previous_hash field in the database.
	FieldPreviousHash = "previous_hash"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldConsensusTimestamp holds the string denoting the consensus_timestamp field in the database.
	FieldConsensusTimestamp = "consensus_timestamp"
	// FieldRawData holds the string denoting the raw_data field in the database.
	FieldRawData = "raw_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agentevent in the database.
	Table = "agent_events"
)

// Columns holds all SQL columns for agentevent fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldEventType,
	FieldSessionKey,
	FieldTransactionID,
	FieldTransactionType,
	FieldAction,
	FieldReasoning,
	FieldDetails,
	FieldPreviousHash,
	FieldTimestamp,
	FieldConsensusTimestamp,
	FieldRawData,
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

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeACTION      EventType = "ACTION"
	EventTypeTRANSACTION EventType = "TRANSACTION"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeACTION, EventTypeTRANSACTION:
		return nil
	default:
		return fmt.Errorf("agentevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the AgentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByTransactionType orders the results by the transaction_type field.
func ByTransactionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionType, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByPreviousHash orders the results by the previous_hash field.
func ByPreviousHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousHash, opts...).ToFunc()
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
