// Code generated by ent, DO NOT EDIT.

package hcsmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hcsmessage type in the database.
	Label = "hcs_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldConsensusTimestamp holds the string denoting the consensus_timestamp field in the database.
	FieldConsensusTimestamp = "consensus_timestamp"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldPayerAccountID holds the string denoting the payer_account_id field in the database.
	FieldPayerAccountID = "payer_account_id"
	// FieldMessageBase64 holds the string denoting the message_base64 field in the database.
	FieldMessageBase64 = "message_base64"
	// FieldDecodedJSON holds the string denoting the decoded_json field in the database.
	FieldDecodedJSON = "decoded_json"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the hcsmessage in the database.
	Table = "hcs_messages"
)

// Columns holds all SQL columns for hcsmessage fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldConsensusTimestamp,
	FieldSequenceNumber,
	FieldPayerAccountID,
	FieldMessageBase64,
	FieldDecodedJSON,
	FieldMessageType,
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

// OrderOption defines the ordering options for the HCSMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByConsensusTimestamp orders the results by the consensus_timestamp field.
func ByConsensusTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusTimestamp, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByPayerAccountID orders the results by the payer_account_id field.
func ByPayerAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayerAccountID, opts...).ToFunc()
}

// ByMessageBase64 orders the results by the message_base64 field.
func ByMessageBase64(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageBase64, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
