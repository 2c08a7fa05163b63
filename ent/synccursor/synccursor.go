// Code generated by ent, DO NOT EDIT.

package synccursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the synccursor type in the database.
	Label = "sync_cursor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "topic_id"
	// FieldLastTimestamp holds the string denoting the last_timestamp field in the database.
	FieldLastTimestamp = "last_timestamp"
	// FieldLastSequenceNumber holds the string denoting the last_sequence_number field in the database.
	FieldLastSequenceNumber = "last_sequence_number"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the synccursor in the database.
	Table = "sync_cursors"
)

// Columns holds all SQL columns for synccursor fields.
var Columns = []string{
	FieldID,
	FieldLastTimestamp,
	FieldLastSequenceNumber,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SyncCursor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLastTimestamp orders the results by the last_timestamp field.
func ByLastTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTimestamp, opts...).ToFunc()
}

// ByLastSequenceNumber orders the results by the last_sequence_number field.
func ByLastSequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSequenceNumber, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
