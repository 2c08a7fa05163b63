// Code generated by ent, DO NOT EDIT.

package rental

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rental type in the database.
	Label = "rental"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rental_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldRenter holds the string denoting the renter field in the database.
	FieldRenter = "renter"
	// FieldEscrowAccount holds the string denoting the escrow_account field in the database.
	FieldEscrowAccount = "escrow_account"
	// FieldStakeUsd holds the string denoting the stake_usd field in the database.
	FieldStakeUsd = "stake_usd"
	// FieldBufferUsd holds the string denoting the buffer_usd field in the database.
	FieldBufferUsd = "buffer_usd"
	// FieldTotalCostUsd holds the string denoting the total_cost_usd field in the database.
	FieldTotalCostUsd = "total_cost_usd"
	// FieldSettlement holds the string denoting the settlement field in the database.
	FieldSettlement = "settlement"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInitiatedAt holds the string denoting the initiated_at field in the database.
	FieldInitiatedAt = "initiated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the rental in the database.
	Table = "rentals"
)

// Columns holds all SQL columns for rental fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldRenter,
	FieldEscrowAccount,
	FieldStakeUsd,
	FieldBufferUsd,
	FieldTotalCostUsd,
	FieldSettlement,
	FieldStatus,
	FieldInitiatedAt,
	FieldCompletedAt,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInitiated is the default value of the Status enum.
const DefaultStatus = StatusInitiated

// Status values.
const (
	StatusInitiated Status = "initiated"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInitiated, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("rental: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Rental queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByRenter orders the results by the renter field.
func ByRenter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenter, opts...).ToFunc()
}

// ByEscrowAccount orders the results by the escrow_account field.
func ByEscrowAccount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscrowAccount, opts...).ToFunc()
}

// ByStakeUsd orders the results by the stake_usd field.
func ByStakeUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStakeUsd, opts...).ToFunc()
}

// ByBufferUsd orders the results by the buffer_usd field.
func ByBufferUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBufferUsd, opts...).ToFunc()
}

// ByTotalCostUsd orders the results by the total_cost_usd field.
func ByTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCostUsd, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInitiatedAt orders the results by the initiated_at field.
func ByInitiatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
