// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/synccursor"
)

// SyncCursor is the model entity for the SyncCursor schema.
type SyncCursor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LastTimestamp holds the value of the "last_timestamp" field.
	LastTimestamp string `json:"last_timestamp,omitempty"`
	// LastSequenceNumber holds the value of the "last_sequence_number" field.
	LastSequenceNumber int64 `json:"last_sequence_number,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncCursor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case synccursor.FieldLastSequenceNumber:
			values[i] = new(sql.NullInt64)
		case synccursor.FieldID, synccursor.FieldLastTimestamp:
			values[i] = new(sql.NullString)
		case synccursor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncCursor fields.
func (_m *SyncCursor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case synccursor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case synccursor.FieldLastTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_timestamp", values[i])
			} else if value.Valid {
				_m.LastTimestamp = value.String
			}
		case synccursor.FieldLastSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_sequence_number", values[i])
			} else if value.Valid {
				_m.LastSequenceNumber = value.Int64
			}
		case synccursor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncCursor.
// This includes values selected through modifiers, order, etc.
func (_m *SyncCursor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncCursor.
// Note that you need to call SyncCursor.Unwrap() before calling this method if this SyncCursor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncCursor) Update() *SyncCursorUpdateOne {
	return NewSyncCursorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncCursor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncCursor) Unwrap() *SyncCursor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncCursor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncCursor) String() string {
	var builder strings.Builder
	builder.WriteString("SyncCursor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("last_timestamp=")
	builder.WriteString(_m.LastTimestamp)
	builder.WriteString(", ")
	builder.WriteString("last_sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SyncCursors is a parsable slice of SyncCursor.
type SyncCursors []*SyncCursor
