// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
)

// AgentEvent is the model entity for the AgentEvent schema.
type AgentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Not a foreign key: events may reference agents never initialized on this topic
	AgentID string `json:"agent_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType agentevent.EventType `json:"event_type,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey *string `json:"session_key,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *string `json:"transaction_id,omitempty"`
	// TransactionType holds the value of the "transaction_type" field.
	TransactionType *string `json:"transaction_type,omitempty"`
	// ACTION only: {tool, parameters, result}
	Action map[string]interface{} `json:"action,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// Details holds the value of the "details" field.
	Details *string `json:"details,omitempty"`
	// PreviousHash holds the value of the "previous_hash" field.
	PreviousHash *string `json:"previous_hash,omitempty"`
	// Event-reported epoch units, preserved as given
	Timestamp int64 `json:"timestamp,omitempty"`
	// ConsensusTimestamp holds the value of the "consensus_timestamp" field.
	ConsensusTimestamp string `json:"consensus_timestamp,omitempty"`
	// RawData holds the value of the "raw_data" field.
	RawData map[string]interface{} `json:"raw_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentevent.FieldAction, agentevent.FieldRawData:
			values[i] = new([]byte)
		case agentevent.FieldID, agentevent.FieldTimestamp:
			values[i] = new(sql.NullInt64)
		case agentevent.FieldAgentID, agentevent.FieldEventType, agentevent.FieldSessionKey, agentevent.FieldTransactionID, agentevent.FieldTransactionType, agentevent.FieldReasoning, agentevent.FieldDetails, agentevent.FieldPreviousHash, agentevent.FieldConsensusTimestamp:
			values[i] = new(sql.NullString)
		case agentevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentEvent fields.
func (_m *AgentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentevent.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = agentevent.EventType(value.String)
			}
		case agentevent.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = new(string)
				*_m.SessionKey = value.String
			}
		case agentevent.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(string)
				*_m.TransactionID = value.String
			}
		case agentevent.FieldTransactionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_type", values[i])
			} else if value.Valid {
				_m.TransactionType = new(string)
				*_m.TransactionType = value.String
			}
		case agentevent.FieldAction:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Action); err != nil {
					return fmt.Errorf("unmarshal field action: %w", err)
				}
			}
		case agentevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case agentevent.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = new(string)
				*_m.Details = value.String
			}
		case agentevent.FieldPreviousHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_hash", values[i])
			} else if value.Valid {
				_m.PreviousHash = new(string)
				*_m.PreviousHash = value.String
			}
		case agentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Int64
			}
		case agentevent.FieldConsensusTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_timestamp", values[i])
			} else if value.Valid {
				_m.ConsensusTimestamp = value.String
			}
		case agentevent.FieldRawData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawData); err != nil {
					return fmt.Errorf("unmarshal field raw_data: %w", err)
				}
			}
		case agentevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AgentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentEvent.
// Note that you need to call AgentEvent.Unwrap() before calling this method if this AgentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentEvent) Update() *AgentEventUpdateOne {
	return NewAgentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentEvent) Unwrap() *AgentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AgentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	if v := _m.SessionKey; v != nil {
		builder.WriteString("session_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TransactionType; v != nil {
		builder.WriteString("transaction_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Details; v != nil {
		builder.WriteString("details=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreviousHash; v != nil {
		builder.WriteString("previous_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timestamp))
	builder.WriteString(", ")
	builder.WriteString("consensus_timestamp=")
	builder.WriteString(_m.ConsensusTimestamp)
	builder.WriteString(", ")
	builder.WriteString("raw_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentEvents is a parsable slice of AgentEvent.
type AgentEvents []*AgentEvent
