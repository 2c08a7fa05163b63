// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
)

// AgentComm is the model entity for the AgentComm schema.
type AgentComm struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// FromAgent holds the value of the "from_agent" field.
	FromAgent string `json:"from_agent,omitempty"`
	// ToAgent holds the value of the "to_agent" field.
	ToAgent *string `json:"to_agent,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Sender-reported, ISO-8601-ish string preserved as given
	Timestamp string `json:"timestamp,omitempty"`
	// ConsensusTimestamp holds the value of the "consensus_timestamp" field.
	ConsensusTimestamp string `json:"consensus_timestamp,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentComm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentcomm.FieldMetadata:
			values[i] = new([]byte)
		case agentcomm.FieldID:
			values[i] = new(sql.NullInt64)
		case agentcomm.FieldTopicID, agentcomm.FieldFromAgent, agentcomm.FieldToAgent, agentcomm.FieldText, agentcomm.FieldTimestamp, agentcomm.FieldConsensusTimestamp:
			values[i] = new(sql.NullString)
		case agentcomm.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentComm fields.
func (_m *AgentComm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentcomm.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentcomm.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case agentcomm.FieldFromAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_agent", values[i])
			} else if value.Valid {
				_m.FromAgent = value.String
			}
		case agentcomm.FieldToAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_agent", values[i])
			} else if value.Valid {
				_m.ToAgent = new(string)
				*_m.ToAgent = value.String
			}
		case agentcomm.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case agentcomm.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case agentcomm.FieldConsensusTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_timestamp", values[i])
			} else if value.Valid {
				_m.ConsensusTimestamp = value.String
			}
		case agentcomm.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case agentcomm.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentComm.
// This includes values selected through modifiers, order, etc.
func (_m *AgentComm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentComm.
// Note that you need to call AgentComm.Unwrap() before calling this method if this AgentComm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentComm) Update() *AgentCommUpdateOne {
	return NewAgentCommClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentComm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentComm) Unwrap() *AgentComm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentComm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentComm) String() string {
	var builder strings.Builder
	builder.WriteString("AgentComm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("from_agent=")
	builder.WriteString(_m.FromAgent)
	builder.WriteString(", ")
	if v := _m.ToAgent; v != nil {
		builder.WriteString("to_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("consensus_timestamp=")
	builder.WriteString(_m.ConsensusTimestamp)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentComms is a parsable slice of AgentComm.
type AgentComms []*AgentComm
