// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
)

// HCSMessage is the model entity for the HCSMessage schema.
type HCSMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Textual seconds.nanoseconds; lexicographic order equals chronological order
	ConsensusTimestamp string `json:"consensus_timestamp,omitempty"`
	// SequenceNumber holds the value of the "sequence_number" field.
	SequenceNumber int64 `json:"sequence_number,omitempty"`
	// PayerAccountID holds the value of the "payer_account_id" field.
	PayerAccountID *string `json:"payer_account_id,omitempty"`
	// Wire form of the payload, preserved verbatim
	MessageBase64 string `json:"message_base64,omitempty"`
	// Present only when the payload decoded as JSON
	DecodedJSON map[string]interface{} `json:"decoded_json,omitempty"`
	// Classifier output; unrecognized type strings are preserved verbatim
	MessageType *string `json:"message_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HCSMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hcsmessage.FieldDecodedJSON:
			values[i] = new([]byte)
		case hcsmessage.FieldID, hcsmessage.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case hcsmessage.FieldTopicID, hcsmessage.FieldConsensusTimestamp, hcsmessage.FieldPayerAccountID, hcsmessage.FieldMessageBase64, hcsmessage.FieldMessageType:
			values[i] = new(sql.NullString)
		case hcsmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HCSMessage fields.
func (_m *HCSMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hcsmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hcsmessage.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case hcsmessage.FieldConsensusTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_timestamp", values[i])
			} else if value.Valid {
				_m.ConsensusTimestamp = value.String
			}
		case hcsmessage.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = value.Int64
			}
		case hcsmessage.FieldPayerAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payer_account_id", values[i])
			} else if value.Valid {
				_m.PayerAccountID = new(string)
				*_m.PayerAccountID = value.String
			}
		case hcsmessage.FieldMessageBase64:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_base64", values[i])
			} else if value.Valid {
				_m.MessageBase64 = value.String
			}
		case hcsmessage.FieldDecodedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decoded_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DecodedJSON); err != nil {
					return fmt.Errorf("unmarshal field decoded_json: %w", err)
				}
			}
		case hcsmessage.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = new(string)
				*_m.MessageType = value.String
			}
		case hcsmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HCSMessage.
// This includes values selected through modifiers, order, etc.
func (_m *HCSMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HCSMessage.
// Note that you need to call HCSMessage.Unwrap() before calling this method if this HCSMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HCSMessage) Update() *HCSMessageUpdateOne {
	return NewHCSMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HCSMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HCSMessage) Unwrap() *HCSMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HCSMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HCSMessage) String() string {
	var builder strings.Builder
	builder.WriteString("HCSMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("consensus_timestamp=")
	builder.WriteString(_m.ConsensusTimestamp)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	if v := _m.PayerAccountID; v != nil {
		builder.WriteString("payer_account_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_base64=")
	builder.WriteString(_m.MessageBase64)
	builder.WriteString(", ")
	builder.WriteString("decoded_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecodedJSON))
	builder.WriteString(", ")
	if v := _m.MessageType; v != nil {
		builder.WriteString("message_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HCSMessages is a parsable slice of HCSMessage.
type HCSMessages []*HCSMessage
