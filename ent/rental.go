// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/rental"
)

// Rental is the model entity for the Rental schema.
type Rental struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Renter holds the value of the "renter" field.
	Renter *string `json:"renter,omitempty"`
	// EscrowAccount holds the value of the "escrow_account" field.
	EscrowAccount *string `json:"escrow_account,omitempty"`
	// StakeUsd holds the value of the "stake_usd" field.
	StakeUsd *float64 `json:"stake_usd,omitempty"`
	// BufferUsd holds the value of the "buffer_usd" field.
	BufferUsd *float64 `json:"buffer_usd,omitempty"`
	// TotalCostUsd holds the value of the "total_cost_usd" field.
	TotalCostUsd *float64 `json:"total_cost_usd,omitempty"`
	// RENTAL_COMPLETED split: {owner, creator, network, treasury}
	Settlement map[string]interface{} `json:"settlement,omitempty"`
	// Status holds the value of the "status" field.
	Status rental.Status `json:"status,omitempty"`
	// InitiatedAt holds the value of the "initiated_at" field.
	InitiatedAt *int64 `json:"initiated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *int64 `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Rental) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rental.FieldSettlement:
			values[i] = new([]byte)
		case rental.FieldStakeUsd, rental.FieldBufferUsd, rental.FieldTotalCostUsd:
			values[i] = new(sql.NullFloat64)
		case rental.FieldInitiatedAt, rental.FieldCompletedAt:
			values[i] = new(sql.NullInt64)
		case rental.FieldID, rental.FieldAgentID, rental.FieldRenter, rental.FieldEscrowAccount, rental.FieldStatus:
			values[i] = new(sql.NullString)
		case rental.FieldCreatedAt, rental.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Rental fields.
func (_m *Rental) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rental.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rental.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case rental.FieldRenter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field renter", values[i])
			} else if value.Valid {
				_m.Renter = new(string)
				*_m.Renter = value.String
			}
		case rental.FieldEscrowAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field escrow_account", values[i])
			} else if value.Valid {
				_m.EscrowAccount = new(string)
				*_m.EscrowAccount = value.String
			}
		case rental.FieldStakeUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stake_usd", values[i])
			} else if value.Valid {
				_m.StakeUsd = new(float64)
				*_m.StakeUsd = value.Float64
			}
		case rental.FieldBufferUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field buffer_usd", values[i])
			} else if value.Valid {
				_m.BufferUsd = new(float64)
				*_m.BufferUsd = value.Float64
			}
		case rental.FieldTotalCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost_usd", values[i])
			} else if value.Valid {
				_m.TotalCostUsd = new(float64)
				*_m.TotalCostUsd = value.Float64
			}
		case rental.FieldSettlement:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settlement", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settlement); err != nil {
					return fmt.Errorf("unmarshal field settlement: %w", err)
				}
			}
		case rental.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = rental.Status(value.String)
			}
		case rental.FieldInitiatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field initiated_at", values[i])
			} else if value.Valid {
				_m.InitiatedAt = new(int64)
				*_m.InitiatedAt = value.Int64
			}
		case rental.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(int64)
				*_m.CompletedAt = value.Int64
			}
		case rental.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case rental.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Rental.
// This includes values selected through modifiers, order, etc.
func (_m *Rental) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Rental.
// Note that you need to call Rental.Unwrap() before calling this method if this Rental
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Rental) Update() *RentalUpdateOne {
	return NewRentalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Rental entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Rental) Unwrap() *Rental {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Rental is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Rental) String() string {
	var builder strings.Builder
	builder.WriteString("Rental(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	if v := _m.Renter; v != nil {
		builder.WriteString("renter=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EscrowAccount; v != nil {
		builder.WriteString("escrow_account=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StakeUsd; v != nil {
		builder.WriteString("stake_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BufferUsd; v != nil {
		builder.WriteString("buffer_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalCostUsd; v != nil {
		builder.WriteString("total_cost_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("settlement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settlement))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.InitiatedAt; v != nil {
		builder.WriteString("initiated_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Rentals is a parsable slice of Rental.
type Rentals []*Rental
