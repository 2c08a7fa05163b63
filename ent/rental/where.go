// Code generated by ent, DO NOT EDIT.

package rental

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Rental {
	return predicate.Rental(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Rental {
	return predicate.Rental(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldAgentID, v))
}

// Renter applies equality check predicate on the "renter" field. It's identical to RenterEQ.
func Renter(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldRenter, v))
}

// EscrowAccount applies equality check predicate on the "escrow_account" field. It's identical to EscrowAccountEQ.
func EscrowAccount(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldEscrowAccount, v))
}

// StakeUsd applies equality check predicate on the "stake_usd" field. It's identical to StakeUsdEQ.
func StakeUsd(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldStakeUsd, v))
}

// BufferUsd applies equality check predicate on the "buffer_usd" field. It's identical to BufferUsdEQ.
func BufferUsd(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldBufferUsd, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldTotalCostUsd, v))
}

// InitiatedAt applies equality check predicate on the "initiated_at" field. It's identical to InitiatedAtEQ.
func InitiatedAt(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldInitiatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Rental {
	return predicate.Rental(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Rental {
	return predicate.Rental(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Rental {
	return predicate.Rental(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Rental {
	return predicate.Rental(sql.FieldContainsFold(FieldAgentID, v))
}

// RenterEQ applies the EQ predicate on the "renter" field.
func RenterEQ(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldRenter, v))
}

// RenterNEQ applies the NEQ predicate on the "renter" field.
func RenterNEQ(v string) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldRenter, v))
}

// RenterIn applies the In predicate on the "renter" field.
func RenterIn(vs ...string) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldRenter, vs...))
}

// RenterNotIn applies the NotIn predicate on the "renter" field.
func RenterNotIn(vs ...string) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldRenter, vs...))
}

// RenterGT applies the GT predicate on the "renter" field.
func RenterGT(v string) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldRenter, v))
}

// RenterGTE applies the GTE predicate on the "renter" field.
func RenterGTE(v string) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldRenter, v))
}

// RenterLT applies the LT predicate on the "renter" field.
func RenterLT(v string) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldRenter, v))
}

// RenterLTE applies the LTE predicate on the "renter" field.
func RenterLTE(v string) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldRenter, v))
}

// RenterContains applies the Contains predicate on the "renter" field.
func RenterContains(v string) predicate.Rental {
	return predicate.Rental(sql.FieldContains(FieldRenter, v))
}

// RenterHasPrefix applies the HasPrefix predicate on the "renter" field.
func RenterHasPrefix(v string) predicate.Rental {
	return predicate.Rental(sql.FieldHasPrefix(FieldRenter, v))
}

// RenterHasSuffix applies the HasSuffix predicate on the "renter" field.
func RenterHasSuffix(v string) predicate.Rental {
	return predicate.Rental(sql.FieldHasSuffix(FieldRenter, v))
}

// RenterIsNil applies the IsNil predicate on the "renter" field.
func RenterIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldRenter))
}

// RenterNotNil applies the NotNil predicate on the "renter" field.
func RenterNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldRenter))
}

// RenterEqualFold applies the EqualFold predicate on the "renter" field.
func RenterEqualFold(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEqualFold(FieldRenter, v))
}

// RenterContainsFold applies the ContainsFold predicate on the "renter" field.
func RenterContainsFold(v string) predicate.Rental {
	return predicate.Rental(sql.FieldContainsFold(FieldRenter, v))
}

// EscrowAccountEQ applies the EQ predicate on the "escrow_account" field.
func EscrowAccountEQ(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldEscrowAccount, v))
}

// EscrowAccountNEQ applies the NEQ predicate on the "escrow_account" field.
func EscrowAccountNEQ(v string) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldEscrowAccount, v))
}

// EscrowAccountIn applies the In predicate on the "escrow_account" field.
func EscrowAccountIn(vs ...string) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldEscrowAccount, vs...))
}

// EscrowAccountNotIn applies the NotIn predicate on the "escrow_account" field.
func EscrowAccountNotIn(vs ...string) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldEscrowAccount, vs...))
}

// EscrowAccountGT applies the GT predicate on the "escrow_account" field.
func EscrowAccountGT(v string) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldEscrowAccount, v))
}

// EscrowAccountGTE applies the GTE predicate on the "escrow_account" field.
func EscrowAccountGTE(v string) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldEscrowAccount, v))
}

// EscrowAccountLT applies the LT predicate on the "escrow_account" field.
func EscrowAccountLT(v string) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldEscrowAccount, v))
}

// EscrowAccountLTE applies the LTE predicate on the "escrow_account" field.
func EscrowAccountLTE(v string) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldEscrowAccount, v))
}

// EscrowAccountContains applies the Contains predicate on the "escrow_account" field.
func EscrowAccountContains(v string) predicate.Rental {
	return predicate.Rental(sql.FieldContains(FieldEscrowAccount, v))
}

// EscrowAccountHasPrefix applies the HasPrefix predicate on the "escrow_account" field.
func EscrowAccountHasPrefix(v string) predicate.Rental {
	return predicate.Rental(sql.FieldHasPrefix(FieldEscrowAccount, v))
}

// EscrowAccountHasSuffix applies the HasSuffix predicate on the "escrow_account" field.
func EscrowAccountHasSuffix(v string) predicate.Rental {
	return predicate.Rental(sql.FieldHasSuffix(FieldEscrowAccount, v))
}

// EscrowAccountIsNil applies the IsNil predicate on the "escrow_account" field.
func EscrowAccountIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldEscrowAccount))
}

// EscrowAccountNotNil applies the NotNil predicate on the "escrow_account" field.
func EscrowAccountNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldEscrowAccount))
}

// EscrowAccountEqualFold applies the EqualFold predicate on the "escrow_account" field.
func EscrowAccountEqualFold(v string) predicate.Rental {
	return predicate.Rental(sql.FieldEqualFold(FieldEscrowAccount, v))
}

// EscrowAccountContainsFold applies the ContainsFold predicate on the "escrow_account" field.
func EscrowAccountContainsFold(v string) predicate.Rental {
	return predicate.Rental(sql.FieldContainsFold(FieldEscrowAccount, v))
}

// StakeUsdEQ applies the EQ predicate on the "stake_usd" field.
func StakeUsdEQ(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldStakeUsd, v))
}

// StakeUsdNEQ applies the NEQ predicate on the "stake_usd" field.
func StakeUsdNEQ(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldStakeUsd, v))
}

// StakeUsdIn applies the In predicate on the "stake_usd" field.
func StakeUsdIn(vs ...float64) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldStakeUsd, vs...))
}

// StakeUsdNotIn applies the NotIn predicate on the "stake_usd" field.
func StakeUsdNotIn(vs ...float64) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldStakeUsd, vs...))
}

// StakeUsdGT applies the GT predicate on the "stake_usd" field.
func StakeUsdGT(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldStakeUsd, v))
}

// StakeUsdGTE applies the GTE predicate on the "stake_usd" field.
func StakeUsdGTE(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldStakeUsd, v))
}

// StakeUsdLT applies the LT predicate on the "stake_usd" field.
func StakeUsdLT(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldStakeUsd, v))
}

// StakeUsdLTE applies the LTE predicate on the "stake_usd" field.
func StakeUsdLTE(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldStakeUsd, v))
}

// StakeUsdIsNil applies the IsNil predicate on the "stake_usd" field.
func StakeUsdIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldStakeUsd))
}

// StakeUsdNotNil applies the NotNil predicate on the "stake_usd" field.
func StakeUsdNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldStakeUsd))
}

// BufferUsdEQ applies the EQ predicate on the "buffer_usd" field.
func BufferUsdEQ(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldBufferUsd, v))
}

// BufferUsdNEQ applies the NEQ predicate on the "buffer_usd" field.
func BufferUsdNEQ(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldBufferUsd, v))
}

// BufferUsdIn applies the In predicate on the "buffer_usd" field.
func BufferUsdIn(vs ...float64) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldBufferUsd, vs...))
}

// BufferUsdNotIn applies the NotIn predicate on the "buffer_usd" field.
func BufferUsdNotIn(vs ...float64) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldBufferUsd, vs...))
}

// BufferUsdGT applies the GT predicate on the "buffer_usd" field.
func BufferUsdGT(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldBufferUsd, v))
}

// BufferUsdGTE applies the GTE predicate on the "buffer_usd" field.
func BufferUsdGTE(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldBufferUsd, v))
}

// BufferUsdLT applies the LT predicate on the "buffer_usd" field.
func BufferUsdLT(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldBufferUsd, v))
}

// BufferUsdLTE applies the LTE predicate on the "buffer_usd" field.
func BufferUsdLTE(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldBufferUsd, v))
}

// BufferUsdIsNil applies the IsNil predicate on the "buffer_usd" field.
func BufferUsdIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldBufferUsd))
}

// BufferUsdNotNil applies the NotNil predicate on the "buffer_usd" field.
func BufferUsdNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldBufferUsd))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...float64) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...float64) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v float64) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldTotalCostUsd, v))
}

// TotalCostUsdIsNil applies the IsNil predicate on the "total_cost_usd" field.
func TotalCostUsdIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldTotalCostUsd))
}

// TotalCostUsdNotNil applies the NotNil predicate on the "total_cost_usd" field.
func TotalCostUsdNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldTotalCostUsd))
}

// SettlementIsNil applies the IsNil predicate on the "settlement" field.
func SettlementIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldSettlement))
}

// SettlementNotNil applies the NotNil predicate on the "settlement" field.
func SettlementNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldSettlement))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldStatus, vs...))
}

// InitiatedAtEQ applies the EQ predicate on the "initiated_at" field.
func InitiatedAtEQ(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldInitiatedAt, v))
}

// InitiatedAtNEQ applies the NEQ predicate on the "initiated_at" field.
func InitiatedAtNEQ(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldInitiatedAt, v))
}

// InitiatedAtIn applies the In predicate on the "initiated_at" field.
func InitiatedAtIn(vs ...int64) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldInitiatedAt, vs...))
}

// InitiatedAtNotIn applies the NotIn predicate on the "initiated_at" field.
func InitiatedAtNotIn(vs ...int64) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldInitiatedAt, vs...))
}

// InitiatedAtGT applies the GT predicate on the "initiated_at" field.
func InitiatedAtGT(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldInitiatedAt, v))
}

// InitiatedAtGTE applies the GTE predicate on the "initiated_at" field.
func InitiatedAtGTE(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldInitiatedAt, v))
}

// InitiatedAtLT applies the LT predicate on the "initiated_at" field.
func InitiatedAtLT(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldInitiatedAt, v))
}

// InitiatedAtLTE applies the LTE predicate on the "initiated_at" field.
func InitiatedAtLTE(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldInitiatedAt, v))
}

// InitiatedAtIsNil applies the IsNil predicate on the "initiated_at" field.
func InitiatedAtIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldInitiatedAt))
}

// InitiatedAtNotNil applies the NotNil predicate on the "initiated_at" field.
func InitiatedAtNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldInitiatedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...int64) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...int64) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v int64) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Rental {
	return predicate.Rental(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Rental {
	return predicate.Rental(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Rental {
	return predicate.Rental(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rental) predicate.Rental {
	return predicate.Rental(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rental) predicate.Rental {
	return predicate.Rental(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rental) predicate.Rental {
	return predicate.Rental(sql.NotPredicates(p))
}
