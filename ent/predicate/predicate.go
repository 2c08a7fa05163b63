// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentComm is the predicate function for agentcomm builders.
type AgentComm func(*sql.Selector)

// AgentEvent is the predicate function for agentevent builders.
type AgentEvent func(*sql.Selector)

// HCSMessage is the predicate function for hcsmessage builders.
type HCSMessage func(*sql.Selector)

// Rental is the predicate function for rental builders.
type Rental func(*sql.Selector)

// SyncCursor is the predicate function for synccursor builders.
type SyncCursor func(*sql.Selector)
