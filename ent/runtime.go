// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentmesh/hcs-indexer/ent/agent"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/agentmesh/hcs-indexer/ent/schema"
	"github.com/agentmesh/hcs-indexer/ent/synccursor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescFirstSeenAt is the schema descriptor for first_seen_at field.
	agentDescFirstSeenAt := agentFields[5].Descriptor()
	// agent.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	agent.DefaultFirstSeenAt = agentDescFirstSeenAt.Default.(func() time.Time)
	// agentDescLastSeenAt is the schema descriptor for last_seen_at field.
	agentDescLastSeenAt := agentFields[6].Descriptor()
	// agent.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	agent.DefaultLastSeenAt = agentDescLastSeenAt.Default.(func() time.Time)
	agentcommFields := schema.AgentComm{}.Fields()
	_ = agentcommFields
	// agentcommDescCreatedAt is the schema descriptor for created_at field.
	agentcommDescCreatedAt := agentcommFields[7].Descriptor()
	// agentcomm.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentcomm.DefaultCreatedAt = agentcommDescCreatedAt.Default.(func() time.Time)
	agenteventFields := schema.AgentEvent{}.Fields()
	_ = agenteventFields
	// agenteventDescCreatedAt is the schema descriptor for created_at field.
	agenteventDescCreatedAt := agenteventFields[12].Descriptor()
	// agentevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentevent.DefaultCreatedAt = agenteventDescCreatedAt.Default.(func() time.Time)
	hcsmessageFields := schema.HCSMessage{}.Fields()
	_ = hcsmessageFields
	// hcsmessageDescCreatedAt is the schema descriptor for created_at field.
	hcsmessageDescCreatedAt := hcsmessageFields[7].Descriptor()
	// hcsmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	hcsmessage.DefaultCreatedAt = hcsmessageDescCreatedAt.Default.(func() time.Time)
	rentalFields := schema.Rental{}.Fields()
	_ = rentalFields
	// rentalDescCreatedAt is the schema descriptor for created_at field.
	rentalDescCreatedAt := rentalFields[11].Descriptor()
	// rental.DefaultCreatedAt holds the default value on creation for the created_at field.
	rental.DefaultCreatedAt = rentalDescCreatedAt.Default.(func() time.Time)
	// rentalDescUpdatedAt is the schema descriptor for updated_at field.
	rentalDescUpdatedAt := rentalFields[12].Descriptor()
	// rental.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rental.DefaultUpdatedAt = rentalDescUpdatedAt.Default.(func() time.Time)
	// rental.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rental.UpdateDefaultUpdatedAt = rentalDescUpdatedAt.UpdateDefault.(func() time.Time)
	synccursorFields := schema.SyncCursor{}.Fields()
	_ = synccursorFields
	// synccursorDescUpdatedAt is the schema descriptor for updated_at field.
	synccursorDescUpdatedAt := synccursorFields[3].Descriptor()
	// synccursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	synccursor.DefaultUpdatedAt = synccursorDescUpdatedAt.Default.(func() time.Time)
	// synccursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	synccursor.UpdateDefaultUpdatedAt = synccursorDescUpdatedAt.UpdateDefault.(func() time.Time)
}
