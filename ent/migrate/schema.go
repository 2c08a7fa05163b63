// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "operating_account", Type: field.TypeString, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[6]},
			},
		},
	}
	// AgentCommsColumns holds the columns for the "agent_comms" table.
	AgentCommsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "to_agent", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "consensus_timestamp", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentCommsTable holds the schema information for the "agent_comms" table.
	AgentCommsTable = &schema.Table{
		Name:       "agent_comms",
		Columns:    AgentCommsColumns,
		PrimaryKey: []*schema.Column{AgentCommsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentcomm_topic_id_consensus_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AgentCommsColumns[1], AgentCommsColumns[6]},
			},
			{
				Name:    "agentcomm_from_agent",
				Unique:  false,
				Columns: []*schema.Column{AgentCommsColumns[2]},
			},
		},
	}
	// AgentEventsColumns holds the columns for the "agent_events" table.
	AgentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"ACTION", "TRANSACTION"}},
		{Name: "session_key", Type: field.TypeString, Nullable: true},
		{Name: "transaction_id", Type: field.TypeString, Nullable: true},
		{Name: "transaction_type", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "previous_hash", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "consensus_timestamp", Type: field.TypeString},
		{Name: "raw_data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentEventsTable holds the schema information for the "agent_events" table.
	AgentEventsTable = &schema.Table{
		Name:       "agent_events",
		Columns:    AgentEventsColumns,
		PrimaryKey: []*schema.Column{AgentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentevent_agent_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[1], AgentEventsColumns[10]},
			},
			{
				Name:    "agentevent_consensus_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[11]},
			},
		},
	}
	// HcsMessagesColumns holds the columns for the "hcs_messages" table.
	HcsMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "consensus_timestamp", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt64},
		{Name: "payer_account_id", Type: field.TypeString, Nullable: true},
		{Name: "message_base64", Type: field.TypeString, Size: 2147483647},
		{Name: "decoded_json", Type: field.TypeJSON, Nullable: true},
		{Name: "message_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HcsMessagesTable holds the schema information for the "hcs_messages" table.
	HcsMessagesTable = &schema.Table{
		Name:       "hcs_messages",
		Columns:    HcsMessagesColumns,
		PrimaryKey: []*schema.Column{HcsMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hcsmessage_topic_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{HcsMessagesColumns[1], HcsMessagesColumns[3]},
			},
			{
				Name:    "hcsmessage_topic_id_consensus_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HcsMessagesColumns[1], HcsMessagesColumns[2]},
			},
		},
	}
	// RentalsColumns holds the columns for the "rentals" table.
	RentalsColumns = []*schema.Column{
		{Name: "rental_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "renter", Type: field.TypeString, Nullable: true},
		{Name: "escrow_account", Type: field.TypeString, Nullable: true},
		{Name: "stake_usd", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "buffer_usd", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "total_cost_usd", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "settlement", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"initiated", "completed"}, Default: "initiated"},
		{Name: "initiated_at", Type: field.TypeInt64, Nullable: true},
		{Name: "completed_at", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RentalsTable holds the schema information for the "rentals" table.
	RentalsTable = &schema.Table{
		Name:       "rentals",
		Columns:    RentalsColumns,
		PrimaryKey: []*schema.Column{RentalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rental_agent_id",
				Unique:  false,
				Columns: []*schema.Column{RentalsColumns[1]},
			},
			{
				Name:    "rental_status",
				Unique:  false,
				Columns: []*schema.Column{RentalsColumns[8]},
			},
		},
	}
	// SyncCursorsColumns holds the columns for the "sync_cursors" table.
	SyncCursorsColumns = []*schema.Column{
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "last_timestamp", Type: field.TypeString},
		{Name: "last_sequence_number", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SyncCursorsTable holds the schema information for the "sync_cursors" table.
	SyncCursorsTable = &schema.Table{
		Name:       "sync_cursors",
		Columns:    SyncCursorsColumns,
		PrimaryKey: []*schema.Column{SyncCursorsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentCommsTable,
		AgentEventsTable,
		HcsMessagesTable,
		RentalsTable,
		SyncCursorsTable,
	}
)

func init() {
	AgentCommsTable.Annotation = &entsql.Annotation{
		Table: "agent_comms",
	}
	HcsMessagesTable.Annotation = &entsql.Annotation{
		Table: "hcs_messages",
	}
}
