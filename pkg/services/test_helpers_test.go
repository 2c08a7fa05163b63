package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/stretchr/testify/require"
)

func seedAgent(t *testing.T, client *ent.Client, id, name, platform string, lastSeen time.Time) *ent.Agent {
	t.Helper()
	ag, err := client.Agent.Create().
		SetID(id).
		SetAgentName(name).
		SetPlatform(platform).
		SetFirstSeenAt(lastSeen).
		SetLastSeenAt(lastSeen).
		Save(context.Background())
	require.NoError(t, err)
	return ag
}

func seedAgentEvent(t *testing.T, client *ent.Client, agentID string, eventType agentevent.EventType, ts int64, consensusTS string) *ent.AgentEvent {
	t.Helper()
	builder := client.AgentEvent.Create().
		SetAgentID(agentID).
		SetEventType(eventType).
		SetTimestamp(ts).
		SetConsensusTimestamp(consensusTS).
		SetRawData(map[string]any{"seeded": true})
	if eventType == agentevent.EventTypeACTION {
		builder.SetSessionKey("s1").SetAction(map[string]any{"tool": "noop"})
	} else {
		builder.SetTransactionID("tx").SetTransactionType("transfer").SetDetails("seeded")
	}
	ev, err := builder.Save(context.Background())
	require.NoError(t, err)
	return ev
}

func seedRental(t *testing.T, client *ent.Client, id, agentID string, status rental.Status) *ent.Rental {
	t.Helper()
	r, err := client.Rental.Create().
		SetID(id).
		SetAgentID(agentID).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return r
}

func seedComm(t *testing.T, client *ent.Client, topicID, from, text, consensusTS string) *ent.AgentComm {
	t.Helper()
	c, err := client.AgentComm.Create().
		SetTopicID(topicID).
		SetFromAgent(from).
		SetText(text).
		SetTimestamp("2023-11-14T22:13:20Z").
		SetConsensusTimestamp(consensusTS).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func seedMessage(t *testing.T, client *ent.Client, topicID string, seq int64, consensusTS, messageType string) *ent.HCSMessage {
	t.Helper()
	builder := client.HCSMessage.Create().
		SetTopicID(topicID).
		SetConsensusTimestamp(consensusTS).
		SetSequenceNumber(seq).
		SetMessageBase64("e30=")
	if messageType != "" {
		builder.SetMessageType(messageType)
	}
	m, err := builder.Save(context.Background())
	require.NoError(t, err)
	return m
}
