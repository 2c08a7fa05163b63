package services

import (
	"context"
	"testing"
	"time"

	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/pkg/models"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentService_GetAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	seedAgent(t, client.Client, "atlas", "Atlas", "hedera", time.Now())

	t.Run("returns existing agent", func(t *testing.T) {
		ag, err := svc.GetAgent(ctx, "atlas")
		require.NoError(t, err)
		assert.Equal(t, "Atlas", ag.AgentName)
	})

	t.Run("unknown agent yields ErrNotFound", func(t *testing.T) {
		_, err := svc.GetAgent(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id fails validation", func(t *testing.T) {
		_, err := svc.GetAgent(ctx, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_ListAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seedAgent(t, client.Client, "a1", "One", "hedera", base)
	seedAgent(t, client.Client, "a2", "Two", "hedera", base.Add(time.Minute))
	seedAgent(t, client.Client, "a3", "Three", "solana", base.Add(2*time.Minute))

	t.Run("orders by recent activity", func(t *testing.T) {
		res, err := svc.ListAgents(ctx, models.AgentFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "a3", res.Items[0].ID)
		assert.Equal(t, "a1", res.Items[2].ID)
	})

	t.Run("filters by platform", func(t *testing.T) {
		res, err := svc.ListAgents(ctx, models.AgentFilters{Platform: "solana"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "a3", res.Items[0].ID)
	})

	t.Run("paginates", func(t *testing.T) {
		res, err := svc.ListAgents(ctx, models.AgentFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "a1", res.Items[0].ID)
	})

	t.Run("clamps oversized limit", func(t *testing.T) {
		res, err := svc.ListAgents(ctx, models.AgentFilters{Limit: 10_000})
		require.NoError(t, err)
		assert.Equal(t, models.MaxPageSize, res.Limit)
	})
}

func TestAgentService_ListAgentEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	seedAgent(t, client.Client, "atlas", "Atlas", "hedera", time.Now())
	seedAgentEvent(t, client.Client, "atlas", agentevent.EventTypeACTION, 1, "1700000000.000000001")
	seedAgentEvent(t, client.Client, "atlas", agentevent.EventTypeTRANSACTION, 2, "1700000000.000000002")
	seedAgentEvent(t, client.Client, "other", agentevent.EventTypeACTION, 3, "1700000000.000000003")

	t.Run("returns events in consensus order", func(t *testing.T) {
		res, err := svc.ListAgentEvents(ctx, "atlas", models.AgentEventFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, agentevent.EventTypeACTION, res.Items[0].EventType)
		assert.Equal(t, agentevent.EventTypeTRANSACTION, res.Items[1].EventType)
	})

	t.Run("filters by event type", func(t *testing.T) {
		res, err := svc.ListAgentEvents(ctx, "atlas", models.AgentEventFilters{EventType: "TRANSACTION"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("rejects unknown event type", func(t *testing.T) {
		_, err := svc.ListAgentEvents(ctx, "atlas", models.AgentEventFilters{EventType: "BOGUS"})
		assert.True(t, IsValidationError(err))
	})
}
