package services

import (
	"context"
	"testing"

	"github.com/agentmesh/hcs-indexer/pkg/models"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_ListTopicMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	seedMessage(t, client.Client, "0.0.1", 1, "1700000000.000000001", "AGENT_INIT")
	seedMessage(t, client.Client, "0.0.1", 2, "1700000000.000000002", "ACTION")
	seedMessage(t, client.Client, "0.0.1", 3, "1700000000.000000003", "")
	seedMessage(t, client.Client, "0.0.2", 1, "1700000000.000000004", "ACTION")

	t.Run("returns topic in sequence order", func(t *testing.T) {
		res, err := svc.ListTopicMessages(ctx, "0.0.1", models.MessageFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 3)
		assert.Equal(t, int64(1), res.Items[0].SequenceNumber)
		assert.Equal(t, int64(3), res.Items[2].SequenceNumber)
	})

	t.Run("filters by message type", func(t *testing.T) {
		res, err := svc.ListTopicMessages(ctx, "0.0.1", models.MessageFilters{MessageType: "ACTION"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("empty topic id fails validation", func(t *testing.T) {
		_, err := svc.ListTopicMessages(ctx, "", models.MessageFilters{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("paginates", func(t *testing.T) {
		res, err := svc.ListTopicMessages(ctx, "0.0.1", models.MessageFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, int64(3), res.Items[0].SequenceNumber)
	})
}
