package services

import (
	"context"
	"testing"

	"github.com/agentmesh/hcs-indexer/pkg/models"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommsService_ListComms(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommsService(client.Client)
	ctx := context.Background()

	seedComm(t, client.Client, "0.0.1", "atlas", "hello", "1700000000.000000001")
	seedComm(t, client.Client, "0.0.1", "beta", "hi back", "1700000000.000000002")
	seedComm(t, client.Client, "0.0.2", "atlas", "elsewhere", "1700000000.000000003")

	t.Run("newest first", func(t *testing.T) {
		res, err := svc.ListComms(ctx, models.CommsFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "elsewhere", res.Items[0].Text)
	})

	t.Run("filters by topic", func(t *testing.T) {
		res, err := svc.ListComms(ctx, models.CommsFilters{TopicID: "0.0.1"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("filters by sender", func(t *testing.T) {
		res, err := svc.ListComms(ctx, models.CommsFilters{FromAgent: "beta"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "hi back", res.Items[0].Text)
	})
}
