package services

import (
	"context"
	"testing"

	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/agentmesh/hcs-indexer/pkg/models"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalService_GetRental(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRentalService(client.Client)
	ctx := context.Background()

	seedRental(t, client.Client, "r1", "atlas", rental.StatusInitiated)

	t.Run("returns existing rental", func(t *testing.T) {
		r, err := svc.GetRental(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "atlas", r.AgentID)
	})

	t.Run("unknown rental yields ErrNotFound", func(t *testing.T) {
		_, err := svc.GetRental(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRentalService_ListRentals(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRentalService(client.Client)
	ctx := context.Background()

	seedRental(t, client.Client, "r1", "atlas", rental.StatusInitiated)
	seedRental(t, client.Client, "r2", "atlas", rental.StatusCompleted)
	seedRental(t, client.Client, "r3", "beta", rental.StatusInitiated)

	t.Run("lists all", func(t *testing.T) {
		res, err := svc.ListRentals(ctx, models.RentalFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
	})

	t.Run("filters by agent", func(t *testing.T) {
		res, err := svc.ListRentals(ctx, models.RentalFilters{AgentID: "atlas"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("filters by status", func(t *testing.T) {
		res, err := svc.ListRentals(ctx, models.RentalFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "r2", res.Items[0].ID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.ListRentals(ctx, models.RentalFilters{Status: "pending"})
		assert.True(t, IsValidationError(err))
	})
}
