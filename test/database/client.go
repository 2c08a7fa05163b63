// Package database provides the shared database client for DB-backed tests.
package database

import (
	"testing"

	"github.com/agentmesh/hcs-indexer/pkg/database"
	"github.com/agentmesh/hcs-indexer/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
