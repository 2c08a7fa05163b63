package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production uses the embedded SQL migrations
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestDatabaseClient_CursorRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.SyncCursor.Create().
		SetID("0.0.1001").
		SetLastTimestamp("1700000001.000000000").
		SetLastSequenceNumber(2).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", created.ID)

	got, err := client.SyncCursor.Get(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "1700000001.000000000", got.LastTimestamp)
	assert.Equal(t, int64(2), got.LastSequenceNumber)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid DB_CONN_MAX_LIFETIME",
			envVars:     map[string]string{"DB_CONN_MAX_LIFETIME": "invalid_duration", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "test", Password: "test",
		Database: "test", SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing password", func(c *Config) { c.Password = "" }, true},
		{"idle conns exceed max conns", func(c *Config) { c.MaxIdleConns = 20 }, true},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0 }, true},
		{"negative idle conns", func(c *Config) { c.MaxIdleConns = -1 }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
