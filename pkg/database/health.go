package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports connectivity and pool pressure for the shared
// Postgres pool. Every supervisor holds one connection per in-flight
// message transaction, so sustained waits here show up as ingestion lag
// before anything fails outright.
type HealthStatus struct {
	Status          string `json:"status"`
	PingMillis      int64  `json:"ping_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitMillis      int64  `json:"wait_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and snapshots the pool counters. A failed
// ping returns the partial status alongside the error so the health
// endpoint can still report the ping latency.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          "healthy",
		PingMillis:      time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitMillis:      stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
