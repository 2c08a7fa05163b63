// HCS indexer server — follows consensus topics through backfill and live
// streaming, materializes their events into PostgreSQL, and serves the
// read API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentmesh/hcs-indexer/pkg/api"
	"github.com/agentmesh/hcs-indexer/pkg/config"
	"github.com/agentmesh/hcs-indexer/pkg/database"
	"github.com/agentmesh/hcs-indexer/pkg/ingest"
	"github.com/agentmesh/hcs-indexer/pkg/mirror"
	"github.com/agentmesh/hcs-indexer/pkg/projection"
	"github.com/agentmesh/hcs-indexer/pkg/stream"
	"github.com/agentmesh/hcs-indexer/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	// 1. Initialize configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	slog.Info("Starting HCS indexer",
		"version", version.Full(),
		"http_port", httpPort,
		"mirror_base_url", cfg.MirrorBaseURL,
		"mirror_grpc_addr", cfg.MirrorGRPCAddr,
		"topics", cfg.TopicIDs)

	ctx := context.Background()

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Create mirror clients
	// Note: grpc.NewClient dials lazily; the connection happens on the
	// first subscription.
	restClient := mirror.NewClient(cfg.MirrorBaseURL)

	var streams ingest.StreamSource
	if cfg.StreamingEnabled {
		subscriber, err := stream.NewSubscriber(cfg.MirrorGRPCAddr)
		if err != nil {
			slog.Error("Failed to initialize mirror subscriber", "addr", cfg.MirrorGRPCAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := subscriber.Close(); err != nil {
				slog.Error("Error closing mirror subscriber", "error", err)
			}
		}()
		streams = ingest.NewStreamSource(subscriber)
	} else {
		slog.Info("Streaming disabled, running in REST polling mode", "poll_interval", cfg.PollInterval)
	}

	// 4. Start ingestion
	writer := projection.NewWriter(dbClient.Client)
	manager := ingest.NewManager(&cfg, restClient, streams, writer)
	if err := manager.Start(ctx); err != nil {
		slog.Error("Failed to start ingestion manager", "error", err)
		os.Exit(1)
	}

	// 5. Start HTTP server (non-blocking)
	server := api.NewServer(dbClient, manager)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("HCS indexer started successfully", "topic_count", len(cfg.TopicIDs))

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown: supervisors first so in-flight messages commit,
	// then the HTTP server.
	manager.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
