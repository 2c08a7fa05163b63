// Package config provides indexer configuration loaded from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults and floors for ingestion pacing.
const (
	DefaultPollInterval = 5000 * time.Millisecond
	MinPollInterval     = 1000 * time.Millisecond
	DefaultPageDelay    = 100 * time.Millisecond
	DefaultPageLimit    = 100
)

// IndexerConfig contains everything the ingestion core needs at startup.
// Database settings live in pkg/database and are loaded separately.
type IndexerConfig struct {
	// MirrorBaseURL is the REST mirror node base URL used for backfill,
	// e.g. "https://mainnet-public.mirrornode.hedera.com".
	MirrorBaseURL string

	// MirrorGRPCAddr is the mirror node gRPC endpoint for the live
	// push-stream subscription, e.g. "mainnet-public.mirrornode.hedera.com:443".
	MirrorGRPCAddr string

	// StreamingEnabled selects the live push stream after backfill. When
	// false the indexer stays in REST polling mode, re-running the
	// backfill every PollInterval.
	StreamingEnabled bool

	// TopicIDs are the seed topics to index. Topics can also be added at
	// runtime through the API.
	TopicIDs []string

	// PollInterval paces backfill passes. Floor of 1s to protect the mirror.
	PollInterval time.Duration

	// PageDelay is the pause between backfill pages (rate-limit friendliness).
	PageDelay time.Duration

	// PageLimit is the page size requested from the REST mirror.
	PageLimit int

	// ShutdownTimeout bounds graceful shutdown of all supervisors.
	ShutdownTimeout time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadFromEnv loads the indexer configuration from environment variables.
func LoadFromEnv() (IndexerConfig, error) {
	pollMs, err := strconv.Atoi(getEnvOrDefault("POLL_INTERVAL_MS", "5000"))
	if err != nil {
		return IndexerConfig{}, fmt.Errorf("invalid POLL_INTERVAL_MS: %w", err)
	}
	pageDelayMs, err := strconv.Atoi(getEnvOrDefault("PAGE_DELAY_MS", "100"))
	if err != nil {
		return IndexerConfig{}, fmt.Errorf("invalid PAGE_DELAY_MS: %w", err)
	}
	pageLimit, err := strconv.Atoi(getEnvOrDefault("PAGE_LIMIT", "100"))
	if err != nil {
		return IndexerConfig{}, fmt.Errorf("invalid PAGE_LIMIT: %w", err)
	}
	shutdownSec, err := strconv.Atoi(getEnvOrDefault("SHUTDOWN_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return IndexerConfig{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS: %w", err)
	}
	streaming, err := strconv.ParseBool(getEnvOrDefault("STREAMING_ENABLED", "true"))
	if err != nil {
		return IndexerConfig{}, fmt.Errorf("invalid STREAMING_ENABLED: %w", err)
	}

	cfg := IndexerConfig{
		MirrorBaseURL:    getEnvOrDefault("MIRROR_BASE_URL", "https://testnet.mirrornode.hedera.com"),
		MirrorGRPCAddr:   getEnvOrDefault("MIRROR_GRPC_ADDR", "testnet.mirrornode.hedera.com:443"),
		StreamingEnabled: streaming,
		TopicIDs:         splitTopicIDs(os.Getenv("TOPIC_IDS")),
		PollInterval:     time.Duration(pollMs) * time.Millisecond,
		PageDelay:        time.Duration(pageDelayMs) * time.Millisecond,
		PageLimit:        pageLimit,
		ShutdownTimeout:  time.Duration(shutdownSec) * time.Second,
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return IndexerConfig{}, err
	}
	return cfg, nil
}

// Validate applies floors and rejects unusable configuration.
func (c *IndexerConfig) Validate() error {
	if c.MirrorBaseURL == "" {
		return fmt.Errorf("MIRROR_BASE_URL must not be empty")
	}
	if c.StreamingEnabled && c.MirrorGRPCAddr == "" {
		return fmt.Errorf("MIRROR_GRPC_ADDR must not be empty when streaming is enabled")
	}
	if c.PollInterval < MinPollInterval {
		c.PollInterval = MinPollInterval
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("PAGE_DELAY_MS must not be negative")
	}
	if c.PageLimit <= 0 {
		c.PageLimit = DefaultPageLimit
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

// splitTopicIDs parses a comma-separated topic list, dropping empties.
func splitTopicIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
