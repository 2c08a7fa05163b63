package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5000*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.PageDelay)
	assert.Equal(t, 100, cfg.PageLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.TopicIDs)
	assert.True(t, cfg.StreamingEnabled)
}

func TestLoadFromEnv_StreamingDisabled(t *testing.T) {
	t.Setenv("STREAMING_ENABLED", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.StreamingEnabled)
}

func TestLoadFromEnv_TopicList(t *testing.T) {
	t.Setenv("TOPIC_IDS", "0.0.1001, 0.0.1002,,0.0.1003")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"0.0.1001", "0.0.1002", "0.0.1003"}, cfg.TopicIDs)
}

func TestLoadFromEnv_PollIntervalFloor(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MS", "250")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, MinPollInterval, cfg.PollInterval)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad poll interval", "POLL_INTERVAL_MS", "soon"},
		{"bad page delay", "PAGE_DELAY_MS", "-5"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT_SECONDS", "0"},
		{"bad streaming flag", "STREAMING_ENABLED", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidate_PageLimitDefault(t *testing.T) {
	cfg := IndexerConfig{
		MirrorBaseURL:   "https://mirror.example.com",
		MirrorGRPCAddr:  "mirror.example.com:443",
		PollInterval:    DefaultPollInterval,
		PageLimit:       0,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPageLimit, cfg.PageLimit)
}
