package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/agentmesh/hcs-indexer/pkg/config"
	"github.com/agentmesh/hcs-indexer/pkg/mirror"
	"github.com/agentmesh/hcs-indexer/pkg/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManagerConfig(topics ...string) *config.IndexerConfig {
	return &config.IndexerConfig{
		TopicIDs:        topics,
		PageLimit:       100,
		PageDelay:       0,
		ShutdownTimeout: 5 * time.Second,
	}
}

func TestManager_StartSpawnsConfiguredTopics(t *testing.T) {
	streams := &fakeStreamSource{}
	m := NewManager(testManagerConfig("0.0.1", "0.0.2"), emptyBackfiller(), streams, &fakeSink{})

	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 2
	}, 2*time.Second, 10*time.Millisecond)

	status := m.Status()
	require.Len(t, status, 2)
	assert.Contains(t, status, "0.0.1")
	assert.Contains(t, status, "0.0.2")
}

func TestManager_AddTopicAtRuntime(t *testing.T) {
	streams := &fakeStreamSource{}
	m := NewManager(testManagerConfig(), emptyBackfiller(), streams, &fakeSink{})

	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	require.NoError(t, m.AddTopic("0.0.3"))

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Contains(t, m.Status(), "0.0.3")
}

func TestManager_AddTopicRejectsDuplicates(t *testing.T) {
	m := NewManager(testManagerConfig("0.0.1"), emptyBackfiller(), &fakeStreamSource{}, &fakeSink{})

	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	err := m.AddTopic("0.0.1")
	assert.ErrorIs(t, err, ErrTopicAlreadyIndexed)
}

func TestManager_AddTopicBeforeStartIsQueued(t *testing.T) {
	streams := &fakeStreamSource{}
	m := NewManager(testManagerConfig(), emptyBackfiller(), streams, &fakeSink{})

	require.NoError(t, m.AddTopic("0.0.9"))
	assert.ErrorIs(t, m.AddTopic("0.0.9"), ErrTopicAlreadyIndexed)

	// Queued topics show up as idle before Start.
	status := m.Status()
	require.Contains(t, status, "0.0.9")
	assert.Equal(t, StateIdle, status["0.0.9"].State)

	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

// gatedSink blocks the first Apply until released, recording the context
// state at the moment it proceeds.
type gatedSink struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu      sync.Mutex
	ctxErr  error
	applied int
}

func newGatedSink() *gatedSink {
	return &gatedSink{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gatedSink) Apply(ctx context.Context, _ projection.Record) error {
	g.once.Do(func() { close(g.entered) })
	<-g.release

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctxErr = ctx.Err()
	g.applied++
	return nil
}

func (g *gatedSink) LastTimestamp(context.Context, string) (string, error) {
	return "", nil
}

func TestManager_StopLetsInFlightApplyFinish(t *testing.T) {
	rest := &fakeBackfiller{
		fetch: func(context.Context, string, string, int) ([]mirror.Message, string, error) {
			return []mirror.Message{
				{ConsensusTimestamp: "1700000000.000000001", SequenceNumber: 1, Message: b64(`{"a":1}`)},
			}, "", nil
		},
	}
	sink := newGatedSink()
	m := NewManager(testManagerConfig("0.0.1"), rest, &fakeStreamSource{}, sink)
	require.NoError(t, m.Start(context.Background()))

	<-sink.entered

	stopped := make(chan struct{})
	go func() {
		m.Stop()
		close(stopped)
	}()

	// The stop signal is out; the context handed to the in-flight apply
	// must stay live until it returns.
	time.Sleep(50 * time.Millisecond)
	close(sink.release)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("manager did not stop")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.NoError(t, sink.ctxErr)
	assert.Equal(t, 1, sink.applied)
}

func TestManager_StopIsGraceful(t *testing.T) {
	m := NewManager(testManagerConfig("0.0.1"), emptyBackfiller(), &fakeStreamSource{}, &fakeSink{})
	require.NoError(t, m.Start(context.Background()))

	require.Eventually(t, func() bool {
		return m.Status()["0.0.1"].State == StateStreaming
	}, 2*time.Second, 10*time.Millisecond)

	m.Stop()
	assert.Equal(t, StateIdle, m.Status()["0.0.1"].State)

	// Second Stop is a no-op.
	m.Stop()
}

func TestManager_DuplicateStartIsNoOp(t *testing.T) {
	streams := &fakeStreamSource{}
	m := NewManager(testManagerConfig("0.0.1"), emptyBackfiller(), streams, &fakeSink{})

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, m.Status(), 1)
}
