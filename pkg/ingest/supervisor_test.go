package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/agentmesh/hcs-indexer/pkg/mirror"
	"github.com/agentmesh/hcs-indexer/pkg/projection"
	"github.com/agentmesh/hcs-indexer/pkg/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackfiller delegates to test-provided closures.
type fakeBackfiller struct {
	fetch func(ctx context.Context, topicID, cursor string, limit int) ([]mirror.Message, string, error)
	next  func(ctx context.Context, next string) ([]mirror.Message, string, error)
}

func (f *fakeBackfiller) FetchMessages(ctx context.Context, topicID, cursor string, limit int) ([]mirror.Message, string, error) {
	return f.fetch(ctx, topicID, cursor, limit)
}

func (f *fakeBackfiller) FetchNext(ctx context.Context, next string) ([]mirror.Message, string, error) {
	if f.next == nil {
		return nil, "", fmt.Errorf("unexpected FetchNext(%q)", next)
	}
	return f.next(ctx, next)
}

// emptyBackfiller always returns a single empty page.
func emptyBackfiller() *fakeBackfiller {
	return &fakeBackfiller{
		fetch: func(context.Context, string, string, int) ([]mirror.Message, string, error) {
			return nil, "", nil
		},
	}
}

type fakeSubscription struct {
	onMessage stream.MessageHandler
	onError   stream.ErrorHandler
}

func (s *fakeSubscription) Stop() {}

type fakeStreamSource struct {
	mu           sync.Mutex
	subs         []*fakeSubscription
	starts       []string
	subscribeErr error
}

func (f *fakeStreamSource) Subscribe(_ context.Context, _, start string, onMessage stream.MessageHandler, onError stream.ErrorHandler) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	sub := &fakeSubscription{onMessage: onMessage, onError: onError}
	f.subs = append(f.subs, sub)
	f.starts = append(f.starts, start)
	return sub, nil
}

func (f *fakeStreamSource) current() *fakeSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.subs) == 0 {
		return nil
	}
	return f.subs[len(f.subs)-1]
}

func (f *fakeStreamSource) subscribeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type fakeSink struct {
	mu       sync.Mutex
	applied  []projection.Record
	applyErr error
	failSeq  int64
	cursor   string
}

func (f *fakeSink) Apply(_ context.Context, rec projection.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return f.applyErr
	}
	if f.failSeq != 0 && rec.SequenceNumber == f.failSeq {
		return fmt.Errorf("write rejected for sequence %d", rec.SequenceNumber)
	}
	f.applied = append(f.applied, rec)
	f.cursor = rec.ConsensusTimestamp
	return nil
}

func (f *fakeSink) LastTimestamp(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursor, nil
}

func (f *fakeSink) appliedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

func (f *fakeSink) appliedAt(i int) projection.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applied[i]
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestSupervisor_BackfillThenStream(t *testing.T) {
	rest := &fakeBackfiller{
		fetch: func(_ context.Context, topicID, cursor string, limit int) ([]mirror.Message, string, error) {
			assert.Equal(t, "0.0.1001", topicID)
			assert.Empty(t, cursor)
			return []mirror.Message{
				{ConsensusTimestamp: "1700000000.000000001", SequenceNumber: 1, Message: b64(`{"a":1}`)},
				{ConsensusTimestamp: "1700000000.000000002", SequenceNumber: 2, Message: b64(`{"a":2}`)},
			}, "/api/v1/topics/0.0.1001/messages?page=2", nil
		},
		next: func(context.Context, string) ([]mirror.Message, string, error) {
			return []mirror.Message{
				{ConsensusTimestamp: "1700000000.000000003", SequenceNumber: 3, Message: b64(`{"a":3}`)},
			}, "", nil
		},
	}
	streams := &fakeStreamSource{}
	sink := &fakeSink{}

	sup := NewSupervisor("0.0.1001", rest, streams, sink, 100, 0, 0)
	sup.Start(context.Background())
	defer sup.Stop()

	require.Eventually(t, func() bool {
		return sup.Status().State == StateStreaming
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 3, sink.appliedCount())
	assert.Equal(t, int64(1), sink.appliedAt(0).SequenceNumber)
	assert.Equal(t, int64(3), sink.appliedAt(2).SequenceNumber)

	// Stream resumes from the last backfilled timestamp.
	require.Equal(t, 1, streams.subscribeCount())
	assert.Equal(t, "1700000000.000000003", streams.starts[0])

	// Live delivery flows through the same sink.
	streams.current().onMessage(stream.TopicMessage{
		TopicID:            "0.0.1001",
		ConsensusTimestamp: "1700000000.000000004",
		SequenceNumber:     4,
		Contents:           []byte(`{"a":4}`),
	})

	require.Eventually(t, func() bool {
		return sink.appliedCount() == 4
	}, 2*time.Second, 10*time.Millisecond)

	status := sup.Status()
	assert.Equal(t, "1700000000.000000004", status.LastApplied)
	assert.Zero(t, status.ReconnectAttempts)
}

func TestSupervisor_StreamFailureTriggersReBackfill(t *testing.T) {
	var mu sync.Mutex
	var cursors []string

	rest := &fakeBackfiller{
		fetch: func(_ context.Context, _, cursor string, _ int) ([]mirror.Message, string, error) {
			mu.Lock()
			cursors = append(cursors, cursor)
			first := len(cursors) == 1
			mu.Unlock()
			if first {
				return []mirror.Message{
					{ConsensusTimestamp: "1700000000.000000001", SequenceNumber: 1, Message: b64(`{"a":1}`)},
				}, "", nil
			}
			return nil, "", nil
		},
	}
	streams := &fakeStreamSource{}
	sink := &fakeSink{}

	sup := NewSupervisor("0.0.1001", rest, streams, sink, 100, 0, 0)
	sup.Start(context.Background())
	defer sup.Stop()

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Terminal stream failure: supervisor backs off, re-backfills from the
	// cursor, and resubscribes.
	streams.current().onError(errors.New("stream reset by peer"))

	require.Eventually(t, func() bool {
		return sup.Status().State == StateReconnecting
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, sup.Status().ReconnectAttempts)
	assert.Contains(t, sup.Status().LastError, "stream reset by peer")

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 2
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, cursors, 2)
	assert.Empty(t, cursors[0])
	assert.Equal(t, "1700000000.000000001", cursors[1])

	// A successful pass resets the attempt counter.
	assert.Zero(t, sup.Status().ReconnectAttempts)
}

func TestSupervisor_BackfillErrorBacksOff(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	rest := &fakeBackfiller{
		fetch: func(context.Context, string, string, int) ([]mirror.Message, string, error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			if calls == 1 {
				return nil, "", &mirror.StatusError{StatusCode: 500, URL: "http://mirror/x"}
			}
			return nil, "", nil
		},
	}
	streams := &fakeStreamSource{}
	sink := &fakeSink{}

	sup := NewSupervisor("0.0.1001", rest, streams, sink, 100, 0, 0)
	sup.Start(context.Background())
	defer sup.Stop()

	require.Eventually(t, func() bool {
		return sup.Status().State == StateReconnecting
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, sup.Status().LastError, "HTTP 500")

	// Second pass succeeds and reaches the stream.
	require.Eventually(t, func() bool {
		return sup.Status().State == StateStreaming
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSupervisor_NoApplyAfterFailedStreamDelivery(t *testing.T) {
	streams := &fakeStreamSource{}
	sink := &fakeSink{failSeq: 6}

	sup := NewSupervisor("0.0.1001", emptyBackfiller(), streams, sink, 100, 0, 0)
	sup.Start(context.Background())
	defer sup.Stop()

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Seq 6 fails projection; seq 7 arrives before the supervisor tears
	// the subscription down. Applying it would advance the cursor past
	// the gap and the re-backfill would never recover seq 6.
	sub := streams.current()
	sub.onMessage(stream.TopicMessage{
		TopicID:            "0.0.1001",
		ConsensusTimestamp: "1700000600.000000000",
		SequenceNumber:     6,
		Contents:           []byte(`{"a":6}`),
	})
	sub.onMessage(stream.TopicMessage{
		TopicID:            "0.0.1001",
		ConsensusTimestamp: "1700000700.000000000",
		SequenceNumber:     7,
		Contents:           []byte(`{"a":7}`),
	})

	require.Eventually(t, func() bool {
		return sup.Status().State == StateReconnecting
	}, 2*time.Second, 10*time.Millisecond)

	assert.Zero(t, sink.appliedCount())
	assert.Empty(t, sup.Status().LastApplied)
}

func TestSupervisor_StopDuringStream(t *testing.T) {
	streams := &fakeStreamSource{}
	sup := NewSupervisor("0.0.1001", emptyBackfiller(), streams, &fakeSink{}, 100, 0, 0)
	sup.Start(context.Background())

	require.Eventually(t, func() bool {
		return sup.Status().State == StateStreaming
	}, 2*time.Second, 10*time.Millisecond)

	sup.Stop()
	sup.Stop() // idempotent

	assert.Equal(t, StateIdle, sup.Status().State)
	assert.Equal(t, 1, streams.subscribeCount())
}

func TestSupervisor_EmptyTopicSubscribesFromBeginning(t *testing.T) {
	streams := &fakeStreamSource{}
	sup := NewSupervisor("0.0.2002", emptyBackfiller(), streams, &fakeSink{}, 100, 0, 0)
	sup.Start(context.Background())
	defer sup.Stop()

	require.Eventually(t, func() bool {
		return streams.subscribeCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, streams.starts[0])
}

func TestSupervisor_PollingModeWithoutStream(t *testing.T) {
	var mu sync.Mutex
	var cursors []string

	rest := &fakeBackfiller{
		fetch: func(_ context.Context, _, cursor string, _ int) ([]mirror.Message, string, error) {
			mu.Lock()
			defer mu.Unlock()
			cursors = append(cursors, cursor)
			if len(cursors) == 1 {
				return []mirror.Message{
					{ConsensusTimestamp: "1700000000.000000001", SequenceNumber: 1, Message: b64(`{"a":1}`)},
				}, "", nil
			}
			return nil, "", nil
		},
	}
	sink := &fakeSink{}

	sup := NewSupervisor("0.0.3003", rest, nil, sink, 100, 0, 10*time.Millisecond)
	sup.Start(context.Background())
	defer sup.Stop()

	// Without a stream source the supervisor keeps re-polling the mirror
	// from the cursor.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(cursors) >= 3
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, cursors[0])
	assert.Equal(t, "1700000000.000000001", cursors[1])
	assert.Equal(t, 1, sink.appliedCount())
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{0, time.Second},
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{6, 32 * time.Second},
		{7, 60 * time.Second},
		{8, 60 * time.Second},
		{100, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempts), func(t *testing.T) {
			assert.Equal(t, tt.want, backoffDelay(tt.attempts))
		})
	}
}
