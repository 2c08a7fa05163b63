package stream

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	pb "github.com/agentmesh/hcs-indexer/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// fakeTopicStream replays scripted responses, then a terminal error.
type fakeTopicStream struct {
	grpc.ClientStream
	ctx      context.Context
	mu       sync.Mutex
	pending  []*pb.ConsensusTopicResponse
	finalErr error
}

func (f *fakeTopicStream) Recv() (*pb.ConsensusTopicResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) > 0 {
		resp := f.pending[0]
		f.pending = f.pending[1:]
		return resp, nil
	}
	if f.finalErr != nil {
		return nil, f.finalErr
	}
	// Nothing scripted: block until the subscription context is cancelled.
	f.mu.Unlock()
	<-f.ctx.Done()
	f.mu.Lock()
	return nil, f.ctx.Err()
}

type fakeConsensusClient struct {
	mu        sync.Mutex
	lastQuery *pb.ConsensusTopicQuery
	responses []*pb.ConsensusTopicResponse
	finalErr  error
}

func (f *fakeConsensusClient) SubscribeTopic(ctx context.Context, in *pb.ConsensusTopicQuery, _ ...grpc.CallOption) (pb.ConsensusService_SubscribeTopicClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = in
	return &fakeTopicStream{ctx: ctx, pending: f.responses, finalErr: f.finalErr}, nil
}

func (f *fakeConsensusClient) query() *pb.ConsensusTopicQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

func response(seq uint64, seconds int64, nanos int32, contents string) *pb.ConsensusTopicResponse {
	return &pb.ConsensusTopicResponse{
		ConsensusTimestamp: &pb.Timestamp{Seconds: seconds, Nanos: nanos},
		Message:            []byte(contents),
		SequenceNumber:     seq,
	}
}

func TestSubscribe_DeliversMessagesInOrder(t *testing.T) {
	fake := &fakeConsensusClient{
		responses: []*pb.ConsensusTopicResponse{
			response(6, 1700000600, 0, `{"type":"ACTION"}`),
			response(7, 1700000601, 500, `{"type":"COMMS"}`),
		},
	}
	sub := NewSubscriberFromClient(fake)

	var got []TopicMessage
	delivered := make(chan struct{}, 2)
	errCh := make(chan error, 1)

	subscription, err := sub.Subscribe(context.Background(), "0.0.1001", "",
		func(msg TopicMessage) {
			got = append(got, msg)
			delivered <- struct{}{}
		},
		func(err error) { errCh <- err },
	)
	require.NoError(t, err)
	defer subscription.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-delivered:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for message delivery")
		}
	}

	require.Len(t, got, 2)
	assert.Equal(t, "0.0.1001", got[0].TopicID)
	assert.Equal(t, int64(6), got[0].SequenceNumber)
	assert.Equal(t, "1700000600.000000000", got[0].ConsensusTimestamp)
	assert.Equal(t, "1700000601.000000500", got[1].ConsensusTimestamp)
	assert.Equal(t, []byte(`{"type":"ACTION"}`), got[0].Contents)
}

func TestSubscribe_AddsNanosecondToStart(t *testing.T) {
	fake := &fakeConsensusClient{}
	sub := NewSubscriberFromClient(fake)

	subscription, err := sub.Subscribe(context.Background(), "0.0.1001", "1700000500.999999999",
		func(TopicMessage) {}, func(error) {})
	require.NoError(t, err)
	defer subscription.Stop()

	q := fake.query()
	require.NotNil(t, q)
	require.NotNil(t, q.ConsensusStartTime)
	// Carry into the seconds field at the nanosecond boundary
	assert.Equal(t, int64(1700000501), q.ConsensusStartTime.Seconds)
	assert.Equal(t, int32(0), q.ConsensusStartTime.Nanos)
}

func TestSubscribe_EmptyStartOmitsStartTime(t *testing.T) {
	fake := &fakeConsensusClient{}
	sub := NewSubscriberFromClient(fake)

	subscription, err := sub.Subscribe(context.Background(), "0.0.1001", "",
		func(TopicMessage) {}, func(error) {})
	require.NoError(t, err)
	defer subscription.Stop()

	q := fake.query()
	require.NotNil(t, q)
	assert.Nil(t, q.ConsensusStartTime)
}

func TestSubscribe_InvalidStartTimestamp(t *testing.T) {
	sub := NewSubscriberFromClient(&fakeConsensusClient{})

	_, err := sub.Subscribe(context.Background(), "0.0.1001", "not-a-timestamp",
		func(TopicMessage) {}, func(error) {})
	assert.Error(t, err)
}

func TestSubscribe_TerminalErrorSurfacesOnce(t *testing.T) {
	fake := &fakeConsensusClient{
		responses: []*pb.ConsensusTopicResponse{response(1, 1, 0, "a")},
		finalErr:  io.EOF,
	}
	sub := NewSubscriberFromClient(fake)

	errCh := make(chan error, 4)
	subscription, err := sub.Subscribe(context.Background(), "0.0.1001", "",
		func(TopicMessage) {}, func(err error) { errCh <- err })
	require.NoError(t, err)
	defer subscription.Stop()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, io.EOF))
	case <-time.After(2 * time.Second):
		t.Fatal("expected terminal error")
	}

	select {
	case err := <-errCh:
		t.Fatalf("error handler invoked more than once: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscription_StopIsIdempotentAndSilencesCallbacks(t *testing.T) {
	fake := &fakeConsensusClient{}
	sub := NewSubscriberFromClient(fake)

	errCh := make(chan error, 1)
	subscription, err := sub.Subscribe(context.Background(), "0.0.1001", "",
		func(TopicMessage) {}, func(err error) { errCh <- err })
	require.NoError(t, err)

	subscription.Stop()
	subscription.Stop()

	select {
	case err := <-errCh:
		t.Fatalf("onError invoked after Stop: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		seconds int64
		nanos   int32
		wantErr bool
	}{
		{"valid", "1700000000.000000001", 1700000000, 1, false},
		{"zero nanos", "42.000000000", 42, 0, false},
		{"missing dot", "1700000000", 0, 0, true},
		{"short nano field", "1700000000.123", 0, 0, true},
		{"non-numeric", "abc.000000000", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, nanos, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.seconds, seconds)
			assert.Equal(t, tt.nanos, nanos)
		})
	}
}

func TestFormatTimestamp_ZeroPadsNanos(t *testing.T) {
	assert.Equal(t, "1700000000.000000500", FormatTimestamp(1700000000, 500))
	assert.Equal(t, "0.000000000", FormatTimestamp(0, 0))
}
