// Package stream provides the live push-stream subscription to the mirror
// node consensus service. The subscriber delivers every message with
// consensus_timestamp strictly greater than the start instant, in order,
// until stopped. It never retries on its own — reconnection policy belongs
// to the topic supervisor.
package stream

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	pb "github.com/agentmesh/hcs-indexer/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// TopicMessage is a single frame delivered by the push stream.
type TopicMessage struct {
	TopicID            string
	ConsensusTimestamp string
	SequenceNumber     int64
	Contents           []byte
}

// MessageHandler receives each message in consensus order. Handlers run
// synchronously on the receive loop, which naturally propagates
// backpressure to the stream.
type MessageHandler func(msg TopicMessage)

// ErrorHandler is invoked exactly once on terminal failure of a
// subscription. It is never invoked after Stop returns.
type ErrorHandler func(err error)

// Subscriber owns the gRPC connection to the mirror node and creates
// per-topic subscriptions. Safe for concurrent use across topics.
type Subscriber struct {
	conn   *grpc.ClientConn
	client pb.ConsensusServiceClient
}

// NewSubscriber creates a subscriber for the given mirror gRPC endpoint.
// grpc.NewClient dials lazily; the connection is established on the first
// subscription.
func NewSubscriber(addr string) (*Subscriber, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create mirror gRPC client: %w", err)
	}
	return &Subscriber{
		conn:   conn,
		client: pb.NewConsensusServiceClient(conn),
	}, nil
}

// NewSubscriberFromClient wraps an existing consensus service client
// (useful for testing).
func NewSubscriberFromClient(client pb.ConsensusServiceClient) *Subscriber {
	return &Subscriber{client: client}
}

// Close releases the underlying gRPC connection.
func (s *Subscriber) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Subscription is one live topic subscription. Stop is idempotent; after
// it returns, no further callbacks occur.
type Subscription struct {
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopped  atomic.Bool
	done     chan struct{}
}

// Stop cancels the subscription and waits for the receive loop to exit.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		s.cancel()
		<-s.done
	})
}

// Subscribe opens a long-lived subscription for a topic. When start is
// non-empty, one nanosecond is added to it before subscribing: provider
// semantics for the exact boundary instant are inconsistent, and the
// caller's start is always the timestamp of a message already processed.
//
// Every transport failure, unexpected end-of-stream included, is terminal
// and surfaces through onError.
func (s *Subscriber) Subscribe(ctx context.Context, topicID, start string, onMessage MessageHandler, onError ErrorHandler) (*Subscription, error) {
	query := &pb.ConsensusTopicQuery{TopicId: topicID}
	if start != "" {
		seconds, nanos, err := ParseTimestamp(start)
		if err != nil {
			return nil, fmt.Errorf("invalid start timestamp: %w", err)
		}
		seconds, nanos = addNanosecond(seconds, nanos)
		query.ConsensusStartTime = &pb.Timestamp{Seconds: seconds, Nanos: nanos}
	}

	subCtx, cancel := context.WithCancel(ctx)
	grpcStream, err := s.client.SubscribeTopic(subCtx, query)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe to topic %s: %w", topicID, err)
	}

	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go s.receiveLoop(sub, grpcStream, topicID, onMessage, onError)

	return sub, nil
}

func (s *Subscriber) receiveLoop(sub *Subscription, grpcStream pb.ConsensusService_SubscribeTopicClient, topicID string, onMessage MessageHandler, onError ErrorHandler) {
	defer close(sub.done)

	log := slog.With("topic_id", topicID)
	log.Debug("Subscription receive loop started")

	for {
		resp, err := grpcStream.Recv()
		if err != nil {
			// Recv errors after Stop are expected cancellation noise.
			if sub.stopped.Load() {
				log.Debug("Subscription stopped")
				return
			}
			onError(fmt.Errorf("topic %s stream terminated: %w", topicID, err))
			return
		}
		if sub.stopped.Load() {
			return
		}

		ts := resp.GetConsensusTimestamp()
		onMessage(TopicMessage{
			TopicID:            topicID,
			ConsensusTimestamp: FormatTimestamp(ts.GetSeconds(), ts.GetNanos()),
			SequenceNumber:     int64(resp.GetSequenceNumber()),
			Contents:           resp.GetMessage(),
		})
	}
}
