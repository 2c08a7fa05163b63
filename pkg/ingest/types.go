package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/agentmesh/hcs-indexer/pkg/mirror"
	"github.com/agentmesh/hcs-indexer/pkg/projection"
	"github.com/agentmesh/hcs-indexer/pkg/stream"
)

// TopicState represents the current phase of a topic supervisor.
type TopicState string

// Supervisor phase constants.
const (
	StateIdle         TopicState = "idle"
	StateBackfilling  TopicState = "backfilling"
	StateStreaming    TopicState = "streaming"
	StateReconnecting TopicState = "reconnecting"
)

// TopicStatus is a point-in-time snapshot of one supervised topic.
// LastAppliedAt is wall-clock time of the last applied message, for
// cursor-staleness checks.
type TopicStatus struct {
	TopicID           string     `json:"topic_id"`
	State             TopicState `json:"state"`
	ReconnectAttempts int        `json:"reconnect_attempts"`
	LastApplied       string     `json:"last_applied,omitempty"`
	LastAppliedAt     *time.Time `json:"last_applied_at,omitempty"`
	LastError         string     `json:"last_error,omitempty"`
}

// ErrTopicAlreadyIndexed is returned by AddTopic for a topic that already
// has a supervisor.
var ErrTopicAlreadyIndexed = errors.New("topic is already being indexed")

// Backfiller pages historical messages from the REST mirror.
// Satisfied by *mirror.Client.
type Backfiller interface {
	FetchMessages(ctx context.Context, topicID, cursor string, limit int) ([]mirror.Message, string, error)
	FetchNext(ctx context.Context, next string) ([]mirror.Message, string, error)
}

// Subscription is a live topic subscription handle.
type Subscription interface {
	Stop()
}

// StreamSource opens live push-stream subscriptions.
type StreamSource interface {
	Subscribe(ctx context.Context, topicID, start string, onMessage stream.MessageHandler, onError stream.ErrorHandler) (Subscription, error)
}

// Sink materializes records and exposes the topic cursor.
// Satisfied by *projection.Writer.
type Sink interface {
	Apply(ctx context.Context, rec projection.Record) error
	LastTimestamp(ctx context.Context, topicID string) (string, error)
}

// grpcStreamSource adapts *stream.Subscriber to StreamSource.
type grpcStreamSource struct {
	sub *stream.Subscriber
}

// NewStreamSource wraps a gRPC subscriber as a StreamSource.
func NewStreamSource(sub *stream.Subscriber) StreamSource {
	return grpcStreamSource{sub: sub}
}

func (g grpcStreamSource) Subscribe(ctx context.Context, topicID, start string, onMessage stream.MessageHandler, onError stream.ErrorHandler) (Subscription, error) {
	return g.sub.Subscribe(ctx, topicID, start, onMessage, onError)
}
