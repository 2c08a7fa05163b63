// Package ingest runs the per-topic supervisors that keep the materialized
// state caught up: backfill over REST first, then the live push stream,
// with exponential backoff between attempts after any failure.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agentmesh/hcs-indexer/pkg/projection"
	"github.com/agentmesh/hcs-indexer/pkg/stream"
)

// maxBackoff caps the reconnect delay.
const maxBackoff = 60 * time.Second

// errStopped marks a backfill interrupted by shutdown.
var errStopped = errors.New("supervisor stopping")

// Supervisor drives ingestion for a single topic. Exactly one supervisor
// runs per topic, which keeps cursor advancement free of write races.
// With a nil StreamSource the supervisor runs in REST polling mode,
// repeating the backfill every pollInterval instead of streaming.
type Supervisor struct {
	topicID      string
	rest         Backfiller
	streams      StreamSource
	sink         Sink
	pageLimit    int
	pageDelay    time.Duration
	pollInterval time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	state         TopicState
	attempts      int
	lastApplied   string
	lastAppliedAt time.Time
	lastError     string
}

// NewSupervisor creates a supervisor for one topic.
func NewSupervisor(topicID string, rest Backfiller, streams StreamSource, sink Sink, pageLimit int, pageDelay, pollInterval time.Duration) *Supervisor {
	return &Supervisor{
		topicID:      topicID,
		rest:         rest,
		streams:      streams,
		sink:         sink,
		pageLimit:    pageLimit,
		pageDelay:    pageDelay,
		pollInterval: pollInterval,
		stopCh:       make(chan struct{}),
		state:        StateIdle,
	}
}

// Start begins the supervision loop in a goroutine.
func (s *Supervisor) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the supervisor to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Status returns a snapshot of the supervisor's current state.
func (s *Supervisor) Status() TopicStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := TopicStatus{
		TopicID:           s.topicID,
		State:             s.state,
		ReconnectAttempts: s.attempts,
		LastApplied:       s.lastApplied,
		LastError:         s.lastError,
	}
	if !s.lastAppliedAt.IsZero() {
		at := s.lastAppliedAt
		status.LastAppliedAt = &at
	}
	return status
}

// run is the supervision loop. Every pass backfills the gap since the
// cursor and then holds a live subscription; any failure in either phase
// sends the loop through a backoff and back to backfilling, so the stream
// never starts with a hole behind it.
func (s *Supervisor) run(ctx context.Context) {
	defer s.wg.Done()
	defer s.setState(StateIdle)

	log := slog.With("topic_id", s.topicID)
	log.Info("Topic supervisor started")

	for {
		if s.stopping(ctx) {
			log.Info("Topic supervisor shutting down")
			return
		}

		cursor, err := s.backfill(ctx)
		if errors.Is(err, errStopped) || s.stopping(ctx) {
			log.Info("Topic supervisor shutting down")
			return
		}
		if err != nil {
			s.fail(log, "Backfill failed", err)
			s.sleepBackoff(ctx, log)
			continue
		}
		s.resetAttempts()

		if s.streams == nil {
			// REST polling mode: no live stream configured, re-poll the
			// mirror on the poll interval instead.
			if !s.sleep(ctx, s.pollInterval) {
				log.Info("Topic supervisor shutting down")
				return
			}
			continue
		}
		log.Info("Backfill complete, switching to live stream", "cursor", cursor)

		err = s.streamFrom(ctx, cursor)
		if s.stopping(ctx) {
			log.Info("Topic supervisor shutting down")
			return
		}
		s.fail(log, "Live stream terminated", err)
		s.sleepBackoff(ctx, log)
	}
}

// backfill pages the REST mirror from the stored cursor and applies every
// message. Returns the consensus timestamp to resume streaming from.
func (s *Supervisor) backfill(ctx context.Context) (string, error) {
	s.setState(StateBackfilling)

	cursor, err := s.sink.LastTimestamp(ctx, s.topicID)
	if err != nil {
		return "", err
	}

	msgs, next, err := s.rest.FetchMessages(ctx, s.topicID, cursor, s.pageLimit)
	for {
		if err != nil {
			return "", err
		}

		for _, m := range msgs {
			if s.stopping(ctx) {
				return cursor, errStopped
			}
			rec := projection.FromBase64(s.topicID, m.ConsensusTimestamp, m.SequenceNumber, m.PayerAccountID, m.Message)
			if err := s.sink.Apply(ctx, rec); err != nil {
				return "", fmt.Errorf("apply backfill message %s/%d: %w", s.topicID, m.SequenceNumber, err)
			}
			cursor = m.ConsensusTimestamp
			s.noteApplied(cursor)
		}

		if next == "" {
			return cursor, nil
		}
		if !s.sleep(ctx, s.pageDelay) {
			return cursor, errStopped
		}
		msgs, next, err = s.rest.FetchNext(ctx, next)
	}
}

// streamFrom holds a live subscription starting just after cursor. Blocks
// until the subscription fails or the supervisor stops; returns nil only
// on stop.
func (s *Supervisor) streamFrom(ctx context.Context, cursor string) error {
	errCh := make(chan error, 1)
	var failed atomic.Bool
	report := func(err error) {
		failed.Store(true)
		select {
		case errCh <- err:
		default:
		}
	}

	sub, err := s.streams.Subscribe(ctx, s.topicID, cursor,
		func(msg stream.TopicMessage) {
			// Once a delivery fails, later deliveries must not be applied:
			// they would advance the cursor past the missed sequence number
			// and the re-backfill (which resumes after the cursor) would
			// never revisit it.
			if failed.Load() {
				return
			}
			rec := projection.FromBytes(s.topicID, msg.ConsensusTimestamp, msg.SequenceNumber, msg.Contents)
			if err := s.sink.Apply(ctx, rec); err != nil {
				report(fmt.Errorf("apply streamed message %s/%d: %w", s.topicID, msg.SequenceNumber, err))
				return
			}
			s.noteApplied(msg.ConsensusTimestamp)
		},
		report,
	)
	if err != nil {
		return err
	}
	s.setState(StateStreaming)

	select {
	case <-s.stopCh:
		sub.Stop()
		return nil
	case <-ctx.Done():
		sub.Stop()
		return ctx.Err()
	case err := <-errCh:
		sub.Stop()
		return err
	}
}

// sleepBackoff waits out the exponential reconnect delay:
// min(60s, 1s * 2^(attempts-1)).
func (s *Supervisor) sleepBackoff(ctx context.Context, log *slog.Logger) {
	s.mu.Lock()
	s.attempts++
	s.state = StateReconnecting
	attempts := s.attempts
	s.mu.Unlock()

	delay := backoffDelay(attempts)
	log.Warn("Scheduling reconnect", "attempt", attempts, "delay", delay)
	s.sleep(ctx, delay)
}

// backoffDelay computes the reconnect delay for the given attempt count.
func backoffDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 7 {
		return maxBackoff
	}
	d := time.Second << (attempts - 1)
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// sleep waits for d or until stop is signalled. Returns false when
// interrupted.
func (s *Supervisor) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return !s.stopping(ctx)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-s.stopCh:
		return false
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Supervisor) stopping(ctx context.Context) bool {
	select {
	case <-s.stopCh:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (s *Supervisor) setState(state TopicState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Supervisor) resetAttempts() {
	s.mu.Lock()
	s.attempts = 0
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Supervisor) noteApplied(consensusTimestamp string) {
	s.mu.Lock()
	s.lastApplied = consensusTimestamp
	s.lastAppliedAt = time.Now()
	s.mu.Unlock()
}

func (s *Supervisor) fail(log *slog.Logger, msg string, err error) {
	if err == nil {
		err = errors.New("stream closed")
	}
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	log.Error(msg, "error", err)
}
