package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/agentmesh/hcs-indexer/pkg/config"
)

// Manager owns the topic supervisors. Topics come from configuration at
// startup and from the API afterwards; each gets exactly one supervisor.
type Manager struct {
	cfg     *config.IndexerConfig
	rest    Backfiller
	streams StreamSource
	sink    Sink

	mu          sync.Mutex
	supervisors map[string]*Supervisor
	pending     []string
	runCtx      context.Context
	cancel      context.CancelFunc
	started     bool
}

// NewManager creates an ingestion manager over the given sources and sink.
func NewManager(cfg *config.IndexerConfig, rest Backfiller, streams StreamSource, sink Sink) *Manager {
	return &Manager{
		cfg:         cfg,
		rest:        rest,
		streams:     streams,
		sink:        sink,
		supervisors: make(map[string]*Supervisor),
	}
}

// Start spawns supervisors for the configured topics plus any added before
// startup. It is safe to call multiple times; subsequent calls are no-ops.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		slog.Warn("Ingestion manager already started, ignoring duplicate Start call")
		return nil
	}
	m.started = true
	m.runCtx, m.cancel = context.WithCancel(ctx)

	topics := append(append([]string{}, m.cfg.TopicIDs...), m.pending...)
	m.pending = nil

	slog.Info("Starting ingestion manager", "topic_count", len(topics))
	for _, topicID := range topics {
		m.startSupervisorLocked(topicID)
	}
	return nil
}

// AddTopic begins indexing a new topic at runtime. Before Start, the topic
// is queued. A topic that already has a supervisor (or is queued) yields
// ErrTopicAlreadyIndexed.
func (m *Manager) AddTopic(topicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.supervisors[topicID]; exists {
		return ErrTopicAlreadyIndexed
	}

	if !m.started {
		for _, id := range m.pending {
			if id == topicID {
				return ErrTopicAlreadyIndexed
			}
		}
		m.pending = append(m.pending, topicID)
		return nil
	}

	m.startSupervisorLocked(topicID)
	return nil
}

// startSupervisorLocked spawns a supervisor. Caller holds m.mu; topics
// already present were rejected by the caller.
func (m *Manager) startSupervisorLocked(topicID string) {
	if _, exists := m.supervisors[topicID]; exists {
		return
	}
	sup := NewSupervisor(topicID, m.rest, m.streams, m.sink, m.cfg.PageLimit, m.cfg.PageDelay, m.cfg.PollInterval)
	m.supervisors[topicID] = sup
	sup.Start(m.runCtx)
	slog.Info("Topic supervisor spawned", "topic_id", topicID)
}

// Stop shuts down all supervisors, bounded by the configured shutdown
// timeout. Supervisors finish the message in flight before exiting: the
// stop signal is delivered through each supervisor's stop channel first,
// and the shared context is canceled only after the graceful wait, so an
// apply mid-transaction keeps a live context until it commits.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	supervisors := make([]*Supervisor, 0, len(m.supervisors))
	for _, sup := range m.supervisors {
		supervisors = append(supervisors, sup)
	}
	m.mu.Unlock()

	slog.Info("Stopping ingestion manager", "topic_count", len(supervisors))

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for _, sup := range supervisors {
			wg.Add(1)
			go func(s *Supervisor) {
				defer wg.Done()
				s.Stop()
			}(sup)
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Ingestion manager stopped gracefully")
	case <-time.After(m.cfg.ShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded, canceling remaining work",
			"timeout", m.cfg.ShutdownTimeout)
	}
	cancel()
}

// Status returns a snapshot of every supervised topic.
func (m *Manager) Status() map[string]TopicStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]TopicStatus, len(m.supervisors)+len(m.pending))
	for topicID, sup := range m.supervisors {
		out[topicID] = sup.Status()
	}
	for _, topicID := range m.pending {
		out[topicID] = TopicStatus{TopicID: topicID, State: StateIdle}
	}
	return out
}
