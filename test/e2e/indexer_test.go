// Package e2e exercises the full ingestion path: REST backfill through the
// real mirror client, handoff to the live stream, projection into
// PostgreSQL, and the read API on top.
package e2e

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmesh/hcs-indexer/pkg/api"
	"github.com/agentmesh/hcs-indexer/pkg/config"
	"github.com/agentmesh/hcs-indexer/pkg/ingest"
	"github.com/agentmesh/hcs-indexer/pkg/mirror"
	"github.com/agentmesh/hcs-indexer/pkg/projection"
	"github.com/agentmesh/hcs-indexer/pkg/stream"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const e2eTopic = "0.0.777"

type wireMessage struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	TopicID            string `json:"topic_id"`
	Message            string `json:"message"`
	PayerAccountID     string `json:"payer_account_id"`
	SequenceNumber     int64  `json:"sequence_number"`
}

func encodePayload(doc string) string {
	return base64.StdEncoding.EncodeToString([]byte(doc))
}

// newMirrorServer serves a two-page backfill for e2eTopic and empty pages
// for any later cursor.
func newMirrorServer(t *testing.T) *httptest.Server {
	t.Helper()

	pageOne := []wireMessage{
		{
			ConsensusTimestamp: "1700000000.000000001",
			TopicID:            e2eTopic,
			Message:            encodePayload(`{"type":"AGENT_INIT","agent_id":"atlas","agent_name":"Atlas","platform":"hedera","version":"1.0.0","timestamp":1700000000}`),
			PayerAccountID:     "0.0.50",
			SequenceNumber:     1,
		},
		{
			ConsensusTimestamp: "1700000000.000000002",
			TopicID:            e2eTopic,
			Message:            encodePayload(`{"type":"ACTION","agent_id":"atlas","session_key":"s1","action":{"tool":"search"},"timestamp":1700000001}`),
			PayerAccountID:     "0.0.50",
			SequenceNumber:     2,
		},
	}
	pageTwo := []wireMessage{
		{
			ConsensusTimestamp: "1700000000.000000003",
			TopicID:            e2eTopic,
			Message:            encodePayload(`{"from":"atlas","text":"online","timestamp":"2023-11-14T22:13:20Z"}`),
			PayerAccountID:     "0.0.50",
			SequenceNumber:     3,
		},
	}

	path := "/api/v1/topics/" + e2eTopic + "/messages"
	writePage := func(w http.ResponseWriter, msgs []wireMessage, next string) {
		var links struct {
			Next *string `json:"next"`
		}
		if next != "" {
			links.Next = &next
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": msgs,
			"links":    links,
		})
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		switch {
		case r.URL.Query().Get("page") == "2":
			writePage(w, pageTwo, "")
		case r.URL.Query().Get("timestamp") != "":
			// Re-backfill after the cursor: nothing new.
			writePage(w, nil, "")
		default:
			writePage(w, pageOne, path+"?page=2")
		}
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// scriptedStream hands out subscriptions whose message/error callbacks the
// test drives directly.
type scriptedStream struct {
	mu        sync.Mutex
	onMessage stream.MessageHandler
	starts    []string
}

type scriptedSubscription struct{}

func (scriptedSubscription) Stop() {}

func (s *scriptedStream) Subscribe(_ context.Context, _, start string, onMessage stream.MessageHandler, _ stream.ErrorHandler) (ingest.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMessage = onMessage
	s.starts = append(s.starts, start)
	return scriptedSubscription{}, nil
}

func (s *scriptedStream) push(msg stream.TopicMessage) {
	s.mu.Lock()
	handler := s.onMessage
	s.mu.Unlock()
	handler(msg)
}

func (s *scriptedStream) subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onMessage != nil
}

func TestIndexer_EndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	mirrorServer := newMirrorServer(t)

	cfg := &config.IndexerConfig{
		MirrorBaseURL:   mirrorServer.URL,
		TopicIDs:        []string{e2eTopic},
		PageLimit:       100,
		PageDelay:       0,
		ShutdownTimeout: 5 * time.Second,
	}

	streams := &scriptedStream{}
	writer := projection.NewWriter(client.Client)
	manager := ingest.NewManager(cfg, mirror.NewClient(mirrorServer.URL), streams, writer)

	require.NoError(t, manager.Start(context.Background()))
	defer manager.Stop()

	// Backfill drains both pages and hands off to the stream from the last
	// backfilled timestamp.
	require.Eventually(t, streams.subscribed, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "1700000000.000000003", streams.starts[0])

	// Live message arrives over the push stream.
	streams.push(stream.TopicMessage{
		TopicID:            e2eTopic,
		ConsensusTimestamp: "1700000000.000000004",
		SequenceNumber:     4,
		Contents:           []byte(`{"type":"RENTAL_INITIATED","agent_id":"atlas","rental_id":"r1","renter":"0.0.500","escrow_account":"0.0.501","stake_usd":10.00,"buffer_usd":5.00,"timestamp":1700000002}`),
	})

	require.Eventually(t, func() bool {
		status := manager.Status()[e2eTopic]
		return status.LastApplied == "1700000000.000000004"
	}, 5*time.Second, 10*time.Millisecond)

	// Read everything back through the API.
	router := api.NewServer(client, manager).Router()

	get := func(path string) map[string]any {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, "GET %s: %s", path, w.Body.String())
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	agents := get("/api/v1/agents")
	assert.EqualValues(t, 1, agents["total"])

	agent := get("/api/v1/agents/atlas")
	assert.Equal(t, "Atlas", agent["agent_name"])

	events := get("/api/v1/agents/atlas/events")
	assert.EqualValues(t, 1, events["total"])

	messages := get(fmt.Sprintf("/api/v1/topics/%s/messages", e2eTopic))
	assert.EqualValues(t, 4, messages["total"])

	rentals := get("/api/v1/rentals")
	assert.EqualValues(t, 1, rentals["total"])

	comms := get("/api/v1/comms?from=atlas")
	assert.EqualValues(t, 1, comms["total"])

	health := get("/health")
	assert.Equal(t, "healthy", health["status"])
}
