package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmesh/hcs-indexer/pkg/database"
	"github.com/agentmesh/hcs-indexer/pkg/ingest"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeTopics is a TopicController test double.
type fakeTopics struct {
	added  []string
	addErr error
	status map[string]ingest.TopicStatus
}

func (f *fakeTopics) AddTopic(topicID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, topicID)
	return nil
}

func (f *fakeTopics) Status() map[string]ingest.TopicStatus {
	if f.status == nil {
		return map[string]ingest.TopicStatus{}
	}
	return f.status
}

func newTestServer(t *testing.T) (*Server, *database.Client, *fakeTopics) {
	client := testdb.NewTestClient(t)
	topics := &fakeTopics{}
	return NewServer(client, topics), client, topics
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServer_AgentEndpoints(t *testing.T) {
	server, client, _ := newTestServer(t)
	router := server.Router()
	ctx := context.Background()

	_, err := client.Agent.Create().
		SetID("atlas").
		SetAgentName("Atlas").
		SetPlatform("hedera").
		SetFirstSeenAt(time.Now()).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	t.Run("list agents", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/agents", "")
		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Items []map[string]any `json:"items"`
			Total int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Atlas", res.Items[0]["agent_name"])
	})

	t.Run("get agent", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/agents/atlas", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown agent is 404", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/agents/nobody", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid event type filter is 400", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/agents/atlas/events?event_type=BOGUS", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("security headers present", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/agents", "")
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})
}

func TestServer_TopicMessages(t *testing.T) {
	server, client, _ := newTestServer(t)
	router := server.Router()
	ctx := context.Background()

	for seq := int64(1); seq <= 3; seq++ {
		_, err := client.HCSMessage.Create().
			SetTopicID("0.0.1").
			SetConsensusTimestamp(fmt.Sprintf("1700000000.%09d", seq)).
			SetSequenceNumber(seq).
			SetMessageBase64("e30=").
			Save(ctx)
		require.NoError(t, err)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/topics/0.0.1/messages?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
		Limit int              `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Limit)
	assert.Len(t, res.Items, 2)
}

func TestServer_AddTopic(t *testing.T) {
	server, _, topics := newTestServer(t)
	router := server.Router()

	t.Run("accepts new topic", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/topics", `{"topic_id":"0.0.42"}`)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, []string{"0.0.42"}, topics.added)
	})

	t.Run("missing topic_id is 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/topics", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/topics", `{"topic_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("re-adding an indexed topic is idempotent", func(t *testing.T) {
		topics.addErr = ingest.ErrTopicAlreadyIndexed
		w := doRequest(router, http.MethodPost, "/api/v1/topics", `{"topic_id":"0.0.42"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already_indexing")
	})
}

func TestServer_Health(t *testing.T) {
	server, _, topics := newTestServer(t)
	topics.status = map[string]ingest.TopicStatus{
		"0.0.1": {TopicID: "0.0.1", State: ingest.StateStreaming},
	}
	router := server.Router()

	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Status string                        `json:"status"`
		Topics map[string]ingest.TopicStatus `json:"topics"`
		DB     map[string]any                `json:"database"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, ingest.StateStreaming, res.Topics["0.0.1"].State)
}
