package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMessages_SinglePage(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]any{
				{
					"consensus_timestamp": "1700000000.000000000",
					"topic_id":            "0.0.1001",
					"message":             "aGVsbG8=",
					"payer_account_id":    "0.0.42",
					"sequence_number":     1,
				},
				{
					"consensus_timestamp": "1700000001.000000000",
					"topic_id":            "0.0.1001",
					"message":             "d29ybGQ=",
					"sequence_number":     2,
				},
			},
			"links": map[string]any{"next": nil},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	msgs, next, err := client.FetchMessages(context.Background(), "0.0.1001", "", 100)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/topics/0.0.1001/messages", gotPath)
	assert.Equal(t, "limit=100", gotQuery)
	assert.Empty(t, next)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(1), msgs[0].SequenceNumber)
	assert.Equal(t, "aGVsbG8=", msgs[0].Message)
	assert.Equal(t, "0.0.42", msgs[0].PayerAccountID)
	assert.Equal(t, int64(2), msgs[1].SequenceNumber)
}

func TestFetchMessages_CursorQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gt:1700000500.000000000", r.URL.Query().Get("timestamp"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(map[string]any{"messages": []any{}, "links": map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	msgs, next, err := client.FetchMessages(context.Background(), "0.0.1001", "1700000500.000000000", 25)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, next)
}

func TestFetchNext_FollowsContinuation(t *testing.T) {
	var mux http.ServeMux
	mux.HandleFunc("/api/v1/topics/0.0.1001/messages", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("timestamp") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"messages": []map[string]any{{"consensus_timestamp": "1.000000000", "sequence_number": 1, "message": "YQ=="}},
				"links":    map[string]any{"next": "/api/v1/topics/0.0.1001/messages?limit=1&timestamp=gt:1.000000000"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]any{{"consensus_timestamp": "2.000000000", "sequence_number": 2, "message": "Yg=="}},
			"links":    map[string]any{},
		})
	})
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	msgs, next, err := client.FetchMessages(ctx, "0.0.1001", "", 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotEmpty(t, next)

	msgs2, next2, err := client.FetchNext(ctx, next)
	require.NoError(t, err)
	require.Len(t, msgs2, 1)
	assert.Equal(t, int64(2), msgs2[0].SequenceNumber)
	assert.Empty(t, next2)
}

func TestFetchMessages_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, _, err := client.FetchMessages(context.Background(), "0.0.9999", "", 100)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchMessages_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL)
	_, _, err := client.FetchMessages(context.Background(), "0.0.1001", "", 100)
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestFetchNext_EmptyURL(t *testing.T) {
	client := NewClient("https://mirror.example.com")
	_, _, err := client.FetchNext(context.Background(), "")
	assert.Error(t, err)
}
