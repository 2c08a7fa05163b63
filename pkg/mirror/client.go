// Package mirror provides the REST client for historical topic messages.
// The client is stateless and safe for concurrent use across topics.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requestTimeout bounds every mirror request.
const requestTimeout = 30 * time.Second

// Message is a single topic message as returned by the REST mirror.
type Message struct {
	ConsensusTimestamp string          `json:"consensus_timestamp"`
	TopicID            string          `json:"topic_id"`
	Message            string          `json:"message"` // base64-encoded payload
	PayerAccountID     string          `json:"payer_account_id"`
	SequenceNumber     int64           `json:"sequence_number"`
	RunningHash        string          `json:"running_hash"`
	RunningHashVersion int64           `json:"running_hash_version"`
	ChunkInfo          json.RawMessage `json:"chunk_info,omitempty"`
}

// messagesPage is the wire shape of a mirror messages response.
type messagesPage struct {
	Messages []Message `json:"messages"`
	Links    struct {
		Next *string `json:"next"`
	} `json:"links"`
}

// StatusError reports a non-2xx mirror response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mirror returned HTTP %d for %s", e.StatusCode, e.URL)
}

// Client fetches historical messages from a mirror node REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a mirror REST client for the given base URL,
// e.g. "https://testnet.mirrornode.hedera.com".
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchMessages fetches one page of messages for a topic, strictly after
// the cursor timestamp when one is given. Messages come back in ascending
// consensus order. The returned next URL is an opaque continuation; empty
// means the last page.
func (c *Client) FetchMessages(ctx context.Context, topicID, cursor string, limit int) ([]Message, string, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))
	if cursor != "" {
		q.Set("timestamp", "gt:"+cursor)
	}
	reqURL := fmt.Sprintf("%s/api/v1/topics/%s/messages?%s", c.baseURL, url.PathEscape(topicID), q.Encode())

	return c.fetchPage(ctx, reqURL)
}

// FetchNext follows a continuation URL returned by a previous page. The
// mirror hands back a path; it is resolved against the configured base URL
// and otherwise followed verbatim.
func (c *Client) FetchNext(ctx context.Context, next string) ([]Message, string, error) {
	if next == "" {
		return nil, "", fmt.Errorf("empty continuation URL")
	}
	if strings.HasPrefix(next, "/") {
		next = c.baseURL + next
	}
	return c.fetchPage(ctx, next)
}

func (c *Client) fetchPage(ctx context.Context, reqURL string) ([]Message, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch messages from %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	var page messagesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", fmt.Errorf("decode messages response: %w", err)
	}

	next := ""
	if page.Links.Next != nil {
		next = *page.Links.Next
	}
	return page.Messages, next, nil
}
