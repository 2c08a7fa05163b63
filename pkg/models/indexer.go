// Package models defines request, filter and response types shared by the
// services and the HTTP API.
package models

import (
	"github.com/agentmesh/hcs-indexer/ent"
)

// Pagination defaults and bounds for list endpoints.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// AddTopicRequest asks the indexer to start following a topic.
type AddTopicRequest struct {
	TopicID string `json:"topic_id"`
}

// AgentFilters contains filtering options for listing agents
type AgentFilters struct {
	Platform string `json:"platform,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// AgentListResponse contains a paginated agent list
type AgentListResponse struct {
	Items  []*ent.Agent `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// AgentEventFilters contains filtering options for an agent's event log
type AgentEventFilters struct {
	EventType string `json:"event_type,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// AgentEventListResponse contains a paginated agent event list
type AgentEventListResponse struct {
	Items  []*ent.AgentEvent `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// MessageFilters contains filtering options for listing raw topic messages
type MessageFilters struct {
	MessageType string `json:"message_type,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

// MessageListResponse contains a paginated raw message list
type MessageListResponse struct {
	Items  []*ent.HCSMessage `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// RentalFilters contains filtering options for listing rentals
type RentalFilters struct {
	AgentID string `json:"agent_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// RentalListResponse contains a paginated rental list
type RentalListResponse struct {
	Items  []*ent.Rental `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// CommsFilters contains filtering options for listing agent messages
type CommsFilters struct {
	TopicID   string `json:"topic_id,omitempty"`
	FromAgent string `json:"from_agent,omitempty"`
	ToAgent   string `json:"to_agent,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// CommsListResponse contains a paginated agent message list
type CommsListResponse struct {
	Items  []*ent.AgentComm `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// NormalizePage clamps limit/offset to the supported range.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
