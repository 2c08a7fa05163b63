package services

import (
	"context"
	"fmt"

	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/agent"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// AgentService serves the materialized agent registry and event log.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// GetAgent retrieves a single agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	ag, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return ag, nil
}

// ListAgents lists agents with filtering and pagination, most recently
// active first
func (s *AgentService) ListAgents(ctx context.Context, filters models.AgentFilters) (*models.AgentListResponse, error) {
	query := s.client.Agent.Query()
	if filters.Platform != "" {
		query = query.Where(agent.PlatformEQ(filters.Platform))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}

	limit, offset := models.NormalizePage(filters.Limit, filters.Offset)
	agents, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(agent.FieldLastSeenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &models.AgentListResponse{
		Items:  agents,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// ListAgentEvents lists the append-only event log for one agent in
// consensus order
func (s *AgentService) ListAgentEvents(ctx context.Context, agentID string, filters models.AgentEventFilters) (*models.AgentEventListResponse, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	query := s.client.AgentEvent.Query().
		Where(agentevent.AgentIDEQ(agentID))
	if filters.EventType != "" {
		switch filters.EventType {
		case string(agentevent.EventTypeACTION), string(agentevent.EventTypeTRANSACTION):
			query = query.Where(agentevent.EventTypeEQ(agentevent.EventType(filters.EventType)))
		default:
			return nil, NewValidationError("event_type", "must be ACTION or TRANSACTION")
		}
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agent events: %w", err)
	}

	limit, offset := models.NormalizePage(filters.Limit, filters.Offset)
	events, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(agentevent.FieldConsensusTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent events: %w", err)
	}

	return &models.AgentEventListResponse{
		Items:  events,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
