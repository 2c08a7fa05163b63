package services

import (
	"context"
	"fmt"

	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// CommsService serves the inter-agent communication log.
type CommsService struct {
	client *ent.Client
}

// NewCommsService creates a new CommsService
func NewCommsService(client *ent.Client) *CommsService {
	return &CommsService{client: client}
}

// ListComms lists agent-to-agent messages with filtering and pagination,
// newest first by consensus order
func (s *CommsService) ListComms(ctx context.Context, filters models.CommsFilters) (*models.CommsListResponse, error) {
	query := s.client.AgentComm.Query()
	if filters.TopicID != "" {
		query = query.Where(agentcomm.TopicIDEQ(filters.TopicID))
	}
	if filters.FromAgent != "" {
		query = query.Where(agentcomm.FromAgentEQ(filters.FromAgent))
	}
	if filters.ToAgent != "" {
		query = query.Where(agentcomm.ToAgentEQ(filters.ToAgent))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agent messages: %w", err)
	}

	limit, offset := models.NormalizePage(filters.Limit, filters.Offset)
	comms, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(agentcomm.FieldConsensusTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent messages: %w", err)
	}

	return &models.CommsListResponse{
		Items:  comms,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
