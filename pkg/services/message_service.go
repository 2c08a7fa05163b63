package services

import (
	"context"
	"fmt"

	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// MessageService serves the raw substrate records per topic.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// ListTopicMessages lists the raw messages of a topic in sequence order
func (s *MessageService) ListTopicMessages(ctx context.Context, topicID string, filters models.MessageFilters) (*models.MessageListResponse, error) {
	if topicID == "" {
		return nil, NewValidationError("topic_id", "required")
	}

	query := s.client.HCSMessage.Query().
		Where(hcsmessage.TopicIDEQ(topicID))
	if filters.MessageType != "" {
		query = query.Where(hcsmessage.MessageTypeEQ(filters.MessageType))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count topic messages: %w", err)
	}

	limit, offset := models.NormalizePage(filters.Limit, filters.Offset)
	messages, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(hcsmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topic messages: %w", err)
	}

	return &models.MessageListResponse{
		Items:  messages,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
