package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/ingest"
	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// AddTopic handles POST /api/v1/topics. Indexing of the new topic starts
// asynchronously; the response only acknowledges the supervisor spawn.
// Idempotent: re-registering an indexed topic succeeds without effect.
func (s *Server) AddTopic(c *gin.Context) {
	var req models.AddTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	topicID := strings.TrimSpace(req.TopicID)
	if topicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic_id is required"})
		return
	}

	if err := s.topics.AddTopic(topicID); err != nil {
		if errors.Is(err, ingest.ErrTopicAlreadyIndexed) {
			c.JSON(http.StatusOK, gin.H{"topic_id": topicID, "status": "already_indexing"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"topic_id": topicID, "status": "indexing"})
}
