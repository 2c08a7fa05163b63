package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// ListTopicMessages handles GET /api/v1/topics/:id/messages
func (s *Server) ListTopicMessages(c *gin.Context) {
	limit, offset := parsePage(c)
	res, err := s.messages.ListTopicMessages(c.Request.Context(), c.Param("id"), models.MessageFilters{
		MessageType: c.Query("message_type"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
