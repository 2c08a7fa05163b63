package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// ListComms handles GET /api/v1/comms
func (s *Server) ListComms(c *gin.Context) {
	limit, offset := parsePage(c)
	res, err := s.comms.ListComms(c.Request.Context(), models.CommsFilters{
		TopicID:   c.Query("topic_id"),
		FromAgent: c.Query("from"),
		ToAgent:   c.Query("to"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
