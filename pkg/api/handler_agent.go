package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// ListAgents handles GET /api/v1/agents
func (s *Server) ListAgents(c *gin.Context) {
	limit, offset := parsePage(c)
	res, err := s.agents.ListAgents(c.Request.Context(), models.AgentFilters{
		Platform: c.Query("platform"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAgent handles GET /api/v1/agents/:id
func (s *Server) GetAgent(c *gin.Context) {
	ag, err := s.agents.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ag)
}

// ListAgentEvents handles GET /api/v1/agents/:id/events
func (s *Server) ListAgentEvents(c *gin.Context) {
	limit, offset := parsePage(c)
	res, err := s.agents.ListAgentEvents(c.Request.Context(), c.Param("id"), models.AgentEventFilters{
		EventType: c.Query("event_type"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// parsePage reads limit/offset query parameters. Unparseable values fall
// back to the defaults applied by the service layer.
func parsePage(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
