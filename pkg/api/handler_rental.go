package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// ListRentals handles GET /api/v1/rentals
func (s *Server) ListRentals(c *gin.Context) {
	limit, offset := parsePage(c)
	res, err := s.rentals.ListRentals(c.Request.Context(), models.RentalFilters{
		AgentID: c.Query("agent_id"),
		Status:  c.Query("status"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetRental handles GET /api/v1/rentals/:id
func (s *Server) GetRental(c *gin.Context) {
	r, err := s.rentals.GetRental(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
