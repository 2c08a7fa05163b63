package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/database"
	"github.com/agentmesh/hcs-indexer/pkg/version"
)

// Health handles GET /health. The indexer reports unhealthy only when the
// database is unreachable; reconnecting topics are visible per topic but
// do not fail the probe, since backoff is part of normal operation.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"topics":   s.topics.Status(),
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"topics":   s.topics.Status(),
	})
}
