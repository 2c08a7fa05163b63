package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentmesh/hcs-indexer/pkg/services"
)

// respondError maps service-layer errors to HTTP error responses.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
