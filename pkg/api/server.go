// Package api exposes the read API over the materialized state plus the
// topic-management and health endpoints.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agentmesh/hcs-indexer/pkg/database"
	"github.com/agentmesh/hcs-indexer/pkg/ingest"
	"github.com/agentmesh/hcs-indexer/pkg/services"
)

// TopicController is the subset of the ingestion manager used by the API.
type TopicController interface {
	AddTopic(topicID string) error
	Status() map[string]ingest.TopicStatus
}

// Server wires the HTTP handlers to the services and the ingestion manager.
type Server struct {
	db       *database.Client
	topics   TopicController
	agents   *services.AgentService
	messages *services.MessageService
	rentals  *services.RentalService
	comms    *services.CommsService
}

// NewServer creates a new API server over the shared database client.
func NewServer(db *database.Client, topics TopicController) *Server {
	return &Server{
		db:       db,
		topics:   topics,
		agents:   services.NewAgentService(db.Client),
		messages: services.NewMessageService(db.Client),
		rentals:  services.NewRentalService(db.Client),
		comms:    services.NewCommsService(db.Client),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), securityHeaders())

	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/agents", s.ListAgents)
		v1.GET("/agents/:id", s.GetAgent)
		v1.GET("/agents/:id/events", s.ListAgentEvents)
		v1.GET("/topics/:id/messages", s.ListTopicMessages)
		v1.POST("/topics", s.AddTopic)
		v1.GET("/rentals", s.ListRentals)
		v1.GET("/rentals/:id", s.GetRental)
		v1.GET("/comms", s.ListComms)
	}

	return router
}

// requestID attaches a unique ID to every request for log correlation,
// honoring an inbound X-Request-ID when one is supplied.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
