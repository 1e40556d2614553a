package handler

import (
	"net/http"
	"strconv"

	"boardshelf/backend/internal/catalog"
	"boardshelf/backend/internal/hub"
	"boardshelf/backend/internal/sampler"

	"github.com/gin-gonic/gin"
)

// Handler serves the catalog over HTTP.
type Handler struct {
	catalog *catalog.Catalog
	hub     *hub.Hub

	jwtSecret         string
	ownerPasswordHash string
	randomPickCount   int
}

// Options carries the settings the handlers need from configuration.
type Options struct {
	JWTSecret         string
	OwnerPasswordHash string
	RandomPickCount   int
}

// New creates a Handler for cat, publishing change events on h.
func New(cat *catalog.Catalog, h *hub.Hub, opts Options) *Handler {
	if opts.RandomPickCount <= 0 {
		opts.RandomPickCount = sampler.DefaultCount
	}
	return &Handler{
		catalog:           cat,
		hub:               h,
		jwtSecret:         opts.JWTSecret,
		ownerPasswordHash: opts.OwnerPasswordHash,
		randomPickCount:   opts.RandomPickCount,
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"Game deleted"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

func (h *Handler) publish(eventType string, payload interface{}) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(hub.Event{Type: eventType, Payload: payload})
}

// Ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "{"message": "pong"}"
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
