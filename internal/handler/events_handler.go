package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const clientBuffer = 16

// Events godoc
// @Summary      Stream catalog changes
// @Description  Server-sent events carrying the new games, tags, filter or random pick after each change.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Failure      503 {object} ErrorResponse
// @Router       /events [get]
func (h *Handler) Events(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Event stream unavailable"})
		return
	}
	client := h.hub.Subscribe(clientBuffer)
	defer h.hub.Unsubscribe(client)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
