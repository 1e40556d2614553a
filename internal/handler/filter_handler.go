package handler

import (
	"net/http"

	"boardshelf/backend/internal/filter"
	"boardshelf/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// FilterResponse is the session filter and whether it is narrowing the view.
type FilterResponse struct {
	Filter      filter.Filter `json:"filter"`
	IsFiltering bool          `json:"is_filtering"`
}

func (h *Handler) filterResponse() FilterResponse {
	return FilterResponse{
		Filter:      h.catalog.Filter(),
		IsFiltering: h.catalog.IsFiltering(),
	}
}

// GetFilter godoc
// @Summary      Get the session filter
// @Tags         filter
// @Produce      json
// @Success      200 {object} FilterResponse
// @Router       /filter [get]
func (h *Handler) GetFilter(c *gin.Context) {
	c.JSON(http.StatusOK, h.filterResponse())
}

// PatchFilter godoc
// @Summary      Change the session filter
// @Description  Merges the given fields into the filter. Durations are clamped to [0, 240].
// @Tags         filter
// @Accept       json
// @Produce      json
// @Param        input body filter.Patch true "Filter changes"
// @Success      200 {object} FilterResponse
// @Failure      400 {object} ErrorResponse
// @Router       /filter [patch]
func (h *Handler) PatchFilter(c *gin.Context) {
	var patch filter.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.PatchFilter(patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.filterResponse()
	h.publish(hub.EventFilter, resp.Filter)
	c.JSON(http.StatusOK, resp)
}

// ClearFilter godoc
// @Summary      Reset the session filter
// @Tags         filter
// @Produce      json
// @Success      200 {object} FilterResponse
// @Router       /filter [delete]
func (h *Handler) ClearFilter(c *gin.Context) {
	h.catalog.ClearFilter()

	resp := h.filterResponse()
	h.publish(hub.EventFilter, resp.Filter)
	c.JSON(http.StatusOK, resp)
}
