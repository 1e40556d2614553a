package handler

import (
	"net/http"

	"boardshelf/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// Random pick sources.
const (
	SourceView = "view"
	SourceAll  = "all"
)

// RandomInput controls a random pick.
type RandomInput struct {
	Count  int    `json:"count" binding:"omitempty,min=1,max=100" example:"3"`
	Source string `json:"source" binding:"omitempty,oneof=view all" example:"view"`
}

// PickRandomGames godoc
// @Summary      Pick random games
// @Description  Draws distinct games at random from the filtered view (default) or from every game.
// @Tags         random
// @Accept       json
// @Produce      json
// @Param        input body RandomInput false "Pick options"
// @Success      200 {array} GameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /random [post]
func (h *Handler) PickRandomGames(c *gin.Context) {
	var input RandomInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if input.Count == 0 {
		input.Count = h.randomPickCount
	}

	picked := h.catalog.PickRandom(input.Count, input.Source != SourceAll)

	response := newGameResponses(picked, h.catalog.TagLabels())
	h.publish(hub.EventRandom, response)
	c.JSON(http.StatusOK, response)
}

// GetRandomGames godoc
// @Summary      Get the current random pick
// @Tags         random
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /random [get]
func (h *Handler) GetRandomGames(c *gin.Context) {
	c.JSON(http.StatusOK, newGameResponses(h.catalog.RandomGames(), h.catalog.TagLabels()))
}

// ClearRandomGames godoc
// @Summary      Close the random pick
// @Tags         random
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /random [delete]
func (h *Handler) ClearRandomGames(c *gin.Context) {
	h.catalog.ClearRandom()

	h.publish(hub.EventRandom, []GameResponse{})
	c.JSON(http.StatusOK, gin.H{"message": "Random pick cleared"})
}
