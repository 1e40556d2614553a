package handler

import (
	"errors"
	"net/http"

	"boardshelf/backend/internal/catalog"
	"boardshelf/backend/internal/hub"
	"boardshelf/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput is the editable part of a game.
type GameInput struct {
	Title      string        `json:"title" example:"Catan"`
	MinPlayers *int          `json:"minPlayers" binding:"omitempty,min=0" example:"3"`
	MaxPlayers *int          `json:"maxPlayers" binding:"omitempty,min=0" example:"4"`
	Duration   *models.Range `json:"duration" swaggertype:"array,integer" example:"60,120"`
	Tags       []int64       `json:"tags"` // IDs of the tags to associate with the game
}

func (in GameInput) validate() error {
	if d := in.Duration; d != nil {
		if d.Low() < 0 || d.High() < 0 {
			return errors.New("duration must not be negative")
		}
		if d.Low() > d.High() {
			return errors.New("duration low bound must not exceed high bound")
		}
	}
	return nil
}

type GameResponse struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	MinPlayers    *int          `json:"minPlayers,omitempty"`
	MaxPlayers    *int          `json:"maxPlayers,omitempty"`
	Duration      *models.Range `json:"duration,omitempty" swaggertype:"array,integer"`
	DurationLabel string        `json:"duration_label,omitempty"`
	Tags          []TagResponse `json:"tags"`
}

func newGameResponse(game models.Game, labels map[int64]string) GameResponse {
	tagResponses := make([]TagResponse, 0, len(game.Tags))
	for _, id := range game.Tags {
		tagResponses = append(tagResponses, TagResponse{ID: id, Label: labels[id]})
	}

	var durationLabel string
	if game.Duration != nil {
		durationLabel = game.Duration.Label()
	}

	return GameResponse{
		ID:            game.ID,
		Title:         game.Title,
		MinPlayers:    game.MinPlayers,
		MaxPlayers:    game.MaxPlayers,
		Duration:      game.Duration,
		DurationLabel: durationLabel,
		Tags:          tagResponses,
	}
}

func newGameResponses(games []models.Game, labels map[int64]string) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameResponse(g, labels))
	}
	return out
}

// PaginatedGameResponse defines the structure for a paginated page of the filtered view.
type PaginatedGameResponse struct {
	Data        []GameResponse `json:"data"`
	Meta        PaginationMeta `json:"meta"`
	IsFiltering bool           `json:"is_filtering"`
}

// ActiveGameInput selects the game shown in the editor.
type ActiveGameInput struct {
	ID int64 `json:"id"`
}

// endregion

// region --- Read Handlers ---

// GetGames godoc
// @Summary      Get the filtered view
// @Description  Retrieves a page of games filtered and sorted by the current session filter.
// @Tags         games
// @Produce      json
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(20)
// @Success      200 {object} PaginatedGameResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	page, limit := pageParams(c)

	view := h.catalog.FilteredGames()
	labels := h.catalog.TagLabels()
	p := Paginate(newGameResponses(view, labels), page, limit)

	c.JSON(http.StatusOK, PaginatedGameResponse{
		Data:        p.Data,
		Meta:        p.Meta,
		IsFiltering: h.catalog.IsFiltering(),
	})
}

// GetAllGames godoc
// @Summary      Get every game
// @Description  Retrieves all games in creation order, ignoring the filter.
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /games/all [get]
func (h *Handler) GetAllGames(c *gin.Context) {
	c.JSON(http.StatusOK, newGameResponses(h.catalog.Games(), h.catalog.TagLabels()))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := h.catalog.Game(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, h.catalog.TagLabels()))
}

// GetActiveGame godoc
// @Summary      Get the active game
// @Description  Returns the game currently open for editing, usually the one just created.
// @Tags         games
// @Produce      json
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "No active game"
// @Router       /games/active [get]
func (h *Handler) GetActiveGame(c *gin.Context) {
	game, ok := h.catalog.ActiveGame()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active game"})
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game, h.catalog.TagLabels()))
}

// endregion

// region --- Owner Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates an empty game with a fresh id, optionally filled from the body, and makes it active.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput false "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	game := h.catalog.CreateGameWith(input.toGame(0))

	h.publish(hub.EventGames, h.catalog.Games())
	c.JSON(http.StatusCreated, newGameResponse(game, h.catalog.TagLabels()))
}

func (in GameInput) toGame(id int64) models.Game {
	return models.Game{
		ID:         id,
		Title:      in.Title,
		MinPlayers: in.MinPlayers,
		MaxPlayers: in.MaxPlayers,
		Duration:   in.Duration,
		Tags:       in.Tags,
	}
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces a game's fields. Unknown tag ids are dropped.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.catalog.UpdateGame(input.toGame(id))
	if errors.Is(err, catalog.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	h.publish(hub.EventGames, h.catalog.Games())
	c.JSON(http.StatusOK, newGameResponse(game, h.catalog.TagLabels()))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteGame(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	h.publish(hub.EventGames, h.catalog.Games())
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// SetActiveGame godoc
// @Summary      Choose the active game
// @Description  Opens a game in the editor; id 0 closes it.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ActiveGameInput true "Game to activate"
// @Success      200 {object} map[string]int64 "{"active_id": 1}"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/active [put]
func (h *Handler) SetActiveGame(c *gin.Context) {
	var input ActiveGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.SetActiveGame(input.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active_id": input.ID})
}

// endregion
