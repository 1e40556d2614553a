package handler

import (
	"errors"
	"net/http"
	"strconv"

	"boardshelf/backend/internal/catalog"
	"boardshelf/backend/internal/hub"
	"boardshelf/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type TagInput struct {
	Label string `json:"label" example:"cooperative"`
}

type TagResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Label: tag.Label,
	}
}

func (h *Handler) publishTags() {
	h.publish(hub.EventTags, h.catalog.Tags())
}

// CreateTag godoc
// @Summary      Create a new tag
// @Description  Creates a tag with a fresh id; the label may be left empty and edited later.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body TagInput false "Tag Info"
// @Success      201  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /tags [post]
func (h *Handler) CreateTag(c *gin.Context) {
	var input TagInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	tag := h.catalog.CreateTag()
	if input.Label != "" {
		updated, err := h.catalog.UpdateTag(models.Tag{ID: tag.ID, Label: input.Label})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
			return
		}
		tag = updated
	}

	h.publishTags()
	c.JSON(http.StatusCreated, newTagResponse(tag))
}

// GetTags godoc
// @Summary      Get all tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}   TagResponse
// @Router       /tags [get]
func (h *Handler) GetTags(c *gin.Context) {
	tags := h.catalog.Tags()

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// GetTagLabels godoc
// @Summary      Get the tag label index
// @Description  Maps every tag id to its label.
// @Tags         tags
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /tags/labels [get]
func (h *Handler) GetTagLabels(c *gin.Context) {
	labels := h.catalog.TagLabels()

	response := make(map[string]string, len(labels))
	for id, label := range labels {
		response[strconv.FormatInt(id, 10)] = label
	}
	c.JSON(http.StatusOK, response)
}

// UpdateTag godoc
// @Summary      Update a tag
// @Description  Updates the label of an existing tag.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int      true  "Tag ID"
// @Param        input body TagInput true "New Tag Info"
// @Success      200  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /tags/{id} [put]
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.catalog.UpdateTag(models.Tag{ID: id, Label: input.Label})
	if errors.Is(err, catalog.ErrTagNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	h.publishTags()
	c.JSON(http.StatusOK, newTagResponse(tag))
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Description  Deletes a tag and strips it from every game and from the current filter.
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tag ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /tags/{id} [delete]
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteTag(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	h.publishTags()
	h.publish(hub.EventGames, h.catalog.Games())
	h.publish(hub.EventFilter, h.catalog.Filter())
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}
