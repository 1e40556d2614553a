package catalog

import (
	"maps"
	"slices"

	"boardshelf/backend/internal/models"
)

// CreateTag appends a tag with a fresh id and an empty label.
func (c *Catalog) CreateTag() models.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := models.Tag{ID: c.nextID()}
	c.tags = append(c.tags, t)
	c.reindexTags()
	c.saveTags()
	return t
}

// UpdateTag replaces the tag with the same id.
func (c *Catalog) UpdateTag(tag models.Tag) (models.Tag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.tagIndex(tag.ID)
	if i == -1 {
		return models.Tag{}, ErrTagNotFound
	}
	c.tags[i] = tag
	c.reindexTags()
	c.saveTags()
	return tag, nil
}

// DeleteTag removes a tag along with every reference to it: first from the
// filter, then from each game, then the tag itself.
func (c *Catalog) DeleteTag(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.tagIndex(id)
	if i == -1 {
		return ErrTagNotFound
	}

	c.engine.RemoveTag(id)

	gamesChanged := false
	for gi := range c.games {
		if !c.games[gi].HasTag(id) {
			continue
		}
		c.games[gi].Tags = slices.DeleteFunc(slices.Clone(c.games[gi].Tags), func(t int64) bool { return t == id })
		gamesChanged = true
	}

	c.tags = slices.Delete(c.tags, i, i+1)
	c.reindexTags()

	if gamesChanged {
		c.saveGames()
	}
	c.saveTags()
	c.engine.SetGames(c.games)
	return nil
}

// Tags returns every tag in insertion order.
func (c *Catalog) Tags() []models.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.tags)
}

// Tag looks a tag up by id.
func (c *Catalog) Tag(id int64) (models.Tag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.tagIndex(id)
	if i == -1 {
		return models.Tag{}, ErrTagNotFound
	}
	return c.tags[i], nil
}

// TagLabels maps tag ids to labels.
func (c *Catalog) TagLabels() map[int64]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.tagLabels)
}
