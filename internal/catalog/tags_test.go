package catalog_test

import (
	"context"
	"testing"

	"boardshelf/backend/internal/catalog"
	"boardshelf/backend/internal/filter"
	"boardshelf/backend/internal/models"
	"boardshelf/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUpdateTag(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	tag := c.CreateTag()
	assert.Empty(t, tag.Label)
	assert.Equal(t, map[int64]string{tag.ID: ""}, c.TagLabels())

	_, err := c.UpdateTag(models.Tag{ID: tag.ID, Label: "party"})
	require.NoError(t, err)
	assert.Equal(t, "party", c.TagLabels()[tag.ID])

	_, err = c.UpdateTag(models.Tag{ID: 1, Label: "nope"})
	assert.ErrorIs(t, err, catalog.ErrTagNotFound)
}

func TestDeleteTag_Cascades(t *testing.T) {
	s := storage.NewMemoryStore()
	c := newCatalog(t, s)

	keep := c.CreateTag()
	drop := c.CreateTag()

	a := c.CreateGame()
	b := c.CreateGame()
	_, err := c.UpdateGame(models.Game{ID: a.ID, Title: "A", Tags: []int64{keep.ID, drop.ID}})
	require.NoError(t, err)
	_, err = c.UpdateGame(models.Game{ID: b.ID, Title: "B", Tags: []int64{drop.ID}})
	require.NoError(t, err)

	tags := []int64{drop.ID, keep.ID}
	require.NoError(t, c.PatchFilter(filter.Patch{Tags: &tags}))
	require.Len(t, c.FilteredGames(), 2)

	require.NoError(t, c.DeleteTag(drop.ID))

	for _, g := range c.Games() {
		assert.NotContains(t, g.Tags, drop.ID, "game %d still references deleted tag", g.ID)
	}
	assert.Equal(t, []int64{keep.ID}, c.Filter().Tags)
	_, err = c.Tag(drop.ID)
	assert.ErrorIs(t, err, catalog.ErrTagNotFound)
	assert.NotContains(t, c.TagLabels(), drop.ID)

	view := c.FilteredGames()
	require.Len(t, view, 1)
	assert.Equal(t, "A", view[0].Title)

	stored := storage.LoadOrDefault(context.Background(), s, storage.KeyGames, []models.Game{})
	for _, g := range stored {
		assert.NotContains(t, g.Tags, drop.ID)
	}
	storedTags := storage.LoadOrDefault(context.Background(), s, storage.KeyTags, []models.Tag{})
	assert.Equal(t, []models.Tag{keep}, storedTags)
}

func TestDeleteTag_LastFilterTagStopsFiltering(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	tag := c.CreateTag()
	c.CreateGame()

	tags := []int64{tag.ID}
	require.NoError(t, c.PatchFilter(filter.Patch{Tags: &tags}))
	assert.True(t, c.IsFiltering())
	assert.Empty(t, c.FilteredGames())

	require.NoError(t, c.DeleteTag(tag.ID))
	assert.False(t, c.IsFiltering())
	assert.Len(t, c.FilteredGames(), 1)
}

func TestDeleteTag_Unknown(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	c.CreateTag()
	assert.ErrorIs(t, c.DeleteTag(7), catalog.ErrTagNotFound)
	assert.Len(t, c.Tags(), 1)
}

func TestPatchFilter_DropsUnknownTags(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	tag := c.CreateTag()

	tags := []int64{tag.ID, 404}
	require.NoError(t, c.PatchFilter(filter.Patch{Tags: &tags}))
	assert.Equal(t, []int64{tag.ID}, c.Filter().Tags)
}
