package catalog_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"boardshelf/backend/internal/catalog"
	"boardshelf/backend/internal/models"
	"boardshelf/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func fixedClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return t }
}

func newCatalog(t *testing.T, s storage.Store, opts ...catalog.Option) *catalog.Catalog {
	t.Helper()
	opts = append([]catalog.Option{catalog.WithClock(fixedClock()), catalog.WithRand(rand.New(rand.NewPCG(1, 1)))}, opts...)
	return catalog.New(context.Background(), s, opts...)
}

func seedStore(t *testing.T, games []models.Game, tags []models.Tag) *storage.MemoryStore {
	t.Helper()
	s := storage.NewMemoryStore()
	ctx := context.Background()
	if games != nil {
		require.NoError(t, s.Save(ctx, storage.KeyGames, games))
	}
	if tags != nil {
		require.NoError(t, s.Save(ctx, storage.KeyTags, tags))
	}
	return s
}

type failingStore struct {
	*storage.MemoryStore
	saves int
}

func (f *failingStore) Save(context.Context, string, any) error {
	f.saves++
	return errors.New("disk full")
}

func TestNew_EmptyStore(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	assert.Empty(t, c.Games())
	assert.Empty(t, c.Tags())
	assert.NotNil(t, c.Games())
	assert.Empty(t, c.FilteredGames())
	assert.False(t, c.IsFiltering())
}

func TestNew_MalformedDataFallsBack(t *testing.T) {
	s := storage.NewMemoryStore()
	s.Put(storage.KeyGames, []byte(`{"id": 1}`))
	s.Put(storage.KeyTags, []byte(`not json`))

	c := newCatalog(t, s)
	assert.Empty(t, c.Games())
	assert.Empty(t, c.Tags())
}

func TestNew_SeedsTagsOnFirstRunOnly(t *testing.T) {
	s := storage.NewMemoryStore()
	c := newCatalog(t, s, catalog.WithSeedTags([]string{"party", "legacy"}))

	tags := c.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, "party", tags[0].Label)
	assert.NotEqual(t, tags[0].ID, tags[1].ID)

	reloaded := newCatalog(t, s, catalog.WithSeedTags([]string{"other"}))
	assert.Equal(t, tags, reloaded.Tags())
}

func TestNew_StripsOrphanTagReferences(t *testing.T) {
	s := seedStore(t,
		[]models.Game{{ID: 1, Title: "Catan", Tags: []int64{5, 6}}},
		[]models.Tag{{ID: 5, Label: "eurogame"}},
	)
	c := newCatalog(t, s)

	g, err := c.Game(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, g.Tags)

	stored := storage.LoadOrDefault(context.Background(), s, storage.KeyGames, []models.Game{})
	assert.Equal(t, []int64{5}, stored[0].Tags)
}

func TestNew_UnreadableTagsKeepStoredGameLinks(t *testing.T) {
	s := seedStore(t, []models.Game{{ID: 1, Title: "Catan", Tags: []int64{10}}}, nil)
	s.Put(storage.KeyTags, []byte(`{"oops"`))

	c := newCatalog(t, s)
	assert.Empty(t, c.Tags())

	stored := storage.LoadOrDefault(context.Background(), s, storage.KeyGames, []models.Game{})
	require.Len(t, stored, 1)
	assert.Equal(t, []int64{10}, stored[0].Tags)
}

func TestCreateGame_UniqueIncreasingIDs(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())

	seen := map[int64]bool{}
	var last int64
	for range 50 {
		g := c.CreateGame()
		assert.False(t, seen[g.ID], "duplicate id %d", g.ID)
		assert.Greater(t, g.ID, last)
		seen[g.ID] = true
		last = g.ID
	}
	assert.Len(t, c.Games(), 50)
}

func TestCreateGameWith(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	party := c.CreateTag()

	g := c.CreateGameWith(models.Game{ID: 42, Title: "Catan", MinPlayers: intp(3), Tags: []int64{party.ID, 999}})
	assert.NotEqual(t, int64(42), g.ID)
	assert.Equal(t, "Catan", g.Title)
	assert.Equal(t, []int64{party.ID}, g.Tags)
	assert.Equal(t, g.ID, c.ActiveGameID())

	games := c.Games()
	require.Len(t, games, 1)
	assert.Equal(t, g, games[0])
	assert.Equal(t, games, c.FilteredGames())
}

func TestCreateGame_IDsAfterExisting(t *testing.T) {
	s := seedStore(t, []models.Game{{ID: 1_800_000_000_000, Title: "Future"}}, nil)
	c := newCatalog(t, s)

	g := c.CreateGame()
	assert.Equal(t, int64(1_800_000_000_001), g.ID)
}

func TestCreateGame_BecomesActive(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	g := c.CreateGame()
	assert.Equal(t, g.ID, c.ActiveGameID())

	active, ok := c.ActiveGame()
	require.True(t, ok)
	assert.Equal(t, g, active)
}

func TestEndToEndScenario(t *testing.T) {
	s := seedStore(t, []models.Game{{ID: 1, Title: "Catan", Tags: []int64{}}}, nil)
	c := newCatalog(t, s)

	created := c.CreateGame()
	games := c.Games()
	require.Len(t, games, 2)
	assert.NotEqual(t, int64(1), created.ID)
	assert.Empty(t, created.Title)

	updated, err := c.UpdateGame(models.Game{ID: created.ID, Title: "Risk"})
	require.NoError(t, err)
	assert.Equal(t, "Risk", updated.Title)

	got, err := c.Game(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Risk", got.Title)

	require.NoError(t, c.DeleteGame(1))
	games = c.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "Risk", games[0].Title)
}

func TestPersistReloadRoundTrip(t *testing.T) {
	s := storage.NewMemoryStore()
	c := newCatalog(t, s)

	tag := c.CreateTag()
	_, err := c.UpdateTag(models.Tag{ID: tag.ID, Label: "cooperative"})
	require.NoError(t, err)

	g := c.CreateGame()
	_, err = c.UpdateGame(models.Game{
		ID:         g.ID,
		Title:      "Pandemic",
		MinPlayers: intp(2),
		MaxPlayers: intp(4),
		Duration:   &models.Range{45, 60},
		Tags:       []int64{tag.ID},
	})
	require.NoError(t, err)
	c.CreateGame()

	reloaded := newCatalog(t, s)
	assert.Equal(t, c.Games(), reloaded.Games())
	assert.Equal(t, c.Tags(), reloaded.Tags())
}

func TestUpdateGame_UnknownID(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	c.CreateGame()
	before := c.Games()

	_, err := c.UpdateGame(models.Game{ID: 42, Title: "Ghost"})
	assert.ErrorIs(t, err, catalog.ErrGameNotFound)
	assert.Equal(t, before, c.Games())
}

func TestUpdateGame_DropsUnknownTags(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	tag := c.CreateTag()
	g := c.CreateGame()

	updated, err := c.UpdateGame(models.Game{ID: g.ID, Tags: []int64{tag.ID, 999}})
	require.NoError(t, err)
	assert.Equal(t, []int64{tag.ID}, updated.Tags)
}

func TestUpdateGame_CallerCannotAliasState(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	tag := c.CreateTag()
	g := c.CreateGame()

	in := models.Game{ID: g.ID, Title: "Azul", Tags: []int64{tag.ID}}
	_, err := c.UpdateGame(in)
	require.NoError(t, err)
	in.Tags[0] = 0

	got, err := c.Game(g.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{tag.ID}, got.Tags)
}

func TestDeleteGame(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	a := c.CreateGame()
	b := c.CreateGame()

	require.NoError(t, c.DeleteGame(a.ID))
	assert.Equal(t, b.ID, c.ActiveGameID(), "deleting another game keeps the active pointer")

	require.NoError(t, c.DeleteGame(b.ID))
	assert.Zero(t, c.ActiveGameID())
	_, ok := c.ActiveGame()
	assert.False(t, ok)

	assert.ErrorIs(t, c.DeleteGame(b.ID), catalog.ErrGameNotFound)
}

func TestSetActiveGame(t *testing.T) {
	c := newCatalog(t, storage.NewMemoryStore())
	a := c.CreateGame()
	c.CreateGame()

	require.NoError(t, c.SetActiveGame(a.ID))
	assert.Equal(t, a.ID, c.ActiveGameID())

	assert.ErrorIs(t, c.SetActiveGame(12345), catalog.ErrGameNotFound)
	assert.Equal(t, a.ID, c.ActiveGameID())

	require.NoError(t, c.SetActiveGame(0))
	assert.Zero(t, c.ActiveGameID())
}

func TestWriteFailuresAreSwallowed(t *testing.T) {
	s := &failingStore{MemoryStore: storage.NewMemoryStore()}
	c := newCatalog(t, s)

	g := c.CreateGame()
	_, err := c.UpdateGame(models.Game{ID: g.ID, Title: "Still here"})
	require.NoError(t, err)

	assert.Positive(t, s.saves)
	got, err := c.Game(g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Still here", got.Title)
}
