// Package catalog owns the persisted games and tags and keeps the filtered
// view in step with every change.
package catalog

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"boardshelf/backend/internal/filter"
	"boardshelf/backend/internal/models"
	"boardshelf/backend/internal/storage"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTagNotFound  = errors.New("tag not found")
)

// Catalog is the single owner of Games and Tags. Every exported method runs
// to completion under one lock, so a reader never sees half of a cascade.
type Catalog struct {
	mu sync.Mutex

	store storage.Store
	now   func() time.Time
	rng   *rand.Rand

	games     []models.Game
	tags      []models.Tag
	tagLabels map[int64]string
	engine    *filter.Engine

	lastID    int64
	activeID  int64
	randomIDs []int64
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	now      func() time.Time
	rng      *rand.Rand
	seedTags []string
}

// WithClock overrides the time source used for new ids.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRand sets the random source used by random picks.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeedTags creates tags with these labels when the store has none saved yet.
func WithSeedTags(labels []string) Option {
	return func(o *options) { o.seedTags = labels }
}

// New loads games and tags from store. Missing or malformed data starts the
// catalog empty; New never fails.
func New(ctx context.Context, store storage.Store, opts ...Option) *Catalog {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		store:  store,
		now:    o.now,
		rng:    o.rng,
		engine: filter.NewEngine(),
	}

	c.games = storage.LoadOrDefault(ctx, store, storage.KeyGames, []models.Game{})
	tags, tagsOK := c.loadTags(ctx, o.seedTags)
	c.tags = tags
	if c.games == nil {
		c.games = []models.Game{}
	}
	if c.tags == nil {
		c.tags = []models.Tag{}
	}

	for _, g := range c.games {
		c.lastID = max(c.lastID, g.ID)
	}
	for _, t := range c.tags {
		c.lastID = max(c.lastID, t.ID)
	}

	c.reindexTags()
	// An unreadable tags entry must not erase the tag links of stored games.
	if c.stripUnknownTags() && tagsOK {
		c.saveGames()
	}
	c.engine.SetGames(c.games)
	return c
}

// loadTags reports false when the stored tags could not be read.
func (c *Catalog) loadTags(ctx context.Context, seed []string) ([]models.Tag, bool) {
	var tags []models.Tag
	err := c.store.Load(ctx, storage.KeyTags, &tags)
	switch {
	case err == nil:
		return tags, true
	case errors.Is(err, storage.ErrNotFound) && len(seed) > 0:
		tags = make([]models.Tag, 0, len(seed))
		for _, label := range seed {
			tags = append(tags, models.Tag{ID: c.nextID(), Label: label})
		}
		c.tags = tags
		c.saveTags()
		log.Printf("Seeded %d tags.", len(tags))
		return tags, true
	case errors.Is(err, storage.ErrNotFound):
		return []models.Tag{}, true
	default:
		log.Printf("Warning: discarding stored %q: %v", storage.KeyTags, err)
		return []models.Tag{}, false
	}
}

// nextID issues a millisecond timestamp, bumped past the last issued id so
// calls within the same millisecond stay unique and ordered.
func (c *Catalog) nextID() int64 {
	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

func (c *Catalog) saveGames() {
	if err := c.store.Save(context.Background(), storage.KeyGames, c.games); err != nil {
		log.Printf("Warning: failed to save games: %v", err)
	}
}

func (c *Catalog) saveTags() {
	if err := c.store.Save(context.Background(), storage.KeyTags, c.tags); err != nil {
		log.Printf("Warning: failed to save tags: %v", err)
	}
}

func (c *Catalog) reindexTags() {
	labels := make(map[int64]string, len(c.tags))
	for _, t := range c.tags {
		labels[t.ID] = t.Label
	}
	c.tagLabels = labels
}

// stripUnknownTags drops tag references that no longer resolve.
func (c *Catalog) stripUnknownTags() bool {
	changed := false
	for i := range c.games {
		before := len(c.games[i].Tags)
		c.games[i].Tags = c.liveTags(c.games[i].Tags)
		if len(c.games[i].Tags) != before {
			changed = true
		}
	}
	return changed
}

func (c *Catalog) liveTags(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	return slices.DeleteFunc(slices.Clone(ids), func(id int64) bool {
		_, ok := c.tagLabels[id]
		return !ok
	})
}

func (c *Catalog) gameIndex(id int64) int {
	return slices.IndexFunc(c.games, func(g models.Game) bool { return g.ID == id })
}

func (c *Catalog) tagIndex(id int64) int {
	return slices.IndexFunc(c.tags, func(t models.Tag) bool { return t.ID == id })
}
