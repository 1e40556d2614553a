package catalog

import (
	"slices"

	"boardshelf/backend/internal/filter"
	"boardshelf/backend/internal/models"
	"boardshelf/backend/internal/sampler"
)

// Filter returns the current session filter.
func (c *Catalog) Filter() filter.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Filter()
}

// FilteredGames returns the derived view.
func (c *Catalog) FilteredGames() []models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.View()
}

// IsFiltering reports whether the filter differs from its default.
func (c *Catalog) IsFiltering() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.IsFiltering()
}

// PatchFilter merges p into the filter. Tag ids that are not live are dropped.
func (c *Catalog) PatchFilter(p filter.Patch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.Tags != nil {
		live := c.liveTags(*p.Tags)
		if live == nil {
			live = []int64{}
		}
		p.Tags = &live
	}
	return c.engine.Patch(p)
}

// ClearFilter resets the filter to its default.
func (c *Catalog) ClearFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Clear()
}

// SetRandomGames draws up to k games from list and remembers them as the
// current pick. An empty list clears the pick.
func (c *Catalog) SetRandomGames(list []models.Game, k int) []models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pickLocked(list, k)
}

// PickRandom draws up to k games from the filtered view, or from every game
// when fromView is false.
func (c *Catalog) PickRandom(k int, fromView bool) []models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()

	source := c.games
	if fromView {
		source = c.engine.View()
	}
	return c.pickLocked(source, k)
}

func (c *Catalog) pickLocked(list []models.Game, k int) []models.Game {
	if len(list) == 0 {
		c.randomIDs = nil
		return []models.Game{}
	}
	ids := make([]int64, len(list))
	for i, g := range list {
		ids[i] = g.ID
	}
	c.randomIDs = sampler.Sample(c.rng, ids, k)
	return c.randomLocked()
}

// RandomGames resolves the current pick against the live games.
func (c *Catalog) RandomGames() []models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.randomLocked()
}

// ClearRandom forgets the current pick.
func (c *Catalog) ClearRandom() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.randomIDs = nil
}

func (c *Catalog) randomLocked() []models.Game {
	out := make([]models.Game, 0, len(c.randomIDs))
	for _, id := range c.randomIDs {
		if i := slices.IndexFunc(c.games, func(g models.Game) bool { return g.ID == id }); i != -1 {
			out = append(out, c.games[i].Clone())
		}
	}
	return out
}
