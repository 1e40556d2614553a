package catalog

import (
	"slices"

	"boardshelf/backend/internal/models"
)

// CreateGame appends an empty game with a fresh id and makes it the active game.
func (c *Catalog) CreateGame() models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := models.Game{ID: c.nextID()}
	c.games = append(c.games, g)
	c.activeID = g.ID
	c.saveGames()
	c.engine.SetGames(c.games)
	return g.Clone()
}

// CreateGameWith adds game under a fresh id, ignoring game.ID, and makes it
// the active game. Tag ids that do not belong to a live tag are dropped.
func (c *Catalog) CreateGameWith(game models.Game) models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := game.Clone()
	g.ID = c.nextID()
	g.Tags = c.liveTags(g.Tags)
	c.games = append(c.games, g)
	c.activeID = g.ID
	c.saveGames()
	c.engine.SetGames(c.games)
	return g.Clone()
}

// UpdateGame replaces the stored game with the same id. Tag ids that do not
// belong to a live tag are dropped.
func (c *Catalog) UpdateGame(game models.Game) (models.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.gameIndex(game.ID)
	if i == -1 {
		return models.Game{}, ErrGameNotFound
	}
	next := game.Clone()
	next.Tags = c.liveTags(next.Tags)
	c.games[i] = next
	c.saveGames()
	c.engine.SetGames(c.games)
	return next.Clone(), nil
}

// DeleteGame removes a game, clearing it from the active pointer and the
// current random pick.
func (c *Catalog) DeleteGame(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.gameIndex(id)
	if i == -1 {
		return ErrGameNotFound
	}
	c.games = slices.Delete(c.games, i, i+1)
	if c.activeID == id {
		c.activeID = 0
	}
	c.randomIDs = slices.DeleteFunc(c.randomIDs, func(r int64) bool { return r == id })
	c.saveGames()
	c.engine.SetGames(c.games)
	return nil
}

// Games returns every game in insertion order.
func (c *Catalog) Games() []models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CloneGames(c.games)
}

// Game looks a game up by id.
func (c *Catalog) Game(id int64) (models.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.gameIndex(id)
	if i == -1 {
		return models.Game{}, ErrGameNotFound
	}
	return c.games[i].Clone(), nil
}

// ActiveGameID returns the id of the game being edited, or 0.
func (c *Catalog) ActiveGameID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

// ActiveGame returns the game being edited, if any.
func (c *Catalog) ActiveGame() (models.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeID == 0 {
		return models.Game{}, false
	}
	i := c.gameIndex(c.activeID)
	if i == -1 {
		return models.Game{}, false
	}
	return c.games[i].Clone(), true
}

// SetActiveGame points the editor at id. Zero clears it.
func (c *Catalog) SetActiveGame(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id != 0 && c.gameIndex(id) == -1 {
		return ErrGameNotFound
	}
	c.activeID = id
	return nil
}
