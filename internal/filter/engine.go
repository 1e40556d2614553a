package filter

import (
	"slices"

	"boardshelf/backend/internal/models"
)

// Engine owns the current Filter and the view derived from it.
// Every change regenerates the view from scratch. Engine is not safe for
// concurrent use; the catalog serializes access.
type Engine struct {
	filter    Filter
	games     []models.Game
	view      []models.Game
	filtering bool
}

// NewEngine returns an engine with the default filter and no games.
func NewEngine() *Engine {
	e := &Engine{filter: Default()}
	e.recompute()
	return e
}

func (e *Engine) recompute() {
	e.view = Apply(e.games, e.filter)
	e.filtering = !e.filter.IsDefault()
}

// SetGames replaces the base list.
func (e *Engine) SetGames(games []models.Game) {
	e.games = models.CloneGames(games)
	e.recompute()
}

// Filter returns a copy of the current filter.
func (e *Engine) Filter() Filter { return e.filter.clone() }

// View returns a copy of the filtered, sorted games.
func (e *Engine) View() []models.Game { return models.CloneGames(e.view) }

// IsFiltering reports whether the filter differs from Default.
func (e *Engine) IsFiltering() bool { return e.filtering }

// Patch applies several changes with a single recomputation.
func (e *Engine) Patch(p Patch) error {
	next, err := p.apply(e.filter)
	if err != nil {
		return err
	}
	e.filter = next
	e.recompute()
	return nil
}

func (e *Engine) SetQuery(q string) {
	_ = e.Patch(Patch{Query: &q})
}

func (e *Engine) SetTags(tags []int64) {
	_ = e.Patch(Patch{Tags: &tags})
}

// SetDuration clamps and orders r before storing it.
func (e *Engine) SetDuration(r models.Range) {
	_ = e.Patch(Patch{Duration: &r})
}

// SetPlayers sets the player count; negative values clear it.
func (e *Engine) SetPlayers(n int) {
	_ = e.Patch(Patch{Players: &n})
}

func (e *Engine) SetSort(k SortKey) error {
	return e.Patch(Patch{Sort: &k})
}

// Clear resets the filter to Default.
func (e *Engine) Clear() {
	e.filter = Default()
	e.recompute()
}

// RemoveTag drops id from the tag criteria without recomputing; the caller
// is expected to follow with SetGames.
func (e *Engine) RemoveTag(id int64) {
	e.filter.Tags = slices.DeleteFunc(e.filter.Tags, func(t int64) bool { return t == id })
}
