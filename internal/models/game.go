package models

import "slices"

const (
	// MinDuration is the lower bound of every duration range, in minutes.
	MinDuration = 0
	// MaxDuration is the upper sentinel, read as "240+" or "no upper bound".
	MaxDuration = 240
)

// Range is an inclusive [low, high] pair of minutes. It encodes as a JSON array.
type Range [2]int

// Low returns the lower bound.
func (r Range) Low() int { return r[0] }

// High returns the upper bound.
func (r Range) High() int { return r[1] }

// Game represents a board game in the catalog.
// The ID is a millisecond timestamp and doubles as creation order.
type Game struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title,omitempty"`
	MinPlayers *int    `json:"minPlayers,omitempty"`
	MaxPlayers *int    `json:"maxPlayers,omitempty"`
	Duration   *Range  `json:"duration,omitempty"`
	Tags       []int64 `json:"tags,omitempty"`
}

// Clone returns a deep copy so callers can never alias catalog state.
func (g Game) Clone() Game {
	out := g
	if g.MinPlayers != nil {
		v := *g.MinPlayers
		out.MinPlayers = &v
	}
	if g.MaxPlayers != nil {
		v := *g.MaxPlayers
		out.MaxPlayers = &v
	}
	if g.Duration != nil {
		d := *g.Duration
		out.Duration = &d
	}
	out.Tags = slices.Clone(g.Tags)
	return out
}

// HasTag reports whether the game references the tag id.
func (g Game) HasTag(id int64) bool {
	return slices.Contains(g.Tags, id)
}

// CloneGames deep-copies a list of games.
func CloneGames(games []Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = g.Clone()
	}
	return out
}
