package filter

import (
	"cmp"
	"slices"
	"strings"

	"boardshelf/backend/internal/models"
)

// Stage is one step of the view pipeline. Stages never mutate their input.
type Stage func(games []models.Game, f Filter) []models.Game

// Stages is the pipeline in execution order.
var Stages = []Stage{SortStage, QueryStage, PlayersStage, DurationStage, TagsStage}

// Apply runs every stage over a copy of games.
func Apply(games []models.Game, f Filter) []models.Game {
	out := models.CloneGames(games)
	for _, stage := range Stages {
		out = stage(out, f)
	}
	return out
}

// SortStage orders games by f.Sort. The sort is stable, and games without a
// duration go last under both duration orders.
func SortStage(games []models.Game, f Filter) []models.Game {
	out := slices.Clone(games)
	switch f.Sort {
	case TitleDesc:
		slices.SortStableFunc(out, func(a, b models.Game) int { return strings.Compare(b.Title, a.Title) })
	case DurationAsc:
		slices.SortStableFunc(out, func(a, b models.Game) int { return compareDuration(a, b, false) })
	case DurationDesc:
		slices.SortStableFunc(out, func(a, b models.Game) int { return compareDuration(a, b, true) })
	default:
		slices.SortStableFunc(out, func(a, b models.Game) int { return strings.Compare(a.Title, b.Title) })
	}
	return out
}

func compareDuration(a, b models.Game, desc bool) int {
	switch {
	case a.Duration == nil && b.Duration == nil:
		return 0
	case a.Duration == nil:
		return 1
	case b.Duration == nil:
		return -1
	}
	c := cmp.Compare(a.Duration.High(), b.Duration.High())
	if desc {
		return -c
	}
	return c
}

// QueryStage keeps games whose title contains the query, ignoring case.
func QueryStage(games []models.Game, f Filter) []models.Game {
	if f.Query == "" {
		return games
	}
	q := strings.ToLower(f.Query)
	return keep(games, func(g models.Game) bool {
		return strings.Contains(strings.ToLower(g.Title), q)
	})
}

// PlayersStage keeps games whose player range includes f.Players.
func PlayersStage(games []models.Game, f Filter) []models.Game {
	if f.Players == 0 {
		return games
	}
	return keep(games, func(g models.Game) bool {
		if g.MinPlayers == nil || g.MaxPlayers == nil {
			return false
		}
		return *g.MinPlayers <= f.Players && f.Players <= *g.MaxPlayers
	})
}

// DurationStage applies the two duration bounds independently. A bound at
// its extreme is inactive; MaxDuration means no cap.
func DurationStage(games []models.Game, f Filter) []models.Game {
	lowActive := f.Duration.Low() != models.MinDuration
	highActive := f.Duration.High() != models.MaxDuration
	if !lowActive && !highActive {
		return games
	}
	return keep(games, func(g models.Game) bool {
		if g.Duration == nil {
			return false
		}
		if lowActive && f.Duration.Low() > g.Duration.Low() {
			return false
		}
		if highActive && f.Duration.High() < g.Duration.High() {
			return false
		}
		return true
	})
}

// TagsStage keeps games sharing at least one tag with the filter.
func TagsStage(games []models.Game, f Filter) []models.Game {
	if len(f.Tags) == 0 {
		return games
	}
	return keep(games, func(g models.Game) bool {
		return slices.ContainsFunc(f.Tags, g.HasTag)
	})
}

func keep(games []models.Game, pred func(models.Game) bool) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if pred(g) {
			out = append(out, g)
		}
	}
	return out
}
