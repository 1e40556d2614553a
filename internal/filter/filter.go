// Package filter derives the searchable, sorted view of the game catalog.
package filter

import (
	"errors"
	"fmt"
	"slices"

	"boardshelf/backend/internal/models"
)

// SortKey selects the comparator used by the sort stage.
type SortKey string

const (
	TitleAsc     SortKey = "title-asc"
	TitleDesc    SortKey = "title-desc"
	DurationAsc  SortKey = "duration-asc"
	DurationDesc SortKey = "duration-desc"
)

// SortKeys lists the supported sort keys.
var SortKeys = []SortKey{TitleAsc, TitleDesc, DurationAsc, DurationDesc}

var ErrUnknownSort = errors.New("unknown sort key")

// ParseSortKey validates a sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !slices.Contains(SortKeys, k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
	return k, nil
}

// Filter holds the session-scoped search criteria. It is never persisted.
type Filter struct {
	Query    string       `json:"query"`
	Tags     []int64      `json:"tags"`
	Duration models.Range `json:"duration"`
	Players  int          `json:"players"`
	Sort     SortKey      `json:"sort"`
}

// Default returns the cleared filter.
func Default() Filter {
	return Filter{
		Query:    "",
		Tags:     []int64{},
		Duration: models.Range{models.MinDuration, models.MaxDuration},
		Players:  0,
		Sort:     TitleAsc,
	}
}

// IsDefault reports whether f equals the cleared filter.
func (f Filter) IsDefault() bool {
	d := Default()
	return f.Query == d.Query &&
		len(f.Tags) == 0 &&
		f.Duration == d.Duration &&
		f.Players == d.Players &&
		f.Sort == d.Sort
}

func (f Filter) clone() Filter {
	f.Tags = slices.Clone(f.Tags)
	if f.Tags == nil {
		f.Tags = []int64{}
	}
	return f
}

// ClampDuration orders the pair and bounds it to [MinDuration, MaxDuration].
func ClampDuration(r models.Range) models.Range {
	low := min(max(r.Low(), models.MinDuration), models.MaxDuration)
	high := min(max(r.High(), models.MinDuration), models.MaxDuration)
	if low > high {
		low, high = high, low
	}
	return models.Range{low, high}
}

// Patch changes a subset of the filter. Nil fields are left untouched.
type Patch struct {
	Query    *string       `json:"query"`
	Tags     *[]int64      `json:"tags"`
	Duration *models.Range `json:"duration"`
	Players  *int          `json:"players"`
	Sort     *SortKey      `json:"sort"`
}

// apply returns f with the patch merged in.
func (p Patch) apply(f Filter) (Filter, error) {
	if p.Sort != nil {
		if _, err := ParseSortKey(string(*p.Sort)); err != nil {
			return f, err
		}
		f.Sort = *p.Sort
	}
	if p.Query != nil {
		f.Query = *p.Query
	}
	if p.Tags != nil {
		f.Tags = slices.Clone(*p.Tags)
		if f.Tags == nil {
			f.Tags = []int64{}
		}
	}
	if p.Duration != nil {
		f.Duration = ClampDuration(*p.Duration)
	}
	if p.Players != nil {
		f.Players = max(*p.Players, 0)
	}
	return f, nil
}
