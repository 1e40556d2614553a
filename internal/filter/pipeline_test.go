package filter

import (
	"testing"

	"boardshelf/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func titles(games []models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Title
	}
	return out
}

func fixture() []models.Game {
	return []models.Game{
		{ID: 1, Title: "Catan", MinPlayers: intp(3), MaxPlayers: intp(4), Duration: &models.Range{60, 120}, Tags: []int64{10}},
		{ID: 2, Title: "Azul", MinPlayers: intp(2), MaxPlayers: intp(4), Duration: &models.Range{30, 45}, Tags: []int64{11}},
		{ID: 3, Title: "Codenames", MinPlayers: intp(4), MaxPlayers: intp(8), Duration: &models.Range{15, 30}, Tags: []int64{12, 11}},
		{ID: 4, Title: "Twilight Imperium", MinPlayers: intp(3), MaxPlayers: intp(6), Duration: &models.Range{240, 240}},
		{ID: 5, Title: "Mystery Box"},
	}
}

func TestSortStage_TitleAscending(t *testing.T) {
	got := SortStage(fixture(), Default())
	assert.Equal(t, []string{"Azul", "Catan", "Codenames", "Mystery Box", "Twilight Imperium"}, titles(got))
}

func TestSortStage_TitleDescending(t *testing.T) {
	f := Default()
	f.Sort = TitleDesc
	got := SortStage(fixture(), f)
	assert.Equal(t, []string{"Twilight Imperium", "Mystery Box", "Codenames", "Catan", "Azul"}, titles(got))
}

func TestSortStage_TitleIsCaseSensitive(t *testing.T) {
	games := []models.Game{{ID: 1, Title: "azul"}, {ID: 2, Title: "Zendo"}}
	got := SortStage(games, Default())
	assert.Equal(t, []string{"Zendo", "azul"}, titles(got))
}

func TestSortStage_Stable(t *testing.T) {
	games := []models.Game{
		{ID: 1, Title: "Risk"},
		{ID: 2, Title: "Azul"},
		{ID: 3, Title: "Risk"},
		{ID: 4, Title: "Risk"},
	}
	got := SortStage(games, Default())
	require.Len(t, got, 4)
	assert.Equal(t, []int64{2, 1, 3, 4}, []int64{got[0].ID, got[1].ID, got[2].ID, got[3].ID})

	f := Default()
	f.Sort = TitleDesc
	got = SortStage(games, f)
	assert.Equal(t, []int64{1, 3, 4, 2}, []int64{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestSortStage_DurationMissingSortsLast(t *testing.T) {
	f := Default()
	f.Sort = DurationAsc
	assert.Equal(t, []string{"Codenames", "Azul", "Catan", "Twilight Imperium", "Mystery Box"}, titles(SortStage(fixture(), f)))

	f.Sort = DurationDesc
	assert.Equal(t, []string{"Twilight Imperium", "Catan", "Azul", "Codenames", "Mystery Box"}, titles(SortStage(fixture(), f)))
}

func TestQueryStage(t *testing.T) {
	f := Default()
	f.Query = "CA"
	got := Apply(fixture(), f)
	assert.Equal(t, []string{"Catan"}, titles(got))

	f.Query = "o"
	got = Apply(fixture(), f)
	assert.Equal(t, []string{"Codenames", "Mystery Box"}, titles(got))
}

func TestPlayersStage(t *testing.T) {
	f := Default()
	f.Players = 2
	assert.Equal(t, []string{"Azul"}, titles(Apply(fixture(), f)))

	f.Players = 4
	assert.Equal(t, []string{"Azul", "Catan", "Codenames", "Twilight Imperium"}, titles(Apply(fixture(), f)))
}

func TestPlayersStage_MissingBoundExcluded(t *testing.T) {
	games := []models.Game{{ID: 1, Title: "Half", MinPlayers: intp(1)}}
	f := Default()
	f.Players = 1
	assert.Empty(t, Apply(games, f))
}

func TestDurationStage_Boundaries(t *testing.T) {
	games := []models.Game{{ID: 1, Title: "Azul", Duration: &models.Range{30, 60}}}

	f := Default()
	assert.Len(t, Apply(games, f), 1)

	f.Duration = models.Range{0, 45}
	assert.Empty(t, Apply(games, f))

	f.Duration = models.Range{30, 60}
	assert.Len(t, Apply(games, f), 1)

	f.Duration = models.Range{31, models.MaxDuration}
	assert.Empty(t, Apply(games, f))
}

func TestDurationStage_MissingDurationExcludedWhenActive(t *testing.T) {
	f := Default()
	f.Duration = models.Range{0, 200}
	got := Apply(fixture(), f)
	assert.NotContains(t, titles(got), "Mystery Box")
	assert.NotContains(t, titles(got), "Twilight Imperium")
}

func TestTagsStage_AnyTagMatches(t *testing.T) {
	f := Default()
	f.Tags = []int64{10, 12}
	assert.Equal(t, []string{"Catan", "Codenames"}, titles(Apply(fixture(), f)))

	f.Tags = []int64{99}
	assert.Empty(t, Apply(fixture(), f))
}

func TestStagesNeverGrowTheList(t *testing.T) {
	filters := []Filter{Default()}
	for _, mutate := range []func(*Filter){
		func(f *Filter) { f.Query = "a" },
		func(f *Filter) { f.Players = 3 },
		func(f *Filter) { f.Duration = models.Range{20, 90} },
		func(f *Filter) { f.Tags = []int64{11} },
	} {
		f := Default()
		mutate(&f)
		filters = append(filters, f)
	}

	for _, f := range filters {
		base := SortStage(fixture(), f)
		for _, stage := range Stages[1:] {
			assert.LessOrEqual(t, len(stage(base, f)), len(base))
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	f := Default()
	f.Sort = TitleDesc
	out := Apply(in, f)
	out[0].Title = "changed"
	assert.Equal(t, "Catan", in[0].Title)
}
