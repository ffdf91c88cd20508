package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
)

func TestLookup_Known(t *testing.T) {
	ex := catalog.Default().Lookup("farmer-carry")

	assert.Equal(t, "Farmer Carry", ex.Name)
	assert.Equal(t, model.PatternGait, ex.MovementPattern)
	assert.Equal(t, "Forearms", ex.PrimaryMuscle())
	assert.True(t, ex.SupportsMode(model.ModeHome))
	assert.True(t, ex.SupportsMode(model.ModeGym))
}

func TestLookup_UnknownYieldsPlaceholder(t *testing.T) {
	ex := catalog.Default().Lookup("single-leg_hip-thrust")

	assert.Equal(t, "single-leg_hip-thrust", ex.ID)
	assert.Equal(t, "Single Leg Hip Thrust", ex.Name)
	assert.Equal(t, []model.WorkoutMode{model.ModeHome, model.ModeGym}, ex.Mode)
	assert.Equal(t, "3 sets x 10 reps", ex.DefaultPrescription)
	assert.Equal(t, model.PatternOther, ex.MovementPattern)
	assert.NotEmpty(t, ex.FormSteps)
	require.Len(t, ex.VideoLinks, 1)
	assert.Contains(t, ex.VideoLinks[0].URL, "search_query=single-leg_hip-thrust")
	assert.False(t, catalog.Default().Has("single-leg_hip-thrust"))
}

func TestLookup_ReturnsCopies(t *testing.T) {
	c := catalog.Default()
	ex := c.Lookup("plank")
	ex.FormSteps[0] = "mutated"
	ex.Mode[0] = model.ModeGym

	fresh := c.Lookup("plank")
	assert.Equal(t, "Forearms on ground.", fresh.FormSteps[0])
	assert.Equal(t, model.ModeHome, fresh.Mode[0])
}

func TestAlternatives(t *testing.T) {
	c := catalog.Default()

	home := c.Alternatives(c.Lookup("pushups"), model.ModeHome)
	var homeIDs []string
	for _, ex := range home {
		homeIDs = append(homeIDs, ex.ID)
	}
	assert.Equal(t, []string{"pike-pushups", "chair-dips", "overhead-press"}, homeIDs)

	gym := c.Alternatives(c.Lookup("bench-press"), model.ModeGym)
	require.Len(t, gym, 1)
	assert.Equal(t, "overhead-press", gym[0].ID)
}

func TestAlternatives_PlaceholderHasNone(t *testing.T) {
	c := catalog.Default()

	assert.Empty(t, c.Alternatives(c.Lookup("mystery-move"), model.ModeHome))
}

func TestNew_KeepsOrderAndReplacesDuplicates(t *testing.T) {
	c := catalog.New([]model.Exercise{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "B"},
		{ID: "a", Name: "Second"},
	})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Name)
	assert.Equal(t, "b", all[1].ID)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Trap Bar Deadlift", catalog.Humanize("trap-bar-deadlift"))
	assert.Equal(t, "Rdl", catalog.Humanize("rdl"))
	assert.Equal(t, "", catalog.Humanize(""))
}

func TestCatalogIntegrity(t *testing.T) {
	for _, ex := range catalog.Default().All() {
		assert.NotEmpty(t, ex.Name, ex.ID)
		assert.NotEmpty(t, ex.Mode, ex.ID)
		assert.NotEmpty(t, ex.MuscleGroup, ex.ID)
		assert.NotEmpty(t, ex.FormSteps, ex.ID)
		assert.NotEmpty(t, ex.VideoLinks, ex.ID)
	}
}

func searchIDs(list []model.Exercise) []string {
	ids := []string{}
	for _, ex := range list {
		ids = append(ids, ex.ID)
	}
	return ids
}

func TestSearch(t *testing.T) {
	c := catalog.Default()

	cases := []struct {
		name   string
		query  string
		mode   model.WorkoutMode
		muscle string
		want   []string
	}{
		{"name substring ignores case", "PUSH-UP", "", "", []string{"pushups", "pike-pushups"}},
		{"muscle filter", "", "", "triceps", []string{"pushups", "pike-pushups", "chair-dips", "bench-press", "overhead-press"}},
		{"mode and muscle", "", model.ModeGym, "Triceps", []string{"bench-press", "overhead-press"}},
		{"mode excludes home-only names", "push-up", model.ModeGym, "", []string{}},
		{"pelvic floor", "", model.ModeHome, "Pelvic Floor", []string{"kegel-basic", "kegel-pulsing", "reverse-kegel", "kegel-bridge"}},
		{"no match", "zzz", "", "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, searchIDs(c.Search(tc.query, tc.mode, tc.muscle)))
		})
	}

	assert.Len(t, c.Search("", "", ""), len(c.All()))
}

func TestMuscles(t *testing.T) {
	muscles := catalog.Default().Muscles()

	require.GreaterOrEqual(t, len(muscles), 3)
	assert.Equal(t, []string{"Calves", "Cardio", "Bone Density"}, muscles[:3])
	assert.Contains(t, muscles, "Pelvic Floor")

	seen := map[string]bool{}
	for _, m := range muscles {
		assert.False(t, seen[m], m)
		seen[m] = true
	}
}
