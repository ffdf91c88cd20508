package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
	"fit-planner/internal/planner"
)

func first(int) int { return 0 }

func assertCounts(t *testing.T, plan model.DayPlan) {
	t.Helper()
	completed, total := 0, 0
	for _, block := range [][]model.ActivityTask{plan.Morning, plan.Afternoon, plan.Evening} {
		for _, task := range block {
			total++
			if task.Completed {
				completed++
			}
		}
	}
	assert.Equal(t, completed, plan.CompletedCount())
	assert.Equal(t, total, plan.TotalCount())
}

func TestToggle(t *testing.T) {
	plan := planner.NewBuilder(catalog.Default()).Build(monday, homeProfile(), model.DailyLog{})

	require.True(t, planner.Toggle(&plan, "m1"))
	require.True(t, planner.Toggle(&plan, "plank"))
	require.True(t, planner.Toggle(&plan, "e1"))
	assert.Equal(t, 3, plan.CompletedCount())
	assert.Equal(t, []string{"m1", "plank", "e1"}, plan.CompletedIDs())
	assertCounts(t, plan)

	require.True(t, planner.Toggle(&plan, "plank"))
	assert.Equal(t, 2, plan.CompletedCount())
	assertCounts(t, plan)
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	plan := planner.NewBuilder(catalog.Default()).Build(monday, homeProfile(), model.DailyLog{})
	before := plan
	before.Morning = append([]model.ActivityTask(nil), plan.Morning...)

	assert.False(t, planner.Toggle(&plan, "does-not-exist"))
	assert.Equal(t, 0, plan.CompletedCount())
	assert.Equal(t, 11, plan.TotalCount())
	assert.Equal(t, before.Morning, plan.Morning)
}

func TestReconcile(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())
	completed := []string{"m2", "pushups", "e1", "gone"}

	plan := b.Build(monday, homeProfile(), model.DailyLog{})
	planner.Reconcile(&plan, completed)
	again := b.Build(monday, homeProfile(), model.DailyLog{})
	planner.Reconcile(&again, completed)

	assert.Equal(t, []string{"m2", "pushups", "e1"}, plan.CompletedIDs())
	assert.Equal(t, plan, again)

	planner.Reconcile(&plan, nil)
	assert.Equal(t, 0, plan.CompletedCount())
}

func TestSwap(t *testing.T) {
	plan := planner.NewBuilder(catalog.Default()).Build(monday, homeProfile(), model.DailyLog{})
	planner.Toggle(&plan, "pushups")
	swapper := planner.NewSwapper(catalog.Default(), first)

	task, err := swapper.Swap(&plan, "pushups", model.ModeHome)
	require.NoError(t, err)

	// pike-pushups and chair-dips already sit in the block, leaving only the press.
	assert.Equal(t, "overhead-press", task.ID)
	assert.Equal(t, "overhead-press", plan.Afternoon[0].ID)
	assert.Equal(t, "Overhead Press (OHP)", plan.Afternoon[0].Title)
	assert.Equal(t, "Alternative: Push pattern.", plan.Afternoon[0].WhyItMatters)
	assert.Equal(t, model.PatternPush, plan.Afternoon[0].Exercise.MovementPattern)
	assert.False(t, plan.Afternoon[0].Completed)
	assert.Len(t, plan.Afternoon, 5)
	assertCounts(t, plan)
}

func TestSwap_Invariants(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())
	for _, mode := range []model.UserProfile{homeProfile(), gymProfile()} {
		for offset := 0; offset < 7; offset++ {
			plan := b.Build(monday.AddDate(0, 0, offset), mode, model.DailyLog{})
			for _, original := range append([]model.ActivityTask(nil), plan.Afternoon...) {
				swapper := planner.NewSwapper(catalog.Default(), func(n int) int { return n - 1 })
				task, err := swapper.Swap(&plan, original.ID, mode.WorkoutMode)
				if err != nil {
					continue
				}
				assert.NotEqual(t, original.ID, task.ID)
				assert.Equal(t, original.Exercise.MovementPattern, task.Exercise.MovementPattern)
				assert.True(t, task.Exercise.SupportsMode(mode.WorkoutMode))
				assert.False(t, task.Completed)

				seen := map[string]bool{}
				for _, tk := range plan.Afternoon {
					assert.False(t, seen[tk.ID], "duplicate id %s", tk.ID)
					seen[tk.ID] = true
				}
			}
		}
	}
}

func TestSwap_Errors(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())
	swapper := planner.NewSwapper(catalog.Default(), first)

	t.Run("morning task", func(t *testing.T) {
		plan := b.Build(monday, homeProfile(), model.DailyLog{})
		_, err := swapper.Swap(&plan, "m2", model.ModeHome)
		assert.ErrorIs(t, err, planner.ErrInvalidSwapTarget)
	})

	t.Run("task without exercise", func(t *testing.T) {
		plan := b.Build(monday.AddDate(0, 0, 5), homeProfile(), model.DailyLog{})
		_, err := swapper.Swap(&plan, "cardio", model.ModeHome)
		assert.ErrorIs(t, err, planner.ErrInvalidSwapTarget)
	})

	t.Run("unknown task", func(t *testing.T) {
		plan := b.Build(monday, homeProfile(), model.DailyLog{})
		_, err := swapper.Swap(&plan, "nope", model.ModeHome)
		assert.ErrorIs(t, err, planner.ErrInvalidSwapTarget)
	})

	t.Run("no alternatives", func(t *testing.T) {
		plan := b.Build(monday, gymProfile(), model.DailyLog{})
		before := append([]model.ActivityTask(nil), plan.Afternoon...)

		_, err := swapper.Swap(&plan, "chair-dips", model.ModeGym)
		assert.ErrorIs(t, err, planner.ErrNoAlternatives)
		assert.Equal(t, before, plan.Afternoon)
	})
}
