package planner_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
	"fit-planner/internal/planner"
)

var monday = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func homeProfile() model.UserProfile {
	p := model.DefaultProfile("2026-10-01")
	p.Equipment = model.EquipmentDumbbells
	p.Normalize()
	return p
}

func gymProfile() model.UserProfile {
	p := model.DefaultProfile("2026-10-01")
	p.Equipment = model.EquipmentGym
	p.Normalize()
	return p
}

func ids(tasks []model.ActivityTask) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestBuild_MondayHome(t *testing.T) {
	require.Equal(t, time.Monday, monday.Weekday())
	b := planner.NewBuilder(catalog.Default())

	plan := b.Build(monday, homeProfile(), model.DailyLog{})

	assert.Equal(t, "2026-10-19", plan.Date)
	assert.Equal(t, "Monday", plan.DayName)
	assert.Equal(t, model.RecoveryHigh, plan.RecoveryScore)
	assert.Equal(t, model.ModeHome, plan.Mode)
	assert.Equal(t, []string{"pushups", "pike-pushups", "chair-dips", "plank", "farmer-carry"}, ids(plan.Afternoon))
	assert.Equal(t, []string{"m1", "m2", "m3", "m4", "m5"}, ids(plan.Morning))
	assert.Equal(t, []string{"e1"}, ids(plan.Evening))
	assert.Equal(t, planner.DefaultDietTargets, plan.DietTargets)

	push := plan.Afternoon[0]
	assert.Equal(t, "Standard Push-Up", push.Title)
	assert.Equal(t, "Set", push.Duration)
	assert.Equal(t, model.TaskWorkout, push.Type)
	assert.Equal(t, "3 sets x 10-15 reps • Chest, Triceps, Front Delts", push.Description)
	assert.Equal(t, "Push pattern for Chest.", push.WhyItMatters)
	require.NotNil(t, push.Exercise)
	assert.Equal(t, "pushups", push.Exercise.ID)
}

func TestBuild_MondayGym(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())

	plan := b.Build(monday, gymProfile(), model.DailyLog{})

	assert.Equal(t, model.ModeGym, plan.Mode)
	assert.Equal(t, []string{"bench-press", "overhead-press", "chair-dips", "plank", "farmer-carry"}, ids(plan.Afternoon))
	assert.Equal(t, "Tricep Dips", plan.Afternoon[2].Title)
}

func TestBuild_WeekdayRules(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())

	tests := []struct {
		name    string
		offset  int
		profile model.UserProfile
		want    []string
	}{
		{"tuesday home", 1, homeProfile(), []string{"goblet-squat", "rdl", "weighted-step-ups", "tibialis-raise"}},
		{"tuesday gym", 1, gymProfile(), []string{"front-squat", "rdl", "weighted-step-ups", "tibialis-raise"}},
		{"wednesday", 2, homeProfile(), []string{"rest"}},
		{"thursday home", 3, homeProfile(), []string{"pullups", "dumbbell-row", "chin-tuck", "rucking"}},
		{"thursday gym", 3, gymProfile(), []string{"lat-pulldown", "cable-row", "face-pulls", "trap-bar-deadlift"}},
		{"friday home", 4, homeProfile(), []string{"broad-jumps", "pushups", "jump-rope"}},
		{"friday gym", 4, gymProfile(), []string{"box-jumps", "trap-bar-deadlift", "jump-rope"}},
		{"saturday", 5, gymProfile(), []string{"cardio", "dead-bug", "plank"}},
		{"sunday", 6, gymProfile(), []string{"rest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := b.Build(monday.AddDate(0, 0, tt.offset), tt.profile, model.DailyLog{})
			assert.Equal(t, tt.want, ids(plan.Afternoon))
		})
	}
}

func TestBuild_LowRecoveryOverridesWeekday(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())

	for offset := 0; offset < 7; offset++ {
		for _, log := range []model.DailyLog{{Soreness: intPtr(9)}, {Energy: intPtr(2)}} {
			plan := b.Build(monday.AddDate(0, 0, offset), homeProfile(), log)

			require.Len(t, plan.Afternoon, 1)
			assert.Equal(t, model.RecoveryLow, plan.RecoveryScore)
			assert.Equal(t, "Recovery Flow", plan.Afternoon[0].Title)
			assert.Equal(t, "30 min", plan.Afternoon[0].Duration)
		}
	}
}

func TestBuild_MediumRecoveryKeepsWeekdayRules(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())

	plan := b.Build(monday, homeProfile(), model.DailyLog{Soreness: intPtr(6)})

	assert.Equal(t, model.RecoveryMedium, plan.RecoveryScore)
	assert.Len(t, plan.Afternoon, 5)
}

func TestBuild_KegelLevel(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())

	for level, id := range map[int]string{1: "kegel-basic", 2: "kegel-pulsing", 3: "reverse-kegel"} {
		p := homeProfile()
		p.KegelLevel = level
		plan := b.Build(monday, p, model.DailyLog{})

		kegel := plan.Morning[3]
		assert.Equal(t, model.TaskKegel, kegel.Type)
		require.NotNil(t, kegel.Exercise)
		assert.Equal(t, id, kegel.Exercise.ID)
	}
}

func TestBuild_LookmaxingRotation(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		day := start.AddDate(0, 0, i)
		plan := b.Build(day, homeProfile(), model.DailyLog{})
		again := b.Build(day, gymProfile(), model.DailyLog{})

		assert.Equal(t, plan.Morning[4].Description, again.Morning[4].Description)
		assert.Equal(t, day.Day()%3, planner.LookmaxingIndex(day))
		seen[plan.Morning[4].Description] = true
	}
	assert.Len(t, seen, 3)
}

func TestBuild_EquipmentDrivesMode(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())
	p := homeProfile()
	p.Equipment = model.EquipmentGym
	p.WorkoutMode = model.ModeHome

	plan := b.Build(monday, p, model.DailyLog{})

	assert.Equal(t, model.ModeGym, plan.Mode)
}

func TestBuild_Deterministic(t *testing.T) {
	b := planner.NewBuilder(catalog.Default())
	log := model.DailyLog{Soreness: intPtr(5), Energy: intPtr(7)}

	first, err := json.Marshal(b.Build(monday, homeProfile(), log))
	require.NoError(t, err)
	second, err := json.Marshal(b.Build(monday, homeProfile(), log))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestWeeklySplit(t *testing.T) {
	split := planner.WeeklySplit()

	require.Len(t, split, 7)
	assert.Equal(t, time.Monday, split[0].Day)
	assert.Equal(t, time.Sunday, split[6].Day)
	for _, d := range split {
		assert.NotEmpty(t, d.Focus)
	}
}
