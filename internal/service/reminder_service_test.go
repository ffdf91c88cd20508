package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
	"fit-planner/internal/planner"
	"fit-planner/internal/service"
)

func mondayPlan() model.DayPlan {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	return planner.NewBuilder(catalog.Default()).Build(date, model.DefaultProfile("2026-10-19"), model.DailyLog{})
}

func TestReminderService_DaySummary(t *testing.T) {
	plan := mondayPlan()
	planner.Toggle(&plan, "m1")
	text := service.NewReminderService().DaySummary(service.View{
		Plan:      plan,
		Log:       model.DailyLog{ProteinConsumed: 40, StepsTaken: 1200},
		Completed: plan.CompletedCount(),
		Total:     plan.TotalCount(),
	})

	assert.Contains(t, text, "Monday")
	assert.Contains(t, text, "1/11")
	assert.Contains(t, text, "✅ Hydration")
	assert.Contains(t, text, "<code>pushups</code>")
	assert.Contains(t, text, "Protein: 40/120 g")
	assert.Contains(t, text, "Steps: 1200/9000")
	assert.Contains(t, text, "/soreness")
}

func TestReminderService_DaySummaryHidesCheckInHint(t *testing.T) {
	plan := mondayPlan()
	s, e := 3, 8
	text := service.NewReminderService().DaySummary(service.View{
		Plan: plan,
		Log:  model.DailyLog{Soreness: &s, Energy: &e},
	})
	assert.NotContains(t, text, "/soreness")
}

func TestReminderService_ShareText(t *testing.T) {
	text := service.NewReminderService().ShareText(mondayPlan())

	assert.True(t, strings.HasPrefix(text, "*TODAY PLAN*"))
	assert.Contains(t, text, "Mode: HOME")
	assert.Contains(t, text, "Standard Push-Up: ")
	assert.Contains(t, text, "Demo: https://")
	assert.Contains(t, text, "Cal: 2300 | Pro: 120g | H2O: 3.5L | Steps: 9000")
	assert.NotContains(t, text, "<b>")
}

func TestReminderService_ProgressSummary(t *testing.T) {
	r := service.NewReminderService()
	assert.Contains(t, r.ProgressSummary(nil, 5), "no history yet")

	entries := []model.HistoryEntry{
		{Date: "2026-10-19", TasksCompleted: 8, TotalTasks: 10, Weight: 71, SleepHours: 7, ModeUsed: model.ModeGym},
		{Date: "2026-10-18", TasksCompleted: 2, TotalTasks: 10, Weight: 72, SleepHours: 8, ModeUsed: model.ModeHome},
	}
	text := r.ProgressSummary(entries, 1)
	assert.Contains(t, text, "Weight change: -1.0 kg")
	assert.Contains(t, text, "Average completion: 50.0%")
	assert.Contains(t, text, "Gym days: 1")
	assert.Contains(t, text, "2026-10-19 · 8/10")
	assert.NotContains(t, text, "2026-10-18 · 2/10")
}

func TestReminderService_MealSummary(t *testing.T) {
	r := service.NewReminderService()
	profile := model.DefaultProfile("2026-10-19")

	text := r.MealSummary(profile)
	assert.Contains(t, text, "Chicken Curry &amp; Rice")
	assert.NotContains(t, text, "💸")

	profile.DietType = "Veg"
	profile.DietBudget = "Low Cost"
	text = r.MealSummary(profile)
	assert.Contains(t, text, "Soya Chunks")
	assert.Contains(t, text, "Total: 1850 kcal · 100g protein")
	assert.Contains(t, text, "💸")
}

func TestReminderService_ExerciseDetail(t *testing.T) {
	r := service.NewReminderService()

	text := r.ExerciseDetail(catalog.Default().Lookup("pushups"))
	assert.Contains(t, text, "<b>Form</b>")
	assert.Contains(t, text, "1. ")

	text = r.ExerciseDetail(catalog.Default().Lookup("mystery-move"))
	assert.Contains(t, text, "Mystery Move")
	assert.Contains(t, text, "search_query=mystery-move+exercise")
}

func TestReminderService_WeekSummary(t *testing.T) {
	text := service.NewReminderService().WeekSummary()
	assert.True(t, strings.Index(text, "Monday") < strings.Index(text, "Sunday"))
}

func TestReminderService_LibrarySummary(t *testing.T) {
	reminder := service.NewReminderService()

	text := reminder.LibrarySummary(catalog.Default().Search("", model.ModeGym, "Triceps"))
	assert.True(t, strings.HasPrefix(text, "📚 <b>Exercise library</b> · 2 found"))
	assert.Contains(t, text, "<code>bench-press</code>")
	assert.Contains(t, text, "<code>overhead-press</code>")

	assert.Contains(t, reminder.LibrarySummary(nil), "No exercises match")
}
