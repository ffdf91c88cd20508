package history_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/history"
	"fit-planner/internal/model"
)

func TestUpsert_InsertsNewestFirst(t *testing.T) {
	var entries []model.HistoryEntry

	entries = history.Upsert(entries, "2026-10-18", history.Snapshot{TasksCompleted: 3, TotalTasks: 11})
	entries = history.Upsert(entries, "2026-10-19", history.Snapshot{TasksCompleted: 5, TotalTasks: 11})

	require.Len(t, entries, 2)
	assert.Equal(t, "2026-10-19", entries[0].Date)
	assert.Equal(t, "2026-10-18", entries[1].Date)
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	entries := []model.HistoryEntry{
		{Date: "2026-10-19", TasksCompleted: 1},
		{Date: "2026-10-18", TasksCompleted: 2},
		{Date: "2026-10-17", TasksCompleted: 3},
	}

	out := history.Upsert(entries, "2026-10-18", history.Snapshot{TasksCompleted: 9, TotalTasks: 11, ModeUsed: model.ModeGym})

	require.Len(t, out, 3)
	assert.Equal(t, "2026-10-18", out[1].Date)
	assert.Equal(t, 9, out[1].TasksCompleted)
	assert.Equal(t, model.ModeGym, out[1].ModeUsed)
	assert.Equal(t, 2, entries[1].TasksCompleted, "input must not be modified")
}

func TestUpsert_LastSnapshotWins(t *testing.T) {
	var entries []model.HistoryEntry
	soreness := 3

	for i := 0; i < 5; i++ {
		entries = history.Upsert(entries, "2026-10-19", history.Snapshot{
			TasksCompleted: i,
			TotalTasks:     11,
			Weight:         60.5,
			Mood:           3,
			SleepHours:     7,
			ModeUsed:       model.ModeHome,
			DailyLog:       model.DailyLog{Soreness: &soreness, StepsTaken: i * 1000},
		})
	}

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, 4, e.TasksCompleted)
	assert.Equal(t, 11, e.TotalTasks)
	assert.Equal(t, 60.5, e.Weight)
	require.NotNil(t, e.DailyLog)
	assert.Equal(t, 4000, e.DailyLog.StepsTaken)

	soreness = 9
	assert.Equal(t, 3, *e.DailyLog.Soreness, "entry must not alias the caller's log")
}

func TestUpsert_Idempotent(t *testing.T) {
	snap := history.Snapshot{TasksCompleted: 2, TotalTasks: 11, Mood: 3, SleepHours: 7}

	once := history.Upsert(nil, "2026-10-19", snap)
	twice := history.Upsert(once, "2026-10-19", snap)

	assert.Equal(t, once, twice)
}

func TestDemo(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	entries := history.Demo(today, rand.New(rand.NewSource(1)))

	require.Len(t, entries, 7)
	assert.Equal(t, "2026-10-19", entries[0].Date)
	assert.Equal(t, "2026-10-13", entries[6].Date)
	for _, e := range entries {
		assert.Equal(t, 15, e.TotalTasks)
		assert.GreaterOrEqual(t, e.TasksCompleted, 10)
		assert.LessOrEqual(t, e.TasksCompleted, 12)
		require.NotNil(t, e.DailyLog)
		require.NotNil(t, e.DailyLog.Energy)
		assert.GreaterOrEqual(t, *e.DailyLog.Energy, 6)
	}
}

func TestSummarize(t *testing.T) {
	entries := []model.HistoryEntry{
		{Date: "2026-10-19", TasksCompleted: 8, TotalTasks: 10, Weight: 61.2, SleepHours: 8, ModeUsed: model.ModeGym},
		{Date: "2026-10-18", TasksCompleted: 5, TotalTasks: 10, SleepHours: 6, ModeUsed: model.ModeHome},
		{Date: "2026-10-17", TasksCompleted: 7, TotalTasks: 10, Weight: 60, SleepHours: 7, ModeUsed: model.ModeGym},
	}

	trend := history.Summarize(entries)

	assert.Equal(t, 3, trend.Days)
	assert.Equal(t, 61.2, trend.CurrentWeight)
	assert.Equal(t, 60.0, trend.StartWeight)
	assert.Equal(t, 1.2, trend.WeightChange)
	assert.Equal(t, 66.7, trend.AvgCompletion)
	assert.Equal(t, 7.0, trend.AvgSleepHours)
	assert.Equal(t, 2, trend.GymDays)
	assert.Equal(t, 20, trend.TotalCompleted)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, history.Trend{}, history.Summarize(nil))
}
