package history

import (
	"math"
	"math/rand"
	"time"

	"fit-planner/internal/model"
)

// Snapshot is the day outcome folded into a history entry.
type Snapshot struct {
	TasksCompleted int
	TotalTasks     int
	Weight         float64
	Mood           int
	SleepHours     float64
	ModeUsed       model.WorkoutMode
	DailyLog       model.DailyLog
}

// Upsert writes snap for date. An existing entry for date is replaced in place;
// otherwise a new entry goes to the front. The input slice is not modified.
func Upsert(entries []model.HistoryEntry, date string, snap Snapshot) []model.HistoryEntry {
	log := snap.DailyLog.Clone()
	entry := model.HistoryEntry{
		Date:           date,
		TasksCompleted: snap.TasksCompleted,
		TotalTasks:     snap.TotalTasks,
		Weight:         snap.Weight,
		Mood:           snap.Mood,
		SleepHours:     snap.SleepHours,
		ModeUsed:       snap.ModeUsed,
		DailyLog:       &log,
	}

	for i := range entries {
		if entries[i].Date == date {
			out := append([]model.HistoryEntry(nil), entries...)
			out[i] = entry
			return out
		}
	}

	out := make([]model.HistoryEntry, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

// Demo seeds a week of plausible entries ending today, newest first.
func Demo(today time.Time, rnd *rand.Rand) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i)
		soreness := rnd.Intn(5)
		energy := rnd.Intn(4) + 6
		mode := model.ModeHome
		if rnd.Float64() > 0.7 {
			mode = model.ModeGym
		}
		out = append(out, model.HistoryEntry{
			Date:           day.Format("2006-01-02"),
			TasksCompleted: rnd.Intn(3) + 10,
			TotalTasks:     15,
			Weight:         round1(60 + rnd.Float64()*0.4 - 0.2),
			Mood:           rnd.Intn(2) + 3,
			SleepHours:     float64(rnd.Intn(2) + 6),
			ModeUsed:       mode,
			DailyLog: &model.DailyLog{
				ProteinConsumed: float64(110 + rnd.Intn(20)),
				WaterConsumed:   round1(3 + rnd.Float64()),
				StepsTaken:      8000 + rnd.Intn(3000),
				Soreness:        &soreness,
				Energy:          &energy,
			},
		})
	}
	return out
}

// Trend summarizes the history collection for progress views.
type Trend struct {
	Days           int
	CurrentWeight  float64
	StartWeight    float64
	WeightChange   float64
	AvgCompletion  float64 // percent of tasks completed across all days
	AvgSleepHours  float64
	GymDays        int
	TotalCompleted int
}

// Summarize computes a trend over entries ordered newest first.
func Summarize(entries []model.HistoryEntry) Trend {
	t := Trend{Days: len(entries)}
	if len(entries) == 0 {
		return t
	}

	t.CurrentWeight = firstWeight(entries, false)
	t.StartWeight = firstWeight(entries, true)
	t.WeightChange = round1(t.CurrentWeight - t.StartWeight)

	var done, total int
	var sleep float64
	for _, e := range entries {
		done += e.TasksCompleted
		total += e.TotalTasks
		sleep += e.SleepHours
		if e.ModeUsed == model.ModeGym {
			t.GymDays++
		}
	}
	t.TotalCompleted = done
	if total > 0 {
		t.AvgCompletion = round1(float64(done) * 100 / float64(total))
	}
	t.AvgSleepHours = round1(sleep / float64(len(entries)))
	return t
}

// firstWeight returns the newest (or oldest) non-zero weight.
func firstWeight(entries []model.HistoryEntry, oldest bool) float64 {
	for i := range entries {
		e := entries[i]
		if oldest {
			e = entries[len(entries)-1-i]
		}
		if e.Weight > 0 {
			return e.Weight
		}
	}
	return 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
