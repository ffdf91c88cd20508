package model

// HistoryEntry is the folded outcome of one calendar date. Date is the natural key.
type HistoryEntry struct {
	Date           string      `json:"date"`
	TasksCompleted int         `json:"tasksCompleted"`
	TotalTasks     int         `json:"totalTasks"`
	Weight         float64     `json:"weight,omitempty"`
	Mood           int         `json:"mood"`
	SleepHours     float64     `json:"sleepHours"`
	Notes          string      `json:"notes,omitempty"`
	ModeUsed       WorkoutMode `json:"modeUsed,omitempty"`
	DailyLog       *DailyLog   `json:"dailyLog,omitempty"`
}
