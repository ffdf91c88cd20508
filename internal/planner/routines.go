package planner

import (
	"time"

	"fit-planner/internal/model"
)

// DefaultDietTargets is the static daily guideline. It does not vary by user, day or recovery.
var DefaultDietTargets = model.DietTargets{
	Calories: 2300,
	Protein:  120,
	Water:    3.5,
	Steps:    9000,
}

type routine struct {
	title    string
	duration string
	steps    []string
}

var kegelRoutines = map[int]routine{
	1: {title: "Beginner Activation", duration: "3 min", steps: []string{"Contract 3s", "Relax 3s", "10 Reps", "Focus on isolation"}},
	2: {title: "Intermediate Endurance", duration: "5 min", steps: []string{"Contract 5s", "Relax 3s", "15 Reps", "Quick flicks: 10 reps"}},
	3: {title: "Advanced Mastery", duration: "7 min", steps: []string{"Contract 10s", "Relax 5s", "10 Reps", "Elevator pulsing", "Movement integration"}},
}

var kegelExercises = map[int]string{
	1: "kegel-basic",
	2: "kegel-pulsing",
	3: "reverse-kegel",
}

var lookmaxingRotation = []routine{
	{title: "Neck & Jawline", steps: []string{"Chin Tucks: 20 reps", "Mewing hold (N-spot)", "Platysma stretch"}},
	{title: "Eye & Face Tension", steps: []string{"Eye circles", "Brow massage", "Cheek puff & relax"}},
	{title: "Posture & Confidence", steps: []string{"Wall angels", "Chest opener", "Shoulder external rotation"}},
}

// LookmaxingIndex picks the appearance routine for a date: day of month modulo rotation size.
func LookmaxingIndex(date time.Time) int {
	return date.Day() % len(lookmaxingRotation)
}

var weeklySplit = map[time.Weekday]string{
	time.Monday:    "Upper Body Strength (Push Focus) + Bone Loading",
	time.Tuesday:   "Lower Body (Squat/Lunge) + Tibialis Work",
	time.Wednesday: "Active Recovery (Yoga + Core + Mobility)",
	time.Thursday:  "Upper Body Strength (Pull Focus) + Posture",
	time.Friday:    "Full Body Functional + High Impact (Bone density)",
	time.Saturday:  "Cardio Zone 2 + Deep Stretch",
	time.Sunday:    "Rest + Meal Prep + Mental Reset",
}

// SplitDay is one row of the weekly structure.
type SplitDay struct {
	Day   time.Weekday
	Focus string
}

// WeeklySplit returns the week's focus, Monday first.
func WeeklySplit() []SplitDay {
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	out := make([]SplitDay, 0, len(days))
	for _, d := range days {
		out = append(out, SplitDay{Day: d, Focus: weeklySplit[d]})
	}
	return out
}

// FocusFor returns the split focus of a weekday.
func FocusFor(day time.Weekday) string {
	return weeklySplit[day]
}
