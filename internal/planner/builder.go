package planner

import (
	"fmt"
	"strings"
	"time"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
)

// DateLayout is the ISO calendar date format used for plan and storage keys.
const DateLayout = "2006-01-02"

// movement binds a catalog exercise to an optional title and duration override.
type movement struct {
	id       string
	title    string
	duration string
}

// dayTemplate lists the afternoon block for one weekday. Fixed tasks come first.
type dayTemplate struct {
	fixed []model.ActivityTask
	gym   []movement
	home  []movement
}

var zone2Cardio = model.ActivityTask{
	ID:           "cardio",
	Title:        "Zone 2 Cardio",
	Duration:     "30 min",
	Type:         model.TaskWorkout,
	Description:  "Brisk Walk/Jog",
	Steps:        []string{"Maintain 130bpm"},
	WhyItMatters: "Heart health.",
}

var activeRecovery = model.ActivityTask{
	ID:           "rest",
	Title:        "Active Recovery",
	Duration:     "30 min",
	Type:         model.TaskYoga,
	Description:  "Walk + Foam Roll",
	Steps:        []string{},
	WhyItMatters: "Growth.",
}

var weeklyTemplates = map[time.Weekday]dayTemplate{
	time.Monday: {
		gym: []movement{
			{id: "bench-press"},
			{id: "overhead-press"},
			{id: "chair-dips", title: "Tricep Dips"},
			{id: "plank"},
			{id: "farmer-carry"},
		},
		home: []movement{
			{id: "pushups"},
			{id: "pike-pushups"},
			{id: "chair-dips"},
			{id: "plank"},
			{id: "farmer-carry"},
		},
	},
	time.Tuesday: {
		gym: []movement{
			{id: "front-squat"},
			{id: "rdl"},
			{id: "weighted-step-ups"},
			{id: "tibialis-raise"},
		},
		home: []movement{
			{id: "goblet-squat"},
			{id: "rdl"},
			{id: "weighted-step-ups"},
			{id: "tibialis-raise"},
		},
	},
	time.Thursday: {
		gym: []movement{
			{id: "lat-pulldown"},
			{id: "cable-row"},
			{id: "face-pulls"},
			{id: "trap-bar-deadlift", title: "Trap Bar DL (Axial Loading)"},
		},
		home: []movement{
			{id: "pullups"},
			{id: "dumbbell-row"},
			{id: "chin-tuck", title: "Posture Reset"},
			{id: "rucking", title: "Rucking (Axial Load)"},
		},
	},
	time.Friday: {
		gym: []movement{
			{id: "box-jumps", title: "Box Jumps (Impact)"},
			{id: "trap-bar-deadlift"},
			{id: "jump-rope"},
		},
		home: []movement{
			{id: "broad-jumps", title: "Broad Jumps (Impact)"},
			{id: "pushups"},
			{id: "jump-rope"},
		},
	},
	time.Saturday: {
		fixed: []model.ActivityTask{zone2Cardio},
		gym:   []movement{{id: "dead-bug"}, {id: "plank", title: "Side Planks"}},
		home:  []movement{{id: "dead-bug"}, {id: "plank", title: "Side Planks"}},
	},
}

// Builder derives day plans from the exercise catalog. It holds no mutable state.
type Builder struct {
	catalog *catalog.Catalog
	targets model.DietTargets
}

func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c, targets: DefaultDietTargets}
}

// Build assembles the three task blocks for date. The result depends only on its inputs.
func (b *Builder) Build(date time.Time, profile model.UserProfile, log model.DailyLog) model.DayPlan {
	profile.Normalize()
	score := ClassifyRecovery(log)

	return model.DayPlan{
		Date:          date.Format(DateLayout),
		DayName:       date.Weekday().String(),
		Morning:       b.morningBlock(date, profile),
		Afternoon:     b.workoutBlock(date.Weekday(), profile.WorkoutMode, score),
		Evening:       b.eveningBlock(),
		DietTargets:   b.targets,
		Mode:          profile.WorkoutMode,
		RecoveryScore: score,
	}
}

func (b *Builder) morningBlock(date time.Time, profile model.UserProfile) []model.ActivityTask {
	kegel := kegelRoutines[profile.KegelLevel]
	look := lookmaxingRotation[LookmaxingIndex(date)]

	return []model.ActivityTask{
		{
			ID: "m1", Title: "Hydration + Sunlight", Duration: "2 min", Type: model.TaskHabit,
			Description:  "Drink 500ml water with pinch of salt + lime.",
			Steps:        []string{"Fill glass", "Step outside/balcony"},
			WhyItMatters: "Kickstarts metabolism.",
		},
		{
			ID: "m2", Title: "Morning Mobility", Duration: "10 min", Type: model.TaskYoga,
			Description:  "Spine hygiene.",
			Steps:        []string{"Cat-Cow", "Deep Squat"},
			WhyItMatters: "Injury prevention.",
			Exercise:     b.exercise("cat-cow"),
		},
		{
			ID: "m3", Title: "Box Breathing", Duration: "4 min", Type: model.TaskMeditation,
			Description:  "4-4-4-4 technique.",
			Steps:        []string{"Inhale 4s", "Hold 4s", "Exhale 4s"},
			WhyItMatters: "Cortisol control.",
		},
		{
			ID: "m4", Title: "Kegel: " + kegel.title, Duration: kegel.duration, Type: model.TaskKegel,
			Description:  "Pelvic floor.",
			Steps:        append([]string(nil), kegel.steps...),
			WhyItMatters: "Core stability.",
			Exercise:     b.exercise(kegelExercises[profile.KegelLevel]),
		},
		{
			ID: "m5", Title: "Lookmaxing", Duration: "5 min", Type: model.TaskLookmaxing,
			Description:  look.title,
			Steps:        append([]string(nil), look.steps...),
			WhyItMatters: "Appearance.",
			Exercise:     b.exercise("chin-tuck"),
		},
	}
}

func (b *Builder) workoutBlock(day time.Weekday, mode model.WorkoutMode, score model.RecoveryScore) []model.ActivityTask {
	if score == model.RecoveryLow {
		return []model.ActivityTask{b.workoutTask(movement{id: "cat-cow", title: "Recovery Flow", duration: "30 min"})}
	}

	tpl, ok := weeklyTemplates[day]
	if !ok {
		return []model.ActivityTask{cloneTask(activeRecovery)}
	}

	tasks := make([]model.ActivityTask, 0, len(tpl.fixed)+len(tpl.gym))
	for _, t := range tpl.fixed {
		tasks = append(tasks, cloneTask(t))
	}
	movements := tpl.home
	if mode == model.ModeGym {
		movements = tpl.gym
	}
	for _, m := range movements {
		tasks = append(tasks, b.workoutTask(m))
	}
	return tasks
}

func (b *Builder) eveningBlock() []model.ActivityTask {
	return []model.ActivityTask{
		{
			ID: "e1", Title: "Decompression", Duration: "8 min", Type: model.TaskYoga,
			Description:  "Relax muscles.",
			Steps:        []string{"Child's Pose", "Pigeon"},
			WhyItMatters: "Recovery.",
		},
	}
}

// workoutTask wraps a catalog exercise into a task whose id is the exercise id.
func (b *Builder) workoutTask(m movement) model.ActivityTask {
	ex := b.catalog.Lookup(m.id)
	title := m.title
	if title == "" {
		title = ex.Name
	}
	duration := m.duration
	if duration == "" {
		duration = "Set"
	}
	return model.ActivityTask{
		ID:           ex.ID,
		Title:        title,
		Duration:     duration,
		Type:         model.TaskWorkout,
		Description:  describe(ex),
		Steps:        append([]string(nil), ex.FormSteps...),
		WhyItMatters: fmt.Sprintf("%s pattern for %s.", ex.MovementPattern, ex.PrimaryMuscle()),
		Exercise:     &ex,
	}
}

func (b *Builder) exercise(id string) *model.Exercise {
	ex := b.catalog.Lookup(id)
	return &ex
}

func describe(ex model.Exercise) string {
	return ex.DefaultPrescription + " • " + strings.Join(ex.MuscleGroup, ", ")
}

func cloneTask(t model.ActivityTask) model.ActivityTask {
	t.Steps = append([]string{}, t.Steps...)
	return t
}
