package model

type MovementPattern string

const (
	PatternPush      MovementPattern = "Push"
	PatternPull      MovementPattern = "Pull"
	PatternSquat     MovementPattern = "Squat"
	PatternLunge     MovementPattern = "Lunge"
	PatternHinge     MovementPattern = "Hinge"
	PatternGait      MovementPattern = "Gait"
	PatternCore      MovementPattern = "Core"
	PatternMobility  MovementPattern = "Mobility"
	PatternIsolation MovementPattern = "Isolation"
	PatternOther     MovementPattern = "Other"
)

type VideoLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Exercise is an immutable catalog entry.
type Exercise struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Mode                []WorkoutMode   `json:"mode"`
	MuscleGroup         []string        `json:"muscleGroup"`
	MovementPattern     MovementPattern `json:"movementPattern"`
	Level               TrainingLevel   `json:"level"`
	DefaultPrescription string          `json:"defaultPrescription"`
	FormSteps           []string        `json:"formSteps"`
	CommonMistakes      []string        `json:"commonMistakes"`
	SafetyNotes         []string        `json:"safetyNotes"`
	VideoLinks          []VideoLink     `json:"videoLinks"`
}

// SupportsMode reports whether the exercise can be done in the given context.
func (e Exercise) SupportsMode(mode WorkoutMode) bool {
	for _, m := range e.Mode {
		if m == mode {
			return true
		}
	}
	return false
}

// PrimaryMuscle is the first listed muscle group.
func (e Exercise) PrimaryMuscle() string {
	if len(e.MuscleGroup) == 0 {
		return "General"
	}
	return e.MuscleGroup[0]
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (e Exercise) Clone() Exercise {
	out := e
	out.Mode = append([]WorkoutMode(nil), e.Mode...)
	out.MuscleGroup = append([]string(nil), e.MuscleGroup...)
	out.FormSteps = append([]string(nil), e.FormSteps...)
	out.CommonMistakes = append([]string(nil), e.CommonMistakes...)
	out.SafetyNotes = append([]string(nil), e.SafetyNotes...)
	out.VideoLinks = append([]VideoLink(nil), e.VideoLinks...)
	return out
}
