package model

type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "Beginner"
	LevelIntermediate TrainingLevel = "Intermediate"
	LevelAdvanced     TrainingLevel = "Advanced"
)

type Equipment string

const (
	EquipmentBodyweight Equipment = "Bodyweight"
	EquipmentDumbbells  Equipment = "Dumbbells"
	EquipmentGym        Equipment = "Gym"
)

// WorkoutMode is the equipment context used to filter exercise variants.
type WorkoutMode string

const (
	ModeHome WorkoutMode = "Home"
	ModeGym  WorkoutMode = "Gym"
)

// ModeForEquipment returns Gym only for full gym access.
func ModeForEquipment(e Equipment) WorkoutMode {
	if e == EquipmentGym {
		return ModeGym
	}
	return ModeHome
}

// UserProfile stores the physiological and equipment context of the planner user.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Height        string        `json:"height"`
	Weight        float64       `json:"weight"`
	BMI           float64       `json:"bmi"`
	BodyFat       float64       `json:"bodyFat"`
	MuscleRate    float64       `json:"muscleRate"`
	BoneMass      float64       `json:"boneMass"`
	BMR           float64       `json:"bmr"`
	VisceralFat   float64       `json:"visceralFat"`
	TrainingLevel TrainingLevel `json:"trainingLevel"`
	Equipment     Equipment     `json:"equipment"`
	DietType      string        `json:"dietType"`
	DietBudget    string        `json:"dietBudget"`
	TimeAvailable int           `json:"timeAvailable"`
	WorkoutMode   WorkoutMode   `json:"workoutMode"`
	InjuryFlags   []string      `json:"injuryFlags,omitempty"`
	KegelLevel    int           `json:"kegelLevel"`
	StartDate     string        `json:"startDate"`
	PublicPlanURL string        `json:"publicPlanUrl,omitempty"`
}

// Normalize enforces the equipment/mode invariant and clamps the kegel level into 1..3.
func (p *UserProfile) Normalize() {
	p.WorkoutMode = ModeForEquipment(p.Equipment)
	if p.KegelLevel < 1 {
		p.KegelLevel = 1
	}
	if p.KegelLevel > 3 {
		p.KegelLevel = 3
	}
}

// HasInjury reports whether the given body area is flagged.
func (p UserProfile) HasInjury(area string) bool {
	for _, flag := range p.InjuryFlags {
		if flag == area {
			return true
		}
	}
	return false
}

// Body areas accepted in InjuryFlags.
const (
	InjuryKnee     = "Knee"
	InjuryBack     = "Back"
	InjuryShoulder = "Shoulder"
)

// ToggleInjury flags area, or clears it when already flagged.
func (p *UserProfile) ToggleInjury(area string) {
	if !p.HasInjury(area) {
		p.InjuryFlags = append(p.InjuryFlags, area)
		return
	}
	kept := p.InjuryFlags[:0]
	for _, flag := range p.InjuryFlags {
		if flag != area {
			kept = append(kept, flag)
		}
	}
	p.InjuryFlags = kept
}

// DefaultProfile is used on first run, before any settings were saved.
func DefaultProfile(startDate string) UserProfile {
	return UserProfile{
		Name:          "Athlete",
		Age:           24,
		Height:        "5'7\"",
		Weight:        60,
		BMI:           21,
		BodyFat:       19.2,
		MuscleRate:    44.3,
		BoneMass:      2.5,
		BMR:           1346,
		VisceralFat:   6,
		TrainingLevel: LevelIntermediate,
		Equipment:     EquipmentDumbbells,
		DietType:      "Non-veg",
		DietBudget:    "Normal",
		TimeAvailable: 60,
		WorkoutMode:   ModeHome,
		KegelLevel:    1,
		StartDate:     startDate,
	}
}
