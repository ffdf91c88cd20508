package model

type TaskType string

const (
	TaskWorkout    TaskType = "workout"
	TaskYoga       TaskType = "yoga"
	TaskMeditation TaskType = "meditation"
	TaskKegel      TaskType = "kegel"
	TaskLookmaxing TaskType = "lookmaxing"
	TaskDiet       TaskType = "diet"
	TaskHabit      TaskType = "habit"
)

type RecoveryScore string

const (
	RecoveryLow    RecoveryScore = "Low"
	RecoveryMedium RecoveryScore = "Medium"
	RecoveryHigh   RecoveryScore = "High"
)

// ActivityTask is a single timed item of a day plan.
type ActivityTask struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Duration     string    `json:"duration"`
	Type         TaskType  `json:"type"`
	Description  string    `json:"description"`
	Steps        []string  `json:"steps"`
	WhyItMatters string    `json:"whyItMatters"`
	Completed    bool      `json:"completed"`
	Exercise     *Exercise `json:"exerciseDetails,omitempty"`
}

// DietTargets is the static daily nutrition guideline.
type DietTargets struct {
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Water    float64 `json:"water"`
	Steps    int     `json:"steps"`
}

// DayPlan is the full set of tasks generated for one calendar date.
type DayPlan struct {
	Date          string         `json:"date"`
	DayName       string         `json:"dayName"`
	Morning       []ActivityTask `json:"morning"`
	Afternoon     []ActivityTask `json:"afternoon"`
	Evening       []ActivityTask `json:"evening"`
	DietTargets   DietTargets    `json:"dietTargets"`
	Mode          WorkoutMode    `json:"mode"`
	RecoveryScore RecoveryScore  `json:"recoveryScore"`
}

// Blocks returns the three task blocks in order. The slices alias the plan.
func (p *DayPlan) Blocks() [][]ActivityTask {
	return [][]ActivityTask{p.Morning, p.Afternoon, p.Evening}
}

// CompletedCount is always derived from the blocks.
func (p DayPlan) CompletedCount() int {
	n := 0
	for _, block := range p.Blocks() {
		for _, t := range block {
			if t.Completed {
				n++
			}
		}
	}
	return n
}

func (p DayPlan) TotalCount() int {
	return len(p.Morning) + len(p.Afternoon) + len(p.Evening)
}

// CompletedIDs lists ids of completed tasks in block order.
func (p DayPlan) CompletedIDs() []string {
	ids := []string{}
	for _, block := range p.Blocks() {
		for _, t := range block {
			if t.Completed {
				ids = append(ids, t.ID)
			}
		}
	}
	return ids
}
