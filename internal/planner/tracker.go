package planner

import (
	"errors"
	"fmt"
	"math/rand"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
)

var (
	// ErrInvalidSwapTarget means the task is not in the workout block or has no exercise.
	ErrInvalidSwapTarget = errors.New("cannot swap this item")
	// ErrNoAlternatives means no other exercise shares the pattern in the current mode.
	ErrNoAlternatives = errors.New("no suitable alternatives found for this mode")
)

// Chooser picks an index in [0, n). Tests replace it with a fixed choice.
type Chooser func(n int) int

// RandomChooser picks uniformly at random.
func RandomChooser(n int) int {
	return rand.Intn(n)
}

// Reconcile marks exactly the tasks whose ids are in completed as done.
func Reconcile(plan *model.DayPlan, completed []string) {
	done := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		done[id] = struct{}{}
	}
	for _, block := range plan.Blocks() {
		for i := range block {
			_, ok := done[block[i].ID]
			block[i].Completed = ok
		}
	}
}

// Toggle flips completion of the task with taskID in whichever block holds it.
// It reports false when nothing matched; the plan is then unchanged.
func Toggle(plan *model.DayPlan, taskID string) bool {
	for _, block := range plan.Blocks() {
		for i := range block {
			if block[i].ID == taskID {
				block[i].Completed = !block[i].Completed
				return true
			}
		}
	}
	return false
}

// Swapper replaces workout-block exercises with same-pattern alternatives.
type Swapper struct {
	catalog *catalog.Catalog
	choose  Chooser
}

func NewSwapper(c *catalog.Catalog, choose Chooser) *Swapper {
	if choose == nil {
		choose = RandomChooser
	}
	return &Swapper{catalog: c, choose: choose}
}

// Swap replaces the afternoon task taskID with another exercise of the same movement
// pattern valid for mode. On error the plan is left untouched.
func (s *Swapper) Swap(plan *model.DayPlan, taskID string, mode model.WorkoutMode) (model.ActivityTask, error) {
	idx := -1
	for i, t := range plan.Afternoon {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 || plan.Afternoon[idx].Exercise == nil {
		return model.ActivityTask{}, fmt.Errorf("swap %q: %w", taskID, ErrInvalidSwapTarget)
	}

	current := *plan.Afternoon[idx].Exercise
	taken := make(map[string]struct{}, len(plan.Afternoon))
	for i, t := range plan.Afternoon {
		if i != idx {
			taken[t.ID] = struct{}{}
		}
	}

	var candidates []model.Exercise
	for _, ex := range s.catalog.Alternatives(current, mode) {
		if _, clash := taken[ex.ID]; clash {
			continue
		}
		candidates = append(candidates, ex)
	}
	if len(candidates) == 0 {
		return model.ActivityTask{}, fmt.Errorf("swap %q: %w", taskID, ErrNoAlternatives)
	}

	next := candidates[s.choose(len(candidates))]
	task := plan.Afternoon[idx]
	task.ID = next.ID
	task.Title = next.Name
	task.Description = describe(next)
	task.Steps = append([]string(nil), next.FormSteps...)
	task.WhyItMatters = fmt.Sprintf("Alternative: %s pattern.", next.MovementPattern)
	task.Exercise = &next
	task.Completed = false

	plan.Afternoon[idx] = task
	return task, nil
}
