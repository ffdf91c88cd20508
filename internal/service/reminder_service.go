package service

import (
	"fmt"
	"html"
	"strings"

	"fit-planner/internal/history"
	"fit-planner/internal/model"
	"fit-planner/internal/nutrition"
	"fit-planner/internal/planner"
)

// ReminderService renders plans and progress as Telegram HTML. It only reads
// the values it is given.
type ReminderService struct{}

func NewReminderService() *ReminderService {
	return &ReminderService{}
}

var recoveryIcons = map[model.RecoveryScore]string{
	model.RecoveryLow:    "🔴",
	model.RecoveryMedium: "🟡",
	model.RecoveryHigh:   "🟢",
}

// DaySummary renders the full day plan with progress and intake counters.
func (s *ReminderService) DaySummary(v View) string {
	plan := v.Plan
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📋 <b>%s</b> · %s\n", plan.DayName, plan.Date))
	b.WriteString(fmt.Sprintf("%s Recovery: <b>%s</b> · Mode: <b>%s</b>\n", recoveryIcons[plan.RecoveryScore], plan.RecoveryScore, plan.Mode))
	b.WriteString(fmt.Sprintf("✅ Progress: %d/%d (%d%%)\n", v.Completed, v.Total, percent(v.Completed, v.Total)))

	writeBlock(&b, "🌅 Morning", plan.Morning)
	writeBlock(&b, "🏋️ Workout", plan.Afternoon)
	writeBlock(&b, "🌙 Evening", plan.Evening)

	t := plan.DietTargets
	b.WriteString("\n🍽 <b>Targets</b>\n")
	b.WriteString(fmt.Sprintf("• Protein: %.0f/%d g\n", v.Log.ProteinConsumed, t.Protein))
	b.WriteString(fmt.Sprintf("• Water: %.2f/%.1f L\n", v.Log.WaterConsumed, t.Water))
	b.WriteString(fmt.Sprintf("• Steps: %d/%d\n", v.Log.StepsTaken, t.Steps))
	b.WriteString(fmt.Sprintf("• Calories: %d kcal\n", t.Calories))

	if v.Log.Soreness == nil || v.Log.Energy == nil {
		b.WriteString("\n💬 Check in with /soreness &lt;0-10&gt; and /energy &lt;0-10&gt;.")
	}
	return strings.TrimSpace(b.String())
}

// ShareText renders a plain-text plan for sharing outside the bot.
func (s *ReminderService) ShareText(plan model.DayPlan) string {
	var b strings.Builder
	b.WriteString("*TODAY PLAN* ✅\n")
	b.WriteString(fmt.Sprintf("Date: %s\n", plan.Date))
	b.WriteString(fmt.Sprintf("Mode: %s\n\n", strings.ToUpper(string(plan.Mode))))

	b.WriteString("🌅 *Morning*\n")
	for _, t := range plan.Morning {
		b.WriteString(fmt.Sprintf("• %s (%s)\n", t.Title, t.Duration))
	}

	b.WriteString("\n🏋️ *Afternoon (Workout)*\n")
	for _, t := range plan.Afternoon {
		if t.Type == model.TaskWorkout && t.Exercise != nil {
			b.WriteString(fmt.Sprintf("• %s: %s\n", t.Title, t.Exercise.DefaultPrescription))
			if len(t.Exercise.VideoLinks) > 0 {
				b.WriteString(fmt.Sprintf("  Demo: %s\n", t.Exercise.VideoLinks[0].URL))
			}
			continue
		}
		b.WriteString(fmt.Sprintf("• %s (%s)\n", t.Title, t.Duration))
	}

	b.WriteString("\n🌙 *Evening*\n")
	for _, t := range plan.Evening {
		b.WriteString(fmt.Sprintf("• %s (%s)\n", t.Title, t.Duration))
	}

	d := plan.DietTargets
	b.WriteString("\n🍽 *Diet Targets*\n")
	b.WriteString(fmt.Sprintf("Cal: %d | Pro: %dg | H2O: %gL | Steps: %d\n", d.Calories, d.Protein, d.Water, d.Steps))
	return b.String()
}

// ProgressSummary renders the history trend and the latest days.
func (s *ReminderService) ProgressSummary(entries []model.HistoryEntry, limit int) string {
	trend := history.Summarize(entries)
	var b strings.Builder

	b.WriteString("📈 <b>Progress</b>\n")
	if trend.Days == 0 {
		b.WriteString("— no history yet")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("• Days logged: %d\n", trend.Days))
	b.WriteString(fmt.Sprintf("• Weight change: %+.1f kg (now %.1f kg)\n", trend.WeightChange, trend.CurrentWeight))
	b.WriteString(fmt.Sprintf("• Average completion: %.1f%%\n", trend.AvgCompletion))
	b.WriteString(fmt.Sprintf("• Average sleep: %.1f h\n", trend.AvgSleepHours))
	b.WriteString(fmt.Sprintf("• Gym days: %d\n\n", trend.GymDays))

	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	for _, e := range entries[:limit] {
		b.WriteString(fmt.Sprintf("%s · %d/%d", e.Date, e.TasksCompleted, e.TotalTasks))
		if e.ModeUsed != "" {
			b.WriteString(fmt.Sprintf(" · %s", e.ModeUsed))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

// WeekSummary renders the weekly training split.
func (s *ReminderService) WeekSummary() string {
	var b strings.Builder
	b.WriteString("🗓 <b>Weekly structure</b>\n")
	for _, d := range planner.WeeklySplit() {
		b.WriteString(fmt.Sprintf("• <b>%s</b>: %s\n", d.Day, html.EscapeString(d.Focus)))
	}
	return strings.TrimSpace(b.String())
}

// MealSummary renders the meal template for the profile's diet.
func (s *ReminderService) MealSummary(profile model.UserProfile) string {
	meals := nutrition.DayMeals(profile.DietType)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🥗 <b>Meal plan</b> · %s\n", html.EscapeString(profile.DietType)))
	for _, m := range meals {
		b.WriteString(fmt.Sprintf("• <b>%s</b>: %s (%d kcal, %dg protein)\n", m.Slot, html.EscapeString(m.Name), m.Calories, m.Protein))
		b.WriteString(fmt.Sprintf("   %s\n", html.EscapeString(strings.Join(m.Ingredients, ", "))))
	}
	calories, protein := nutrition.Totals(meals)
	b.WriteString(fmt.Sprintf("Total: %d kcal · %dg protein\n", calories, protein))

	if adj, ok := nutrition.LowCostAdjustment(profile.DietType, profile.DietBudget); ok {
		b.WriteString(fmt.Sprintf("💸 Swap: %s\n💸 Save: %s\n", html.EscapeString(adj.Swap), html.EscapeString(adj.Save)))
	}
	return strings.TrimSpace(b.String())
}

// ExerciseDetail renders form cues and safety notes for one exercise.
func (s *ReminderService) ExerciseDetail(ex model.Exercise) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏋️ <b>%s</b>\n", html.EscapeString(ex.Name)))
	b.WriteString(fmt.Sprintf("<i>%s · %s · %s</i>\n", ex.MovementPattern, ex.Level, html.EscapeString(strings.Join(ex.MuscleGroup, ", "))))
	b.WriteString(fmt.Sprintf("Prescription: %s\n", html.EscapeString(ex.DefaultPrescription)))

	writeList(&b, "Form", ex.FormSteps, true)
	writeList(&b, "Common mistakes", ex.CommonMistakes, false)
	writeList(&b, "Safety", ex.SafetyNotes, false)

	for _, v := range ex.VideoLinks {
		b.WriteString(fmt.Sprintf("\n▶️ <a href=\"%s\">%s</a>", html.EscapeString(v.URL), html.EscapeString(v.Title)))
	}
	return strings.TrimSpace(b.String())
}

// LibrarySummary lists exercise names with their ids, as shown by /exercises.
func (s *ReminderService) LibrarySummary(list []model.Exercise) string {
	if len(list) == 0 {
		return "📚 No exercises match. Try /exercises, /exercises gym or /exercises triceps."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📚 <b>Exercise library</b> · %d found\n", len(list)))
	for _, ex := range list {
		b.WriteString(fmt.Sprintf("• %s <code>%s</code>\n", html.EscapeString(ex.Name), html.EscapeString(ex.ID)))
	}
	b.WriteString("\nTap 📖 for form cues.")
	return b.String()
}

func writeBlock(b *strings.Builder, title string, tasks []model.ActivityTask) {
	b.WriteString(fmt.Sprintf("\n<b>%s</b>\n", title))
	for _, t := range tasks {
		mark := "⬜"
		if t.Completed {
			mark = "✅"
		}
		b.WriteString(fmt.Sprintf("%s %s · %s <code>%s</code>\n", mark, html.EscapeString(t.Title), html.EscapeString(t.Duration), html.EscapeString(t.ID)))
		if t.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", html.EscapeString(t.Description)))
		}
	}
}

func writeList(b *strings.Builder, title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("\n<b>%s</b>\n", title))
	for i, item := range items {
		if numbered {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, html.EscapeString(item)))
			continue
		}
		b.WriteString(fmt.Sprintf("• %s\n", html.EscapeString(item)))
	}
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return done * 100 / total
}
