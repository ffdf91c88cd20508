package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-planner/internal/model"
)

const (
	btnCancelDialog   = "⏪ Cancel"
	menuLabelToday    = "📋 Today"
	menuLabelCheckIn  = "💬 Check-in"
	menuLabelProgress = "📈 Progress"
	menuLabelWeek     = "🗓 Week"
	menuLabelMeals    = "🥗 Meals"
	menuLabelHelp     = "ℹ️ Help"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelToday),
			tgbotapi.NewKeyboardButton(menuLabelCheckIn),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelProgress),
			tgbotapi.NewKeyboardButton(menuLabelWeek),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelMeals),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

// scaleKeyboard offers 0..10 in two rows plus cancel.
func scaleKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var low, high []tgbotapi.KeyboardButton
	for i := 0; i <= 10; i++ {
		btn := tgbotapi.NewKeyboardButton(strconv.Itoa(i))
		if i <= 5 {
			low = append(low, btn)
		} else {
			high = append(high, btn)
		}
	}
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(low...),
		tgbotapi.NewKeyboardButtonRow(high...),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancelDialog)),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

// planKeyboard has one row per task. Workout rows also carry swap and form buttons.
func planKeyboard(plan model.DayPlan) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, block := range plan.Blocks() {
		for _, task := range block {
			mark := "⬜"
			if task.Completed {
				mark = "✅"
			}
			row := []tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %s", mark, shortTitle(task.Title, 28)), cbTogglePrefix+task.ID),
			}
			if task.Type == model.TaskWorkout && task.Exercise != nil {
				row = append(row,
					tgbotapi.NewInlineKeyboardButtonData("🔁", cbSwapPrefix+task.ID),
					tgbotapi.NewInlineKeyboardButtonData("📖", cbDetailPrefix+task.Exercise.ID),
				)
			}
			rows = append(rows, row)
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// libraryKeyboard puts a form button for each exercise, two per row.
func libraryKeyboard(list []model.Exercise) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(list); i += 2 {
		var row []tgbotapi.InlineKeyboardButton
		for _, ex := range list[i:min(i+2, len(list))] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("📖 "+shortTitle(ex.Name, 24), cbDetailPrefix+ex.ID))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func shortTitle(title string, maxLen int) string {
	clean := strings.TrimSpace(strings.ReplaceAll(title, "\n", " "))
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

func isCancelDialogInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancelDialog) || value == "cancel"
}
