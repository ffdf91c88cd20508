package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-planner/internal/catalog"
	"fit-planner/internal/model"
	"fit-planner/internal/nutrition"
	"fit-planner/internal/planner"
	"fit-planner/internal/repository"
	"fit-planner/internal/service"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageSoreness
	stageEnergy
	stageRestore
)

const (
	cbTogglePrefix = "toggle:"
	cbSwapPrefix   = "swap:"
	cbDetailPrefix = "detail:"
)

// maxBackupSize caps the size of an uploaded backup document.
const maxBackupSize = 1 << 20

type conversationState struct {
	stage conversationStage
}

// Bot aggregates Telegram API with services.
type Bot struct {
	api           *tgbotapi.BotAPI
	userRepo      *repository.UserRepository
	plannerSvc    *service.PlannerService
	backupSvc     *service.BackupService
	reminderSvc   *service.ReminderService
	calendarSvc   *service.CalendarService
	http          *http.Client
	conversations map[int64]*conversationState
	mu            sync.Mutex
}

func New(token string, userRepo *repository.UserRepository, plannerSvc *service.PlannerService, backupSvc *service.BackupService, reminderSvc *service.ReminderService, calendarSvc *service.CalendarService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		userRepo:      userRepo,
		plannerSvc:    plannerSvc,
		backupSvc:     backupSvc,
		reminderSvc:   reminderSvc,
		calendarSvc:   calendarSvc,
		http:          &http.Client{Timeout: 30 * time.Second},
		conversations: make(map[int64]*conversationState),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if !msg.IsCommand() && isCancelDialogInput(msg.Text) {
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Cancelled.")
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
		b.clearConversation(msg.From.ID)
		return b.handleCommand(ctx, msg)
	}

	if state := b.getConversation(msg.From.ID); state != nil {
		log.Printf("[info] conversation step %d from %d", state.stage, msg.From.ID)
		return b.handleConversation(ctx, msg, state)
	}

	if handled, err := b.handleMenuAlias(ctx, msg); handled {
		return err
	}

	if msg.Document != nil {
		return b.sendText(msg.Chat.ID, "To restore a backup, send /restore first and then the file.")
	}

	return b.sendText(msg.Chat.ID, "I did not get that. Try /today for your plan or /help for all commands.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(msg)
	case "today":
		return b.handleToday(ctx, msg)
	case "done":
		return b.handleDone(ctx, msg)
	case "swap":
		return b.handleSwap(ctx, msg)
	case "checkin":
		return b.startCheckIn(ctx, msg)
	case "soreness", "energy":
		return b.handleCheckInValue(ctx, msg)
	case "protein", "water", "steps":
		return b.handleIntake(ctx, msg)
	case "mode", "equipment", "kegel", "weight", "diet", "budget", "injury":
		return b.handleSetting(ctx, msg)
	case "profile":
		return b.handleProfile(ctx, msg)
	case "history":
		return b.handleHistory(ctx, msg)
	case "clearhistory":
		return b.handleClearHistory(ctx, msg)
	case "week":
		return b.sendText(msg.Chat.ID, b.reminderSvc.WeekSummary())
	case "meals":
		return b.handleMeals(ctx, msg)
	case "exercise":
		return b.handleExercise(msg)
	case "exercises":
		return b.handleLibrary(msg)
	case "share":
		return b.handleShare(ctx, msg)
	case "calendar":
		return b.handleCalendar(ctx, msg)
	case "export":
		return b.handleExport(ctx, msg)
	case "restore":
		return b.startRestore(ctx, msg)
	case "mute", "unmute":
		return b.handleMute(ctx, msg)
	case "cancel":
		return b.sendText(msg.Chat.ID, "⏪ Cancelled.")
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. See /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From, msg.Chat.ID); err != nil {
		return err
	}

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "athlete"
	}

	text := fmt.Sprintf(
		"👋 Hi, %s!\n<b>I build your training day: mobility, workout, recovery and nutrition targets.</b>\n\n"+
			"• /today — today's plan with buttons\n"+
			"• /checkin — report soreness and energy\n"+
			"• /help — every command\n\n"+
			"I'll send the plan every morning. Use /mute to stop that.",
		escape(name),
	)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "ℹ️ <b>Commands</b>\n" +
		"• /today — plan for today\n" +
		"• /done &lt;id&gt; — toggle a task (ids are shown in the plan)\n" +
		"• /swap &lt;id&gt; — replace a workout exercise with an alternative\n" +
		"• /checkin — soreness and energy check-in\n" +
		"• /soreness &lt;0-10&gt;, /energy &lt;0-10&gt; — quick check-in\n" +
		"• /protein &lt;g&gt;, /water &lt;l&gt;, /steps &lt;n&gt; — add to today's log (negative to correct)\n" +
		"• /mode home|gym, /equipment bodyweight|dumbbells|gym\n" +
		"• /kegel 1-3, /weight &lt;kg&gt;, /diet veg|egg|non-veg, /budget normal|low\n" +
		"• /injury knee|back|shoulder — flag or clear an injury\n" +
		"• /profile — current settings\n" +
		"• /history — progress trend\n" +
		"• /clearhistory — delete past progress\n" +
		"• /week — weekly split\n" +
		"• /meals — meal plan for your diet\n" +
		"• /exercises [name or muscle] [home|gym] — browse the library\n" +
		"• /exercise &lt;id&gt; — form guide\n" +
		"• /share — plain-text plan to forward\n" +
		"• /calendar — next 7 workouts as an .ics file\n" +
		"• /export, /restore — backup file of profile and history\n" +
		"• /mute, /unmute — morning plan message"
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleToday(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	view, err := b.plannerSvc.Today(ctx, user.ID)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Could not build the plan: %s", escape(err.Error())))
	}
	return b.sendPlan(msg.Chat.ID, view)
}

func (b *Bot) handleDone(ctx context.Context, msg *tgbotapi.Message) error {
	taskID := strings.TrimSpace(msg.CommandArguments())
	if taskID == "" {
		return b.sendText(msg.Chat.ID, "Give a task id: /done m1")
	}
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	view, ok, err := b.plannerSvc.Toggle(ctx, user.ID, taskID)
	if err != nil {
		return err
	}
	if !ok {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("No task <code>%s</code> in today's plan.", escape(taskID)))
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("%s Progress: %d/%d", toggleNotice(view.Plan, taskID), view.Completed, view.Total))
}

func (b *Bot) handleSwap(ctx context.Context, msg *tgbotapi.Message) error {
	taskID := strings.TrimSpace(msg.CommandArguments())
	if taskID == "" {
		return b.sendText(msg.Chat.ID, "Give a workout id: /swap pushups")
	}
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	task, err := b.plannerSvc.Swap(ctx, user.ID, taskID)
	if err != nil {
		if text, ok := notice(err); ok {
			return b.sendText(msg.Chat.ID, text)
		}
		return err
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🔁 Swapped for <b>%s</b> (<code>%s</code>).", escape(task.Title), escape(task.ID)))
}

func (b *Bot) startCheckIn(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From, msg.Chat.ID); err != nil {
		return err
	}
	b.setConversation(msg.From.ID, &conversationState{stage: stageSoreness})
	return b.sendWithReplyMarkup(msg.Chat.ID, "😣 How sore are you today? <b>0</b> fresh · <b>10</b> wrecked", scaleKeyboard())
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message, state *conversationState) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}

	switch state.stage {
	case stageSoreness, stageEnergy:
		value, err := strconv.Atoi(strings.TrimSpace(msg.Text))
		if err != nil || value < 0 || value > 10 {
			return b.sendWithReplyMarkup(msg.Chat.ID, "Send a number from 0 to 10.", scaleKeyboard())
		}
		if state.stage == stageSoreness {
			if _, err := b.plannerSvc.SetSoreness(ctx, user.ID, value); err != nil {
				return err
			}
			state.stage = stageEnergy
			return b.sendWithReplyMarkup(msg.Chat.ID, "⚡ Energy level? <b>0</b> empty · <b>10</b> full", scaleKeyboard())
		}
		view, err := b.plannerSvc.SetEnergy(ctx, user.ID, value)
		b.clearConversation(msg.From.ID)
		if err != nil {
			return err
		}
		if err := b.sendTextWithRemove(msg.Chat.ID, fmt.Sprintf("%s Recovery: <b>%s</b>. Plan updated.", recoveryIcon(view.Plan.RecoveryScore), view.Plan.RecoveryScore)); err != nil {
			return err
		}
		return b.sendPlan(msg.Chat.ID, view)
	case stageRestore:
		if msg.Document == nil {
			return b.sendWithReplyMarkup(msg.Chat.ID, "Send the backup <b>.json</b> file as a document.", cancelKeyboard())
		}
		err := b.restoreDocument(ctx, user, msg.Document)
		b.clearConversation(msg.From.ID)
		if err != nil {
			if text, ok := notice(err); ok {
				return b.sendText(msg.Chat.ID, text)
			}
			return b.sendText(msg.Chat.ID, fmt.Sprintf("Restore failed: %s", escape(err.Error())))
		}
		return b.sendText(msg.Chat.ID, "📥 Backup restored. Send /today to see the rebuilt plan.")
	default:
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "Dialog reset.")
	}
}

func (b *Bot) handleCheckInValue(ctx context.Context, msg *tgbotapi.Message) error {
	value, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil || value < 0 || value > 10 {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Usage: /%s &lt;0-10&gt;", msg.Command()))
	}
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}

	var view service.View
	if msg.Command() == "soreness" {
		view, err = b.plannerSvc.SetSoreness(ctx, user.ID, value)
	} else {
		view, err = b.plannerSvc.SetEnergy(ctx, user.ID, value)
	}
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("%s Recovery: <b>%s</b>. Plan updated, see /today.", recoveryIcon(view.Plan.RecoveryScore), view.Plan.RecoveryScore))
}

func (b *Bot) handleIntake(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}

	var view service.View
	switch msg.Command() {
	case "protein":
		grams, ok := parseAmount(args)
		if !ok {
			return b.sendText(msg.Chat.ID, "Usage: /protein 30")
		}
		view, err = b.plannerSvc.AddProtein(ctx, user.ID, grams)
	case "water":
		liters, ok := parseAmount(args)
		if !ok {
			return b.sendText(msg.Chat.ID, "Usage: /water 0.5")
		}
		view, err = b.plannerSvc.AddWater(ctx, user.ID, liters)
	case "steps":
		steps, perr := strconv.Atoi(args)
		if perr != nil {
			return b.sendText(msg.Chat.ID, "Usage: /steps 2500")
		}
		view, err = b.plannerSvc.AddSteps(ctx, user.ID, steps)
	}
	if err != nil {
		return err
	}

	t := view.Plan.DietTargets
	text := fmt.Sprintf("🍽 Protein %.0f/%d g · 💧 Water %.2f/%.1f L · 👣 Steps %d/%d",
		view.Log.ProteinConsumed, t.Protein, view.Log.WaterConsumed, t.Water, view.Log.StepsTaken, t.Steps)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleSetting(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())
	apply, usage := parseSetting(msg.Command(), args)
	if apply == nil {
		return b.sendText(msg.Chat.ID, usage)
	}
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	view, err := b.plannerSvc.UpdateProfile(ctx, user.ID, apply)
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("⚙️ Saved. Mode: <b>%s</b> · %d tasks today, see /today.", view.Plan.Mode, view.Total))
}

func (b *Bot) handleProfile(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	p, err := b.plannerSvc.Profile(ctx, user.ID)
	if err != nil {
		return err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("👤 <b>%s</b>\n", escape(p.Name)))
	builder.WriteString(fmt.Sprintf("• Weight: %.1f kg\n", p.Weight))
	builder.WriteString(fmt.Sprintf("• Equipment: %s · Mode: %s\n", p.Equipment, p.WorkoutMode))
	builder.WriteString(fmt.Sprintf("• Kegel level: %d\n", p.KegelLevel))
	builder.WriteString(fmt.Sprintf("• Diet: %s · Budget: %s\n", escape(p.DietType), escape(p.DietBudget)))
	if len(p.InjuryFlags) > 0 {
		builder.WriteString(fmt.Sprintf("• Injuries: %s\n", escape(strings.Join(p.InjuryFlags, ", "))))
	}
	return b.sendText(msg.Chat.ID, strings.TrimSpace(builder.String()))
}

func (b *Bot) handleHistory(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	entries, err := b.plannerSvc.History(ctx, user.ID)
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, b.reminderSvc.ProgressSummary(entries, 7))
}

func (b *Bot) handleMeals(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	p, err := b.plannerSvc.Profile(ctx, user.ID)
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, b.reminderSvc.MealSummary(p))
}

func (b *Bot) handleExercise(msg *tgbotapi.Message) error {
	id := strings.TrimSpace(msg.CommandArguments())
	if id == "" {
		return b.sendText(msg.Chat.ID, "Give an exercise id: /exercise goblet-squat")
	}
	return b.sendText(msg.Chat.ID, b.reminderSvc.ExerciseDetail(catalog.Default().Lookup(id)))
}

func (b *Bot) handleLibrary(msg *tgbotapi.Message) error {
	cat := catalog.Default()
	query, mode, muscle := parseLibraryQuery(msg.CommandArguments(), cat.Muscles())
	list := cat.Search(query, mode, muscle)
	text := b.reminderSvc.LibrarySummary(list)
	if len(list) == 0 {
		return b.sendText(msg.Chat.ID, text)
	}
	return b.sendWithReplyMarkup(msg.Chat.ID, text, libraryKeyboard(list))
}

func (b *Bot) handleClearHistory(ctx context.Context, msg *tgbotapi.Message) error {
	if !strings.EqualFold(strings.TrimSpace(msg.CommandArguments()), "yes") {
		return b.sendText(msg.Chat.ID, "⚠️ This deletes your whole progress history. Send <code>/clearhistory yes</code> to confirm.")
	}
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	if err := b.plannerSvc.ClearHistory(ctx, user.ID); err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, "🗑 History cleared. Today's plan and ticks are kept.")
}

func (b *Bot) handleShare(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	view, err := b.plannerSvc.Today(ctx, user.ID)
	if err != nil {
		return err
	}
	// Plain text so it can be forwarded as is.
	out := tgbotapi.NewMessage(msg.Chat.ID, b.reminderSvc.ShareText(view.Plan))
	out.DisableWebPagePreview = true
	_, err = b.api.Send(out)
	return err
}

func (b *Bot) handleCalendar(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	plans, err := b.plannerSvc.Upcoming(ctx, user.ID, 7)
	if err != nil {
		return err
	}
	ics, err := b.calendarSvc.Week(plans, time.Now())
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Calendar failed: %s", escape(err.Error())))
	}
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: "fitplanner-week.ics", Bytes: []byte(ics)})
	doc.Caption = "🗓 Next 7 workouts. Open it to add them to your calendar."
	_, err = b.api.Send(doc)
	return err
}

func (b *Bot) handleExport(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	data, err := b.backupSvc.Export(ctx, user.ID)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Export failed: %s", escape(err.Error())))
	}
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: "fitplanner-backup.json", Bytes: data})
	doc.Caption = "📤 Profile and history backup. Send it back after /restore to load it."
	_, err = b.api.Send(doc)
	return err
}

func (b *Bot) startRestore(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From, msg.Chat.ID); err != nil {
		return err
	}
	b.setConversation(msg.From.ID, &conversationState{stage: stageRestore})
	return b.sendWithReplyMarkup(msg.Chat.ID, "📥 Send the backup file. It replaces your profile and history.", cancelKeyboard())
}

func (b *Bot) restoreDocument(ctx context.Context, user *model.User, doc *tgbotapi.Document) error {
	if doc.FileSize > maxBackupSize {
		return fmt.Errorf("%w: file too large", service.ErrMalformedImport)
	}
	url, err := b.api.GetFileDirectURL(doc.FileID)
	if err != nil {
		return fmt.Errorf("get file url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("download backup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download backup: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBackupSize))
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	return b.backupSvc.Restore(ctx, user.ID, data)
}

func (b *Bot) handleMute(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		return err
	}
	muted := msg.Command() == "mute"
	if err := b.userRepo.SetMuted(ctx, user.ID, muted); err != nil {
		return err
	}
	if muted {
		return b.sendText(msg.Chat.ID, "🔕 Morning plan muted. /unmute to turn it back on.")
	}
	return b.sendText(msg.Chat.ID, "🔔 Morning plan is on.")
}

// SendMorningPlans pushes today's plan to every subscribed user.
func (b *Bot) SendMorningPlans(ctx context.Context) error {
	users, err := b.userRepo.ListSubscribed(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		view, err := b.plannerSvc.Today(ctx, user.ID)
		if err != nil {
			log.Printf("build plan for user %d: %v", user.TelegramID, err)
			continue
		}
		if err := b.sendPlan(user.ChatID, view); err != nil {
			log.Printf("send plan to %d: %v", user.TelegramID, err)
		}
	}
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}

	chatID := cb.Message.Chat.ID
	user, err := b.ensureUser(ctx, cb.From, chatID)
	if err != nil {
		b.answer(cb.ID, "")
		return err
	}

	data := cb.Data
	switch {
	case strings.HasPrefix(data, cbTogglePrefix):
		taskID := strings.TrimPrefix(data, cbTogglePrefix)
		log.Printf("[info] callback toggle user=%d task=%s", cb.From.ID, taskID)
		view, ok, err := b.plannerSvc.Toggle(ctx, user.ID, taskID)
		if err != nil {
			b.answer(cb.ID, "")
			return err
		}
		if !ok {
			b.answer(cb.ID, "This plan is out of date, send /today.")
			return nil
		}
		b.answer(cb.ID, toggleNotice(view.Plan, taskID))
		return b.refreshPlan(chatID, cb.Message.MessageID, view)
	case strings.HasPrefix(data, cbSwapPrefix):
		taskID := strings.TrimPrefix(data, cbSwapPrefix)
		log.Printf("[info] callback swap user=%d task=%s", cb.From.ID, taskID)
		task, err := b.plannerSvc.Swap(ctx, user.ID, taskID)
		if err != nil {
			text, ok := notice(err)
			b.answer(cb.ID, text)
			if ok {
				return nil
			}
			return err
		}
		b.answer(cb.ID, "🔁 "+task.Title)
		view, err := b.plannerSvc.Today(ctx, user.ID)
		if err != nil {
			return err
		}
		return b.refreshPlan(chatID, cb.Message.MessageID, view)
	case strings.HasPrefix(data, cbDetailPrefix):
		b.answer(cb.ID, "")
		id := strings.TrimPrefix(data, cbDetailPrefix)
		return b.sendText(chatID, b.reminderSvc.ExerciseDetail(catalog.Default().Lookup(id)))
	default:
		b.answer(cb.ID, "")
		return nil
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("callback ack: %v", err)
	}
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	text := strings.TrimSpace(strings.ToLower(msg.Text))
	switch text {
	case strings.ToLower(menuLabelToday):
		return true, b.handleToday(ctx, msg)
	case strings.ToLower(menuLabelCheckIn):
		return true, b.startCheckIn(ctx, msg)
	case strings.ToLower(menuLabelProgress):
		return true, b.handleHistory(ctx, msg)
	case strings.ToLower(menuLabelWeek):
		return true, b.sendText(msg.Chat.ID, b.reminderSvc.WeekSummary())
	case strings.ToLower(menuLabelMeals):
		return true, b.handleMeals(ctx, msg)
	case strings.ToLower(menuLabelHelp):
		return true, b.handleHelp(msg)
	default:
		return false, nil
	}
}

func (b *Bot) ensureUser(ctx context.Context, from *tgbotapi.User, chatID int64) (*model.User, error) {
	return b.userRepo.UpsertFromTelegram(ctx, from.ID, chatID, from.FirstName, from.LastName, from.UserName)
}

func (b *Bot) sendPlan(chatID int64, view service.View) error {
	msg := tgbotapi.NewMessage(chatID, b.reminderSvc.DaySummary(view))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = planKeyboard(view.Plan)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) refreshPlan(chatID int64, messageID int, view service.View) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, b.reminderSvc.DaySummary(view), planKeyboard(view.Plan))
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendTextWithRemove(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) setConversation(userID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[userID] = state
}

func (b *Bot) getConversation(userID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[userID]
}

func (b *Bot) clearConversation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, userID)
}

// notice maps domain errors to a user-facing line.
func notice(err error) (string, bool) {
	switch {
	case errors.Is(err, planner.ErrInvalidSwapTarget):
		return "Cannot swap this item.", true
	case errors.Is(err, planner.ErrNoAlternatives):
		return "No suitable alternatives found for this mode.", true
	case errors.Is(err, service.ErrMalformedImport):
		return "❌ Invalid backup file. Nothing was changed.", true
	case errors.Is(err, service.ErrOutOfRange):
		return "Values go from 0 to 10.", true
	case errors.Is(err, service.ErrInvalidAmount):
		return "Send a plain number, like 30 or 0.5.", true
	default:
		return "Something went wrong, try again.", false
	}
}

// parseSetting turns a settings command into a profile change. A nil func
// means the arguments were invalid and usage holds the hint.
func parseSetting(command, args string) (apply func(*model.UserProfile), usage string) {
	value := strings.ToLower(strings.TrimSpace(args))
	switch command {
	case "mode":
		switch value {
		case "gym":
			return func(p *model.UserProfile) { p.Equipment = model.EquipmentGym }, ""
		case "home":
			return func(p *model.UserProfile) {
				if p.Equipment == model.EquipmentGym {
					p.Equipment = model.EquipmentDumbbells
				}
			}, ""
		}
		return nil, "Usage: /mode home|gym"
	case "equipment":
		for _, e := range []model.Equipment{model.EquipmentBodyweight, model.EquipmentDumbbells, model.EquipmentGym} {
			if strings.ToLower(string(e)) == value {
				eq := e
				return func(p *model.UserProfile) { p.Equipment = eq }, ""
			}
		}
		return nil, "Usage: /equipment bodyweight|dumbbells|gym"
	case "kegel":
		level, err := strconv.Atoi(value)
		if err != nil || level < 1 || level > 3 {
			return nil, "Usage: /kegel 1|2|3"
		}
		return func(p *model.UserProfile) { p.KegelLevel = level }, ""
	case "weight":
		kg, ok := parseAmount(value)
		if !ok || kg <= 0 || kg > 400 {
			return nil, "Usage: /weight 72.5"
		}
		return func(p *model.UserProfile) { p.Weight = kg }, ""
	case "diet":
		for _, d := range []string{nutrition.DietVeg, nutrition.DietEgg, nutrition.DietNonVeg} {
			if strings.ToLower(d) == value {
				diet := d
				return func(p *model.UserProfile) { p.DietType = diet }, ""
			}
		}
		return nil, "Usage: /diet veg|egg|non-veg"
	case "budget":
		switch value {
		case "normal":
			return func(p *model.UserProfile) { p.DietBudget = nutrition.BudgetNormal }, ""
		case "low", "low cost":
			return func(p *model.UserProfile) { p.DietBudget = nutrition.BudgetLowCost }, ""
		}
		return nil, "Usage: /budget normal|low"
	case "injury":
		for _, area := range []string{model.InjuryKnee, model.InjuryBack, model.InjuryShoulder} {
			if strings.ToLower(area) == value {
				flag := area
				return func(p *model.UserProfile) { p.ToggleInjury(flag) }, ""
			}
		}
		return nil, "Usage: /injury knee|back|shoulder (send again to clear)"
	}
	return nil, "Unknown setting."
}

// parseAmount reads a finite decimal, accepting a comma separator.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseLibraryQuery splits /exercises arguments into a name query, a mode
// and a muscle group. home and gym pick the mode; text naming a known muscle
// group filters by muscle, anything else matches names.
func parseLibraryQuery(args string, muscles []string) (query string, mode model.WorkoutMode, muscle string) {
	var words []string
	for _, w := range strings.Fields(args) {
		switch strings.ToLower(w) {
		case "home":
			mode = model.ModeHome
		case "gym":
			mode = model.ModeGym
		default:
			words = append(words, w)
		}
	}
	text := strings.Join(words, " ")
	for _, m := range muscles {
		if strings.EqualFold(m, text) {
			return "", mode, m
		}
	}
	return text, mode, ""
}

func toggleNotice(plan model.DayPlan, taskID string) string {
	for _, block := range plan.Blocks() {
		for _, t := range block {
			if t.ID != taskID {
				continue
			}
			if t.Completed {
				return "✅ " + t.Title
			}
			return "⬜ " + t.Title
		}
	}
	return ""
}

func recoveryIcon(score model.RecoveryScore) string {
	switch score {
	case model.RecoveryLow:
		return "🔴"
	case model.RecoveryMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func escape(s string) string {
	return html.EscapeString(s)
}
