package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"fit-planner/internal/catalog"
	"fit-planner/internal/history"
	"fit-planner/internal/model"
	"fit-planner/internal/planner"
	"fit-planner/internal/repository"
)

// ErrOutOfRange is returned for check-in values outside the 0-10 scale.
var ErrOutOfRange = errors.New("value must be between 0 and 10")

// ErrInvalidAmount is returned for NaN or infinite intake amounts.
var ErrInvalidAmount = errors.New("amount must be a finite number")

const (
	defaultMood       = 3
	defaultSleepHours = 7
)

// View is a read-only snapshot of a user's day handed to renderers.
type View struct {
	Plan      model.DayPlan
	Log       model.DailyLog
	Completed int
	Total     int
}

type session struct {
	date    string
	profile model.UserProfile
	log     model.DailyLog
	plan    model.DayPlan
	history []model.HistoryEntry
}

// PlannerService owns every user's current plan, daily log and history.
// All operations run under one mutex, so a regeneration always finishes before
// the next toggle or swap is applied.
type PlannerService struct {
	store    *repository.PlannerStore
	builder  *planner.Builder
	swapper  *planner.Swapper
	now      func() time.Time
	loc      *time.Location
	seed     func() *rand.Rand
	mu       sync.Mutex
	sessions map[uint]*session
}

type PlannerOption func(*PlannerService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) PlannerOption {
	return func(s *PlannerService) { s.now = now }
}

// WithChooser replaces the random swap choice.
func WithChooser(choose planner.Chooser) PlannerOption {
	return func(s *PlannerService) { s.swapper = planner.NewSwapper(catalog.Default(), choose) }
}

// WithDemoSeed makes first-run demo history reproducible.
func WithDemoSeed(seed int64) PlannerOption {
	return func(s *PlannerService) {
		s.seed = func() *rand.Rand { return rand.New(rand.NewSource(seed)) }
	}
}

func NewPlannerService(store *repository.PlannerStore, loc *time.Location, opts ...PlannerOption) *PlannerService {
	if loc == nil {
		loc = time.Local
	}
	s := &PlannerService{
		store:    store,
		builder:  planner.NewBuilder(catalog.Default()),
		swapper:  planner.NewSwapper(catalog.Default(), planner.RandomChooser),
		now:      time.Now,
		loc:      loc,
		seed:     func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
		sessions: make(map[uint]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the user's plan for the current date, building it if needed.
func (s *PlannerService) Today(ctx context.Context, userID uint) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

// Toggle flips a task's completion. An unknown id is a no-op.
func (s *PlannerService) Toggle(ctx context.Context, userID uint, taskID string) (View, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return View{}, false, err
	}
	plan := clonePlan(sess.plan)
	if !planner.Toggle(&plan, taskID) {
		return sess.view(), false, nil
	}
	if err := s.commitPlan(ctx, userID, sess, plan); err != nil {
		return View{}, false, err
	}
	log.Printf("[info] task toggled user=%d task=%s date=%s", userID, taskID, sess.date)
	return sess.view(), true, nil
}

// Swap replaces a workout task with an alternative of the same movement pattern.
// planner.ErrInvalidSwapTarget and planner.ErrNoAlternatives leave the plan unchanged.
func (s *PlannerService) Swap(ctx context.Context, userID uint, taskID string) (model.ActivityTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return model.ActivityTask{}, err
	}
	plan := clonePlan(sess.plan)
	task, err := s.swapper.Swap(&plan, taskID, sess.profile.WorkoutMode)
	if err != nil {
		return model.ActivityTask{}, err
	}
	if err := s.commitPlan(ctx, userID, sess, plan); err != nil {
		return model.ActivityTask{}, err
	}
	log.Printf("[info] task swapped user=%d from=%s to=%s", userID, taskID, task.ID)
	return task, nil
}

// SetSoreness records the 0-10 soreness check-in and regenerates the plan.
func (s *PlannerService) SetSoreness(ctx context.Context, userID uint, value int) (View, error) {
	if err := checkScale(value); err != nil {
		return View{}, err
	}
	return s.updateLog(ctx, userID, true, func(l *model.DailyLog) { l.Soreness = &value })
}

// SetEnergy records the 0-10 energy check-in and regenerates the plan.
func (s *PlannerService) SetEnergy(ctx context.Context, userID uint, value int) (View, error) {
	if err := checkScale(value); err != nil {
		return View{}, err
	}
	return s.updateLog(ctx, userID, true, func(l *model.DailyLog) { l.Energy = &value })
}

// AddProtein adds grams of protein. A negative delta corrects the total, never below zero.
func (s *PlannerService) AddProtein(ctx context.Context, userID uint, grams float64) (View, error) {
	if err := checkFinite(grams); err != nil {
		return View{}, err
	}
	return s.updateLog(ctx, userID, false, func(l *model.DailyLog) {
		l.ProteinConsumed = clampFloat(l.ProteinConsumed + grams)
	})
}

// AddWater adds liters of water.
func (s *PlannerService) AddWater(ctx context.Context, userID uint, liters float64) (View, error) {
	if err := checkFinite(liters); err != nil {
		return View{}, err
	}
	return s.updateLog(ctx, userID, false, func(l *model.DailyLog) {
		l.WaterConsumed = clampFloat(l.WaterConsumed + liters)
	})
}

// AddSteps adds walked steps.
func (s *PlannerService) AddSteps(ctx context.Context, userID uint, steps int) (View, error) {
	return s.updateLog(ctx, userID, false, func(l *model.DailyLog) {
		l.StepsTaken += steps
		if l.StepsTaken < 0 {
			l.StepsTaken = 0
		}
	})
}

// Profile returns the stored profile, or the default one on first use.
func (s *PlannerService) Profile(ctx context.Context, userID uint) (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	return sess.profile, nil
}

// UpdateProfile applies a settings change, persists it and regenerates the plan.
func (s *PlannerService) UpdateProfile(ctx context.Context, userID uint, apply func(*model.UserProfile)) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return View{}, err
	}
	profile := sess.profile
	profile.InjuryFlags = append([]string(nil), profile.InjuryFlags...)
	apply(&profile)
	profile.Normalize()

	if err := s.store.SaveProfile(ctx, userID, profile); err != nil {
		return View{}, err
	}
	sess.profile = profile
	log.Printf("[info] profile updated user=%d mode=%s", userID, profile.WorkoutMode)

	if err := s.regenerate(ctx, userID, sess); err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

// History returns the newest-first history collection.
func (s *PlannerService) History(ctx context.Context, userID uint) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append([]model.HistoryEntry(nil), sess.history...), nil
}

// Upcoming returns today's plan followed by the plans of the next days-1 dates.
// Future days are built without check-ins, so they show the weekday template.
func (s *PlannerService) Upcoming(ctx context.Context, userID uint, days int) ([]model.DayPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}
	start, err := time.ParseInLocation(planner.DateLayout, sess.date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("parse plan date: %w", err)
	}

	plans := make([]model.DayPlan, 0, days)
	plans = append(plans, clonePlan(sess.plan))
	for i := 1; i < days; i++ {
		plans = append(plans, s.builder.Build(start.AddDate(0, 0, i), sess.profile, model.DailyLog{}))
	}
	return plans, nil
}

// ClearHistory empties the history collection and drops the stored logs and
// progress of past dates. Today's log and completions are kept.
func (s *PlannerService) ClearHistory(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return err
	}
	removed, err := s.store.ClearHistory(ctx, userID, sess.date)
	if err != nil {
		return err
	}
	sess.history = []model.HistoryEntry{}
	log.Printf("[info] history cleared user=%d records=%d", userID, removed)
	return nil
}

// Replace overwrites profile and history wholesale and drops the cached session,
// so the next call rebuilds the plan from the restored records.
func (s *PlannerService) Replace(ctx context.Context, userID uint, profile model.UserProfile, entries []model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Normalize()
	if err := s.store.ReplaceProfileAndHistory(ctx, userID, profile, entries); err != nil {
		return err
	}
	delete(s.sessions, userID)
	return nil
}

// Rollover rebuilds every cached session whose date is no longer today.
func (s *PlannerService) Rollover(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	for userID, sess := range s.sessions {
		if sess.date == today {
			continue
		}
		if err := s.load(ctx, userID, sess, today); err != nil {
			return fmt.Errorf("rollover user %d: %w", userID, err)
		}
		log.Printf("[info] rolled over user=%d date=%s", userID, today)
	}
	return nil
}

func (s *PlannerService) updateLog(ctx context.Context, userID uint, affectsPlan bool, apply func(*model.DailyLog)) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx, userID)
	if err != nil {
		return View{}, err
	}
	next := sess.log.Clone()
	apply(&next)
	if err := s.store.SaveDailyLog(ctx, userID, sess.date, next); err != nil {
		return View{}, err
	}
	sess.log = next

	if affectsPlan {
		if err := s.regenerate(ctx, userID, sess); err != nil {
			return View{}, err
		}
	}
	if err := s.upsertHistory(ctx, userID, sess); err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

// current returns the user's session for today, loading or rolling it over as needed.
func (s *PlannerService) current(ctx context.Context, userID uint) (*session, error) {
	today := s.today()
	sess, ok := s.sessions[userID]
	if ok && sess.date == today {
		return sess, nil
	}
	if !ok {
		sess = &session{}
	}
	if err := s.load(ctx, userID, sess, today); err != nil {
		return nil, err
	}
	s.sessions[userID] = sess
	return sess, nil
}

func (s *PlannerService) load(ctx context.Context, userID uint, sess *session, date string) error {
	profile, found, err := s.store.LoadProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		profile = model.DefaultProfile(s.now().In(s.loc).Format(time.RFC3339))
		if err := s.store.SaveProfile(ctx, userID, profile); err != nil {
			return err
		}
		log.Printf("[info] first use, default profile created user=%d", userID)
	}
	profile.Normalize()

	entries, found, err := s.store.LoadHistory(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		entries = history.Demo(s.now().In(s.loc), s.seed())
		if err := s.store.SaveHistory(ctx, userID, entries); err != nil {
			return err
		}
		log.Printf("[info] first use, demo history seeded user=%d", userID)
	}

	dayLog, _, err := s.store.LoadDailyLog(ctx, userID, date)
	if err != nil {
		return err
	}

	sess.date = date
	sess.profile = profile
	sess.history = entries
	sess.log = dayLog
	return s.regenerate(ctx, userID, sess)
}

// regenerate rebuilds all three blocks and replays the stored completion ids.
func (s *PlannerService) regenerate(ctx context.Context, userID uint, sess *session) error {
	completed, err := s.store.LoadProgress(ctx, userID, sess.date)
	if err != nil {
		return err
	}
	date, err := time.ParseInLocation(planner.DateLayout, sess.date, s.loc)
	if err != nil {
		return fmt.Errorf("parse plan date: %w", err)
	}
	plan := s.builder.Build(date, sess.profile, sess.log)
	planner.Reconcile(&plan, completed)
	sess.plan = plan
	return nil
}

// commitPlan stores the completion ids of plan and only then installs it in the session.
func (s *PlannerService) commitPlan(ctx context.Context, userID uint, sess *session, plan model.DayPlan) error {
	if err := s.store.SaveProgress(ctx, userID, sess.date, plan.CompletedIDs()); err != nil {
		return err
	}
	sess.plan = plan
	return s.upsertHistory(ctx, userID, sess)
}

func (s *PlannerService) upsertHistory(ctx context.Context, userID uint, sess *session) error {
	entries := history.Upsert(sess.history, sess.date, history.Snapshot{
		TasksCompleted: sess.plan.CompletedCount(),
		TotalTasks:     sess.plan.TotalCount(),
		Weight:         sess.profile.Weight,
		Mood:           defaultMood,
		SleepHours:     defaultSleepHours,
		ModeUsed:       sess.profile.WorkoutMode,
		DailyLog:       sess.log,
	})
	if err := s.store.SaveHistory(ctx, userID, entries); err != nil {
		return err
	}
	sess.history = entries
	return nil
}

func (s *PlannerService) today() string {
	return s.now().In(s.loc).Format(planner.DateLayout)
}

func (sess *session) view() View {
	return View{
		Plan:      clonePlan(sess.plan),
		Log:       sess.log.Clone(),
		Completed: sess.plan.CompletedCount(),
		Total:     sess.plan.TotalCount(),
	}
}

func clonePlan(p model.DayPlan) model.DayPlan {
	p.Morning = append([]model.ActivityTask(nil), p.Morning...)
	p.Afternoon = append([]model.ActivityTask(nil), p.Afternoon...)
	p.Evening = append([]model.ActivityTask(nil), p.Evening...)
	return p
}

func checkScale(v int) error {
	if v < 0 || v > 10 {
		return fmt.Errorf("check-in %d: %w", v, ErrOutOfRange)
	}
	return nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("amount %v: %w", v, ErrInvalidAmount)
	}
	return nil
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
