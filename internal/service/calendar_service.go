package service

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"fit-planner/internal/model"
	"fit-planner/internal/planner"
)

// CalendarService renders plans as an iCalendar feed, one workout event per day.
type CalendarService struct {
	loc      *time.Location
	startAt  string
	duration time.Duration
}

func NewCalendarService(loc *time.Location, startAt string) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{loc: loc, startAt: startAt, duration: time.Hour}
}

// Week serializes plans into a VCALENDAR. UIDs are derived from the date, so
// importing a newer export updates the same events.
func (s *CalendarService) Week(plans []model.DayPlan, stamp time.Time) (string, error) {
	hour, minute, err := parseClock(s.startAt)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//fit-planner//week//EN")

	for _, plan := range plans {
		date, err := time.ParseInLocation(planner.DateLayout, plan.Date, s.loc)
		if err != nil {
			return "", fmt.Errorf("parse plan date %q: %w", plan.Date, err)
		}
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, s.loc)

		event := cal.AddEvent(plan.Date + "@fit-planner")
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(s.duration))
		event.SetSummary(fmt.Sprintf("%s: %s", plan.DayName, planner.FocusFor(date.Weekday())))
		event.SetDescription(workoutLines(plan))
	}
	return cal.Serialize(), nil
}

func workoutLines(plan model.DayPlan) string {
	lines := make([]string, 0, len(plan.Afternoon)+1)
	lines = append(lines, fmt.Sprintf("Recovery %s, %s mode", plan.RecoveryScore, plan.Mode))
	for _, t := range plan.Afternoon {
		line := t.Title
		if t.Exercise != nil {
			line += " (" + t.Exercise.DefaultPrescription + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
