package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/service"
)

func TestCalendarService_Week(t *testing.T) {
	clock := mondayClock()
	svc, _ := newPlanner(t, clock)

	plans, err := svc.Upcoming(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, plans, 7)
	assert.Equal(t, "2026-10-19", plans[0].Date)
	assert.Equal(t, "2026-10-25", plans[6].Date)

	out, err := service.NewCalendarService(time.UTC, "18:30").Week(plans, clock.t)
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 7)

	first := events[0]
	assert.Equal(t, "2026-10-19@fit-planner", first.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.True(t, strings.HasPrefix(first.GetProperty(ical.ComponentPropertySummary).Value, "Monday"))
	assert.Equal(t, "20261019T183000Z", first.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20261019T193000Z", first.GetProperty(ical.ComponentPropertyDtEnd).Value)
}

func TestCalendarService_BadStartTime(t *testing.T) {
	_, err := service.NewCalendarService(time.UTC, "25:00").Week(nil, time.Now())
	assert.Error(t, err)
}

func TestPlannerService_UpcomingKeepsTodayState(t *testing.T) {
	svc, _ := newPlanner(t, mondayClock())
	ctx := context.Background()

	_, _, err := svc.Toggle(ctx, 1, "m1")
	require.NoError(t, err)

	plans, err := svc.Upcoming(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.True(t, plans[0].Morning[0].Completed)
	assert.False(t, plans[1].Morning[0].Completed)
	assert.Equal(t, "Tuesday", plans[1].DayName)
}
