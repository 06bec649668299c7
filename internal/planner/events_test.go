package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "daily-planner.com/daily-planner/pkg/models"
)

func TestActiveEventsFiltersByWeekday(t *testing.T) {
	weekdays := model.FixedEvent{Title: "Lunch", DaysOfWeek: []int{1, 2, 3, 4, 5}, IsActive: true}
	weekend := model.FixedEvent{Title: "Hike", DaysOfWeek: []int{0, 6}, IsActive: true}

	// 2026-09-01 is a Tuesday.
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())

	active := ActiveEvents([]model.FixedEvent{weekdays, weekend}, tuesday)
	require.Len(t, active, 1)
	assert.Equal(t, "Lunch", active[0].Title)

	// 2026-09-06 is a Sunday.
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	active = ActiveEvents([]model.FixedEvent{weekdays, weekend}, sunday)
	require.Len(t, active, 1)
	assert.Equal(t, "Hike", active[0].Title)
}

func TestActiveEventsSkipsInactive(t *testing.T) {
	events := []model.FixedEvent{
		{Title: "Commute", DaysOfWeek: []int{0, 1, 2, 3, 4, 5, 6}, IsActive: false},
		{Title: "Dinner", DaysOfWeek: []int{0, 1, 2, 3, 4, 5, 6}, IsActive: true},
	}

	active := ActiveEvents(events, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, active, 1)
	assert.Equal(t, "Dinner", active[0].Title)
}

func TestActiveEventsEmpty(t *testing.T) {
	assert.Empty(t, ActiveEvents(nil, time.Now()))
}
