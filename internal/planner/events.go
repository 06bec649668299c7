package planner

import (
	"time"

	model "daily-planner.com/daily-planner/pkg/models"
)

// ActiveEvents returns the fixed events that occur on the given calendar day.
// Day-of-week numbering matches time.Weekday: 0=Sunday..6=Saturday.
func ActiveEvents(events []model.FixedEvent, date time.Time) []model.FixedEvent {
	day := int(date.Weekday())

	var active []model.FixedEvent
	for _, ev := range events {
		if !ev.IsActive {
			continue
		}
		if containsDay(ev.DaysOfWeek, day) {
			active = append(active, ev)
		}
	}

	return active
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
