package planner

import (
	"time"

	"github.com/google/uuid"

	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

const breakTaskID = "break"

const defaultReason = "Scheduled work block"

// resolveTasks maps each corrected entry back to a real task record. Break
// entries get a synthetic pseudo-task; entries whose id matches nothing in the
// snapshot are dropped, since the model hallucinates ids.
func resolveTasks(entries []rawEntry, tasks []model.Task, now time.Time) []model.ScheduleEntry {
	index := make(map[string]model.Task, len(tasks))
	for _, task := range tasks {
		index[task.ID] = task
	}

	resolved := make([]model.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		entryType := constants.EntryType(entry.Type)
		if entryType == "" {
			entryType = constants.EntryRegular
		}

		var task model.Task
		if entryType == constants.EntryBreak || entry.TaskID == breakTaskID {
			task = breakTask(now)
			entryType = constants.EntryBreak
		} else {
			found, ok := index[entry.TaskID]
			if !ok {
				continue
			}
			task = found
		}

		reason := entry.Reason
		if reason == "" {
			reason = defaultReason
		}

		resolved = append(resolved, model.ScheduleEntry{
			TimeSlot: entry.TimeSlot,
			Task:     task,
			Type:     entryType,
			Reason:   reason,
		})
	}

	return resolved
}

func breakTask(now time.Time) model.Task {
	return model.Task{
		ID:             uuid.NewString(),
		Title:          "Break",
		Priority:       constants.PriorityLow,
		EstimatedHours: 0.25,
		Status:         constants.StatusScheduled,
		Tags:           []string{"break"},
		Recurrence:     constants.RecurrenceSingle,
		CreatedAt:      now,
	}
}
