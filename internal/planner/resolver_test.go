package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

func TestResolveTasksLooksUpRealTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Title: "Write report"},
		{ID: "t2", Title: "Review code"},
	}
	entries := []rawEntry{
		{TimeSlot: "09:00-10:00", TaskID: "t2", Type: "focus", Reason: "deep work first"},
	}

	resolved := resolveTasks(entries, tasks, time.Now())
	require.Len(t, resolved, 1)
	assert.Equal(t, "Review code", resolved[0].Task.Title)
	assert.Equal(t, constants.EntryFocus, resolved[0].Type)
	assert.Equal(t, "deep work first", resolved[0].Reason)
}

func TestResolveTasksDropsUnknownID(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Title: "Real"}}
	entries := []rawEntry{
		{TimeSlot: "09:00-10:00", TaskID: "t1", Type: "regular"},
		{TimeSlot: "10:00-11:00", TaskID: "ghost-id", Type: "regular"},
	}

	resolved := resolveTasks(entries, tasks, time.Now())
	require.Len(t, resolved, 1)
	assert.Equal(t, "t1", resolved[0].Task.ID)
}

func TestResolveTasksSynthesizesBreak(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	for _, entry := range []rawEntry{
		{TimeSlot: "10:30-10:45", TaskID: "break", Type: "regular"},
		{TimeSlot: "10:30-10:45", TaskID: "whatever", Type: "break"},
	} {
		resolved := resolveTasks([]rawEntry{entry}, nil, now)
		require.Len(t, resolved, 1)

		task := resolved[0].Task
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "Break", task.Title)
		assert.Equal(t, constants.PriorityLow, task.Priority)
		assert.Equal(t, 0.25, task.EstimatedHours)
		assert.Equal(t, constants.StatusScheduled, task.Status)
		assert.Equal(t, []string{"break"}, task.Tags)
		assert.Equal(t, constants.RecurrenceSingle, task.Recurrence)
		assert.Equal(t, now, task.CreatedAt)
		assert.Equal(t, constants.EntryBreak, resolved[0].Type)
	}
}

func TestResolveTasksDefaultsReasonAndType(t *testing.T) {
	tasks := []model.Task{{ID: "t1"}}
	entries := []rawEntry{{TimeSlot: "09:00-10:00", TaskID: "t1"}}

	resolved := resolveTasks(entries, tasks, time.Now())
	require.Len(t, resolved, 1)
	assert.Equal(t, defaultReason, resolved[0].Reason)
	assert.Equal(t, constants.EntryRegular, resolved[0].Type)
}

func TestResolveTasksEmpty(t *testing.T) {
	assert.Empty(t, resolveTasks(nil, nil, time.Now()))
}
