package dto

import (
	"time"

	model "daily-planner.com/daily-planner/pkg/models"
)

type PlanPreferences struct {
	WorkStyle      string `json:"workStyle"`
	FocusBlocks    int    `json:"focusBlocks"`
	BreakFrequency int    `json:"breakFrequency"`
}

type TaskFrequencyStats struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
	Single  int `json:"single"`
}

// GeneratePlanRequest is the inbound plan-generation payload. The snapshot
// arrays are optional; when omitted the service reads them from the store.
type GeneratePlanRequest struct {
	Date               string             `json:"date"` // YYYY-MM-DD, defaults to today
	StartTime          *time.Time         `json:"startTime,omitempty"`
	StartTimeString    string             `json:"startTimeString,omitempty"`
	WorkEndTime        string             `json:"workEndTime,omitempty"`
	AvailableHours     float64            `json:"availableHours"`
	ExistingTasks      []model.Task       `json:"existingTasks,omitempty"`
	Projects           []model.Project    `json:"projects,omitempty"`
	FixedEvents        []model.FixedEvent `json:"fixedEvents,omitempty"`
	TaskFrequencyStats TaskFrequencyStats `json:"taskFrequencyStats"`
	Preferences        PlanPreferences    `json:"preferences"`
	UserPreferences    string             `json:"userPreferences,omitempty"`
}

type ApplyEntry struct {
	TaskID   string `json:"taskId"`
	TimeSlot string `json:"timeSlot"`
}

// ApplyPlanRequest converts selected schedule entries into task updates.
type ApplyPlanRequest struct {
	Date    string       `json:"date"` // YYYY-MM-DD, defaults to today
	Entries []ApplyEntry `json:"entries"`
}
