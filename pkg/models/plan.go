package model

import "daily-planner.com/daily-planner/pkg/constants"

// ScheduleEntry is one time-boxed unit of a generated plan. Entries are
// ephemeral: they live in the generation response until the user applies or
// discards the plan.
type ScheduleEntry struct {
	TimeSlot string              `json:"timeSlot"`
	Task     Task                `json:"task"`
	Type     constants.EntryType `json:"type"`
	Reason   string              `json:"reason"`
}

type ProjectAnalysis struct {
	HighValueProjects string `json:"highValueProjects"`
	TimeAllocation    string `json:"timeAllocation"`
	RiskWarning       string `json:"riskWarning"`
}

type DailyPlan struct {
	Schedule              []ScheduleEntry `json:"schedule"`
	Suggestions           []string        `json:"suggestions"`
	EstimatedProductivity float64         `json:"estimatedProductivity"`
	ProjectAnalysis       ProjectAnalysis `json:"projectAnalysis"`
}
