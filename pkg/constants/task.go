package constants

type TaskStatus string

const (
	StatusPool       TaskStatus = "pool"
	StatusScheduled  TaskStatus = "scheduled"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

type TaskRecurrence string

const (
	RecurrenceSingle  TaskRecurrence = "single"
	RecurrenceDaily   TaskRecurrence = "daily"
	RecurrenceWeekly  TaskRecurrence = "weekly"
	RecurrenceMonthly TaskRecurrence = "monthly"
)
