package model

import (
	"time"

	"daily-planner.com/daily-planner/pkg/constants"
)

type Task struct {
	ID                 string                   `gorm:"primaryKey;size:36" json:"id"`
	UserID             string                   `gorm:"index;size:64" json:"user_id"`
	Title              string                   `gorm:"not null" json:"title"`
	Description        string                   `json:"description,omitempty"`
	ProjectID          *string                  `gorm:"size:36" json:"project_id,omitempty"`
	Priority           constants.TaskPriority   `gorm:"type:varchar(10);not null" json:"priority"`
	EstimatedHours     float64                  `gorm:"not null" json:"estimated_hours"`
	ActualHours        *float64                 `json:"actual_hours,omitempty"`
	Deadline           *time.Time               `json:"deadline,omitempty"`
	ScheduledStartTime *time.Time               `json:"scheduled_start_time,omitempty"`
	TimeSlot           string                   `gorm:"size:11" json:"time_slot,omitempty"`
	Status             constants.TaskStatus     `gorm:"type:varchar(20);not null" json:"status"`
	Tags               []string                 `gorm:"serializer:json" json:"tags,omitempty"`
	Dependencies       []string                 `gorm:"serializer:json" json:"dependencies,omitempty"`
	Recurrence         constants.TaskRecurrence `gorm:"type:varchar(10);not null" json:"recurrence"`
	OriginalTaskID     *string                  `gorm:"size:36" json:"original_task_id,omitempty"`
	SegmentIndex       int                      `json:"segment_index,omitempty"`
	SegmentCount       int                      `json:"segment_count,omitempty"`
	Version            uint                     `gorm:"not null;default:1" json:"version"`
	CreatedAt          time.Time                `json:"created_at"`
	CompletedAt        *time.Time               `json:"completed_at,omitempty"`
}
