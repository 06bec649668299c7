package dto

import (
	"time"

	model "daily-planner.com/daily-planner/pkg/models"
)

type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ProjectID      *string    `json:"project_id,omitempty"`
	Priority       string     `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Dependencies   []string   `json:"dependencies,omitempty"`
	Recurrence     string     `json:"recurrence"`
}

type CreateProjectRequest struct {
	Name         string            `json:"name"`
	Priority     string            `json:"priority"`
	IndustryID   *string           `json:"industry_id,omitempty"`
	DurationDays int               `json:"duration_days"`
	Milestones   []model.Milestone `json:"milestones,omitempty"`
}

type CreateFixedEventRequest struct {
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DaysOfWeek  []int  `json:"days_of_week"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
