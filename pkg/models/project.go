package model

import (
	"time"

	"daily-planner.com/daily-planner/pkg/constants"
)

type Milestone struct {
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

type Project struct {
	ID           string                    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string                    `gorm:"index;size:64" json:"user_id"`
	Name         string                    `gorm:"not null" json:"name"`
	Priority     constants.ProjectPriority `gorm:"type:varchar(30);not null" json:"priority"`
	IndustryID   *string                   `gorm:"size:36" json:"industry_id,omitempty"`
	DurationDays int                       `json:"duration_days"`
	Milestones   []Milestone               `gorm:"serializer:json" json:"milestones,omitempty"`
	Version      uint                      `gorm:"not null;default:1" json:"version"`
	CreatedAt    time.Time                 `json:"created_at"`
}
