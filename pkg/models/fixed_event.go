package model

import (
	"time"

	"daily-planner.com/daily-planner/pkg/constants"
)

// FixedEvent is a recurring calendar block the planner must not schedule over.
// StartTime and EndTime are "HH:mm" clock strings; DaysOfWeek uses
// 0=Sunday..6=Saturday.
type FixedEvent struct {
	ID          string                  `gorm:"primaryKey;size:36" json:"id"`
	UserID      string                  `gorm:"index;size:64" json:"user_id"`
	Title       string                  `gorm:"not null" json:"title"`
	StartTime   string                  `gorm:"size:5;not null" json:"start_time"`
	EndTime     string                  `gorm:"size:5;not null" json:"end_time"`
	DaysOfWeek  []int                   `gorm:"serializer:json" json:"days_of_week"`
	Category    constants.EventCategory `gorm:"type:varchar(20);not null" json:"category"`
	Description string                  `json:"description,omitempty"`
	IsActive    bool                    `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time               `json:"created_at"`
}
