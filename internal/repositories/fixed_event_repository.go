package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "daily-planner.com/daily-planner/pkg/models"
)

type FixedEventRepository struct {
	db *gorm.DB
}

func NewFixedEventRepository(db *gorm.DB) *FixedEventRepository {
	return &FixedEventRepository{db: db}
}

func (r *FixedEventRepository) Create(ctx context.Context, event *model.FixedEvent) (*model.FixedEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

func (r *FixedEventRepository) List(ctx context.Context, userID string) ([]model.FixedEvent, error) {
	var events []model.FixedEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time asc").Find(&events).Error
	return events, err
}
