package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrOptimisticLock = errors.New("optimistic locking conflict")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create stores a new task. ID, version, creation time and the pool status
// are filled in when the caller leaves them zero.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = constants.StatusPool
	}
	if task.Recurrence == "" {
		task.Recurrence = constants.RecurrenceSingle
	}
	task.Version = 1
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// ListByStatus returns the user's tasks in the given status, oldest first, so
// the prompt's truncation keeps the longest-waiting work.
func (r *TaskRepository) ListByStatus(ctx context.Context, userID string, status constants.TaskStatus) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("created_at asc").Find(&tasks).Error
	return tasks, err
}

// ListRecurringCompleted returns completed recurring tasks, candidates for
// being returned to the pool.
func (r *TaskRepository) ListRecurringCompleted(ctx context.Context, limit int) ([]model.Task, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	var tasks []model.Task
	query := r.db.WithContext(ctx).
		Where("status = ? AND recurrence <> ?", constants.StatusCompleted, constants.RecurrenceSingle).
		Order("completed_at asc").Limit(limit)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":                task.Title,
			"description":          task.Description,
			"priority":             task.Priority,
			"estimated_hours":      task.EstimatedHours,
			"actual_hours":         task.ActualHours,
			"deadline":             task.Deadline,
			"scheduled_start_time": task.ScheduledStartTime,
			"time_slot":            task.TimeSlot,
			"status":               task.Status,
			"completed_at":         task.CompletedAt,
			"version":              gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	return nil
}
