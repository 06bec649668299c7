package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dto "daily-planner.com/daily-planner/internal/data_models"
	apperrors "daily-planner.com/daily-planner/internal/errors"
	repository "daily-planner.com/daily-planner/internal/repositories"
	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*model.Task, error) {
	priority := constants.TaskPriority(req.Priority)
	if priority == "" {
		priority = constants.PriorityMedium
	}

	task := &model.Task{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		ProjectID:      req.ProjectID,
		Priority:       priority,
		EstimatedHours: req.EstimatedHours,
		Deadline:       req.Deadline,
		Tags:           req.Tags,
		Dependencies:   req.Dependencies,
		Recurrence:     constants.TaskRecurrence(req.Recurrence),
		Status:         constants.StatusPool,
	}

	return s.repo.Create(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.repo.List(ctx, userID)
}

// CompleteTask marks a task done. Completed status and the completion instant
// are set together; they never diverge.
func (s *TaskService) CompleteTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.GetTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now().UTC()
	task.Status = constants.StatusCompleted
	task.CompletedAt = &completedAt

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrOptimisticLock) {
			return nil, apperrors.ErrOptimisticLock
		}
		return nil, err
	}

	return task, nil
}
