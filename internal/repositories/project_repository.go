package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "daily-planner.com/daily-planner/pkg/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.Version = 1
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context, userID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").Find(&projects).Error
	return projects, err
}
