package services

import (
	"context"

	dto "daily-planner.com/daily-planner/internal/data_models"
	repository "daily-planner.com/daily-planner/internal/repositories"
	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

// CatalogService covers the read-mostly planning inputs: projects and fixed
// events.
type CatalogService struct {
	projects *repository.ProjectRepository
	events   *repository.FixedEventRepository
}

func NewCatalogService(projects *repository.ProjectRepository, events *repository.FixedEventRepository) *CatalogService {
	return &CatalogService{
		projects: projects,
		events:   events,
	}
}

func (s *CatalogService) CreateProject(ctx context.Context, userID string, req *dto.CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		UserID:       userID,
		Name:         req.Name,
		Priority:     constants.ProjectPriority(req.Priority),
		IndustryID:   req.IndustryID,
		DurationDays: req.DurationDays,
		Milestones:   req.Milestones,
	}

	return s.projects.Create(ctx, project)
}

func (s *CatalogService) ListProjects(ctx context.Context, userID string) ([]model.Project, error) {
	return s.projects.List(ctx, userID)
}

func (s *CatalogService) CreateFixedEvent(ctx context.Context, userID string, req *dto.CreateFixedEventRequest) (*model.FixedEvent, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	event := &model.FixedEvent{
		UserID:      userID,
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		DaysOfWeek:  req.DaysOfWeek,
		Category:    constants.EventCategory(req.Category),
		Description: req.Description,
		IsActive:    active,
	}

	return s.events.Create(ctx, event)
}

func (s *CatalogService) ListFixedEvents(ctx context.Context, userID string) ([]model.FixedEvent, error) {
	return s.events.List(ctx, userID)
}
