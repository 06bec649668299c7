package services

import (
	"context"
	"errors"
	"log"
	"time"

	dto "daily-planner.com/daily-planner/internal/data_models"
	apperrors "daily-planner.com/daily-planner/internal/errors"
	"daily-planner.com/daily-planner/internal/planner"
	"daily-planner.com/daily-planner/internal/queue"
	repository "daily-planner.com/daily-planner/internal/repositories"
	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

// PlanService orchestrates plan generation: it acquires a generation slot,
// assembles an explicit snapshot of the user's data and hands everything to
// the planner. It only reads the store; writes happen in ApplyPlan when the
// user accepts a plan.
type PlanService struct {
	slots    queue.SlotManager
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	events   *repository.FixedEventRepository
	planner  *planner.Planner
	loc      *time.Location
}

func NewPlanService(
	slots queue.SlotManager,
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	events *repository.FixedEventRepository,
	pl *planner.Planner,
	loc *time.Location,
) *PlanService {
	return &PlanService{
		slots:    slots,
		tasks:    tasks,
		projects: projects,
		events:   events,
		planner:  pl,
		loc:      loc,
	}
}

func (s *PlanService) GeneratePlan(ctx context.Context, userID string, req *dto.GeneratePlanRequest) (*model.DailyPlan, error) {
	if err := s.slots.Acquire(ctx); err != nil {
		if errors.Is(err, queue.ErrNoSlotAvailable) {
			return nil, apperrors.ErrPlanLimitReached
		}
		return nil, err
	}
	defer func() {
		if err := s.slots.Release(context.Background()); err != nil {
			log.Printf("failed to release plan slot: %v", err)
		}
	}()

	input, err := s.buildInput(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	return s.planner.GeneratePlan(ctx, *input)
}

// buildInput turns the request into the planner's snapshot. Arrays supplied by
// the caller win; omitted ones are read from the store.
func (s *PlanService) buildInput(ctx context.Context, userID string, req *dto.GeneratePlanRequest) (*planner.PlanInput, error) {
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	tasks := req.ExistingTasks
	if len(tasks) == 0 {
		tasks, err = s.tasks.ListByStatus(ctx, userID, constants.StatusPool)
		if err != nil {
			return nil, err
		}
	}

	projects := req.Projects
	if len(projects) == 0 {
		projects, err = s.projects.List(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	events := req.FixedEvents
	if len(events) == 0 {
		events, err = s.events.List(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return &planner.PlanInput{
		Date:           date,
		StartTime:      req.StartTime,
		StartClock:     req.StartTimeString,
		WorkEndClock:   req.WorkEndTime,
		AvailableHours: req.AvailableHours,
		Tasks:          tasks,
		Projects:       projects,
		FixedEvents:    events,
		FrequencyStats: planner.FrequencyStats{
			Daily:   req.TaskFrequencyStats.Daily,
			Weekly:  req.TaskFrequencyStats.Weekly,
			Monthly: req.TaskFrequencyStats.Monthly,
			Single:  req.TaskFrequencyStats.Single,
		},
		Preferences: planner.Preferences{
			WorkStyle:      req.Preferences.WorkStyle,
			FocusBlocks:    req.Preferences.FocusBlocks,
			BreakFrequency: req.Preferences.BreakFrequency,
		},
		UserPreferences: req.UserPreferences,
	}, nil
}

// ApplyPlan converts accepted schedule entries into task updates. Each task is
// updated independently with no batch atomicity: a partial apply leaves some
// tasks scheduled and others not, which is accepted behavior.
func (s *PlanService) ApplyPlan(ctx context.Context, userID string, req *dto.ApplyPlanRequest) (int, error) {
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, entry := range req.Entries {
		startMin, _, err := planner.SlotBounds(entry.TimeSlot)
		if err != nil {
			log.Printf("apply: skipping entry with bad slot %q: %v", entry.TimeSlot, err)
			continue
		}

		task, err := s.tasks.FindByID(ctx, userID, entry.TaskID)
		if err != nil {
			log.Printf("apply: task %s not found", entry.TaskID)
			continue
		}

		scheduledStart := time.Date(
			date.Year(), date.Month(), date.Day(),
			startMin/60, startMin%60, 0, 0, s.loc,
		)

		task.Status = constants.StatusScheduled
		task.TimeSlot = entry.TimeSlot
		task.ScheduledStartTime = &scheduledStart

		if err := s.tasks.Update(ctx, task); err != nil {
			log.Printf("apply: failed to update task %s: %v", task.ID, err)
			continue
		}
		applied++
	}

	return applied, nil
}

func (s *PlanService) resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().In(s.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc), nil
	}
	return time.ParseInLocation("2006-01-02", raw, s.loc)
}
