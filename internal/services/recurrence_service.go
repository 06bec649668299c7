package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	repository "daily-planner.com/daily-planner/internal/repositories"
	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

// RecurrenceService returns completed recurring tasks to the pool once their
// recurrence window has elapsed, clearing completion and slot fields so they
// are eligible for the next generated plan.
type RecurrenceService struct {
	repo     *repository.TaskRepository
	interval time.Duration
	loc      *time.Location
	stop     chan struct{}
	wg       sync.WaitGroup
}

func NewRecurrenceService(repo *repository.TaskRepository, interval time.Duration, loc *time.Location) *RecurrenceService {
	s := &RecurrenceService{
		repo:     repo,
		interval: interval,
		loc:      loc,
		stop:     make(chan struct{}),
	}

	s.wg.Add(1)
	go s.resetLoop()

	return s
}

func (s *RecurrenceService) resetLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.resetOnce()
		case <-s.stop:
			return
		}
	}
}

func (s *RecurrenceService) resetOnce() {
	ctx := context.Background()

	tasks, err := s.repo.ListRecurringCompleted(ctx, 100)
	if err != nil {
		log.Printf("recurrence: failed to list completed recurring tasks: %v", err)
		return
	}

	now := time.Now().In(s.loc)
	for _, task := range tasks {
		if !windowElapsed(task, now) {
			continue
		}

		task.Status = constants.StatusPool
		task.CompletedAt = nil
		task.TimeSlot = ""
		task.ScheduledStartTime = nil

		if err := s.repo.Update(ctx, &task); err != nil {
			if errors.Is(err, repository.ErrOptimisticLock) {
				log.Printf("recurrence: conflict resetting task %s, will retry next tick", task.ID)
				continue
			}
			log.Printf("recurrence: failed to reset task %s: %v", task.ID, err)
			continue
		}

		log.Printf("recurrence: task %s returned to pool", task.ID)
	}
}

func windowElapsed(task model.Task, now time.Time) bool {
	if task.CompletedAt == nil {
		return false
	}

	completedAt := *task.CompletedAt
	switch task.Recurrence {
	case constants.RecurrenceDaily:
		return now.Sub(completedAt) >= 24*time.Hour
	case constants.RecurrenceWeekly:
		return now.Sub(completedAt) >= 7*24*time.Hour
	case constants.RecurrenceMonthly:
		return now.After(completedAt.AddDate(0, 1, 0))
	default:
		return false
	}
}

func (s *RecurrenceService) Shutdown(ctx context.Context) {
	close(s.stop)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("recurrence loop shut down cleanly")
	case <-ctx.Done():
		log.Println("recurrence loop shutdown timed out")
	}
}
