package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dto "daily-planner.com/daily-planner/internal/data_models"
	"daily-planner.com/daily-planner/internal/planner"
	"daily-planner.com/daily-planner/internal/queue"
	repository "daily-planner.com/daily-planner/internal/repositories"
	"daily-planner.com/daily-planner/pkg/constants"
	model "daily-planner.com/daily-planner/pkg/models"
)

const testUser = "local"

// mockSlotManager is a simple in-memory slot manager for testing
type mockSlotManager struct {
	mu    sync.Mutex
	slots int
}

func newMockSlotManager(capacity int) *mockSlotManager {
	return &mockSlotManager{slots: capacity}
}

func (m *mockSlotManager) Acquire(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots <= 0 {
		return queue.ErrNoSlotAvailable
	}
	m.slots--
	return nil
}

func (m *mockSlotManager) Release(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots++
	return nil
}

func (m *mockSlotManager) Fill(ctx context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots = count
	return nil
}

// stubCompleter returns a fixed completion body
type stubCompleter struct {
	content string
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return s.content, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{}, &model.Project{}, &model.FixedEvent{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTestPlanService(t *testing.T, db *gorm.DB, content string, capacity int) (*PlanService, *repository.TaskRepository) {
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	eventRepo := repository.NewFixedEventRepository(db)

	pl := planner.New(&stubCompleter{content: content}, time.UTC)
	slots := newMockSlotManager(capacity)

	return NewPlanService(slots, taskRepo, projectRepo, eventRepo, pl, time.UTC), taskRepo
}

func createPoolTask(t *testing.T, repo *repository.TaskRepository, id, title string) *model.Task {
	task, err := repo.Create(context.Background(), &model.Task{
		ID:             id,
		UserID:         testUser,
		Title:          title,
		Priority:       constants.PriorityMedium,
		EstimatedHours: 1,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

func TestTaskService_CreateAndComplete(t *testing.T) {
	db := setupTestDB(t)
	service := NewTaskService(repository.NewTaskRepository(db))

	ctx := context.Background()
	task, err := service.CreateTask(ctx, testUser, &dto.CreateTaskRequest{
		Title:          "Write report",
		EstimatedHours: 2,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.ID == "" {
		t.Error("expected task ID to be set")
	}
	if task.Status != constants.StatusPool {
		t.Errorf("expected status %s, got %s", constants.StatusPool, task.Status)
	}
	if task.Priority != constants.PriorityMedium {
		t.Errorf("expected default priority medium, got %s", task.Priority)
	}

	completed, err := service.CompleteTask(ctx, testUser, task.ID)
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}
	if completed.Status != constants.StatusCompleted {
		t.Errorf("expected status completed, got %s", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Error("completed task must carry a completion instant")
	}
}

func TestPlanService_GeneratePlanFromStore(t *testing.T) {
	db := setupTestDB(t)
	service, repo := newTestPlanService(t, db, `{
		"schedule": [
			{"timeSlot": "09:00-10:00", "taskId": "t1", "type": "focus", "reason": "first"},
			{"timeSlot": "10:00-10:15", "taskId": "break", "type": "break"}
		]
	}`, 1)

	createPoolTask(t, repo, "t1", "Write report")

	plan, err := service.GeneratePlan(context.Background(), testUser, &dto.GeneratePlanRequest{
		Date:            "2026-09-01",
		StartTimeString: "09:00",
		WorkEndTime:     "18:00",
	})
	if err != nil {
		t.Fatalf("failed to generate plan: %v", err)
	}

	if len(plan.Schedule) != 2 {
		t.Fatalf("expected 2 schedule entries, got %d", len(plan.Schedule))
	}
	if plan.Schedule[0].Task.Title != "Write report" {
		t.Errorf("expected resolved task title, got %q", plan.Schedule[0].Task.Title)
	}
	if plan.EstimatedProductivity != 75 {
		t.Errorf("expected default productivity 75, got %v", plan.EstimatedProductivity)
	}
}

func TestPlanService_SlotExhaustion(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestPlanService(t, db, `{"schedule": []}`, 0)

	_, err := service.GeneratePlan(context.Background(), testUser, &dto.GeneratePlanRequest{
		StartTimeString: "09:00",
	})
	if err == nil {
		t.Fatal("expected error when no plan slot is available")
	}
}

func TestPlanService_SlotReleasedAfterGeneration(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestPlanService(t, db, `{"schedule": []}`, 1)

	for i := 0; i < 3; i++ {
		_, err := service.GeneratePlan(context.Background(), testUser, &dto.GeneratePlanRequest{
			StartTimeString: "09:00",
		})
		if err != nil {
			t.Fatalf("generation %d failed, slot was not released: %v", i, err)
		}
	}
}

func TestPlanService_ApplyPlan(t *testing.T) {
	db := setupTestDB(t)
	service, repo := newTestPlanService(t, db, `{"schedule": []}`, 1)

	createPoolTask(t, repo, "t1", "Write report")
	createPoolTask(t, repo, "t2", "Review code")

	applied, err := service.ApplyPlan(context.Background(), testUser, &dto.ApplyPlanRequest{
		Date: "2026-09-01",
		Entries: []dto.ApplyEntry{
			{TaskID: "t1", TimeSlot: "09:00-10:30"},
			{TaskID: "ghost", TimeSlot: "10:30-11:00"}, // unknown ids are skipped
			{TaskID: "t2", TimeSlot: "bad-slot"},       // malformed slots are skipped
		},
	})
	if err != nil {
		t.Fatalf("failed to apply plan: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected 1 applied entry, got %d", applied)
	}

	task, err := repo.FindByID(context.Background(), testUser, "t1")
	if err != nil {
		t.Fatalf("failed to fetch task: %v", err)
	}
	if task.Status != constants.StatusScheduled {
		t.Errorf("expected status scheduled, got %s", task.Status)
	}
	if task.TimeSlot != "09:00-10:30" {
		t.Errorf("expected time slot 09:00-10:30, got %q", task.TimeSlot)
	}
	if task.ScheduledStartTime == nil {
		t.Fatal("expected scheduled start time to be set")
	}
	if got := task.ScheduledStartTime.Format("2006-01-02 15:04"); got != "2026-09-01 09:00" {
		t.Errorf("expected scheduled start 2026-09-01 09:00, got %s", got)
	}

	untouched, _ := repo.FindByID(context.Background(), testUser, "t2")
	if untouched.Status != constants.StatusPool {
		t.Errorf("task with malformed slot must stay in pool, got %s", untouched.Status)
	}
}

func TestRecurrence_WindowElapsed(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		recurrence  constants.TaskRecurrence
		completedAt time.Time
		want        bool
	}{
		{"daily elapsed", constants.RecurrenceDaily, now.Add(-25 * time.Hour), true},
		{"daily pending", constants.RecurrenceDaily, now.Add(-2 * time.Hour), false},
		{"weekly elapsed", constants.RecurrenceWeekly, now.Add(-8 * 24 * time.Hour), true},
		{"weekly pending", constants.RecurrenceWeekly, now.Add(-3 * 24 * time.Hour), false},
		{"monthly elapsed", constants.RecurrenceMonthly, now.AddDate(0, -2, 0), true},
		{"monthly pending", constants.RecurrenceMonthly, now.AddDate(0, 0, -10), false},
		{"single never resets", constants.RecurrenceSingle, now.AddDate(-1, 0, 0), false},
	}

	for _, tc := range cases {
		completedAt := tc.completedAt
		task := model.Task{Recurrence: tc.recurrence, CompletedAt: &completedAt}
		if got := windowElapsed(task, now); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	if windowElapsed(model.Task{Recurrence: constants.RecurrenceDaily}, now) {
		t.Error("task without a completion instant must not reset")
	}
}

func TestRecurrence_ResetOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTaskRepository(db)

	service := &RecurrenceService{
		repo: repo,
		loc:  time.UTC,
		stop: make(chan struct{}),
	}

	ctx := context.Background()
	stale := time.Now().UTC().Add(-48 * time.Hour)
	fresh := time.Now().UTC().Add(-1 * time.Hour)

	elapsed, _ := repo.Create(ctx, &model.Task{
		ID: "r1", UserID: testUser, Title: "Daily review",
		Priority: constants.PriorityMedium, EstimatedHours: 0.5,
		Recurrence: constants.RecurrenceDaily,
	})
	elapsed.Status = constants.StatusCompleted
	elapsed.CompletedAt = &stale
	elapsed.TimeSlot = "09:00-09:30"
	if err := repo.Update(ctx, elapsed); err != nil {
		t.Fatalf("failed to seed elapsed task: %v", err)
	}

	pending, _ := repo.Create(ctx, &model.Task{
		ID: "r2", UserID: testUser, Title: "Daily standup",
		Priority: constants.PriorityMedium, EstimatedHours: 0.25,
		Recurrence: constants.RecurrenceDaily,
	})
	pending.Status = constants.StatusCompleted
	pending.CompletedAt = &fresh
	if err := repo.Update(ctx, pending); err != nil {
		t.Fatalf("failed to seed pending task: %v", err)
	}

	service.resetOnce()

	reset, _ := repo.FindByID(ctx, testUser, "r1")
	if reset.Status != constants.StatusPool {
		t.Errorf("elapsed recurring task should be back in pool, got %s", reset.Status)
	}
	if reset.CompletedAt != nil || reset.TimeSlot != "" {
		t.Error("reset task must have completion and slot fields cleared")
	}

	kept, _ := repo.FindByID(ctx, testUser, "r2")
	if kept.Status != constants.StatusCompleted {
		t.Errorf("fresh recurring task should stay completed, got %s", kept.Status)
	}
}
