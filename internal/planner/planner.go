package planner

import (
	"context"
	"fmt"
	"time"

	model "daily-planner.com/daily-planner/pkg/models"
)

const defaultWorkEndClock = "18:00"

// Completer is the external completion service: prompt in, raw content out.
// One attempt per generation; failures propagate to the caller.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// PlanInput is an explicit read-only snapshot of everything a generation
// needs. The planner holds no ambient state.
type PlanInput struct {
	Date            time.Time
	StartTime       *time.Time
	StartClock      string // "HH:mm"; wins over StartTime when set
	WorkEndClock    string // "HH:mm"; defaults to 18:00
	AvailableHours  float64
	Tasks           []model.Task
	Projects        []model.Project
	FixedEvents     []model.FixedEvent
	FrequencyStats  FrequencyStats
	Preferences     Preferences
	UserPreferences string
}

type FrequencyStats struct {
	Daily   int
	Weekly  int
	Monthly int
	Single  int
}

type Preferences struct {
	WorkStyle      string
	FocusBlocks    int
	BreakFrequency int
}

type Planner struct {
	completer Completer
	loc       *time.Location
}

func New(completer Completer, loc *time.Location) *Planner {
	return &Planner{
		completer: completer,
		loc:       loc,
	}
}

// GeneratePlan runs the full pipeline: filter fixed events, build the prompt,
// call the completion service, validate the reply, correct the timeline,
// resolve tasks and assemble the response.
func (p *Planner) GeneratePlan(ctx context.Context, input PlanInput) (*model.DailyPlan, error) {
	startClock := p.resolveStartClock(input)

	stopClock := input.WorkEndClock
	if stopClock == "" {
		stopClock = defaultWorkEndClock
	}

	start, err := MinutesOf(startClock)
	if err != nil {
		return nil, err
	}
	stop, err := MinutesOf(stopClock)
	if err != nil {
		return nil, err
	}

	events := ActiveEvents(input.FixedEvents, input.Date)
	user := buildUserPrompt(input, events, startClock, stopClock)

	content, err := p.completer.Complete(ctx, planSystemPrompt, user)
	if err != nil {
		return nil, err
	}

	raw, err := parseCompletion(content)
	if err != nil {
		return nil, err
	}

	corrected := correctSchedule(raw.Schedule, start, stop)
	resolved := resolveTasks(corrected, input.Tasks, time.Now().In(p.loc))

	return assemblePlan(resolved, raw), nil
}

// resolveStartClock picks the effective start time: explicit clock string,
// then explicit instant, then the current time in the planning timezone.
func (p *Planner) resolveStartClock(input PlanInput) string {
	if input.StartClock != "" {
		return input.StartClock
	}
	if input.StartTime != nil {
		t := input.StartTime.In(p.loc)
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	now := time.Now().In(p.loc)
	return fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
}
