package planner

import (
	"fmt"
	"strings"

	model "daily-planner.com/daily-planner/pkg/models"
)

// maxPromptTasks caps how many tasks are spelled out in the prompt so the
// payload stays bounded; the true total is stated separately.
const maxPromptTasks = 15

// planSystemPrompt instructs the model to propose a draft daily schedule.
// The model is not trusted to satisfy this contract; the corrector repairs
// whatever comes back.
const planSystemPrompt = `You are a daily planning assistant. Given a pool of tasks, fixed
calendar events and the user's working window, propose a schedule for the day.

You must output ONLY a JSON object with these exact fields:
- schedule: array of objects, each with:
  - timeSlot: "HH:mm-HH:mm" (24-hour, zero-padded)
  - taskId: the id of a task from the task list, or the literal "break"
  - type: "focus", "regular" or "break"
  - reason: one sentence explaining why this block is placed here
- suggestions: array of short, actionable strings
- estimatedProductivity: number from 0 to 100
- projectAnalysis: object with string fields highValueProjects, timeAllocation, riskWarning

CRITICAL RULES:
1. The first slot MUST start exactly at the given start time; each slot starts where
   the previous one ends
2. No slot may end after the given stop time
3. Never schedule over a fixed event
4. Only use taskId values from the task list; never invent ids
5. Prioritize urgent tasks, near deadlines, and income-generating projects
6. Insert breaks matching the user's break frequency
7. Output ONLY the JSON object, no markdown, no explanation`

// buildUserPrompt assembles the data half of the planning request.
func buildUserPrompt(input PlanInput, events []model.FixedEvent, startClock, stopClock string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan the day %s.\n", input.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Start time: %s\n", startClock)
	fmt.Fprintf(&b, "Stop time: %s\n", stopClock)
	if input.AvailableHours > 0 {
		fmt.Fprintf(&b, "Available hours: %.1f\n", input.AvailableHours)
	}
	fmt.Fprintf(&b, "Work style: %s, focus blocks: %d, break every %d minutes\n",
		input.Preferences.WorkStyle, input.Preferences.FocusBlocks, input.Preferences.BreakFrequency)

	b.WriteString("\nFixed events today (do not schedule over these):\n")
	if len(events) == 0 {
		b.WriteString("- none\n")
	}
	for _, ev := range events {
		fmt.Fprintf(&b, "- %s-%s %s (%s)", ev.StartTime, ev.EndTime, ev.Title, ev.Category)
		if ev.Description != "" {
			fmt.Fprintf(&b, ": %s", ev.Description)
		}
		b.WriteString("\n")
	}

	stats := input.FrequencyStats
	fmt.Fprintf(&b, "\nProjects: %d. Tasks in pool: %d (daily %d, weekly %d, monthly %d, one-off %d).\n",
		len(input.Projects), len(input.Tasks), stats.Daily, stats.Weekly, stats.Monthly, stats.Single)

	projects := projectIndex(input.Projects)

	shown := input.Tasks
	if len(shown) > maxPromptTasks {
		shown = shown[:maxPromptTasks]
		fmt.Fprintf(&b, "Showing the first %d tasks:\n", maxPromptTasks)
	} else {
		b.WriteString("Tasks:\n")
	}

	for _, task := range shown {
		fmt.Fprintf(&b, "- id=%s %q priority=%s estimate=%.2fh",
			task.ID, task.Title, task.Priority, task.EstimatedHours)
		if task.Deadline != nil {
			fmt.Fprintf(&b, " deadline=%s", task.Deadline.Format("2006-01-02 15:04"))
		}
		if task.ProjectID != nil {
			if p, ok := projects[*task.ProjectID]; ok {
				fmt.Fprintf(&b, " project=%q (%s)", p.Name, p.Priority)
			}
		}
		b.WriteString("\n")
	}

	if input.UserPreferences != "" {
		fmt.Fprintf(&b, "\nUser notes: %s\n", input.UserPreferences)
	}

	return b.String()
}

func projectIndex(projects []model.Project) map[string]model.Project {
	index := make(map[string]model.Project, len(projects))
	for _, p := range projects {
		index[p.ID] = p
	}
	return index
}
