package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "daily-planner.com/daily-planner/internal/errors"
	model "daily-planner.com/daily-planner/pkg/models"
)

// rawEntry is one row of the model's proposed schedule, before correction.
// Every field is untrusted.
type rawEntry struct {
	TimeSlot string `json:"timeSlot"`
	TaskID   string `json:"taskId"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
}

// rawPlan is the validated shape of the completion. Optional fields stay nil
// when absent; the assembler owns their defaults.
type rawPlan struct {
	Schedule              []rawEntry
	Suggestions           []string
	EstimatedProductivity *float64
	ProjectAnalysis       *model.ProjectAnalysis
}

// parseCompletion validates the completion content before any field is read.
// It distinguishes "not JSON at all" from "JSON without a schedule array"
// because the two imply different failures upstream.
func parseCompletion(content string) (*rawPlan, error) {
	trimmed := stripCodeFence(content)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCompletion, err)
	}

	rawSchedule, ok := fields["schedule"]
	if !ok || string(rawSchedule) == "null" {
		return nil, apperrors.ErrMissingSchedule
	}

	plan := &rawPlan{}
	if err := json.Unmarshal(rawSchedule, &plan.Schedule); err != nil {
		return nil, fmt.Errorf("%w: schedule is not an array of entries", apperrors.ErrMissingSchedule)
	}

	if raw, ok := fields["suggestions"]; ok {
		_ = json.Unmarshal(raw, &plan.Suggestions)
	}
	if raw, ok := fields["estimatedProductivity"]; ok {
		_ = json.Unmarshal(raw, &plan.EstimatedProductivity)
	}
	if raw, ok := fields["projectAnalysis"]; ok {
		_ = json.Unmarshal(raw, &plan.ProjectAnalysis)
	}

	return plan, nil
}

// stripCodeFence removes a surrounding markdown fence. Models emit fenced JSON
// even when told not to.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
