package planner

import model "daily-planner.com/daily-planner/pkg/models"

// Defaults substituted for fields the model left out. These live here, and
// only here, so tests can enumerate them exhaustively.
const defaultProductivity = 75

var defaultAnalysis = model.ProjectAnalysis{
	HighValueProjects: "No project analysis available",
	TimeAllocation:    "No time allocation analysis available",
	RiskWarning:       "No risk warnings",
}

// assemblePlan combines the resolved schedule with the model's advisory
// fields. Absent fields get defaults; present fields pass through unchanged
// even when semantically odd (a productivity above 100 is not clamped).
func assemblePlan(entries []model.ScheduleEntry, raw *rawPlan) *model.DailyPlan {
	plan := &model.DailyPlan{
		Schedule:              entries,
		Suggestions:           []string{},
		EstimatedProductivity: defaultProductivity,
		ProjectAnalysis:       defaultAnalysis,
	}

	if raw.Suggestions != nil {
		plan.Suggestions = raw.Suggestions
	}
	if raw.EstimatedProductivity != nil {
		plan.EstimatedProductivity = *raw.EstimatedProductivity
	}
	if raw.ProjectAnalysis != nil {
		plan.ProjectAnalysis = *raw.ProjectAnalysis
	}

	return plan
}
