package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "daily-planner.com/daily-planner/internal/errors"
)

func TestParseCompletionValid(t *testing.T) {
	content := `{
		"schedule": [
			{"timeSlot": "09:00-10:30", "taskId": "t1", "type": "focus", "reason": "fresh mind"}
		],
		"suggestions": ["start with the hard task"],
		"estimatedProductivity": 82,
		"projectAnalysis": {
			"highValueProjects": "A",
			"timeAllocation": "B",
			"riskWarning": "C"
		}
	}`

	plan, err := parseCompletion(content)
	require.NoError(t, err)
	require.Len(t, plan.Schedule, 1)
	assert.Equal(t, "t1", plan.Schedule[0].TaskID)
	assert.Equal(t, []string{"start with the hard task"}, plan.Suggestions)
	require.NotNil(t, plan.EstimatedProductivity)
	assert.Equal(t, 82.0, *plan.EstimatedProductivity)
	require.NotNil(t, plan.ProjectAnalysis)
	assert.Equal(t, "A", plan.ProjectAnalysis.HighValueProjects)
}

func TestParseCompletionOptionalFieldsAbsent(t *testing.T) {
	plan, err := parseCompletion(`{"schedule": []}`)
	require.NoError(t, err)
	assert.Empty(t, plan.Schedule)
	assert.Nil(t, plan.Suggestions)
	assert.Nil(t, plan.EstimatedProductivity)
	assert.Nil(t, plan.ProjectAnalysis)
}

func TestParseCompletionNotJSON(t *testing.T) {
	_, err := parseCompletion("I could not produce a schedule today, sorry!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedCompletion))
}

func TestParseCompletionMissingSchedule(t *testing.T) {
	for _, content := range []string{
		`{"suggestions": ["rest more"]}`,
		`{"schedule": null}`,
		`{"schedule": "not an array"}`,
		`{"schedule": {"timeSlot": "09:00-10:00"}}`,
	} {
		_, err := parseCompletion(content)
		require.Error(t, err, content)
		assert.True(t, errors.Is(err, apperrors.ErrMissingSchedule), content)
	}
}

func TestParseCompletionStripsCodeFence(t *testing.T) {
	fenced := "```json\n{\"schedule\": [{\"taskId\": \"t1\"}]}\n```"

	plan, err := parseCompletion(fenced)
	require.NoError(t, err)
	require.Len(t, plan.Schedule, 1)
	assert.Equal(t, "t1", plan.Schedule[0].TaskID)
}
