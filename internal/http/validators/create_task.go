package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "daily-planner.com/daily-planner/internal/data_models"
	"daily-planner.com/daily-planner/pkg/constants"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.EstimatedHours <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "estimated_hours must be greater than 0")
	}
	if r.Priority != "" && !validPriority(constants.TaskPriority(r.Priority)) {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be urgent, high, medium or low")
	}
	if r.Recurrence != "" && !validRecurrence(constants.TaskRecurrence(r.Recurrence)) {
		return echo.NewHTTPError(http.StatusBadRequest, "recurrence must be single, daily, weekly or monthly")
	}
	return nil
}

func validPriority(p constants.TaskPriority) bool {
	switch p {
	case constants.PriorityUrgent, constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow:
		return true
	}
	return false
}

func validRecurrence(r constants.TaskRecurrence) bool {
	switch r {
	case constants.RecurrenceSingle, constants.RecurrenceDaily, constants.RecurrenceWeekly, constants.RecurrenceMonthly:
		return true
	}
	return false
}
