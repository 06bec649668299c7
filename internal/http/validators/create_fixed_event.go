package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "daily-planner.com/daily-planner/internal/data_models"
	"daily-planner.com/daily-planner/internal/planner"
)

func ValidateCreateFixedEventRequest(r *dto.CreateFixedEventRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if _, err := planner.MinutesOf(r.StartTime); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_time must be HH:mm")
	}
	if _, err := planner.MinutesOf(r.EndTime); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_time must be HH:mm")
	}
	if len(r.DaysOfWeek) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "days_of_week is required")
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return echo.NewHTTPError(http.StatusBadRequest, "days_of_week values must be 0-6")
		}
	}
	return nil
}
