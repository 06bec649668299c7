package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "daily-planner.com/daily-planner/internal/data_models"
	"daily-planner.com/daily-planner/internal/planner"
)

func ValidateGeneratePlanRequest(r *dto.GeneratePlanRequest) error {
	if r.StartTimeString != "" {
		if _, err := planner.MinutesOf(r.StartTimeString); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "startTimeString must be HH:mm")
		}
	}
	if r.WorkEndTime != "" {
		if _, err := planner.MinutesOf(r.WorkEndTime); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "workEndTime must be HH:mm")
		}
	}
	if r.AvailableHours < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "availableHours must not be negative")
	}
	return nil
}
