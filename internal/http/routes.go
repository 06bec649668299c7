package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "daily-planner.com/daily-planner/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/plans/generate", h.GeneratePlan)
	e.POST("/plans/apply", h.ApplyPlan)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks/:id/complete", h.CompleteTask)

	e.POST("/projects", h.CreateProject)
	e.GET("/projects", h.ListProjects)

	e.POST("/fixed-events", h.CreateFixedEvent)
	e.GET("/fixed-events", h.ListFixedEvents)
}
