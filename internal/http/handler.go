package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "daily-planner.com/daily-planner/internal/data_models"
	apperrors "daily-planner.com/daily-planner/internal/errors"
	"daily-planner.com/daily-planner/internal/http/validators"
	"daily-planner.com/daily-planner/internal/services"
)

type Handler struct {
	taskService    *services.TaskService
	catalogService *services.CatalogService
	planService    *services.PlanService
	userID         string
}

// NewHandler wires the single shared account id into every request; a real
// multi-tenant identity system is out of scope.
func NewHandler(
	taskService *services.TaskService,
	catalogService *services.CatalogService,
	planService *services.PlanService,
	userID string,
) *Handler {
	return &Handler{
		taskService:    taskService,
		catalogService: catalogService,
		planService:    planService,
		userID:         userID,
	}
}

func (h *Handler) GeneratePlan(c echo.Context) error {
	var req dto.GeneratePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateGeneratePlanRequest(&req); err != nil {
		return err
	}

	plan, err := h.planService.GeneratePlan(c.Request().Context(), h.userID, &req)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) ApplyPlan(c echo.Context) error {
	var req dto.ApplyPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.Entries) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "entries are required")
	}

	applied, err := h.planService.ApplyPlan(c.Request().Context(), h.userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"applied": applied,
		"total":   len(req.Entries),
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), h.userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), h.userID, id)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), h.userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) CompleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.CompleteTask(c.Request().Context(), h.userID, id)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	project, err := h.catalogService.CreateProject(c.Request().Context(), h.userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create project")
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.catalogService.ListProjects(c.Request().Context(), h.userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list projects")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(projects),
		"projects": projects,
	})
}

func (h *Handler) CreateFixedEvent(c echo.Context) error {
	var req dto.CreateFixedEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateFixedEventRequest(&req); err != nil {
		return err
	}

	event, err := h.catalogService.CreateFixedEvent(c.Request().Context(), h.userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create fixed event")
	}

	return c.JSON(http.StatusCreated, event)
}

func (h *Handler) ListFixedEvents(c echo.Context) error {
	events, err := h.catalogService.ListFixedEvents(c.Request().Context(), h.userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list fixed events")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(events),
		"events": events,
	})
}
