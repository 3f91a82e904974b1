package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DeValentRT/Horario-Prototipo/internal/dto"
	"github.com/DeValentRT/Horario-Prototipo/internal/service"
	"github.com/DeValentRT/Horario-Prototipo/pkg/response"
)

// CourseHandler serves the planner view and the course CRUD.
type CourseHandler struct {
	plannerSvc service.PlannerService
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(plannerSvc service.PlannerService) *CourseHandler {
	return &CourseHandler{plannerSvc: plannerSvc}
}

// GetPlanner returns the full derived planner view.
// GET /api/v1/planner
func (h *CourseHandler) GetPlanner(c *gin.Context) {
	response.OK(c, h.plannerSvc.View(c.Request.Context()))
}

// AddCourse adds one course session.
// POST /api/v1/courses
func (h *CourseHandler) AddCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	view, err := h.plannerSvc.AddCourse(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.Created(c, view)
}

// UpdateCourse replaces the fields of one course session.
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "course id must not be empty")
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	view, err := h.plannerSvc.UpdateCourse(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, view)
}

// DeleteCourse removes one course session.
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "course id must not be empty")
		return
	}

	view, err := h.plannerSvc.DeleteCourse(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

// handleCourseError maps course module business errors to HTTP responses.
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDay):
		response.BadRequest(c, 13001, "unknown weekday name")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 13002, "times must be HH:MM")
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 13003, "end time must be after start time")
	default:
		response.InternalError(c)
	}
}
