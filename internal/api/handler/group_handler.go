package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DeValentRT/Horario-Prototipo/internal/dto"
	"github.com/DeValentRT/Horario-Prototipo/internal/service"
	"github.com/DeValentRT/Horario-Prototipo/pkg/response"
)

// GroupHandler serves group visibility operations.
type GroupHandler struct {
	plannerSvc service.PlannerService
}

// NewGroupHandler creates the GroupHandler.
func NewGroupHandler(plannerSvc service.PlannerService) *GroupHandler {
	return &GroupHandler{plannerSvc: plannerSvc}
}

// Toggle flips one group's visibility. Keys that match no current group
// still get an entry; it takes effect if the group reappears.
// POST /api/v1/groups/toggle
func (h *GroupHandler) Toggle(c *gin.Context) {
	var req dto.ToggleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	view, err := h.plannerSvc.ToggleGroup(c.Request.Context(), req.Key)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

// ToggleAll shows every group, or hides every group when all are already
// visible.
// POST /api/v1/groups/toggle-all
func (h *GroupHandler) ToggleAll(c *gin.Context) {
	view, err := h.plannerSvc.ToggleAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

// SetVisibility stores an explicit visibility flag for one group.
// PUT /api/v1/groups/visibility
func (h *GroupHandler) SetVisibility(c *gin.Context) {
	var req dto.SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	view, err := h.plannerSvc.SetGroupVisible(c.Request.Context(), req.Key, *req.Visible)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}
