package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DeValentRT/Horario-Prototipo/internal/dto"
	"github.com/DeValentRT/Horario-Prototipo/internal/service"
	"github.com/DeValentRT/Horario-Prototipo/pkg/response"
)

// SavedViewHandler serves the saved visibility snapshots.
type SavedViewHandler struct {
	plannerSvc service.PlannerService
}

// NewSavedViewHandler creates the SavedViewHandler.
func NewSavedViewHandler(plannerSvc service.PlannerService) *SavedViewHandler {
	return &SavedViewHandler{plannerSvc: plannerSvc}
}

// List returns the stored snapshots, newest first.
// GET /api/v1/saved-views
func (h *SavedViewHandler) List(c *gin.Context) {
	view := h.plannerSvc.View(c.Request.Context())
	response.OK(c, gin.H{
		"list":           view.SavedViews,
		"active_view_id": view.ActiveViewID,
		"can_save_view":  view.CanSaveView,
	})
}

// Save snapshots the current visibility map under a name.
// POST /api/v1/saved-views
func (h *SavedViewHandler) Save(c *gin.Context) {
	var req dto.SaveViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	view, err := h.plannerSvc.SaveView(c.Request.Context(), &req)
	if err != nil {
		h.handleSavedViewError(c, err)
		return
	}
	response.Created(c, view)
}

// Apply restores a snapshot onto the current groups.
// POST /api/v1/saved-views/:id/apply
func (h *SavedViewHandler) Apply(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "saved view id must not be empty")
		return
	}

	view, err := h.plannerSvc.ApplyView(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

// Delete removes a snapshot.
// DELETE /api/v1/saved-views/:id
func (h *SavedViewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "saved view id must not be empty")
		return
	}

	view, err := h.plannerSvc.DeleteView(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

// handleSavedViewError maps saved-view business errors to HTTP responses.
func (h *SavedViewHandler) handleSavedViewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrViewNameRequired):
		response.BadRequest(c, 14001, "view name must not be blank")
	case errors.Is(err, service.ErrSavedViewLimit):
		response.Conflict(c, 14002, "saved view limit reached, delete one first")
	default:
		response.InternalError(c)
	}
}
