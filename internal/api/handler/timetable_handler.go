package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DeValentRT/Horario-Prototipo/internal/dto"
	"github.com/DeValentRT/Horario-Prototipo/internal/service"
	"github.com/DeValentRT/Horario-Prototipo/pkg/response"
)

// TimetableHandler imports external timetables into the planner.
type TimetableHandler struct {
	plannerSvc    service.PlannerService
	importEnabled bool
}

// NewTimetableHandler creates the TimetableHandler.
func NewTimetableHandler(plannerSvc service.PlannerService, importEnabled bool) *TimetableHandler {
	return &TimetableHandler{plannerSvc: plannerSvc, importEnabled: importEnabled}
}

// ImportICS imports course sessions from an iCalendar feed.
// POST /api/v1/timetable/import
//
// Three input forms are accepted:
//   - file upload: multipart/form-data, field="file"
//   - URL import: application/json, body={"url": "..."}
//   - inline content: application/json, body={"content": "BEGIN:VCALENDAR..."}
func (h *TimetableHandler) ImportICS(c *gin.Context) {
	if !h.importEnabled {
		response.Error(c, http.StatusForbidden, 15004, "ICS import is disabled")
		return
	}

	// File upload first.
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		imported, view, err := h.plannerSvc.ImportICS(c.Request.Context(), file)
		if err != nil {
			h.handleImportError(c, err)
			return
		}
		response.Created(c, dto.ImportICSResponse{Imported: imported, Planner: view})
		return
	}

	var req dto.ImportICSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	switch {
	case req.Content != "":
		imported, view, err := h.plannerSvc.ImportICS(c.Request.Context(), strings.NewReader(req.Content))
		if err != nil {
			h.handleImportError(c, err)
			return
		}
		response.Created(c, dto.ImportICSResponse{Imported: imported, Planner: view})

	case req.URL != "":
		body, err := service.FetchICSContent(req.URL)
		if err != nil {
			response.ErrorWithDetails(c, http.StatusBadGateway, 15001, "fetching the ICS URL failed", err.Error())
			return
		}
		defer body.Close()

		imported, view, err := h.plannerSvc.ImportICS(c.Request.Context(), body)
		if err != nil {
			h.handleImportError(c, err)
			return
		}
		response.Created(c, dto.ImportICSResponse{Imported: imported, Planner: view})

	default:
		response.BadRequest(c, 15000, "upload an ICS file or provide a url or content field")
	}
}

// handleImportError maps timetable import business errors to HTTP responses.
func (h *TimetableHandler) handleImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrICSParse):
		response.BadRequest(c, 15002, "invalid iCalendar content")
	case errors.Is(err, service.ErrICSEmpty):
		response.BadRequest(c, 15003, "no course sessions found in the calendar")
	default:
		response.InternalError(c)
	}
}
