package handler

import (
	"github.com/DeValentRT/Horario-Prototipo/config"
	"github.com/DeValentRT/Horario-Prototipo/internal/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Course    *CourseHandler
	Group     *GroupHandler
	SavedView *SavedViewHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Course:    NewCourseHandler(svc.Planner),
		Group:     NewGroupHandler(svc.Planner),
		SavedView: NewSavedViewHandler(svc.Planner),
		Timetable: NewTimetableHandler(svc.Planner, cfg.Feature.ICSImportEnabled),
		Export:    NewExportHandler(svc.Export),
	}
}
