package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/internal/planner"
)

// ── export module business errors ──

var (
	ErrExportNoCourses   = errors.New("no visible courses to export")
	ErrExportGenerateXLS = errors.New("generate Excel file failed")
)

// ExportService renders the currently visible schedule in exchange formats.
// Hidden groups are excluded: the export mirrors what the grid shows.
type ExportService interface {
	// ExportXLSX renders the weekly grid as an Excel workbook.
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportICS renders the visible sessions as weekly-recurring VEVENTs.
	ExportICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	planner PlannerService
	logger  *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(plannerSvc PlannerService, logger *zap.Logger) ExportService {
	return &exportService{planner: plannerSvc, logger: logger}
}

// ────────────────────── XLSX ──────────────────────
//
// One sheet, hour rows × weekday columns: column A holds the hour label,
// each course is written into the cell of its day at its starting hour.

const (
	xlsxSheet       = "Horario"
	xlsxDefaultFrom = 8  // grid starts at 08:00 unless a course starts earlier
	xlsxDefaultTo   = 21 // last row unless a course ends later
)

func (s *exportService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	courses := s.planner.VisibleCourses(ctx)
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, "", ErrExportGenerateXLS
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	fromHour, toHour := gridHourRange(courses)

	// Header row.
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellValue(xlsxSheet, "A1", "Hora")
	for i, day := range planner.Weekdays {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(xlsxSheet, cell, day)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(planner.Weekdays)+1, 1)
	f.SetCellStyle(xlsxSheet, "A1", endHeader, headerStyle)

	// Hour labels.
	for h := fromHour; h <= toHour; h++ {
		cell, _ := excelize.CoordinatesToCellName(1, h-fromHour+2)
		f.SetCellValue(xlsxSheet, cell, fmt.Sprintf("%02d:00", h))
	}

	// Course cells, stacked with newlines when sessions share a slot.
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	for _, c := range courses {
		dayIdx, ok := planner.DayIndex(c.Day)
		if !ok {
			continue
		}
		startMin, err := planner.MinuteOf(c.Start)
		if err != nil {
			continue
		}
		row := startMin/60 - fromHour + 2
		cell, _ := excelize.CoordinatesToCellName(dayIdx+1, row)

		text := c.Name
		if c.Section != "" {
			text += " · " + c.Section
		}
		text += "\n" + c.Start + " – " + c.End
		if c.Room != "" {
			text += " (" + c.Room + ")"
		}

		existing, _ := f.GetCellValue(xlsxSheet, cell)
		if existing != "" {
			text = existing + "\n" + text
		}
		f.SetCellValue(xlsxSheet, cell, text)
		f.SetCellStyle(xlsxSheet, cell, cell, cellStyle)
	}

	f.SetColWidth(xlsxSheet, "A", "A", 8)
	lastCol, _ := excelize.ColumnNumberToName(len(planner.Weekdays) + 1)
	f.SetColWidth(xlsxSheet, "B", lastCol, 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx buffer failed", zap.Error(err))
		return nil, "", ErrExportGenerateXLS
	}

	filename := fmt.Sprintf("horario_%s.xlsx", timeNow().Format("2006-01-02"))
	return buf, filename, nil
}

// gridHourRange widens the default 08:00–21:00 grid to fit outliers.
func gridHourRange(courses []planner.Course) (int, int) {
	from, to := xlsxDefaultFrom, xlsxDefaultTo
	for _, c := range courses {
		if startMin, err := planner.MinuteOf(c.Start); err == nil && startMin/60 < from {
			from = startMin / 60
		}
		if endMin, err := planner.MinuteOf(c.End); err == nil && (endMin+59)/60 > to {
			to = (endMin + 59) / 60
		}
	}
	return from, to
}

// ────────────────────── ICS ──────────────────────

func (s *exportService) ExportICS(ctx context.Context) (*bytes.Buffer, string, error) {
	courses := s.planner.VisibleCourses(ctx)
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	now := timeNow()
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Horario-Prototipo//Planner//ES")

	for _, c := range courses {
		dayIdx, ok := planner.DayIndex(c.Day)
		if !ok {
			continue
		}
		startMin, err := planner.MinuteOf(c.Start)
		if err != nil {
			continue
		}
		endMin, err := planner.MinuteOf(c.End)
		if err != nil {
			continue
		}

		date := nextWeekday(now, dayIdx)
		start := time.Date(date.Year(), date.Month(), date.Day(), startMin/60, startMin%60, 0, 0, now.Location())
		end := time.Date(date.Year(), date.Month(), date.Day(), endMin/60, endMin%60, 0, 0, now.Location())

		summary := c.Name
		if c.Section != "" {
			summary += " · " + c.Section
		}

		evt := cal.AddEvent(uuid.NewString())
		evt.SetDtStampTime(now)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(summary)
		if c.Room != "" {
			evt.SetLocation(c.Room)
		}
		if c.Type != "" {
			evt.SetDescription(c.Type)
		}
		evt.AddRrule("FREQ=WEEKLY")
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("horario_%s.ics", now.Format("2006-01-02"))
	return buf, filename, nil
}

// nextWeekday returns the next date (today included) falling on the ISO
// weekday index 1–7.
func nextWeekday(from time.Time, dayIdx int) time.Time {
	delta := (dayIdx - isoWeekday(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}
