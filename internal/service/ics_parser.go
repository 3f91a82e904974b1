package service

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/DeValentRT/Horario-Prototipo/internal/planner"
)

// ── ICS parser ──────────────────────────────────────────────
//
// Turns iCalendar (RFC 5545) content into planner course sessions:
//   - SUMMARY → course name
//   - DTSTART/DTEND → weekday name plus HH:MM start/end
//   - LOCATION → room
// Weekly university timetables usually encode one VEVENT per session,
// sometimes repeated once per calendar week; sessions with the same
// name+day+times collapse into one.
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second
)

// coursePalette cycles over imported groups so each class gets a stable
// distinct display color.
var coursePalette = []string{
	"#4f46e5", "#0891b2", "#16a34a", "#d97706",
	"#dc2626", "#7c3aed", "#db2777", "#0d9488",
}

// FetchICSContent downloads ICS content from a URL, capping the body size.
func FetchICSContent(rawURL string) (io.ReadCloser, error) {
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	client := &http.Client{Timeout: icsFetchTimeout}
	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("fetch ICS: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch ICS: HTTP %d", resp.StatusCode)
	}
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// ParseCourses parses ICS content into course sessions without ids; the
// caller assigns ids when adding them to the planner.
func ParseCourses(reader io.Reader) ([]planner.Course, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, ErrICSParse
	}

	type sessionKey struct {
		name  string
		day   string
		start string
		end   string
	}

	var courses []planner.Course
	seen := make(map[sessionKey]bool)
	groupColor := make(map[string]string)

	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			continue
		}
		name := strings.TrimSpace(summary.Value)

		dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart)
		if err != nil {
			continue
		}
		dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd)
		if err != nil {
			// No DTEND: assume a one-hour session.
			dtEnd = dtStart.Add(time.Hour)
		}

		day := planner.Weekdays[isoWeekday(dtStart.Weekday())-1]
		key := sessionKey{
			name:  name,
			day:   day,
			start: dtStart.Format("15:04"),
			end:   dtEnd.Format("15:04"),
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		room := ""
		if loc := evt.GetProperty(ics.ComponentPropertyLocation); loc != nil {
			room = strings.TrimSpace(loc.Value)
		}

		color, ok := groupColor[name]
		if !ok {
			color = coursePalette[len(groupColor)%len(coursePalette)]
			groupColor[name] = color
		}

		courses = append(courses, planner.Course{
			Name:  name,
			Day:   day,
			Start: key.start,
			End:   key.end,
			Color: color,
			Room:  room,
		})
	}

	return courses, nil
}

// ── helpers ──

// isoWeekday maps Go's time.Weekday (0=Sunday) to ISO 8601 (1=Monday … 7=Sunday).
func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// parseICSDateTime reads a date-time property, trying the common ICS formats
// and honoring a TZID parameter when present.
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", propName)
	}
	val := prop.Value

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		t, err := time.Parse(layout, val)
		if err != nil {
			continue
		}
		if tzid != "" {
			if loc, err := time.LoadLocation(tzid); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
			}
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", val)
}
