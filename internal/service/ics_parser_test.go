package service

import (
	"strings"
	"testing"
	"time"
)

// 2025-03-10 is a Monday, 2025-03-11 a Tuesday.
const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//campus//timetable//ES\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-1\r\n" +
	"DTSTAMP:20250301T000000Z\r\n" +
	"DTSTART:20250310T080000\r\n" +
	"DTEND:20250310T093000\r\n" +
	"SUMMARY:Cálculo I\r\n" +
	"LOCATION:A-101\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-2\r\n" +
	"DTSTAMP:20250301T000000Z\r\n" +
	"DTSTART:20250311T100000\r\n" +
	"DTEND:20250311T110000\r\n" +
	"SUMMARY:Física\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-3\r\n" +
	"DTSTAMP:20250301T000000Z\r\n" +
	"DTSTART:20250317T080000\r\n" +
	"DTEND:20250317T093000\r\n" +
	"SUMMARY:Cálculo I\r\n" +
	"LOCATION:A-101\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseCourses(t *testing.T) {
	courses, err := ParseCourses(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("ParseCourses failed: %v", err)
	}
	// evt-3 repeats evt-1 a week later and must collapse into it.
	if len(courses) != 2 {
		t.Fatalf("expected 2 sessions after dedupe, got %d", len(courses))
	}

	calc := courses[0]
	if calc.Name != "Cálculo I" || calc.Day != "Lunes" {
		t.Errorf("expected Cálculo I on Lunes, got %s on %s", calc.Name, calc.Day)
	}
	if calc.Start != "08:00" || calc.End != "09:30" {
		t.Errorf("expected 08:00–09:30, got %s–%s", calc.Start, calc.End)
	}
	if calc.Room != "A-101" {
		t.Errorf("expected room A-101, got %q", calc.Room)
	}
	if calc.ID != "" {
		t.Error("the parser must not assign ids")
	}

	fis := courses[1]
	if fis.Day != "Martes" || fis.Start != "10:00" {
		t.Errorf("expected Física on Martes 10:00, got %s %s", fis.Day, fis.Start)
	}
	if fis.Color == calc.Color {
		t.Error("distinct course names must get distinct palette colors")
	}
}

func TestParseCourses_SkipsUnusableEvents(t *testing.T) {
	raw := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//campus//timetable//ES\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:no-summary\r\n" +
		"DTSTAMP:20250301T000000Z\r\n" +
		"DTSTART:20250310T080000\r\n" +
		"DTEND:20250310T090000\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:no-dtend\r\n" +
		"DTSTAMP:20250301T000000Z\r\n" +
		"DTSTART:20250310T150000\r\n" +
		"SUMMARY:Seminario\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	courses, err := ParseCourses(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCourses failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected only the usable event, got %d", len(courses))
	}
	// No DTEND defaults to a one-hour session.
	if courses[0].Start != "15:00" || courses[0].End != "16:00" {
		t.Errorf("expected 15:00–16:00, got %s–%s", courses[0].Start, courses[0].End)
	}
}

func TestParseCourses_MalformedInput(t *testing.T) {
	if _, err := ParseCourses(strings.NewReader("not an ics file")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestIsoWeekday(t *testing.T) {
	if got := isoWeekday(time.Monday); got != 1 {
		t.Errorf("Monday = %d, want 1", got)
	}
	if got := isoWeekday(time.Sunday); got != 7 {
		t.Errorf("Sunday = %d, want 7", got)
	}
}
