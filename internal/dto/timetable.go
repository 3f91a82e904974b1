package dto

// ── timetable import DTOs ──

// ImportICSRequest imports course sessions from iCalendar content, either
// fetched from a URL or passed inline. Exactly one of the two is expected.
type ImportICSRequest struct {
	URL     string `json:"url"     binding:"omitempty,url"`
	Content string `json:"content" binding:"omitempty"`
}

// ImportICSResponse reports the import outcome plus the re-derived view.
type ImportICSResponse struct {
	Imported int          `json:"imported"`
	Planner  *PlannerView `json:"planner"`
}
