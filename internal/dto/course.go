package dto

// ── course module DTOs ──

// CourseRequest is the payload for adding or editing a course session.
// Shape checks live in the binding tags; semantic checks (known weekday,
// end after start) live in the service.
type CourseRequest struct {
	Name    string `json:"name"    binding:"required,max=100"`
	Section string `json:"section" binding:"max=20"`
	Day     string `json:"day"     binding:"required"`
	Start   string `json:"start"   binding:"required"` // "HH:MM"
	End     string `json:"end"     binding:"required"` // "HH:MM"
	Color   string `json:"color"   binding:"omitempty,hexcolor"`
	Type    string `json:"type"    binding:"max=50"`
	Room    string `json:"room"    binding:"max=50"`
}

// CourseResponse is one course session.
type CourseResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section,omitempty"`
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Color   string `json:"color"`
	Type    string `json:"type,omitempty"`
	Room    string `json:"room,omitempty"`
}
