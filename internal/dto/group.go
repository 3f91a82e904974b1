package dto

// ── group module DTOs ──

// ToggleGroupRequest flips one group's visibility. The key goes in the body
// because group keys carry user text (name|section).
type ToggleGroupRequest struct {
	Key string `json:"key" binding:"required"`
}

// SetVisibilityRequest stores an explicit visibility flag for one group.
type SetVisibilityRequest struct {
	Key     string `json:"key"     binding:"required"`
	Visible *bool  `json:"visible" binding:"required"`
}

// GroupResponse is one derived course group, in display order.
type GroupResponse struct {
	Key      string           `json:"key"`
	Name     string           `json:"name"`
	Section  string           `json:"section,omitempty"`
	Color    string           `json:"color"`
	Visible  bool             `json:"visible"`
	Sessions []CourseResponse `json:"sessions"`
}
