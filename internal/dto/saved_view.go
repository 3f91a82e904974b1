package dto

// ── saved-view module DTOs ──

// SaveViewRequest names a snapshot of the current visibility map.
type SaveViewRequest struct {
	Name        string `json:"name"        binding:"required,max=50"`
	Description string `json:"description" binding:"max=200"`
}

// SavedViewResponse is one stored snapshot.
type SavedViewResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	Visibility  map[string]bool `json:"visibility"`
	Active      bool            `json:"active"`
}
