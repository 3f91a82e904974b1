package dto

// PlannerView is the full derived view of the planner. Every mutating
// endpoint responds with it, so the presentation layer re-renders from a
// single payload instead of diffing.
type PlannerView struct {
	Courses      []CourseResponse    `json:"courses"`
	Groups       []GroupResponse     `json:"groups"`
	SavedViews   []SavedViewResponse `json:"saved_views"`
	ActiveViewID string              `json:"active_view_id,omitempty"`
	CanSaveView  bool                `json:"can_save_view"`
}
