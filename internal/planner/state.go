package planner

import (
	"strings"
	"time"
)

// State owns the planner's collections: the ordered course list, the
// visibility map, the saved views, and the active-view pointer. Every
// operation mutates through it; callers persist it write-through after
// each mutating call.
type State struct {
	Courses      []Course    `json:"courses"`
	Visibility   Visibility  `json:"visibility"`
	SavedViews   []SavedView `json:"saved_views"`
	ActiveViewID string      `json:"-"` // session-only, never persisted
}

// NewState returns an empty planner state.
func NewState() *State {
	return &State{
		Visibility: make(Visibility),
	}
}

// ── courses ──

// AddCourse appends a course and seeds its group's visibility entry when
// the group first appears. Clears the active view.
func (s *State) AddCourse(c Course) {
	s.Courses = append(s.Courses, c)
	key := c.GroupKey()
	if _, ok := s.Visibility[key]; !ok {
		s.Visibility[key] = true
	}
	s.ActiveViewID = ""
}

// UpdateCourse replaces the course matching id, preserving the id. When the
// edit moves the course to another group key, an explicit visibility entry
// of the old key is carried over to the new one. Returns false (no-op) when
// id is unknown.
func (s *State) UpdateCourse(id string, c Course) bool {
	for i := range s.Courses {
		if s.Courses[i].ID != id {
			continue
		}
		oldKey := s.Courses[i].GroupKey()
		c.ID = id
		s.Courses[i] = c
		s.Visibility.Reconcile(oldKey, c.GroupKey())
		s.ActiveViewID = ""
		return true
	}
	return false
}

// DeleteCourse removes the course matching id. When it was its group's last
// member the group's visibility entry is pruned, so a later group with the
// same key starts fresh at default-visible. Returns false (no-op) when id
// is unknown.
func (s *State) DeleteCourse(id string) bool {
	for i := range s.Courses {
		if s.Courses[i].ID != id {
			continue
		}
		key := s.Courses[i].GroupKey()
		s.Courses = append(s.Courses[:i], s.Courses[i+1:]...)
		s.pruneEmpty(key)
		s.ActiveViewID = ""
		return true
	}
	return false
}

func (s *State) pruneEmpty(key string) {
	for _, c := range s.Courses {
		if c.GroupKey() == key {
			return
		}
	}
	delete(s.Visibility, key)
}

// ── groups ──

// Groups derives the current group map from the course collection.
func (s *State) Groups() map[string]*Group {
	return DeriveGroups(s.Courses, s.Visibility)
}

// GroupKeys returns the distinct group keys in first-encounter order.
func (s *State) GroupKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, c := range s.Courses {
		key := c.GroupKey()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// ── visibility ──

// ToggleGroup flips one group's effective visibility. Clears the active view.
func (s *State) ToggleGroup(key string) {
	s.Visibility.Toggle(key)
	s.ActiveViewID = ""
}

// SetGroupVisible stores an explicit flag for one group. Clears the active view.
func (s *State) SetGroupVisible(key string, visible bool) {
	s.Visibility.Set(key, visible)
	s.ActiveViewID = ""
}

// ToggleAll bulk-toggles every currently known group. Clears the active view.
func (s *State) ToggleAll() {
	keys := s.GroupKeys()
	if len(keys) == 0 {
		return
	}
	s.Visibility.ToggleAll(keys)
	s.ActiveViewID = ""
}

// ── saved views ──

// CanSaveView reports whether the saved-view cap still has room.
func (s *State) CanSaveView() bool {
	return len(s.SavedViews) < MaxSavedViews
}

// SaveView snapshots the current visibility map under a fresh view, newest
// first, and marks it active. The stored map is a deep copy: later
// visibility changes never alter a saved view. Returns ErrViewLimit at cap.
func (s *State) SaveView(id, name, description string, now time.Time) (*SavedView, error) {
	if !s.CanSaveView() {
		return nil, ErrViewLimit
	}

	view := SavedView{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		Visibility:  s.Visibility.Clone(),
	}

	s.SavedViews = append([]SavedView{view}, s.SavedViews...)
	if len(s.SavedViews) > MaxSavedViews {
		s.SavedViews = s.SavedViews[:MaxSavedViews]
	}
	s.ActiveViewID = view.ID

	return &view, nil
}

// ApplyView restores a saved view's visibility over every currently known
// group key; keys the view never saw default to visible. Marks the view
// active. Returns false (no-op) when id is unknown.
func (s *State) ApplyView(id string) bool {
	var view *SavedView
	for i := range s.SavedViews {
		if s.SavedViews[i].ID == id {
			view = &s.SavedViews[i]
			break
		}
	}
	if view == nil {
		return false
	}

	for _, key := range s.GroupKeys() {
		s.Visibility[key] = view.Visibility.IsVisible(key)
	}
	s.ActiveViewID = id
	return true
}

// DeleteView removes a saved view, clearing the active pointer when it was
// the active one. Returns false (no-op) when id is unknown.
func (s *State) DeleteView(id string) bool {
	for i := range s.SavedViews {
		if s.SavedViews[i].ID != id {
			continue
		}
		s.SavedViews = append(s.SavedViews[:i], s.SavedViews[i+1:]...)
		if s.ActiveViewID == id {
			s.ActiveViewID = ""
		}
		return true
	}
	return false
}
