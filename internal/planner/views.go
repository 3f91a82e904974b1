package planner

import (
	"errors"
	"time"
)

// MaxSavedViews caps the saved-view collection.
const MaxSavedViews = 10

// ErrViewLimit is returned when saving would exceed MaxSavedViews.
var ErrViewLimit = errors.New("saved view limit reached")

// SavedView is a named, timestamped snapshot of the visibility map,
// immutable once saved.
type SavedView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"date"`
	Visibility  Visibility `json:"visibility"`
}
