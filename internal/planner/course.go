package planner

import (
	"fmt"
	"strconv"
	"strings"
)

// Course is a single weekly class session.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section,omitempty"`
	Day     string `json:"day"`
	Start   string `json:"start"` // "HH:MM", 24h
	End     string `json:"end"`   // "HH:MM", 24h
	Color   string `json:"color"`
	Type    string `json:"type,omitempty"`
	Room    string `json:"room,omitempty"`
}

// GroupKey derives the key identifying all sessions of the same class:
// name and section joined by "|", section empty when absent.
func (c Course) GroupKey() string {
	return c.Name + "|" + c.Section
}

// MinuteOf converts an "HH:MM" clock time to minutes since midnight.
func MinuteOf(hhmm string) (int, error) {
	hh, mm, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	return h*60 + m, nil
}
