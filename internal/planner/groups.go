package planner

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Group is the transient set of course sessions sharing a group key.
// Fully recomputed from the course collection on every derivation pass;
// only the visibility flag outlives it.
type Group struct {
	Key     string   `json:"-"`
	Name    string   `json:"name"`
	Section string   `json:"section"`
	Color   string   `json:"color"`
	Courses []Course `json:"courses"`
	Visible bool     `json:"visible"`
}

// DeriveGroups maps the course collection to one group per distinct key.
// Groups are created on first sight, seeded visible unless the visibility
// map holds an explicit false, and members keep encounter order. The result
// never contains a key without members.
func DeriveGroups(courses []Course, vis Visibility) map[string]*Group {
	groups := make(map[string]*Group)
	for _, c := range courses {
		key := c.GroupKey()
		g, ok := groups[key]
		if !ok {
			g = &Group{
				Key:     key,
				Name:    c.Name,
				Section: c.Section,
				Color:   c.Color,
				Visible: vis.IsVisible(key),
			}
			groups[key] = g
		}
		g.Courses = append(g.Courses, c)
	}
	return groups
}

var groupCollator = collate.New(language.Spanish, collate.IgnoreCase)

// SortGroups orders groups for display: alphabetical by group name,
// locale-aware and case-insensitive, stable otherwise. courses fixes the
// pre-sort order to first encounter in the course collection.
func SortGroups(groups map[string]*Group, courses []Course) []*Group {
	ordered := make([]*Group, 0, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, c := range courses {
		key := c.GroupKey()
		if g, ok := groups[key]; ok && !seen[key] {
			seen[key] = true
			ordered = append(ordered, g)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return groupCollator.CompareString(ordered[i].Name, ordered[j].Name) < 0
	})
	return ordered
}
