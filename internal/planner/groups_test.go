package planner

import "testing"

func course(id, name, section, day, start, end string) Course {
	return Course{
		ID: id, Name: name, Section: section,
		Day: day, Start: start, End: end,
		Color: "#4f46e5",
	}
}

func TestDeriveGroups_OneEntryPerDistinctKey(t *testing.T) {
	courses := []Course{
		course("a", "Calc", "01", "Lunes", "08:00", "09:00"),
		course("b", "Calc", "01", "Miércoles", "08:00", "09:00"),
		course("c", "Physics", "02", "Martes", "10:00", "11:00"),
	}

	groups := DeriveGroups(courses, Visibility{})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	calc := groups["Calc|01"]
	if calc == nil {
		t.Fatal("expected group Calc|01")
	}
	if len(calc.Courses) != 2 {
		t.Errorf("expected 2 members in Calc|01, got %d", len(calc.Courses))
	}
	if calc.Courses[0].ID != "a" || calc.Courses[1].ID != "b" {
		t.Error("members must keep encounter order")
	}
	if !calc.Visible {
		t.Error("group without visibility entry must default to visible")
	}
}

func TestDeriveGroups_SeedsVisibleUnlessExplicitFalse(t *testing.T) {
	courses := []Course{
		course("a", "Calc", "01", "Lunes", "08:00", "09:00"),
		course("b", "Physics", "02", "Martes", "10:00", "11:00"),
	}
	vis := Visibility{"Calc|01": false}

	groups := DeriveGroups(courses, vis)
	if groups["Calc|01"].Visible {
		t.Error("explicit false must hide the group")
	}
	if !groups["Physics|02"].Visible {
		t.Error("absent entry must default to visible")
	}
}

func TestDeriveGroups_NoStaleKeys(t *testing.T) {
	courses := []Course{course("a", "Calc", "01", "Lunes", "08:00", "09:00")}
	// Visibility entries for groups with no members must not leak into the output.
	vis := Visibility{"Ghost|": false}

	groups := DeriveGroups(courses, vis)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if _, ok := groups["Ghost|"]; ok {
		t.Error("derivation must not contain keys without members")
	}
}

func TestDeriveGroups_ColorFromFirstMember(t *testing.T) {
	first := course("a", "Calc", "01", "Lunes", "08:00", "09:00")
	first.Color = "#111111"
	second := course("b", "Calc", "01", "Martes", "08:00", "09:00")
	second.Color = "#222222"

	groups := DeriveGroups([]Course{first, second}, Visibility{})
	if got := groups["Calc|01"].Color; got != "#111111" {
		t.Errorf("expected color of first member, got %s", got)
	}
}

func TestSortGroups_LocaleAwareCaseInsensitive(t *testing.T) {
	courses := []Course{
		course("a", "química", "01", "Lunes", "08:00", "09:00"),
		course("b", "Álgebra", "01", "Martes", "08:00", "09:00"),
		course("c", "Biología", "01", "Jueves", "08:00", "09:00"),
	}
	groups := DeriveGroups(courses, Visibility{})

	sorted := SortGroups(groups, courses)
	if len(sorted) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(sorted))
	}
	// "Álgebra" sorts with A, not after z.
	if sorted[0].Name != "Álgebra" || sorted[1].Name != "Biología" || sorted[2].Name != "química" {
		t.Errorf("unexpected order: %s, %s, %s", sorted[0].Name, sorted[1].Name, sorted[2].Name)
	}
}

func TestSortGroups_StableForEqualNames(t *testing.T) {
	courses := []Course{
		course("a", "Calc", "02", "Lunes", "08:00", "09:00"),
		course("b", "Calc", "01", "Martes", "08:00", "09:00"),
	}
	groups := DeriveGroups(courses, Visibility{})

	sorted := SortGroups(groups, courses)
	if sorted[0].Section != "02" || sorted[1].Section != "01" {
		t.Error("equal names must keep encounter order")
	}
}
