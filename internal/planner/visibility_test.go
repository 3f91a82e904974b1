package planner

import "testing"

func TestVisibility_DefaultTrue(t *testing.T) {
	vis := Visibility{}
	if !vis.IsVisible("Calc|01") {
		t.Error("absent key must be visible")
	}

	vis.Set("Calc|01", false)
	if vis.IsVisible("Calc|01") {
		t.Error("explicit false must hide")
	}
}

func TestVisibility_ToggleTreatsAbsentAsVisible(t *testing.T) {
	vis := Visibility{}

	vis.Toggle("Calc|01")
	if vis.IsVisible("Calc|01") {
		t.Error("first toggle of an absent key must hide")
	}

	vis.Toggle("Calc|01")
	if !vis.IsVisible("Calc|01") {
		t.Error("second toggle must show again")
	}
}

func TestVisibility_ToggleAll_BulkAtomic(t *testing.T) {
	keys := []string{"a|", "b|", "c|"}

	// All visible up front: everything hides.
	vis := Visibility{"a|": true}
	vis.ToggleAll(keys)
	for _, k := range keys {
		if vis.IsVisible(k) {
			t.Errorf("expected %s hidden", k)
		}
	}

	// Mixed state: everything shows, including the already-visible ones.
	vis = Visibility{"a|": false}
	vis.ToggleAll(keys)
	for _, k := range keys {
		if !vis.IsVisible(k) {
			t.Errorf("expected %s visible", k)
		}
	}
}

func TestVisibility_ToggleAll_IdempotentInPairs(t *testing.T) {
	keys := []string{"a|", "b|", "c|"}
	vis := Visibility{"a|": false, "b|": true}

	before := vis.Clone()
	vis.ToggleAll(keys)
	vis.ToggleAll(keys)

	for _, k := range keys {
		if vis.IsVisible(k) != before.IsVisible(k) {
			t.Errorf("double toggleAll changed effective visibility of %s", k)
		}
	}
}

func TestVisibility_Reconcile_CopiesOnlyExplicitEntries(t *testing.T) {
	vis := Visibility{"old|1": false}
	vis.Reconcile("old|1", "new|1")
	if vis.IsVisible("new|1") {
		t.Error("explicit false must carry over to the new key")
	}
	if _, ok := vis["old|1"]; !ok {
		t.Error("reconcile must not delete the old entry")
	}

	vis = Visibility{}
	vis.Reconcile("old|2", "new|2")
	if _, ok := vis["new|2"]; ok {
		t.Error("implicit default must not be propagated")
	}
}

func TestVisibility_CloneIsIndependent(t *testing.T) {
	vis := Visibility{"a|": false}
	cp := vis.Clone()

	vis.Set("a|", true)
	vis.Set("b|", false)

	if cp.IsVisible("a|") {
		t.Error("clone changed after mutating the original")
	}
	if _, ok := cp["b|"]; ok {
		t.Error("clone gained an entry after mutating the original")
	}
}
