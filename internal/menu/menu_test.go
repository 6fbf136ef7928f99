package menu

import "testing"

func TestMenuStartsClosed(t *testing.T) {
	m := New[string]()
	if m.IsOpen() {
		t.Fatalf("expected initial state closed")
	}
	if m.PreselectedIndex() != -1 {
		t.Fatalf("expected no initial preselection")
	}
}

func TestCloseAlwaysClearsPreselection(t *testing.T) {
	for _, value := range []string{"a", "b", "c"} {
		m := newPopulatedMenu(t, "a", "b", "c")
		preselect(t, m, value)
		m.Close()
		if m.IsOpen() {
			t.Fatalf("expected menu closed")
		}
		if m.PreselectedIndex() != -1 {
			t.Fatalf("expected preselection cleared after closing on %q, got %d", value, m.PreselectedIndex())
		}
	}
}

func TestToggleFlipsState(t *testing.T) {
	m := New[string]()
	m.Toggle()
	if !m.IsOpen() {
		t.Fatalf("expected open after toggle")
	}
	m.Toggle()
	if m.IsOpen() {
		t.Fatalf("expected closed after second toggle")
	}
}

func TestStateObserversSeeTransitions(t *testing.T) {
	m := New[string]()
	var states []bool
	m.OnStateChange(func(open bool) { states = append(states, open) })
	m.Open()
	m.Open() // repeated open must not re-notify
	m.Close()
	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Fatalf("expected open/close transitions, got %v", states)
	}
}

func TestHoverPreselectsOnlyWhileOpen(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	item, _ := m.Registry().Lookup("b")
	item.Hover()
	if m.PreselectedIndex() != -1 {
		t.Fatalf("expected hover ignored while closed")
	}
	m.Open()
	item.Hover()
	if m.PreselectedItem() != item {
		t.Fatalf("expected hover to preselect the item")
	}
}

func TestCommitSelectWritesValueAndCloses(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b", "c")
	preselect(t, m, "c")
	var committed []int
	m.OnCommit(func(index int) { committed = append(committed, index) })

	m.CommitSelect()
	if m.IsOpen() {
		t.Fatalf("expected menu closed after commit")
	}
	if v, _ := m.Cell().Value().Get(); v != "c" {
		t.Fatalf("expected committed value c, got %q", v)
	}
	if m.PreselectedIndex() != -1 {
		t.Fatalf("expected preselection cleared by commit")
	}
	if len(committed) != 1 || committed[0] != 2 {
		t.Fatalf("expected commit observer to see index 2, got %v", committed)
	}
}

func TestCommitSelectOnDisabledCellStillCloses(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	_ = m.Cell().Set("a")
	m.Cell().SetDisabled(true)
	preselect(t, m, "b")

	m.CommitSelect()
	if m.IsOpen() {
		t.Fatalf("expected menu closed despite disabled cell")
	}
	if v, _ := m.Cell().Value().Get(); v != "a" {
		t.Fatalf("expected value unchanged on disabled cell, got %q", v)
	}
}

func TestCommitSelectWithoutPreselectionJustCloses(t *testing.T) {
	m := newPopulatedMenu(t, "a")
	m.Open()
	var valueChanges int
	m.Cell().Observe(func(_, _ Opt[string]) { valueChanges++ })
	m.CommitSelect()
	if m.IsOpen() {
		t.Fatalf("expected menu closed")
	}
	if valueChanges != 0 {
		t.Fatalf("expected no value change without preselection, got %d", valueChanges)
	}
}

func TestPreselectionClampedWhenListShrinks(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b", "c")
	preselect(t, m, "c")
	if _, err := m.Registry().Remove("c"); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if m.PreselectedIndex() != -1 {
		t.Fatalf("expected out-of-range preselection cleared, got %d", m.PreselectedIndex())
	}
}

func TestAnyVisibleFollowsHiddenFlags(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	if !m.AnyVisible() {
		t.Fatalf("expected visible items")
	}
	m.Registry().SetHidden("a", true)
	m.Registry().SetHidden("b", true)
	if m.AnyVisible() {
		t.Fatalf("expected nothing visible")
	}
}
