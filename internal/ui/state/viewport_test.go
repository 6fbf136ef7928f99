package state

import "testing"

func TestWindowCoversEverythingWhenUnbounded(t *testing.T) {
	v := &Viewport{Offset: 3}
	start, end := v.Window(5)
	if start != 0 || end != 5 {
		t.Fatalf("expected full window, got [%d,%d)", start, end)
	}
}

func TestWindowClampsOffset(t *testing.T) {
	v := &Viewport{Offset: 10, MaxVisible: 2}
	start, end := v.Window(5)
	if start != 3 || end != 5 {
		t.Fatalf("expected clamped window [3,5), got [%d,%d)", start, end)
	}
}

func TestContainsTracksWindow(t *testing.T) {
	v := &Viewport{Offset: 1, MaxVisible: 2}
	if v.Contains(0, 5) {
		t.Fatalf("expected row 0 scrolled out")
	}
	if !v.Contains(1, 5) || !v.Contains(2, 5) {
		t.Fatalf("expected rows 1 and 2 on screen")
	}
	if v.Contains(3, 5) {
		t.Fatalf("expected row 3 below the window")
	}
}

func TestEnsureVisibleScrollsDownAndUp(t *testing.T) {
	v := &Viewport{MaxVisible: 2}
	v.EnsureVisible(4, 5)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", v.Offset)
	}
	v.EnsureVisible(1, 5)
	if v.Offset != 1 {
		t.Fatalf("expected offset aligned with row, got %d", v.Offset)
	}
}

func TestEnsureVisibleNormalisesInput(t *testing.T) {
	v := &Viewport{Offset: 4, MaxVisible: 0}
	v.EnsureVisible(2, 5)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset when unbounded, got %d", v.Offset)
	}
	v = &Viewport{Offset: 2, MaxVisible: 2}
	v.EnsureVisible(-1, 0)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset for empty list, got %d", v.Offset)
	}
}

func TestPageSizeClampsToTotal(t *testing.T) {
	v := &Viewport{MaxVisible: 10}
	if got := v.PageSize(3); got != 3 {
		t.Fatalf("expected page size clamped to total, got %d", got)
	}
	v.MaxVisible = 0
	if got := v.PageSize(3); got != 3 {
		t.Fatalf("expected unbounded page size equal to total, got %d", got)
	}
	if got := v.PageSize(0); got != 0 {
		t.Fatalf("expected zero page size for empty list, got %d", got)
	}
}
