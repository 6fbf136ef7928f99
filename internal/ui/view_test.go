package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewClosedShowsSelection(t *testing.T) {
	m := newTestModel(t, testOptions())
	view := m.View()
	if !strings.Contains(view, "Alpha") {
		t.Fatalf("expected closed view to show the selection, got %q", view)
	}
	if strings.Contains(view, "Bravo") {
		t.Fatalf("expected closed view to hide the list, got %q", view)
	}
}

func TestViewClosedShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, testOptions())
	if err := m.Menu().Cell().ClearValue(); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	view := m.View()
	if !strings.Contains(view, "Select…") {
		t.Fatalf("expected placeholder while nothing selected, got %q", view)
	}
}

func TestViewWithoutOptionsShowsNotice(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	if !strings.Contains(view, "(no options)") {
		t.Fatalf("expected empty-state notice, got %q", view)
	}
}

func TestViewOpenListsOptionsAndMarkers(t *testing.T) {
	m := newTestModel(t, testOptions())
	press(m, tea.KeyEnter)
	press(m, tea.KeyDown)

	view := m.View()
	if !strings.Contains(view, "> Bravo") {
		t.Fatalf("expected preselection marker on Bravo, got %q", view)
	}
	if !strings.Contains(view, "Alpha") || !strings.Contains(view, "✓") {
		t.Fatalf("expected committed value marked, got %q", view)
	}
}

func TestViewOpenShowsFilterLine(t *testing.T) {
	m := newTestModel(t, testOptions())
	press(m, tea.KeyEnter)
	typeRunes(m, "br")

	view := m.View()
	if !strings.Contains(view, "br") {
		t.Fatalf("expected filter query in view, got %q", view)
	}
	if strings.Contains(view, "Charlie") {
		t.Fatalf("expected non-matches hidden, got %q", view)
	}
}

func TestViewOpenReportsNoMatches(t *testing.T) {
	m := newTestModel(t, testOptions())
	press(m, tea.KeyEnter)
	typeRunes(m, "zz")

	view := m.View()
	if !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected no-match notice, got %q", view)
	}
}

func TestViewOpenLimitsRowsToViewport(t *testing.T) {
	m := NewModel(testOptions(), 0, 0, 2, "Select…")
	press(m, tea.KeyEnter)

	view := m.View()
	if !strings.Contains(view, "Alpha") || !strings.Contains(view, "Bravo") {
		t.Fatalf("expected first window rendered, got %q", view)
	}
	if strings.Contains(view, "Charlie") {
		t.Fatalf("expected rows past the window clipped, got %q", view)
	}

	press(m, tea.KeyEnd)
	view = m.View()
	if !strings.Contains(view, "Echo") || !strings.Contains(view, "Delta") {
		t.Fatalf("expected window to follow the highlight, got %q", view)
	}
	if strings.Contains(view, "Bravo") {
		t.Fatalf("expected earlier rows scrolled out, got %q", view)
	}
}

func TestViewSkipsHiddenOptions(t *testing.T) {
	opts := testOptions()
	opts[1].Hidden = true
	m := newTestModel(t, opts)
	press(m, tea.KeyEnter)

	view := m.View()
	if strings.Contains(view, "Bravo") {
		t.Fatalf("expected hidden option omitted from view, got %q", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	m := NewModel([]Option{{Label: "An exceedingly long option label", Value: "long"}}, 10, 0, 0, "Select…")
	view := m.View()
	for _, line := range strings.Split(view, "\n") {
		if n := len([]rune(line)); n > 10 {
			t.Fatalf("expected lines clipped to width, got %d runes in %q", n, line)
		}
	}
}
