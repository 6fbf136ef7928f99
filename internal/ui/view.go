package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
)

const (
	collapsedMarker = "▾"
	expandedMarker  = "▴"
)

// View renders the widget: a single header line while collapsed, the
// header plus the scrolled option list while expanded.
func (m *Model) View() string {
	if m.menu.IsOpen() {
		return m.render(m.openLines())
	}
	return m.render(m.closedLines())
}

func (m *Model) closedLines() []string {
	if m.visibleCount() == 0 && m.filter == "" {
		return []string{styles.Info.Render("(no options)")}
	}
	return []string{m.headerLine(collapsedMarker)}
}

func (m *Model) openLines() []string {
	lines := []string{m.headerLine(expandedMarker)}
	if m.filter != "" {
		lines = append(lines, styles.FilterPrompt.Render("/ ")+styles.Filter.Render(m.filter))
	}
	if m.visibleCount() == 0 {
		if m.filter != "" {
			lines = append(lines, styles.Info.Render(fmt.Sprintf("No matches for %q", m.filter)))
		} else {
			lines = append(lines, styles.Info.Render("(no options)"))
		}
		return lines
	}
	return append(lines, m.listLines()...)
}

func (m *Model) headerLine(marker string) string {
	if m.menu.SelectedItem() != nil {
		return styles.Header.Render(marker + " " + m.menu.SelectedText())
	}
	return styles.Placeholder.Render(marker + " " + m.placeholder)
}

// listLines renders the window of non-hidden rows, marking the
// preselected row and the committed value.
func (m *Model) listLines() []string {
	items := m.menu.Registry().Items()
	indexes := make([]int, 0, len(items))
	for i, item := range items {
		if !item.Hidden {
			indexes = append(indexes, i)
		}
	}

	m.viewport.MaxVisible = m.maxVisibleRows()
	presel := m.menu.PreselectedIndex()
	if row := m.rowOf(presel); row >= 0 {
		m.viewport.EnsureVisible(row, len(indexes))
	}
	start, end := m.viewport.Window(len(indexes))

	selected := m.menu.SelectedItem()
	lines := make([]string, 0, end-start)
	for row := start; row < end; row++ {
		index := indexes[row]
		item := items[index]

		line := styles.ItemIndicator.Render("  ") + styles.Item.Render(item.Label)
		if index == presel {
			line = styles.PreselectedMarker.Render("> ") + styles.PreselectedItem.Render(item.Label)
		}
		if selected != nil && selected.Value == item.Value {
			line += styles.SelectedMarker.Render(" ✓")
		}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) render(lines []string) string {
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = truncate.StringWithTail(line, uint(m.width), "…")
		}
	}
	return strings.Join(lines, "\n")
}
