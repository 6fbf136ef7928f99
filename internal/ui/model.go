package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/dropdown-control/internal/logging/events"
	"github.com/atomicstack/dropdown-control/internal/menu"
	"github.com/atomicstack/dropdown-control/internal/theme"
	"github.com/atomicstack/dropdown-control/internal/ui/state"
)

var styles = theme.Default()

// Option describes one selectable entry supplied by the caller. Hidden
// options stay registered but never show up in the rendered list.
type Option struct {
	Label  string
	Value  string
	Hidden bool
}

// Model implements the Bubble Tea model for the dropdown widget.
type Model struct {
	menu     *menu.Menu[string]
	viewport state.Viewport

	filter     string
	baseHidden map[string]bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	maxVisible  int
	placeholder string

	keys keyMap
}

// NewModel initialises the widget state from the supplied options.
func NewModel(options []Option, width, height, maxVisible int, placeholder string) *Model {
	m := &Model{
		menu:        menu.New[string](),
		maxVisible:  maxVisible,
		placeholder: placeholder,
		baseHidden:  make(map[string]bool, len(options)),
		keys:        defaultKeyMap(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	m.menu.Cell().Observe(func(old, now menu.Opt[string]) {
		oldValue, hadOld := old.Get()
		newValue, hasNew := now.Get()
		events.Value.Changed(oldValue, newValue, hadOld, hasNew)
	})
	m.menu.OnPreselect(func(index int) {
		events.UI.MenuCursor(index)
		m.syncViewport(index)
	})
	m.menu.OnStateChange(func(open bool) {
		if open {
			events.UI.MenuOpen()
		} else {
			events.UI.MenuClose("request")
		}
	})
	m.menu.OnCommit(events.UI.MenuCommit)
	m.menu.SetVisibilityFunc(m.itemVisible)

	entries := make([]menu.Entry[string], 0, len(options))
	for _, opt := range options {
		entries = append(entries, menu.Entry[string]{Label: opt.Label, Value: opt.Value})
		if opt.Hidden {
			m.baseHidden[opt.Value] = true
		}
	}
	if err := m.menu.Registry().SetAll(entries); err != nil {
		// configuration is validated upstream; duplicate values here are a
		// programming error worth surfacing in the log
		events.App.Exit(err)
	}
	for value := range m.baseHidden {
		m.menu.Registry().SetHidden(value, true)
	}
	return m
}

// Menu exposes the underlying selection state, mainly for tests and for
// callers that want to observe value changes.
func (m *Model) Menu() *menu.Menu[string] { return m.menu }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd { return nil }

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
	}
	return m, nil
}

// maxVisibleRows returns the number of menu rows that fit on screen.
func (m *Model) maxVisibleRows() int {
	rows := m.maxVisible
	if m.height > 0 {
		// header, filter line, and a spare line stay outside the list
		available := m.height - 3
		if available < 1 {
			available = 1
		}
		if rows <= 0 || available < rows {
			rows = available
		}
	}
	return rows
}

// itemVisible is the predicate handed to the navigation layer: an item is
// visible when it is not hidden and its row is scrolled into view.
func (m *Model) itemVisible(index int, item *menu.Item[string]) bool {
	if item.Hidden {
		return false
	}
	row := m.rowOf(index)
	if row < 0 {
		return false
	}
	m.viewport.MaxVisible = m.maxVisibleRows()
	return m.viewport.Contains(row, m.visibleCount())
}

// rowOf maps a full-list index to its row among the non-hidden items, or
// -1 when the item itself is hidden.
func (m *Model) rowOf(index int) int {
	items := m.menu.Registry().Items()
	if index < 0 || index >= len(items) || items[index].Hidden {
		return -1
	}
	row := 0
	for i := 0; i < index; i++ {
		if !items[i].Hidden {
			row++
		}
	}
	return row
}

// visibleCount returns the number of non-hidden items.
func (m *Model) visibleCount() int {
	count := 0
	for _, item := range m.menu.Registry().Items() {
		if !item.Hidden {
			count++
		}
	}
	return count
}

func (m *Model) syncViewport(index int) {
	row := m.rowOf(index)
	if row < 0 {
		return
	}
	m.viewport.MaxVisible = m.maxVisibleRows()
	m.viewport.EnsureVisible(row, m.visibleCount())
}

// applyFilter recomputes hidden flags from the current query, keeping
// statically hidden options hidden, and lands the preselection on the best
// match.
func (m *Model) applyFilter() {
	reg := m.menu.Registry()
	items := reg.Items()
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	matched := state.Matches(labels, m.filter)
	_ = reg.Batch(func() error {
		for i, item := range items {
			_, ok := matched[i]
			reg.SetHidden(item.Value, m.baseHidden[item.Value] || !ok)
		}
		return nil
	})
	m.viewport.Offset = 0

	if strings.TrimSpace(m.filter) == "" {
		events.Filter.Cleared()
		return
	}
	events.Filter.Applied(m.filter, m.visibleCount())
	if m.menu.IsOpen() {
		if best := m.bestVisibleIndex(); best >= 0 {
			m.menu.Registry().At(best).Hover()
		}
	}
}

// bestVisibleIndex resolves the filter query to a full-list index.
func (m *Model) bestVisibleIndex() int {
	items := m.menu.Registry().Items()
	labels := make([]string, 0, len(items))
	indexes := make([]int, 0, len(items))
	for i, item := range items {
		if item.Hidden {
			continue
		}
		labels = append(labels, item.Label)
		indexes = append(indexes, i)
	}
	best := state.BestMatchIndex(labels, m.filter)
	if best < 0 {
		return -1
	}
	return indexes[best]
}
