package menu

// VisibilityFunc reports whether the item at position i of the full order
// is currently visible. The render layer supplies it, combining the item's
// hidden flag with scroll occlusion.
type VisibilityFunc[T comparable] func(i int, item *Item[T]) bool

// Menu composes the item registry, the bound value cell, selected-item
// resolution, command-driven navigation, and open/close state for one
// dropdown instance.
type Menu[T comparable] struct {
	registry *Registry[T]
	cell     *Cell[T]

	selected *Item[T]
	presel   int
	open     bool

	visible VisibilityFunc[T]

	selectedObservers []func(*Item[T])
	preselObservers   []func(int)
	stateObservers    []func(bool)
	commitObservers   []func(int)
}

// New returns a closed menu with an empty registry and an empty local
// value cell.
func New[T comparable]() *Menu[T] {
	m := &Menu[T]{presel: -1}
	m.registry = NewRegistry[T]()
	m.cell = NewCell[T]()
	m.cell.Observe(m.onCellChange)
	m.registry.Subscribe(m.onItemsChange)
	return m
}

// Registry exposes the item registry.
func (m *Menu[T]) Registry() *Registry[T] { return m.registry }

// Cell exposes the bound value cell.
func (m *Menu[T]) Cell() *Cell[T] { return m.cell }

// SetVisibilityFunc installs the render layer's visibility predicate.
// Without one, visibility falls back to the items' hidden flags.
func (m *Menu[T]) SetVisibilityFunc(fn VisibilityFunc[T]) { m.visible = fn }

// OnSelectedChange registers fn for selected-item updates (label and
// highlight surfaces).
func (m *Menu[T]) OnSelectedChange(fn func(*Item[T])) {
	m.selectedObservers = append(m.selectedObservers, fn)
}

// OnPreselect registers fn for preselection moves; -1 means none.
func (m *Menu[T]) OnPreselect(fn func(int)) {
	m.preselObservers = append(m.preselObservers, fn)
}

// OnStateChange registers fn for open/close transitions.
func (m *Menu[T]) OnStateChange(fn func(open bool)) {
	m.stateObservers = append(m.stateObservers, fn)
}

// OnCommit registers fn for commit requests carrying the committed index.
func (m *Menu[T]) OnCommit(fn func(index int)) {
	m.commitObservers = append(m.commitObservers, fn)
}

// SelectedItem returns the resolved selected item, or nil when the cell is
// empty.
func (m *Menu[T]) SelectedItem() *Item[T] { return m.selected }

// SelectedText returns the label surface text for the current selection.
func (m *Menu[T]) SelectedText() string {
	if m.selected == nil {
		return ""
	}
	return m.selected.Label
}

// PreselectedIndex returns the current preselection, or -1.
func (m *Menu[T]) PreselectedIndex() int { return m.presel }

// PreselectedItem returns the preselected item, or nil.
func (m *Menu[T]) PreselectedItem() *Item[T] {
	if m.presel < 0 || m.presel >= m.registry.Len() {
		return nil
	}
	return m.registry.At(m.presel)
}

// AnyVisible reports whether any item survives the hidden flags; the
// render layer uses it to decide whether to show the header at all.
func (m *Menu[T]) AnyVisible() bool { return m.registry.AnyVisible() }

// IsOpen reports the open/close state.
func (m *Menu[T]) IsOpen() bool { return m.open }

// Open transitions to the open state.
func (m *Menu[T]) Open() {
	if m.open {
		return
	}
	m.open = true
	m.notifyState()
}

// Close transitions to the closed state. Preselection is cleared on every
// call, whatever caused the close.
func (m *Menu[T]) Close() {
	wasOpen := m.open
	m.open = false
	m.setPresel(-1)
	if wasOpen {
		m.notifyState()
	}
}

// Toggle flips the open/close state.
func (m *Menu[T]) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// CommitSelect applies the current preselection: commit observers are
// told, the menu closes, and the preselected item's value is written
// through the interactive path. With no preselection the menu just
// closes. A disabled cell leaves the value unchanged but the menu still
// closes.
func (m *Menu[T]) CommitSelect() {
	index := m.presel
	for _, fn := range m.commitObservers {
		fn(index)
	}
	m.Close()
	if index >= 0 && index < m.registry.Len() {
		m.registry.At(index).Select()
	}
}

func (m *Menu[T]) selectItem(item *Item[T]) {
	m.cell.SetFromUser(item.Value)
}

func (m *Menu[T]) hoverItem(item *Item[T]) {
	if !m.open {
		return
	}
	if idx := m.registry.IndexOf(item.Value); idx >= 0 {
		m.setPresel(idx)
	}
}

func (m *Menu[T]) isVisible(i int, item *Item[T]) bool {
	if m.visible != nil {
		return m.visible(i, item)
	}
	return !item.Hidden
}

func (m *Menu[T]) setPresel(index int) bool {
	if index == m.presel {
		return false
	}
	m.presel = index
	for _, fn := range m.preselObservers {
		fn(index)
	}
	return true
}

func (m *Menu[T]) notifyState() {
	for _, fn := range m.stateObservers {
		fn(m.open)
	}
}

func (m *Menu[T]) notifySelected() {
	for _, fn := range m.selectedObservers {
		fn(m.selected)
	}
}
