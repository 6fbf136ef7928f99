package menu

// onCellChange keeps the selected item consistent with the value cell.
func (m *Menu[T]) onCellChange(_, now Opt[T]) {
	m.resolveSelected(now)
	m.notifySelected()
}

// resolveSelected maps the cell contents to an item record. Values outside
// the registered set resolve to a transient item that is never inserted
// into the registry.
func (m *Menu[T]) resolveSelected(value Opt[T]) {
	current, ok := value.Get()
	switch {
	case !ok:
		m.selected = nil
	case m.selected != nil && m.selected.Value == current:
		// keep the existing reference
	default:
		if item, found := m.registry.Lookup(current); found {
			m.selected = item
		} else {
			m.selected = &Item[T]{Value: current, Label: DisplayText(current), owner: m}
		}
	}
}

// onItemsChange reacts to registry mutations. Incremental edits never move
// the committed value; full replacements reconcile it against the new
// list.
func (m *Menu[T]) onItemsChange(change Change[T]) {
	m.attach(change.Items)
	if m.presel >= len(change.Items) {
		m.setPresel(-1)
	}
	if !change.Replaced {
		// A removed selected value keeps its record as a transient
		// reference; nothing to do beyond refreshing the resolution.
		m.resolveSelected(m.cell.Value())
		m.notifySelected()
		return
	}
	m.reconcileAfterReplace()
}

// reconcileAfterReplace applies the replacement policy: a value that is
// absent or no longer present resets to the first item (or to none when
// the list is empty), raising exactly one value change. A value still
// present keeps the cell untouched and only refreshes the display
// surfaces.
func (m *Menu[T]) reconcileAfterReplace() {
	if value, ok := m.cell.Value().Get(); ok {
		if item, found := m.registry.Lookup(value); found {
			m.selected = item
			m.notifySelected()
			return
		}
	}
	if m.registry.Len() > 0 {
		m.cell.force(Some(m.registry.At(0).Value))
		return
	}
	m.cell.force(None[T]())
	// force is a no-op when the cell was already empty, so make sure the
	// display surfaces still refresh against the rebuilt list.
	m.resolveSelected(m.cell.Value())
	m.notifySelected()
}

// attach sets the back reference from each item to its owning menu. Set
// once per attachment, never re-derived by search.
func (m *Menu[T]) attach(items []*Item[T]) {
	for _, item := range items {
		if item.owner == nil {
			item.owner = m
		}
	}
}
