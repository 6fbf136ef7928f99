package menu

// Navigation commands move the preselection over the full ordered item
// list. Every command is a silent no-op on an empty list. Relative moves
// start from the preselection when set, else from the selected item, else
// from a virtual index of -1 so that MoveNext lands on the first item.

// MovePrev preselects the previous item, clamped to the list start.
// Hidden items are not skipped.
func (m *Menu[T]) MovePrev() bool { return m.moveBy(-1) }

// MoveNext preselects the next item, clamped to the list end. Hidden items
// are not skipped.
func (m *Menu[T]) MoveNext() bool { return m.moveBy(1) }

// MoveFirst preselects the first item of the full list.
func (m *Menu[T]) MoveFirst() bool { return m.moveTo(0) }

// MoveLast preselects the last item of the full list.
func (m *Menu[T]) MoveLast() bool { return m.moveTo(m.registry.Len() - 1) }

// JumpStart preselects index 0 regardless of visibility (the platform
// "all the way up" shortcut).
func (m *Menu[T]) JumpStart() bool { return m.moveTo(0) }

// JumpEnd preselects the last index regardless of visibility.
func (m *Menu[T]) JumpEnd() bool { return m.moveTo(m.registry.Len() - 1) }

// PageUp moves against the visible subsequence V: from V's first element
// it steps back by |V| positions clamped to the list bounds; from
// anywhere else it jumps to V's first element.
func (m *Menu[T]) PageUp() bool {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		return false
	}
	first := visible[0]
	if m.presel == first {
		return m.moveTo(m.presel - len(visible))
	}
	return m.moveTo(first)
}

// PageDown mirrors PageUp against V's last element.
func (m *Menu[T]) PageDown() bool {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		return false
	}
	last := visible[len(visible)-1]
	if m.presel == last {
		return m.moveTo(m.presel + len(visible))
	}
	return m.moveTo(last)
}

func (m *Menu[T]) moveBy(delta int) bool {
	return m.moveTo(m.startIndex() + delta)
}

func (m *Menu[T]) moveTo(index int) bool {
	n := m.registry.Len()
	if n == 0 {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	return m.setPresel(index)
}

func (m *Menu[T]) startIndex() int {
	if m.presel >= 0 {
		return m.presel
	}
	if m.selected != nil {
		if idx := m.registry.IndexOf(m.selected.Value); idx >= 0 {
			return idx
		}
	}
	return -1
}

// visibleIndices returns the positions of the currently visible
// subsequence in order.
func (m *Menu[T]) visibleIndices() []int {
	items := m.registry.order
	visible := make([]int, 0, len(items))
	for i, item := range items {
		if m.isVisible(i, item) {
			visible = append(visible, i)
		}
	}
	return visible
}
