package state

// Viewport tracks the scroll window over the rendered rows of the open
// menu. Rows are positions within the non-hidden subsequence, not indices
// into the full item list.
type Viewport struct {
	Offset     int
	MaxVisible int // rows available on screen; <= 0 renders everything
}

// Window returns the half-open row range [start, end) currently on screen.
func (v *Viewport) Window(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	if v.MaxVisible <= 0 || v.MaxVisible >= total {
		return 0, total
	}
	v.clamp(total)
	return v.Offset, v.Offset + v.MaxVisible
}

// Contains reports whether the given row is scrolled into view.
func (v *Viewport) Contains(row, total int) bool {
	start, end := v.Window(total)
	return row >= start && row < end
}

// PageSize returns the number of rows a page jump covers.
func (v *Viewport) PageSize(total int) int {
	if total == 0 {
		return 0
	}
	size := v.MaxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the offset so the given row stays on screen.
func (v *Viewport) EnsureVisible(row, total int) {
	if total <= 0 {
		v.Offset = 0
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= total {
		row = total - 1
	}
	if v.MaxVisible <= 0 {
		v.Offset = 0
		return
	}
	v.clamp(total)
	if row < v.Offset {
		v.Offset = row
	}
	upper := v.Offset + v.MaxVisible - 1
	if row > upper {
		v.Offset = row - v.MaxVisible + 1
	}
	v.clamp(total)
}

func (v *Viewport) clamp(total int) {
	maxOffset := total - v.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
