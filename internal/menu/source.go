package menu

// Source is an externally owned ordered collection of values. While bound
// to a registry it is the sole authority over the item list.
type Source[T comparable] interface {
	// Values returns the current values in order.
	Values() []T
	// Subscribe registers fn to run after every mutation and returns a
	// cancel function.
	Subscribe(fn func()) (cancel func())
}

// BindSource mirrors src into the registry. The registry is rebuilt from
// the full source sequence immediately and again on every source
// notification, so registry order always matches source order exactly.
// Binding nil unbinds the current source and clears the registry.
func (r *Registry[T]) BindSource(src Source[T]) {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
	r.source = src
	if src == nil {
		_ = r.replaceAll(nil)
		return
	}
	r.unsub = src.Subscribe(r.rebuildFromSource)
	r.rebuildFromSource()
}

// SourceBound reports whether an external source currently owns the list.
func (r *Registry[T]) SourceBound() bool { return r.source != nil }

// rebuildFromSource replaces the registry contents with the source's
// entire current sequence. Deliberately not an incremental diff. Duplicate
// values in the source keep their first occurrence only.
func (r *Registry[T]) rebuildFromSource() {
	values := r.source.Values()
	entries := make([]Entry[T], 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		entries = append(entries, Entry[T]{Value: v})
	}
	_ = r.replaceAll(entries)
}

type sliceListener struct {
	id int
	fn func()
}

// SliceSource is a basic in-memory Source backed by a slice.
type SliceSource[T comparable] struct {
	values    []T
	listeners []sliceListener
	nextID    int
}

// NewSliceSource returns a SliceSource seeded with the given values.
func NewSliceSource[T comparable](values ...T) *SliceSource[T] {
	s := &SliceSource[T]{}
	s.values = append(s.values, values...)
	return s
}

// Values returns a copy of the current sequence.
func (s *SliceSource[T]) Values() []T {
	values := make([]T, len(s.values))
	copy(values, s.values)
	return values
}

// Len returns the number of values.
func (s *SliceSource[T]) Len() int { return len(s.values) }

// Append adds a value at the end and notifies subscribers.
func (s *SliceSource[T]) Append(value T) {
	s.values = append(s.values, value)
	s.broadcast()
}

// Insert places a value at position i, clamped to the valid range.
func (s *SliceSource[T]) Insert(i int, value T) {
	if i < 0 {
		i = 0
	}
	if i > len(s.values) {
		i = len(s.values)
	}
	s.values = append(s.values[:i], append([]T{value}, s.values[i:]...)...)
	s.broadcast()
}

// Remove drops the first occurrence of value and reports whether it was
// present.
func (s *SliceSource[T]) Remove(value T) bool {
	for i, v := range s.values {
		if v == value {
			s.values = append(s.values[:i], s.values[i+1:]...)
			s.broadcast()
			return true
		}
	}
	return false
}

// Replace swaps the whole sequence in one notification.
func (s *SliceSource[T]) Replace(values ...T) {
	s.values = append(s.values[:0:0], values...)
	s.broadcast()
}

// Subscribe registers fn for mutation notifications.
func (s *SliceSource[T]) Subscribe(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, sliceListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *SliceSource[T]) broadcast() {
	for _, l := range s.listeners {
		l.fn()
	}
}
