package menu

// Entry describes one item for bulk registration. An empty Label falls
// back to the display-text policy.
type Entry[T comparable] struct {
	Label string
	Value T
}

// Change describes an effective registry mutation delivered to observers.
type Change[T comparable] struct {
	Items []*Item[T]
	// Replaced marks full list replacements (Clear, SetAll, source
	// rebuilds) as opposed to incremental add/remove edits.
	Replaced bool
}

// Observer receives registry changes after they are fully applied.
type Observer[T comparable] func(Change[T])

// Registry is an insertion-ordered mapping from value to item. Insertion
// order defines navigation order and "first item" semantics.
type Registry[T comparable] struct {
	order     []*Item[T]
	index     map[T]*Item[T]
	observers []Observer[T]

	source Source[T]
	unsub  func()

	batchDepth    int
	batchDirty    bool
	batchReplaced bool
}

// NewRegistry returns an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{index: make(map[T]*Item[T])}
}

// Subscribe registers an observer for registry changes.
func (r *Registry[T]) Subscribe(fn Observer[T]) {
	r.observers = append(r.observers, fn)
}

// Items returns the items in insertion order.
func (r *Registry[T]) Items() []*Item[T] {
	items := make([]*Item[T], len(r.order))
	copy(items, r.order)
	return items
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int { return len(r.order) }

// At returns the item at position i in insertion order.
func (r *Registry[T]) At(i int) *Item[T] { return r.order[i] }

// Lookup resolves a value to its item.
func (r *Registry[T]) Lookup(value T) (*Item[T], bool) {
	item, ok := r.index[value]
	return item, ok
}

// IndexOf returns the position of the given value, or -1.
func (r *Registry[T]) IndexOf(value T) int {
	if _, ok := r.index[value]; !ok {
		return -1
	}
	for i, item := range r.order {
		if item.Value == value {
			return i
		}
	}
	return -1
}

// AnyVisible reports whether at least one item is not hidden.
func (r *Registry[T]) AnyVisible() bool {
	for _, item := range r.order {
		if !item.Hidden {
			return true
		}
	}
	return false
}

// Add registers a new item at the end of the order. Values must be unique.
func (r *Registry[T]) Add(label string, value T) error {
	if r.source != nil {
		return ErrSourceBound
	}
	return r.add(label, value)
}

func (r *Registry[T]) add(label string, value T) error {
	if _, ok := r.index[value]; ok {
		return &DuplicateValueError{Value: value}
	}
	if label == "" {
		label = DisplayText(value)
	}
	item := &Item[T]{Value: value, Label: label}
	r.order = append(r.order, item)
	r.index[value] = item
	r.notify(false)
	return nil
}

// Remove drops the item with the given value and reports whether one was
// found. Removing the currently selected value does not reassign the
// selection here; the owning menu reconciles separately.
func (r *Registry[T]) Remove(value T) (bool, error) {
	if r.source != nil {
		return false, ErrSourceBound
	}
	return r.remove(value), nil
}

func (r *Registry[T]) remove(value T) bool {
	if _, ok := r.index[value]; !ok {
		return false
	}
	delete(r.index, value)
	for i, item := range r.order {
		if item.Value == value {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.notify(false)
	return true
}

// Clear removes every item as a single replacement.
func (r *Registry[T]) Clear() error {
	if r.source != nil {
		return ErrSourceBound
	}
	return r.replaceAll(nil)
}

// SetAll replaces the whole item list. Observers see only the final state,
// and exactly one change is flushed even when a duplicate aborts the
// rebuild midway.
func (r *Registry[T]) SetAll(entries []Entry[T]) error {
	if r.source != nil {
		return ErrSourceBound
	}
	return r.replaceAll(entries)
}

func (r *Registry[T]) replaceAll(entries []Entry[T]) error {
	return r.Batch(func() error {
		r.order = nil
		r.index = make(map[T]*Item[T], len(entries))
		r.notify(true)
		for _, e := range entries {
			if err := r.add(e.Label, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetHidden updates an item's render-level hidden flag. Hiding is not a
// list mutation, so it is permitted while a source is bound.
func (r *Registry[T]) SetHidden(value T, hidden bool) bool {
	item, ok := r.index[value]
	if !ok || item.Hidden == hidden {
		return false
	}
	item.Hidden = hidden
	r.notify(false)
	return true
}

// Batch runs fn as one logical mutation. Observers are suppressed until fn
// returns and flushed exactly once, even when fn fails.
func (r *Registry[T]) Batch(fn func() error) error {
	r.batchDepth++
	defer func() {
		r.batchDepth--
		if r.batchDepth == 0 && r.batchDirty {
			replaced := r.batchReplaced
			r.batchDirty = false
			r.batchReplaced = false
			r.fire(replaced)
		}
	}()
	return fn()
}

func (r *Registry[T]) notify(replaced bool) {
	if r.batchDepth > 0 {
		r.batchDirty = true
		r.batchReplaced = r.batchReplaced || replaced
		return
	}
	r.fire(replaced)
}

func (r *Registry[T]) fire(replaced bool) {
	change := Change[T]{Items: r.Items(), Replaced: replaced}
	for _, fn := range r.observers {
		fn(change)
	}
}
