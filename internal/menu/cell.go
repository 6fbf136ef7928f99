package menu

// Opt is an optional value of type T.
type Opt[T comparable] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T comparable](value T) Opt[T] { return Opt[T]{value: value, ok: true} }

// None is the absent value.
func None[T comparable]() Opt[T] { return Opt[T]{} }

// Get returns the wrapped value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool { return o.ok }

// CellObserver is notified with the previous and new cell contents.
type CellObserver[T comparable] func(old, new Opt[T])

// Cell is a single observable holding the widget's current value. A cell
// is local until Bind points it at an externally owned cell; while bound,
// reads and writes delegate to the owner, and the owner's changes fan out
// to every follower synchronously.
type Cell[T comparable] struct {
	value    Opt[T]
	disabled bool

	owner     *Cell[T]
	followers []*Cell[T]

	observers []CellObserver[T]
	notifying bool
}

// NewCell returns an empty local cell.
func NewCell[T comparable]() *Cell[T] { return &Cell[T]{} }

// Observe registers fn for value changes, whatever their cause.
func (c *Cell[T]) Observe(fn CellObserver[T]) {
	c.observers = append(c.observers, fn)
}

// Value returns the current contents.
func (c *Cell[T]) Value() Opt[T] { return c.root().value }

// Disabled reports whether writes are currently rejected.
func (c *Cell[T]) Disabled() bool { return c.root().disabled }

// SetDisabled toggles the disabled flag. The flag is shared across bound
// cells.
func (c *Cell[T]) SetDisabled(disabled bool) { c.root().disabled = disabled }

// Set assigns a value programmatically. Disabled cells reject the write
// with ErrDisabled.
func (c *Cell[T]) Set(value T) error { return c.set(Some(value), false) }

// ClearValue empties the cell programmatically.
func (c *Cell[T]) ClearValue() error { return c.set(None[T](), false) }

// SetFromUser assigns a value through the interactive path. Writes to a
// disabled cell are ignored without error.
func (c *Cell[T]) SetFromUser(value T) { _ = c.set(Some(value), true) }

func (c *Cell[T]) set(value Opt[T], interactive bool) error {
	root := c.root()
	if root.disabled {
		if interactive {
			return nil
		}
		return ErrDisabled
	}
	root.apply(value)
	return nil
}

// force assigns a value bypassing the disabled flag. Reserved for internal
// consistency resets after item list replacement.
func (c *Cell[T]) force(value Opt[T]) { c.root().apply(value) }

func (c *Cell[T]) apply(value Opt[T]) {
	if value == c.value {
		// Same-value writes are no-ops; this bounds reentrant observer
		// loops to one extra pass.
		return
	}
	old := c.value
	c.value = value
	if c.notifying {
		// A nested write from an observer updates the value but does not
		// start a second broadcast.
		return
	}
	c.notifying = true
	c.fanOut(old, value)
	c.notifying = false
}

func (c *Cell[T]) fanOut(old, new Opt[T]) {
	for _, fn := range c.observers {
		fn(old, new)
	}
	for _, follower := range c.followers {
		follower.followerNotify(old, new)
	}
}

func (c *Cell[T]) followerNotify(old, new Opt[T]) {
	if c.notifying {
		return
	}
	c.notifying = true
	for _, fn := range c.observers {
		fn(old, new)
	}
	c.notifying = false
}

// Bind repoints the cell at an externally owned cell. The external cell
// becomes the value's owner for the rest of the binding: reads and writes
// delegate to it and its changes reach this cell's observers. Binding nil
// fails with ErrNilCell; binding a cell to itself is a no-op. A previous
// binding is released first.
func (c *Cell[T]) Bind(external *Cell[T]) error {
	if external == nil {
		return ErrNilCell
	}
	owner := external.root()
	if owner == c.root() {
		return nil
	}
	if c.owner != nil {
		c.Unbind()
	}
	old := c.value
	c.owner = owner
	c.value = Opt[T]{}
	owner.followers = append(owner.followers, c)
	if now := owner.value; now != old {
		c.followerNotify(old, now)
	}
	return nil
}

// Unbind detaches the cell from its owner, keeping the owner's current
// value as local state. Unbound cells are left untouched.
func (c *Cell[T]) Unbind() {
	if c.owner == nil {
		return
	}
	owner := c.owner
	current := owner.root().value
	for i, follower := range owner.followers {
		if follower == c {
			owner.followers = append(owner.followers[:i], owner.followers[i+1:]...)
			break
		}
	}
	c.owner = nil
	c.value = current
}

func (c *Cell[T]) root() *Cell[T] {
	node := c
	for node.owner != nil {
		node = node.owner
	}
	return node
}
