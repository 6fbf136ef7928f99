package menu

import "fmt"

// Labeler lets a value supply its own menu label.
type Labeler interface {
	MenuLabel() string
}

// Describer lets enumerated values expose a human-readable description.
type Describer interface {
	Description() string
}

// Item is one selectable entry, pairing a value with its display text.
// Identity is Value; one item exists per distinct value.
type Item[T comparable] struct {
	Value  T
	Label  string
	Hidden bool

	// owner is set once when the item is attached to a menu. It is a plain
	// back reference, never an ownership edge.
	owner *Menu[T]
}

// Select commits the item's value through the interactive write path.
// Detached items (not attached to a menu) ignore the call.
func (it *Item[T]) Select() {
	if it.owner != nil {
		it.owner.selectItem(it)
	}
}

// Hover preselects the item. It only has an effect while the owning menu
// is open.
func (it *Item[T]) Hover() {
	if it.owner != nil {
		it.owner.hoverItem(it)
	}
}

// textProbe attempts to derive display text from a boxed value.
type textProbe func(any) (string, bool)

// textProbes are evaluated in order; the first hit wins.
var textProbes = []textProbe{
	func(v any) (string, bool) {
		if l, ok := v.(Labeler); ok {
			return l.MenuLabel(), true
		}
		return "", false
	},
	func(v any) (string, bool) {
		if d, ok := v.(Describer); ok {
			return d.Description(), true
		}
		return "", false
	},
	func(v any) (string, bool) {
		if s, ok := v.(fmt.Stringer); ok {
			return s.String(), true
		}
		return "", false
	},
}

// DisplayText derives a label for a value that was registered or assigned
// without one: a label capability wins, then an enumerated description,
// then a Stringer, then the plain string conversion. Absent values render
// as "null".
func DisplayText[T comparable](value T) string {
	boxed := any(value)
	if boxed == nil {
		return "null"
	}
	for _, probe := range textProbes {
		if text, ok := probe(boxed); ok {
			return text
		}
	}
	return fmt.Sprintf("%v", boxed)
}
