package menu

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller misuse. All of them are surfaced synchronously
// and never swallowed internally.
var (
	// ErrSourceBound is returned by direct item mutation while an external
	// item source owns the list.
	ErrSourceBound = errors.New("menu: item list is bound to an external source")

	// ErrNilCell is returned when binding a value cell to nil.
	ErrNilCell = errors.New("menu: cannot bind to a nil value cell")

	// ErrDisabled is returned by programmatic writes to a disabled value
	// cell. Interactive writes ignore disabled cells silently instead.
	ErrDisabled = errors.New("menu: value cell is disabled")
)

// DuplicateValueError reports an attempt to add an item whose value is
// already registered.
type DuplicateValueError struct {
	Value any
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("menu: duplicate item value %v", e.Value)
}

// IsDuplicateValue reports whether err wraps a DuplicateValueError.
func IsDuplicateValue(err error) bool {
	var dup *DuplicateValueError
	return errors.As(err, &dup)
}
