// Released under an MIT license. See LICENSE.

// Package list provides wisp's list type, the only compound expression.
// A list is both data and, when evaluated, a postfix application.
package list

import (
	"strings"

	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
)

const name = "list"

// T (list) is an ordered sequence of cells. A list is never modified
// after it is created.
type T struct {
	items []cell.T
}

// New creates a list from items. The items slice is copied.
func New(items ...cell.T) *T {
	return &T{items: append([]cell.T(nil), items...)}
}

// The list type is a cell.

// Equal returns true if c is a list of the same length with equal items.
func (l *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(l.items) != len(o.items) {
		return false
	}

	for i, v := range l.items {
		if !v.Equal(o.items[i]) {
			return false
		}
	}

	return true
}

// Name returns the name for the list type.
func (l *T) Name() string {
	return name
}

// The list type has a literal representation.

// Literal returns the literal representation of the list l.
func (l *T) Literal() string {
	s := make([]string, len(l.items))
	for i, v := range l.items {
		s[i] = literal.String(v)
	}

	return "(" + strings.Join(s, " ") + ")"
}

// The list type is a stringer.

// String returns the text representation of the list l.
func (l *T) String() string {
	return l.Literal()
}

// Functions specific to list.

// Empty returns true if the list l has no items.
func (l *T) Empty() bool {
	return len(l.items) == 0
}

// Items returns a copy of the items in the list l.
func (l *T) Items() []cell.T {
	return append([]cell.T(nil), l.items...)
}

// Len returns the number of items in the list l.
func (l *T) Len() int {
	return len(l.items)
}

// Car returns the first item of the list l. The list must not be empty.
func (l *T) Car() cell.T {
	return l.items[0]
}

// Cdr returns a list of all but the first item of l. The list must not be empty.
func (l *T) Cdr() *T {
	return New(l.items[1:]...)
}

// Last returns the last item of the list l. The list must not be empty.
func (l *T) Last() cell.T {
	return l.items[len(l.items)-1]
}

// Cons creates a new list with h prepended to the items of t.
func Cons(h cell.T, t *T) *T {
	items := make([]cell.T, 0, len(t.items)+1)
	items = append(items, h)
	items = append(items, t.items...)

	return &T{items: items}
}

// Arguments returns every item but the last, in reverse order.
// This is the positional argument list when l is applied.
func (l *T) Arguments() []cell.T {
	n := len(l.items) - 1
	if n <= 0 {
		return nil
	}

	args := make([]cell.T, n)
	for i := range args {
		args[i] = l.items[n-1-i]
	}

	return args
}

// Is returns true if c is a list.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}
