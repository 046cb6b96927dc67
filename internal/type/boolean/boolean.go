// Released under an MIT license. See LICENSE.

// Package boolean provides wisp's boolean value type.
package boolean

import (
	"github.com/wisplang/wisp/internal/interface/cell"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean cell for the bool b.
func Bool(b bool) *T {
	if b {
		return True
	}

	return False
}

// New creates a boolean from its literal form, #t or #f.
func New(s string) *T {
	b, ok := map[string]*boolean{
		"#t": True,
		"#f": False,
	}[s]

	if ok {
		return b
	}

	panic(s + " is not #t or #f")
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.T) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	return b.Literal()
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}
