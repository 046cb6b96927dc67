// Released under an MIT license. See LICENSE.

// Package sym provides wisp's symbol cell type.
package sym

import (
	"github.com/wisplang/wisp/internal/interface/cell"
)

const name = "symbol"

// Else is the symbol that always passes a cond test.
// Unspecified is returned by cond when no clause matches.
//
//nolint:gochecknoglobals
var (
	Else        = New("else")
	Unspecified = New("unspecified")
)

// T (symbol) wraps Go's string type.
type T string

// New creates a symbol cell.
func New(v string) *T {
	s := T(v)
	return &s
}

// The symbol type is a cell.

// Equal returns true if c is a symbol and wraps the same string.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the literal representation of the symbol s.
func (s *T) Literal() string {
	return string(*s)
}

// The symbol type is a stringer.

// String returns the text of the symbol s.
func (s *T) String() string {
	return s.Literal()
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}
