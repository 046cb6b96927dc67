// Released under an MIT license. See LICENSE.

// Package literal defines the interface for wisp expressions with a textual form.
package literal

import (
	"github.com/wisplang/wisp/internal/interface/cell"
)

// T (literal) is any type that can be expressed as text.
type T interface {
	Literal() string
}

// String returns the literal string representation for a cell.
func String(c cell.T) string {
	if c == nil {
		return "(|nil|)"
	}

	l, ok := c.(T)
	if !ok {
		return "(|" + c.Name() + "|)"
	}

	return l.Literal()
}
