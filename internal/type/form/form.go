// Released under an MIT license. See LICENSE.

// Package form provides wisp's special form type. A special form receives
// its arguments unevaluated and decides what to evaluate, and where.
package form

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/env"
)

const name = "form"

// Native is the Go implementation of a special form. It receives raw arguments.
type Native func(args []cell.T, e *env.T) (cell.T, error)

// T (form) is a special form.
type T struct {
	label  string
	native Native
}

// New creates a special form named label implemented by native.
func New(label string, native Native) *T {
	return &T{label: label, native: native}
}

// The form type is a cell.

// Equal returns true if the cell c is the same special form as f.
func (f *T) Equal(c cell.T) bool {
	p, ok := c.(*T)
	return ok && p == f
}

// Name returns the name of the form type.
func (f *T) Name() string {
	return name
}

// The form type has a literal representation.

// Literal returns the literal representation of the special form f.
func (f *T) Literal() string {
	return "(|" + name + " " + f.label + "|)"
}

// Methods specific to form.

// Call invokes f with unevaluated arguments.
func (f *T) Call(args []cell.T, e *env.T) (cell.T, error) {
	return f.native(args, e)
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}
