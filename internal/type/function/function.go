// Released under an MIT license. See LICENSE.

// Package function provides wisp's arguments-evaluated routine type.
package function

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/env"
)

const name = "function"

// Native is the Go implementation of a function. It receives evaluated arguments.
type Native func(args []cell.T, e *env.T) (cell.T, error)

// T (function) is a primitive or a closure created by lambda.
type T struct {
	label  string
	native Native
}

// New creates a function named label implemented by native.
func New(label string, native Native) *T {
	return &T{label: label, native: native}
}

// The function type is a cell.

// Equal returns true if the cell c is the same function as f.
func (f *T) Equal(c cell.T) bool {
	p, ok := c.(*T)
	return ok && p == f
}

// Name returns the name of the function type.
func (f *T) Name() string {
	return name
}

// The function type has a literal representation.

// Literal returns the literal representation of the function f.
func (f *T) Literal() string {
	return "(|" + name + " " + f.label + "|)"
}

// Methods specific to function.

// Call invokes f with already-evaluated arguments.
func (f *T) Call(args []cell.T, e *env.T) (cell.T, error) {
	return f.native(args, e)
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}
