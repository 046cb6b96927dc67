// Released under an MIT license. See LICENSE.

// Package slot provides wisp's variable type.
package slot

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/reference"
)

// T (slot) holds a cell value.
type T struct {
	c cell.T
}

// New creates a new slot with the cell c.
func New(c cell.T) *T {
	return &T{c: c}
}

// Get returns the cell in slot s.
func (s *T) Get() cell.T {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *T) Set(c cell.T) {
	s.c = c
}

var _ reference.T = &T{}
