// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all wisp expressions.
package cell

// T (cell) is a wisp expression. Strings, integers, booleans, symbols,
// lists, functions and special forms are the only implementations.
type T interface {
	Equal(c T) bool
	Name() string
}
