// Released under an MIT license. See LICENSE.

// Package errstr provides wisp's evaluation error type.
package errstr

import (
	"errors"
	"fmt"

	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
)

// T (errstr) is a language exception raised while evaluating wisp code.
type T string

// New creates a new errstr from a format string and arguments.
func New(format string, a ...interface{}) *T {
	s := T(fmt.Sprintf(format, a...))
	return &s
}

// Arity creates the error for a routine called with the wrong number of arguments.
func Arity(actual, expected int) *T {
	return New("called with %d arguments, requires %d", actual, expected)
}

// Type creates the error for a value that is not of the expected type.
func Type(expected string, c cell.T) *T {
	return New("expected %s, not %s", expected, literal.String(c))
}

// Error returns the message for the errstr e.
func (e *T) Error() string {
	return string(*e)
}

// Is returns true if err is, or wraps, an errstr.
func Is(err error) bool {
	var e *T
	return errors.As(err, &e)
}
