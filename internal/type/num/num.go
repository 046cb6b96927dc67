// Released under an MIT license. See LICENSE.

// Package num provides wisp's arbitrary-precision integer type.
package num

import (
	"math/big"

	"github.com/wisplang/wisp/internal/interface/cell"
)

const name = "integer"

// T (integer) wraps Go's big.Int type.
type T big.Int

// New creates a new integer from a base-10 string.
func New(s string) *T {
	v := &big.Int{}

	if _, ok := v.SetString(s, 10); !ok {
		panic("'" + s + "' is not a valid integer")
	}

	return Int(v)
}

// Int wraps the *big.Int i as an integer.
func Int(i *big.Int) *T {
	return (*T)(i)
}

// Int64 creates a new integer from the int64 n.
func Int64(n int64) *T {
	return Int(big.NewInt(n))
}

// The integer type is a cell.

// Equal returns true if c is the same integer as the integer n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Int().Cmp(To(c).Int()) == 0
}

// Name returns the type name for the integer n.
func (n *T) Name() string {
	return name
}

// The integer type has a literal representation.

// Literal returns the literal representation of the integer n.
func (n *T) Literal() string {
	return n.String()
}

// The integer type is an integer.

// Int returns the value of the integer n as a *big.Int.
func (n *T) Int() *big.Int {
	return (*big.Int)(n)
}

// The integer type is a stringer.

// String returns the base-10 text of the integer n.
func (n *T) String() string {
	return n.Int().String()
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
