// Released under an MIT license. See LICENSE.

// Package integer defines the interface for wisp's numeric type.
package integer

import (
	"math/big"

	"github.com/wisplang/wisp/internal/interface/cell"
)

// T (integer) is anything that can be treated as an integer in wisp.
type T interface {
	Int() *big.Int
}

// Value returns the *big.Int value for a cell, if it has one.
func Value(c cell.T) (*big.Int, bool) {
	i, ok := c.(T)
	if !ok {
		return nil, false
	}

	return i.Int(), true
}
