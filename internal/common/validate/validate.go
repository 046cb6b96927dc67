// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to wisp builtins.
// Arity is checked before types.
package validate

import (
	"math/big"

	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/integer"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/list"
	"github.com/wisplang/wisp/internal/type/sym"
)

// Fixed returns an error unless exactly n arguments were passed.
func Fixed(actual []cell.T, n int) error {
	if len(actual) != n {
		return errstr.Arity(len(actual), n)
	}

	return nil
}

// Integer returns the value of c if it is an integer.
func Integer(c cell.T) (*big.Int, error) {
	i, ok := integer.Value(c)
	if !ok {
		return nil, errstr.Type("integer", c)
	}

	return i, nil
}

// List returns c as a list if it is one.
func List(c cell.T) (*list.T, error) {
	l, ok := c.(*list.T)
	if !ok {
		return nil, errstr.Type("list", c)
	}

	return l, nil
}

// NonEmpty returns c as a list if it is a list with at least one item.
// The operation name op is used in the error for an empty list.
func NonEmpty(op string, c cell.T) (*list.T, error) {
	l, err := List(c)
	if err != nil {
		return nil, err
	}

	if l.Empty() {
		return nil, errstr.New("cannot apply %s to an empty list", op)
	}

	return l, nil
}

// Symbol returns c as a symbol if it is one.
func Symbol(c cell.T) (*sym.T, error) {
	s, ok := c.(*sym.T)
	if !ok {
		return nil, errstr.Type("symbol", c)
	}

	return s, nil
}
