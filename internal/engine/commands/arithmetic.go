// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/wisplang/wisp/internal/common/validate"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/env"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/num"
)

func add(args []cell.T, _ *env.T) (cell.T, error) {
	return fold(args, func(acc, v *big.Int) error {
		acc.Add(acc, v)
		return nil
	})
}

// Floor division. The quotient is rounded toward negative infinity.
func div(args []cell.T, _ *env.T) (cell.T, error) {
	return fold(args, func(acc, v *big.Int) error {
		if v.Sign() == 0 {
			return errstr.New("division by zero")
		}

		r := &big.Int{}
		acc.QuoRem(acc, v, r)

		if r.Sign() != 0 && r.Sign() != v.Sign() {
			acc.Sub(acc, big.NewInt(1))
		}

		return nil
	})
}

func mul(args []cell.T, _ *env.T) (cell.T, error) {
	return fold(args, func(acc, v *big.Int) error {
		acc.Mul(acc, v)
		return nil
	})
}

func sub(args []cell.T, _ *env.T) (cell.T, error) {
	return fold(args, func(acc, v *big.Int) error {
		acc.Sub(acc, v)
		return nil
	})
}

// Left-fold op over args. No arguments is zero.
func fold(args []cell.T, op func(acc, v *big.Int) error) (cell.T, error) {
	if len(args) == 0 {
		return num.Int64(0), nil
	}

	operands := make([]*big.Int, len(args))

	for i, c := range args {
		v, err := validate.Integer(c)
		if err != nil {
			return nil, err
		}

		operands[i] = v
	}

	acc := (&big.Int{}).Set(operands[0])

	for _, v := range operands[1:] {
		if err := op(acc, v); err != nil {
			return nil, err
		}
	}

	return num.Int(acc), nil
}
