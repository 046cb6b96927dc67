// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/wisplang/wisp/internal/common/validate"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/boolean"
	"github.com/wisplang/wisp/internal/type/env"
	"github.com/wisplang/wisp/internal/type/list"
)

func car(args []cell.T, _ *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	l, err := validate.NonEmpty("car", args[0])
	if err != nil {
		return nil, err
	}

	return l.Car(), nil
}

func cdr(args []cell.T, _ *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	l, err := validate.NonEmpty("cdr", args[0])
	if err != nil {
		return nil, err
	}

	return l.Cdr(), nil
}

func cons(args []cell.T, _ *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	tail, err := validate.List(args[1])
	if err != nil {
		return nil, err
	}

	return list.Cons(args[0], tail), nil
}

func isAtom(args []cell.T, _ *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	return boolean.Bool(!list.Is(args[0])), nil
}
