// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/wisplang/wisp/internal/common/validate"
	"github.com/wisplang/wisp/internal/engine/eval"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/type/boolean"
	"github.com/wisplang/wisp/internal/type/env"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/list"
	"github.com/wisplang/wisp/internal/type/sym"
)

// Arguments were already evaluated, in order, by the caller.
func begin(args []cell.T, _ *env.T) (cell.T, error) {
	if len(args) == 0 {
		return sym.Unspecified, nil
	}

	return args[len(args)-1], nil
}

// Clauses are written (body test) and tried in argument order.
func cond(args []cell.T, e *env.T) (cell.T, error) {
	for _, c := range args {
		clause, ok := c.(*list.T)
		if !ok || clause.Len() != 2 {
			return nil, errstr.New("invalid cond clause %s", literal.String(c))
		}

		items := clause.Items()
		body, test := items[0], items[1]

		passed := sym.Else.Equal(test)
		if !passed {
			v, err := eval.Eval(test, e)
			if err != nil {
				return nil, err
			}

			b, ok := v.(*boolean.T)
			if !ok {
				return nil, errstr.Type("boolean", v)
			}

			passed = b.Bool()
		}

		if passed {
			return eval.Eval(body, e)
		}
	}

	return sym.Unspecified, nil
}

func define(args []cell.T, e *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	k, err := validate.Symbol(args[0])
	if err != nil {
		return nil, err
	}

	v, err := eval.Eval(args[1], e)
	if err != nil {
		return nil, err
	}

	e.AddBinding(k.String(), v)

	return k, nil
}

func quote(args []cell.T, _ *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	return args[0], nil
}

func set(args []cell.T, e *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	k, err := validate.Symbol(args[0])
	if err != nil {
		return nil, err
	}

	v, err := eval.Eval(args[1], e)
	if err != nil {
		return nil, err
	}

	if err := e.SetBinding(k.String(), v); err != nil {
		return nil, err
	}

	return v, nil
}
