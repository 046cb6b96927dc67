// Released under an MIT license. See LICENSE.

// Package eval provides the tree-walking evaluator for wisp expressions.
//
// Atoms evaluate to themselves and symbols to their binding. A non-empty
// list is a postfix application: its last item is evaluated first and must
// yield a function or special form; the remaining items, in reverse order,
// are the arguments.
package eval

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/type/boolean"
	"github.com/wisplang/wisp/internal/type/env"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/form"
	"github.com/wisplang/wisp/internal/type/function"
	"github.com/wisplang/wisp/internal/type/list"
	"github.com/wisplang/wisp/internal/type/num"
	"github.com/wisplang/wisp/internal/type/str"
	"github.com/wisplang/wisp/internal/type/sym"
)

// Eval evaluates the cell c in the env e.
func Eval(c cell.T, e *env.T) (cell.T, error) {
	switch c := c.(type) {
	case *str.T, *num.T, *boolean.T, *function.T, *form.T:
		return c, nil
	case *sym.T:
		return e.Lookup(c.String())
	case *list.T:
		return apply(c, e)
	}

	return nil, errstr.New("cannot evaluate %s", literal.String(c))
}

// All evaluates each cell in cs, in order, in the env e.
func All(cs []cell.T, e *env.T) ([]cell.T, error) {
	vs := make([]cell.T, len(cs))

	for i, c := range cs {
		v, err := Eval(c, e)
		if err != nil {
			return nil, err
		}

		vs[i] = v
	}

	return vs, nil
}

func apply(l *list.T, e *env.T) (cell.T, error) {
	if l.Empty() {
		return l, nil
	}

	head, err := Eval(l.Last(), e)
	if err != nil {
		return nil, err
	}

	switch head := head.(type) {
	case *function.T:
		args, err := All(l.Arguments(), e)
		if err != nil {
			return nil, err
		}

		return head.Call(args, e)
	case *form.T:
		return head.Call(l.Arguments(), e)
	}

	return nil, errstr.New("%s is not applicable", literal.String(l.Last()))
}
