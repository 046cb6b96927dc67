// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/wisplang/wisp/internal/common/validate"
	"github.com/wisplang/wisp/internal/engine/eval"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/type/env"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/function"
	"github.com/wisplang/wisp/internal/type/hash"
	"github.com/wisplang/wisp/internal/type/list"
	"github.com/wisplang/wisp/internal/type/sym"
)

func lambda(args []cell.T, e *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	params, body := args[0], args[1]

	invalid := errstr.New("invalid lambda %s %s",
		literal.String(params), literal.String(body))

	l, ok := params.(*list.T)
	if !ok || !list.Is(body) {
		return nil, invalid
	}

	labels := make([]string, l.Len())
	for i, p := range l.Items() {
		s, ok := p.(*sym.T)
		if !ok {
			return nil, invalid
		}

		labels[i] = s.String()
	}

	// The global frame stays on the stack, so it is never captured.
	var captured *hash.T
	if e.Depth() > 1 {
		captured = e.LocalScope()
	}

	return closure(labels, body, captured), nil
}

// The closure frame is captured once and shared by every call. Each call
// gets a new frame holding the closure's slots, so set! on a captured
// name persists while parameters and defines stay local to the call.
func closure(labels []string, body cell.T, captured *hash.T) *function.T {
	return function.New("lambda", func(args []cell.T, e *env.T) (cell.T, error) {
		if err := validate.Fixed(args, len(labels)); err != nil {
			return nil, err
		}

		e.AddFrame(captured.Share())
		defer e.PopFrame()

		// Arguments arrive in reverse written order; parameters are
		// matched against the written order.
		n := len(args)
		for i, label := range labels {
			e.AddBinding(label, args[n-1-i])
		}

		return eval.Eval(body, e)
	})
}
