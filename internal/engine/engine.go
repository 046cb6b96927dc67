// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for wisp source text.
package engine

import (
	"github.com/wisplang/wisp/internal/engine/commands"
	"github.com/wisplang/wisp/internal/engine/eval"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/reader"
	"github.com/wisplang/wisp/internal/type/env"
)

// T (engine) is a facade in front of the machinery for evaluating wisp code.
// It owns one long-lived environment seeded with the builtins.
type T struct {
	env   *env.T
	label string
}

// New creates a new T. Label names the source in parse errors.
func New(label string) *T {
	return &T{
		env:   env.New(commands.Prelude()),
		label: label,
	}
}

// Bindings returns a snapshot of the global bindings.
func (e *T) Bindings() map[string]cell.T {
	return e.env.GlobalScope()
}

// Depth returns the number of frames in the environment.
func (e *T) Depth() int {
	return e.env.Depth()
}

// Evaluate evaluates the expression c in the engine's environment.
func (e *T) Evaluate(c cell.T) (cell.T, error) {
	return eval.Eval(c, e.env)
}

// Reset discards every user binding.
func (e *T) Reset() {
	e.env = env.New(commands.Prelude())
}

// Run parses the text as one expression and evaluates it.
func (e *T) Run(text string) (cell.T, error) {
	c, err := reader.Parse(e.label, text)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(c)
}
