// Released under an MIT license. See LICENSE.

// Package commands provides wisp's builtin functions and special forms.
package commands

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/form"
	"github.com/wisplang/wisp/internal/type/function"
	"github.com/wisplang/wisp/internal/type/hash"
)

// Functions returns the builtins whose arguments are evaluated before the call.
func Functions() map[string]function.Native {
	return map[string]function.Native{
		"*":     mul,
		"+":     add,
		"-":     sub,
		"/":     div,
		"atom?": isAtom,
		"begin": begin,
		"car":   car,
		"cdr":   cdr,
		"cons":  cons,
		"eq?":   eq,
	}
}

// Forms returns the builtins that receive their arguments unevaluated.
func Forms() map[string]form.Native {
	return map[string]form.Native{
		"cond":   cond,
		"define": define,
		"lambda": lambda,
		"quote":  quote,
		"set!":   set,
	}
}

// Prelude returns a new frame with every builtin bound.
func Prelude() *hash.T {
	m := map[string]cell.T{}

	for k, v := range Functions() {
		m[k] = function.New(k, v)
	}

	for k, v := range Forms() {
		m[k] = form.New(k, v)
	}

	return hash.Of(m)
}
