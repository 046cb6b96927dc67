// Released under an MIT license. See LICENSE.

/*
Wisp is a small Lisp written in postfix order. The operator of each
application is the last item of a list:

	(1 2 +)
	(((0 else) (1 (n 1 eq?)) cond) (n) lambda)

Run wisp with no arguments at a terminal for an interactive prompt.
Otherwise wisp reads one expression per line from a script or stdin.
*/
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wisplang/wisp/internal/engine"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/system/options"
	"github.com/wisplang/wisp/internal/ui"
)

func main() {
	o := options.Parse()

	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if o.Version {
		fmt.Println(options.Version)
		os.Exit(0)
	}

	os.Exit(run(o))
}

func run(o *options.T) int {
	switch {
	case o.Command != "":
		e := engine.New("-c")

		c, err := e.Run(o.Command)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		fmt.Println(literal.String(c))
	case o.Script != "":
		f, err := os.Open(o.Script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()

		if err := ui.Script(engine.New(o.Script), f, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case o.Interactive:
		ui.Run(engine.New("wisp"))
	default:
		if err := ui.Script(engine.New("stdin"), os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	return 0
}
