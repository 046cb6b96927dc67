// Released under an MIT license. See LICENSE.

// Package options parses wisp's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by -v.
const Version = "wisp 0.3.0"

const usage = `wisp

Usage:
  wisp [-di] [SCRIPT]
  wisp [-d] -c EXPRESSION
  wisp -h
  wisp -v

Arguments:
  SCRIPT  Path to a file of wisp expressions, one per line.

Options:
  -c, --command=EXPRESSION  Evaluate the expression, print the result and exit.
  -d, --debug               Log environment frame activity to stderr.
  -i, --interactive         Invert interactive mode.
  -h, --help                Display this help.
  -v, --version             Print wisp version.

If wisp's stdin is a TTY, and wisp was invoked without a script or command,
the interactive prompt is enabled. Otherwise lines are read from the script
or stdin without a prompt.
`

// T (options) holds the parsed command-line configuration.
type T struct {
	Command     string
	Debug       bool
	Interactive bool
	Script      string
	Version     bool
}

// Parse parses os.Args. It prints usage and exits on -h or invalid arguments.
func Parse() *T {
	o, err := parse(docopt.DefaultParser, os.Args[1:], terminal())
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	return o
}

// ParseArgs parses argv without printing or exiting. Stdin is a TTY if tty is true.
func ParseArgs(argv []string, tty bool) (*T, error) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	return parse(p, argv, tty)
}

func parse(p *docopt.Parser, argv []string, tty bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Command, _ = opts.String("--command")
	o.Script, _ = opts.String("SCRIPT")
	o.Debug, _ = opts.Bool("--debug")
	o.Version, _ = opts.Bool("--version")

	if o.Command == "" && o.Script == "" {
		o.Interactive = tty
	}

	invertInteractive, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invertInteractive

	return o, nil
}

func terminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
