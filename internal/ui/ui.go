// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the wisp language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/system/history"
)

// Farewell is printed at end of input or when the user quits.
const Farewell = "bye!"

// Prompt is displayed before each line is read interactively.
const Prompt = "wisp => "

const help = `Enter one wisp expression per line. Lists are postfix: (1 2 +).
Commands:
  :bindings [PATTERN]  List global names matching the glob PATTERN.
  :help                Display this help.
  :quit                Leave wisp.
  :reset               Discard every definition.
`

// Evaluator is the interface for things that want to process lines of wisp.
type Evaluator interface {
	Bindings() map[string]cell.T
	Reset()
	Run(text string) (cell.T, error)
}

// Run launches the interactive prompt which sends lines to the Evaluator.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	if err := history.Load(cli.ReadHistory); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
	}

	for {
		line, err := cli.Prompt(Prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Println()
			fmt.Println(Farewell)
			save(cli)

			return
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		if quit := Process(e, os.Stdout, line); quit {
			fmt.Println(Farewell)
			save(cli)

			return
		}
	}
}

// Script sends each line read from r to the Evaluator, writing output to w.
func Script(e Evaluator, r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for s.Scan() {
		if quit := Process(e, w, s.Text()); quit {
			break
		}
	}

	if err := s.Err(); err != nil {
		return err
	}

	fmt.Fprintln(w, Farewell)

	return nil
}

// Process handles one line: a command, a blank line, or an expression whose
// result or error is written to w. It returns true if the user asked to quit.
func Process(e Evaluator, w io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ":") {
		return command(e, w, strings.Fields(line))
	}

	c, err := e.Run(line)
	if err != nil {
		fmt.Fprintln(w, err)
		return false
	}

	fmt.Fprintln(w, literal.String(c))

	return false
}

func command(e Evaluator, w io.Writer, fields []string) bool {
	switch fields[0] {
	case ":bindings":
		pattern := ""
		if len(fields) > 1 {
			pattern = fields[1]
		}

		names, err := Bindings(e, pattern)
		if err != nil {
			fmt.Fprintln(w, err)
			return false
		}

		for _, name := range names {
			fmt.Fprintln(w, name)
		}
	case ":help":
		fmt.Fprint(w, help)
	case ":quit":
		return true
	case ":reset":
		e.Reset()
		fmt.Fprintln(w, "environment reset.")
	default:
		fmt.Fprintf(w, "unknown command %s. Type :help for help.\n", fields[0])
	}

	return false
}

// Bindings returns the sorted global names that match the glob pattern.
// An empty pattern matches every name. As in the shell, a / in a name is
// only matched by a / in the pattern.
func Bindings(e Evaluator, pattern string) ([]string, error) {
	names := []string{}

	for name := range e.Bindings() {
		ok := pattern == ""
		if !ok {
			var err error

			ok, err = adapted.Match(pattern, name)
			if err != nil {
				return nil, err
			}
		}

		if ok {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		runes := []rune(line)
		head = string(runes[:pos])
		tail = string(runes[pos:])

		start := strings.LastIndexAny(head, "( \t") + 1
		prefix := head[start:]
		head = head[:start]

		if prefix == "" {
			return
		}

		names, _ := Bindings(e, "")
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				completions = append(completions, name)
			}
		}

		return
	}
}

func save(cli *liner.State) {
	if err := history.Save(cli.WriteHistory); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
