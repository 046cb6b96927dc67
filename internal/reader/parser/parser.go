// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the wisp language.
package parser

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/reader/token"
	"github.com/wisplang/wisp/internal/type/boolean"
	"github.com/wisplang/wisp/internal/type/list"
	"github.com/wisplang/wisp/internal/type/loc"
	"github.com/wisplang/wisp/internal/type/num"
	"github.com/wisplang/wisp/internal/type/str"
	"github.com/wisplang/wisp/internal/type/sym"
)

// Error is a parse failure at a source location.
type Error struct {
	Source  loc.T
	Message string
}

// Error returns the location and message for the parse error e.
func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Message
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes tokens produced by item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes every token and returns the single expression they form.
// Trailing input after the expression is an error.
func (p *T) Parse() (c cell.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		c, err = nil, e
	}()

	c = p.expression()

	switch t := p.peek(); t.Class() {
	case token.EOF:
	case token.Error:
		p.fail(t, t.Value())
	default:
		p.fail(t, "expected end of input, got "+describe(t))
	}

	return c, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) expect(c token.Class) {
	t := p.peek()
	if t.Is(c) {
		p.consume()

		return
	}

	p.fail(t, "expected "+c.String()+", got "+describe(t))
}

func (p *T) fail(t *token.T, msg string) {
	panic(&Error{Source: t.Source(), Message: msg})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()
	if t == nil {
		panic("no more tokens")
	}

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expression> ::= Bool | String | Symbol | Integer | <list> .
func (p *T) expression() cell.T {
	t := p.peek()

	switch t.Class() {
	case token.Bool:
		return boolean.New(p.consume().Value())
	case token.String:
		return str.New(p.consume().Value())
	case token.Symbol:
		return sym.New(p.consume().Value())
	case token.Integer:
		return num.New(p.consume().Value())
	case '(':
		return p.list()
	case token.Error:
		p.fail(t, t.Value())
	}

	p.fail(t, "unexpected "+describe(t))

	return nil
}

// <list> ::= '(' ')' | '(' <expression> (Space <expression>)* ')' .
func (p *T) list() cell.T {
	p.expect('(')

	if p.peek().Is(')') {
		p.consume()

		return list.New()
	}

	items := []cell.T{p.expression()}

	for {
		t := p.peek()

		switch t.Class() {
		case ')':
			p.consume()

			return list.New(items...)
		case token.Space:
			p.consume()

			items = append(items, p.expression())
		case token.Error:
			p.fail(t, t.Value())
		default:
			p.fail(t, "expected space or ')', got "+describe(t))
		}
	}
}

func describe(t *token.T) string {
	switch t.Class() {
	case token.EOF:
		return "end of input"
	case token.Space:
		return "space"
	case token.String:
		return `'"` + t.Value() + `"'`
	}

	return "'" + t.Value() + "'"
}
