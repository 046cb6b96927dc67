// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the wisp language.
//
// The wisp lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wisplang/wisp/internal/reader/token"
	"github.com/wisplang/wisp/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	line  int    // Line of the current byte.
	runes int    // Column of the current byte.
	state action // Current action.

	source loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state:  scanExpression,
		tokens: make(chan *token.T, 1),
	}

	return l
}

// Scan passes text to the lexer for scanning.
// Text passed before the lexer reaches the end of its input is appended.
func (l *T) Scan(text string) {
	l.bytes += text
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil after EOF or an Error token.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) errorf(format string, a ...interface{}) action {
	l.tokens <- token.New(token.Error, fmt.Sprintf(format, a...), l.source)

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)
	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func scanBool(l *T) action {
	r, w := l.peek()

	switch r {
	case 't', 'f':
		l.accept(r, w)
		l.emit(token.Bool, l.Text())
		return scanExpression
	}

	return l.errorf("expected #t or #f")
}

func scanExpression(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		l.emit(token.EOF, "")
		return nil
	case r == '(', r == ')':
		l.accept(r, w)
		l.emit(token.Class(r), l.Text())
		return scanExpression
	case r == '"':
		l.accept(r, w)
		return scanString
	case r == '#':
		l.accept(r, w)
		return scanBool
	case unicode.IsSpace(r):
		return scanSpace
	case isInitial(r):
		return scanSymbol
	case isDigit(r):
		return scanInteger
	}

	return l.errorf("unexpected %q", r)
}

func scanInteger(l *T) action {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			l.emit(token.Integer, l.Text())
			return scanExpression
		}

		l.accept(r, w)
	}
}

func scanSpace(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !unicode.IsSpace(r) {
			l.emit(token.Space, l.Text())
			return scanExpression
		}

		l.accept(r, w)
	}
}

// No escape processing. A string ends at the next double quote.
func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			return l.errorf("unterminated string")
		case '"':
			s := l.Text()
			l.emit(token.String, s[1:len(s)-1])
			return scanExpression
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !(isInitial(r) || isDigit(r)) {
			l.emit(token.Symbol, l.Text())
			return scanExpression
		}

		l.accept(r, w)
	}
}

// Helper functions.

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Operator characters count as letters so that + and set! are symbols.
func isInitial(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(operators, r)
}

const operators = "!*+-/<=>?_"
