// Released under an MIT license. See LICENSE.

// Package reader turns wisp source text into expressions.
package reader

import (
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/reader/lexer"
	"github.com/wisplang/wisp/internal/reader/parser"
)

// Parse reads text as exactly one expression. Errors are *parser.Error
// values whose location is labelled with label.
func Parse(label, text string) (cell.T, error) {
	l := lexer.New(label)

	l.Scan(text)

	return parser.New(l.Token).Parse()
}
