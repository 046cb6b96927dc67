package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/reader/lexer"
	"github.com/wisplang/wisp/internal/type/boolean"
	"github.com/wisplang/wisp/internal/type/list"
	"github.com/wisplang/wisp/internal/type/num"
	"github.com/wisplang/wisp/internal/type/str"
	"github.com/wisplang/wisp/internal/type/sym"
)

func parse(s string) (cell.T, error) {
	l := lexer.New("test")

	l.Scan(s)

	return New(l.Token).Parse()
}

// Parsing, printing and reparsing should produce the same expression.
func check(t *testing.T, s, expected string) {
	t.Helper()

	c, err := parse(s)
	require.NoError(t, err, s)

	p := literal.String(c)
	assert.Equal(t, expected, p)

	r, err := parse(p)
	require.NoError(t, err, p)

	assert.True(t, c.Equal(r), "parsed (%s) and reparsed (%s) do not match", p, literal.String(r))
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct{ in, out string }{
		{"42", "42"},
		{"007", "7"},
		{`"a b"`, `"a b"`},
		{`""`, `""`},
		{"#t", "#t"},
		{"#f", "#f"},
		{"abc", "abc"},
		{"set!", "set!"},
		{"()", "()"},
		{`(1    abc "abc" #t #f)`, `(1 abc "abc" #t #f)`},
		{"((1 2) (3 (4)) ())", "((1 2) (3 (4)) ())"},
		{"(1\n\t2 +)", "(1 2 +)"},
	} {
		check(t, tc.in, tc.out)
	}
}

func TestValues(t *testing.T) {
	c, err := parse(`(1 abc "abc" #t #f)`)
	require.NoError(t, err)

	expected := list.New(
		num.Int64(1),
		sym.New("abc"),
		str.New("abc"),
		boolean.True,
		boolean.False,
	)

	assert.True(t, expected.Equal(c))
}

func TestBigInteger(t *testing.T) {
	c, err := parse("123456789012345678901234567890")
	require.NoError(t, err)

	assert.Equal(t, "123456789012345678901234567890", literal.String(c))
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct{ in, msg string }{
		{"", "test:1:1: unexpected end of input"},
		{"(1 2", "test:1:5: expected space or ')', got end of input"},
		{"(1 2))", "test:1:6: expected end of input, got ')'"},
		{"( 1)", "test:1:2: unexpected space"},
		{"(1 )", "test:1:4: unexpected ')'"},
		{" 1", "test:1:1: unexpected space"},
		{"1 2", "test:1:2: expected end of input, got space"},
		{"1x", "test:1:2: expected end of input, got 'x'"},
		{`"abc`, "test:1:1: unterminated string"},
		{`(a "x)`, "test:1:4: unterminated string"},
		{"(a ]", "test:1:4: unexpected ']'"},
		{"a ]", "test:1:2: expected end of input, got space"},
		{")", "test:1:1: unexpected ')'"},
	} {
		c, err := parse(tc.in)
		assert.Nil(t, c, tc.in)

		var e *Error
		if assert.True(t, errors.As(err, &e), tc.in) {
			assert.Equal(t, tc.msg, e.Error(), tc.in)
		}
	}
}

func TestErrorSource(t *testing.T) {
	_, err := parse("(a\n  b")

	var e *Error
	require.True(t, errors.As(err, &e))

	assert.Equal(t, 2, e.Source.Line)
	assert.Equal(t, 4, e.Source.Char)
	assert.Equal(t, "test", e.Source.Name)
}
