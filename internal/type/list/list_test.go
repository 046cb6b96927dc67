package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/literal"
	"github.com/wisplang/wisp/internal/type/num"
	"github.com/wisplang/wisp/internal/type/str"
	"github.com/wisplang/wisp/internal/type/sym"
)

func ints(ns ...int64) []cell.T {
	cs := make([]cell.T, len(ns))
	for i, n := range ns {
		cs[i] = num.Int64(n)
	}

	return cs
}

func TestArguments(t *testing.T) {
	l := New(num.Int64(1), num.Int64(2), sym.New("+"))

	args := l.Arguments()
	assert.Len(t, args, 2)
	assert.Equal(t, "2", literal.String(args[0]))
	assert.Equal(t, "1", literal.String(args[1]))

	assert.Nil(t, New(sym.New("f")).Arguments())
	assert.Nil(t, New().Arguments())
}

func TestCarCdr(t *testing.T) {
	l := New(ints(1, 2, 3)...)

	assert.True(t, num.Int64(1).Equal(l.Car()))
	assert.Equal(t, "(2 3)", l.Cdr().Literal())
	assert.Equal(t, "()", New(ints(1)...).Cdr().Literal())
	assert.True(t, num.Int64(3).Equal(l.Last()))
}

func TestCons(t *testing.T) {
	assert.Equal(t, "(1 2 3)", Cons(num.Int64(1), New(ints(2, 3)...)).Literal())
	assert.Equal(t, "(1)", Cons(num.Int64(1), New()).Literal())
	assert.Equal(t, "(() x)", Cons(New(), New(sym.New("x"))).Literal())
}

func TestEqual(t *testing.T) {
	a := New(num.Int64(1), New(str.New("x")))
	b := New(num.Int64(1), New(str.New("x")))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(num.Int64(1))))
	assert.False(t, a.Equal(New(num.Int64(1), New(sym.New("x")))))
	assert.False(t, New().Equal(str.New("")))
	assert.True(t, New().Equal(New()))
}

func TestImmutable(t *testing.T) {
	items := ints(1, 2)
	l := New(items...)

	items[0] = num.Int64(9)
	assert.Equal(t, "(1 2)", l.Literal())

	got := l.Items()
	got[1] = num.Int64(9)
	assert.Equal(t, "(1 2)", l.Literal())
}
