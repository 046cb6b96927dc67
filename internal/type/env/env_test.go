package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/hash"
	"github.com/wisplang/wisp/internal/type/str"
)

func lookup(t *testing.T, e *T, k string) string {
	t.Helper()

	c, err := e.Lookup(k)
	require.NoError(t, err)

	return str.To(c).String()
}

func TestPopAndAdd(t *testing.T) {
	e := New(nil)

	e.AddFrame(hash.Of(map[string]cell.T{"a": str.New("apple")}))
	e.AddFrame(hash.Of(map[string]cell.T{"b": str.New("banana")}))
	e.AddFrame(hash.Of(map[string]cell.T{"c": str.New("carrot")}))

	assert.Equal(t, 4, e.Depth())

	for _, k := range []string{"c", "b", "a"} {
		f := e.PopFrame()
		assert.Equal(t, []string{k}, f.Names())
	}

	assert.Equal(t, 1, e.Depth())
}

func TestPopGlobalFrame(t *testing.T) {
	e := New(nil)

	assert.Panics(t, func() { e.PopFrame() })
	assert.Equal(t, 1, e.Depth())
}

func TestGetAddBinding(t *testing.T) {
	e := New(nil)
	e.AddBinding("a", str.New("apple"))

	e.AddFrame(nil)
	e.AddBinding("a", str.New("aardvark"))

	e.AddFrame(nil)
	e.AddBinding("a", str.New("adorno"))

	assert.Equal(t, "adorno", lookup(t, e, "a"))

	e.PopFrame()
	assert.Equal(t, "aardvark", lookup(t, e, "a"))

	e.PopFrame()
	assert.Equal(t, "apple", lookup(t, e, "a"))
}

func TestGetNearest(t *testing.T) {
	e := New(nil)
	e.AddBinding("a", str.New("apple"))
	e.AddFrame(nil)
	e.AddFrame(nil)

	assert.Equal(t, "apple", lookup(t, e, "a"))
}

func TestGetMissing(t *testing.T) {
	e := New(nil)

	_, err := e.Lookup("a")
	require.Error(t, err)

	assert.True(t, errstr.Is(err))
	assert.Equal(t, "no binding for a", err.Error())
}

func TestSetBinding(t *testing.T) {
	e := New(nil)
	e.AddBinding("a", str.New("apple"))

	e.AddFrame(nil)
	e.AddBinding("a", str.New("aardvark"))

	require.NoError(t, e.SetBinding("a", str.New("adorno")))
	assert.Equal(t, "adorno", lookup(t, e, "a"))

	e.PopFrame()
	assert.Equal(t, "apple", lookup(t, e, "a"))
}

func TestSetBindingOuterFrame(t *testing.T) {
	e := New(nil)
	e.AddBinding("a", str.New("apple"))
	e.AddFrame(nil)

	require.NoError(t, e.SetBinding("a", str.New("avocado")))
	assert.Equal(t, 0, e.LocalScope().Size())

	e.PopFrame()
	assert.Equal(t, "avocado", lookup(t, e, "a"))
}

func TestSetMissing(t *testing.T) {
	e := New(nil)

	err := e.SetBinding("a", str.New("apple"))
	require.Error(t, err)

	assert.True(t, errstr.Is(err))

	_, err = e.Lookup("a")
	assert.Error(t, err)
}

func TestLocalGlobalScope(t *testing.T) {
	e := New(nil)
	e.AddBinding("a", str.New("apple"))

	e.AddFrame(nil)
	e.AddBinding("a", str.New("aardvark"))

	e.AddFrame(nil)
	e.AddBinding("a", str.New("adorno"))

	scope := func(m map[string]cell.T) string {
		return str.To(m["a"]).String()
	}

	assert.Equal(t, "apple", scope(e.GlobalScope()))
	assert.Equal(t, "adorno", scope(e.LocalScope().Values()))

	e.PopFrame()
	assert.Equal(t, "apple", scope(e.GlobalScope()))
	assert.Equal(t, "aardvark", scope(e.LocalScope().Values()))

	e.PopFrame()
	assert.Len(t, e.GlobalScope(), 1)
	assert.Equal(t, "apple", scope(e.LocalScope().Values()))
}
