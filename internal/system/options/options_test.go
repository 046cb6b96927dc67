package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractive(t *testing.T) {
	for _, tc := range []struct {
		argv     []string
		tty      bool
		expected bool
	}{
		{[]string{}, true, true},
		{[]string{}, false, false},
		{[]string{"-i"}, false, true},
		{[]string{"-i"}, true, false},
		{[]string{"script.wisp"}, true, false},
		{[]string{"-c", "(1 2 +)"}, true, false},
	} {
		o, err := ParseArgs(tc.argv, tc.tty)
		require.NoError(t, err, tc.argv)
		assert.Equal(t, tc.expected, o.Interactive, tc.argv)
	}
}

func TestCommand(t *testing.T) {
	o, err := ParseArgs([]string{"-d", "-c", "(1 2 +)"}, false)
	require.NoError(t, err)

	assert.Equal(t, "(1 2 +)", o.Command)
	assert.True(t, o.Debug)
	assert.Empty(t, o.Script)
}

func TestScript(t *testing.T) {
	o, err := ParseArgs([]string{"fib.wisp"}, false)
	require.NoError(t, err)

	assert.Equal(t, "fib.wisp", o.Script)
	assert.False(t, o.Debug)
	assert.Empty(t, o.Command)
}

func TestVersion(t *testing.T) {
	o, err := ParseArgs([]string{"-v"}, true)
	require.NoError(t, err)

	assert.True(t, o.Version)
}

func TestInvalid(t *testing.T) {
	_, err := ParseArgs([]string{"--bogus"}, true)
	assert.Error(t, err)

	_, err = ParseArgs([]string{"a", "b"}, true)
	assert.Error(t, err)
}
