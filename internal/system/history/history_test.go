package history

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	t.Setenv("WISP_HISTORY", "")
	t.Setenv("HOME", "/home/wisp")

	assert.Equal(t, "/home/wisp/.wisp_history", Path())

	t.Setenv("WISP_HISTORY", "/tmp/h")
	assert.Equal(t, "/tmp/h", Path())
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("WISP_HISTORY", filepath.Join(t.TempDir(), "history"))

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(1 2 +)\n")
	})
	require.NoError(t, err)

	var b strings.Builder

	err = Load(func(r io.Reader) (int, error) {
		n, err := io.Copy(&b, r)
		return int(n), err
	})
	require.NoError(t, err)

	assert.Equal(t, "(1 2 +)\n", b.String())
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("WISP_HISTORY", filepath.Join(t.TempDir(), "missing"))

	err := Load(func(r io.Reader) (int, error) {
		t.Fatal("read called without a history file")
		return 0, nil
	})

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteError(t *testing.T) {
	t.Setenv("WISP_HISTORY", filepath.Join(t.TempDir(), "history"))

	failed := errors.New("failed")

	err := Save(func(w io.Writer) (int, error) {
		return 0, failed
	})

	assert.ErrorIs(t, err, failed)
}
