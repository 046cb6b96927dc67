// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive prompt's history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Load passes the history file to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Save passes a truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Path returns the location of the history file.
func Path() string {
	if p := os.Getenv("WISP_HISTORY"); p != "" {
		return p
	}

	return filepath.Join(os.Getenv("HOME"), ".wisp_history")
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}
