// Released under an MIT license. See LICENSE.

// Package env provides wisp's environment, a stack of binding frames.
//
// The front (innermost) frame is searched first. The last frame is the
// global frame and is never removed.
package env

import (
	"log/slog"

	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/errstr"
	"github.com/wisplang/wisp/internal/type/hash"
)

// T (env) is an ordered stack of frames. Frames are stored innermost last.
type T struct {
	frames []*hash.T
}

// New creates a new env whose global frame is global, or an empty frame.
func New(global *hash.T) *T {
	if global == nil {
		global = hash.New()
	}

	return &T{frames: []*hash.T{global}}
}

// AddFrame pushes the frame f, or a new empty frame, onto the front of the env e.
func (e *T) AddFrame(f *hash.T) {
	if f == nil {
		f = hash.New()
	}

	e.frames = append(e.frames, f)

	slog.Debug("push frame", "depth", len(e.frames))
}

// PopFrame removes and returns the front frame of the env e.
// Popping the global frame is a caller error and panics.
func (e *T) PopFrame() *hash.T {
	n := len(e.frames)
	if n == 1 {
		panic("cannot pop the global frame")
	}

	f := e.frames[n-1]
	e.frames[n-1] = nil
	e.frames = e.frames[:n-1]

	slog.Debug("pop frame", "depth", len(e.frames))

	return f
}

// Depth returns the number of frames in the env e.
func (e *T) Depth() int {
	return len(e.frames)
}

// Lookup returns the value bound to the name k in the closest frame.
func (e *T) Lookup(k string) (cell.T, error) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if r := e.frames[i].Get(k); r != nil {
			return r.Get(), nil
		}
	}

	return nil, errstr.New("no binding for %s", k)
}

// AddBinding binds the name k to v in the front frame, replacing any binding there.
func (e *T) AddBinding(k string, v cell.T) {
	e.frames[len(e.frames)-1].Set(k, v)
}

// SetBinding replaces the value of the closest existing binding for k.
func (e *T) SetBinding(k string, v cell.T) error {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if r := e.frames[i].Get(k); r != nil {
			r.Set(v)
			return nil
		}
	}

	return errstr.New("no binding for %s", k)
}

// GlobalScope returns a snapshot of the bindings in the global frame.
func (e *T) GlobalScope() map[string]cell.T {
	return e.frames[0].Values()
}

// LocalScope returns the front frame itself. The frame is shared, not copied.
func (e *T) LocalScope() *hash.T {
	return e.frames[len(e.frames)-1]
}
