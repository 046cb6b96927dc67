// Released under an MIT license. See LICENSE.

// Package hash provides wisp's name to value mapping type.
// A hash is one frame of an environment.
package hash

import (
	"sort"

	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/interface/reference"
	"github.com/wisplang/wisp/internal/type/slot"
)

// T (hash) maps names to references.
type T struct {
	m map[string]reference.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]reference.T{}}
}

// Of creates a new hash with a fresh slot for every entry in m.
func Of(m map[string]cell.T) *T {
	h := New()
	for k, v := range m {
		h.Set(k, v)
	}

	return h
}

// Share creates a new hash whose entries are the same references as h.
// Setting a shared reference is visible through both hashes; adding or
// replacing a name in one is not.
func (h *T) Share() *T {
	fresh := New()
	if h == nil {
		return fresh
	}

	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *T) Get(k string) reference.T {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with a new slot holding v in the hash h.
func (h *T) Set(k string, v cell.T) {
	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	return len(h.m)
}

// Names returns the names in the hash h, sorted.
func (h *T) Names() []string {
	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Values returns a snapshot of the current value bound to every name.
func (h *T) Values() map[string]cell.T {
	values := make(map[string]cell.T, len(h.m))
	for k, v := range h.m {
		values[k] = v.Get()
	}

	return values
}
