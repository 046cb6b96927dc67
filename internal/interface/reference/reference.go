// Released under an MIT license. See LICENSE.

// Package reference defines the interface for wisp's variable type.
package reference

import (
	"github.com/wisplang/wisp/internal/interface/cell"
)

// T (reference) is anything that can hold the value bound to a name.
type T interface {
	Get() cell.T
	Set(c cell.T)
}
