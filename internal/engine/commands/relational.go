// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/wisplang/wisp/internal/common/validate"
	"github.com/wisplang/wisp/internal/interface/cell"
	"github.com/wisplang/wisp/internal/type/boolean"
	"github.com/wisplang/wisp/internal/type/env"
)

func eq(args []cell.T, _ *env.T) (cell.T, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	return boolean.Bool(args[0].Equal(args[1])), nil
}
