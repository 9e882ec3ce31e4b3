package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

// Read the values of integer flags that must not be negative.
func uintFlags(ctx *cli.Context, names ...string) ([]uint32, error) {
	values := make([]uint32, len(names))
	for idx, name := range names {
		v := ctx.Int(name)
		if v < 0 {
			return nil, fmt.Errorf("flag --%s must not be negative; got %d", name, v)
		}
		values[idx] = uint32(v)
	}
	return values, nil
}
