package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/domain/types"
)

func cmdVersion() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Printf("shear %s\n", types.Version)
			return nil
		},
	}
}
