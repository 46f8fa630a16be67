package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/cli/config"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "shear",
		Usage:   "GraphQL schema download and typed client generation",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		// Exit-coded usage errors (e.g. unknown command) must return to
		// main like every other failure, not os.Exit inside Run.
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdDownloadSchema(),
			cmdGenerate(),
			cmdAll(),
			cmdInit(),
			cmdVersion(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
