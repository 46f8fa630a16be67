package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/cli/config"
	"github.com/kaleido-app/shear/pkg/infra/gqlgenc"
	"github.com/kaleido-app/shear/pkg/usecase"
)

func cmdGenerate() *cli.Command {
	var (
		projectCfg config.Project
		schemaCfg  config.Schema
		codegenCfg config.Codegen
	)

	flags := append(projectCfg.Flags(), schemaCfg.Flags()...)
	flags = append(flags, codegenCfg.Flags()...)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate typed client code from the downloaded schema",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			fs, err := projectCfg.Resolve()
			if err != nil {
				return err
			}

			genCfg, err := codegenCfg.Build(fs, schemaCfg.Filename)
			if err != nil {
				return err
			}
			logger.Debug("Resolved codegen configuration", slog.Any("config", genCfg))

			generateUC := usecase.NewGenerate(gqlgenc.NewGenerator())
			if err := generateUC.GenerateCode(ctx, genCfg); err != nil {
				return err
			}

			color.Green("Client code written to %s", genCfg.OutputDir)
			return nil
		},
	}
}
