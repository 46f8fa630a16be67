package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/cli/config"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/infra/introspection"
	"github.com/kaleido-app/shear/pkg/usecase"
)

func cmdDownloadSchema() *cli.Command {
	var (
		projectCfg  config.Project
		endpointCfg config.Endpoint
		schemaCfg   config.Schema
	)

	flags := append(projectCfg.Flags(), endpointCfg.Flags()...)
	flags = append(flags, schemaCfg.Flags()...)

	return &cli.Command{
		Name:    "downloadSchema",
		Aliases: []string{"download"},
		Usage:   "Download the GraphQL schema via introspection",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			fs, err := projectCfg.Resolve()
			if err != nil {
				return err
			}

			dlCfg, err := model.NewDownloadConfig(endpointCfg.BaseURL, endpointCfg.AdminSecret, fs.SchemaPath(schemaCfg.Filename))
			if err != nil {
				return err
			}
			logger.Debug("Resolved download configuration", slog.Any("config", dlCfg))

			downloadUC := usecase.NewDownload(introspection.NewFetcher())
			if err := downloadUC.DownloadSchema(ctx, dlCfg); err != nil {
				return err
			}

			color.Green("Schema written to %s", dlCfg.OutputPath)
			return nil
		},
	}
}
