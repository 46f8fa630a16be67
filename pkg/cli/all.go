package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/cli/config"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/infra/gqlgenc"
	"github.com/kaleido-app/shear/pkg/infra/introspection"
	"github.com/kaleido-app/shear/pkg/usecase"
)

func cmdAll() *cli.Command {
	var (
		projectCfg  config.Project
		endpointCfg config.Endpoint
		schemaCfg   config.Schema
		codegenCfg  config.Codegen
	)

	flags := append(projectCfg.Flags(), endpointCfg.Flags()...)
	flags = append(flags, schemaCfg.Flags()...)
	flags = append(flags, codegenCfg.Flags()...)

	return &cli.Command{
		Name:  "all",
		Usage: "Download the schema, then generate client code",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			fs, err := projectCfg.Resolve()
			if err != nil {
				return err
			}

			dlCfg, err := model.NewDownloadConfig(endpointCfg.BaseURL, endpointCfg.AdminSecret, fs.SchemaPath(schemaCfg.Filename))
			if err != nil {
				return err
			}

			genCfg, err := codegenCfg.Build(fs, schemaCfg.Filename)
			if err != nil {
				return err
			}

			pipelineUC := usecase.NewPipeline(
				usecase.NewDownload(introspection.NewFetcher()),
				usecase.NewGenerate(gqlgenc.NewGenerator()),
			)
			if err := pipelineUC.DownloadSchemaAndGenerateCode(ctx, dlCfg, genCfg); err != nil {
				return err
			}

			color.Green("Schema written to %s", dlCfg.OutputPath)
			color.Green("Client code written to %s", genCfg.OutputDir)
			return nil
		},
	}
}
