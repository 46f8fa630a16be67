package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/cli/config"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/infra/terminal"
	"github.com/kaleido-app/shear/pkg/usecase"
)

func cmdInit() *cli.Command {
	var projectCfg config.Project

	return &cli.Command{
		Name:  "init",
		Usage: "Scaffold the project folders and an environment sample",
		Flags: projectCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// A fresh project has no go.mod yet, so fall back to the
			// working directory instead of failing root detection. An
			// explicitly configured root is never second-guessed.
			fs, err := projectCfg.Resolve()
			if err != nil {
				if projectCfg.Root != "" {
					return err
				}
				wd, wderr := os.Getwd()
				if wderr != nil {
					return goerr.Wrap(wderr, "failed to resolve working directory")
				}
				logger.Debug("No project root found, scaffolding in working directory", "dir", wd)
				fs = model.NewFileStructure(wd)
			}

			scaffoldUC := usecase.NewScaffold(terminal.NewPrompter())
			result, err := scaffoldUC.ScaffoldProject(ctx, fs)
			if err != nil {
				return err
			}

			if result.Aborted {
				color.Yellow("Aborted, nothing written")
				return nil
			}

			for _, path := range result.Created {
				color.Green("created %s", path)
			}
			for _, path := range result.Skipped {
				color.Yellow("skipped %s (already exists)", path)
			}
			return nil
		},
	}
}
