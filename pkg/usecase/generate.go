package usecase

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

type generateUseCase struct {
	generator interfaces.ClientGenerator
}

// NewGenerate creates a new instance of GenerateUseCase
func NewGenerate(generator interfaces.ClientGenerator) interfaces.GenerateUseCase {
	return &generateUseCase{
		generator: generator,
	}
}

// GenerateCode ensures the operations and output folders exist, then
// generates client sources from the downloaded schema. Folder creation is
// idempotent so repeated runs succeed.
func (uc *generateUseCase) GenerateCode(ctx context.Context, cfg *model.CodegenConfig) error {
	logger := ctxlog.From(ctx)

	logger.Info("Generating client code",
		"schema", cfg.SchemaPath,
		"queries", cfg.QueryDir,
		"output", cfg.OutputDir,
		"package", cfg.Package,
		"scalar_mode", cfg.ScalarMode,
	)

	if err := os.MkdirAll(cfg.QueryDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create operations directory",
			goerr.V("dir", cfg.QueryDir),
		)
	}

	if _, err := os.Stat(cfg.SchemaPath); err != nil {
		return goerr.Wrap(err, "schema file not found, run downloadSchema first",
			goerr.V("path", cfg.SchemaPath),
			goerr.T(types.ErrTagConfig),
		)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory",
			goerr.V("dir", cfg.OutputDir),
		)
	}

	if err := uc.generator.GenerateClient(ctx, cfg); err != nil {
		return goerr.Wrap(err, "failed to generate client code",
			goerr.V("schema", cfg.SchemaPath),
			goerr.V("output", cfg.OutputDir),
			goerr.T(types.ErrTagExternal),
		)
	}

	logger.Info("Client code generated",
		"output", cfg.OutputDir,
	)

	return nil
}
