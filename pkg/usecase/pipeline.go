package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/model"
)

type pipelineUseCase struct {
	download interfaces.DownloadUseCase
	generate interfaces.GenerateUseCase
}

// NewPipeline creates a new instance of PipelineUseCase
func NewPipeline(download interfaces.DownloadUseCase, generate interfaces.GenerateUseCase) interfaces.PipelineUseCase {
	return &pipelineUseCase{
		download: download,
		generate: generate,
	}
}

// DownloadSchemaAndGenerateCode downloads the schema, then generates client
// sources from it. Generation is skipped when the download fails so stale
// code is never produced from a half-updated schema.
func (uc *pipelineUseCase) DownloadSchemaAndGenerateCode(ctx context.Context, dlCfg *model.DownloadConfig, genCfg *model.CodegenConfig) error {
	logger := ctxlog.From(ctx)

	if err := uc.download.DownloadSchema(ctx, dlCfg); err != nil {
		return goerr.Wrap(err, "schema download failed, skipping client generation")
	}

	if err := uc.generate.GenerateCode(ctx, genCfg); err != nil {
		return err
	}

	logger.Info("Schema download and client generation completed")

	return nil
}
