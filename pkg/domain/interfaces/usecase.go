package interfaces

import (
	"context"

	"github.com/kaleido-app/shear/pkg/domain/model"
)

// DownloadUseCase defines the interface for schema download processing
type DownloadUseCase interface {
	// DownloadSchema fetches the remote schema and writes it to the configured path
	DownloadSchema(ctx context.Context, cfg *model.DownloadConfig) error
}

// GenerateUseCase defines operations for client code generation
type GenerateUseCase interface {
	// GenerateCode prepares the target folders and generates client sources
	GenerateCode(ctx context.Context, cfg *model.CodegenConfig) error
}

// PipelineUseCase chains schema download and client generation
type PipelineUseCase interface {
	// DownloadSchemaAndGenerateCode runs the download step, then generation.
	// Generation does not run when the download fails.
	DownloadSchemaAndGenerateCode(ctx context.Context, dlCfg *model.DownloadConfig, genCfg *model.CodegenConfig) error
}

// ScaffoldUseCase defines the interface for interactive project scaffolding
type ScaffoldUseCase interface {
	// ScaffoldProject prompts for project settings and creates the fixed
	// folder layout. Existing files are never overwritten.
	ScaffoldProject(ctx context.Context, fs *model.FileStructure) (*model.ScaffoldResult, error)
}
