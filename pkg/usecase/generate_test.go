package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/domain/types"
	"github.com/kaleido-app/shear/pkg/usecase"
)

// MockClientGenerator is a mock implementation of ClientGenerator
type MockClientGenerator struct {
	generateFunc  func(ctx context.Context, cfg *model.CodegenConfig) error
	generateCalls []*model.CodegenConfig
}

func (m *MockClientGenerator) GenerateClient(ctx context.Context, cfg *model.CodegenConfig) error {
	m.generateCalls = append(m.generateCalls, cfg)
	if m.generateFunc != nil {
		return m.generateFunc(ctx, cfg)
	}
	return nil
}

func newTestCodegenConfig(t *testing.T, root string) *model.CodegenConfig {
	t.Helper()
	fs := model.NewFileStructure(root)
	cfg, err := model.NewCodegenConfig(fs, "schema.graphql", "graphql/generated", "generated", model.ScalarModeTyped, "")
	gt.NoError(t, err)
	return cfg
}

func writeTestSchema(t *testing.T, cfg *model.CodegenConfig) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(cfg.SchemaPath), 0755))
	gt.NoError(t, os.WriteFile(cfg.SchemaPath, []byte(testSDL), 0644))
}

func TestGenerateUseCase_GenerateCode_Success(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	cfg := newTestCodegenConfig(t, root)
	writeTestSchema(t, cfg)

	mockGenerator := &MockClientGenerator{}
	uc := usecase.NewGenerate(mockGenerator)

	gt.NoError(t, uc.GenerateCode(ctx, cfg))

	// Operations and output folders exist after the run
	info, err := os.Stat(cfg.QueryDir)
	gt.NoError(t, err)
	gt.V(t, info.IsDir()).Equal(true)

	info, err = os.Stat(cfg.OutputDir)
	gt.NoError(t, err)
	gt.V(t, info.IsDir()).Equal(true)

	// The generator received this run's configuration
	gt.Equal(t, len(mockGenerator.generateCalls), 1)
	gt.Equal(t, mockGenerator.generateCalls[0].SchemaPath, cfg.SchemaPath)
}

func TestGenerateUseCase_GenerateCode_Idempotent(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	cfg := newTestCodegenConfig(t, root)
	writeTestSchema(t, cfg)

	mockGenerator := &MockClientGenerator{}
	uc := usecase.NewGenerate(mockGenerator)

	// Running twice must succeed and leave exactly one operations folder
	gt.NoError(t, uc.GenerateCode(ctx, cfg))
	gt.NoError(t, uc.GenerateCode(ctx, cfg))

	info, err := os.Stat(cfg.QueryDir)
	gt.NoError(t, err)
	gt.V(t, info.IsDir()).Equal(true)

	entries, err := os.ReadDir(filepath.Join(root, "graphql"))
	gt.NoError(t, err)

	var queryDirs int
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() == "queries" {
			queryDirs++
		}
	}
	gt.Equal(t, queryDirs, 1)
	gt.Equal(t, len(mockGenerator.generateCalls), 2)
}

func TestGenerateUseCase_GenerateCode_MissingSchema(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	cfg := newTestCodegenConfig(t, root)

	mockGenerator := &MockClientGenerator{}
	uc := usecase.NewGenerate(mockGenerator)

	err := uc.GenerateCode(ctx, cfg)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("schema file not found")
	gt.V(t, goerr.HasTag(err, types.ErrTagConfig)).Equal(true)

	// The generator is never reached without a schema
	gt.Equal(t, len(mockGenerator.generateCalls), 0)

	// The operations folder is still prepared so queries can be added first
	info, statErr := os.Stat(cfg.QueryDir)
	gt.NoError(t, statErr)
	gt.V(t, info.IsDir()).Equal(true)
}

func TestGenerateUseCase_GenerateCode_GeneratorError(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	cfg := newTestCodegenConfig(t, root)
	writeTestSchema(t, cfg)

	mockGenerator := &MockClientGenerator{
		generateFunc: func(ctx context.Context, cfg *model.CodegenConfig) error {
			return errors.New("template blew up")
		},
	}
	uc := usecase.NewGenerate(mockGenerator)

	err := uc.GenerateCode(ctx, cfg)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to generate client code")
	gt.V(t, goerr.HasTag(err, types.ErrTagExternal)).Equal(true)
}
