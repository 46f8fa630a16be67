package usecase

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

type downloadUseCase struct {
	fetcher interfaces.SchemaFetcher
}

// NewDownload creates a new instance of DownloadUseCase
func NewDownload(fetcher interfaces.SchemaFetcher) interfaces.DownloadUseCase {
	return &downloadUseCase{
		fetcher: fetcher,
	}
}

// DownloadSchema fetches the schema from the configured endpoint and writes
// it to the configured path. The request carries the admin secret header and
// is bounded by the configured timeout.
func (uc *downloadUseCase) DownloadSchema(ctx context.Context, cfg *model.DownloadConfig) error {
	logger := ctxlog.From(ctx)

	logger.Info("Downloading schema",
		"endpoint", cfg.Endpoint,
		"output", cfg.OutputPath,
		"timeout", cfg.Timeout,
	)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	headers := http.Header{}
	headers.Set(types.HeaderAdminSecret, cfg.AdminSecret)
	headers.Set(types.HeaderRequestID, uuid.NewString())

	sdl, err := uc.fetcher.FetchSDL(ctx, cfg.Endpoint, headers)
	if err != nil {
		return goerr.Wrap(err, "failed to download schema",
			goerr.V("endpoint", cfg.Endpoint),
			goerr.T(types.ErrTagExternal),
		)
	}

	// Parse before writing so a broken introspection result never
	// replaces a good schema file on disk.
	if _, err := gqlparser.LoadSchema(&ast.Source{
		Name:  filepath.Base(cfg.OutputPath),
		Input: sdl,
	}); err != nil {
		return goerr.Wrap(err, "downloaded schema is not valid SDL",
			goerr.V("endpoint", cfg.Endpoint),
			goerr.T(types.ErrTagExternal),
		)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create schema directory",
			goerr.V("dir", filepath.Dir(cfg.OutputPath)),
		)
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(sdl), 0644); err != nil {
		return goerr.Wrap(err, "failed to write schema file",
			goerr.V("path", cfg.OutputPath),
		)
	}

	logger.Info("Schema downloaded",
		"output", cfg.OutputPath,
		"size_bytes", len(sdl),
	)

	return nil
}
