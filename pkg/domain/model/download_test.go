package model_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{
			name:    "bare host gets the hasura path",
			baseURL: "https://api.example.com",
			want:    "https://api.example.com/v1/graphql",
		},
		{
			name:    "existing path is extended",
			baseURL: "https://api.example.com/hasura",
			want:    "https://api.example.com/hasura/v1/graphql",
		},
		{
			name:    "full endpoint is kept as-is",
			baseURL: "https://api.example.com/v1/graphql",
			want:    "https://api.example.com/v1/graphql",
		},
		{
			name:    "plain graphql suffix is kept as-is",
			baseURL: "https://api.example.com/graphql",
			want:    "https://api.example.com/graphql",
		},
		{
			name:    "invalid URL",
			baseURL: "://missing-scheme",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ResolveEndpoint(tt.baseURL)
			if tt.wantErr {
				gt.Error(t, err)
				gt.V(t, goerr.HasTag(err, types.ErrTagConfig)).Equal(true)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tt.want)
		})
	}
}

func TestNewDownloadConfig(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "graphql", "schema.graphql")

	t.Run("valid configuration", func(t *testing.T) {
		cfg, err := model.NewDownloadConfig("https://api.example.com", "secret", outputPath)
		gt.NoError(t, err)
		gt.Equal(t, cfg.Endpoint, "https://api.example.com/v1/graphql")
		gt.Equal(t, cfg.AdminSecret, "secret")
		gt.Equal(t, cfg.Timeout, types.DownloadTimeout)
		gt.Equal(t, cfg.OutputPath, outputPath)
	})

	t.Run("missing base URL", func(t *testing.T) {
		_, err := model.NewDownloadConfig("", "secret", outputPath)
		gt.Error(t, err)
		gt.V(t, goerr.HasTag(err, types.ErrTagConfig)).Equal(true)
	})

	t.Run("missing admin secret", func(t *testing.T) {
		_, err := model.NewDownloadConfig("https://api.example.com", "", outputPath)
		gt.Error(t, err)
		gt.V(t, goerr.HasTag(err, types.ErrTagConfig)).Equal(true)
	})

	t.Run("missing output path", func(t *testing.T) {
		_, err := model.NewDownloadConfig("https://api.example.com", "secret", "")
		gt.Error(t, err)
		gt.V(t, goerr.HasTag(err, types.ErrTagConfig)).Equal(true)
	})
}
