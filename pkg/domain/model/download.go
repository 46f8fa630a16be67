package model

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kaleido-app/shear/pkg/domain/types"
)

var validate = validator.New()

// DownloadConfig describes one schema download request. It is built from
// environment configuration, used once, and discarded.
type DownloadConfig struct {
	Endpoint    string        `validate:"required,url"`           // Resolved GraphQL endpoint URL
	AdminSecret string        `validate:"required" masq:"secret"` // Admin secret header value
	Timeout     time.Duration `validate:"required"`               // Request timeout, fixed at types.DownloadTimeout
	OutputPath  string        `validate:"required"`               // Absolute path the SDL is written to
}

// NewDownloadConfig validates and builds a DownloadConfig. The endpoint is
// resolved from the API base URL; the timeout is fixed.
func NewDownloadConfig(baseURL, adminSecret, outputPath string) (*DownloadConfig, error) {
	endpoint, err := ResolveEndpoint(baseURL)
	if err != nil {
		return nil, err
	}

	cfg := &DownloadConfig{
		Endpoint:    endpoint,
		AdminSecret: adminSecret,
		Timeout:     types.DownloadTimeout,
		OutputPath:  outputPath,
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, goerr.Wrap(err, "invalid download configuration",
			goerr.V("endpoint", endpoint), goerr.V("output", outputPath),
			goerr.T(types.ErrTagConfig))
	}
	return cfg, nil
}

// ResolveEndpoint appends the Hasura GraphQL path to the API base URL. A URL
// whose path already ends in /graphql is taken as the endpoint itself.
func ResolveEndpoint(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid API base URL",
			goerr.V("url", baseURL), goerr.T(types.ErrTagConfig))
	}
	if !strings.HasSuffix(u.Path, "/graphql") {
		u.Path = path.Join(u.Path, "v1", "graphql")
	}
	return u.String(), nil
}
