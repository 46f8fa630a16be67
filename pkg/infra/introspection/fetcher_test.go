package introspection_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/kaleido-app/shear/pkg/domain/types"
	"github.com/kaleido-app/shear/pkg/infra/introspection"
)

func TestFetcher_FetchSDL_WithRealEndpoint(t *testing.T) {
	// Integration test against a live GraphQL endpoint
	// This test requires test environment variables
	endpoint := os.Getenv("TEST_SHEAR_ENDPOINT")
	adminSecret := os.Getenv("TEST_SHEAR_ADMIN_SECRET")

	if endpoint == "" {
		t.Skip("Test GraphQL endpoint not provided via environment variables")
	}

	headers := http.Header{}
	if adminSecret != "" {
		headers.Set(types.HeaderAdminSecret, adminSecret)
	}

	fetcher := introspection.NewFetcher()
	sdl, err := fetcher.FetchSDL(context.Background(), endpoint, headers)
	gt.NoError(t, err)
	gt.V(t, sdl).NotEqual("")
	gt.String(t, sdl).Contains("type Query")
}
