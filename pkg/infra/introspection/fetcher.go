package introspection

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/suessflorian/gqlfetch"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

type fetcher struct{}

// NewFetcher creates a SchemaFetcher backed by GraphQL introspection
func NewFetcher() interfaces.SchemaFetcher {
	return &fetcher{}
}

// FetchSDL sends an introspection query to the endpoint and converts the
// result to SDL. Built-in types and directives are stripped so the output
// only contains the backend's own definitions.
func (f *fetcher) FetchSDL(ctx context.Context, endpoint string, headers http.Header) (string, error) {
	sdl, err := gqlfetch.BuildClientSchemaWithHeaders(ctx, endpoint, headers, true)
	if err != nil {
		return "", goerr.Wrap(err, "introspection query failed",
			goerr.V("endpoint", endpoint),
			goerr.T(types.ErrTagExternal),
		)
	}
	return sdl, nil
}
