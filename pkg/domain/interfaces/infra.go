package interfaces

import (
	"context"
	"net/http"

	"github.com/kaleido-app/shear/pkg/domain/model"
)

// SchemaFetcher defines operations for retrieving a GraphQL schema from a
// remote endpoint
type SchemaFetcher interface {
	// FetchSDL introspects the endpoint and returns the schema in SDL form
	FetchSDL(ctx context.Context, endpoint string, headers http.Header) (string, error)
}

// ClientGenerator defines operations for generating client code from a
// downloaded schema and local operation files
type ClientGenerator interface {
	// GenerateClient renders generator configuration and writes the client sources
	GenerateClient(ctx context.Context, cfg *model.CodegenConfig) error
}

// Prompter defines the interactive terminal prompts used by project
// scaffolding, kept behind an interface so scaffolding is testable without
// a terminal
type Prompter interface {
	// Input asks for a single line of text, returning defaultValue on empty input
	Input(ctx context.Context, message, defaultValue string) (string, error)

	// Confirm asks a yes/no question
	Confirm(ctx context.Context, message string, defaultValue bool) (bool, error)
}
