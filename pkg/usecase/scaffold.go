package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

const (
	envSampleName = ".env.sample"
	keepFileName  = ".gitkeep"

	defaultEndpoint   = "http://localhost:8080"
	defaultSchemaFile = "schema.graphql"
)

const envSampleTemplate = `# shear environment configuration
# Copy to .env and fill in the blanks, or export the variables directly.

# Required
SHEAR_ENDPOINT=%s
SHEAR_SCHEMA_FILE=%s
SHEAR_ADMIN_SECRET=

# Optional
#SHEAR_ROOT=
#SHEAR_CLIENT_DIR=graphql/generated
#SHEAR_CLIENT_PACKAGE=generated
#SHEAR_SCALAR_MODE=typed
#SHEAR_SCALARS_FILE=
#SHEAR_LOG_LEVEL=info
#SHEAR_LOG_FORMAT=console
`

type scaffoldUseCase struct {
	prompter interfaces.Prompter
}

// NewScaffold creates a new instance of ScaffoldUseCase
func NewScaffold(prompter interfaces.Prompter) interfaces.ScaffoldUseCase {
	return &scaffoldUseCase{
		prompter: prompter,
	}
}

// ScaffoldProject prompts for project settings, then creates the schema,
// operations and output folders plus an environment sample. Files that
// already exist are reported as skipped, never overwritten, so re-running
// is safe.
func (uc *scaffoldUseCase) ScaffoldProject(ctx context.Context, fs *model.FileStructure) (*model.ScaffoldResult, error) {
	logger := ctxlog.From(ctx)

	in, err := uc.collectInput(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := uc.prompter.Confirm(ctx, fmt.Sprintf("Write project scaffold under %s?", fs.Root), true)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info("Scaffold aborted, nothing written")
		return &model.ScaffoldResult{Aborted: true}, nil
	}

	result := &model.ScaffoldResult{}

	for _, dir := range []string{fs.GraphQLDir(), fs.QueriesDir(), fs.GeneratedDir()} {
		created, err := ensureDir(dir)
		if err != nil {
			return nil, err
		}
		result.Record(dir, created)
	}

	files := []struct {
		path    string
		content []byte
	}{
		{filepath.Join(fs.QueriesDir(), keepFileName), []byte{}},
		{filepath.Join(fs.Root, envSampleName), []byte(fmt.Sprintf(envSampleTemplate, in.Endpoint, in.SchemaFilename))},
	}
	for _, file := range files {
		created, err := writeFileIfAbsent(file.path, file.content)
		if err != nil {
			return nil, err
		}
		result.Record(file.path, created)
	}

	logger.Info("Project scaffold complete",
		"root", fs.Root,
		"created", len(result.Created),
		"skipped", len(result.Skipped),
	)

	return result, nil
}

// collectInput gathers and validates the prompt answers
func (uc *scaffoldUseCase) collectInput(ctx context.Context) (*model.ScaffoldInput, error) {
	endpoint, err := uc.prompter.Input(ctx, "GraphQL API base URL", defaultEndpoint)
	if err != nil {
		return nil, err
	}
	if _, err := model.ResolveEndpoint(endpoint); err != nil {
		return nil, err
	}

	filename, err := uc.prompter.Input(ctx, "Schema filename", defaultSchemaFile)
	if err != nil {
		return nil, err
	}
	if filename == "" || strings.ContainsRune(filename, os.PathSeparator) {
		return nil, goerr.New("schema filename must be a bare filename",
			goerr.V("filename", filename), goerr.T(types.ErrTagConfig))
	}

	return &model.ScaffoldInput{
		Endpoint:       endpoint,
		SchemaFilename: filename,
	}, nil
}

// ensureDir creates dir if absent and reports whether it was created
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, goerr.New("scaffold path exists but is not a directory",
			goerr.V("path", dir), goerr.T(types.ErrTagConfig))
	case !os.IsNotExist(err):
		return false, goerr.Wrap(err, "failed to inspect scaffold directory",
			goerr.V("path", dir))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, goerr.Wrap(err, "failed to create scaffold directory",
			goerr.V("path", dir))
	}
	return true, nil
}

// writeFileIfAbsent writes the file unless it already exists
func writeFileIfAbsent(path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, goerr.Wrap(err, "failed to inspect scaffold file",
			goerr.V("path", path))
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, goerr.Wrap(err, "failed to write scaffold file",
			goerr.V("path", path))
	}
	return true, nil
}
