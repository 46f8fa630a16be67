package model

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/kaleido-app/shear/pkg/domain/types"
)

const (
	graphqlDirName   = "graphql"
	queriesDirName   = "queries"
	generatedDirName = "generated"
	toolDirName      = ".shear"
)

// FileStructure resolves the project root and the tool directory once at
// process start. All schema, operation and output paths derive from it.
type FileStructure struct {
	Root    string // Absolute path to the project root
	ToolDir string // Absolute path to the tool directory under the root
}

// ResolveFileStructure builds a FileStructure from an explicit root override,
// or by walking up from the working directory to the nearest go.mod.
func ResolveFileStructure(override string) (*FileStructure, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve project root",
				goerr.V("root", override), goerr.T(types.ErrTagConfig))
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, goerr.New("project root is not a directory",
				goerr.V("root", abs), goerr.T(types.ErrTagConfig))
		}
		return NewFileStructure(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve working directory",
			goerr.T(types.ErrTagConfig))
	}

	root, err := findProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return NewFileStructure(root), nil
}

// NewFileStructure builds a FileStructure rooted at the given directory
func NewFileStructure(root string) *FileStructure {
	return &FileStructure{
		Root:    root,
		ToolDir: filepath.Join(root, toolDirName),
	}
}

// findProjectRoot walks up from dir to the nearest directory containing go.mod
func findProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", goerr.New("project root not found: no go.mod in any parent directory (set SHEAR_ROOT to override)",
				goerr.V("start", dir), goerr.T(types.ErrTagConfig))
		}
		dir = parent
	}
}

// GraphQLDir is the fixed folder that holds the downloaded schema
func (f *FileStructure) GraphQLDir() string {
	return filepath.Join(f.Root, graphqlDirName)
}

// QueriesDir is the fixed folder of user-authored operation documents
func (f *FileStructure) QueriesDir() string {
	return filepath.Join(f.Root, graphqlDirName, queriesDirName)
}

// GeneratedDir is the default output folder for generated client code
func (f *FileStructure) GeneratedDir() string {
	return filepath.Join(f.Root, graphqlDirName, generatedDirName)
}

// SchemaPath resolves the absolute path of the schema file by name
func (f *FileStructure) SchemaPath(filename string) string {
	return filepath.Join(f.GraphQLDir(), filename)
}
