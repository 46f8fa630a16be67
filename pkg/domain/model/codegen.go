package model

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/kaleido-app/shear/pkg/domain/types"
)

// ScalarMode selects how backend scalars map to Go types in generated code
type ScalarMode string

const (
	// ScalarModeTyped maps well-known scalars to typed Go representations
	ScalarModeTyped ScalarMode = "typed"
	// ScalarModeStrings maps all well-known scalars to plain strings
	ScalarModeStrings ScalarMode = "strings"
)

// knownScalars are the backend scalar types the generator maps by default
var knownScalars = []string{"uuid", "timestamptz", "timetz", "date", "jsonb", "json", "numeric", "bigint"}

var typedModels = map[string]string{
	"uuid":        "github.com/google/uuid.UUID",
	"timestamptz": "github.com/99designs/gqlgen/graphql.Time",
	"timetz":      "github.com/99designs/gqlgen/graphql.Time",
	"date":        "github.com/99designs/gqlgen/graphql.Time",
	"jsonb":       "github.com/99designs/gqlgen/graphql.Map",
	"json":        "github.com/99designs/gqlgen/graphql.Map",
	"numeric":     "github.com/99designs/gqlgen/graphql.Float",
	"bigint":      "github.com/99designs/gqlgen/graphql.Int64",
}

// Models returns the scalar-to-Go-model table for the mode
func (m ScalarMode) Models() map[string]string {
	models := make(map[string]string, len(knownScalars))
	for _, name := range knownScalars {
		switch m {
		case ScalarModeStrings:
			models[name] = "github.com/99designs/gqlgen/graphql.String"
		default:
			models[name] = typedModels[name]
		}
	}
	return models
}

// CodegenConfig describes one client generation run. It is built from
// environment configuration, used once, and discarded.
type CodegenConfig struct {
	SchemaPath string     `validate:"required"`                     // Absolute path to the SDL schema file
	QueryDir   string     `validate:"required"`                     // Absolute path to the operations folder
	OutputDir  string     `validate:"required"`                     // Absolute path generated sources are written to
	Package    string     `validate:"required"`                     // Go package name of the generated sources
	ScalarMode ScalarMode `validate:"required,oneof=typed strings"` // Scalar handling mode
	ConfigDir  string     `validate:"required"`                     // Tool directory the rendered generator config lands in

	// Models is the resolved scalar-to-Go-model table: the mode's defaults
	// merged with any overrides from the scalar file.
	Models map[string]string
}

// NewCodegenConfig validates and builds a CodegenConfig. Relative output
// directories resolve against the project root; scalarsFile may be empty.
func NewCodegenConfig(fs *FileStructure, schemaFilename, outputDir, pkgName string, mode ScalarMode, scalarsFile string) (*CodegenConfig, error) {
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(fs.Root, outputDir)
	}

	cfg := &CodegenConfig{
		SchemaPath: fs.SchemaPath(schemaFilename),
		QueryDir:   fs.QueriesDir(),
		OutputDir:  outputDir,
		Package:    pkgName,
		ScalarMode: mode,
		ConfigDir:  fs.ToolDir,
		Models:     mode.Models(),
	}

	if scalarsFile != "" {
		overrides, err := loadScalarOverrides(scalarsFile)
		if err != nil {
			return nil, err
		}
		for name, goModel := range overrides {
			cfg.Models[name] = goModel
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, goerr.Wrap(err, "invalid codegen configuration",
			goerr.V("schema", cfg.SchemaPath), goerr.V("output", cfg.OutputDir),
			goerr.T(types.ErrTagConfig))
	}
	return cfg, nil
}

type scalarFile struct {
	Scalars map[string]string `toml:"scalars"`
}

// loadScalarOverrides reads a TOML file mapping scalar names to Go models,
// e.g. `numeric = "github.com/shopspring/decimal.Decimal"` under [scalars].
func loadScalarOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read scalar override file",
			goerr.V("path", path), goerr.T(types.ErrTagConfig))
	}

	var file scalarFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse scalar override file",
			goerr.V("path", path), goerr.T(types.ErrTagConfig))
	}
	return file.Scalars, nil
}
