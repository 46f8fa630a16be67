package gqlgenc

import (
	"context"
	"os"
	"path/filepath"

	"github.com/99designs/gqlgen/api"
	"github.com/Yamashou/gqlgenc/clientgen"
	"github.com/Yamashou/gqlgenc/config"
	"github.com/Yamashou/gqlgenc/generator"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/model"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

const configFileName = "gqlgenc.yml"

type codeGenerator struct{}

// NewGenerator creates a ClientGenerator backed by gqlgenc
func NewGenerator() interfaces.ClientGenerator {
	return &codeGenerator{}
}

// GenerateClient renders a gqlgenc configuration into the tool directory and
// runs the generator against it. Paths in the rendered configuration are
// absolute so the generator does not depend on the working directory.
func (g *codeGenerator) GenerateClient(ctx context.Context, cfg *model.CodegenConfig) error {
	path, err := writeConfig(cfg)
	if err != nil {
		return err
	}

	gqlCfg, err := config.LoadConfig(path)
	if err != nil {
		return goerr.Wrap(err, "failed to load generator configuration",
			goerr.V("path", path),
			goerr.T(types.ErrTagExternal),
		)
	}

	clientGen := api.AddPlugin(clientgen.New(gqlCfg.Query, gqlCfg.Client, gqlCfg.Generate))

	if err := generator.Generate(ctx, gqlCfg, clientGen); err != nil {
		return goerr.Wrap(err, "client generation failed",
			goerr.V("config", path),
			goerr.T(types.ErrTagExternal),
		)
	}

	return nil
}

type yamlPackage struct {
	Filename string `yaml:"filename"`
	Package  string `yaml:"package"`
}

type yamlModel struct {
	Model string `yaml:"model"`
}

type yamlConfig struct {
	Schema []string             `yaml:"schema"`
	Model  yamlPackage          `yaml:"model"`
	Client yamlPackage          `yaml:"client"`
	Models map[string]yamlModel `yaml:"models,omitempty"`
	Query  []string             `yaml:"query"`
}

// RenderConfig builds the gqlgenc configuration document for one run
func RenderConfig(cfg *model.CodegenConfig) ([]byte, error) {
	doc := yamlConfig{
		Schema: []string{cfg.SchemaPath},
		Model:  yamlPackage{Filename: filepath.Join(cfg.OutputDir, "models_gen.go"), Package: cfg.Package},
		Client: yamlPackage{Filename: filepath.Join(cfg.OutputDir, "client.go"), Package: cfg.Package},
		Models: make(map[string]yamlModel, len(cfg.Models)),
		Query:  []string{filepath.Join(cfg.QueryDir, "*.graphql")},
	}
	for name, goModel := range cfg.Models {
		doc.Models[name] = yamlModel{Model: goModel}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render generator configuration")
	}
	return data, nil
}

func writeConfig(cfg *model.CodegenConfig) (string, error) {
	data, err := RenderConfig(cfg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create tool directory",
			goerr.V("dir", cfg.ConfigDir),
		)
	}

	path := filepath.Join(cfg.ConfigDir, configFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write generator configuration",
			goerr.V("path", path),
		)
	}
	return path, nil
}
