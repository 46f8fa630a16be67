package config

import (
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/domain/model"
)

// Codegen holds client generation configuration
type Codegen struct {
	OutputDir   string
	Package     string
	ScalarMode  string
	ScalarsFile string
}

// Flags returns CLI flags for client generation configuration
func (c *Codegen) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "client-dir",
			Usage:       "Output directory for generated client code, relative to the project root",
			Value:       "graphql/generated",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("SHEAR_CLIENT_DIR"),
		},
		&cli.StringFlag{
			Name:        "client-package",
			Usage:       "Go package name for generated client code",
			Value:       "generated",
			Destination: &c.Package,
			Sources:     cli.EnvVars("SHEAR_CLIENT_PACKAGE"),
		},
		&cli.StringFlag{
			Name:        "scalar-mode",
			Usage:       "Scalar mapping mode (typed, strings)",
			Value:       "typed",
			Destination: &c.ScalarMode,
			Sources:     cli.EnvVars("SHEAR_SCALAR_MODE"),
		},
		&cli.StringFlag{
			Name:        "scalars-file",
			Usage:       "TOML file overriding the scalar mapping table",
			Destination: &c.ScalarsFile,
			Sources:     cli.EnvVars("SHEAR_SCALARS_FILE"),
		},
	}
}

// Build constructs the codegen configuration against the resolved project
func (c *Codegen) Build(fs *model.FileStructure, schemaFilename string) (*model.CodegenConfig, error) {
	return model.NewCodegenConfig(fs, schemaFilename, c.OutputDir, c.Package, model.ScalarMode(c.ScalarMode), c.ScalarsFile)
}
