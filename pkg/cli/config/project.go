package config

import (
	"github.com/urfave/cli/v3"

	"github.com/kaleido-app/shear/pkg/domain/model"
)

// Project holds project location configuration
type Project struct {
	Root string
}

// Flags returns CLI flags for project location configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Usage:       "Project root directory (default: nearest ancestor with go.mod)",
			Destination: &c.Root,
			Sources:     cli.EnvVars("SHEAR_ROOT"),
		},
	}
}

// Resolve resolves the project file structure from the configured root
func (c *Project) Resolve() (*model.FileStructure, error) {
	return model.ResolveFileStructure(c.Root)
}
