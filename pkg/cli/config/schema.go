package config

import "github.com/urfave/cli/v3"

// Schema holds schema file configuration
type Schema struct {
	Filename string
}

// Flags returns CLI flags for schema file configuration
func (c *Schema) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schema-file",
			Usage:       "Schema output filename, written under <root>/graphql",
			Required:    true,
			Destination: &c.Filename,
			Sources:     cli.EnvVars("SHEAR_SCHEMA_FILE"),
		},
	}
}
