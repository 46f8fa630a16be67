package config

import "github.com/urfave/cli/v3"

// Endpoint holds GraphQL API configuration
type Endpoint struct {
	BaseURL     string
	AdminSecret string
}

// Flags returns CLI flags for API configuration
func (c *Endpoint) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "endpoint",
			Usage:       "GraphQL API base URL",
			Required:    true,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("SHEAR_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "admin-secret",
			Usage:       "Admin secret sent as the X-Hasura-Admin-Secret header",
			Required:    true,
			Destination: &c.AdminSecret,
			Sources:     cli.EnvVars("SHEAR_ADMIN_SECRET"),
		},
	}
}
