package types

import "time"

// Version is the application version, overridden at build time via ldflags
var Version = "dev"

// DownloadTimeout is the fixed timeout applied to schema download requests
const DownloadTimeout = 30 * time.Second

// HTTP headers attached to introspection requests
const (
	HeaderAdminSecret = "X-Hasura-Admin-Secret"
	HeaderRequestID   = "X-Request-Id"
)
