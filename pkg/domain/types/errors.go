package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures at the process boundary: configuration
// problems are the caller's to fix, external failures come from the
// endpoint, the filesystem, or a wrapped library.
var (
	ErrTagConfig   = goerr.NewTag("config")
	ErrTagExternal = goerr.NewTag("external")
)
