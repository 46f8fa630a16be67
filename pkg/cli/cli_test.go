package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/kaleido-app/shear/pkg/cli"
)

// clearEnv makes sure configuration from the surrounding environment does
// not leak into the test; t.Setenv registers the restore.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SHEAR_ROOT", "SHEAR_ENDPOINT", "SHEAR_ADMIN_SECRET", "SHEAR_SCHEMA_FILE",
		"SHEAR_CLIENT_DIR", "SHEAR_CLIENT_PACKAGE", "SHEAR_SCALAR_MODE", "SHEAR_SCALARS_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	clearEnv(t)

	// The usage error must come back to the caller; terminating inside
	// Run would kill the process before main sees the failure.
	err := cli.Run(context.Background(), []string{"shear", "frobnicate"})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("frobnicate")
}

func TestRun_MissingRequiredConfig(t *testing.T) {
	clearEnv(t)

	// Each command must fail during flag resolution, before any network
	// or file I/O happens. No schema file appearing anywhere is the
	// cheap proxy: the working directory stays untouched.
	dir := t.TempDir()
	t.Chdir(dir)

	for _, command := range []string{"downloadSchema", "generate", "all"} {
		t.Run(command, func(t *testing.T) {
			err := cli.Run(context.Background(), []string{"shear", command})
			gt.Error(t, err)

			entries, readErr := os.ReadDir(dir)
			gt.NoError(t, readErr)
			gt.Equal(t, len(entries), 0)
		})
	}
}

func TestRun_InitInvalidRoot(t *testing.T) {
	clearEnv(t)

	// An explicitly configured but broken root must fail fast instead of
	// silently scaffolding into the working directory. Root resolution
	// happens before any prompt, so no terminal is needed here.
	dir := t.TempDir()
	t.Chdir(dir)

	missing := filepath.Join(dir, "no-such-root")
	err := cli.Run(context.Background(), []string{"shear", "init", "--root", missing})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("not a directory")

	entries, readErr := os.ReadDir(dir)
	gt.NoError(t, readErr)
	gt.Equal(t, len(entries), 0)
}

func TestRun_Version(t *testing.T) {
	clearEnv(t)

	gt.NoError(t, cli.Run(context.Background(), []string{"shear", "version"}))
}
