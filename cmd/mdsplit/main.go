// Package main is the entry point for the mdsplit CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdsplit/internal/cli"
	"github.com/yaklabco/mdsplit/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Failure sentinels only signal the exit code; the commands
		// have already reported the details.
		if !errors.Is(err, cli.ErrSplitFailures) && !errors.Is(err, cli.ErrStaleOutputs) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return 0
}
