package cli

import (
	"errors"

	"github.com/yaklabco/mdsplit/pkg/runner"
)

// Exit codes for mdsplit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailures indicates the run completed but some files failed
	// to split, or check mode found stale outputs.
	ExitFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInputError indicates unreadable or malformed input.
	ExitInputError = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrSplitFailures is returned when one or more files failed to split.
var ErrSplitFailures = errors.New("some files failed to split")

// ErrStaleOutputs is returned by check mode when on-disk section files
// do not match a fresh split.
var ErrStaleOutputs = errors.New("output files are out of date")

// ExitCodeFromResult determines the exit code based on a run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitFailures
	}

	return ExitSuccess
}

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSplitFailures), errors.Is(err, ErrStaleOutputs):
		return ExitFailures
	default:
		return ExitInternalError
	}
}
