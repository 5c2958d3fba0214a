package cli

import (
	"errors"

	"github.com/yaklabco/ruledoc/internal/configloader"
	"github.com/yaklabco/ruledoc/pkg/fsutil"
	"github.com/yaklabco/ruledoc/pkg/plugin"
	"github.com/yaklabco/ruledoc/pkg/reporter"
	"github.com/yaklabco/ruledoc/pkg/runner"
)

// ErrUsage marks command-line usage errors so they map to ExitUsageError.
var ErrUsage = errors.New("usage error")

// Exit codes for ruledoc, following BSD sysexits where one applies.
const (
	// ExitSuccess indicates every document is up to date.
	ExitSuccess = 0

	// ExitIssuesFound indicates stale documents or validation violations.
	ExitIssuesFound = 1

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 64

	// ExitConfigError indicates configuration or manifest errors.
	ExitConfigError = 65

	// ExitInternalError indicates an unexpected internal error.
	ExitInternalError = 70

	// ExitIOError indicates a required document could not be read.
	ExitIOError = 74
)

// ExitCodeForError maps an error returned by command execution to a process
// exit code. A nil error means success.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, reporter.ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.As(err, &validationErr),
		errors.Is(err, plugin.ErrInvalidManifest),
		errors.Is(err, plugin.ErrManifestNotFound):
		return ExitConfigError
	case errors.Is(err, runner.ErrDocMissing),
		errors.Is(err, fsutil.ErrNotFound):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
