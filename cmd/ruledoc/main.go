// Package main is the entry point for the ruledoc CLI.
package main

import (
	"os"

	"github.com/yaklabco/ruledoc/internal/cli"
	"github.com/yaklabco/ruledoc/internal/logging"
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
		code := cli.ExitCodeForError(err)
		// Stale docs and violations were already reported; anything else
		// gets an error log.
		if code != cli.ExitIssuesFound {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return code
	}

	return cli.ExitSuccess
}
