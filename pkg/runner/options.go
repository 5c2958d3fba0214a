// Package runner orchestrates a full documentation pass: load the plugin
// manifest, render and merge every generated artifact, validate rule docs,
// and collect a deterministic result for reporting.
package runner

import "github.com/yaklabco/ruledoc/pkg/config"

// Options controls a documentation run.
type Options struct {
	// ProjectDir is the directory every configured path is relative to.
	// Empty means the current working directory.
	ProjectDir string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveProjectDir returns the project directory, defaulting to ".".
func (o Options) effectiveProjectDir() string {
	if o.ProjectDir == "" {
		return "."
	}
	return o.ProjectDir
}
