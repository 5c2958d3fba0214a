// Package reporter formats documentation run results for terminal and CI
// consumption.
package reporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/runner"
)

// ErrIssuesFound indicates the run surfaced stale documents or validation
// violations. The CLI maps it to a non-zero exit without an error log.
var ErrIssuesFound = errors.New("issues found")

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes a documentation run result.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
