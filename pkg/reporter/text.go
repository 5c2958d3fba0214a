package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/internal/ui/pretty"
	"github.com/yaklabco/ruledoc/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	if result.CheckMode {
		r.reportDrift(result)
	} else {
		r.reportWritten(result)
	}
	r.reportViolations(result)
	r.reportWarnings(result)

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result))
	}

	return nil
}

// reportDrift writes a styled unified diff for every stale document.
func (r *TextReporter) reportDrift(result *runner.Result) {
	for _, doc := range result.Docs {
		if !doc.Changed || doc.Diff == nil {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatDocHeader(doc.Path))
		for _, line := range strings.Split(doc.Diff.String(), "\n") {
			if line == "" {
				continue
			}
			r.writeDiffLine(line)
		}
		fmt.Fprintln(r.bw)
	}
}

// reportWritten writes one status line per document the run touched.
func (r *TextReporter) reportWritten(result *runner.Result) {
	for _, doc := range result.Docs {
		if !doc.Written {
			continue
		}

		status := "updated"
		if doc.Kind == runner.DocStub {
			status = "created"
		}
		fmt.Fprint(r.bw, r.styles.FormatDocStatus(status, doc.Path))
	}
}

// reportViolations writes one line per validation finding.
func (r *TextReporter) reportViolations(result *runner.Result) {
	for _, v := range result.Violations {
		fmt.Fprint(r.bw, r.styles.FormatViolation(v))
	}
}

// reportWarnings writes non-fatal run warnings.
func (r *TextReporter) reportWarnings(result *runner.Result) {
	for _, w := range result.Warnings {
		fmt.Fprint(r.bw, r.styles.FormatWarning(w))
	}
}

// writeDiffLine formats a single diff line with color.
func (r *TextReporter) writeDiffLine(line string) {
	var styled string

	switch {
	case strings.HasPrefix(line, "@@"):
		styled = r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		styled = r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		styled = r.styles.DiffRemove.Render(line)
	default:
		styled = r.styles.DiffContext.Render(line)
	}

	fmt.Fprintln(r.bw, styled)
}
