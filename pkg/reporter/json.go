package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/ruledoc/pkg/runner"
	"github.com/yaklabco/ruledoc/pkg/validate"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version    string               `json:"version"`
	Plugin     string               `json:"plugin"`
	CheckMode  bool                 `json:"checkMode"`
	Docs       []JSONDoc            `json:"docs"`
	Violations []validate.Violation `json:"violations"`
	Warnings   []string             `json:"warnings"`
	Summary    JSONSummary          `json:"summary"`
}

// JSONDoc represents a single processed document.
type JSONDoc struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Rule    string `json:"rule,omitempty"`
	Changed bool   `json:"changed"`
	Written bool   `json:"written"`
	Diff    string `json:"diff,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	DocsProcessed int `json:"docsProcessed"`
	DocsChanged   int `json:"docsChanged"`
	DocsWritten   int `json:"docsWritten"`
	DocsStubbed   int `json:"docsStubbed"`
	Violations    int `json:"violations"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:    "1.0.0",
		Docs:       make([]JSONDoc, 0),
		Violations: make([]validate.Violation, 0),
		Warnings:   make([]string, 0),
	}

	if result == nil {
		return output
	}

	output.Plugin = result.PluginName
	output.CheckMode = result.CheckMode

	for _, doc := range result.Docs {
		jsonDoc := JSONDoc{
			Path:    doc.Path,
			Kind:    string(doc.Kind),
			Rule:    doc.Rule,
			Changed: doc.Changed,
			Written: doc.Written,
		}
		if doc.Diff != nil {
			jsonDoc.Diff = doc.Diff.String()
		}
		output.Docs = append(output.Docs, jsonDoc)
	}

	output.Violations = append(output.Violations, result.Violations...)
	output.Warnings = append(output.Warnings, result.Warnings...)
	output.Summary = JSONSummary{
		DocsProcessed: result.Stats.DocsProcessed,
		DocsChanged:   result.Stats.DocsChanged,
		DocsWritten:   result.Stats.DocsWritten,
		DocsStubbed:   result.Stats.DocsStubbed,
		Violations:    result.Stats.ViolationsTotal,
	}

	return output
}
