package runner

import (
	"github.com/yaklabco/ruledoc/pkg/diff"
	"github.com/yaklabco/ruledoc/pkg/validate"
)

// DocKind identifies which artifact a document outcome describes.
type DocKind string

const (
	// DocRuleHeader is a per-rule doc whose header region was processed.
	DocRuleHeader DocKind = "rule-header"

	// DocRulesList is the root document holding the rules table.
	DocRulesList DocKind = "rules-list"

	// DocStub is a rule doc created fresh for a rule that had none.
	DocStub DocKind = "stub"
)

// DocOutcome records what happened to one document during the pass.
type DocOutcome struct {
	// Path is the document path relative to the project directory.
	Path string `json:"path"`

	// Kind identifies the artifact.
	Kind DocKind `json:"kind"`

	// Rule is the owning rule name, empty for the root document.
	Rule string `json:"rule,omitempty"`

	// Changed reports whether the rendered content differs from disk.
	Changed bool `json:"changed"`

	// Written reports whether the document was actually rewritten.
	Written bool `json:"written"`

	// Diff carries the drift detail in check mode, nil otherwise.
	Diff *diff.Diff `json:"-"`
}

// Stats aggregates the pass.
type Stats struct {
	// DocsProcessed counts every document the pass touched.
	DocsProcessed int `json:"docs_processed"`

	// DocsChanged counts documents whose rendered content differed.
	DocsChanged int `json:"docs_changed"`

	// DocsWritten counts documents rewritten on disk.
	DocsWritten int `json:"docs_written"`

	// DocsStubbed counts rule docs created from scratch.
	DocsStubbed int `json:"docs_stubbed"`

	// ViolationsTotal counts validation findings across all docs.
	ViolationsTotal int `json:"violations_total"`
}

// Result is the outcome of one documentation pass. Documents appear in
// deterministic order: rule docs by rule name, then the root document.
type Result struct {
	// PluginName is the plugin the manifest declares.
	PluginName string `json:"plugin"`

	// CheckMode reports whether the pass ran without writing.
	CheckMode bool `json:"check_mode"`

	// Docs holds the per-document outcomes.
	Docs []DocOutcome `json:"docs"`

	// Violations holds every validation finding.
	Violations []validate.Violation `json:"violations,omitempty"`

	// Warnings holds non-fatal notes (unknown rule references, skipped
	// documents).
	Warnings []string `json:"warnings,omitempty"`

	// Stats aggregates the pass.
	Stats Stats `json:"stats"`
}

// accumulate records one document outcome.
func (r *Result) accumulate(outcome DocOutcome) {
	r.Docs = append(r.Docs, outcome)
	r.Stats.DocsProcessed++
	if outcome.Changed {
		r.Stats.DocsChanged++
	}
	if outcome.Written {
		r.Stats.DocsWritten++
	}
	if outcome.Kind == DocStub {
		r.Stats.DocsStubbed++
	}
}

// HasDrift reports whether check mode found stale documents.
func (r *Result) HasDrift() bool {
	return r != nil && r.CheckMode && r.Stats.DocsChanged > 0
}

// HasViolations reports whether any validation finding was collected.
func (r *Result) HasViolations() bool {
	return r != nil && len(r.Violations) > 0
}

// Failed reports whether the run should exit non-zero.
func (r *Result) Failed() bool {
	return r.HasDrift() || r.HasViolations()
}
