// Package validate checks rule docs independently of generation: required
// and forbidden section headings, option-mention coverage, and docs no
// declared rule owns. All violations are collected; nothing halts early.
package validate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/mdscan"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

// Kind classifies a validation violation.
type Kind string

const (
	// KindMissingSection marks a required heading the doc lacks.
	KindMissingSection Kind = "missing-section"

	// KindForbiddenSection marks a heading the doc must not contain.
	KindForbiddenSection Kind = "forbidden-section"

	// KindMissingOptionsSection marks a configurable rule whose doc has
	// neither an "Options" nor a "Config" heading.
	KindMissingOptionsSection Kind = "missing-options-section"

	// KindOptionNotMentioned marks a named option the doc never mentions.
	KindOptionNotMentioned Kind = "option-not-mentioned"

	// KindOrphanDoc marks a rule doc with no declared rule behind it.
	KindOrphanDoc Kind = "orphan-doc"
)

// Violation is one validation finding against one document.
type Violation struct {
	// Path is the document the violation was found in.
	Path string `json:"path"`

	// Rule is the rule the document belongs to, empty for orphan docs.
	Rule string `json:"rule,omitempty"`

	// Kind classifies the violation.
	Kind Kind `json:"kind"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// Options controls the per-doc section checks.
type Options struct {
	// RequiredSections lists headings every rule doc must contain,
	// matched by exact text.
	RequiredSections []string

	// ForbiddenSections lists headings no rule doc may contain.
	ForbiddenSections []string
}

// optionSectionHeadings are the headings that satisfy the options-section
// requirement for configurable rules.
var optionSectionHeadings = []string{"Options", "Config"}

// CheckDoc validates one rule doc's content. The returned violations are in
// a stable order: section checks first, then option coverage.
func CheckDoc(path string, content []byte, d rules.Details, opts Options) []Violation {
	var out []Violation

	for _, heading := range opts.RequiredSections {
		if _, ok := mdscan.FindHeading(content, heading); !ok {
			out = append(out, Violation{
				Path:    path,
				Rule:    d.Name,
				Kind:    KindMissingSection,
				Message: fmt.Sprintf("missing required section %q", heading),
			})
		}
	}

	for _, heading := range opts.ForbiddenSections {
		if _, ok := mdscan.FindHeading(content, heading); ok {
			out = append(out, Violation{
				Path:    path,
				Rule:    d.Name,
				Kind:    KindForbiddenSection,
				Message: fmt.Sprintf("forbidden section %q present", heading),
			})
		}
	}

	if !d.HasOptions() {
		return out
	}

	if !hasAnyHeading(content, optionSectionHeadings) {
		out = append(out, Violation{
			Path:    path,
			Rule:    d.Name,
			Kind:    KindMissingOptionsSection,
			Message: "rule has options but doc has no \"Options\" or \"Config\" section",
		})
	}

	for _, option := range d.Options {
		if !optionMentioned(content, option) {
			out = append(out, Violation{
				Path:    path,
				Rule:    d.Name,
				Kind:    KindOptionNotMentioned,
				Message: fmt.Sprintf("option %q is not mentioned", option),
			})
		}
	}

	return out
}

func hasAnyHeading(content []byte, headings []string) bool {
	for _, h := range headings {
		if _, ok := mdscan.FindHeading(content, h); ok {
			return true
		}
	}
	return false
}

// optionMentioned looks for the option name verbatim, then in its
// quote-escaped form since option names often appear inside string
// literals in example snippets.
func optionMentioned(content []byte, name string) bool {
	if bytes.Contains(content, []byte(name)) {
		return true
	}
	escaped := strings.NewReplacer(`"`, `\"`, `'`, `\'`).Replace(name)
	return escaped != name && bytes.Contains(content, []byte(escaped))
}

// DocName extracts the rule name a doc path encodes, given the doc path
// template. The second return is false when the path does not match the
// template shape.
func DocName(pathRuleDoc, docPath string) (string, bool) {
	prefix, suffix, ok := strings.Cut(pathRuleDoc, "{name}")
	if !ok {
		return "", false
	}

	p := filepath.ToSlash(docPath)
	if !strings.HasPrefix(p, prefix) || !strings.HasSuffix(p, suffix) {
		return "", false
	}
	name := p[len(prefix) : len(p)-len(suffix)]
	if name == "" {
		return "", false
	}
	return name, true
}

// Orphans reports rule docs present on disk that no declared rule owns.
// Paths come back relative to the project directory, sorted.
func Orphans(docPaths, ruleNames []string, pathRuleDoc string) []Violation {
	known := make(map[string]bool, len(ruleNames))
	for _, name := range ruleNames {
		known[name] = true
	}

	var out []Violation
	for _, p := range docPaths {
		name, ok := DocName(pathRuleDoc, p)
		if !ok || known[name] {
			continue
		}
		out = append(out, Violation{
			Path:    p,
			Kind:    KindOrphanDoc,
			Message: fmt.Sprintf("no rule named %q is declared for this doc", name),
		})
	}

	slices.SortFunc(out, func(a, b Violation) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}
