// Package rules normalizes plugin rule metadata into canonical per-rule
// records and resolves config membership. Everything downstream (badges,
// tables, headers, validation) consumes only these records.
package rules

import (
	"cmp"
	"strings"
)

// Details is the canonical metadata record for one rule. Exactly one exists
// per declared rule name; records are built once per run and never mutated.
type Details struct {
	// Name is the bare rule name, unique and case-sensitive.
	Name string

	// Description is the optional human-readable summary.
	Description string

	// Type is the optional rule category ("problem", "suggestion", "layout").
	Type string

	// Fixable indicates the rule can auto-apply fixes.
	Fixable bool

	// HasSuggestions indicates the rule offers editor-applied suggestions.
	HasSuggestions bool

	// RequiresTypeChecking indicates the rule needs type information.
	RequiresTypeChecking bool

	// Deprecated marks the rule as deprecated.
	Deprecated bool

	// ReplacedBy names successor rules for a deprecated rule.
	ReplacedBy []string

	// Options lists the named option identifiers from the rule's schema.
	Options []string
}

// HasOptions reports whether the rule declares at least one named option.
func (d Details) HasOptions() bool {
	return len(d.Options) > 0
}

// Attribute returns the grouping value of a named rule attribute, used by
// table splitting. Boolean attributes yield their own key when set and ""
// when unset; "" means the rule lacks the attribute.
func (d Details) Attribute(key string) string {
	switch key {
	case "type":
		return d.Type
	case "fixable":
		if d.Fixable {
			return "fixable"
		}
	case "suggestions":
		if d.HasSuggestions {
			return "suggestions"
		}
	case "type-checking":
		if d.RequiresTypeChecking {
			return "type-checking"
		}
	case "deprecated":
		if d.Deprecated {
			return "deprecated"
		}
	case "options":
		if d.HasOptions() {
			return "options"
		}
	}
	return ""
}

// SplitKeys lists the attribute keys accepted by the table-split option.
func SplitKeys() []string {
	return []string{"type", "fixable", "suggestions", "type-checking", "deprecated", "options"}
}

// CompareFold orders strings case-insensitively, breaking ties with a
// case-sensitive comparison so the order is total.
func CompareFold(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
