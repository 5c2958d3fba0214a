package rules

import (
	"slices"

	"github.com/yaklabco/ruledoc/pkg/plugin"
)

// Normalize converts the manifest's heterogeneous rule entries into one
// Details record per rule, sorted by name. Bare entries (no metadata)
// normalize to all-false booleans with no description, type, or options;
// that is a known metadata-loss case, not an error. When ignoreDeprecated
// is set, deprecated rules are dropped here, before any downstream
// component sees them.
func Normalize(m *plugin.Manifest, ignoreDeprecated bool) []Details {
	details := make([]Details, 0, len(m.Rules))

	for _, name := range m.RuleNames() {
		entry := m.Rules[name]
		d := normalizeEntry(name, entry)
		if ignoreDeprecated && d.Deprecated {
			continue
		}
		details = append(details, d)
	}

	return details
}

// normalizeEntry maps one manifest entry to its canonical record.
func normalizeEntry(name string, entry plugin.RuleEntry) Details {
	d := Details{Name: name}
	if !entry.HasMeta {
		return d
	}

	meta := entry.Meta
	d.Description = meta.Description
	d.Type = meta.Type
	d.Fixable = meta.Fixable
	d.HasSuggestions = meta.HasSuggestions
	d.RequiresTypeChecking = meta.RequiresTypeChecking
	d.Deprecated = meta.Deprecated

	if len(meta.ReplacedBy) > 0 {
		d.ReplacedBy = slices.Clone(meta.ReplacedBy)
	}
	for _, opt := range meta.Schema {
		if opt.Name != "" {
			d.Options = append(d.Options, opt.Name)
		}
	}

	return d
}

// Names returns the rule names of a Details slice, preserving order.
func Names(details []Details) []string {
	names := make([]string, len(details))
	for i, d := range details {
		names[i] = d.Name
	}
	return names
}
