// Package render turns normalized rule metadata into the two generated
// markdown artifacts: the per-rule doc header block and the rules summary
// table with its legend. Output is deterministic: fixed badge precedence,
// stable sorts, and column suppression driven only by the displayed rows.
package render

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/notices"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

// Entry pairs one rule's canonical record with its derived config badges.
// Configs are sorted case-insensitively by config name before rendering.
type Entry struct {
	Rule    rules.Details
	Configs []notices.ConfigBadge
}

// Options carries the caller-resolved rendering configuration.
type Options struct {
	// PluginName prefixes rule names in prefixed title formats.
	PluginName string

	// PathRuleList is the root document path, the base for name-cell links.
	PathRuleList string

	// PathRuleDoc is the per-rule document path template.
	PathRuleDoc string

	// TitleFormat selects the rule doc title line format.
	TitleFormat config.TitleFormat

	// Notices selects the badge kinds rendered in header blocks.
	Notices []notices.Kind

	// Columns selects the badge kinds eligible as table columns and
	// whether the description column may appear.
	Columns []string

	// SortBy orders rows by these columns' non-emptiness before the
	// case-insensitive name sort.
	SortBy []notices.Kind

	// SplitBy partitions the table by a rule attribute.
	SplitBy string

	// URLConfigs links config names in the legend when set.
	URLConfigs string
}

// ruleDocPath expands the rule doc template for a rule name.
func (o Options) ruleDocPath(name string) string {
	return config.RuleDocPath(o.PathRuleDoc, name)
}

// hasColumn reports whether the column selector includes the identifier.
func (o Options) hasColumn(id string) bool {
	for _, c := range o.Columns {
		if c == id {
			return true
		}
	}
	return false
}

// relLink computes the slash-separated relative link from the directory of
// fromDoc to toDoc. Both paths are project-relative.
func relLink(fromDoc, toDoc string) string {
	fromDir := path.Dir(path.Clean(strings.ReplaceAll(fromDoc, "\\", "/")))
	target := path.Clean(strings.ReplaceAll(toDoc, "\\", "/"))
	if fromDir == "." {
		return target
	}

	fromParts := strings.Split(fromDir, "/")
	toParts := strings.Split(target, "/")

	common := 0
	for common < len(fromParts) && common < len(toParts)-1 && fromParts[common] == toParts[common] {
		common++
	}

	parts := make([]string, 0, len(fromParts)-common+len(toParts)-common)
	for i := common; i < len(fromParts); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, toParts[common:]...)
	return path.Join(parts...)
}

// escapeCell makes arbitrary text safe inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// titleCase upper-cases the first rune, for split sub-headings.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
