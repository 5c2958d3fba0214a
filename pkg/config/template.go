package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every option with its default value.
	// If false, generates a minimal commented template.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate()
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# ruledoc configuration
# See: https://github.com/yaklabco/ruledoc

# Plugin rules manifest
manifest: rules.yml

# Root document holding the rules table
# path_rule_list: README.md

# Per-rule document path template ({name} is replaced with the rule name)
# path_rule_doc: docs/rules/{name}.md

# Rule doc title format: desc, desc-parens-name, desc-parens-prefix-name,
# name, or prefix-name
# title_format: desc-parens-prefix-name

# Emoji shown for a config's membership badge
# config_emoji:
#   recommended: "✅"
#   style: "🎨"

# Configs to exclude from all generated output
# ignore_configs:
#   - internal

# Drop deprecated rules entirely
# ignore_deprecated_rules: false

# Section headings every rule doc must contain
# section_include:
#   - Examples

# Section headings no rule doc may contain
# section_exclude:
#   - More Information
`)

	return buf.Bytes()
}

// generateFullTemplate creates a template listing every option with its default.
func generateFullTemplate() []byte {
	var buf bytes.Buffer
	defaults := NewConfig()

	buf.WriteString(`# ruledoc configuration - Full Template
# See: https://github.com/yaklabco/ruledoc
#
# Every option is listed with its default value.

`)

	buf.WriteString("# Plugin rules manifest\n")
	buf.WriteString(fmt.Sprintf("manifest: %s\n\n", defaults.Manifest))

	buf.WriteString("# Root document holding the rules table\n")
	buf.WriteString(fmt.Sprintf("path_rule_list: %s\n\n", defaults.PathRuleList))

	buf.WriteString("# Per-rule document path template\n")
	buf.WriteString(fmt.Sprintf("path_rule_doc: %s\n\n", defaults.PathRuleDoc))

	buf.WriteString("# Rule doc title format\n")
	buf.WriteString(fmt.Sprintf("title_format: %s\n\n", defaults.TitleFormat))

	buf.WriteString("# Badge kinds rendered in rule doc headers\n")
	writeStringList(&buf, "notices", defaults.Notices)

	buf.WriteString("# Columns eligible to appear in the rules table\n")
	writeStringList(&buf, "columns", defaults.Columns)

	buf.WriteString("# Emoji shown for a config's membership badge\n")
	buf.WriteString("config_emoji:\n")
	buf.WriteString("  recommended: \"✅\"\n\n")

	buf.WriteString("# Configs to exclude from all generated output\n")
	buf.WriteString("# ignore_configs: []\n\n")

	buf.WriteString("# Drop deprecated rules entirely\n")
	buf.WriteString("ignore_deprecated_rules: false\n\n")

	buf.WriteString("# Partition the rules table by a rule attribute\n")
	buf.WriteString("# split_by: type\n\n")

	buf.WriteString("# Order table rows by column non-emptiness before the name sort\n")
	buf.WriteString("# sort_by: []\n\n")

	buf.WriteString("# Link config names in the table legend to this URL\n")
	buf.WriteString("# url_configs: https://example.com/docs/configs\n\n")

	buf.WriteString("# Section headings every rule doc must contain\n")
	buf.WriteString("# section_include: []\n\n")

	buf.WriteString("# Section headings no rule doc may contain\n")
	buf.WriteString("# section_exclude: []\n")

	return buf.Bytes()
}

func writeStringList(buf *bytes.Buffer, key string, values []string) {
	buf.WriteString(key + ":\n")
	for _, v := range values {
		buf.WriteString("  - " + v + "\n")
	}
	buf.WriteString("\n")
}
