// Package config defines core configuration types for ruledoc.
// These types are pure data structures with no dependencies on config loaders.
package config

// TitleFormat controls how the title line of a generated rule doc header is built.
type TitleFormat string

const (
	// TitleFormatDesc renders the rule description alone.
	TitleFormatDesc TitleFormat = "desc"
	// TitleFormatDescParensName renders "Description (rule-name)".
	TitleFormatDescParensName TitleFormat = "desc-parens-name"
	// TitleFormatDescParensPrefixName renders "Description (`plugin/rule-name`)".
	TitleFormatDescParensPrefixName TitleFormat = "desc-parens-prefix-name"
	// TitleFormatName renders the bare rule name.
	TitleFormatName TitleFormat = "name"
	// TitleFormatPrefixName renders the plugin-prefixed rule name.
	TitleFormatPrefixName TitleFormat = "prefix-name"
)

// IsValid returns true if the title format is one of the supported values.
func (f TitleFormat) IsValid() bool {
	switch f {
	case TitleFormatDesc, TitleFormatDescParensName, TitleFormatDescParensPrefixName,
		TitleFormatName, TitleFormatPrefixName:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the report format for command output.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// IsValid returns true if the format is one of the supported values.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// Column and notice identifiers accepted by the column selector, the notice
// selector, sort_by, and split_by. "name" and "description" are column-only.
const (
	ColumnName         = "name"
	ColumnDescription  = "description"
	ColumnConfigs      = "configs"
	ColumnFixable      = "fixable"
	ColumnSuggestions  = "suggestions"
	ColumnTypeChecking = "type-checking"
	ColumnDeprecated   = "deprecated"
	ColumnOptions      = "options"
	ColumnType         = "type"
)

// Config is the root configuration structure for ruledoc.
type Config struct {
	// Manifest is the path to the plugin's rules manifest, relative to the
	// project directory.
	Manifest string `yaml:"manifest"`

	// PathRuleList is the path to the root document holding the rules table.
	PathRuleList string `yaml:"path_rule_list"`

	// PathRuleDoc is the per-rule document path template. The literal
	// "{name}" is replaced with the rule name.
	PathRuleDoc string `yaml:"path_rule_doc"`

	// TitleFormat selects the rule doc title line format.
	TitleFormat TitleFormat `yaml:"title_format"`

	// Notices selects which badge kinds appear in rule doc headers.
	Notices []string `yaml:"notices"`

	// Columns selects which columns may appear in the rules table. Columns
	// with no non-empty cell are suppressed regardless of this list.
	Columns []string `yaml:"columns"`

	// SectionInclude lists section headings every rule doc must contain.
	SectionInclude []string `yaml:"section_include"`

	// SectionExclude lists section headings no rule doc may contain.
	SectionExclude []string `yaml:"section_exclude"`

	// ConfigEmojis maps config names to badge emojis.
	ConfigEmojis map[string]string `yaml:"config_emoji"`

	// IgnoreConfigs lists config names excluded from all output.
	IgnoreConfigs []string `yaml:"ignore_configs"`

	// IgnoreDeprecated drops deprecated rules immediately after
	// normalization, before any rendering or validation.
	IgnoreDeprecated bool `yaml:"ignore_deprecated_rules"`

	// SplitBy partitions the rules table by a rule attribute.
	SplitBy string `yaml:"split_by"`

	// SortBy orders table rows by column non-emptiness before the name sort.
	SortBy []string `yaml:"sort_by"`

	// URLConfigs links config names in the table legend to this URL.
	URLConfigs string `yaml:"url_configs"`

	// CLI-level options (not persisted to config files).

	// Check reports drift instead of writing documents.
	Check bool `yaml:"-"`

	// InitRuleDocs creates stub docs for rules that have none.
	InitRuleDocs bool `yaml:"-"`

	// Format specifies the report output format.
	Format OutputFormat `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Manifest:     "rules.yml",
		PathRuleList: "README.md",
		PathRuleDoc:  "docs/rules/{name}.md",
		TitleFormat:  TitleFormatDescParensPrefixName,
		Notices: []string{
			ColumnConfigs, ColumnFixable, ColumnSuggestions,
			ColumnTypeChecking, ColumnDeprecated,
		},
		Columns: []string{
			ColumnName, ColumnDescription, ColumnConfigs, ColumnFixable,
			ColumnSuggestions, ColumnTypeChecking, ColumnDeprecated,
		},
		ConfigEmojis: map[string]string{
			"recommended": "✅",
		},
		Format: FormatText,
	}
}
