package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/notices"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "columns[2]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., pointless mappings).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownColumns lists valid rules table column identifiers.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColumns = map[string]bool{
	config.ColumnName:         true,
	config.ColumnDescription:  true,
	config.ColumnConfigs:      true,
	config.ColumnFixable:      true,
	config.ColumnSuggestions:  true,
	config.ColumnTypeChecking: true,
	config.ColumnDeprecated:   true,
	config.ColumnOptions:      true,
	config.ColumnType:         true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	// Validate title_format
	if cfg.TitleFormat != "" && !cfg.TitleFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field: "title_format",
			Value: cfg.TitleFormat,
			Message: fmt.Sprintf(
				"invalid title format %q; must be one of: desc, desc-parens-name, desc-parens-prefix-name, name, prefix-name",
				cfg.TitleFormat),
		})
	}

	// Validate format
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, table", cfg.Format),
		})
	}

	// Validate path_rule_doc template
	if cfg.PathRuleDoc != "" && !strings.Contains(cfg.PathRuleDoc, "{name}") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "path_rule_doc",
			Value:   cfg.PathRuleDoc,
			Message: fmt.Sprintf("path template %q must contain the {name} placeholder", cfg.PathRuleDoc),
		})
	}

	validateColumns(cfg, result)
	validateNotices(cfg, result)
	validateSortBy(cfg, result)
	validateSplitBy(cfg, result)
	validateSections(cfg, result)
	validateEmojis(cfg, result)

	return result
}

// validateColumns checks the column selector for unknown and duplicate entries.
func validateColumns(cfg *config.Config, result *ValidationResult) {
	seen := make(map[string]bool, len(cfg.Columns))
	for i, col := range cfg.Columns {
		if !knownColumns[col] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("columns[%d]", i),
				Value:   col,
				Message: fmt.Sprintf("unknown column %q", col),
			})
			continue
		}
		if seen[col] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("columns[%d]", i),
				Value:   col,
				Message: fmt.Sprintf("duplicate column %q", col),
			})
		}
		seen[col] = true
	}
}

// validateNotices checks the notice selector for unknown and duplicate entries.
func validateNotices(cfg *config.Config, result *ValidationResult) {
	seen := make(map[string]bool, len(cfg.Notices))
	for i, n := range cfg.Notices {
		if !notices.Kind(n).IsValid() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("notices[%d]", i),
				Value:   n,
				Message: fmt.Sprintf("unknown notice %q", n),
			})
			continue
		}
		if seen[n] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("notices[%d]", i),
				Value:   n,
				Message: fmt.Sprintf("duplicate notice %q", n),
			})
		}
		seen[n] = true
	}
}

// validateSortBy checks that sort columns are badge kinds. The name column
// is always the final sort key and cannot be selected.
func validateSortBy(cfg *config.Config, result *ValidationResult) {
	for i, s := range cfg.SortBy {
		if !notices.Kind(s).IsValid() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("sort_by[%d]", i),
				Value:   s,
				Message: fmt.Sprintf("unknown sort column %q", s),
			})
		}
	}
}

// validateSplitBy checks the table-split attribute.
func validateSplitBy(cfg *config.Config, result *ValidationResult) {
	if cfg.SplitBy == "" || IsValidSplitKey(cfg.SplitBy) {
		return
	}

	result.Errors = append(result.Errors, ValidationError{
		Field: "split_by",
		Value: cfg.SplitBy,
		Message: fmt.Sprintf("invalid split attribute %q; must be one of: %s",
			cfg.SplitBy, strings.Join(rules.SplitKeys(), ", ")),
	})
}

// validateSections rejects headings listed as both required and forbidden.
func validateSections(cfg *config.Config, result *ValidationResult) {
	excluded := make(map[string]bool, len(cfg.SectionExclude))
	for _, s := range cfg.SectionExclude {
		excluded[s] = true
	}

	for i, s := range cfg.SectionInclude {
		if excluded[s] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("section_include[%d]", i),
				Value:   s,
				Message: fmt.Sprintf("section %q is listed as both required and forbidden", s),
			})
		}
	}
}

// validateEmojis checks emoji mappings. An empty emoji is allowed; it unmaps
// a default. Mappings for ignored configs never render, so they get a warning.
func validateEmojis(cfg *config.Config, result *ValidationResult) {
	ignored := make(map[string]bool, len(cfg.IgnoreConfigs))
	for _, name := range cfg.IgnoreConfigs {
		ignored[name] = true
	}

	for name, emoji := range cfg.ConfigEmojis {
		if name == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "config_emoji",
				Value:   emoji,
				Message: "config name must not be empty",
			})
			continue
		}
		if ignored[name] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "config_emoji." + name,
				Value:   emoji,
				Message: fmt.Sprintf("config %q has an emoji mapping but is in ignore_configs", name),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	// Add file path to all errors and warnings
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidColumn returns true if the identifier names a rules table column.
func IsValidColumn(col string) bool {
	return knownColumns[col]
}

// IsValidSplitKey returns true if the attribute can partition the rules table.
func IsValidSplitKey(key string) bool {
	for _, k := range rules.SplitKeys() {
		if key == k {
			return true
		}
	}
	return false
}
