package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/config"
)

// envVarPrefix is the prefix for all ruledoc environment variables.
const envVarPrefix = "RULEDOC_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeSlice
	envTypeMap
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config
// fields. RULEDOC_LOG is handled by internal/logging, not here.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MANIFEST":                {field: "manifest", typ: envTypeString},
	"PATH_RULE_LIST":          {field: "path_rule_list", typ: envTypeString},
	"PATH_RULE_DOC":           {field: "path_rule_doc", typ: envTypeString},
	"TITLE_FORMAT":            {field: "title_format", typ: envTypeString},
	"NOTICES":                 {field: "notices", typ: envTypeSlice},
	"COLUMNS":                 {field: "columns", typ: envTypeSlice},
	"SECTION_INCLUDE":         {field: "section_include", typ: envTypeSlice},
	"SECTION_EXCLUDE":         {field: "section_exclude", typ: envTypeSlice},
	"CONFIG_EMOJI":            {field: "config_emoji", typ: envTypeMap},
	"IGNORE_CONFIGS":          {field: "ignore_configs", typ: envTypeSlice},
	"IGNORE_DEPRECATED_RULES": {field: "ignore_deprecated_rules", typ: envTypeBool},
	"SPLIT_BY":                {field: "split_by", typ: envTypeString},
	"SORT_BY":                 {field: "sort_by", typ: envTypeSlice},
	"URL_CONFIGS":             {field: "url_configs", typ: envTypeString},
	"CHECK":                   {field: "check", typ: envTypeBool},
	"INIT_RULE_DOCS":          {field: "init_rule_docs", typ: envTypeBool},
	"FORMAT":                  {field: "format", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RULEDOC_ (e.g., RULEDOC_MANIFEST).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	case envTypeMap:
		pairs, err := parseMapValue(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %v", envVar, err)
		}
		return setMapField(cfg, mapping.field, pairs)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseMapValue parses comma-separated name=value pairs. A name with no "="
// is rejected; a name with an empty value is kept, which is how a default
// emoji mapping gets removed.
func parseMapValue(value string) (map[string]string, error) {
	result := make(map[string]string)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, val, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", part)
		}
		result[name] = val
	}
	return result, nil
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "manifest":
		cfg.Manifest = value
	case "path_rule_list":
		cfg.PathRuleList = value
	case "path_rule_doc":
		cfg.PathRuleDoc = value
	case "title_format":
		cfg.TitleFormat = config.TitleFormat(value)
	case "split_by":
		cfg.SplitBy = value
	case "url_configs":
		cfg.URLConfigs = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "ignore_deprecated_rules":
		cfg.IgnoreDeprecated = value
	case "check":
		cfg.Check = value
	case "init_rule_docs":
		cfg.InitRuleDocs = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "notices":
		cfg.Notices = value
	case "columns":
		cfg.Columns = value
	case "section_include":
		cfg.SectionInclude = value
	case "section_exclude":
		cfg.SectionExclude = value
	case "ignore_configs":
		cfg.IgnoreConfigs = value
	case "sort_by":
		cfg.SortBy = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// setMapField merges map entries into a map field on the config. Entries
// override existing keys; other keys are left alone.
func setMapField(cfg *config.Config, field string, value map[string]string) error {
	switch field {
	case "config_emoji":
		if cfg.ConfigEmojis == nil {
			cfg.ConfigEmojis = make(map[string]string, len(value))
		}
		for name, emoji := range value {
			cfg.ConfigEmojis[name] = emoji
		}
	default:
		return fmt.Errorf("unknown map field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"RULEDOC_MANIFEST":                "Path to the plugin rules manifest",
		"RULEDOC_PATH_RULE_LIST":          "Root document holding the rules table",
		"RULEDOC_PATH_RULE_DOC":           "Per-rule document path template ({name} placeholder)",
		"RULEDOC_TITLE_FORMAT":            "Rule doc title format: desc, desc-parens-name, desc-parens-prefix-name, name, or prefix-name",
		"RULEDOC_NOTICES":                 "Comma-separated badge kinds for rule doc headers",
		"RULEDOC_COLUMNS":                 "Comma-separated columns eligible for the rules table",
		"RULEDOC_SECTION_INCLUDE":         "Comma-separated required section headings",
		"RULEDOC_SECTION_EXCLUDE":         "Comma-separated forbidden section headings",
		"RULEDOC_CONFIG_EMOJI":            "Comma-separated name=emoji pairs",
		"RULEDOC_IGNORE_CONFIGS":          "Comma-separated config names to exclude from output",
		"RULEDOC_IGNORE_DEPRECATED_RULES": "Drop deprecated rules: true or false",
		"RULEDOC_SPLIT_BY":                "Rule attribute to partition the rules table by",
		"RULEDOC_SORT_BY":                 "Comma-separated columns to order table rows by",
		"RULEDOC_URL_CONFIGS":             "URL for config names in the table legend",
		"RULEDOC_CHECK":                   "Report drift instead of writing: true or false",
		"RULEDOC_INIT_RULE_DOCS":          "Create stub docs for undocumented rules: true or false",
		"RULEDOC_FORMAT":                  "Report format: text or json",
		"RULEDOC_LOG":                     "Log level: debug, info, warn, or error",
	}
}
