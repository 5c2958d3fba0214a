package configloader

import (
	"maps"

	"github.com/yaklabco/ruledoc/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's entries taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Manifest != "" {
		result.Manifest = override.Manifest
	}
	if override.PathRuleList != "" {
		result.PathRuleList = override.PathRuleList
	}
	if override.PathRuleDoc != "" {
		result.PathRuleDoc = override.PathRuleDoc
	}
	if override.TitleFormat != "" {
		result.TitleFormat = override.TitleFormat
	}
	if override.SplitBy != "" {
		result.SplitBy = override.SplitBy
	}
	if override.URLConfigs != "" {
		result.URLConfigs = override.URLConfigs
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// Booleans: false is the zero value, so a layer can set these but a
	// later layer cannot unset them.
	if override.IgnoreDeprecated {
		result.IgnoreDeprecated = override.IgnoreDeprecated
	}
	if override.Check {
		result.Check = override.Check
	}
	if override.InitRuleDocs {
		result.InitRuleDocs = override.InitRuleDocs
	}

	// Maps: deep merge. An override entry with an empty value survives the
	// merge; that is how a default emoji mapping gets removed.
	result.ConfigEmojis = mergeEmojis(base.ConfigEmojis, override.ConfigEmojis)

	// Slices: override replaces base entirely if non-nil
	if override.Notices != nil {
		result.Notices = override.Notices
	}
	if override.Columns != nil {
		result.Columns = override.Columns
	}
	if override.SectionInclude != nil {
		result.SectionInclude = override.SectionInclude
	}
	if override.SectionExclude != nil {
		result.SectionExclude = override.SectionExclude
	}
	if override.IgnoreConfigs != nil {
		result.IgnoreConfigs = override.IgnoreConfigs
	}
	if override.SortBy != nil {
		result.SortBy = override.SortBy
	}

	return &result
}

// mergeEmojis performs deep merge of the config emoji maps, so an override
// can remap one config without discarding the remaining mappings.
func mergeEmojis(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]string, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
