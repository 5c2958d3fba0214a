package config

import (
	"bytes"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
// It produces human-readable output with appropriate formatting.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.ConfigEmojis == nil {
		cfg.ConfigEmojis = make(map[string]string)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Manifest:         c.Manifest,
		PathRuleList:     c.PathRuleList,
		PathRuleDoc:      c.PathRuleDoc,
		TitleFormat:      c.TitleFormat,
		IgnoreDeprecated: c.IgnoreDeprecated,
		SplitBy:          c.SplitBy,
		URLConfigs:       c.URLConfigs,
		Check:            c.Check,
		InitRuleDocs:     c.InitRuleDocs,
		Format:           c.Format,
	}

	clone.Notices = cloneStrings(c.Notices)
	clone.Columns = cloneStrings(c.Columns)
	clone.SectionInclude = cloneStrings(c.SectionInclude)
	clone.SectionExclude = cloneStrings(c.SectionExclude)
	clone.IgnoreConfigs = cloneStrings(c.IgnoreConfigs)
	clone.SortBy = cloneStrings(c.SortBy)

	if c.ConfigEmojis != nil {
		clone.ConfigEmojis = make(map[string]string, len(c.ConfigEmojis))
		maps.Copy(clone.ConfigEmojis, c.ConfigEmojis)
	}

	return clone
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
