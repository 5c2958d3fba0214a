package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/ruledoc/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies ConfigEmojis map", func(t *testing.T) {
		original := &config.Config{
			ConfigEmojis: map[string]string{"recommended": "✅"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		clone.ConfigEmojis["recommended"] = "🎨"
		assert.Equal(t, "✅", original.ConfigEmojis["recommended"])
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Notices:        []string{"configs", "fixable"},
			IgnoreConfigs:  []string{"internal"},
			SectionInclude: []string{"Examples"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		clone.Notices[0] = "changed"
		clone.IgnoreConfigs[0] = "changed"
		clone.SectionInclude[0] = "changed"
		assert.Equal(t, "configs", original.Notices[0])
		assert.Equal(t, "internal", original.IgnoreConfigs[0])
		assert.Equal(t, "Examples", original.SectionInclude[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			Manifest:         "plugin-rules.yml",
			PathRuleList:     "docs/README.md",
			PathRuleDoc:      "docs/rules/{name}.md",
			TitleFormat:      config.TitleFormatName,
			Notices:          []string{"configs"},
			Columns:          []string{"name", "configs"},
			SectionInclude:   []string{"Examples"},
			SectionExclude:   []string{"More Information"},
			ConfigEmojis:     map[string]string{"recommended": "✅"},
			IgnoreConfigs:    []string{"internal"},
			IgnoreDeprecated: true,
			SplitBy:          "type",
			SortBy:           []string{"fixable"},
			URLConfigs:       "https://example.com/configs",
			Check:            true,
			InitRuleDocs:     true,
			Format:           config.FormatJSON,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			Manifest:    "rules.yml",
			TitleFormat: config.TitleFormatDesc,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "manifest: rules.yml")
		assert.Contains(t, string(data), "title_format: desc")
	})

	t.Run("CLI-only fields stay out of YAML", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Check = true
		cfg.InitRuleDocs = true
		cfg.Format = config.FormatJSON

		data, err := cfg.ToYAML()
		require.NoError(t, err)

		var keys map[string]any
		require.NoError(t, yaml.Unmarshal(data, &keys))
		assert.NotContains(t, keys, "check")
		assert.NotContains(t, keys, "init_rule_docs")
		assert.NotContains(t, keys, "format")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		yaml := []byte(`
manifest: plugin-rules.yml
title_format: desc-parens-name
config_emoji:
  recommended: "✅"
ignore_configs:
  - internal
`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.Equal(t, "plugin-rules.yml", cfg.Manifest)
		assert.Equal(t, config.TitleFormatDescParensName, cfg.TitleFormat)
		assert.Equal(t, "✅", cfg.ConfigEmojis["recommended"])
		assert.Equal(t, []string{"internal"}, cfg.IgnoreConfigs)
	})

	t.Run("initializes empty ConfigEmojis map", func(t *testing.T) {
		yaml := []byte(`manifest: rules.yml`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.NotNil(t, cfg.ConfigEmojis)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("manifest: [unclosed"))
		assert.Error(t, err)
	})
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, "rules.yml", cfg.Manifest)
	assert.Equal(t, "README.md", cfg.PathRuleList)
	assert.Equal(t, "docs/rules/{name}.md", cfg.PathRuleDoc)
	assert.Equal(t, config.TitleFormatDescParensPrefixName, cfg.TitleFormat)
	assert.Equal(t, "✅", cfg.ConfigEmojis["recommended"])
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.False(t, cfg.Check)
	assert.Contains(t, cfg.Columns, "name")
	assert.Contains(t, cfg.Notices, "deprecated")
	assert.NotContains(t, cfg.Notices, "options")
}
