// Package plugin defines the metadata surface a linter plugin exports for
// documentation generation: its rules, its named configs, and the activation
// data tying them together. The canonical carrier is a YAML rules manifest
// shipped alongside the plugin; loading live rule objects from a package is
// out of scope and replaced by this data interface.
package plugin

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the root of a plugin rules manifest.
type Manifest struct {
	// Name is the plugin name, used as the rule-name prefix.
	Name string `yaml:"name"`

	// Rules maps rule names to their declared metadata.
	Rules map[string]RuleEntry `yaml:"rules"`

	// Configs maps config names to their definitions.
	Configs map[string]ConfigDef `yaml:"configs"`
}

// RuleEntry is one declared rule. Two shapes are accepted: a mapping carrying
// metadata fields, or a bare (null) entry for rules registered by name only.
// Bare entries carry no metadata; HasMeta distinguishes the shapes after
// decoding.
type RuleEntry struct {
	HasMeta bool
	Meta    RuleMeta
}

// UnmarshalYAML implements yaml.Unmarshaler for the two rule entry shapes.
func (e *RuleEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*e = RuleEntry{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("rule entry: expected mapping or null, got %s", value.Tag)
	}

	var meta RuleMeta
	if err := value.Decode(&meta); err != nil {
		return err
	}
	*e = RuleEntry{HasMeta: true, Meta: meta}
	return nil
}

// RuleMeta holds the metadata fields of a mapping-shaped rule entry.
type RuleMeta struct {
	// Description is the human-readable rule summary.
	Description string `yaml:"description"`

	// Type is the rule category ("problem", "suggestion", "layout").
	Type string `yaml:"type"`

	// Fixable indicates the rule can auto-apply fixes.
	Fixable bool `yaml:"fixable"`

	// HasSuggestions indicates the rule offers editor-applied suggestions.
	HasSuggestions bool `yaml:"has_suggestions"`

	// RequiresTypeChecking indicates the rule needs type information.
	RequiresTypeChecking bool `yaml:"requires_type_checking"`

	// Deprecated marks the rule as deprecated.
	Deprecated bool `yaml:"deprecated"`

	// ReplacedBy names successor rules for a deprecated rule.
	ReplacedBy []string `yaml:"replaced_by"`

	// Schema lists the rule's named options.
	Schema []OptionSpec `yaml:"schema"`
}

// OptionSpec describes one named rule option. A schema entry may be a bare
// string (the option name) or a mapping with name/type/description fields.
type OptionSpec struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// UnmarshalYAML implements yaml.Unmarshaler for the two schema entry shapes.
func (o *OptionSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*o = OptionSpec{Name: name}
		return nil
	}

	type rawOption OptionSpec
	var raw rawOption
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*o = OptionSpec(raw)
	return nil
}

// ConfigDef is one named configuration: a description plus the rule
// activation map. Activation keys may use the plugin-prefixed or bare
// rule name.
type ConfigDef struct {
	Description string                `yaml:"description"`
	Rules       map[string]Activation `yaml:"rules"`
}

// Activation is a rule's activation level inside a config.
type Activation string

const (
	ActivationOff   Activation = "off"
	ActivationWarn  Activation = "warn"
	ActivationError Activation = "error"
)

// Enabled reports whether this activation makes the rule a config member.
func (a Activation) Enabled() bool {
	return a == ActivationWarn || a == ActivationError
}

// UnmarshalYAML implements yaml.Unmarshaler. Activation values accept the
// string forms "off"/"warn"/"warning"/"error", booleans, severity integers
// 0-2, null (treated as enabled), and mappings with enabled/severity fields.
func (a *Activation) UnmarshalYAML(value *yaml.Node) error {
	switch value.Tag {
	case "!!null":
		*a = ActivationError
		return nil
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			*a = ActivationError
		} else {
			*a = ActivationOff
		}
		return nil
	case "!!int":
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		switch n {
		case 0:
			*a = ActivationOff
		case 1:
			*a = ActivationWarn
		case 2:
			*a = ActivationError
		default:
			return fmt.Errorf("activation: severity %d out of range", n)
		}
		return nil
	case "!!str":
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		switch strings.ToLower(s) {
		case "off":
			*a = ActivationOff
		case "warn", "warning":
			*a = ActivationWarn
		case "error":
			*a = ActivationError
		default:
			return fmt.Errorf("activation: unknown level %q", s)
		}
		return nil
	}

	if value.Kind == yaml.MappingNode {
		var m struct {
			Enabled  *bool  `yaml:"enabled"`
			Severity string `yaml:"severity"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		if m.Enabled != nil && !*m.Enabled {
			*a = ActivationOff
			return nil
		}
		switch strings.ToLower(m.Severity) {
		case "warn", "warning":
			*a = ActivationWarn
		default:
			*a = ActivationError
		}
		return nil
	}

	return fmt.Errorf("activation: unsupported value (%s)", value.Tag)
}

// RuleNames returns all declared rule names in sorted order.
func (m *Manifest) RuleNames() []string {
	names := make([]string, 0, len(m.Rules))
	for name := range m.Rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ConfigNames returns all declared config names in sorted order.
func (m *Manifest) ConfigNames() []string {
	names := make([]string, 0, len(m.Configs))
	for name := range m.Configs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PrefixedName returns the plugin-prefixed form of a rule name.
func (m *Manifest) PrefixedName(rule string) string {
	if m.Name == "" {
		return rule
	}
	return m.Name + "/" + rule
}

// StripPrefix normalizes a rule reference to its bare name, removing the
// plugin prefix when present.
func (m *Manifest) StripPrefix(ref string) string {
	if m.Name == "" {
		return ref
	}
	return strings.TrimPrefix(ref, m.Name+"/")
}
