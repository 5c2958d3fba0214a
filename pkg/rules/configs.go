package rules

import (
	"fmt"
	"slices"

	"github.com/yaklabco/ruledoc/pkg/plugin"
)

// ConfigInfo is one resolved configuration: its identity plus the set of
// bare rule names it enables.
type ConfigInfo struct {
	Name        string
	Description string

	members map[string]struct{}
}

// Contains reports whether the config enables the named rule.
func (c *ConfigInfo) Contains(rule string) bool {
	_, ok := c.members[rule]
	return ok
}

// RuleNames returns the config's member rule names in sorted order.
func (c *ConfigInfo) RuleNames() []string {
	names := make([]string, 0, len(c.members))
	for name := range c.members {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Index holds every resolved, non-ignored config keyed by name.
type Index struct {
	byName map[string]*ConfigInfo
	names  []string
}

// ResolveConfigs builds the config index from the manifest. Activation keys
// are normalized to bare rule names (plugin prefix stripped); activations
// that disable a rule or reference an unknown rule contribute no membership.
// Config names on the ignore list are excluded from the index entirely, so
// downstream components never see them. The returned warnings describe
// references to unknown rules.
func ResolveConfigs(m *plugin.Manifest, ignore []string) (*Index, []string) {
	ignored := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		ignored[name] = struct{}{}
	}

	idx := &Index{byName: make(map[string]*ConfigInfo, len(m.Configs))}
	var warnings []string

	for _, name := range m.ConfigNames() {
		if _, skip := ignored[name]; skip {
			continue
		}

		def := m.Configs[name]
		info := &ConfigInfo{
			Name:        name,
			Description: def.Description,
			members:     make(map[string]struct{}, len(def.Rules)),
		}

		for ref, activation := range def.Rules {
			if !activation.Enabled() {
				continue
			}
			rule := m.StripPrefix(ref)
			if _, known := m.Rules[rule]; !known {
				warnings = append(warnings, fmt.Sprintf("config %q references unknown rule %q", name, ref))
				continue
			}
			info.members[rule] = struct{}{}
		}

		idx.byName[name] = info
		idx.names = append(idx.names, name)
	}

	slices.Sort(warnings)
	return idx, warnings
}

// Get retrieves a config by name.
func (idx *Index) Get(name string) (*ConfigInfo, bool) {
	info, ok := idx.byName[name]
	return info, ok
}

// Names returns all config names sorted case-insensitively.
func (idx *Index) Names() []string {
	names := slices.Clone(idx.names)
	slices.SortFunc(names, CompareFold)
	return names
}

// Len returns the number of resolved configs.
func (idx *Index) Len() int {
	return len(idx.byName)
}

// ConfigsFor returns the names of the configs enabling the given rule,
// sorted case-insensitively. A rule in no config yields an empty slice.
func (idx *Index) ConfigsFor(rule string) []string {
	var names []string
	for _, info := range idx.byName {
		if info.Contains(rule) {
			names = append(names, info.Name)
		}
	}
	slices.SortFunc(names, CompareFold)
	return names
}
