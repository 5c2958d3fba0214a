package notices

import (
	"slices"

	"github.com/yaklabco/ruledoc/pkg/rules"
)

// Notice is one derived badge for a rule. Configs is populated for
// KindConfigs only.
type Notice struct {
	Kind    Kind
	Configs []ConfigBadge
}

// BadgesFor maps config names to display badges, preserving the given
// order. Callers pass membership names already sorted case-insensitively.
func BadgesFor(names []string, emojis map[string]string) []ConfigBadge {
	badges := make([]ConfigBadge, len(names))
	for i, name := range names {
		badges[i] = ConfigBadge{Name: name, Emoji: emojis[name]}
	}
	return badges
}

// ForRule derives the ordered badge list for one rule. Kinds outside the
// selected set are skipped; inapplicable badges are omitted entirely,
// never rendered empty. The result order follows Kinds() regardless of
// input or selection order.
func ForRule(d rules.Details, configs []ConfigBadge, selected []Kind) []Notice {
	var out []Notice

	for _, kind := range Kinds() {
		if !slices.Contains(selected, kind) {
			continue
		}
		if !applies(kind, d, configs) {
			continue
		}

		n := Notice{Kind: kind}
		if kind == KindConfigs {
			n.Configs = slices.Clone(configs)
		}
		out = append(out, n)
	}

	return out
}

// applies reports whether the kind's predicate holds for the rule.
func applies(kind Kind, d rules.Details, configs []ConfigBadge) bool {
	switch kind {
	case KindConfigs:
		return len(configs) > 0
	case KindFixable:
		return d.Fixable
	case KindSuggestions:
		return d.HasSuggestions
	case KindTypeChecking:
		return d.RequiresTypeChecking
	case KindDeprecated:
		return d.Deprecated
	case KindOptions:
		return d.HasOptions()
	case KindType:
		return d.Type != ""
	default:
		return false
	}
}
