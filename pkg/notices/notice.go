// Package notices derives the ordered badge set for a rule: which badge
// kinds apply, in a fixed precedence independent of input order, and how
// each config membership is displayed. Turning badges into markdown
// sentences and table cells is the render package's job.
package notices

// Kind identifies one badge kind.
type Kind string

const (
	KindConfigs      Kind = "configs"
	KindFixable      Kind = "fixable"
	KindSuggestions  Kind = "suggestions"
	KindTypeChecking Kind = "type-checking"
	KindDeprecated   Kind = "deprecated"
	KindOptions      Kind = "options"
	KindType         Kind = "type"
)

// Kinds returns every badge kind in canonical precedence order. The order
// is fixed by policy; renderers must never reorder it.
func Kinds() []Kind {
	return []Kind{
		KindConfigs,
		KindFixable,
		KindSuggestions,
		KindTypeChecking,
		KindDeprecated,
		KindOptions,
		KindType,
	}
}

// IsValid returns true if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	switch k {
	case KindConfigs, KindFixable, KindSuggestions, KindTypeChecking,
		KindDeprecated, KindOptions, KindType:
		return true
	default:
		return false
	}
}

// Emoji returns the marker glyph for the kind. For KindConfigs this is the
// generic briefcase; single-config tables replace it with that config's own
// emoji at render time.
func (k Kind) Emoji() string {
	switch k {
	case KindConfigs:
		return "💼"
	case KindFixable:
		return "🔧"
	case KindSuggestions:
		return "💡"
	case KindTypeChecking:
		return "💭"
	case KindDeprecated:
		return "❌"
	case KindOptions:
		return "⚙️"
	case KindType:
		return "🗂️"
	default:
		return ""
	}
}

// ConfigBadge pairs a config name with its display marker.
type ConfigBadge struct {
	// Name is the config name.
	Name string

	// Emoji is the mapped glyph, or "" when the config has no mapping.
	Emoji string
}

// Marker returns the badge text for a table cell or header sentence: the
// mapped emoji, or a badge image reference keyed by the config name when
// no emoji is mapped.
func (b ConfigBadge) Marker() string {
	if b.Emoji != "" {
		return b.Emoji
	}
	return "![" + b.Name + "][]"
}
