package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/markers"
	"github.com/yaklabco/ruledoc/pkg/notices"
)

// Header renders the generated header block for one rule doc: the title
// line, one sentence per applicable badge in precedence order, and the
// end-of-header marker. The returned block ends with a trailing newline so
// it can be spliced verbatim above the doc body.
func Header(e Entry, opts Options) string {
	prefixed := e.Rule.Name
	if opts.PluginName != "" {
		prefixed = opts.PluginName + "/" + e.Rule.Name
	}
	title := config.FormatTitle(opts.TitleFormat, e.Rule.Description, e.Rule.Name, prefixed)

	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n")

	for _, n := range notices.ForRule(e.Rule, e.Configs, opts.Notices) {
		sb.WriteString("\n")
		sb.WriteString(noticeSentence(n, e, opts))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(markers.EndRuleHeader)
	sb.WriteString("\n")
	return sb.String()
}

// noticeSentence renders the header sentence for one badge notice.
func noticeSentence(n notices.Notice, e Entry, opts Options) string {
	switch n.Kind {
	case notices.KindConfigs:
		return configsSentence(n.Configs)
	case notices.KindFixable:
		return "🔧 This rule is automatically fixable by the `--fix` CLI option."
	case notices.KindSuggestions:
		return "💡 This rule is manually fixable by editor suggestions."
	case notices.KindTypeChecking:
		return "💭 This rule requires type information."
	case notices.KindDeprecated:
		return deprecatedSentence(e, opts)
	case notices.KindOptions:
		return "⚙️ This rule is configurable."
	case notices.KindType:
		return fmt.Sprintf("🗂️ This rule is a `%s` rule.", e.Rule.Type)
	default:
		return ""
	}
}

// configsSentence lists the configs a rule is enabled in, singular or
// plural depending on how many there are.
func configsSentence(badges []notices.ConfigBadge) string {
	if len(badges) == 1 {
		b := badges[0]
		return fmt.Sprintf("💼 This rule is enabled in the %s `%s` config.", b.Marker(), b.Name)
	}

	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, fmt.Sprintf("%s `%s`", b.Marker(), b.Name))
	}
	return "💼 This rule is enabled in the following configs: " + strings.Join(parts, ", ") + "."
}

// deprecatedSentence renders the deprecation notice, linking replacement
// rules relative to the deprecated rule's own doc.
func deprecatedSentence(e Entry, opts Options) string {
	if len(e.Rule.ReplacedBy) == 0 {
		return "❌ This rule is deprecated."
	}

	fromDoc := opts.ruleDocPath(e.Rule.Name)
	links := make([]string, 0, len(e.Rule.ReplacedBy))
	for _, successor := range e.Rule.ReplacedBy {
		links = append(links, fmt.Sprintf("[`%s`](%s)", successor, relLink(fromDoc, opts.ruleDocPath(successor))))
	}

	if len(links) == 1 {
		return "❌ This rule is deprecated. It was replaced by " + links[0] + "."
	}
	return "❌ This rule is deprecated. It was replaced by " + strings.Join(links, ", ") + "."
}
