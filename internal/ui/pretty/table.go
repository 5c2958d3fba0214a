package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/ruledoc/pkg/notices"
	"github.com/yaklabco/ruledoc/pkg/render"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // RULE, DESCRIPTION, BADGES, CONFIGS
	minRuleWidth     = 8
	minDescWidth     = 25
	minBadgesWidth   = 6
	minConfigsWidth  = 7
	heavySeparator   = "="
	defaultTermWidth = 100
)

// badgeKinds are the per-rule badge kinds shown in the BADGES column.
// Config membership has its own column and the type attribute is textual,
// so neither contributes a badge here.
var badgeKinds = []notices.Kind{
	notices.KindFixable,
	notices.KindSuggestions,
	notices.KindTypeChecking,
	notices.KindDeprecated,
	notices.KindOptions,
}

// tableRow represents a single rule in the listing.
type tableRow struct {
	Name        string
	Description string
	Badges      string
	Configs     string
	Deprecated  bool
}

// TableFormatter formats a rule listing as a styled terminal table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatRules formats the displayed rule set as a styled table.
func (t *TableFormatter) FormatRules(entries []render.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	rows := collectRows(entries)
	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	if legend := t.formatLegend(rows); legend != "" {
		builder.WriteString(legend)
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatRulesSummary(rows))
	builder.WriteString("\n")

	return builder.String()
}

// collectRows converts entries to display rows.
func collectRows(entries []render.Entry) []tableRow {
	rows := make([]tableRow, 0, len(entries))
	for _, e := range entries {
		var badges []string
		for _, n := range notices.ForRule(e.Rule, e.Configs, badgeKinds) {
			badges = append(badges, n.Kind.Emoji())
		}

		names := make([]string, len(e.Configs))
		for i, c := range e.Configs {
			names[i] = c.Name
		}

		rows = append(rows, tableRow{
			Name:        e.Rule.Name,
			Description: e.Rule.Description,
			Badges:      strings.Join(badges, " "),
			Configs:     strings.Join(names, ", "),
			Deprecated:  e.Rule.Deprecated,
		})
	}
	return rows
}

// calculateColumnWidths determines column widths based on content,
// constrained to the terminal width by shrinking the description first.
func (t *TableFormatter) calculateColumnWidths(rows []tableRow) columnWidths {
	widths := columnWidths{
		name:    minRuleWidth,
		desc:    minDescWidth,
		badges:  minBadgesWidth,
		configs: minConfigsWidth,
	}

	for _, row := range rows {
		widths.name = max(widths.name, len(row.Name))
		widths.desc = max(widths.desc, len(row.Description))
		widths.badges = max(widths.badges, lipgloss.Width(row.Badges))
		widths.configs = max(widths.configs, len(row.Configs))
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.desc = max(minDescWidth, widths.desc-excess)

		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.configs = max(minConfigsWidth, widths.configs-excess)
		}
	}

	return widths
}

type columnWidths struct {
	name    int
	desc    int
	badges  int
	configs int
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.name + widths.desc + widths.badges + widths.configs +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.name, "RULE",
		widths.desc, "DESCRIPTION",
		widths.badges, "BADGES",
		widths.configs, "CONFIGS",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row. Emoji cells are padded by display
// width; %-*s pads by byte count and would misalign them.
func (t *TableFormatter) formatRow(row tableRow, widths columnWidths) string {
	badges := row.Badges + strings.Repeat(" ", max(0, widths.badges-lipgloss.Width(row.Badges)))

	content := fmt.Sprintf(" %-*s  %-*s  %s  %-*s ",
		widths.name, truncateString(row.Name, widths.name),
		widths.desc, truncateString(row.Description, widths.desc),
		badges,
		widths.configs, truncateString(row.Configs, widths.configs),
	)

	if row.Deprecated {
		return t.styles.TableDeprecated.Render(content)
	}
	return content
}

// formatLegend formats the legend for the badge emojis present in the table.
func (t *TableFormatter) formatLegend(rows []tableRow) string {
	labels := map[notices.Kind]string{
		notices.KindFixable:      "fixable",
		notices.KindSuggestions:  "has suggestions",
		notices.KindTypeChecking: "requires type checking",
		notices.KindDeprecated:   "deprecated",
		notices.KindOptions:      "configurable",
	}

	var parts []string
	for _, kind := range badgeKinds {
		for _, row := range rows {
			if strings.Contains(row.Badges, kind.Emoji()) {
				parts = append(parts, fmt.Sprintf("%s = %s", kind.Emoji(), labels[kind]))
				break
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}

	return t.styles.TableLegend.Render(" Legend: " + strings.Join(parts, "  "))
}

// formatRulesSummary formats a summary line below the table.
func (t *TableFormatter) formatRulesSummary(rows []tableRow) string {
	var deprecated int
	for _, row := range rows {
		if row.Deprecated {
			deprecated++
		}
	}

	ruleWord := "rules"
	if len(rows) == 1 {
		ruleWord = "rule"
	}
	summary := fmt.Sprintf("%d %s", len(rows), ruleWord)
	if deprecated > 0 {
		summary += t.styles.Dim.Render(fmt.Sprintf(" (%d deprecated)", deprecated))
	}

	return " " + summary
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
